package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/medicore/hms-api/internal/application"
	"github.com/medicore/hms-api/pkg/response"
)

type DashboardHandler struct {
	Svc    *application.DashboardService
	Logger *logrus.Logger
}

func NewDashboardHandler(svc *application.DashboardService, logger *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{Svc: svc, Logger: logger}
}

// Summary reports counts and revenue for a date range. Defaults to the last
// 30 days when from/to are omitted.
func (h *DashboardHandler) Summary(c *gin.Context) {
	to := time.Now()
	from := to.AddDate(0, 0, -30)

	if v := c.Query("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, "invalid payload", gin.H{"from": "must be YYYY-MM-DD"})
			return
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, "invalid payload", gin.H{"to": "must be YYYY-MM-DD"})
			return
		}
		// inclusive end date
		to = t.AddDate(0, 0, 1)
	}
	if !from.Before(to) {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", gin.H{"from": "from must be before to"})
		return
	}

	sum, err := h.Svc.Summary(c.Request.Context(), from, to)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sum, "dashboard summary", nil)
}
