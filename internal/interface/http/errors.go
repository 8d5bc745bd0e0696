package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/medicore/hms-api/internal/application"
	"github.com/medicore/hms-api/pkg/response"
)

// writeError maps service errors onto HTTP statuses. Authorization failures
// stay deliberately vague.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
	case errors.Is(err, application.ErrAccountDisabled):
		response.Error[any](c, http.StatusUnauthorized, "account disabled", nil)
	case errors.Is(err, application.ErrNotFound):
		response.Error[any](c, http.StatusNotFound, "not found", nil)
	case errors.Is(err, application.ErrSchedulingConflict):
		response.Error[any](c, http.StatusConflict, "scheduling conflict", err.Error())
	case errors.Is(err, application.ErrInvalidTransition):
		response.Error[any](c, http.StatusConflict, "invalid status transition", err.Error())
	case errors.Is(err, application.ErrAppointmentNotCompleted):
		response.Error[any](c, http.StatusConflict, "appointment not completed", err.Error())
	case errors.Is(err, application.ErrDuplicateInvoice):
		response.Error[any](c, http.StatusConflict, "appointment already billed", err.Error())
	case errors.Is(err, application.ErrInvalidInput):
		response.Error[any](c, http.StatusBadRequest, "invalid input", err.Error())
	default:
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
	}
}

func queryInt(c *gin.Context, name string, def int) int {
	v := c.Query(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
