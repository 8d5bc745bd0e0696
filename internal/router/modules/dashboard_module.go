package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/medicore/hms-api/internal/container"
	"github.com/medicore/hms-api/internal/domain/entity"
	handlers "github.com/medicore/hms-api/internal/interface/http"
	"github.com/medicore/hms-api/internal/interface/middleware"
	"github.com/medicore/hms-api/pkg/helpers"
)

// DashboardModule: reporting aggregates, admin only.
type DashboardModule struct {
	Handler *handlers.DashboardHandler
	JWT     *helpers.JWTManager
}

func NewDashboardModule(h *handlers.DashboardHandler, jwt *helpers.JWTManager) *DashboardModule {
	return &DashboardModule{Handler: h, JWT: jwt}
}

func (m *DashboardModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/dashboard")
	g.Use(middleware.Auth(container.GetRedis(), m.JWT))
	g.Use(middleware.RequireRole(entity.RoleAdmin))
	g.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))

	g.GET("/summary", m.Handler.Summary)
}
