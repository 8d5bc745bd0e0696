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

// DoctorModule: every staff role can read; only admin manages the roster.
type DoctorModule struct {
	Handler *handlers.DoctorHandler
	JWT     *helpers.JWTManager
}

func NewDoctorModule(h *handlers.DoctorHandler, jwt *helpers.JWTManager) *DoctorModule {
	return &DoctorModule{Handler: h, JWT: jwt}
}

func (m *DoctorModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/doctors")
	g.Use(middleware.Auth(container.GetRedis(), m.JWT))
	g.Use(middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByUserID(), nil))

	g.GET("", m.Handler.List)
	g.GET("/:id", m.Handler.Get)
	g.GET("/:id/slots", m.Handler.Slots)

	admin := g.Group("")
	admin.Use(middleware.RequireRole(entity.RoleAdmin))
	{
		admin.POST("", m.Handler.Create)
		admin.PUT("/:id", m.Handler.Update)
		admin.DELETE("/:id", m.Handler.Delete)
		admin.PUT("/:id/availability", m.Handler.SetAvailability)
	}
}
