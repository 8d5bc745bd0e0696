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

// AppointmentModule: receptionists (and admins) book, reschedule, and cancel;
// doctors (and admins) mark visits completed; everyone reads.
type AppointmentModule struct {
	Handler *handlers.AppointmentHandler
	JWT     *helpers.JWTManager
}

func NewAppointmentModule(h *handlers.AppointmentHandler, jwt *helpers.JWTManager) *AppointmentModule {
	return &AppointmentModule{Handler: h, JWT: jwt}
}

func (m *AppointmentModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/appointments")
	g.Use(middleware.Auth(container.GetRedis(), m.JWT))
	g.Use(middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByUserID(), nil))

	g.GET("", m.Handler.List)
	g.GET("/:id", m.Handler.Get)

	desk := g.Group("")
	desk.Use(middleware.RequireRole(entity.RoleAdmin, entity.RoleReceptionist))
	{
		desk.POST("", m.Handler.Book)
		desk.PUT("/:id/reschedule", m.Handler.Reschedule)
		desk.PUT("/:id/cancel", m.Handler.Cancel)
	}

	clinical := g.Group("")
	clinical.Use(middleware.RequireRole(entity.RoleAdmin, entity.RoleDoctor))
	{
		clinical.PUT("/:id/complete", m.Handler.Complete)
	}
}
