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

// PatientModule: every staff role can read; admin and receptionist can write.
type PatientModule struct {
	Handler *handlers.PatientHandler
	JWT     *helpers.JWTManager
}

func NewPatientModule(h *handlers.PatientHandler, jwt *helpers.JWTManager) *PatientModule {
	return &PatientModule{Handler: h, JWT: jwt}
}

func (m *PatientModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/patients")
	g.Use(middleware.Auth(container.GetRedis(), m.JWT))
	g.Use(middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByUserID(), nil))

	g.GET("", m.Handler.List)
	g.GET("/search", m.Handler.Search)
	g.GET("/:id", m.Handler.Get)

	write := g.Group("")
	write.Use(middleware.RequireRole(entity.RoleAdmin, entity.RoleReceptionist))
	{
		write.POST("", m.Handler.Create)
		write.PUT("/:id", m.Handler.Update)
		write.DELETE("/:id", m.Handler.Delete)
		write.POST("/:id/documents", m.Handler.UploadDocument)
	}
}
