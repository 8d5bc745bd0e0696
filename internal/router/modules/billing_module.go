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

// BillingModule: admin and receptionist issue and settle invoices; all roles read.
type BillingModule struct {
	Handler *handlers.BillingHandler
	JWT     *helpers.JWTManager
}

func NewBillingModule(h *handlers.BillingHandler, jwt *helpers.JWTManager) *BillingModule {
	return &BillingModule{Handler: h, JWT: jwt}
}

func (m *BillingModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/invoices")
	g.Use(middleware.Auth(container.GetRedis(), m.JWT))
	g.Use(middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByUserID(), nil))

	g.GET("", m.Handler.List)
	g.GET("/:id", m.Handler.Get)

	desk := g.Group("")
	desk.Use(middleware.RequireRole(entity.RoleAdmin, entity.RoleReceptionist))
	{
		desk.POST("", m.Handler.Create)
		desk.PUT("/:id/pay", m.Handler.Pay)
		desk.PUT("/:id/refund", m.Handler.Refund)
	}
}
