package router

import (
	"github.com/medicore/hms-api/internal/application"
	"github.com/medicore/hms-api/internal/container"
	pginfra "github.com/medicore/hms-api/internal/infrastructure/postgres"
	handlers "github.com/medicore/hms-api/internal/interface/http"
	"github.com/medicore/hms-api/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers them with the router registry. Call once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	patientRepo := pginfra.NewPatientRepository(pool)
	doctorRepo := pginfra.NewDoctorRepository(pool)
	apptRepo := pginfra.NewAppointmentRepository(pool)
	invoiceRepo := pginfra.NewInvoiceRepository(pool)
	dashRepo := pginfra.NewDashboardRepository(pool)

	authSvc := application.NewAuthService(userRepo, container.GetJWT(), container.GetRedis(), logger, cfg.SessionTTL)
	userSvc := application.NewUserService(userRepo, container.GetRedis(), logger)
	patientSvc := application.NewPatientService(patientRepo, container.GetES(), cfg.ESPatientsIndex, container.GetGCS(), cfg.GCSBucket, logger)
	doctorSvc := application.NewDoctorService(doctorRepo, apptRepo, logger)
	apptSvc := application.NewAppointmentService(apptRepo, patientRepo, doctorRepo, container.GetRabbitPub(), logger)
	billingSvc := application.NewBillingService(invoiceRepo, apptRepo, patientRepo, container.GetRabbitPub(), logger)
	dashSvc := application.NewDashboardService(dashRepo, container.GetRedis(), cfg.DashboardCacheTTL, logger)

	jwt := container.GetJWT()

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger, cfg.CookieDomain, cfg.CookieSecure), jwt))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), jwt))
	r.Add(modules.NewPatientModule(handlers.NewPatientHandler(patientSvc, logger), jwt))
	r.Add(modules.NewDoctorModule(handlers.NewDoctorHandler(doctorSvc, logger), jwt))
	r.Add(modules.NewAppointmentModule(handlers.NewAppointmentHandler(apptSvc, logger), jwt))
	r.Add(modules.NewBillingModule(handlers.NewBillingHandler(billingSvc, logger), jwt))
	r.Add(modules.NewDashboardModule(handlers.NewDashboardHandler(dashSvc, logger), jwt))
	r.Add(modules.NewDebugModule())
}
