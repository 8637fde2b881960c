package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/rentsoft/property-api/docs"
	"github.com/rentsoft/property-api/internal/api/handler"
	"github.com/rentsoft/property-api/internal/api/middleware"
	"github.com/rentsoft/property-api/internal/core/domain"
	"github.com/rentsoft/property-api/internal/core/ports"
)

// Dependencies carries everything the router wires into handlers.
type Dependencies struct {
	Logger zerolog.Logger

	Auth         ports.AuthService
	Users        ports.UserService
	Properties   ports.PropertyService
	Units        ports.UnitService
	Leases       ports.LeaseService
	Applications ports.ApplicationService
	Maintenance  ports.MaintenanceService
	Payments     ports.PaymentService
	Dashboard    ports.DashboardService

	// ReadinessChecks are probed by GET /health/ready.
	ReadinessChecks []handler.DependencyCheck

	LoginRatePerMinute int

	// Registry receives the HTTP request metrics. Nil means the default
	// Prometheus registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if deps.Registry != nil {
		registerer, gatherer = deps.Registry, deps.Registry
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "rentsoft",
		Registerer: registerer,
	}))

	// --- Operational routes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.ReadinessChecks...)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	authn := middleware.Auth(deps.Auth)
	managers := middleware.RBAC(domain.RoleAdmin, domain.RolePropertyManager)
	admins := middleware.RBAC(domain.RoleAdmin)

	api := e.Group("/api")

	// --- Auth ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login, middleware.LoginRateLimiter(deps.LoginRatePerMinute))
	api.POST("/auth/logout", authHandler.Logout, authn)
	api.GET("/auth/me", authHandler.Me, authn)

	secured := api.Group("", authn)

	// --- Users ---
	userHandler := handler.NewUserHandler(deps.Users)
	secured.GET("/users", userHandler.List, managers)
	secured.POST("/users", userHandler.Create, admins)

	// --- Properties ---
	propertyHandler := handler.NewPropertyHandler(deps.Properties)
	secured.GET("/properties", propertyHandler.List)
	secured.POST("/properties", propertyHandler.Create, managers)
	secured.GET("/properties/:id", propertyHandler.Get)
	secured.PATCH("/properties/:id", propertyHandler.Update, managers)
	secured.DELETE("/properties/:id", propertyHandler.Delete, admins)
	secured.GET("/properties/:id/amenities", propertyHandler.ListAmenities)
	secured.POST("/properties/:id/amenities", propertyHandler.AddAmenity, managers)

	// --- Units ---
	unitHandler := handler.NewUnitHandler(deps.Units)
	secured.GET("/units", unitHandler.List)
	secured.POST("/units", unitHandler.Create, managers)
	secured.GET("/units/:id", unitHandler.Get)
	secured.PATCH("/units/:id", unitHandler.Update, managers)

	// --- Leases ---
	leaseHandler := handler.NewLeaseHandler(deps.Leases)
	secured.GET("/leases", leaseHandler.List)
	secured.POST("/leases", leaseHandler.Create, managers)
	secured.PATCH("/leases/:id/status", leaseHandler.UpdateStatus, managers)

	// --- Tenant activity ---
	applicationHandler := handler.NewApplicationHandler(deps.Applications)
	secured.GET("/applications", applicationHandler.List)
	secured.POST("/applications", applicationHandler.Create)

	maintenanceHandler := handler.NewMaintenanceHandler(deps.Maintenance)
	secured.GET("/maintenance", maintenanceHandler.List)
	secured.POST("/maintenance", maintenanceHandler.Create)

	paymentHandler := handler.NewPaymentHandler(deps.Payments)
	secured.GET("/payments", paymentHandler.List)
	secured.POST("/payments", paymentHandler.Create)

	// --- Dashboard ---
	dashboardHandler := handler.NewDashboardHandler(deps.Dashboard)
	secured.GET("/dashboard", dashboardHandler.Summary)

	return e
}
