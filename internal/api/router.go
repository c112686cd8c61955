package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/havenbridge/homecare-api/internal/api/handler"
	"github.com/havenbridge/homecare-api/internal/api/middleware"
)

// Dependencies carries the wired handlers and guards the router mounts.
type Dependencies struct {
	Logger zerolog.Logger

	Guard *middleware.AuthGuard

	Auth         *handler.AuthHandler
	Appointments *handler.AppointmentHandler
	Applications *handler.ApplicationHandler
	Messages     *handler.MessageHandler
	Overview     *handler.OverviewHandler

	Mongo *mongo.Database
	Redis *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("homecare"))

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Public submission routes ---
	e.POST("/api/appointments", deps.Appointments.Create)
	e.POST("/api/careers/apply", deps.Applications.Create)
	e.POST("/api/contact", deps.Messages.Create)

	// --- Admin routes ---
	e.POST("/api/admin/login", deps.Auth.Login)

	admin := e.Group("/api/admin", deps.Guard.Middleware())

	admin.GET("/appointments", deps.Appointments.List)
	admin.GET("/appointments/:id", deps.Appointments.Get)
	admin.PUT("/appointments/:id/status", deps.Appointments.UpdateStatus)
	admin.POST("/appointments/:id/reply", deps.Appointments.Reply)

	admin.GET("/careers", deps.Applications.List)
	admin.GET("/careers/:id", deps.Applications.Get)
	admin.PUT("/careers/:id/status", deps.Applications.UpdateStatus)
	admin.GET("/careers/:id/resume", deps.Applications.Resume)

	admin.GET("/messages", deps.Messages.List)
	admin.GET("/messages/:id", deps.Messages.Get)
	admin.PUT("/messages/:id/status", deps.Messages.UpdateStatus)
	admin.POST("/messages/:id/reply", deps.Messages.Reply)

	admin.GET("/overview", deps.Overview.Overview)

	return e
}
