package http

import (
	"time"

	"github.com/MKhiriev/go-blog-platform/internal/config"
	"github.com/MKhiriev/go-blog-platform/internal/logger"
	"github.com/MKhiriev/go-blog-platform/internal/service"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	services *service.Services
	validate *validator.Validate
	metrics  *httpMetrics

	adminLogin       string
	adminPassword    string
	testingEndpoints bool
	allowedOrigins   []string
	requestTimeout   time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:         services,
		validate:         newValidator(),
		metrics:          newHTTPMetrics(),
		adminLogin:       cfg.App.AdminLogin,
		adminPassword:    cfg.App.AdminPassword,
		testingEndpoints: cfg.App.TestingEndpoints,
		allowedOrigins:   cfg.Server.AllowedOrigins,
		requestTimeout:   cfg.Server.RequestTimeout,
		logger:           logger,
	}
}
