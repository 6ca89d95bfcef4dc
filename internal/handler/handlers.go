package handler

import (
	"github.com/MKhiriev/go-blog-platform/internal/config"
	"github.com/MKhiriev/go-blog-platform/internal/handler/http"
	"github.com/MKhiriev/go-blog-platform/internal/logger"
	"github.com/MKhiriev/go-blog-platform/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
