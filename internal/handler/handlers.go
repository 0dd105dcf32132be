package handler

import (
	"github.com/MKhiriev/bloglist/internal/config"
	"github.com/MKhiriev/bloglist/internal/handler/http"
	"github.com/MKhiriev/bloglist/internal/logger"
	"github.com/MKhiriev/bloglist/internal/service"
)

// Handlers groups the transport handlers enabled by the server config.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
