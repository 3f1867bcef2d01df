package http

import (
	"net/http"

	"github.com/MKhiriev/memclip/internal/config"
	"github.com/MKhiriev/memclip/internal/logger"
	"github.com/MKhiriev/memclip/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  http.Handler

	maxBlobSize int64

	logger *logger.Logger
}

// NewHandler creates the hub HTTP handler. metrics serves /metrics; nil
// leaves the route unregistered.
func NewHandler(services *service.Services, cfg config.Server, metrics http.Handler, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		metrics:     metrics,
		maxBlobSize: cfg.MaxBlobSize,
		logger:      logger,
	}
}
