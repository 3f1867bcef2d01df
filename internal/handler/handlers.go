package handler

import (
	stdhttp "net/http"

	"github.com/MKhiriev/memclip/internal/config"
	"github.com/MKhiriev/memclip/internal/handler/http"
	"github.com/MKhiriev/memclip/internal/logger"
	"github.com/MKhiriev/memclip/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the transport handlers of the hub. metrics serves
// /metrics and may be nil.
func NewHandlers(services *service.Services, cfg config.Server, metrics stdhttp.Handler, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, metrics, logger),
	}, nil
}
