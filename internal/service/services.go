package service

import (
	"github.com/MKhiriev/memclip/internal/config"
	"github.com/MKhiriev/memclip/internal/logger"
	"github.com/MKhiriev/memclip/internal/store"
	"github.com/MKhiriev/memclip/internal/telemetry"
	"github.com/MKhiriev/memclip/models"
)

// Services groups the services of the hub.
type Services struct {
	HubService     HubService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, build models.AppBuildInfo, metrics *telemetry.HubMetrics, logger *logger.Logger) *Services {
	hub := NewHubService(storages.HubRepository, cfg.Server, metrics, logger)

	return &Services{
		HubService:     NewHubValidationService(cfg.Server.MaxBlobSize).Wrap(hub),
		AppInfoService: NewAppInfoService(cfg.App, build, logger),
	}
}
