package service

import (
	"context"

	"github.com/MKhiriev/memclip/internal/config"
	"github.com/MKhiriev/memclip/internal/logger"
	"github.com/MKhiriev/memclip/models"
)

type appInfoService struct {
	info models.VersionResponse

	logger *logger.Logger
}

// NewAppInfoService reports the linker-provided build info. A version set
// in the configuration overrides the build version.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	info := build.VersionResponse()
	if cfg.Version != "" {
		info.Version = cfg.Version
	}

	return &appInfoService{
		info:   info,
		logger: logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) models.VersionResponse {
	return s.info
}
