package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/memclip/internal/config"
	"github.com/MKhiriev/memclip/internal/logger"
	"github.com/MKhiriev/memclip/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_UsesBuildInfo(t *testing.T) {
	build := models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123")

	svc := NewAppInfoService(config.App{}, build, logger.Nop())
	require.NotNil(t, svc)

	assert.Equal(t, models.VersionResponse{Version: "1.2.3", Date: "2026-10-01", Commit: "abc123"},
		svc.GetAppVersion(context.Background()))
}

func TestNewAppInfoService_ConfigVersionOverrides(t *testing.T) {
	build := models.NewAppBuildInfo("1.2.3", "", "")

	svc := NewAppInfoService(config.App{Version: "2.5.1"}, build, logger.Nop())

	got := svc.GetAppVersion(context.Background())
	assert.Equal(t, "2.5.1", got.Version)
	assert.Equal(t, "N/A", got.Date)
	assert.Equal(t, "N/A", got.Commit)
}

func TestNewAppInfoService_EmptyBuildInfo(t *testing.T) {
	svc := NewAppInfoService(config.App{}, models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.Equal(t, "N/A", svc.GetAppVersion(context.Background()).Version)
}
