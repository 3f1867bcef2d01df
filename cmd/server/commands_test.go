package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/memclip/models"
)

func TestVersionCmd(t *testing.T) {
	cmd := newRootCmd(models.NewAppBuildInfo("v0.3.0", "", "abc123"))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Build version: v0.3.0")
	assert.Contains(t, out.String(), "Build date: N/A")
	assert.Contains(t, out.String(), "Build commit: abc123")
}

func TestMigrateCmd_SQLite(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "hub.db")

	cmd := newRootCmd(models.AppBuildInfo{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"migrate", "--dsn", dsn, "--log-level", "error"})

	require.NoError(t, cmd.Execute())

	// migrations are idempotent
	cmd = newRootCmd(models.AppBuildInfo{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"migrate", "--dsn", dsn, "--log-level", "error"})
	require.NoError(t, cmd.Execute())
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd(models.AppBuildInfo{})

	for _, name := range []string{"address", "dsn", "request-timeout", "peer-ttl", "log-level", "config"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestRootCmd_RejectsUnknownArgs(t *testing.T) {
	cmd := newRootCmd(models.AppBuildInfo{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"bogus"})

	assert.Error(t, cmd.Execute())
}
