package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile_JSON(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"app": { "log_level": "warn", "tui": true },
		"clipboard": { "poll_interval": "250ms", "max_payload_size": 4096, "key": "k" },
		"sync": { "wait_timeout": "2s" },
		"adapter": { "hub_address": "http://10.0.0.1:8089", "request_timeout": "5s", "poll_wait": "10s" },
		"server": { "http_address": "0.0.0.0:8089", "peer_ttl": "90s", "max_blob_size": 100 },
		"storage": { "db": { "dsn": "/var/lib/memclip/hub.db" } },
		"telemetry": { "metrics_address": "127.0.0.1:9464" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	// Act
	cfg, err := parseFile(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.True(t, cfg.App.Dashboard)
	assert.Equal(t, 250*time.Millisecond, cfg.Clipboard.PollInterval)
	assert.Equal(t, int64(4096), cfg.Clipboard.MaxPayloadSize)
	assert.Equal(t, "k", cfg.Clipboard.Key)
	assert.Equal(t, 2*time.Second, cfg.Sync.WaitTimeout)
	assert.Equal(t, "http://10.0.0.1:8089", cfg.Adapter.HubAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.Adapter.PollWait)
	assert.Equal(t, "0.0.0.0:8089", cfg.Server.HTTPAddress)
	assert.Equal(t, 90*time.Second, cfg.Server.PeerTTL)
	assert.Equal(t, int64(100), cfg.Server.MaxBlobSize)
	assert.Equal(t, "/var/lib/memclip/hub.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "127.0.0.1:9464", cfg.Telemetry.MetricsAddress)
	assert.Empty(t, cfg.ConfigFilePath)
}

func TestParseFile_TOML(t *testing.T) {
	p := filepath.Join(t.TempDir(), "memclip.toml")
	body := `
[clipboard]
poll_interval = "2s"
key = "shared"

[adapter]
hub_address = "https://hub.example.org"
request_timeout = "20s"

[server]
peer_ttl = "2m"
`
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	cfg, err := parseFile(p)

	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.Clipboard.PollInterval)
	assert.Equal(t, "shared", cfg.Clipboard.Key)
	assert.Equal(t, "https://hub.example.org", cfg.Adapter.HubAddress)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Server.PeerTTL)
}

func TestParseFile_FileNotFound(t *testing.T) {
	cfg, err := parseFile("definitely-does-not-exist.json")

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a config file")
}

func TestParseFile_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	cfg, err := parseFile(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseFile_InvalidTOML(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(p, []byte("[clipboard\nkey ="), 0o600))

	cfg, err := parseFile(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding toml configs")
}

func TestParseFile_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"sync":{"wait_timeout":"soon"}}`), 0o600))

	_, err := parseFile(p)

	require.Error(t, err)
}

// ── Duration ──

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1m30s"`, want: 90 * time.Second},
		{name: "nanoseconds", input: `1000000`, want: time.Millisecond},
		{name: "bad string", input: `"x"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(5 * time.Second))

	require.NoError(t, err)
	assert.JSONEq(t, `"5s"`, string(data))
}
