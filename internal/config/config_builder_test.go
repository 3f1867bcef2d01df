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

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs yields the
// defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, defaults(), cfg)
	assert.Equal(t, DefaultPollInterval, cfg.Clipboard.PollInterval)
	assert.Equal(t, int64(69<<20), cfg.Clipboard.MaxPayloadSize)
	assert.Equal(t, "memclip", cfg.Clipboard.Key)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that a later non-zero field overrides an
// earlier one while zero fields do not erase earlier values.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			App:       App{Version: "1.0.0", LogLevel: "info"},
			Clipboard: Clipboard{Key: "env-key"},
		},
		&StructuredConfig{
			App:       App{Version: "2.0.0"},
			Clipboard: Clipboard{PollInterval: 3 * time.Second},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "env-key", cfg.Clipboard.Key)
	assert.Equal(t, 3*time.Second, cfg.Clipboard.PollInterval)
	assert.Equal(t, DefaultWaitTimeout, cfg.Sync.WaitTimeout)
}

func TestBuild_RejectsNegativeValues(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Clipboard: Clipboard{PollInterval: -time.Second},
	})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidClipboardConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_VERSION":   "env-version",
		"CLIPBOARD_KEY": "env-key",
	})

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-key", b.configs[0].Clipboard.Key)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_PEER_TTL": "forever"})

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(&StructuredConfig{}))
}

func TestWithFlags_NilIsIgnored(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags(nil)
	assert.Empty(t, b.configs)
}

// ── withFile ──────────────────────────────────────────────────────────────────

func TestWithFile_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withFile()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithFile_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := FileConfig{}
	payload.App.Version = "file-version"
	payload.Clipboard.Key = "file-key"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: path})
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "file-version", b.configs[1].App.Version)
	assert.Equal(t, "file-key", b.configs[1].Clipboard.Key)
}

func TestWithFile_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		ConfigFilePath: filepath.Join(t.TempDir(), "missing.json"),
	})
	b.withFile()

	assert.Error(t, b.err)
}

// TestWithFile_UsesLastPath verifies that the flag path overrides the env path.
func TestWithFile_UsesLastPath(t *testing.T) {
	payload := FileConfig{}
	payload.App.Version = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{ConfigFilePath: "/does/not/matter.json"},
		&StructuredConfig{ConfigFilePath: path},
	)
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
}

// ── GetClientConfig / GetServerConfig ────────────────────────────────────────

func TestGetClientConfig_FileOverridesFlagsOverridesEnv(t *testing.T) {
	payload := FileConfig{}
	payload.Clipboard.Key = "from-file"
	path := writeTempJSONConfig(t, payload)

	setEnvVars(t, map[string]string{
		"CLIPBOARD_KEY":       "from-env",
		"ADAPTER_HUB_ADDRESS": "http://10.0.0.2:8089",
	})

	flags := &StructuredConfig{
		ConfigFilePath: path,
		Adapter:        Adapter{HubAddress: "http://10.0.0.3:8089"},
	}

	cfg, err := GetClientConfig(flags)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Clipboard.Key)
	assert.Equal(t, "http://10.0.0.3:8089", cfg.Adapter.HubAddress)
	assert.Equal(t, DefaultPollInterval, cfg.Clipboard.PollInterval)
}

func TestGetClientConfig_InvalidHub(t *testing.T) {
	setEnvVars(t, map[string]string{})

	_, err := GetClientConfig(&StructuredConfig{
		Adapter: Adapter{HubAddress: "127.0.0.1:8089"},
	})
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

func TestGetServerConfig_Defaults(t *testing.T) {
	setEnvVars(t, map[string]string{})

	cfg, err := GetServerConfig(&StructuredConfig{})
	require.NoError(t, err)
	assert.Equal(t, DefaultListenAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultPeerTTL, cfg.Server.PeerTTL)
	assert.Equal(t, DefaultDSN(), cfg.Storage.DB.DSN)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		d := defaults()
		return &ClientConfig{App: d.App, Clipboard: d.Clipboard, Sync: d.Sync, Adapter: d.Adapter}
	}

	tests := []struct {
		name   string
		mutate func(c *ClientConfig)
		want   error
	}{
		{name: "valid", mutate: func(c *ClientConfig) {}},
		{name: "empty key", mutate: func(c *ClientConfig) { c.Clipboard.Key = " " }, want: ErrInvalidClipboardConfigs},
		{name: "zero poll", mutate: func(c *ClientConfig) { c.Clipboard.PollInterval = 0 }, want: ErrInvalidClipboardConfigs},
		{name: "zero ceiling", mutate: func(c *ClientConfig) { c.Clipboard.MaxPayloadSize = 0 }, want: ErrInvalidClipboardConfigs},
		{name: "zero wait", mutate: func(c *ClientConfig) { c.Sync.WaitTimeout = 0 }, want: ErrInvalidSyncConfigs},
		{name: "ftp hub", mutate: func(c *ClientConfig) { c.Adapter.HubAddress = "ftp://hub" }, want: ErrInvalidAdapterConfigs},
		{name: "zero timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, want: ErrInvalidAdapterConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestServerConfig_Validate(t *testing.T) {
	d := defaults()

	cfg := &ServerConfig{Server: d.Server, Storage: d.Storage}
	assert.NoError(t, cfg.validate())

	cfg.Storage.DB.DSN = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg = &ServerConfig{Server: d.Server, Storage: d.Storage}
	cfg.Server.PeerTTL = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
}
