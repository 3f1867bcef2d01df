package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8089}, expected: "localhost:8089"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Host: "", Port: 8089}, expected: ":8089"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8089", expectedAddr: NetAddress{Host: "localhost", Port: 8089}},
		{name: "valid IPv4", input: "0.0.0.0:9090", expectedAddr: NetAddress{Host: "0.0.0.0", Port: 9090}},
		{name: "missing colon", input: "localhost8089", expectError: true, errorMsg: "need address in a form `host:port`"},
		{name: "multiple colons", input: "host:port:extra", expectError: true, errorMsg: "need address in a form `host:port`"},
		{name: "non-numeric port", input: "localhost:abc", expectError: true, errorMsg: "invalid syntax"},
		{name: "zero port", input: "localhost:0", expectError: true, errorMsg: "port number"},
		{name: "port too large", input: "localhost:70000", expectError: true, errorMsg: "port number"},
		{name: "invalid IP address", input: "invalid.host:8089", expectError: true, errorMsg: "incorrect IP-address provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, *addr)
		})
	}
}

func TestBindClientFlags(t *testing.T) {
	fs := pflag.NewFlagSet("memclip", pflag.ContinueOnError)
	cfg := BindClientFlags(fs)

	err := fs.Parse([]string{
		"--hub", "http://10.1.1.1:8089",
		"--poll-interval", "200ms",
		"--wait-timeout", "2s",
		"--request-timeout", "7s",
		"--log-file", "/tmp/memclip.log",
		"--log-level", "info",
		"--metrics-address", "127.0.0.1:9464",
		"--tui",
		"-c", "/etc/memclip.toml",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://10.1.1.1:8089", cfg.Adapter.HubAddress)
	assert.Equal(t, 200*time.Millisecond, cfg.Clipboard.PollInterval)
	assert.Equal(t, 2*time.Second, cfg.Sync.WaitTimeout)
	assert.Equal(t, 7*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/memclip.log", cfg.App.LogFile)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "127.0.0.1:9464", cfg.Telemetry.MetricsAddress)
	assert.True(t, cfg.App.Dashboard)
	assert.Equal(t, "/etc/memclip.toml", cfg.ConfigFilePath)
}

func TestBindClientFlags_NoFlags(t *testing.T) {
	fs := pflag.NewFlagSet("memclip", pflag.ContinueOnError)
	cfg := BindClientFlags(fs)

	require.NoError(t, fs.Parse(nil))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBindServerFlags(t *testing.T) {
	fs := pflag.NewFlagSet("memclip-hub", pflag.ContinueOnError)
	cfg := BindServerFlags(fs)

	err := fs.Parse([]string{
		"-a", "0.0.0.0:8089",
		"-d", "postgres://u:p@localhost/memclip",
		"--peer-ttl", "2m",
		"--request-timeout", "9s",
	})
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8089", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://u:p@localhost/memclip", cfg.Storage.DB.DSN)
	assert.Equal(t, 2*time.Minute, cfg.Server.PeerTTL)
	assert.Equal(t, 9*time.Second, cfg.Server.RequestTimeout)
}

func TestBindServerFlags_InvalidAddress(t *testing.T) {
	fs := pflag.NewFlagSet("memclip-hub", pflag.ContinueOnError)
	BindServerFlags(fs)

	err := fs.Parse([]string{"-a", "not-an-address"})
	assert.Error(t, err)
}
