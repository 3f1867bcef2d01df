package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// FileConfig is the on-disk layout of a config file. The same struct is
// decoded from JSON or TOML depending on the file extension.
type FileConfig struct {
	App struct {
		LogLevel  string `json:"log_level" toml:"log_level"`
		LogFile   string `json:"log_file" toml:"log_file"`
		Dashboard bool   `json:"tui" toml:"tui"`
		Version   string `json:"version" toml:"version"`
	} `json:"app,omitempty" toml:"app,omitempty"`

	Clipboard struct {
		PollInterval   Duration `json:"poll_interval" toml:"poll_interval"`
		MaxPayloadSize int64    `json:"max_payload_size" toml:"max_payload_size"`
		Key            string   `json:"key" toml:"key"`
	} `json:"clipboard,omitempty" toml:"clipboard,omitempty"`

	Sync struct {
		WaitTimeout Duration `json:"wait_timeout" toml:"wait_timeout"`
	} `json:"sync,omitempty" toml:"sync,omitempty"`

	Adapter struct {
		HubAddress     string   `json:"hub_address" toml:"hub_address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
		PollWait       Duration `json:"poll_wait" toml:"poll_wait"`
	} `json:"adapter,omitempty" toml:"adapter,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address" toml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
		PeerTTL        Duration `json:"peer_ttl" toml:"peer_ttl"`
		MaxPollWait    Duration `json:"max_poll_wait" toml:"max_poll_wait"`
		MaxBlobSize    int64    `json:"max_blob_size" toml:"max_blob_size"`
	} `json:"server,omitempty" toml:"server,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" toml:"dsn"`
		} `json:"db,omitempty" toml:"db,omitempty"`
	} `json:"storage,omitempty" toml:"storage,omitempty"`

	Telemetry struct {
		MetricsAddress string `json:"metrics_address" toml:"metrics_address"`
	} `json:"telemetry,omitempty" toml:"telemetry,omitempty"`
}

// parseFile reads the config file at path. Files ending in .toml are decoded
// with go-toml, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err = toml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding toml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fileCfg.toStructured(), nil
}

func (f *FileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel:  f.App.LogLevel,
			LogFile:   f.App.LogFile,
			Dashboard: f.App.Dashboard,
			Version:   f.App.Version,
		},
		Clipboard: Clipboard{
			PollInterval:   time.Duration(f.Clipboard.PollInterval),
			MaxPayloadSize: f.Clipboard.MaxPayloadSize,
			Key:            f.Clipboard.Key,
		},
		Sync: Sync{
			WaitTimeout: time.Duration(f.Sync.WaitTimeout),
		},
		Adapter: Adapter{
			HubAddress:     f.Adapter.HubAddress,
			RequestTimeout: time.Duration(f.Adapter.RequestTimeout),
			PollWait:       time.Duration(f.Adapter.PollWait),
		},
		Server: Server{
			HTTPAddress:    f.Server.HTTPAddress,
			RequestTimeout: time.Duration(f.Server.RequestTimeout),
			PeerTTL:        time.Duration(f.Server.PeerTTL),
			MaxPollWait:    time.Duration(f.Server.MaxPollWait),
			MaxBlobSize:    f.Server.MaxBlobSize,
		},
		Storage: Storage{
			DB: DB{DSN: f.Storage.DB.DSN},
		},
		Telemetry: Telemetry{
			MetricsAddress: f.Telemetry.MetricsAddress,
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in both JSON and TOML. Bare JSON numbers are nanoseconds.
type Duration time.Duration

// UnmarshalJSON accepts a duration string or a number of nanoseconds.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

// UnmarshalText parses a time.ParseDuration string. go-toml uses it for
// TOML string values.
func (d *Duration) UnmarshalText(text []byte) error {
	tmp, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

// MarshalJSON encodes the duration as its string form.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// MarshalText encodes the duration as its string form.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}
