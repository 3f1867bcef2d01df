package config

import "fmt"

// ServerConfig is the memclip hub's view of [StructuredConfig].
type ServerConfig struct {
	App       App
	Server    Server
	Storage   Storage
	Telemetry Telemetry
}

// GetServerConfig builds and validates the hub configuration from the
// environment, the parsed flagsCfg and the optional config file.
func GetServerConfig(flagsCfg *StructuredConfig) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(flagsCfg)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App:       cfg.App,
		Server:    cfg.Server,
		Storage:   cfg.Storage,
		Telemetry: cfg.Telemetry,
	}

	return serverCfg, serverCfg.validate()
}
