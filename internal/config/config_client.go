package config

import "fmt"

// ClientConfig is the memclip client's view of [StructuredConfig].
type ClientConfig struct {
	App       App
	Clipboard Clipboard
	Sync      Sync
	Adapter   Adapter
	Telemetry Telemetry
}

// GetClientConfig builds and validates the client configuration from the
// environment, the parsed flagsCfg and the optional config file.
func GetClientConfig(flagsCfg *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flagsCfg)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App:       cfg.App,
		Clipboard: cfg.Clipboard,
		Sync:      cfg.Sync,
		Adapter:   cfg.Adapter,
		Telemetry: cfg.Telemetry,
	}

	return clientCfg, clientCfg.validate()
}
