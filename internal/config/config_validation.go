// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks source-independent invariants of the merged
// [StructuredConfig]: no negative durations or sizes.
func (cfg *StructuredConfig) validate() error {
	if cfg.Clipboard.PollInterval < 0 || cfg.Clipboard.MaxPayloadSize < 0 {
		return ErrInvalidClipboardConfigs
	}

	if cfg.Sync.WaitTimeout < 0 {
		return ErrInvalidSyncConfigs
	}

	if cfg.Adapter.RequestTimeout < 0 || cfg.Adapter.PollWait < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.PeerTTL < 0 ||
		cfg.Server.MaxPollWait < 0 || cfg.Server.MaxBlobSize < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Clipboard.PollInterval <= 0 || cfg.Clipboard.MaxPayloadSize <= 0 ||
		strings.TrimSpace(cfg.Clipboard.Key) == "" {
		return ErrInvalidClipboardConfigs
	}

	if cfg.Sync.WaitTimeout <= 0 {
		return ErrInvalidSyncConfigs
	}

	if err := validateHubAddress(cfg.Adapter.HubAddress); err != nil {
		return err
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.PeerTTL <= 0 ||
		cfg.Server.RequestTimeout <= 0 || cfg.Server.MaxBlobSize <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func validateHubAddress(address string) error {
	u, err := url.Parse(address)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: hub address %q must be an http(s) URL", ErrInvalidAdapterConfigs, address)
	}

	return nil
}
