// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default values applied to every field left zero by all sources.
const (
	DefaultPollInterval   = time.Second
	DefaultWaitTimeout    = 5 * time.Second
	DefaultKey            = "memclip"
	DefaultMaxPayloadSize = int64(69 << 20)
	DefaultHubAddress     = "http://127.0.0.1:8089"
	DefaultListenAddress  = "127.0.0.1:8089"
	DefaultRequestTimeout = 15 * time.Second
	DefaultPollWait       = 25 * time.Second
	DefaultPeerTTL        = 60 * time.Second
	DefaultLogLevel       = "debug"
)

const appDirName = "memclip"

// DefaultDSN is the hub's SQLite database under the XDG data directory.
func DefaultDSN() string {
	return filepath.Join(xdg.DataHome, appDirName, "hub.db")
}

// DefaultLogFile is the client's log file under the XDG state directory.
func DefaultLogFile() string {
	return filepath.Join(xdg.StateHome, appDirName, "memclip.log")
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: DefaultLogLevel,
			LogFile:  DefaultLogFile(),
		},
		Clipboard: Clipboard{
			PollInterval:   DefaultPollInterval,
			MaxPayloadSize: DefaultMaxPayloadSize,
			Key:            DefaultKey,
		},
		Sync: Sync{
			WaitTimeout: DefaultWaitTimeout,
		},
		Adapter: Adapter{
			HubAddress:     DefaultHubAddress,
			RequestTimeout: DefaultRequestTimeout,
			PollWait:       DefaultPollWait,
		},
		Server: Server{
			HTTPAddress:    DefaultListenAddress,
			RequestTimeout: DefaultRequestTimeout,
			PeerTTL:        DefaultPeerTTL,
			MaxPollWait:    DefaultPollWait,
			MaxBlobSize:    DefaultMaxPayloadSize,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN()},
		},
	}
}
