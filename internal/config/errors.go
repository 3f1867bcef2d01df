package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidClipboardConfigs indicates a non-positive poll interval,
	// payload ceiling or an empty document key.
	ErrInvalidClipboardConfigs = errors.New("invalid clipboard configuration")
	// ErrInvalidSyncConfigs indicates a non-positive publisher wait timeout.
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
	// ErrInvalidAdapterConfigs indicates a malformed hub address or timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidServerConfigs indicates invalid hub listener settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates an empty database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
