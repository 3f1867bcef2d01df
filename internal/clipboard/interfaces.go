// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package clipboard provides access to the operating system clipboard.
package clipboard

//go:generate mockgen -source=interfaces.go -destination=../mock/clipboard_mock.go -package=mock

// Clipboard reads and writes the text contents of a clipboard.
type Clipboard interface {
	// Get returns the current clipboard text.
	Get() (string, error)

	// Set replaces the clipboard text.
	Set(text string) error
}
