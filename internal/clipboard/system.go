// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package clipboard

import (
	"fmt"
	"runtime"

	"github.com/atotto/clipboard"
)

type systemClipboard struct{}

// NewSystemClipboard returns the OS clipboard. It fails with [ErrNoBackend]
// when the platform has no supported clipboard utility.
func NewSystemClipboard() (Clipboard, error) {
	if clipboard.Unsupported {
		return nil, fmt.Errorf("%w on %s", ErrNoBackend, runtime.GOOS)
	}
	return systemClipboard{}, nil
}

func (systemClipboard) Get() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	return text, nil
}

func (systemClipboard) Set(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}
