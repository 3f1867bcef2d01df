// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package clipboard

import "errors"

var (
	// ErrNoBackend is returned when no clipboard utility is available on the
	// host (e.g. no xclip, xsel or wl-clipboard on Linux).
	ErrNoBackend = errors.New("no clipboard backend available")
)
