// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

// ErrUserQuit is returned by Run when the user closed the dashboard.
var ErrUserQuit = errors.New("dashboard closed by user")
