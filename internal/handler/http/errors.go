// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors for malformed requests that never reach the service layer.
var (
	// ErrInvalidJSON is returned when a request body is not the expected
	// JSON document.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrInvalidCursor is returned when the "after" query parameter is not
	// an integer.
	ErrInvalidCursor = errors.New("invalid `after` query parameter")

	// ErrInvalidWait is returned when the "wait" query parameter is neither
	// a Go duration nor a number of seconds.
	ErrInvalidWait = errors.New("invalid `wait` query parameter")

	// ErrBodyTooLarge is returned when an uploaded blob exceeds the hub's
	// size ceiling.
	ErrBodyTooLarge = errors.New("request body too large")
)
