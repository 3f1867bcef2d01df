// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains user-facing message strings shared by the memclip
// binaries and the hub's HTTP layer.
package app

const (
	// MsgInternalServerError replaces the body of every 5xx hub response.
	MsgInternalServerError = "internal server error"

	// MsgAlreadyRunning is printed when another memclip daemon holds the
	// single-instance lock.
	MsgAlreadyRunning = "memclip is already running for this user"

	// MsgNoClipboard is printed when the OS exposes no clipboard backend.
	MsgNoClipboard = "no clipboard backend available (install xclip, xsel or wl-clipboard)"

	// MsgInvalidTicket is printed when `memclip join` gets a malformed ticket.
	MsgInvalidTicket = "invalid ticket"

	// MsgSessionStarted precedes the ticket printed by `memclip start`.
	MsgSessionStarted = "session started, join from another device with:"

	// MsgSessionJoined precedes the refreshed ticket printed by `memclip join`.
	MsgSessionJoined = "joined session, updated ticket:"
)
