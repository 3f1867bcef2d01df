// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/memclip/models"
)

// Client is a clipboard daemon that either starts a new session or joins an
// existing one and then runs until ctx ends.
type Client interface {
	// Start creates a session and prints its ticket.
	Start(ctx context.Context) error

	// Join enters the session ticket points at and prints the refreshed
	// ticket.
	Join(ctx context.Context, ticket models.Ticket) error
}
