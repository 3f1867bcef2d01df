// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/memclip/internal/docstore"
	"github.com/MKhiriev/memclip/models"
)

// ClipboardWatcher polls the OS clipboard and reconciles it with the shared
// state.
type ClipboardWatcher interface {
	// Poll runs a single reconciliation step.
	Poll(ctx context.Context)

	// Run polls on every interval until ctx is cancelled.
	Run(ctx context.Context) error
}

// RemotePublisher pushes local changes of the shared state to the document.
type RemotePublisher interface {
	// Run waits for change signals and publishes until ctx is cancelled.
	Run(ctx context.Context) error
}

// RemoteSubscriber applies remote document entries to the shared state.
type RemoteSubscriber interface {
	// Run consumes the document's live events until ctx is cancelled or the
	// stream ends.
	Run(ctx context.Context) error
}

// Session is an open shared document together with the ticket that lets
// other devices join it.
type Session struct {
	Document docstore.Document
	Ticket   models.Ticket
}

// SessionService opens clipboard sessions.
type SessionService interface {
	// Start creates a new session.
	Start(ctx context.Context) (Session, error)

	// Join enters the session a ticket points at.
	Join(ctx context.Context, ticket models.Ticket) (Session, error)

	// Leave closes the session's document.
	Leave(ctx context.Context, session Session) error
}
