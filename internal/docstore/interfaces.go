// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package docstore

import (
	"context"

	"github.com/MKhiriev/memclip/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/docstore_mock.go -package=mock

// Node is a participant in replicated documents.
type Node interface {
	// PeerID identifies this node. It is also recorded as the author of
	// every entry the node writes.
	PeerID() string

	// Create starts a new document with this node as its only member.
	Create(ctx context.Context) (Document, error)

	// Open joins an existing document by id.
	Open(ctx context.Context, docID string) (Document, error)

	// Import joins the document a ticket points at.
	Import(ctx context.Context, ticket models.Ticket) (Document, error)
}

// Document is one replicated key-value document.
type Document interface {
	// ID returns the document identifier.
	ID() string

	// Set stores value under key and returns its content id. Setting the
	// same bytes twice yields the same id.
	Set(ctx context.Context, key string, value []byte) (models.ContentID, error)

	// Subscribe returns the live event stream. The channel is closed when
	// ctx ends or the document is closed; a document can be subscribed
	// only once.
	Subscribe(ctx context.Context) (<-chan models.LiveEvent, error)

	// Fetch returns the bytes behind id. It fails with
	// ErrContentNotAvailable unless the content is fully replicated to this
	// node.
	Fetch(ctx context.Context, id models.ContentID) ([]byte, error)

	// Share returns a ticket carrying the current peer list.
	Share(ctx context.Context) (models.Ticket, error)

	// Close leaves the document.
	Close(ctx context.Context) error
}
