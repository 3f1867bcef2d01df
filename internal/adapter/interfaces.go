// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport for talking to a memclip
// hub.
//
// The primary abstraction is [HubAdapter], which decouples the docstore from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPHubAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrPayloadTooLarge] for 413).
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/memclip/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/hub_adapter_mock.go -package=mock

// HubAdapter defines communication with a memclip hub. Implementations are
// responsible for serialisation and for mapping transport-level errors to the
// sentinel values defined in this package.
type HubAdapter interface {
	// BaseURL returns the hub address the adapter talks to. It is embedded in
	// session tickets.
	BaseURL() string

	// CreateDocument creates a new document with peerID as its first member.
	CreateDocument(ctx context.Context, peerID string) (models.DocumentResponse, error)

	// GetDocument returns the document and its current peer list. Returns
	// [ErrNotFound] (wrapped) for an unknown document.
	GetDocument(ctx context.Context, docID string) (models.DocumentResponse, error)

	// JoinDocument registers peerID as a member of docID and marks it online.
	JoinDocument(ctx context.Context, docID, peerID string) (models.DocumentResponse, error)

	// LeaveDocument marks peerID offline in docID.
	LeaveDocument(ctx context.Context, docID, peerID string) error

	// PutBlob uploads the bytes addressed by id. The hub verifies the digest.
	PutBlob(ctx context.Context, id models.ContentID, data []byte) error

	// GetBlob downloads the bytes addressed by id. Returns [ErrNotFound]
	// (wrapped) when the hub does not hold them.
	GetBlob(ctx context.Context, id models.ContentID) ([]byte, error)

	// SetEntry appends an entry pointing at an uploaded blob. The hub reports
	// Inserted=false when the key already points at the same content.
	SetEntry(ctx context.Context, docID string, req models.SetEntryRequest) (models.SetEntryResponse, error)

	// Events long-polls for events with a sequence number greater than after,
	// waiting up to wait for at least one to arrive. Polling also refreshes
	// peerID's presence.
	Events(ctx context.Context, docID, peerID string, after int64, wait time.Duration) (models.EventsResponse, error)

	// Version returns the hub build information.
	Version(ctx context.Context) (models.VersionResponse, error)
}
