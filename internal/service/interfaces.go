// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/memclip/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// HubService is the hub side of the replicated document store: document
// lifecycle, presence, the blob store and the per-document event log.
type HubService interface {
	CreateDocument(ctx context.Context, peerID string) (models.DocumentResponse, error)
	GetDocument(ctx context.Context, docID string) (models.DocumentResponse, error)
	JoinDocument(ctx context.Context, docID, peerID string) (models.DocumentResponse, error)
	LeaveDocument(ctx context.Context, docID, peerID string) error

	PutBlob(ctx context.Context, id models.ContentID, data []byte) error
	GetBlob(ctx context.Context, id models.ContentID) ([]byte, error)

	SetEntry(ctx context.Context, docID string, req models.SetEntryRequest) (models.SetEntryResponse, error)

	// Events returns the document's events with a sequence greater than
	// after. When there are none it waits up to wait for new ones. Polling
	// marks peerID as online.
	Events(ctx context.Context, docID, peerID string, after int64, wait time.Duration) (models.EventsResponse, error)

	// SweepPeers marks every peer that has not been seen within ttl as
	// offline and returns how many were marked.
	SweepPeers(ctx context.Context, ttl time.Duration) (int, error)
}

// AppInfoService reports build information of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}
