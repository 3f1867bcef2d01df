package store

import (
	"context"
	"time"

	"github.com/MKhiriev/memclip/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// HubRepository persists the hub's documents, peers, blobs and event log.
type HubRepository interface {
	CreateDocument(ctx context.Context, docID string, createdAt time.Time) error
	DocumentExists(ctx context.Context, docID string) (bool, error)

	// SetPeerOnline records peerID as online in docID and reports whether it
	// was unknown or offline before.
	SetPeerOnline(ctx context.Context, docID, peerID string, seen time.Time) (bool, error)
	// SetPeerOffline records peerID as offline and reports whether it was
	// online before.
	SetPeerOffline(ctx context.Context, docID, peerID string) (bool, error)
	ListPeers(ctx context.Context, docID string) ([]models.Peer, error)
	// ExpirePeers marks every online peer last seen before the given time
	// as offline and returns them.
	ExpirePeers(ctx context.Context, before time.Time) ([]models.PeerRef, error)

	SaveBlob(ctx context.Context, id models.ContentID, data []byte) error
	GetBlob(ctx context.Context, id models.ContentID) ([]byte, error)
	HasBlob(ctx context.Context, id models.ContentID) (bool, error)

	// LatestEntry returns the newest entry event for key, or ErrNotFound.
	LatestEntry(ctx context.Context, docID, key string) (models.HubEvent, error)
	// AppendEvent stores ev and returns its sequence number.
	AppendEvent(ctx context.Context, docID string, ev models.HubEvent) (int64, error)
	// ListEvents returns up to limit events with a sequence above after, in
	// sequence order.
	ListEvents(ctx context.Context, docID string, after int64, limit uint64) ([]models.HubEvent, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
