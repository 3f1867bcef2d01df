// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package docstore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/memclip/internal/adapter"
	"github.com/MKhiriev/memclip/internal/logger"
	"github.com/MKhiriev/memclip/internal/utils"
	"github.com/MKhiriev/memclip/models"
)

// Dialer builds an adapter for a hub address taken from a ticket.
type Dialer func(address string) (adapter.HubAdapter, error)

// HubNodeConfig configures a [HubNode].
type HubNodeConfig struct {
	// PeerID is the node identity. A fresh id is generated when empty.
	PeerID string

	// PollWait is the long-poll wait requested from the hub.
	PollWait time.Duration

	// MaxDownload is the size at or above which remote content is announced
	// but never downloaded. Zero disables the limit.
	MaxDownload int64

	// CacheBytes bounds the local blob cache. Zero keeps everything.
	CacheBytes int64

	// Dial is used by Import when a ticket names a hub other than the
	// node's default one. Nil rejects such tickets with ErrHubMismatch.
	Dial Dialer
}

// HubNode is a [Node] that replicates through a memclip hub.
type HubNode struct {
	peerID      string
	hub         adapter.HubAdapter
	dial        Dialer
	blobs       *BlobCache
	pollWait    time.Duration
	maxDownload int64

	logger *logger.Logger
}

// NewHubNode creates a node talking to hub by default.
func NewHubNode(hub adapter.HubAdapter, cfg HubNodeConfig, log *logger.Logger) *HubNode {
	peerID := cfg.PeerID
	if peerID == "" {
		peerID = utils.NewID()
	}

	return &HubNode{
		peerID:      peerID,
		hub:         hub,
		dial:        cfg.Dial,
		blobs:       NewBlobCache(cfg.CacheBytes),
		pollWait:    cfg.PollWait,
		maxDownload: cfg.MaxDownload,
		logger:      log,
	}
}

// PeerID implements [Node].
func (n *HubNode) PeerID() string {
	return n.peerID
}

// Create implements [Node].
func (n *HubNode) Create(ctx context.Context) (Document, error) {
	resp, err := n.hub.CreateDocument(ctx, n.peerID)
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}

	n.logger.Info().
		Str("func", "HubNode.Create").
		Str("doc_id", resp.DocumentID).
		Str("peer_id", n.peerID).
		Msg("document created")

	return n.newDocument(resp.DocumentID, n.hub), nil
}

// Open implements [Node].
func (n *HubNode) Open(ctx context.Context, docID string) (Document, error) {
	return n.join(ctx, n.hub, docID)
}

// Import implements [Node].
func (n *HubNode) Import(ctx context.Context, ticket models.Ticket) (Document, error) {
	hub := n.hub
	if ticket.Hub != "" && ticket.Hub != n.hub.BaseURL() {
		if n.dial == nil {
			return nil, fmt.Errorf("%w: %s", ErrHubMismatch, ticket.Hub)
		}

		dialed, err := n.dial(ticket.Hub)
		if err != nil {
			return nil, fmt.Errorf("dial hub %s: %w", ticket.Hub, err)
		}
		hub = dialed
	}

	return n.join(ctx, hub, ticket.DocumentID)
}

func (n *HubNode) join(ctx context.Context, hub adapter.HubAdapter, docID string) (Document, error) {
	if _, err := hub.JoinDocument(ctx, docID, n.peerID); err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, docID)
		}
		return nil, fmt.Errorf("join document: %w", err)
	}

	n.logger.Info().
		Str("func", "HubNode.join").
		Str("doc_id", docID).
		Str("peer_id", n.peerID).
		Msg("document joined")

	return n.newDocument(docID, hub), nil
}

func (n *HubNode) newDocument(docID string, hub adapter.HubAdapter) *hubDocument {
	return &hubDocument{
		id:   docID,
		node: n,
		hub:  hub,
		log:  n.logger.Component("docstore"),
	}
}

// hubDocument is a [Document] relayed through a hub.
type hubDocument struct {
	id   string
	node *HubNode
	hub  adapter.HubAdapter
	log  *logger.Logger

	mu         sync.Mutex
	subscribed bool
	closed     bool
	closing    chan struct{}
}

// ID implements [Document].
func (d *hubDocument) ID() string {
	return d.id
}

// Set implements [Document]. The blob is cached locally, uploaded, and then
// referenced by a new entry.
func (d *hubDocument) Set(ctx context.Context, key string, value []byte) (models.ContentID, error) {
	if d.isClosed() {
		return "", ErrDocumentClosed
	}

	id := utils.ContentIDOf(value)
	d.node.blobs.Put(id, value)

	if err := d.hub.PutBlob(ctx, id, value); err != nil {
		return "", fmt.Errorf("upload blob %s: %w", id.Short(), err)
	}

	resp, err := d.hub.SetEntry(ctx, d.id, models.SetEntryRequest{
		Key:       key,
		ContentID: id,
		Size:      int64(len(value)),
		Author:    d.node.peerID,
	})
	if err != nil {
		return "", fmt.Errorf("set entry %s: %w", key, err)
	}

	d.log.Debug().
		Str("func", "hubDocument.Set").
		Str("key", key).
		Str("content_id", id.Short()).
		Int64("seq", resp.Seq).
		Bool("inserted", resp.Inserted).
		Msg("entry set")

	return id, nil
}

// Fetch implements [Document].
func (d *hubDocument) Fetch(_ context.Context, id models.ContentID) ([]byte, error) {
	data, ok := d.node.blobs.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrContentNotAvailable, id.Short())
	}
	return data, nil
}

// Share implements [Document].
func (d *hubDocument) Share(ctx context.Context) (models.Ticket, error) {
	resp, err := d.hub.GetDocument(ctx, d.id)
	if err != nil {
		return models.Ticket{}, fmt.Errorf("share document: %w", err)
	}

	peers := make([]string, 0, len(resp.Peers))
	for _, p := range resp.Peers {
		peers = append(peers, p.ID)
	}

	return models.Ticket{
		DocumentID: d.id,
		Hub:        d.hub.BaseURL(),
		Peers:      peers,
	}, nil
}

// Close implements [Document]. It stops the event stream and leaves the
// document. Closing twice is a no-op.
func (d *hubDocument) Close(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	if d.closing != nil {
		close(d.closing)
	}
	d.mu.Unlock()

	if err := d.hub.LeaveDocument(ctx, d.id, d.node.peerID); err != nil {
		return fmt.Errorf("leave document: %w", err)
	}
	return nil
}

func (d *hubDocument) isClosed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}
