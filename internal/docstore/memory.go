// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package docstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/memclip/internal/utils"
	"github.com/MKhiriev/memclip/models"
)

// MemoryHub is the hub address carried by tickets of a [MemoryNetwork].
const MemoryHub = "memory://local"

// MemoryNetwork is an in-process set of documents shared by any number of
// nodes. Content written by one node is immediately complete for every other
// node.
type MemoryNetwork struct {
	mu   sync.Mutex
	docs map[string]*memoryDoc
}

// NewMemoryNetwork creates an empty network.
func NewMemoryNetwork() *MemoryNetwork {
	return &MemoryNetwork{docs: make(map[string]*memoryDoc)}
}

// NewNode returns a node identified by peerID. An empty id is generated.
func (n *MemoryNetwork) NewNode(peerID string) Node {
	if peerID == "" {
		peerID = utils.NewID()
	}
	return &memoryNode{network: n, peerID: peerID}
}

func (n *MemoryNetwork) doc(id string) (*memoryDoc, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	doc, ok := n.docs[id]
	return doc, ok
}

type memoryDoc struct {
	id string

	mu     sync.Mutex
	log    []models.HubEvent
	blobs  map[models.ContentID][]byte
	latest map[string]models.ContentID
	peers  map[string]*models.Peer
	wake   chan struct{}
}

func (d *memoryDoc) appendLocked(ev models.HubEvent) int64 {
	ev.Seq = int64(len(d.log)) + 1
	ev.CreatedAt = time.Now()
	d.log = append(d.log, ev)

	close(d.wake)
	d.wake = make(chan struct{})

	return ev.Seq
}

func (d *memoryDoc) setPresence(peerID string, online bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	p, ok := d.peers[peerID]
	if !ok {
		p = &models.Peer{ID: peerID}
		d.peers[peerID] = p
	}
	if ok && p.Online == online {
		return
	}
	p.Online = online
	p.LastSeen = time.Now()

	kind := models.HubEventPeerJoined
	if !online {
		kind = models.HubEventPeerLeft
	}
	d.appendLocked(models.HubEvent{Kind: kind, PeerID: peerID})
}

// after returns the events past cursor and the channel closed on the next
// append.
func (d *memoryDoc) after(cursor int64) ([]models.HubEvent, <-chan struct{}) {
	d.mu.Lock()
	defer d.mu.Unlock()

	events := append([]models.HubEvent(nil), d.log[cursor:]...)
	return events, d.wake
}

type memoryNode struct {
	network *MemoryNetwork
	peerID  string
}

func (m *memoryNode) PeerID() string {
	return m.peerID
}

func (m *memoryNode) Create(_ context.Context) (Document, error) {
	doc := &memoryDoc{
		id:     utils.NewID(),
		blobs:  make(map[models.ContentID][]byte),
		latest: make(map[string]models.ContentID),
		peers:  make(map[string]*models.Peer),
		wake:   make(chan struct{}),
	}

	m.network.mu.Lock()
	m.network.docs[doc.id] = doc
	m.network.mu.Unlock()

	doc.setPresence(m.peerID, true)
	return &memoryDocument{doc: doc, peerID: m.peerID}, nil
}

func (m *memoryNode) Open(_ context.Context, docID string) (Document, error) {
	doc, ok := m.network.doc(docID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, docID)
	}

	doc.setPresence(m.peerID, true)
	return &memoryDocument{doc: doc, peerID: m.peerID}, nil
}

func (m *memoryNode) Import(ctx context.Context, ticket models.Ticket) (Document, error) {
	if ticket.Hub != MemoryHub {
		return nil, fmt.Errorf("%w: %s", ErrHubMismatch, ticket.Hub)
	}
	return m.Open(ctx, ticket.DocumentID)
}

type memoryDocument struct {
	doc    *memoryDoc
	peerID string

	mu         sync.Mutex
	subscribed bool
	closed     bool
	closing    chan struct{}
}

func (m *memoryDocument) ID() string {
	return m.doc.id
}

func (m *memoryDocument) Set(_ context.Context, key string, value []byte) (models.ContentID, error) {
	id := utils.ContentIDOf(value)

	d := m.doc
	d.mu.Lock()
	defer d.mu.Unlock()

	d.blobs[id] = append([]byte(nil), value...)
	if d.latest[key] == id {
		return id, nil
	}
	d.latest[key] = id

	d.appendLocked(models.HubEvent{
		Kind: models.HubEventEntry,
		Entry: &models.Entry{
			Key:       key,
			ContentID: id,
			Size:      int64(len(value)),
			Author:    m.peerID,
			Timestamp: time.Now(),
		},
	})
	return id, nil
}

func (m *memoryDocument) Fetch(_ context.Context, id models.ContentID) ([]byte, error) {
	m.doc.mu.Lock()
	defer m.doc.mu.Unlock()

	data, ok := m.doc.blobs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrContentNotAvailable, id.Short())
	}
	return data, nil
}

func (m *memoryDocument) Share(_ context.Context) (models.Ticket, error) {
	m.doc.mu.Lock()
	defer m.doc.mu.Unlock()

	peers := make([]string, 0, len(m.doc.peers))
	for id := range m.doc.peers {
		peers = append(peers, id)
	}
	sort.Strings(peers)

	return models.Ticket{DocumentID: m.doc.id, Hub: MemoryHub, Peers: peers}, nil
}

func (m *memoryDocument) Subscribe(ctx context.Context) (<-chan models.LiveEvent, error) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil, ErrDocumentClosed
	}
	if m.subscribed {
		m.mu.Unlock()
		return nil, ErrAlreadySubscribed
	}
	m.subscribed = true
	m.closing = make(chan struct{})
	closing := m.closing
	m.mu.Unlock()

	out := make(chan models.LiveEvent, eventBuffer)
	go func() {
		defer close(out)

		var cursor int64
		for {
			events, wake := m.doc.after(cursor)
			for _, ev := range events {
				cursor = ev.Seq
				live, ok := m.translate(ev)
				if !ok {
					continue
				}
				select {
				case out <- live:
				case <-ctx.Done():
					return
				case <-closing:
					return
				}
			}

			select {
			case <-wake:
			case <-ctx.Done():
				return
			case <-closing:
				return
			}
		}
	}()

	return out, nil
}

func (m *memoryDocument) translate(ev models.HubEvent) (models.LiveEvent, bool) {
	switch ev.Kind {
	case models.HubEventEntry:
		eventType := models.EventInsertRemote
		if ev.Entry.Author == m.peerID {
			eventType = models.EventInsertLocal
		}
		return models.LiveEvent{
			Type:          eventType,
			Entry:         *ev.Entry,
			ContentStatus: models.ContentComplete,
			ContentID:     ev.Entry.ContentID,
			PeerID:        ev.Entry.Author,
		}, true
	case models.HubEventPeerJoined, models.HubEventPeerLeft:
		if ev.PeerID == m.peerID {
			return models.LiveEvent{}, false
		}
		eventType := models.EventPeerJoined
		if ev.Kind == models.HubEventPeerLeft {
			eventType = models.EventPeerLeft
		}
		return models.LiveEvent{Type: eventType, PeerID: ev.PeerID}, true
	default:
		return models.LiveEvent{}, false
	}
}

func (m *memoryDocument) Close(_ context.Context) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	if m.closing != nil {
		close(m.closing)
	}
	m.mu.Unlock()

	m.doc.setPresence(m.peerID, false)
	return nil
}
