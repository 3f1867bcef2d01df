// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package memclip

import (
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/memclip/models"
)

// Peers is the registry of session participants and their online status.
// It is written by the remote subscriber and read by the dashboard; it takes
// no part in reconciliation.
type Peers struct {
	mu    sync.RWMutex
	peers map[string]models.Peer
	now   func() time.Time
}

// NewPeers creates an empty registry.
func NewPeers() *Peers {
	return &Peers{
		peers: make(map[string]models.Peer),
		now:   time.Now,
	}
}

// Seed records peers known before the subscription starts, e.g. the ones
// listed in a ticket. Existing records are left untouched.
func (p *Peers) Seed(ids ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, id := range ids {
		if _, ok := p.peers[id]; ok || id == "" {
			continue
		}
		p.peers[id] = models.Peer{ID: id}
	}
}

// MarkOnline records that peerID came online.
func (p *Peers) MarkOnline(peerID string) {
	p.set(peerID, true)
}

// MarkOffline records that peerID went offline.
func (p *Peers) MarkOffline(peerID string) {
	p.set(peerID, false)
}

func (p *Peers) set(peerID string, online bool) {
	if peerID == "" {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.peers[peerID] = models.Peer{ID: peerID, Online: online, LastSeen: p.now()}
}

// Snapshot returns all known peers ordered by id.
func (p *Peers) Snapshot() []models.Peer {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]models.Peer, 0, len(p.peers))
	for _, peer := range p.peers {
		out = append(out, peer)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Online returns the number of peers currently online.
func (p *Peers) Online() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	n := 0
	for _, peer := range p.peers {
		if peer.Online {
			n++
		}
	}
	return n
}
