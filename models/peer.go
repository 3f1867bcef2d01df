// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Peer describes one participant of a shared document as seen by the hub.
type Peer struct {
	ID       string    `json:"id"`
	Online   bool      `json:"online"`
	LastSeen time.Time `json:"last_seen"`
}

// PeerRef names a peer within a specific document.
type PeerRef struct {
	DocumentID string
	PeerID     string
}
