// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// HubEventKind enumerates the records kept in a document's event log on the hub.
type HubEventKind string

const (
	HubEventEntry      HubEventKind = "entry"
	HubEventPeerJoined HubEventKind = "peer_joined"
	HubEventPeerLeft   HubEventKind = "peer_left"
)

// HubEvent is a single record of a document's event log. Seq is strictly
// increasing within the hub and is used as the long-poll cursor.
type HubEvent struct {
	Seq       int64        `json:"seq"`
	Kind      HubEventKind `json:"kind"`
	Entry     *Entry       `json:"entry,omitempty"`
	PeerID    string       `json:"peer_id,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

// PeerRequest is the body of document create and join requests.
type PeerRequest struct {
	PeerID string `json:"peer_id"`
}

// DocumentResponse describes a document and its current participants.
type DocumentResponse struct {
	DocumentID string `json:"document_id"`
	Peers      []Peer `json:"peers"`
}

// SetEntryRequest is the body of an entry write.
type SetEntryRequest struct {
	Key       string    `json:"key"`
	ContentID ContentID `json:"content_id"`
	Size      int64     `json:"size"`
	Author    string    `json:"author"`
}

// SetEntryResponse reports the outcome of an entry write. Inserted is false
// when the latest entry for the key already referenced the same content.
type SetEntryResponse struct {
	Seq      int64 `json:"seq"`
	Inserted bool  `json:"inserted"`
}

// EventsRequest is a long-poll for a document's events. It is built from
// the query string of the events endpoint.
type EventsRequest struct {
	DocumentID string
	PeerID     string
	After      int64
	Wait       time.Duration
}

// EventsResponse is one page of a document's event log. Next is the cursor to
// pass as "after" on the following poll.
type EventsResponse struct {
	Events []HubEvent `json:"events"`
	Next   int64      `json:"next"`
}

// VersionResponse is returned by the hub's version endpoint.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
