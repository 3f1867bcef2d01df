// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EventType enumerates the kinds of live events a subscribed document emits.
type EventType string

const (
	// EventInsertLocal reports an entry written by this node.
	EventInsertLocal EventType = "insert_local"
	// EventInsertRemote reports an entry written by another peer.
	EventInsertRemote EventType = "insert_remote"
	// EventContentReady reports that the bytes behind a content id finished
	// replicating to this node.
	EventContentReady EventType = "content_ready"
	// EventPeerJoined reports a peer coming online in the document.
	EventPeerJoined EventType = "peer_joined"
	// EventPeerLeft reports a peer going offline.
	EventPeerLeft EventType = "peer_left"
)

// ContentStatus describes how much of an entry's value is available locally
// at the time the entry is announced.
type ContentStatus int

const (
	// ContentMissing means none of the bytes are available.
	ContentMissing ContentStatus = iota
	// ContentIncomplete means replication has started but not finished.
	ContentIncomplete
	// ContentComplete means the bytes can be fetched right away.
	ContentComplete
)

// String returns a readable name for logs.
func (s ContentStatus) String() string {
	switch s {
	case ContentComplete:
		return "complete"
	case ContentIncomplete:
		return "incomplete"
	default:
		return "missing"
	}
}

// LiveEvent is one item of a document subscription.
//
// Which fields are set depends on Type:
//   - EventInsertLocal, EventInsertRemote: Entry (and ContentStatus for remote)
//   - EventContentReady: ContentID
//   - EventPeerJoined, EventPeerLeft: PeerID
type LiveEvent struct {
	Type          EventType
	Entry         Entry
	ContentStatus ContentStatus
	ContentID     ContentID
	PeerID        string
}
