// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ContentID addresses a blob by the lowercase hex BLAKE2b-256 digest of its
// bytes. Two entries with identical bytes always share a ContentID.
type ContentID string

// String returns the hex digest.
func (c ContentID) String() string {
	return string(c)
}

// Short returns the first 10 characters of the digest for log output.
func (c ContentID) Short() string {
	if len(c) <= 10 {
		return string(c)
	}
	return string(c[:10])
}

// Entry is a single key/value record of a replicated document. The value
// itself lives in the blob store and is referenced by ContentID.
type Entry struct {
	// Key is the document key the entry was written under (e.g. "memclip").
	Key string `json:"key"`

	// ContentID addresses the value bytes.
	ContentID ContentID `json:"content_id"`

	// Size is the length of the value in bytes.
	Size int64 `json:"size"`

	// Author is the peer that wrote the entry.
	Author string `json:"author"`

	// Timestamp is the moment the hub accepted the entry.
	Timestamp time.Time `json:"timestamp"`
}
