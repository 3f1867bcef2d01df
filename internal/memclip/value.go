// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package memclip

import "github.com/cespare/xxhash/v2"

// SyncedValue is a snapshot of the shared clipboard value. Fingerprint is
// always the hash of Content.
type SyncedValue struct {
	Content     string
	Fingerprint uint64
}

// NewSyncedValue builds a SyncedValue with its fingerprint filled in.
func NewSyncedValue(content string) SyncedValue {
	return SyncedValue{
		Content:     content,
		Fingerprint: Fingerprint(content),
	}
}

// Fingerprint returns the 64-bit xxHash of content. It is used for equality
// checks only.
func Fingerprint(content string) uint64 {
	return xxhash.Sum64String(content)
}
