// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package memclip holds the shared reconciliation state of a clipboard
// session: the last value known to be in sync between the local clipboard
// and the replicated document, its fingerprint, and the wakeup used by the
// local watcher to hand new values to the publisher.
//
// The state is a monitor. Every read and write goes through a single mutex,
// and no caller may hold it across I/O: snapshots are copied out and the
// clipboard or network call happens on the copy.
//
// The package also provides [Peers], the read-only view of session
// participants maintained by the remote subscriber.
package memclip
