// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package memclip

import (
	"context"
	"sync"
	"time"
)

// State owns the single authoritative [SyncedValue] of a session.
//
// Change notification is a one-slot channel: SignalChanged never blocks, a
// signal sent while nobody waits is kept until the next WaitForChange, and
// repeated signals before a wakeup collapse into one. Exactly one waiter is
// woken per signal.
//
// State also remembers the fingerprint the document is known to hold, either
// because this node published it or because it arrived from a peer.
type State struct {
	mu      sync.Mutex
	value   SyncedValue
	stored  uint64
	changed chan struct{}
}

// NewState creates the shared state seeded with the clipboard's initial
// contents.
func NewState(initial string) *State {
	value := NewSyncedValue(initial)
	return &State{
		value:   value,
		stored:  value.Fingerprint,
		changed: make(chan struct{}, 1),
	}
}

// Read returns a copy of the current value.
func (s *State) Read() SyncedValue {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.value
}

// Replace swaps in content, recomputes the fingerprint and returns the
// fingerprint that was current before the swap.
func (s *State) Replace(content string) uint64 {
	next := NewSyncedValue(content)

	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.value.Fingerprint
	s.value = next
	return previous
}

// ApplyRemote replaces the value with content received from the document and
// records it as stored. It returns the previous fingerprint.
func (s *State) ApplyRemote(content string) uint64 {
	next := NewSyncedValue(content)

	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.value.Fingerprint
	s.value = next
	s.stored = next.Fingerprint
	return previous
}

// MarkStored records that the document accepted the value with fingerprint
// fp. It is a no-op once the shared value has moved on, so a slow push never
// hides a newer remote value.
func (s *State) MarkStored(fp uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.value.Fingerprint == fp {
		s.stored = fp
	}
}

// Stored returns the fingerprint the document is known to hold.
func (s *State) Stored() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.stored
}

// SignalChanged wakes one goroutine blocked in WaitForChange.
func (s *State) SignalChanged() {
	select {
	case s.changed <- struct{}{}:
	default:
		// a wakeup is already pending
	}
}

// WaitForChange blocks until SignalChanged is called, timeout elapses or ctx
// is done. It returns the snapshot current at wakeup and whether the wakeup
// came from a signal. A signalled wakeup does not guarantee new data: callers
// compare the fingerprint with the last one they acted on.
//
// A non-positive timeout waits for a signal or ctx only.
func (s *State) WaitForChange(ctx context.Context, timeout time.Duration) (SyncedValue, bool, error) {
	var expired <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case <-ctx.Done():
		return SyncedValue{}, false, ctx.Err()
	case <-s.changed:
		return s.Read(), true, nil
	case <-expired:
		return s.Read(), false, nil
	}
}
