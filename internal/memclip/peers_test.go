// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package memclip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeers_OnlineOffline(t *testing.T) {
	p := NewPeers()
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	p.now = func() time.Time { return fixed }

	p.MarkOnline("b")
	p.MarkOnline("a")
	p.MarkOffline("b")

	snap := p.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "a", snap[0].ID)
	assert.True(t, snap[0].Online)
	assert.Equal(t, fixed, snap[0].LastSeen)
	assert.Equal(t, "b", snap[1].ID)
	assert.False(t, snap[1].Online)
	assert.Equal(t, 1, p.Online())
}

func TestPeers_SeedKeepsExisting(t *testing.T) {
	p := NewPeers()
	p.MarkOnline("a")
	p.Seed("a", "b", "")

	snap := p.Snapshot()
	require.Len(t, snap, 2)
	assert.True(t, snap[0].Online, "seeding must not reset a known peer")
	assert.False(t, snap[1].Online)
}

func TestPeers_IgnoresEmptyID(t *testing.T) {
	p := NewPeers()
	p.MarkOnline("")

	assert.Empty(t, p.Snapshot())
}
