// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/memclip/internal/config"
	"github.com/MKhiriev/memclip/internal/docstore"
	"github.com/MKhiriev/memclip/internal/logger"
	"github.com/MKhiriev/memclip/internal/memclip"
	"github.com/MKhiriev/memclip/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── reconciliation walkthrough ───────────────────────────────────────────────

// TestReconciliation_Walkthrough drives one device's watcher, publisher and
// subscriber by hand through the documented sequence of events.
func TestReconciliation_Walkthrough(t *testing.T) {
	ctx := context.Background()
	cb := newFakeClipboard("hello")
	doc := newRecordingDoc()

	initial, err := cb.Get()
	require.NoError(t, err)
	state := memclip.NewState(initial)

	watcher := NewClipboardWatcher(cb, state, time.Millisecond, nil, logger.Nop()).(*clipboardWatcher)
	publisher := newTestPublisher(doc, state)
	subscriber, _ := newTestSubscriber(doc, state)

	// startup: nothing to publish
	watcher.Poll(ctx)
	assert.Equal(t, memclip.Fingerprint("hello"), watcher.lastLocal)
	assert.False(t, signaled(t, state))
	assert.Empty(t, doc.published())

	// the user copies
	cb.copy("world")
	watcher.Poll(ctx)
	value, ok, err := state.WaitForChange(ctx, time.Second)
	require.NoError(t, err)
	require.True(t, ok)
	publisher.publish(ctx, value)
	assert.Equal(t, []string{"world"}, doc.published())

	// a peer pushes
	subscriber.handle(ctx, remoteComplete(doc.put([]byte("remote-value"))))
	assert.Equal(t, "remote-value", state.Read().Content)
	assert.Equal(t, "world", cb.current())

	watcher.Poll(ctx)
	assert.Equal(t, "remote-value", cb.current())

	watcher.Poll(ctx)
	assert.False(t, signaled(t, state), "remote value must not be re-published")
	assert.Equal(t, []string{"world"}, doc.published())
	assert.EqualValues(t, 1, cb.sets.Load())

	// an oversize entry arrives
	subscriber.handle(ctx, remoteIncomplete(models.Entry{Key: testKey, ContentID: "big", Size: 80 << 20}))
	subscriber.handle(ctx, contentReady("big"))
	watcher.Poll(ctx)
	assert.Equal(t, "remote-value", state.Read().Content)
	assert.Equal(t, "remote-value", cb.current())

	// the network drops
	doc.failSets(errNetwork)
	cb.copy("offline")
	watcher.Poll(ctx)
	value, ok, err = state.WaitForChange(ctx, time.Second)
	require.NoError(t, err)
	require.True(t, ok)
	publisher.publish(ctx, value)
	assert.Equal(t, "offline", state.Read().Content)
	assert.Equal(t, []string{"world"}, doc.published())

	// the network recovers and the next copy is pushed
	doc.failSets(nil)
	cb.copy("back online")
	watcher.Poll(ctx)
	value, ok, err = state.WaitForChange(ctx, time.Second)
	require.NoError(t, err)
	require.True(t, ok)
	publisher.publish(ctx, value)
	assert.Equal(t, []string{"world", "back online"}, doc.published())
}

// ── two devices ──────────────────────────────────────────────────────────────

type device struct {
	clipboard *fakeClipboard
	state     *memclip.State
	peers     *memclip.Peers
	session   Session
}

func testClientConfig() *config.ClientConfig {
	return &config.ClientConfig{
		Clipboard: config.Clipboard{
			PollInterval:   2 * time.Millisecond,
			MaxPayloadSize: 1 << 20,
			Key:            testKey,
		},
		Sync: config.Sync{WaitTimeout: 10 * time.Millisecond},
	}
}

func runDevice(t *testing.T, ctx context.Context, wg *sync.WaitGroup, d *device, doc docstore.Document) {
	t.Helper()
	services := NewSyncServices(d.clipboard, d.state, d.peers, doc, testClientConfig(), nil, logger.Nop())

	for _, run := range []func(context.Context) error{
		services.Watcher.Run,
		services.Publisher.Run,
		services.Subscriber.Run,
	} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, run(ctx))
		}()
	}
}

func TestSyncServices_TwoDevices(t *testing.T) {
	network := docstore.NewMemoryNetwork()
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	defer func() {
		cancel()
		wg.Wait()
	}()

	newDevice := func(text string) *device {
		return &device{clipboard: newFakeClipboard(text), state: memclip.NewState(text), peers: memclip.NewPeers()}
	}

	laptop := newDevice("laptop start")
	var err error
	laptop.session, err = NewSessionService(network.NewNode("laptop"), laptop.peers, logger.Nop()).Start(ctx)
	require.NoError(t, err)

	phone := newDevice("phone start")
	phone.session, err = NewSessionService(network.NewNode("phone"), phone.peers, logger.Nop()).Join(ctx, laptop.session.Ticket)
	require.NoError(t, err)

	runDevice(t, ctx, &wg, laptop, laptop.session.Document)
	runDevice(t, ctx, &wg, phone, phone.session.Document)

	require.Eventually(t, func() bool { return laptop.peers.Online() == 2 }, time.Second, time.Millisecond)

	laptop.clipboard.copy("from laptop")
	require.Eventually(t, func() bool {
		return phone.clipboard.current() == "from laptop"
	}, 2*time.Second, time.Millisecond)

	phone.clipboard.copy("from phone")
	require.Eventually(t, func() bool {
		return laptop.clipboard.current() == "from phone"
	}, 2*time.Second, time.Millisecond)

	// oversize values stay local
	big := strings.Repeat("x", 1<<20)
	laptop.clipboard.copy(big)
	require.Eventually(t, func() bool {
		return laptop.state.Read().Content == big
	}, time.Second, time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, "from phone", phone.clipboard.current())
}
