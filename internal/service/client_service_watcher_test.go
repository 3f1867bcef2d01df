// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/memclip/internal/logger"
	"github.com/MKhiriev/memclip/internal/memclip"
	"github.com/MKhiriev/memclip/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestWatcher(t *testing.T, initial string) (*clipboardWatcher, *mock.MockClipboard, *memclip.State) {
	t.Helper()

	ctrl := gomock.NewController(t)
	cb := mock.NewMockClipboard(ctrl)
	state := memclip.NewState(initial)

	w := NewClipboardWatcher(cb, state, time.Millisecond, nil, logger.Nop()).(*clipboardWatcher)
	return w, cb, state
}

// signaled reports whether a change signal is pending on state.
func signaled(t *testing.T, state *memclip.State) bool {
	t.Helper()
	_, ok, err := state.WaitForChange(context.Background(), 5*time.Millisecond)
	require.NoError(t, err)
	return ok
}

// ── NewClipboardWatcher ──────────────────────────────────────────────────────

func TestNewClipboardWatcher_SeedsLastLocalAndInterval(t *testing.T) {
	state := memclip.NewState("hello")

	w := NewClipboardWatcher(newFakeClipboard("hello"), state, 0, nil, logger.Nop()).(*clipboardWatcher)

	assert.Equal(t, memclip.Fingerprint("hello"), w.lastLocal)
	assert.Equal(t, defaultPollInterval, w.interval)
}

// ── Poll ─────────────────────────────────────────────────────────────────────

func TestClipboardWatcher_Poll_LocalChange(t *testing.T) {
	w, cb, state := newTestWatcher(t, "hello")
	cb.EXPECT().Get().Return("world", nil)

	w.Poll(context.Background())

	assert.Equal(t, "world", state.Read().Content)
	assert.Equal(t, memclip.Fingerprint("world"), w.lastLocal)
	assert.True(t, signaled(t, state), "a local change must wake the publisher")
}

func TestClipboardWatcher_Poll_PendingRemoteValueIsWritten(t *testing.T) {
	w, cb, state := newTestWatcher(t, "hello")
	state.Replace("remote-value")

	gomock.InOrder(
		cb.EXPECT().Get().Return("hello", nil),
		cb.EXPECT().Set("remote-value").Return(nil),
	)

	w.Poll(context.Background())

	assert.Equal(t, "remote-value", state.Read().Content)
	assert.False(t, signaled(t, state), "writing a remote value must not signal")
}

func TestClipboardWatcher_Poll_InSync(t *testing.T) {
	w, cb, state := newTestWatcher(t, "hello")
	cb.EXPECT().Get().Return("hello", nil)

	w.Poll(context.Background())

	assert.Equal(t, "hello", state.Read().Content)
	assert.False(t, signaled(t, state))
}

func TestClipboardWatcher_Poll_ReadErrorSkipsPoll(t *testing.T) {
	w, cb, state := newTestWatcher(t, "hello")
	cb.EXPECT().Get().Return("", errors.New("no display"))

	w.Poll(context.Background())

	assert.Equal(t, "hello", state.Read().Content)
	assert.Equal(t, memclip.Fingerprint("hello"), w.lastLocal)
	assert.False(t, signaled(t, state))
}

func TestClipboardWatcher_Poll_WriteErrorRetriedNextPoll(t *testing.T) {
	w, cb, state := newTestWatcher(t, "hello")
	state.Replace("remote-value")

	gomock.InOrder(
		cb.EXPECT().Get().Return("hello", nil),
		cb.EXPECT().Set("remote-value").Return(errors.New("clipboard busy")),
		cb.EXPECT().Get().Return("hello", nil),
		cb.EXPECT().Set("remote-value").Return(nil),
	)

	w.Poll(context.Background())
	w.Poll(context.Background())
}

func TestClipboardWatcher_Poll_UserCopyWinsOverPendingRemote(t *testing.T) {
	w, cb, state := newTestWatcher(t, "hello")
	state.Replace("remote-value")

	// the user copied before the remote value reached the clipboard
	cb.EXPECT().Get().Return("mine", nil)

	w.Poll(context.Background())

	assert.Equal(t, "mine", state.Read().Content)
	assert.True(t, signaled(t, state))
}

func TestClipboardWatcher_Poll_RemoteValueChangedDuringWrite(t *testing.T) {
	w, cb, state := newTestWatcher(t, "hello")
	state.ApplyRemote("first")

	gomock.InOrder(
		cb.EXPECT().Get().Return("hello", nil),
		cb.EXPECT().Set("first").DoAndReturn(func(string) error {
			state.ApplyRemote("second")
			return nil
		}),
		cb.EXPECT().Get().Return("first", nil),
		cb.EXPECT().Set("second").Return(nil),
	)

	w.Poll(context.Background())
	assert.Equal(t, memclip.Fingerprint("first"), w.lastLocal)

	w.Poll(context.Background())
	assert.Equal(t, "second", state.Read().Content)
	assert.Equal(t, memclip.Fingerprint("second"), w.lastLocal)
	assert.False(t, signaled(t, state), "the superseded remote value must not be republished")
}

// ── Run ──────────────────────────────────────────────────────────────────────

func TestClipboardWatcher_Run_PollsUntilCancelled(t *testing.T) {
	cb := newFakeClipboard("hello")
	state := memclip.NewState("hello")
	w := NewClipboardWatcher(cb, state, 2*time.Millisecond, nil, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	cb.copy("world")
	require.Eventually(t, func() bool {
		return state.Read().Content == "world"
	}, time.Second, time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop after cancellation")
	}
}
