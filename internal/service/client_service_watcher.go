// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/memclip/internal/clipboard"
	"github.com/MKhiriev/memclip/internal/logger"
	"github.com/MKhiriev/memclip/internal/memclip"
	"github.com/MKhiriev/memclip/internal/telemetry"
)

const defaultPollInterval = time.Second

type clipboardWatcher struct {
	clipboard clipboard.Clipboard
	state     *memclip.State
	interval  time.Duration

	// lastLocal is the fingerprint read by the previous poll. Only the
	// watcher goroutine touches it.
	lastLocal uint64

	metrics *telemetry.SyncMetrics
	logger  *logger.Logger
}

// NewClipboardWatcher creates a watcher reconciling cb with state every
// interval. A non-positive interval defaults to one second.
func NewClipboardWatcher(cb clipboard.Clipboard, state *memclip.State, interval time.Duration, metrics *telemetry.SyncMetrics, logger *logger.Logger) ClipboardWatcher {
	if interval <= 0 {
		interval = defaultPollInterval
	}

	return &clipboardWatcher{
		clipboard: cb,
		state:     state,
		interval:  interval,
		lastLocal: state.Read().Fingerprint,
		metrics:   metrics,
		logger:    logger,
	}
}

// Run implements ClipboardWatcher.
func (w *clipboardWatcher) Run(ctx context.Context) error {
	t := time.NewTicker(w.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			w.Poll(ctx)
		}
	}
}

// Poll implements ClipboardWatcher. The current clipboard is compared with
// the previous poll and with the shared value:
//
//   - changed since the last poll and different from shared: a local copy,
//     the shared value is replaced and the publisher is signalled;
//   - unchanged but different from shared: a remote value is pending and is
//     written to the clipboard;
//   - equal to shared: nothing to do.
func (w *clipboardWatcher) Poll(ctx context.Context) {
	text, err := w.clipboard.Get()
	if err != nil {
		w.logger.Warn().Err(err).Str("func", "*clipboardWatcher.Poll").Msg("failed to read clipboard")
		return
	}

	current := memclip.Fingerprint(text)
	shared := w.state.Read()

	switch {
	case current == shared.Fingerprint:
	case current != w.lastLocal:
		previous := w.state.Replace(text)
		w.state.SignalChanged()
		w.metrics.RecordLocalChange(ctx)

		w.logger.Debug().Str("func", "*clipboardWatcher.Poll").
			Uint64("previous", previous).Uint64("current", current).Int("size", len(text)).
			Msg("local clipboard changed")
	default:
		err = w.clipboard.Set(shared.Content)
		w.metrics.RecordClipboardWrite(ctx, err == nil)
		if err != nil {
			w.logger.Warn().Err(err).Str("func", "*clipboardWatcher.Poll").Msg("failed to write clipboard")
			break
		}

		// the clipboard now holds what was written, even if the shared
		// value moved on meanwhile
		current = shared.Fingerprint
		w.logger.Debug().Str("func", "*clipboardWatcher.Poll").
			Uint64("fingerprint", shared.Fingerprint).Msg("applied shared value to clipboard")
	}

	w.lastLocal = current
}
