// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package docstore

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/memclip/internal/adapter"
	"github.com/MKhiriev/memclip/internal/utils"
	"github.com/MKhiriev/memclip/models"
	"github.com/cenkalti/backoff/v5"
)

const (
	eventBuffer      = 16
	downloadAttempts = 5
	maxRetryInterval = 30 * time.Second
)

// Subscribe implements [Document]. Events are long-polled from the hub from
// the beginning of the document's log, so a joining node replays the current
// state before following live changes.
func (d *hubDocument) Subscribe(ctx context.Context) (<-chan models.LiveEvent, error) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil, ErrDocumentClosed
	}
	if d.subscribed {
		d.mu.Unlock()
		return nil, ErrAlreadySubscribed
	}
	d.subscribed = true
	d.closing = make(chan struct{})
	closing := d.closing
	d.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	go func() {
		select {
		case <-closing:
			cancel()
		case <-ctx.Done():
		}
	}()

	s := &subscription{
		doc:      d,
		out:      make(chan models.LiveEvent, eventBuffer),
		inflight: make(map[models.ContentID]struct{}),
	}
	go s.run(ctx, cancel)

	return s.out, nil
}

type subscription struct {
	doc *hubDocument
	out chan models.LiveEvent

	wg       sync.WaitGroup
	mu       sync.Mutex
	inflight map[models.ContentID]struct{}
}

func newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.MaxInterval = maxRetryInterval
	return b
}

func (s *subscription) run(ctx context.Context, cancel context.CancelFunc) {
	defer func() {
		cancel()
		s.wg.Wait()
		close(s.out)
	}()

	d := s.doc
	var cursor int64
	for {
		resp, err := backoff.Retry(ctx, func() (models.EventsResponse, error) {
			resp, err := d.hub.Events(ctx, d.id, d.node.peerID, cursor, d.node.pollWait)
			switch {
			case err == nil:
				return resp, nil
			case ctx.Err() != nil:
				return resp, backoff.Permanent(ctx.Err())
			case errors.Is(err, adapter.ErrNotFound):
				return resp, backoff.Permanent(err)
			default:
				return resp, err
			}
		},
			backoff.WithBackOff(newBackOff()),
			backoff.WithMaxElapsedTime(0),
			backoff.WithNotify(func(err error, next time.Duration) {
				d.log.Warn().
					Str("func", "subscription.run").
					Err(err).
					Dur("retry_in", next).
					Msg("event poll failed")
			}),
		)
		if err != nil {
			if ctx.Err() == nil {
				d.log.Error().
					Str("func", "subscription.run").
					Err(err).
					Msg("event stream ended")
			}
			return
		}

		for _, ev := range collapseEntries(resp.Events) {
			if !s.handle(ctx, ev) {
				return
			}
		}
		if resp.Next > cursor {
			cursor = resp.Next
		}
	}
}

// handle translates one hub event. It returns false once ctx is done.
func (s *subscription) handle(ctx context.Context, ev models.HubEvent) bool {
	d := s.doc
	self := d.node.peerID

	switch ev.Kind {
	case models.HubEventEntry:
		if ev.Entry == nil {
			return true
		}
		entry := *ev.Entry

		if entry.Author == self {
			return s.emit(ctx, models.LiveEvent{
				Type:          models.EventInsertLocal,
				Entry:         entry,
				ContentStatus: models.ContentComplete,
				ContentID:     entry.ContentID,
			})
		}

		status := s.statusOf(entry)
		if !s.emit(ctx, models.LiveEvent{
			Type:          models.EventInsertRemote,
			Entry:         entry,
			ContentStatus: status,
			ContentID:     entry.ContentID,
			PeerID:        entry.Author,
		}) {
			return false
		}
		if status == models.ContentIncomplete {
			s.download(ctx, entry.ContentID)
		}
		return true

	case models.HubEventPeerJoined, models.HubEventPeerLeft:
		if ev.PeerID == self {
			return true
		}
		eventType := models.EventPeerJoined
		if ev.Kind == models.HubEventPeerLeft {
			eventType = models.EventPeerLeft
		}
		return s.emit(ctx, models.LiveEvent{Type: eventType, PeerID: ev.PeerID})

	default:
		d.log.Debug().
			Str("func", "subscription.handle").
			Str("kind", string(ev.Kind)).
			Msg("unknown hub event skipped")
		return true
	}
}

func (s *subscription) statusOf(entry models.Entry) models.ContentStatus {
	maxDownload := s.doc.node.maxDownload
	switch {
	case maxDownload > 0 && entry.Size >= maxDownload:
		return models.ContentMissing
	case s.doc.node.blobs.Has(entry.ContentID):
		return models.ContentComplete
	default:
		return models.ContentIncomplete
	}
}

// download fetches id in the background and announces it as ready.
// Concurrent requests for the same id share one download.
func (s *subscription) download(ctx context.Context, id models.ContentID) {
	s.mu.Lock()
	if _, ok := s.inflight[id]; ok {
		s.mu.Unlock()
		return
	}
	s.inflight[id] = struct{}{}
	s.mu.Unlock()

	d := s.doc
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			s.mu.Lock()
			delete(s.inflight, id)
			s.mu.Unlock()
		}()

		data, err := backoff.Retry(ctx, func() ([]byte, error) {
			data, err := d.hub.GetBlob(ctx, id)
			if err != nil {
				return nil, err
			}
			if utils.ContentIDOf(data) != id {
				return nil, backoff.Permanent(ErrContentMismatch)
			}
			return data, nil
		},
			backoff.WithBackOff(newBackOff()),
			backoff.WithMaxTries(downloadAttempts),
		)
		if err != nil {
			if ctx.Err() == nil {
				d.log.Warn().
					Str("func", "subscription.download").
					Str("content_id", id.Short()).
					Err(err).
					Msg("content download failed")
			}
			return
		}

		d.node.blobs.Put(id, data)
		s.emit(ctx, models.LiveEvent{
			Type:          models.EventContentReady,
			ContentStatus: models.ContentComplete,
			ContentID:     id,
		})
	}()
}

func (s *subscription) emit(ctx context.Context, ev models.LiveEvent) bool {
	select {
	case s.out <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

// collapseEntries drops entry events that are superseded by a later entry
// for the same key within the same batch.
func collapseEntries(events []models.HubEvent) []models.HubEvent {
	last := make(map[string]int, 1)
	for i, ev := range events {
		if ev.Kind == models.HubEventEntry && ev.Entry != nil {
			last[ev.Entry.Key] = i
		}
	}

	out := make([]models.HubEvent, 0, len(events))
	for i, ev := range events {
		if ev.Kind == models.HubEventEntry && ev.Entry != nil && last[ev.Entry.Key] != i {
			continue
		}
		out = append(out, ev)
	}
	return out
}
