// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/memclip/internal/config"
	"github.com/MKhiriev/memclip/internal/logger"
	"github.com/MKhiriev/memclip/internal/store"
	"github.com/MKhiriev/memclip/internal/telemetry"
	"github.com/MKhiriev/memclip/internal/utils"
	"github.com/MKhiriev/memclip/models"
)

// eventsPageSize bounds the number of events returned by one poll.
const eventsPageSize = 256

type hubService struct {
	repo    store.HubRepository
	broker  *broker
	metrics *telemetry.HubMetrics

	maxPollWait time.Duration
	maxBlobSize int64
	now         func() time.Time

	// writes serializes every append to the event log so the
	// check-then-append of SetEntry and presence changes is atomic.
	writes sync.Mutex

	logger *logger.Logger
}

// NewHubService builds the hub service on top of repo.
func NewHubService(repo store.HubRepository, cfg config.Server, metrics *telemetry.HubMetrics, logger *logger.Logger) HubService {
	return &hubService{
		repo:        repo,
		broker:      newBroker(),
		metrics:     metrics,
		maxPollWait: cfg.MaxPollWait,
		maxBlobSize: cfg.MaxBlobSize,
		now:         time.Now,
		logger:      logger,
	}
}

func (s *hubService) CreateDocument(ctx context.Context, peerID string) (models.DocumentResponse, error) {
	docID := utils.NewID()

	if err := s.repo.CreateDocument(ctx, docID, s.now()); err != nil {
		return models.DocumentResponse{}, fmt.Errorf("create document: %w", err)
	}
	logger.FromContext(ctx).Info().Str("func", "*hubService.CreateDocument").
		Str("doc_id", docID).Str("peer_id", peerID).Msg("document created")

	return s.JoinDocument(ctx, docID, peerID)
}

func (s *hubService) GetDocument(ctx context.Context, docID string) (models.DocumentResponse, error) {
	if err := s.ensureDocument(ctx, docID); err != nil {
		return models.DocumentResponse{}, err
	}

	peers, err := s.repo.ListPeers(ctx, docID)
	if err != nil {
		return models.DocumentResponse{}, fmt.Errorf("list peers: %w", err)
	}

	return models.DocumentResponse{DocumentID: docID, Peers: peers}, nil
}

func (s *hubService) JoinDocument(ctx context.Context, docID, peerID string) (models.DocumentResponse, error) {
	if err := s.ensureDocument(ctx, docID); err != nil {
		return models.DocumentResponse{}, err
	}

	if err := s.markOnline(ctx, docID, peerID); err != nil {
		return models.DocumentResponse{}, err
	}

	return s.GetDocument(ctx, docID)
}

func (s *hubService) LeaveDocument(ctx context.Context, docID, peerID string) error {
	if err := s.ensureDocument(ctx, docID); err != nil {
		return err
	}

	s.writes.Lock()
	defer s.writes.Unlock()

	changed, err := s.repo.SetPeerOffline(ctx, docID, peerID)
	if err != nil {
		return fmt.Errorf("mark peer offline: %w", err)
	}
	if !changed {
		return nil
	}

	return s.appendLocked(ctx, docID, models.HubEvent{Kind: models.HubEventPeerLeft, PeerID: peerID})
}

func (s *hubService) PutBlob(ctx context.Context, id models.ContentID, data []byte) error {
	if s.maxBlobSize > 0 && int64(len(data)) > s.maxBlobSize {
		return fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, len(data))
	}
	if got := utils.ContentIDOf(data); got != id {
		return fmt.Errorf("%w: got %s", ErrContentMismatch, got.Short())
	}

	if err := s.repo.SaveBlob(ctx, id, data); err != nil {
		return fmt.Errorf("save blob: %w", err)
	}
	s.metrics.RecordBlob(ctx, int64(len(data)))

	logger.FromContext(ctx).Debug().Str("func", "*hubService.PutBlob").
		Str("content_id", id.Short()).Int("size", len(data)).Msg("blob stored")
	return nil
}

func (s *hubService) GetBlob(ctx context.Context, id models.ContentID) ([]byte, error) {
	data, err := s.repo.GetBlob(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get blob: %w", err)
	}
	return data, nil
}

func (s *hubService) SetEntry(ctx context.Context, docID string, req models.SetEntryRequest) (models.SetEntryResponse, error) {
	log := logger.FromContext(ctx)

	if err := s.ensureDocument(ctx, docID); err != nil {
		return models.SetEntryResponse{}, err
	}

	ok, err := s.repo.HasBlob(ctx, req.ContentID)
	if err != nil {
		return models.SetEntryResponse{}, fmt.Errorf("check blob: %w", err)
	}
	if !ok {
		return models.SetEntryResponse{}, fmt.Errorf("%w: %s", ErrBlobNotFound, req.ContentID.Short())
	}

	s.writes.Lock()
	defer s.writes.Unlock()

	latest, err := s.repo.LatestEntry(ctx, docID, req.Key)
	switch {
	case err == nil && latest.Entry != nil && latest.Entry.ContentID == req.ContentID:
		s.metrics.RecordEntry(ctx, false)
		log.Debug().Str("func", "*hubService.SetEntry").Str("content_id", req.ContentID.Short()).
			Int64("seq", latest.Seq).Msg("entry unchanged")
		return models.SetEntryResponse{Seq: latest.Seq, Inserted: false}, nil
	case err != nil && !errors.Is(err, store.ErrNotFound):
		return models.SetEntryResponse{}, fmt.Errorf("latest entry: %w", err)
	}

	ev := models.HubEvent{
		Kind: models.HubEventEntry,
		Entry: &models.Entry{
			Key:       req.Key,
			ContentID: req.ContentID,
			Size:      req.Size,
			Author:    req.Author,
		},
		CreatedAt: s.now(),
	}
	seq, err := s.repo.AppendEvent(ctx, docID, ev)
	if err != nil {
		return models.SetEntryResponse{}, fmt.Errorf("append entry: %w", err)
	}
	s.broker.notify(docID)
	s.metrics.RecordEntry(ctx, true)

	log.Debug().Str("func", "*hubService.SetEntry").Str("doc_id", docID).Str("key", req.Key).
		Str("content_id", req.ContentID.Short()).Int64("seq", seq).Msg("entry stored")
	return models.SetEntryResponse{Seq: seq, Inserted: true}, nil
}

func (s *hubService) Events(ctx context.Context, docID, peerID string, after int64, wait time.Duration) (models.EventsResponse, error) {
	if err := s.ensureDocument(ctx, docID); err != nil {
		return models.EventsResponse{}, err
	}
	if err := s.markOnline(ctx, docID, peerID); err != nil {
		return models.EventsResponse{}, err
	}

	if s.maxPollWait > 0 && wait > s.maxPollWait {
		wait = s.maxPollWait
	}

	var expired <-chan time.Time
	if wait > 0 {
		timer := time.NewTimer(wait)
		defer timer.Stop()
		expired = timer.C
	}

	for {
		woken := s.broker.wait(docID)

		events, err := s.repo.ListEvents(ctx, docID, after, eventsPageSize)
		if err != nil {
			return models.EventsResponse{}, fmt.Errorf("list events: %w", err)
		}
		if len(events) > 0 || expired == nil {
			s.metrics.RecordPoll(ctx, len(events))
			return eventsPage(events, after), nil
		}

		select {
		case <-ctx.Done():
			return models.EventsResponse{}, ctx.Err()
		case <-expired:
			s.metrics.RecordPoll(ctx, 0)
			return eventsPage(nil, after), nil
		case <-woken:
		}
	}
}

func (s *hubService) SweepPeers(ctx context.Context, ttl time.Duration) (int, error) {
	s.writes.Lock()
	defer s.writes.Unlock()

	expired, err := s.repo.ExpirePeers(ctx, s.now().Add(-ttl))
	if err != nil {
		return 0, fmt.Errorf("expire peers: %w", err)
	}

	for _, ref := range expired {
		if err = s.appendLocked(ctx, ref.DocumentID, models.HubEvent{Kind: models.HubEventPeerLeft, PeerID: ref.PeerID}); err != nil {
			return 0, err
		}
		s.logger.Info().Str("func", "*hubService.SweepPeers").
			Str("doc_id", ref.DocumentID).Str("peer_id", ref.PeerID).Msg("peer timed out")
	}
	s.metrics.RecordExpired(ctx, len(expired))

	return len(expired), nil
}

func (s *hubService) ensureDocument(ctx context.Context, docID string) error {
	ok, err := s.repo.DocumentExists(ctx, docID)
	if err != nil {
		return fmt.Errorf("find document: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrDocumentNotFound, docID)
	}
	return nil
}

func (s *hubService) markOnline(ctx context.Context, docID, peerID string) error {
	s.writes.Lock()
	defer s.writes.Unlock()

	changed, err := s.repo.SetPeerOnline(ctx, docID, peerID, s.now())
	if err != nil {
		return fmt.Errorf("mark peer online: %w", err)
	}
	if !changed {
		return nil
	}

	logger.FromContext(ctx).Info().Str("func", "*hubService.markOnline").
		Str("doc_id", docID).Str("peer_id", peerID).Msg("peer online")
	return s.appendLocked(ctx, docID, models.HubEvent{Kind: models.HubEventPeerJoined, PeerID: peerID})
}

func (s *hubService) appendLocked(ctx context.Context, docID string, ev models.HubEvent) error {
	ev.CreatedAt = s.now()
	if _, err := s.repo.AppendEvent(ctx, docID, ev); err != nil {
		return fmt.Errorf("append %s event: %w", ev.Kind, err)
	}
	s.broker.notify(docID)
	return nil
}

func eventsPage(events []models.HubEvent, after int64) models.EventsResponse {
	if events == nil {
		events = []models.HubEvent{}
	}

	next := after
	if n := len(events); n > 0 {
		next = events[n-1].Seq
	}
	return models.EventsResponse{Events: events, Next: next}
}
