// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/memclip/internal/docstore"
	"github.com/MKhiriev/memclip/internal/logger"
	"github.com/MKhiriev/memclip/internal/memclip"
	"github.com/MKhiriev/memclip/internal/telemetry"
	"github.com/MKhiriev/memclip/models"
)

// SubscriberConfig holds the tunables of a RemoteSubscriber.
type SubscriberConfig struct {
	// Key is the document key the subscriber follows.
	Key string
	// MaxPayloadSize is the size ceiling; entries at or above it are
	// ignored.
	MaxPayloadSize int64
}

type remoteSubscriber struct {
	doc   docstore.Document
	state *memclip.State
	peers *memclip.Peers
	cfg   SubscriberConfig

	// awaited is the content id of the newest remote entry whose bytes
	// were still replicating when it was announced.
	awaited models.ContentID

	metrics *telemetry.SyncMetrics
	logger  *logger.Logger
}

// NewRemoteSubscriber creates a subscriber applying doc's remote entries to
// state and recording presence in peers.
func NewRemoteSubscriber(doc docstore.Document, state *memclip.State, peers *memclip.Peers, cfg SubscriberConfig, metrics *telemetry.SyncMetrics, logger *logger.Logger) RemoteSubscriber {
	return &remoteSubscriber{
		doc:     doc,
		state:   state,
		peers:   peers,
		cfg:     cfg,
		metrics: metrics,
		logger:  logger,
	}
}

// Run implements RemoteSubscriber. Events are handled one at a time in
// stream order.
func (s *remoteSubscriber) Run(ctx context.Context) error {
	events, err := s.doc.Subscribe(ctx)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return ErrSubscriptionClosed
			}
			s.handle(ctx, ev)
		}
	}
}

func (s *remoteSubscriber) handle(ctx context.Context, ev models.LiveEvent) {
	log := s.logger.With().Str("func", "*remoteSubscriber.handle").Str("event", string(ev.Type)).Logger()

	switch ev.Type {
	case models.EventInsertRemote:
		entry := ev.Entry
		if entry.Key != s.cfg.Key {
			log.Debug().Str("key", entry.Key).Msg("entry for another key")
			return
		}
		if s.cfg.MaxPayloadSize > 0 && entry.Size >= s.cfg.MaxPayloadSize {
			s.metrics.RecordIgnored(ctx, telemetry.IgnoredOversize)
			log.Warn().Int64("size", entry.Size).Str("content_id", entry.ContentID.Short()).Msg("remote entry exceeds payload ceiling")
			return
		}

		switch ev.ContentStatus {
		case models.ContentComplete:
			s.awaited = ""
			s.apply(ctx, entry.ContentID)
			return
		case models.ContentMissing:
			s.awaited = ""
			s.metrics.RecordIgnored(ctx, telemetry.IgnoredNotDownloaded)
			log.Debug().Str("content_id", entry.ContentID.Short()).Msg("remote content will not be downloaded")
			return
		}
		s.awaited = entry.ContentID
		log.Debug().Str("content_id", entry.ContentID.Short()).Str("status", ev.ContentStatus.String()).Msg("awaiting content")

	case models.EventContentReady:
		if s.awaited == "" || ev.ContentID != s.awaited {
			s.metrics.RecordIgnored(ctx, telemetry.IgnoredNotAwaited)
			log.Debug().Str("content_id", ev.ContentID.Short()).Msg("content not awaited")
			return
		}
		s.awaited = ""
		s.apply(ctx, ev.ContentID)

	case models.EventInsertLocal:
		if ev.Entry.Key == s.cfg.Key {
			s.awaited = ""
		}
		log.Debug().Str("content_id", ev.Entry.ContentID.Short()).Msg("local entry confirmed")

	case models.EventPeerJoined:
		s.updatePeer(ctx, ev.PeerID, true)
		log.Info().Str("peer_id", ev.PeerID).Msg("peer joined")

	case models.EventPeerLeft:
		s.updatePeer(ctx, ev.PeerID, false)
		log.Info().Str("peer_id", ev.PeerID).Msg("peer left")
	}
}

func (s *remoteSubscriber) apply(ctx context.Context, id models.ContentID) {
	log := s.logger.With().Str("func", "*remoteSubscriber.apply").Str("content_id", id.Short()).Logger()

	data, err := s.doc.Fetch(ctx, id)
	if err != nil {
		s.metrics.RecordIgnored(ctx, telemetry.IgnoredFetchFailed)
		log.Warn().Err(err).Msg("failed to fetch remote content")
		return
	}
	if !utf8.Valid(data) {
		s.metrics.RecordIgnored(ctx, telemetry.IgnoredInvalidUTF8)
		log.Warn().Int("size", len(data)).Msg("remote content is not valid UTF-8")
		return
	}

	previous := s.state.ApplyRemote(string(data))
	s.metrics.RecordRemoteApply(ctx)
	log.Debug().Uint64("previous", previous).Uint64("current", memclip.Fingerprint(string(data))).Msg("applied remote value")
}

func (s *remoteSubscriber) updatePeer(ctx context.Context, peerID string, online bool) {
	before := s.peers.Online()
	if online {
		s.peers.MarkOnline(peerID)
	} else {
		s.peers.MarkOffline(peerID)
	}
	if delta := s.peers.Online() - before; delta != 0 {
		s.metrics.RecordPeerDelta(ctx, int64(delta))
	}
}
