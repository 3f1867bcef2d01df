// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/memclip/internal/docstore"
	"github.com/MKhiriev/memclip/internal/logger"
	"github.com/MKhiriev/memclip/internal/memclip"
	"github.com/MKhiriev/memclip/internal/telemetry"
)

// PublisherConfig holds the tunables of a RemotePublisher.
type PublisherConfig struct {
	// Key is the document key values are written under.
	Key string
	// WaitTimeout bounds a single wait for a change signal.
	WaitTimeout time.Duration
	// MaxPayloadSize is the size ceiling; values at or above it are not
	// published.
	MaxPayloadSize int64
}

type remotePublisher struct {
	doc   docstore.Document
	state *memclip.State
	cfg   PublisherConfig

	metrics *telemetry.SyncMetrics
	logger  *logger.Logger
}

// NewRemotePublisher creates a publisher for doc. The value current at
// construction counts as already stored.
func NewRemotePublisher(doc docstore.Document, state *memclip.State, cfg PublisherConfig, metrics *telemetry.SyncMetrics, logger *logger.Logger) RemotePublisher {
	return &remotePublisher{
		doc:     doc,
		state:   state,
		cfg:     cfg,
		metrics: metrics,
		logger:  logger,
	}
}

// Run implements RemotePublisher. Only signalled wakeups publish; timeouts
// just re-check cancellation, so values applied by the subscriber, which
// never signals, are not pushed back.
func (p *remotePublisher) Run(ctx context.Context) error {
	for {
		value, signaled, err := p.state.WaitForChange(ctx, p.cfg.WaitTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if !signaled {
			continue
		}

		p.publish(ctx, value)
	}
}

func (p *remotePublisher) publish(ctx context.Context, value memclip.SyncedValue) {
	log := p.logger.With().Str("func", "*remotePublisher.publish").Uint64("fingerprint", value.Fingerprint).Logger()

	if value.Fingerprint == p.state.Stored() {
		p.metrics.RecordPublish(ctx, telemetry.PublishSkipped)
		log.Debug().Msg("document already holds value")
		return
	}
	if p.cfg.MaxPayloadSize > 0 && int64(len(value.Content)) >= p.cfg.MaxPayloadSize {
		p.metrics.RecordPublish(ctx, telemetry.PublishSkipped)
		log.Warn().Int("size", len(value.Content)).Msg("value exceeds payload ceiling, not published")
		return
	}

	id, err := p.doc.Set(ctx, p.cfg.Key, []byte(value.Content))
	if err != nil {
		p.metrics.RecordPublish(ctx, telemetry.PublishFailure)
		log.Warn().Err(err).Msg("failed to publish value")
		return
	}

	p.state.MarkStored(value.Fingerprint)
	p.metrics.RecordPublish(ctx, telemetry.PublishSuccess)
	log.Debug().Str("content_id", id.Short()).Msg("value published")
}
