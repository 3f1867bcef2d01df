// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/memclip/internal/logger"
	"github.com/MKhiriev/memclip/internal/service"
)

// PeerSweeper marks peers that stopped polling as offline. It runs every
// half TTL, so a silent peer is dropped between one and one and a half TTLs
// after its last poll.
type PeerSweeper struct {
	hub      service.HubService
	ttl      time.Duration
	interval time.Duration

	logger *logger.Logger
}

func NewPeerSweeper(hub service.HubService, ttl time.Duration, logger *logger.Logger) *PeerSweeper {
	return &PeerSweeper{
		hub:      hub,
		ttl:      ttl,
		interval: ttl / 2,
		logger:   logger,
	}
}

// Run implements Worker.
func (p *PeerSweeper) Run(ctx context.Context) {
	if p.interval <= 0 {
		p.logger.Warn().Str("func", "*PeerSweeper.Run").Msg("peer ttl not set, sweeper disabled")
		return
	}

	p.logger.Info().Str("func", "*PeerSweeper.Run").Dur("ttl", p.ttl).Msg("peer sweeper started")
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info().Str("func", "*PeerSweeper.Run").Msg("peer sweeper stopped")
			return
		case <-ticker.C:
			p.sweep(ctx)
		}
	}
}

func (p *PeerSweeper) sweep(ctx context.Context) {
	n, err := p.hub.SweepPeers(ctx, p.ttl)
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Err(err).Str("func", "*PeerSweeper.sweep").Msg("failed to sweep peers")
		}
		return
	}
	if n > 0 {
		p.logger.Debug().Str("func", "*PeerSweeper.sweep").Int("expired", n).Msg("peers expired")
	}
}
