// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/memclip/internal/memclip"
	"github.com/MKhiriev/memclip/internal/telemetry"
	"github.com/MKhiriev/memclip/models"
)

// Status is one snapshot of a running session.
type Status struct {
	Ticket models.Ticket
	PeerID string
	Value  memclip.SyncedValue
	Peers  []models.Peer
	Stats  telemetry.SyncStats
}

// Source provides fresh snapshots to the dashboard. It is called from the
// UI goroutine and must not block.
type Source interface {
	Status() Status
}

// SourceFunc adapts a function to [Source].
type SourceFunc func() Status

func (f SourceFunc) Status() Status { return f() }
