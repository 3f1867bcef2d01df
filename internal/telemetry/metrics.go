// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package telemetry

import (
	"context"
	"sync/atomic"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const (
	// SyncMetricsMeterName is the meter used by the clipboard sync loops.
	SyncMetricsMeterName = "github.com/MKhiriev/memclip/sync"

	// HubMetricsMeterName is the meter used by the hub.
	HubMetricsMeterName = "github.com/MKhiriev/memclip/hub"
)

// Publish results recorded by [SyncMetrics.RecordPublish].
const (
	PublishSuccess = "success"
	PublishFailure = "failure"
	PublishSkipped = "skipped"
)

// Reasons recorded by [SyncMetrics.RecordIgnored].
const (
	IgnoredOversize    = "oversize"
	IgnoredNotAwaited  = "not_awaited"
	IgnoredInvalidUTF8 = "invalid_utf8"
	IgnoredFetchFailed = "fetch_failed"

	// IgnoredNotDownloaded marks entries the store declined to fetch.
	IgnoredNotDownloaded = "not_downloaded"
)

// SyncStats is a point-in-time copy of the in-process sync tallies shown by
// the dashboard.
type SyncStats struct {
	LocalChanges    int64
	ClipboardWrites int64
	Published       int64
	PublishFailures int64
	RemoteApplied   int64
	RemoteIgnored   int64
}

// SyncMetrics holds the instruments for the watcher, publisher and
// subscriber, plus plain tallies readable through Stats. All methods are
// safe on a nil receiver.
type SyncMetrics struct {
	localChanges  metric.Int64Counter
	clipboardSets metric.Int64Counter
	publishes     metric.Int64Counter
	remoteApplies metric.Int64Counter
	remoteIgnored metric.Int64Counter
	peersObserved metric.Int64UpDownCounter

	tally struct {
		localChanges    atomic.Int64
		clipboardWrites atomic.Int64
		published       atomic.Int64
		publishFailures atomic.Int64
		remoteApplied   atomic.Int64
		remoteIgnored   atomic.Int64
	}
}

// NewSyncMetrics creates the sync instruments. A nil provider yields no-op
// instruments; the tallies are kept either way.
func NewSyncMetrics(provider metric.MeterProvider) (*SyncMetrics, error) {
	if provider == nil {
		provider = noop.NewMeterProvider()
	}

	meter := provider.Meter(SyncMetricsMeterName)
	m := &SyncMetrics{}
	var err error

	if m.localChanges, err = meter.Int64Counter(
		"memclip_local_changes_total",
		metric.WithDescription("Local clipboard changes adopted into the shared value"),
	); err != nil {
		return nil, err
	}
	if m.clipboardSets, err = meter.Int64Counter(
		"memclip_clipboard_writes_total",
		metric.WithDescription("Shared values written back into the OS clipboard"),
	); err != nil {
		return nil, err
	}
	if m.publishes, err = meter.Int64Counter(
		"memclip_publishes_total",
		metric.WithDescription("Publish attempts by result"),
	); err != nil {
		return nil, err
	}
	if m.remoteApplies, err = meter.Int64Counter(
		"memclip_remote_applies_total",
		metric.WithDescription("Remote values applied to the shared value"),
	); err != nil {
		return nil, err
	}
	if m.remoteIgnored, err = meter.Int64Counter(
		"memclip_remote_ignored_total",
		metric.WithDescription("Remote entries not applied, by reason"),
	); err != nil {
		return nil, err
	}
	if m.peersObserved, err = meter.Int64UpDownCounter(
		"memclip_peers_online",
		metric.WithDescription("Peers currently online in the session"),
		metric.WithUnit("{peer}"),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RecordLocalChange counts a Case A adoption.
func (m *SyncMetrics) RecordLocalChange(ctx context.Context) {
	if m == nil {
		return
	}
	m.tally.localChanges.Add(1)
	m.localChanges.Add(ctx, 1)
}

// RecordClipboardWrite counts a Case B write.
func (m *SyncMetrics) RecordClipboardWrite(ctx context.Context, success bool) {
	if m == nil {
		return
	}
	if success {
		m.tally.clipboardWrites.Add(1)
	}
	m.clipboardSets.Add(ctx, 1, metric.WithAttributes(attribute.Bool("success", success)))
}

// RecordPublish counts a publish attempt with one of the Publish* results.
func (m *SyncMetrics) RecordPublish(ctx context.Context, result string) {
	if m == nil {
		return
	}
	switch result {
	case PublishSuccess:
		m.tally.published.Add(1)
	case PublishFailure:
		m.tally.publishFailures.Add(1)
	}
	m.publishes.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}

// RecordRemoteApply counts a remote value replacing the shared value.
func (m *SyncMetrics) RecordRemoteApply(ctx context.Context) {
	if m == nil {
		return
	}
	m.tally.remoteApplied.Add(1)
	m.remoteApplies.Add(ctx, 1)
}

// RecordIgnored counts a remote entry dropped for one of the Ignored* reasons.
func (m *SyncMetrics) RecordIgnored(ctx context.Context, reason string) {
	if m == nil {
		return
	}
	m.tally.remoteIgnored.Add(1)
	m.remoteIgnored.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}

// RecordPeerDelta adjusts the online peer gauge by delta.
func (m *SyncMetrics) RecordPeerDelta(ctx context.Context, delta int64) {
	if m == nil {
		return
	}
	m.peersObserved.Add(ctx, delta)
}

// Stats returns the current tallies.
func (m *SyncMetrics) Stats() SyncStats {
	if m == nil {
		return SyncStats{}
	}
	return SyncStats{
		LocalChanges:    m.tally.localChanges.Load(),
		ClipboardWrites: m.tally.clipboardWrites.Load(),
		Published:       m.tally.published.Load(),
		PublishFailures: m.tally.publishFailures.Load(),
		RemoteApplied:   m.tally.remoteApplied.Load(),
		RemoteIgnored:   m.tally.remoteIgnored.Load(),
	}
}

// HubMetrics holds the hub instruments. All methods are safe on a nil
// receiver.
type HubMetrics struct {
	entriesStored metric.Int64Counter
	blobBytes     metric.Int64Counter
	pollsServed   metric.Int64Counter
	peersExpired  metric.Int64Counter
}

// NewHubMetrics creates the hub instruments. If provider is nil, it returns
// nil (no-op metrics).
func NewHubMetrics(provider metric.MeterProvider) (*HubMetrics, error) {
	if provider == nil {
		return nil, nil
	}

	meter := provider.Meter(HubMetricsMeterName)
	m := &HubMetrics{}
	var err error

	if m.entriesStored, err = meter.Int64Counter(
		"memclip_hub_entries_total",
		metric.WithDescription("Entries appended to documents, by whether they were new"),
	); err != nil {
		return nil, err
	}
	if m.blobBytes, err = meter.Int64Counter(
		"memclip_hub_blob_bytes_total",
		metric.WithDescription("Bytes of blob content stored"),
		metric.WithUnit("By"),
	); err != nil {
		return nil, err
	}
	if m.pollsServed, err = meter.Int64Counter(
		"memclip_hub_polls_total",
		metric.WithDescription("Event polls answered"),
	); err != nil {
		return nil, err
	}
	if m.peersExpired, err = meter.Int64Counter(
		"memclip_hub_peers_expired_total",
		metric.WithDescription("Peers marked offline by the presence sweeper"),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RecordEntry counts an entry append; inserted is false for idempotent
// repeats.
func (m *HubMetrics) RecordEntry(ctx context.Context, inserted bool) {
	if m == nil {
		return
	}
	m.entriesStored.Add(ctx, 1, metric.WithAttributes(attribute.Bool("inserted", inserted)))
}

// RecordBlob adds size bytes of stored blob content.
func (m *HubMetrics) RecordBlob(ctx context.Context, size int64) {
	if m == nil {
		return
	}
	m.blobBytes.Add(ctx, size)
}

// RecordPoll counts an answered poll carrying events events.
func (m *HubMetrics) RecordPoll(ctx context.Context, events int) {
	if m == nil {
		return
	}
	m.pollsServed.Add(ctx, 1, metric.WithAttributes(attribute.Bool("empty", events == 0)))
}

// RecordExpired counts peers marked offline by a sweep.
func (m *HubMetrics) RecordExpired(ctx context.Context, count int) {
	if m == nil || count == 0 {
		return
	}
	m.peersExpired.Add(ctx, int64(count))
}
