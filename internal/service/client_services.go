package service

import (
	"github.com/MKhiriev/memclip/internal/clipboard"
	"github.com/MKhiriev/memclip/internal/config"
	"github.com/MKhiriev/memclip/internal/docstore"
	"github.com/MKhiriev/memclip/internal/logger"
	"github.com/MKhiriev/memclip/internal/memclip"
	"github.com/MKhiriev/memclip/internal/telemetry"
)

// SyncServices are the three goroutines of a running session.
type SyncServices struct {
	Watcher    ClipboardWatcher
	Publisher  RemotePublisher
	Subscriber RemoteSubscriber
}

func NewSyncServices(
	cb clipboard.Clipboard,
	state *memclip.State,
	peers *memclip.Peers,
	doc docstore.Document,
	cfg *config.ClientConfig,
	metrics *telemetry.SyncMetrics,
	log *logger.Logger,
) *SyncServices {
	return &SyncServices{
		Watcher: NewClipboardWatcher(cb, state, cfg.Clipboard.PollInterval, metrics, log.Component("watcher")),
		Publisher: NewRemotePublisher(doc, state, PublisherConfig{
			Key:            cfg.Clipboard.Key,
			WaitTimeout:    cfg.Sync.WaitTimeout,
			MaxPayloadSize: cfg.Clipboard.MaxPayloadSize,
		}, metrics, log.Component("publisher")),
		Subscriber: NewRemoteSubscriber(doc, state, peers, SubscriberConfig{
			Key:            cfg.Clipboard.Key,
			MaxPayloadSize: cfg.Clipboard.MaxPayloadSize,
		}, metrics, log.Component("subscriber")),
	}
}
