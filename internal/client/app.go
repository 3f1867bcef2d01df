package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/memclip/internal/adapter"
	"github.com/MKhiriev/memclip/internal/app"
	"github.com/MKhiriev/memclip/internal/clipboard"
	"github.com/MKhiriev/memclip/internal/config"
	"github.com/MKhiriev/memclip/internal/docstore"
	"github.com/MKhiriev/memclip/internal/logger"
	"github.com/MKhiriev/memclip/internal/memclip"
	"github.com/MKhiriev/memclip/internal/service"
	"github.com/MKhiriev/memclip/internal/telemetry"
	"github.com/MKhiriev/memclip/internal/tui"
	"github.com/MKhiriev/memclip/models"
)

const (
	leaveTimeout = 5 * time.Second

	// blobCacheBytes bounds the downloaded content kept per document.
	blobCacheBytes = 256 << 20
)

// App is the memclip daemon.
type App struct {
	cfg    *config.ClientConfig
	build  models.AppBuildInfo
	out    io.Writer
	logger *logger.Logger

	lockPath         string
	newClipboard     func() (clipboard.Clipboard, error)
	newNode          func() (docstore.Node, error)
	dashboardOptions []tea.ProgramOption
}

var _ Client = (*App)(nil)

// NewApp builds a daemon that talks to the hub in cfg and prints tickets to
// out.
func NewApp(cfg *config.ClientConfig, build models.AppBuildInfo, out io.Writer, log *logger.Logger) (*App, error) {
	lockPath, err := DefaultLockPath()
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:          cfg,
		build:        build,
		out:          out,
		logger:       log,
		lockPath:     lockPath,
		newClipboard: clipboard.NewSystemClipboard,
	}
	a.newNode = a.newHubNode
	return a, nil
}

func (a *App) newHubNode() (docstore.Node, error) {
	dial := func(address string) (adapter.HubAdapter, error) {
		return adapter.NewHTTPHubAdapter(address, a.cfg.Adapter.RequestTimeout, a.logger.Component("adapter"))
	}

	hub, err := dial(a.cfg.Adapter.HubAddress)
	if err != nil {
		return nil, err
	}

	return docstore.NewHubNode(hub, docstore.HubNodeConfig{
		PollWait:    a.cfg.Adapter.PollWait,
		MaxDownload: a.cfg.Clipboard.MaxPayloadSize,
		CacheBytes:  blobCacheBytes,
		Dial:        dial,
	}, a.logger.Component("docstore")), nil
}

// Start implements Client.
func (a *App) Start(ctx context.Context) error {
	return a.run(ctx, func(ctx context.Context, sessions service.SessionService) (service.Session, error) {
		session, err := sessions.Start(ctx)
		if err != nil {
			return service.Session{}, err
		}
		fmt.Fprintln(a.out, app.MsgSessionStarted)
		fmt.Fprintln(a.out, session.Ticket.String())
		return session, nil
	})
}

// Join implements Client.
func (a *App) Join(ctx context.Context, ticket models.Ticket) error {
	return a.run(ctx, func(ctx context.Context, sessions service.SessionService) (service.Session, error) {
		session, err := sessions.Join(ctx, ticket)
		if err != nil {
			return service.Session{}, err
		}
		fmt.Fprintln(a.out, app.MsgSessionJoined)
		fmt.Fprintln(a.out, session.Ticket.String())
		return session, nil
	})
}

type openFunc func(ctx context.Context, sessions service.SessionService) (service.Session, error)

func (a *App) run(ctx context.Context, open openFunc) error {
	log := a.logger.With().Str("func", "*App.run").Logger()

	lock, err := acquireLock(a.lockPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			log.Warn().Err(err).Msg("failed to release lock")
		}
	}()

	cb, err := a.newClipboard()
	if err != nil {
		return fmt.Errorf("open clipboard: %w", err)
	}

	initial, err := cb.Get()
	if err != nil {
		return fmt.Errorf("%w: initial read: %v", clipboard.ErrNoBackend, err)
	}
	state := memclip.NewState(initial)
	peers := memclip.NewPeers()

	provider, err := telemetry.NewProvider(a.cfg.Telemetry.MetricsAddress != "")
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), leaveTimeout)
		defer cancel()
		_ = provider.Shutdown(shutdownCtx)
	}()

	metrics, err := telemetry.NewSyncMetrics(provider.MeterProvider())
	if err != nil {
		return err
	}

	node, err := a.newNode()
	if err != nil {
		return fmt.Errorf("connect to hub: %w", err)
	}

	sessions := service.NewSessionService(node, peers, a.logger.Component("session"))
	session, err := open(ctx, sessions)
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer func() {
		leaveCtx, cancel := context.WithTimeout(context.Background(), leaveTimeout)
		defer cancel()
		if err := sessions.Leave(leaveCtx, session); err != nil {
			log.Warn().Err(err).Msg("failed to leave session")
		}
	}()

	syncs := service.NewSyncServices(cb, state, peers, session.Document, a.cfg, metrics, a.logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return syncs.Watcher.Run(gctx) })
	g.Go(func() error { return syncs.Publisher.Run(gctx) })
	g.Go(func() error { return syncs.Subscriber.Run(gctx) })

	if address := a.cfg.Telemetry.MetricsAddress; address != "" {
		g.Go(func() error { return serveMetrics(gctx, address, provider.Handler(), a.logger) })
	}

	if a.cfg.App.Dashboard {
		source := tui.SourceFunc(func() tui.Status {
			return tui.Status{
				Ticket: session.Ticket,
				PeerID: node.PeerID(),
				Value:  state.Read(),
				Peers:  peers.Snapshot(),
				Stats:  metrics.Stats(),
			}
		})
		dashboard := tui.New(source, a.build, a.dashboardOptions...)
		g.Go(func() error { return dashboard.Run(gctx) })
	}

	log.Info().Str("doc_id", session.Document.ID()).Str("peer_id", node.PeerID()).Msg("memclip running")

	err = g.Wait()
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return err
}
