package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/memclip/internal/docstore"
	"github.com/MKhiriev/memclip/internal/logger"
	"github.com/MKhiriev/memclip/internal/memclip"
	"github.com/MKhiriev/memclip/models"
)

type sessionService struct {
	node  docstore.Node
	peers *memclip.Peers

	logger *logger.Logger
}

// NewSessionService opens sessions through node and seeds peers with the
// participants listed in each session's ticket.
func NewSessionService(node docstore.Node, peers *memclip.Peers, logger *logger.Logger) SessionService {
	return &sessionService{
		node:   node,
		peers:  peers,
		logger: logger,
	}
}

func (s *sessionService) Start(ctx context.Context) (Session, error) {
	doc, err := s.node.Create(ctx)
	if err != nil {
		return Session{}, fmt.Errorf("create document: %w", err)
	}

	return s.open(ctx, doc)
}

func (s *sessionService) Join(ctx context.Context, ticket models.Ticket) (Session, error) {
	doc, err := s.node.Import(ctx, ticket)
	if err != nil {
		return Session{}, fmt.Errorf("import ticket: %w", err)
	}

	return s.open(ctx, doc)
}

func (s *sessionService) Leave(ctx context.Context, session Session) error {
	if session.Document == nil {
		return nil
	}
	if err := session.Document.Close(ctx); err != nil {
		return fmt.Errorf("leave document %s: %w", session.Document.ID(), err)
	}

	s.logger.Info().Str("func", "*sessionService.Leave").Str("doc_id", session.Document.ID()).Msg("left session")
	return nil
}

func (s *sessionService) open(ctx context.Context, doc docstore.Document) (Session, error) {
	ticket, err := doc.Share(ctx)
	if err != nil {
		_ = doc.Close(ctx)
		return Session{}, fmt.Errorf("share document: %w", err)
	}

	s.peers.Seed(ticket.Peers...)
	s.peers.MarkOnline(s.node.PeerID())

	s.logger.Info().Str("func", "*sessionService.open").
		Str("doc_id", doc.ID()).Str("peer_id", s.node.PeerID()).Int("peers", len(ticket.Peers)).
		Msg("session opened")
	return Session{Document: doc, Ticket: ticket}, nil
}
