// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/memclip/internal/docstore"
	"github.com/MKhiriev/memclip/internal/logger"
	"github.com/MKhiriev/memclip/internal/memclip"
	"github.com/MKhiriev/memclip/internal/mock"
	"github.com/MKhiriev/memclip/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSessionService_StartAndJoin(t *testing.T) {
	network := docstore.NewMemoryNetwork()
	ctx := context.Background()

	hostPeers := memclip.NewPeers()
	host := NewSessionService(network.NewNode("host"), hostPeers, logger.Nop())
	started, err := host.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, started.Document.ID(), started.Ticket.DocumentID)
	assert.Equal(t, []string{"host"}, started.Ticket.Peers)
	assert.Equal(t, 1, hostPeers.Online())

	guestPeers := memclip.NewPeers()
	guest := NewSessionService(network.NewNode("guest"), guestPeers, logger.Nop())
	joined, err := guest.Join(ctx, started.Ticket)
	require.NoError(t, err)
	assert.Equal(t, started.Document.ID(), joined.Document.ID())
	assert.ElementsMatch(t, []string{"guest", "host"}, joined.Ticket.Peers)
	assert.Len(t, guestPeers.Snapshot(), 2)
	assert.Equal(t, 1, guestPeers.Online(), "ticket peers are known but not yet confirmed online")

	require.NoError(t, guest.Leave(ctx, joined))
	require.NoError(t, host.Leave(ctx, started))
}

func TestSessionService_JoinUnknownDocument(t *testing.T) {
	network := docstore.NewMemoryNetwork()
	svc := NewSessionService(network.NewNode("guest"), memclip.NewPeers(), logger.Nop())

	_, err := svc.Join(context.Background(), models.Ticket{DocumentID: "missing", Hub: docstore.MemoryHub})
	assert.ErrorIs(t, err, docstore.ErrDocumentNotFound)
}

func TestSessionService_ShareFailureClosesDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	node := mock.NewMockNode(ctrl)
	doc := mock.NewMockDocument(ctrl)

	node.EXPECT().Create(gomock.Any()).Return(doc, nil)
	doc.EXPECT().Share(gomock.Any()).Return(models.Ticket{}, errNetwork)
	doc.EXPECT().Close(gomock.Any()).Return(nil)

	svc := NewSessionService(node, memclip.NewPeers(), logger.Nop())
	_, err := svc.Start(context.Background())
	assert.ErrorIs(t, err, errNetwork)
}

func TestSessionService_LeaveWithoutDocument(t *testing.T) {
	svc := NewSessionService(docstore.NewMemoryNetwork().NewNode("p"), memclip.NewPeers(), logger.Nop())
	assert.NoError(t, svc.Leave(context.Background(), Session{}))
}
