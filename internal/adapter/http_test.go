// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/memclip/internal/logger"
	"github.com/MKhiriev/memclip/internal/utils"
	"github.com/MKhiriev/memclip/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpHubAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpHubAdapter {
	t.Helper()

	a, err := NewHTTPHubAdapter(serverURL, 2*time.Second, logger.Nop())
	require.NoError(t, err)
	return a.(*httpHubAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any, status int) {
	t.Helper()
	_, err := utils.WriteJSON(w, v, status)
	require.NoError(t, err)
}

// ── Documents ───────────────────────────────────────────────────────────────

func TestCreateDocument_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/docs", r.URL.Path)

		var req models.PeerRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "peer-a", req.PeerID)

		writeJSON(t, w, models.DocumentResponse{
			DocumentID: "doc-1",
			Peers:      []models.Peer{{ID: "peer-a", Online: true}},
		}, http.StatusCreated)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	doc, err := a.CreateDocument(context.Background(), "peer-a")

	require.NoError(t, err)
	assert.Equal(t, "doc-1", doc.DocumentID)
	require.Len(t, doc.Peers, 1)
	assert.True(t, doc.Peers[0].Online)
}

func TestGetDocument_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/docs/missing", r.URL.Path)
		http.Error(w, "document not found", http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetDocument(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJoinDocument_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/docs/doc-1/peers", r.URL.Path)
		writeJSON(t, w, models.DocumentResponse{
			DocumentID: "doc-1",
			Peers:      []models.Peer{{ID: "peer-a"}, {ID: "peer-b", Online: true}},
		}, http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	doc, err := a.JoinDocument(context.Background(), "doc-1", "peer-b")

	require.NoError(t, err)
	assert.Len(t, doc.Peers, 2)
}

func TestLeaveDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/docs/doc-1/peers/peer-b", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.LeaveDocument(context.Background(), "doc-1", "peer-b"))
}

// ── Blobs ───────────────────────────────────────────────────────────────────

func TestPutBlob_SendsRawBytes(t *testing.T) {
	payload := []byte("clipboard bytes")
	id := utils.ContentIDOf(payload)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/blobs/"+id.String(), r.URL.Path)
		assert.Equal(t, "application/octet-stream", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Equal(t, payload, body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.PutBlob(context.Background(), id, payload))
}

func TestPutBlob_TooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "blob too large", http.StatusRequestEntityTooLarge)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.PutBlob(context.Background(), utils.ContentIDOf([]byte("x")), []byte("x"))

	assert.ErrorIs(t, err, ErrPayloadTooLarge)
}

func TestGetBlob_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteBytes(w, []byte("remote-value"), "", http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	data, err := a.GetBlob(context.Background(), utils.ContentIDOf([]byte("remote-value")))

	require.NoError(t, err)
	assert.Equal(t, []byte("remote-value"), data)
}

func TestGetBlob_BadGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetBlob(context.Background(), utils.ContentIDOf(nil))

	assert.ErrorIs(t, err, ErrUnavailable)
}

// ── Entries and events ──────────────────────────────────────────────────────

func TestSetEntry_Success(t *testing.T) {
	req := models.SetEntryRequest{
		Key:       "memclip",
		ContentID: utils.ContentIDOf([]byte("v")),
		Size:      1,
		Author:    "peer-a",
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/docs/doc-1/entries", r.URL.Path)

		var got models.SetEntryRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, req, got)

		writeJSON(t, w, models.SetEntryResponse{Seq: 7, Inserted: true}, http.StatusCreated)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	resp, err := a.SetEntry(context.Background(), "doc-1", req)

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.Seq)
	assert.True(t, resp.Inserted)
}

func TestSetEntry_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "blob missing", http.StatusConflict)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SetEntry(context.Background(), "doc-1", models.SetEntryRequest{})

	assert.ErrorIs(t, err, ErrConflict)
}

func TestEvents_QueryAndTrace(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/docs/doc-1/events", r.URL.Path)
		assert.Equal(t, "peer-a", r.URL.Query().Get("peer"))
		assert.Equal(t, "4", r.URL.Query().Get("after"))
		assert.Equal(t, "1s", r.URL.Query().Get("wait"))
		assert.Equal(t, "trace-9", r.Header.Get(traceIDHeader))

		writeJSON(t, w, models.EventsResponse{
			Events: []models.HubEvent{{Seq: 5, Kind: models.HubEventPeerJoined, PeerID: "peer-b"}},
			Next:   5,
		}, http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := utils.WithTraceID(context.Background(), "trace-9")
	resp, err := a.Events(ctx, "doc-1", "peer-a", 4, time.Second)

	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.Next)
	require.Len(t, resp.Events, 1)
	assert.Equal(t, models.HubEventPeerJoined, resp.Events[0].Kind)
}

func TestEvents_ContextCancelled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	a := newTestAdapter(t, srv.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := a.Events(ctx, "doc-1", "peer-a", 0, 10*time.Second)
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, models.VersionResponse{Version: "1.0.0", Date: "N/A", Commit: "abc"}, http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	v, err := a.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.0.0", v.Version)
}

func TestUnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Version(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

// ── normalizeBaseURL ────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "full url", input: "http://127.0.0.1:8089", want: "http://127.0.0.1:8089"},
		{name: "trailing slash", input: "https://hub.example.org/", want: "https://hub.example.org"},
		{name: "no scheme", input: "localhost:8089", want: "http://localhost:8089"},
		{name: "spaces", input: "  http://hub:1  ", want: "http://hub:1"},
		{name: "empty", input: "", wantErr: true},
		{name: "scheme only", input: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPHubAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPHubAdapter("", time.Second, logger.Nop())
	assert.Error(t, err)
}
