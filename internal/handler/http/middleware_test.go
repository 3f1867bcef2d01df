package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/memclip/internal/logger"
	"github.com/MKhiriev/memclip/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── withTraceID ──────────────────────────────────────────────────────────────

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantHeader bool
	}{
		{name: "incoming trace id is reused", header: "my-custom-trace-id", wantHeader: true},
		{name: "missing trace id is generated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop()}

			var ctxTraceID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxTraceID, _ = utils.GetTraceIDFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.header != "" {
				req.Header.Set(traceIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rec, req)

			got := rec.Header().Get(traceIDHeader)
			if tt.wantHeader {
				assert.Equal(t, tt.header, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
			assert.Equal(t, got, ctxTraceID)
		})
	}
}

// ── withLogging ──────────────────────────────────────────────────────────────

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, "hello")
	})

	req := httptest.NewRequest(http.MethodPost, "/api/docs", nil)
	req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))
	rec := httptest.NewRecorder()

	h.withLogging(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	for _, want := range []string{`"method":"POST"`, `"uri":"/api/docs"`, `"status":201`, `"size":5`, `"duration":`} {
		assert.Contains(t, buf.String(), want)
	}
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusAccepted)
	w.WriteHeader(http.StatusTeapot)
	n, err := w.Write([]byte("abc"))

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, http.StatusAccepted, w.status)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 3, w.size)
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	w := &responseWriter{ResponseWriter: httptest.NewRecorder()}
	w.Write([]byte("x"))

	assert.Equal(t, http.StatusOK, w.status)
}

// ── withGZip ─────────────────────────────────────────────────────────────────

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestWithGZip(t *testing.T) {
	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Length", "999")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	})

	tests := []struct {
		name           string
		acceptEncoding string
		gzipRequest    bool
		wantGzipped    bool
	}{
		{name: "plain in, plain out"},
		{name: "plain in, gzip out", acceptEncoding: "deflate, gzip", wantGzipped: true},
		{name: "gzip in, plain out", gzipRequest: true},
		{name: "gzip in, gzip out", acceptEncoding: "gzip", gzipRequest: true, wantGzipped: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := []byte(`{"peer_id":"abc"}`)
			body := payload
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.gzipRequest {
				body = gzipBytes(t, payload)
				req.Header.Set("Content-Encoding", "gzip")
			}
			req.Body = io.NopCloser(bytes.NewReader(body))
			req.Header.Set("Accept-Encoding", tt.acceptEncoding)

			rec := httptest.NewRecorder()
			withGZip(echo).ServeHTTP(rec, req)
			require.Equal(t, http.StatusOK, rec.Code)

			got := rec.Body.Bytes()
			if tt.wantGzipped {
				assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
				assert.Empty(t, rec.Header().Get("Content-Length"))
				zr, err := gzip.NewReader(bytes.NewReader(got))
				require.NoError(t, err)
				got, err = io.ReadAll(zr)
				require.NoError(t, err)
			} else {
				assert.Empty(t, rec.Header().Get("Content-Encoding"))
			}
			assert.Equal(t, payload, got)
		})
	}
}

func TestWithGZip_InvalidBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	called := false
	withGZip(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called)
}

func TestWithGZip_NoContent(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Zero(t, rec.Body.Len())
}

// ── CheckHTTPMethod ──────────────────────────────────────────────────────────

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/ping", func(w http.ResponseWriter, _ *http.Request) { io.WriteString(w, "pong") })
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		method string
		status int
	}{
		{method: http.MethodGet, status: http.StatusOK},
		{method: http.MethodPost, status: http.StatusNotFound},
		{method: http.MethodDelete, status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, "/ping", nil))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
