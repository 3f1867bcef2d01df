package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/memclip/internal/logger"
	"github.com/MKhiriev/memclip/internal/utils"
	"github.com/MKhiriev/memclip/models"
	"github.com/go-resty/resty/v2"
)

const traceIDHeader = "X-Trace-ID"

type httpHubAdapter struct {
	client  *utils.HTTPClient
	baseURL string
	timeout time.Duration

	logger *logger.Logger
}

// NewHTTPHubAdapter constructs an HTTP/REST implementation of [HubAdapter].
// It normalises and validates address and applies timeout to every request
// except event polls, which get their requested wait on top of it.
//
// Returns an error if address is empty or cannot be parsed as a URL.
func NewHTTPHubAdapter(address string, timeout time.Duration, logger *logger.Logger) (HubAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid hub address: %w", err)
	}

	// per-request deadlines come from the context so long polls can outlive
	// the regular timeout
	client := utils.NewHTTPClient(baseURL, 0)

	return &httpHubAdapter{
		client:  client,
		baseURL: baseURL,
		timeout: timeout,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// BaseURL implements [HubAdapter].
func (h *httpHubAdapter) BaseURL() string {
	return h.baseURL
}

// CreateDocument implements [HubAdapter]. POST /api/docs.
func (h *httpHubAdapter) CreateDocument(ctx context.Context, peerID string) (models.DocumentResponse, error) {
	ctx, cancel := h.withTimeout(ctx, 0)
	defer cancel()

	var doc models.DocumentResponse
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.PeerRequest{PeerID: peerID}).
		SetResult(&doc).
		Post("/api/docs")
	if err != nil {
		return models.DocumentResponse{}, fmt.Errorf("create document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DocumentResponse{}, err
	}

	return doc, nil
}

// GetDocument implements [HubAdapter]. GET /api/docs/{docID}.
func (h *httpHubAdapter) GetDocument(ctx context.Context, docID string) (models.DocumentResponse, error) {
	ctx, cancel := h.withTimeout(ctx, 0)
	defer cancel()

	var doc models.DocumentResponse
	resp, err := h.request(ctx).
		SetPathParam("docID", docID).
		SetResult(&doc).
		Get("/api/docs/{docID}")
	if err != nil {
		return models.DocumentResponse{}, fmt.Errorf("get document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DocumentResponse{}, err
	}

	return doc, nil
}

// JoinDocument implements [HubAdapter]. POST /api/docs/{docID}/peers.
func (h *httpHubAdapter) JoinDocument(ctx context.Context, docID, peerID string) (models.DocumentResponse, error) {
	ctx, cancel := h.withTimeout(ctx, 0)
	defer cancel()

	var doc models.DocumentResponse
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("docID", docID).
		SetBody(models.PeerRequest{PeerID: peerID}).
		SetResult(&doc).
		Post("/api/docs/{docID}/peers")
	if err != nil {
		return models.DocumentResponse{}, fmt.Errorf("join document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DocumentResponse{}, err
	}

	return doc, nil
}

// LeaveDocument implements [HubAdapter]. DELETE /api/docs/{docID}/peers/{peerID}.
func (h *httpHubAdapter) LeaveDocument(ctx context.Context, docID, peerID string) error {
	ctx, cancel := h.withTimeout(ctx, 0)
	defer cancel()

	resp, err := h.request(ctx).
		SetPathParams(map[string]string{"docID": docID, "peerID": peerID}).
		Delete("/api/docs/{docID}/peers/{peerID}")
	if err != nil {
		return fmt.Errorf("leave document request: %w", err)
	}

	return mapHTTPError(resp)
}

// PutBlob implements [HubAdapter]. PUT /api/blobs/{contentID}.
func (h *httpHubAdapter) PutBlob(ctx context.Context, id models.ContentID, data []byte) error {
	ctx, cancel := h.withTimeout(ctx, 0)
	defer cancel()

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetPathParam("contentID", id.String()).
		SetBody(data).
		Put("/api/blobs/{contentID}")
	if err != nil {
		return fmt.Errorf("put blob request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetBlob implements [HubAdapter]. GET /api/blobs/{contentID}.
func (h *httpHubAdapter) GetBlob(ctx context.Context, id models.ContentID) ([]byte, error) {
	ctx, cancel := h.withTimeout(ctx, 0)
	defer cancel()

	resp, err := h.request(ctx).
		SetHeader("Accept", "application/octet-stream").
		SetPathParam("contentID", id.String()).
		Get("/api/blobs/{contentID}")
	if err != nil {
		return nil, fmt.Errorf("get blob request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// SetEntry implements [HubAdapter]. POST /api/docs/{docID}/entries.
func (h *httpHubAdapter) SetEntry(ctx context.Context, docID string, req models.SetEntryRequest) (models.SetEntryResponse, error) {
	ctx, cancel := h.withTimeout(ctx, 0)
	defer cancel()

	var result models.SetEntryResponse
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("docID", docID).
		SetBody(req).
		SetResult(&result).
		Post("/api/docs/{docID}/entries")
	if err != nil {
		return models.SetEntryResponse{}, fmt.Errorf("set entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SetEntryResponse{}, err
	}

	return result, nil
}

// Events implements [HubAdapter]. GET /api/docs/{docID}/events.
func (h *httpHubAdapter) Events(ctx context.Context, docID, peerID string, after int64, wait time.Duration) (models.EventsResponse, error) {
	ctx, cancel := h.withTimeout(ctx, wait)
	defer cancel()

	var events models.EventsResponse
	resp, err := h.request(ctx).
		SetPathParam("docID", docID).
		SetQueryParams(map[string]string{
			"peer":  peerID,
			"after": strconv.FormatInt(after, 10),
			"wait":  wait.String(),
		}).
		SetResult(&events).
		Get("/api/docs/{docID}/events")
	if err != nil {
		return models.EventsResponse{}, fmt.Errorf("events request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EventsResponse{}, err
	}

	h.logger.Debug().
		Str("func", "httpHubAdapter.Events").
		Str("doc_id", docID).
		Int64("after", after).
		Int("count", len(events.Events)).
		Msg("events polled")

	return events, nil
}

// Version implements [HubAdapter]. GET /api/version.
func (h *httpHubAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	ctx, cancel := h.withTimeout(ctx, 0)
	defer cancel()

	var version models.VersionResponse
	resp, err := h.request(ctx).
		SetResult(&version).
		Get("/api/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}

// withTimeout bounds ctx by the adapter timeout plus extra. A non-positive
// adapter timeout leaves ctx unbounded.
func (h *httpHubAdapter) withTimeout(ctx context.Context, extra time.Duration) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.timeout+extra)
}

func (h *httpHubAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}
	return req
}
