package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/memclip/internal/app"
	"github.com/MKhiriev/memclip/internal/logger"
	"github.com/MKhiriev/memclip/internal/service"
	"github.com/MKhiriev/memclip/internal/store"
	"github.com/MKhiriev/memclip/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:   http.StatusBadRequest,
	ErrInvalidCursor: http.StatusBadRequest,
	ErrInvalidWait:   http.StatusBadRequest,
	ErrBodyTooLarge:  http.StatusRequestEntityTooLarge,

	service.ErrDocumentNotFound: http.StatusNotFound,
	service.ErrBlobNotFound:     http.StatusNotFound,
	service.ErrContentMismatch:  http.StatusBadRequest,
	service.ErrPayloadTooLarge:  http.StatusRequestEntityTooLarge,

	validators.ErrInvalidPeerID:     http.StatusBadRequest,
	validators.ErrInvalidDocumentID: http.StatusBadRequest,
	validators.ErrInvalidContentID:  http.StatusBadRequest,
	validators.ErrEmptyKey:          http.StatusBadRequest,
	validators.ErrInvalidSize:       http.StatusBadRequest,
	validators.ErrInvalidCursor:     http.StatusBadRequest,
	validators.ErrInvalidWait:       http.StatusBadRequest,

	store.ErrNotFound:              http.StatusNotFound,
	store.ErrDocumentAlreadyExists: http.StatusConflict,

	context.DeadlineExceeded: http.StatusGatewayTimeout,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the mapped status. Server errors
// hide the cause from the caller.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	event := log.Warn()
	message := err.Error()
	if status >= http.StatusInternalServerError {
		event = log.Error()
		message = app.MsgInternalServerError
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	http.Error(w, message, status)
}
