package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/memclip/internal/utils"
	"github.com/MKhiriev/memclip/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) putBlob(w http.ResponseWriter, r *http.Request) {
	body := r.Body
	if h.maxBlobSize > 0 {
		body = http.MaxBytesReader(w, r.Body, h.maxBlobSize)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			err = fmt.Errorf("%w: limit %d bytes", ErrBodyTooLarge, tooLarge.Limit)
		}
		h.writeError(w, r, "*Handler.putBlob", err)
		return
	}

	id := models.ContentID(chi.URLParam(r, "contentID"))
	if err = h.services.HubService.PutBlob(r.Context(), id, data); err != nil {
		h.writeError(w, r, "*Handler.putBlob", err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) getBlob(w http.ResponseWriter, r *http.Request) {
	id := models.ContentID(chi.URLParam(r, "contentID"))

	data, err := h.services.HubService.GetBlob(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "*Handler.getBlob", err)
		return
	}

	utils.WriteBytes(w, data, "application/octet-stream", http.StatusOK)
}
