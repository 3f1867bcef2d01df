package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/memclip/internal/utils"
	"github.com/MKhiriev/memclip/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createDocument(w http.ResponseWriter, r *http.Request) {
	var req models.PeerRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		h.writeError(w, r, "*Handler.createDocument", errJSON(err))
		return
	}

	doc, err := h.services.HubService.CreateDocument(r.Context(), req.PeerID)
	if err != nil {
		h.writeError(w, r, "*Handler.createDocument", err)
		return
	}

	utils.WriteJSON(w, doc, http.StatusCreated)
}

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := h.services.HubService.GetDocument(r.Context(), chi.URLParam(r, "docID"))
	if err != nil {
		h.writeError(w, r, "*Handler.getDocument", err)
		return
	}

	utils.WriteJSON(w, doc, http.StatusOK)
}

func (h *Handler) joinDocument(w http.ResponseWriter, r *http.Request) {
	var req models.PeerRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		h.writeError(w, r, "*Handler.joinDocument", errJSON(err))
		return
	}

	doc, err := h.services.HubService.JoinDocument(r.Context(), chi.URLParam(r, "docID"), req.PeerID)
	if err != nil {
		h.writeError(w, r, "*Handler.joinDocument", err)
		return
	}

	utils.WriteJSON(w, doc, http.StatusOK)
}

func (h *Handler) leaveDocument(w http.ResponseWriter, r *http.Request) {
	err := h.services.HubService.LeaveDocument(r.Context(), chi.URLParam(r, "docID"), chi.URLParam(r, "peerID"))
	if err != nil {
		h.writeError(w, r, "*Handler.leaveDocument", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setEntry(w http.ResponseWriter, r *http.Request) {
	var req models.SetEntryRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		h.writeError(w, r, "*Handler.setEntry", errJSON(err))
		return
	}

	resp, err := h.services.HubService.SetEntry(r.Context(), chi.URLParam(r, "docID"), req)
	if err != nil {
		h.writeError(w, r, "*Handler.setEntry", err)
		return
	}

	status := http.StatusOK
	if resp.Inserted {
		status = http.StatusCreated
	}
	utils.WriteJSON(w, resp, status)
}

func errJSON(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
}
