package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/memclip/internal/utils"
	"github.com/go-chi/chi/v5"
)

// events serves the long-poll. Query: peer, after (sequence cursor, default
// 0) and wait ("25s" or a number of seconds, default 0).
func (h *Handler) events(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	after, err := parseCursor(query.Get("after"))
	if err != nil {
		h.writeError(w, r, "*Handler.events", err)
		return
	}
	wait, err := parseWait(query.Get("wait"))
	if err != nil {
		h.writeError(w, r, "*Handler.events", err)
		return
	}

	resp, err := h.services.HubService.Events(r.Context(), chi.URLParam(r, "docID"), query.Get("peer"), after, wait)
	if err != nil {
		h.writeError(w, r, "*Handler.events", err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func parseCursor(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	after, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCursor, raw)
	}
	return after, nil
}

func parseWait(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	if seconds, err := strconv.Atoi(raw); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}
	wait, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWait, raw)
	}
	return wait, nil
}
