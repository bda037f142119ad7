package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

const defaultEventsLimit = 100

// getEvents lists audit events starting at the sequence number given by the
// "from" query parameter.
func (h *Handler) getEvents(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var fromSeq int64
	if raw := r.URL.Query().Get("from"); raw != "" {
		fromSeq, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: from: %w", ErrInvalidQueryParameter, err))
			return
		}
	}
	limit, err := intQuery(r, "limit", defaultEventsLimit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	events, err := h.services.VaultService.Events(r.Context(), caller, fromSeq, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := models.EventsResponse{
		Events: make([]models.EventResponse, 0, len(events)),
		Length: len(events),
	}
	for _, e := range events {
		resp.Events = append(resp.Events, models.NewEventResponse(e))
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
