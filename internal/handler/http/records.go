package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

const defaultPageLimit = 10

func (h *Handler) storeOrUpdate(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.StoreRecordRequest
	if err = h.decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	id, err := models.ParseRecordID(req.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	record := models.Record{
		Name:        req.Name,
		Description: req.Description,
		Value:       req.Value,
	}
	storedID, err := h.services.VaultService.StoreOrUpdate(r.Context(), caller, id, record)
	if err != nil {
		writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if models.IsZeroRecordID(id) {
		status = http.StatusCreated
	}

	logger.FromRequest(r).Debug().Str("id", models.FormatRecordID(storedID)).Msg("record stored")
	utils.WriteJSON(w, models.StoreRecordResponse{ID: models.FormatRecordID(storedID)}, status)
}

func (h *Handler) getStoredPasswords(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	pageIndex, err := uintQuery(r, "page", 0)
	if err != nil {
		writeError(w, r, err)
		return
	}
	limit, err := intQuery(r, "limit", defaultPageLimit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	records, err := h.services.VaultService.GetStoredPasswords(r.Context(), caller, pageIndex, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := models.RecordsPageResponse{
		PageIndex: pageIndex,
		Limit:     limit,
		Records:   make([]models.RecordResponse, 0, len(records)),
		Length:    len(records),
	}
	for _, rec := range records {
		resp.Records = append(resp.Records, models.NewRecordResponse(rec))
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) removeData(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	// a malformed id fails here, before the vault checks access
	id, err := models.ParseRecordID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.VaultService.RemoveData(r.Context(), caller, id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func uintQuery(r *http.Request, name string, def uint64) (uint64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidQueryParameter, name, err)
	}
	return v, nil
}

func intQuery(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidQueryParameter, name, err)
	}
	return v, nil
}
