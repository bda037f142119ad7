package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (h *Handler) getFee(w http.ResponseWriter, r *http.Request) {
	fee, err := h.services.VaultService.Fee(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.FeeResponse{Fee: fee}, http.StatusOK)
}

func (h *Handler) changeFee(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.FeeRequest
	if err = h.decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.VaultService.ChangeFee(r.Context(), caller, *req.Fee); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.FeeResponse{Fee: *req.Fee}, http.StatusOK)
}

func (h *Handler) getFeePool(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	pool, err := h.services.VaultService.FeePool(r.Context(), caller)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.FeeResponse{Fee: pool}, http.StatusOK)
}
