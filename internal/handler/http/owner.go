package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (h *Handler) getOwnership(w http.ResponseWriter, r *http.Request) {
	ownership, err := h.services.VaultService.Ownership(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := models.OwnershipResponse{Owner: models.FormatAddress(ownership.Owner)}
	if ownership.HasPendingTransfer() {
		resp.PendingOwner = models.FormatAddress(ownership.PendingOwner)
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) requestOwnershipTransfer(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.TransferOwnershipRequest
	if err = h.decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	newOwner, err := models.ParseAddress(req.NewOwner)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.VaultService.RequestOwnershipTransfer(r.Context(), caller, newOwner); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("pending_owner", req.NewOwner).Msg("ownership transfer requested")
	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) acceptOwnership(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.VaultService.AcceptOwnership(r.Context(), caller); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Msg("ownership accepted")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) renounceOwnership(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.VaultService.RenounceOwnership(r.Context(), caller); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
