package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.SubscribeRequest
	if err = h.decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	sub, err := h.services.VaultService.Subscribe(r.Context(), caller, req.Payment)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().
		Uint64("payment", req.Payment).
		Time("expires_at", sub.ExpiresAt).
		Msg("caller subscribed")

	utils.WriteJSON(w, subscriptionResponse(sub), http.StatusOK)
}

func (h *Handler) getSubscription(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	sub, err := h.services.VaultService.Subscription(r.Context(), caller)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, subscriptionResponse(sub), http.StatusOK)
}

func subscriptionResponse(sub models.Subscription) models.SubscriptionResponse {
	resp := models.SubscriptionResponse{
		Subscribed:   sub.Active,
		HasUsedTrial: sub.HasUsedTrial,
	}
	if !sub.ExpiresAt.IsZero() {
		expiresAt := sub.ExpiresAt
		resp.ExpiresAt = &expiresAt
	}
	return resp
}
