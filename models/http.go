package models

import "time"

// TransferOwnershipRequest is the body of POST /api/owner/transfer.
type TransferOwnershipRequest struct {
	// NewOwner is the base58 address of the proposed administrator.
	NewOwner string `json:"new_owner"`
}

// OwnershipResponse describes the administrator slot.
type OwnershipResponse struct {
	Owner        string `json:"owner"`
	PendingOwner string `json:"pending_owner,omitempty"`
}

// FeeRequest is the body of PUT /api/fee.
type FeeRequest struct {
	Fee *Amount `json:"fee" validate:"required"`
}

// FeeResponse carries the current subscription fee or the fee pool balance.
type FeeResponse struct {
	Fee Amount `json:"fee"`
}

// SubscribeRequest is the body of POST /api/subscription. A zero or absent
// payment asks for the one-time trial.
type SubscribeRequest struct {
	Payment Amount `json:"payment"`
}

// SubscriptionResponse describes the caller's subscription.
type SubscriptionResponse struct {
	Subscribed   bool       `json:"subscribed"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	HasUsedTrial bool       `json:"has_used_trial"`
}

// StoreRecordRequest is the body of POST /api/records. An empty ID creates a
// new record; byte fields are base64 in JSON.
type StoreRecordRequest struct {
	ID          string `json:"id,omitempty"`
	Name        []byte `json:"name"`
	Description []byte `json:"description"`
	Value       []byte `json:"value"`
}

// StoreRecordResponse returns the identifier of the stored record.
type StoreRecordResponse struct {
	ID string `json:"id"`
}

// RecordResponse is one record of a page.
type RecordResponse struct {
	ID          string `json:"id"`
	Name        []byte `json:"name"`
	Description []byte `json:"description"`
	Value       []byte `json:"value"`
}

// RecordsPageResponse is the body of GET /api/records.
type RecordsPageResponse struct {
	PageIndex uint64           `json:"page_index"`
	Limit     int              `json:"limit"`
	Records   []RecordResponse `json:"records"`
	Length    int              `json:"length"`
}

// EventResponse is one audit log entry.
type EventResponse struct {
	Seq       int64             `json:"seq"`
	Kind      EventKind         `json:"kind"`
	Actor     string            `json:"actor"`
	Details   map[string]string `json:"details,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// EventsResponse is the body of GET /api/events.
type EventsResponse struct {
	Events []EventResponse `json:"events"`
	Length int             `json:"length"`
}

// ErrorResponse is written for every failed request. Kind is a stable error
// category, Reason a human-readable explanation.
type ErrorResponse struct {
	Kind   string `json:"kind"`
	Reason string `json:"reason"`
}

// NewRecordResponse converts a stored record to its transport form.
func NewRecordResponse(r StoredRecord) RecordResponse {
	return RecordResponse{
		ID:          FormatRecordID(r.ID),
		Name:        r.Name,
		Description: r.Description,
		Value:       r.Value,
	}
}

// NewEventResponse converts an audit event to its transport form.
func NewEventResponse(e Event) EventResponse {
	return EventResponse{
		Seq:       e.Seq,
		Kind:      e.Kind,
		Actor:     FormatAddress(e.Actor),
		Details:   e.Details,
		CreatedAt: e.CreatedAt,
	}
}
