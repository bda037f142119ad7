package models

import "time"

// EventKind names an observable state change.
type EventKind string

const (
	EventOwnershipTransferStarted EventKind = "ownership_transfer_started"
	EventOwnershipTransferred     EventKind = "ownership_transferred"
	EventFeeChanged               EventKind = "fee_changed"
	EventSubscribed               EventKind = "subscribed"
	EventRecordStored             EventKind = "record_stored"
	EventRecordUpdated            EventKind = "record_updated"
	EventRecordRemoved            EventKind = "record_removed"
)

// Event is one entry of the audit log. Seq is assigned by the state store
// and grows strictly with every appended event.
type Event struct {
	Seq       int64             `json:"seq"`
	Kind      EventKind         `json:"kind"`
	Actor     Address           `json:"-"`
	Details   map[string]string `json:"details,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}
