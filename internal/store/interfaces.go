package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
)

// StateStore persists the whole vault state: the settings singleton,
// subscriptions, record namespaces and the audit log.
//
// Every read and write happens inside [StateStore.RunInTx]. The transaction
// commits when fn returns nil and rolls back on any error, so a failed
// operation leaves no partial writes behind.
type StateStore interface {
	// Init creates the settings singleton with owner and fee when it does not
	// exist yet and returns the effective settings. A store that is already
	// initialized keeps its persisted values.
	Init(ctx context.Context, owner models.Address, fee models.Amount) (models.VaultSettings, error)
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx StateTx) error) error
	Ping(ctx context.Context) error
	Close() error
}

// StateTx is the view of the state available inside one transaction.
type StateTx interface {
	Settings(ctx context.Context) (models.VaultSettings, error)
	SaveSettings(ctx context.Context, settings models.VaultSettings) error

	// Subscription returns the stored subscription of caller or a zero
	// subscription (never subscribed, trial unused) when none exists.
	Subscription(ctx context.Context, caller models.Address) (models.Subscription, error)
	SaveSubscription(ctx context.Context, sub models.Subscription) error

	// NextRecordSeq increments and returns the insertion counter of the
	// caller's namespace. The first call returns 1.
	NextRecordSeq(ctx context.Context, caller models.Address) (uint64, error)
	RecordExists(ctx context.Context, caller models.Address, id models.RecordID) (bool, error)
	InsertRecord(ctx context.Context, caller models.Address, seq uint64, record models.StoredRecord, now time.Time) error
	UpdateRecord(ctx context.Context, caller models.Address, record models.StoredRecord, now time.Time) error
	DeleteRecord(ctx context.Context, caller models.Address, id models.RecordID) error
	// ListRecords returns up to limit records of the caller's namespace in
	// insertion order, skipping the first offset ones.
	ListRecords(ctx context.Context, caller models.Address, offset, limit uint64) ([]models.StoredRecord, error)

	// AppendEvent stores event and returns it with Seq assigned.
	AppendEvent(ctx context.Context, event models.Event) (models.Event, error)
	// ListEvents returns up to limit events with Seq >= fromSeq in order.
	ListEvents(ctx context.Context, fromSeq int64, limit uint64) ([]models.Event, error)
}

// ErrorClassificator decides whether a driver error is worth retrying and
// whether it reports a uniqueness violation.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
