package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/events"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	// MaxPageLimit is the largest page size of GetStoredPasswords.
	MaxPageLimit = 255
	// MaxEventsLimit is the largest page size of Events.
	MaxEventsLimit = 1000
)

// VaultConfig holds the subscription rules of the vault.
type VaultConfig struct {
	TrialPeriod       time.Duration
	PaidPeriod        time.Duration
	ResubscribePolicy models.ResubscribePolicy
}

// vaultService owns the administrator slot and composes the access
// controller, the subscription registry and the record vault. One mutex
// serializes every call; each call is one state store transaction.
type vaultService struct {
	mu sync.Mutex

	store     store.StateStore
	clock     Clock
	publisher events.Publisher

	access        accessController
	subscriptions subscriptionRegistry
	records       recordVault

	// onPublishFailure is called once per event batch that failed to publish.
	onPublishFailure func()

	logger *logger.Logger
}

// VaultOption customizes a vault service built by [NewVaultService].
type VaultOption func(*vaultService)

// WithPublishFailureHook registers f to be called whenever committed events
// could not be published.
func WithPublishFailureHook(f func()) VaultOption {
	return func(v *vaultService) {
		if f != nil {
			v.onPublishFailure = f
		}
	}
}

// NewVaultService builds the vault on top of an initialized state store.
func NewVaultService(st store.StateStore, cfg VaultConfig, clock Clock, publisher events.Publisher, log *logger.Logger, opts ...VaultOption) VaultService {
	return newVaultService(st, cfg, clock, publisher, log, opts...)
}

func newVaultService(st store.StateStore, cfg VaultConfig, clock Clock, publisher events.Publisher, log *logger.Logger, opts ...VaultOption) *vaultService {
	if cfg.ResubscribePolicy == "" {
		cfg.ResubscribePolicy = models.ResubscribeReject
	}

	v := &vaultService{
		store:     st,
		clock:     clock,
		publisher: publisher,
		subscriptions: subscriptionRegistry{
			trialPeriod: cfg.TrialPeriod,
			paidPeriod:  cfg.PaidPeriod,
			policy:      cfg.ResubscribePolicy,
		},
		records: recordVault{
			validator: validators.NewRecordValidator(),
		},
		onPublishFailure: func() {},
		logger:           log,
	}
	for _, opt := range opts {
		opt(v)
	}

	return v
}

// operation is the state of one vault call inside its transaction.
type operation struct {
	tx     store.StateTx
	now    time.Time
	events []models.Event
}

// emit appends an audit event in the current transaction.
func (op *operation) emit(ctx context.Context, kind models.EventKind, actor models.Address, details map[string]string) error {
	event, err := op.tx.AppendEvent(ctx, models.Event{
		Kind:      kind,
		Actor:     actor,
		Details:   details,
		CreatedAt: op.now,
	})
	if err != nil {
		return fmt.Errorf("error appending %s event: %w", kind, err)
	}

	op.events = append(op.events, event)
	return nil
}

// run executes fn under the vault lock inside one transaction and publishes
// the recorded events after the transaction has committed. Publishing
// happens before the lock is released, so events leave in Seq order.
func (v *vaultService) run(ctx context.Context, fn func(ctx context.Context, op *operation) error) error {
	var committed []models.Event

	v.mu.Lock()
	defer v.mu.Unlock()

	err := v.store.RunInTx(ctx, func(ctx context.Context, tx store.StateTx) error {
		op := &operation{tx: tx, now: v.clock.Now()}
		if err := fn(ctx, op); err != nil {
			return err
		}
		committed = op.events
		return nil
	})

	if err != nil {
		return err
	}

	if len(committed) > 0 && v.publisher != nil {
		if pubErr := v.publisher.Publish(ctx, committed...); pubErr != nil {
			v.logger.Err(pubErr).Int("events", len(committed)).Msg("committed events were not published")
			v.onPublishFailure()
		}
	}

	return nil
}

func (v *vaultService) Ownership(ctx context.Context) (models.Ownership, error) {
	var ownership models.Ownership
	err := v.run(ctx, func(ctx context.Context, op *operation) error {
		settings, err := op.tx.Settings(ctx)
		ownership = settings.Ownership
		return err
	})
	return ownership, err
}

func (v *vaultService) RequestOwnershipTransfer(ctx context.Context, caller, newOwner models.Address) error {
	return v.run(ctx, func(ctx context.Context, op *operation) error {
		return v.access.requestTransfer(ctx, op, caller, newOwner)
	})
}

func (v *vaultService) AcceptOwnership(ctx context.Context, caller models.Address) error {
	return v.run(ctx, func(ctx context.Context, op *operation) error {
		return v.access.acceptTransfer(ctx, op, caller)
	})
}

func (v *vaultService) RenounceOwnership(_ context.Context, _ models.Address) error {
	return fmt.Errorf("%w: the vault always keeps an administrator", ErrUnsupported)
}

func (v *vaultService) Fee(ctx context.Context) (models.Amount, error) {
	var fee models.Amount
	err := v.run(ctx, func(ctx context.Context, op *operation) error {
		settings, err := op.tx.Settings(ctx)
		fee = settings.Fee
		return err
	})
	return fee, err
}

func (v *vaultService) ChangeFee(ctx context.Context, caller models.Address, fee models.Amount) error {
	return v.run(ctx, func(ctx context.Context, op *operation) error {
		return v.subscriptions.changeFee(ctx, op, caller, fee)
	})
}

func (v *vaultService) FeePool(ctx context.Context, caller models.Address) (models.Amount, error) {
	var pool models.Amount
	err := v.run(ctx, func(ctx context.Context, op *operation) error {
		settings, err := v.access.requireOwner(ctx, op, caller)
		pool = settings.FeePool
		return err
	})
	return pool, err
}

func (v *vaultService) Subscribe(ctx context.Context, caller models.Address, payment models.Amount) (models.Subscription, error) {
	var sub models.Subscription
	err := v.run(ctx, func(ctx context.Context, op *operation) error {
		var err error
		sub, err = v.subscriptions.subscribe(ctx, op, caller, payment)
		sub.Active = sub.IsActive(op.now)
		return err
	})
	return sub, err
}

func (v *vaultService) IsSubscribed(ctx context.Context, caller models.Address) (bool, error) {
	var subscribed bool
	err := v.run(ctx, func(ctx context.Context, op *operation) error {
		sub, err := op.tx.Subscription(ctx, caller)
		subscribed = sub.IsActive(op.now)
		return err
	})
	return subscribed, err
}

func (v *vaultService) Subscription(ctx context.Context, caller models.Address) (models.Subscription, error) {
	var sub models.Subscription
	err := v.run(ctx, func(ctx context.Context, op *operation) error {
		var err error
		sub, err = op.tx.Subscription(ctx, caller)
		sub.Active = sub.IsActive(op.now)
		return err
	})
	return sub, err
}

func (v *vaultService) StoreOrUpdate(ctx context.Context, caller models.Address, id models.RecordID, record models.Record) (models.RecordID, error) {
	var stored models.RecordID
	err := v.run(ctx, func(ctx context.Context, op *operation) error {
		if err := v.subscriptions.requireAccess(ctx, op, caller); err != nil {
			return err
		}

		var err error
		stored, err = v.records.storeOrUpdate(ctx, op, caller, id, record)
		return err
	})
	return stored, err
}

func (v *vaultService) GetStoredPasswords(ctx context.Context, caller models.Address, pageIndex uint64, limit int) ([]models.StoredRecord, error) {
	var page []models.StoredRecord
	err := v.run(ctx, func(ctx context.Context, op *operation) error {
		if err := v.subscriptions.requireAccess(ctx, op, caller); err != nil {
			return err
		}

		var err error
		page, err = v.records.page(ctx, op, caller, pageIndex, limit)
		return err
	})
	return page, err
}

func (v *vaultService) RemoveData(ctx context.Context, caller models.Address, id models.RecordID) error {
	return v.run(ctx, func(ctx context.Context, op *operation) error {
		if err := v.subscriptions.requireAccess(ctx, op, caller); err != nil {
			return err
		}
		return v.records.remove(ctx, op, caller, id)
	})
}

func (v *vaultService) Events(ctx context.Context, caller models.Address, fromSeq int64, limit int) ([]models.Event, error) {
	var list []models.Event
	err := v.run(ctx, func(ctx context.Context, op *operation) error {
		if _, err := v.access.requireOwner(ctx, op, caller); err != nil {
			return err
		}
		if limit < 1 || limit > MaxEventsLimit {
			return fmt.Errorf("%w: limit must be within [1, %d]", ErrInvalidArgument, MaxEventsLimit)
		}

		var err error
		list, err = op.tx.ListEvents(ctx, fromSeq, uint64(limit))
		return err
	})
	return list, err
}

// addAmounts adds two amounts that must stay within the storable range.
func addAmounts(a, b models.Amount) (models.Amount, error) {
	if a > math.MaxInt64 || b > math.MaxInt64-a {
		return 0, fmt.Errorf("%w: amount overflow", ErrInvalidArgument)
	}
	return a + b, nil
}

// storeError maps state store sentinels to failure kinds.
func storeError(err error) error {
	if errors.Is(err, store.ErrRecordNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return err
}
