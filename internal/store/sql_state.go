// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/util"

	"github.com/MKhiriev/go-pass-vault/models"
)

// sqlStateStore implements [StateStore] on top of a relational database.
// Postgres and SQLite share the implementation and differ only in dialect.
type sqlStateStore struct {
	db *DB
}

// NewSQLStateStore wraps an opened and migrated database.
func NewSQLStateStore(db *DB) StateStore {
	return &sqlStateStore{db: db}
}

func (s *sqlStateStore) Init(ctx context.Context, owner models.Address, fee models.Amount) (models.VaultSettings, error) {
	dbFee, err := toDBAmount(fee)
	if err != nil {
		return models.VaultSettings{}, err
	}

	var settings models.VaultSettings
	err = s.RunInTx(ctx, func(ctx context.Context, tx StateTx) error {
		query, args, err := buildInitSettingsQuery(s.db.dialect.builder, owner.BytesBE(), dbFee)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.(*sqlTx).tx.ExecContext(ctx, query, args...); err != nil {
			return s.db.wrapError(ErrExecutingStatement, err)
		}

		settings, err = tx.Settings(ctx)
		return err
	})
	if err != nil {
		s.db.logger.Err(err).Str("func", "sqlStateStore.Init").Msg("error initializing vault state")
		return models.VaultSettings{}, err
	}

	return settings, nil
}

func (s *sqlStateStore) RunInTx(ctx context.Context, fn func(ctx context.Context, tx StateTx) error) error {
	tx, err := s.db.BeginTx(ctx, s.db.dialect.txOptions)
	if err != nil {
		s.db.logger.Err(err).Str("func", "sqlStateStore.RunInTx").Msg("error beginning transaction")
		return s.db.wrapError(ErrBeginningTransaction, err)
	}

	if err = fn(ctx, &sqlTx{tx: tx, db: s.db}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.db.logger.Err(rbErr).Str("func", "sqlStateStore.RunInTx").Msg("error rolling back transaction")
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		s.db.logger.Err(err).Str("func", "sqlStateStore.RunInTx").Msg("error committing transaction")
		return s.db.wrapError(ErrCommitingTransaction, err)
	}

	return nil
}

func (s *sqlStateStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqlStateStore) Close() error {
	return s.db.Close()
}

type sqlTx struct {
	tx *sql.Tx
	db *DB
}

func (t *sqlTx) exec(ctx context.Context, query string, args []any, buildErr error) (sql.Result, error) {
	if buildErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
	}

	result, err := t.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, t.db.wrapError(ErrExecutingStatement, err)
	}
	return result, nil
}

func (t *sqlTx) Settings(ctx context.Context) (models.VaultSettings, error) {
	query, args, err := buildSelectSettingsQuery(t.db.dialect.builder)
	if err != nil {
		return models.VaultSettings{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		owner, pending []byte
		fee, feePool   int64
	)
	err = t.tx.QueryRowContext(ctx, query, args...).Scan(&owner, &pending, &fee, &feePool)
	if isNoRows(err) {
		return models.VaultSettings{}, ErrNotInitialized
	}
	if err != nil {
		return models.VaultSettings{}, t.db.wrapError(ErrScanningRow, err)
	}

	settings := models.VaultSettings{Fee: models.Amount(fee), FeePool: models.Amount(feePool)}
	if settings.Owner, err = fromDBAddress(owner); err != nil {
		return models.VaultSettings{}, err
	}
	if settings.PendingOwner, err = fromDBAddress(pending); err != nil {
		return models.VaultSettings{}, err
	}

	return settings, nil
}

func (t *sqlTx) SaveSettings(ctx context.Context, settings models.VaultSettings) error {
	fee, err := toDBAmount(settings.Fee)
	if err != nil {
		return err
	}
	feePool, err := toDBAmount(settings.FeePool)
	if err != nil {
		return err
	}

	query, args, err := buildUpdateSettingsQuery(t.db.dialect.builder,
		settings.Owner.BytesBE(), toDBNullableAddress(settings.PendingOwner), fee, feePool)
	result, err := t.exec(ctx, query, args, err)
	if err != nil {
		return err
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrNotInitialized
	}
	return nil
}

func (t *sqlTx) Subscription(ctx context.Context, caller models.Address) (models.Subscription, error) {
	query, args, err := buildSelectSubscriptionQuery(t.db.dialect.builder, caller.BytesBE())
	if err != nil {
		return models.Subscription{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	sub := models.Subscription{Caller: caller}
	var expiresAt int64
	err = t.tx.QueryRowContext(ctx, query, args...).Scan(&expiresAt, &sub.HasUsedTrial)
	if isNoRows(err) {
		return sub, nil
	}
	if err != nil {
		return models.Subscription{}, t.db.wrapError(ErrScanningRow, err)
	}

	sub.ExpiresAt = fromDBTime(expiresAt)
	return sub, nil
}

func (t *sqlTx) SaveSubscription(ctx context.Context, sub models.Subscription) error {
	query, args, err := buildUpsertSubscriptionQuery(t.db.dialect.builder,
		sub.Caller.BytesBE(), toDBTime(sub.ExpiresAt), sub.HasUsedTrial)
	_, err = t.exec(ctx, query, args, err)
	return err
}

func (t *sqlTx) NextRecordSeq(ctx context.Context, caller models.Address) (uint64, error) {
	query, args, err := buildNextRecordSeqQuery(t.db.dialect.builder, caller.BytesBE())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var seq int64
	if err = t.tx.QueryRowContext(ctx, query, args...).Scan(&seq); err != nil {
		return 0, t.db.wrapError(ErrScanningRow, err)
	}
	return uint64(seq), nil
}

func (t *sqlTx) RecordExists(ctx context.Context, caller models.Address, id models.RecordID) (bool, error) {
	query, args, err := buildRecordExistsQuery(t.db.dialect.builder, caller.BytesBE(), id.BytesBE())
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = t.tx.QueryRowContext(ctx, query, args...).Scan(&one)
	if isNoRows(err) {
		return false, nil
	}
	if err != nil {
		return false, t.db.wrapError(ErrScanningRow, err)
	}
	return true, nil
}

func (t *sqlTx) InsertRecord(ctx context.Context, caller models.Address, seq uint64, record models.StoredRecord, now time.Time) error {
	if seq > math.MaxInt64 {
		return fmt.Errorf("%w: record sequence %d", ErrAmountOutOfRange, seq)
	}

	query, args, err := buildInsertRecordQuery(t.db.dialect.builder, caller.BytesBE(), record.ID.BytesBE(), int64(seq),
		record.Name, record.Description, record.Value, toDBTime(now))
	if _, err = t.exec(ctx, query, args, err); err != nil {
		if t.db.isUniqueViolation(err) {
			return fmt.Errorf("%w: %w", ErrRecordAlreadyExists, err)
		}
		return err
	}
	return nil
}

func (t *sqlTx) UpdateRecord(ctx context.Context, caller models.Address, record models.StoredRecord, now time.Time) error {
	query, args, err := buildUpdateRecordQuery(t.db.dialect.builder, caller.BytesBE(), record.ID.BytesBE(),
		record.Name, record.Description, record.Value, toDBTime(now))
	result, err := t.exec(ctx, query, args, err)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (t *sqlTx) DeleteRecord(ctx context.Context, caller models.Address, id models.RecordID) error {
	query, args, err := buildDeleteRecordQuery(t.db.dialect.builder, caller.BytesBE(), id.BytesBE())
	result, err := t.exec(ctx, query, args, err)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (t *sqlTx) ListRecords(ctx context.Context, caller models.Address, offset, limit uint64) ([]models.StoredRecord, error) {
	if offset > math.MaxInt64 || limit > math.MaxInt64 {
		return []models.StoredRecord{}, nil
	}

	query, args, err := buildSelectRecordsPageQuery(t.db.dialect.builder, caller.BytesBE(), offset, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, t.db.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.StoredRecord, 0, min(limit, 256))
	for rows.Next() {
		var (
			id     []byte
			record models.StoredRecord
		)
		if err = rows.Scan(&id, &record.Name, &record.Description, &record.Value); err != nil {
			return nil, t.db.wrapError(ErrScanningRows, err)
		}
		if record.ID, err = util.Uint256DecodeBytesBE(id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, t.db.wrapError(ErrScanningRows, err)
	}

	return records, nil
}

func (t *sqlTx) AppendEvent(ctx context.Context, event models.Event) (models.Event, error) {
	details, err := json.Marshal(event.Details)
	if err != nil {
		return models.Event{}, fmt.Errorf("error encoding event details: %w", err)
	}

	query, args, err := buildInsertEventQuery(t.db.dialect.builder, string(event.Kind), event.Actor.BytesBE(),
		string(details), toDBTime(event.CreatedAt))
	if err != nil {
		return models.Event{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = t.tx.QueryRowContext(ctx, query, args...).Scan(&event.Seq); err != nil {
		return models.Event{}, t.db.wrapError(ErrScanningRow, err)
	}
	return event, nil
}

func (t *sqlTx) ListEvents(ctx context.Context, fromSeq int64, limit uint64) ([]models.Event, error) {
	if limit > math.MaxInt64 {
		limit = math.MaxInt64
	}

	query, args, err := buildSelectEventsQuery(t.db.dialect.builder, fromSeq, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, t.db.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		var (
			event     models.Event
			kind      string
			actor     []byte
			details   string
			createdAt int64
		)
		if err = rows.Scan(&event.Seq, &kind, &actor, &details, &createdAt); err != nil {
			return nil, t.db.wrapError(ErrScanningRows, err)
		}
		event.Kind = models.EventKind(kind)
		event.CreatedAt = fromDBTime(createdAt)
		if event.Actor, err = fromDBAddress(actor); err != nil {
			return nil, err
		}
		if err = json.Unmarshal([]byte(details), &event.Details); err != nil {
			return nil, fmt.Errorf("%w: event details: %w", ErrScanningRows, err)
		}
		events = append(events, event)
	}
	if err = rows.Err(); err != nil {
		return nil, t.db.wrapError(ErrScanningRows, err)
	}

	return events, nil
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func toDBAmount(amount models.Amount) (int64, error) {
	if amount > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %d", ErrAmountOutOfRange, amount)
	}
	return int64(amount), nil
}

func toDBTime(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

func fromDBTime(nanos int64) time.Time {
	if nanos == 0 {
		return time.Time{}
	}
	return time.Unix(0, nanos).UTC()
}

func toDBNullableAddress(addr models.Address) []byte {
	if models.IsNullAddress(addr) {
		return nil
	}
	return addr.BytesBE()
}

func fromDBAddress(b []byte) (models.Address, error) {
	if len(b) == 0 {
		return models.NullAddress, nil
	}
	addr, err := util.Uint160DecodeBytesBE(b)
	if err != nil {
		return models.NullAddress, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return addr, nil
}
