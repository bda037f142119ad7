package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// recordVault keeps one insertion-ordered namespace of records per caller.
// Callers must pass the access check before reaching it.
type recordVault struct {
	validator validators.Validator
}

func (v recordVault) storeOrUpdate(ctx context.Context, op *operation, caller models.Address, id models.RecordID, record models.Record) (models.RecordID, error) {
	if err := v.validator.Validate(ctx, record); err != nil {
		return models.ZeroRecordID, validationError(err)
	}

	if models.IsZeroRecordID(id) {
		return v.insert(ctx, op, caller, record)
	}

	exists, err := op.tx.RecordExists(ctx, caller, id)
	if err != nil {
		return models.ZeroRecordID, fmt.Errorf("error looking up record: %w", err)
	}
	if !exists {
		return models.ZeroRecordID, fmt.Errorf("%w: record %s", ErrNotFound, models.FormatRecordID(id))
	}

	stored := models.StoredRecord{ID: id, Record: record.Clone()}
	if err = op.tx.UpdateRecord(ctx, caller, stored, op.now); err != nil {
		return models.ZeroRecordID, storeError(err)
	}

	return id, op.emit(ctx, models.EventRecordUpdated, caller, recordDetails(id))
}

func (v recordVault) insert(ctx context.Context, op *operation, caller models.Address, record models.Record) (models.RecordID, error) {
	seq, err := op.tx.NextRecordSeq(ctx, caller)
	if err != nil {
		return models.ZeroRecordID, fmt.Errorf("error advancing record counter: %w", err)
	}

	id, err := allocateRecordID(ctx, op, caller, seq)
	if err != nil {
		return models.ZeroRecordID, err
	}

	stored := models.StoredRecord{ID: id, Record: record.Clone()}
	if err = op.tx.InsertRecord(ctx, caller, seq, stored, op.now); err != nil {
		return models.ZeroRecordID, fmt.Errorf("error inserting record: %w", err)
	}

	return id, op.emit(ctx, models.EventRecordStored, caller, recordDetails(id))
}

func (recordVault) page(ctx context.Context, op *operation, caller models.Address, pageIndex uint64, limit int) ([]models.StoredRecord, error) {
	if limit < 1 || limit > MaxPageLimit {
		return nil, fmt.Errorf("%w: limit must be within [1, %d]", ErrInvalidArgument, MaxPageLimit)
	}

	size := uint64(limit)
	if pageIndex > math.MaxUint64/size {
		return []models.StoredRecord{}, nil
	}
	offset := pageIndex * size
	if offset > math.MaxInt64 {
		return []models.StoredRecord{}, nil
	}

	records, err := op.tx.ListRecords(ctx, caller, offset, size)
	if err != nil {
		return nil, fmt.Errorf("error listing records: %w", err)
	}
	if records == nil {
		records = []models.StoredRecord{}
	}

	return records, nil
}

func (recordVault) remove(ctx context.Context, op *operation, caller models.Address, id models.RecordID) error {
	if models.IsZeroRecordID(id) {
		return fmt.Errorf("%w: record %s", ErrNotFound, models.FormatRecordID(id))
	}

	if err := op.tx.DeleteRecord(ctx, caller, id); err != nil {
		return storeError(err)
	}

	return op.emit(ctx, models.EventRecordRemoved, caller, recordDetails(id))
}

func recordDetails(id models.RecordID) map[string]string {
	return map[string]string{"id": models.FormatRecordID(id)}
}

// validationError maps validator sentinels to failure kinds.
func validationError(err error) error {
	if errors.Is(err, validators.ErrInvalidHexValue) {
		return fmt.Errorf("%w: %w", ErrInvalidHexValue, err)
	}
	return fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
}
