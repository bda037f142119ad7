package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldValue       = "value"
)

var allRecordFields = []string{FieldName, FieldDescription, FieldValue}

// RecordValidator checks the shape of [models.Record] values before they
// reach the state store.
type RecordValidator struct{}

// NewRecordValidator returns a [Validator] for vault records.
func NewRecordValidator() Validator {
	return &RecordValidator{}
}

// Validate implements [Validator]. When fields is empty every record field
// is checked.
func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Record:
		return v.validateRecord(ctx, value, fields...)
	case *models.Record:
		if value == nil {
			return fmt.Errorf("%w: record is nil", ErrInvalidEncoding)
		}
		return v.validateRecord(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateRecord(_ context.Context, record models.Record, fields ...string) error {
	if len(fields) == 0 {
		fields = allRecordFields
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			if record.Name == nil {
				return fmt.Errorf("%w: %s is missing", ErrInvalidEncoding, FieldName)
			}
		case FieldDescription:
			if record.Description == nil {
				return fmt.Errorf("%w: %s is missing", ErrInvalidEncoding, FieldDescription)
			}
		case FieldValue:
			if record.Value == nil {
				return fmt.Errorf("%w: %s is missing", ErrInvalidEncoding, FieldValue)
			}
			if !IsHexText(record.Value) {
				return ErrInvalidHexValue
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}
