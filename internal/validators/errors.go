package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidEncoding is returned when a field does not have the shape of
	// a byte sequence (for example it is missing entirely).
	ErrInvalidEncoding = errors.New("malformed byte sequence")

	// ErrInvalidHexValue is returned when a record value is not hexadecimal text.
	ErrInvalidHexValue = errors.New("value is not valid hexadecimal text")
)
