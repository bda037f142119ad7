package service

import "errors"

// Failure kinds reported by vault operations. Every error returned by
// [VaultService] wraps exactly one of them.
var (
	// ErrUnauthorized is returned when the caller lacks the role the
	// operation requires.
	ErrUnauthorized = errors.New("caller is not authorized")
	// ErrForbidden is returned when a role-based business rule refuses the
	// call, e.g. the administrator subscribing.
	ErrForbidden = errors.New("operation is forbidden for the caller")
	// ErrNotSubscribed is returned when a vault call comes from a caller
	// that is neither the administrator nor subscribed.
	ErrNotSubscribed = errors.New("caller is not subscribed")
	// ErrInvalidArgument reports out-of-range parameters and null identities.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidEncoding reports a field that is not a byte sequence.
	ErrInvalidEncoding = errors.New("invalid encoding")
	// ErrInvalidHexValue reports a record value that is not hexadecimal text.
	ErrInvalidHexValue = errors.New("invalid hex value")
	// ErrInvalidPayment reports a payment that differs from the current fee.
	ErrInvalidPayment = errors.New("invalid payment")
	// ErrAlreadySubscribed rejects a subscribe call from a caller with an
	// active paid subscription.
	ErrAlreadySubscribed = errors.New("caller is already subscribed")
	// ErrTrialAlreadyUsed rejects a second zero-payment subscribe.
	ErrTrialAlreadyUsed = errors.New("trial was already used")
	// ErrNotFound reports an identifier missing from the caller's namespace.
	ErrNotFound = errors.New("record not found")
	// ErrUnsupported is returned by operations that exist only to be refused.
	ErrUnsupported = errors.New("operation is not supported")
)

var (
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)

// ErrorKind is the stable name of a failure kind.
type ErrorKind string

const (
	KindUnauthorized      ErrorKind = "Unauthorized"
	KindForbidden         ErrorKind = "Forbidden"
	KindNotSubscribed     ErrorKind = "NotSubscribed"
	KindInvalidArgument   ErrorKind = "InvalidArgument"
	KindInvalidEncoding   ErrorKind = "InvalidEncoding"
	KindInvalidHexValue   ErrorKind = "InvalidHexValue"
	KindInvalidPayment    ErrorKind = "InvalidPayment"
	KindAlreadySubscribed ErrorKind = "AlreadySubscribed"
	KindTrialAlreadyUsed  ErrorKind = "TrialAlreadyUsed"
	KindNotFound          ErrorKind = "NotFound"
	KindUnsupported       ErrorKind = "Unsupported"
	KindInternal          ErrorKind = "Internal"
)

var errorKinds = []struct {
	err  error
	kind ErrorKind
}{
	{ErrUnauthorized, KindUnauthorized},
	{ErrForbidden, KindForbidden},
	{ErrNotSubscribed, KindNotSubscribed},
	{ErrInvalidArgument, KindInvalidArgument},
	{ErrInvalidEncoding, KindInvalidEncoding},
	{ErrInvalidHexValue, KindInvalidHexValue},
	{ErrInvalidPayment, KindInvalidPayment},
	{ErrAlreadySubscribed, KindAlreadySubscribed},
	{ErrTrialAlreadyUsed, KindTrialAlreadyUsed},
	{ErrNotFound, KindNotFound},
	{ErrUnsupported, KindUnsupported},
	{ErrTokenIsExpiredOrInvalid, KindUnauthorized},
}

// KindOf returns the failure kind wrapped by err, or [KindInternal] for
// errors that carry none (storage failures and the like).
func KindOf(err error) ErrorKind {
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindInternal
}
