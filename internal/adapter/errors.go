package adapter

import "errors"

// Errors reported by the vault server, one per error kind.
var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrNotSubscribed     = errors.New("not subscribed")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrInvalidEncoding   = errors.New("invalid encoding")
	ErrInvalidHexValue   = errors.New("invalid hex value")
	ErrInvalidPayment    = errors.New("invalid payment")
	ErrAlreadySubscribed = errors.New("already subscribed")
	ErrTrialAlreadyUsed  = errors.New("trial already used")
	ErrNotFound          = errors.New("not found")
	ErrUnsupported       = errors.New("unsupported")
	ErrRateLimited       = errors.New("rate limited")
	ErrInternal          = errors.New("internal server error")
)

var (
	// ErrUnexpectedResponse is returned when a response cannot be decoded.
	ErrUnexpectedResponse = errors.New("unexpected server response")
	// ErrInvalidAddress is returned for an unusable server base URL.
	ErrInvalidAddress = errors.New("invalid server address")
)
