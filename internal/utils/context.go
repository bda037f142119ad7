// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// CallerCtxKey is the key used to store the authenticated caller in the
// context. Used together with GetCallerFromContext for type-safe retrieval.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.CallerCtxKey, caller)
var CallerCtxKey = contextKey("caller")

// GetCallerFromContext retrieves the authenticated caller from the context.
//
// Returns the caller address and an ok flag:
//   - ok == true  — value is found, has the correct type and is not the null identity
//   - ok == false — value is missing, has an unexpected type or is null
func GetCallerFromContext(ctx context.Context) (models.Address, bool) {
	caller, ok := ctx.Value(CallerCtxKey).(models.Address)
	if !ok || models.IsNullAddress(caller) {
		return models.NullAddress, false
	}
	return caller, true
}
