package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
//
// The "sub" claim carries the base58 address of the caller the token was
// issued for. Caller is a parsed copy of that claim.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Caller is the identity extracted from the "sub" claim.
	Caller Address `json:"-"`
}

// GetCaller extracts the caller identity from the token's "sub" claim.
//
// Returns an error if the subject claim is missing or is not a valid address.
func (t *Token) GetCaller() (Address, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return NullAddress, fmt.Errorf("error extracting caller from token: %w", err)
	}

	caller, err := ParseAddress(subject)
	if err != nil {
		return NullAddress, fmt.Errorf("error converting token subject to address: %w", err)
	}

	return caller, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
