package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// Address identifies a caller of the vault. Every operation arrives already
// bound to a verified Address; the zero value is the null identity.
type Address = util.Uint160

// NullAddress is the null identity. It can never own the vault or a namespace.
var NullAddress = Address{}

// ErrMalformedAddress is returned when a textual address cannot be decoded.
var ErrMalformedAddress = errors.New("malformed address")

// ParseAddress decodes the base58check textual form of an [Address].
// An empty string decodes to [NullAddress].
func ParseAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NullAddress, nil
	}

	addr, err := address.StringToUint160(s)
	if err != nil {
		return NullAddress, fmt.Errorf("%w: %w", ErrMalformedAddress, err)
	}

	return addr, nil
}

// FormatAddress returns the base58check textual form of addr, or an empty
// string for [NullAddress].
func FormatAddress(addr Address) string {
	if IsNullAddress(addr) {
		return ""
	}
	return address.Uint160ToString(addr)
}

// IsNullAddress reports whether addr is the null identity.
func IsNullAddress(addr Address) bool {
	return addr.Equals(NullAddress)
}
