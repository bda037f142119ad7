// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/util"
)

// RecordID addresses a record inside one caller's namespace.
// The zero value is reserved and means "allocate a new identifier".
type RecordID = util.Uint256

// ZeroRecordID is the reserved "create new record" identifier.
var ZeroRecordID = RecordID{}

// ErrMalformedRecordID is returned when a textual identifier is not a
// 32-byte hexadecimal value.
var ErrMalformedRecordID = errors.New("malformed record identifier")

// Record is a single encrypted credential-style entry. The vault never
// interprets its fields: Name and Description are opaque bytes and Value is
// the caller's ciphertext, which must be hexadecimal text.
type Record struct {
	Name        []byte `json:"name"`
	Description []byte `json:"description"`
	Value       []byte `json:"value"`
}

// Clone returns a deep copy of r so that callers cannot alias stored bytes.
func (r Record) Clone() Record {
	return Record{
		Name:        cloneBytes(r.Name),
		Description: cloneBytes(r.Description),
		Value:       cloneBytes(r.Value),
	}
}

// StoredRecord is a record together with its identifier.
type StoredRecord struct {
	ID RecordID
	Record
}

// ParseRecordID decodes a big-endian hexadecimal identifier with an optional
// "0x" prefix. An empty string decodes to [ZeroRecordID].
func ParseRecordID(s string) (RecordID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ZeroRecordID, nil
	}

	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	id, err := util.Uint256DecodeStringBE(s)
	if err != nil {
		return ZeroRecordID, fmt.Errorf("%w: %w", ErrMalformedRecordID, err)
	}

	return id, nil
}

// FormatRecordID returns the "0x"-prefixed big-endian hexadecimal form of id.
func FormatRecordID(id RecordID) string {
	return "0x" + id.StringBE()
}

// IsZeroRecordID reports whether id is the reserved "create new" identifier.
func IsZeroRecordID(id RecordID) bool {
	return id.Equals(ZeroRecordID)
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
