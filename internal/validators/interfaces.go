// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the shape checks applied to vault input before it
// may touch state: byte-sequence well-formedness of record fields and the
// hexadecimal syntax of record values.
//
// Validators are stateless and never consult the state store, so the service
// layer can run them inside a transaction right after the access check and
// before any write.
package validators

import "context"

// Validator validates an input value, optionally restricted to the named
// fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
