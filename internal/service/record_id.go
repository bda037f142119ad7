package service

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/crypto/hash"
	"github.com/nspcc-dev/neo-go/pkg/util"

	"github.com/MKhiriev/go-pass-vault/models"
)

const maxIDAttempts = 16

var errIDSpaceExhausted = errors.New("could not allocate a free record identifier")

// deriveRecordID hashes the caller, the namespace sequence number and a
// collision counter into a candidate identifier.
func deriveRecordID(caller models.Address, seq uint64, attempt uint32) models.RecordID {
	buf := make([]byte, 0, util.Uint160Size+8+4)
	buf = append(buf, caller.BytesBE()...)
	buf = binary.BigEndian.AppendUint64(buf, seq)
	buf = binary.BigEndian.AppendUint32(buf, attempt)
	return hash.Sha256(buf)
}

// allocateRecordID returns a non-zero identifier that is unused in the
// caller's namespace.
func allocateRecordID(ctx context.Context, op *operation, caller models.Address, seq uint64) (models.RecordID, error) {
	for attempt := uint32(0); attempt < maxIDAttempts; attempt++ {
		id := deriveRecordID(caller, seq, attempt)
		if models.IsZeroRecordID(id) {
			continue
		}

		exists, err := op.tx.RecordExists(ctx, caller, id)
		if err != nil {
			return models.ZeroRecordID, fmt.Errorf("error checking record identifier: %w", err)
		}
		if !exists {
			return id, nil
		}
	}

	return models.ZeroRecordID, errIDSpaceExhausted
}
