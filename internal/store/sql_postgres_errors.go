package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed database operation may succeed
// when the whole transaction is attempted again.
type ErrorClassification int

const (
	// NonRetryable is the classification of every error not known to be
	// transient.
	NonRetryable ErrorClassification = iota

	// Retryable marks connection losses, serialization failures and
	// deadlocks.
	Retryable
)

// retryablePgCodes lists the SQLSTATE codes after which a retried
// transaction may succeed (classes 08, 40 and 57P03).
var retryablePgCodes = map[string]struct{}{
	pgerrcode.ConnectionException:    {},
	pgerrcode.ConnectionDoesNotExist: {},
	pgerrcode.ConnectionFailure:      {},
	pgerrcode.TransactionRollback:    {},
	pgerrcode.SerializationFailure:   {},
	pgerrcode.DeadlockDetected:       {},
	pgerrcode.CannotConnectNow:       {},
}

// PostgresErrorClassifier implements [ErrorClassificator] for the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// IsUniqueViolation implements [ErrorClassificator].
func (c *PostgresErrorClassifier) IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// ClassifyPgError maps the SQLSTATE of pgErr to an [ErrorClassification].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	if _, ok := retryablePgCodes[pgErr.Code]; ok {
		return Retryable
	}
	return NonRetryable
}
