package store

import (
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/migrations"
)

// dialect captures what differs between the SQL backends: placeholders,
// transaction options and the migration set.
type dialect struct {
	name      string
	builder   sq.StatementBuilderType
	txOptions *sql.TxOptions
}

var (
	postgresDialect = dialect{
		name:      migrations.DialectPostgres,
		builder:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		txOptions: &sql.TxOptions{Isolation: sql.LevelSerializable},
	}
	sqliteDialect = dialect{
		name:    migrations.DialectSQLite,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}
)

type DB struct {
	*sql.DB
	dialect            dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect.name)
}

// wrapError joins sentinel with the driver error and marks transient driver
// failures with [ErrRetryable].
func (db *DB) wrapError(sentinel, err error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w: %w", sentinel, ErrRetryable, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

func (db *DB) isUniqueViolation(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.IsUniqueViolation(err)
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
