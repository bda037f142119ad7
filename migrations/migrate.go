// Package migrations embeds the vault state schema for every supported SQL
// dialect and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Supported dialects. Each one has its own directory of migrations.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

var (
	ErrNilDB          = errors.New("db is nil")
	ErrUnknownDialect = errors.New("unknown migration dialect")
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var gooseDialects = map[string]string{
	DialectPostgres: "pgx",
	DialectSQLite:   "sqlite3",
}

// Migrate brings the schema of db up to date for the given dialect.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return ErrNilDB
	}

	gooseDialect, ok := gooseDialects[dialect]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dialect); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
