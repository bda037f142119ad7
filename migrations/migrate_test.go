// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// goose talks to the db itself; no expectations means every query fails
	err = Migrate(db, DialectPostgres)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, DialectPostgres)
	require.ErrorIs(t, err, ErrNilDB)
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, "oracle")
	require.ErrorIs(t, err, ErrUnknownDialect)
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", "file:migrate_test?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	require.NoError(t, Migrate(db, DialectSQLite))
	// second run is a no-op
	require.NoError(t, Migrate(db, DialectSQLite))

	for _, table := range []string{"vault_settings", "subscriptions", "namespaces", "records", "events"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}
}
