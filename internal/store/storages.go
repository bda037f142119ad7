package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Storages struct {
	StateStore StateStore
}

// NewStorages opens the backend selected by cfg.Driver and brings its schema
// up to date.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.DB.Driver {
	case DriverMemory, "":
		return &Storages{StateStore: NewMemoryStateStore()}, nil
	case DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Str("driver", cfg.DB.Driver).Msg("error migrating database")
		db.Close()
		return nil, err
	}

	return &Storages{StateStore: NewSQLStateStore(db)}, nil
}

func (s *Storages) Close() error {
	if s == nil || s.StateStore == nil {
		return nil
	}
	return s.StateStore.Close()
}
