package store

import (
	"context"
	"strings"

	"github.com/togglbot/togglbot/internal/config"
	"github.com/togglbot/togglbot/internal/logger"
)

// Storages aggregates all repositories backed by the shared DB connection.
type Storages struct {
	CredentialsRepository CredentialsRepository
	UsageRepository       UsageRepository
}

// NewStorages opens the database selected by the DSN (a postgres URI opens
// PostgreSQL via pgx, anything else is a SQLite file path), applies the
// embedded migrations, and wires all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	if isPostgresDSN(cfg.DB.DSN) {
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		CredentialsRepository: NewCredentialsRepository(db, log),
		UsageRepository:       NewUsageRepository(db, log),
	}, nil
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
