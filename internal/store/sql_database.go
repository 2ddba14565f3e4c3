package store

import (
	"database/sql"

	"github.com/togglbot/togglbot/internal/logger"
	"github.com/togglbot/togglbot/migrations"
)

// DB wraps the database/sql connection together with the goose dialect that
// matches the driver it was opened with.
type DB struct {
	*sql.DB
	dialect string
	logger  *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
