package store

import (
	"database/sql"

	"github.com/MKhiriev/linkdir/internal/logger"
	"github.com/MKhiriev/linkdir/migrations"
)

// DB wraps the SQLite connection used by [sqliteStore].
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
