package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/linkdir/internal/logger"
)

const (
	kvTable        = "kv_store"
	kvColKey       = "store_key"
	kvColValue     = "payload"
	kvColUpdatedAt = "updated_at"
)

var kvBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// NewConnectSQLite opens (creating if necessary) the SQLite database file at
// dsn and verifies the connection.
func NewConnectSQLite(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	// db will be in file
	if err := createLocalDBFileIfNotExists(dsn); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	// one writer; avoids SQLITE_BUSY between pooled connections
	conn.SetMaxOpenConns(1)

	return &DB{
		DB:     conn,
		logger: log,
	}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if dir := filepath.Dir(dbFile); dir != "." {
			if err = os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("error creating DB dir: %w", err)
			}
		}
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}

// sqliteStore keeps each key in a row of the kv_store table.
type sqliteStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLiteStore returns a [KeyValueStore] backed by db. The schema must
// already be migrated.
func NewSQLiteStore(db *DB, log *logger.Logger) KeyValueStore {
	return &sqliteStore{db: db, logger: log}
}

func (s *sqliteStore) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}

	query, args, err := kvBuilder.
		Select(kvColValue).
		From(kvTable).
		Where(sq.Eq{kvColKey: key}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteStore.Get").
			Str("key", key).
			Msg("failed to read value")
		return "", false, fmt.Errorf("%w (key=%s): %w", ErrExecutingQuery, key, err)
	}

	return value, true, nil
}

func (s *sqliteStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	query, args, err := kvBuilder.
		Insert(kvTable).
		Columns(kvColKey, kvColValue, kvColUpdatedAt).
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix(fmt.Sprintf(
			"ON CONFLICT(%s) DO UPDATE SET %s = excluded.%s, %s = excluded.%s",
			kvColKey, kvColValue, kvColValue, kvColUpdatedAt, kvColUpdatedAt,
		)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteStore.Set").
			Str("key", key).
			Int("size", len(value)).
			Msg("failed to upsert value")
		return fmt.Errorf("%w (key=%s): %w", ErrExecutingStatement, key, err)
	}

	return nil
}

func (s *sqliteStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	query, args, err := kvBuilder.
		Delete(kvTable).
		Where(sq.Eq{kvColKey: key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteStore.Delete").
			Str("key", key).
			Msg("failed to delete value")
		return fmt.Errorf("%w (key=%s): %w", ErrExecutingStatement, key, err)
	}

	return nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
