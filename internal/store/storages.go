package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/linkdir/internal/config"
	"github.com/MKhiriev/linkdir/internal/logger"
)

const fileDSNPrefix = "file://"

// ClientStorages groups the storage backends used by the service layer.
type ClientStorages struct {
	// KeyValue holds the persisted forest and any other client state.
	KeyValue KeyValueStore
}

// NewClientStorages selects a backend from cfg.DSN:
//   - "memory" or ":memory:" keeps everything in process memory;
//   - "file://<path>" stores a JSON object in the given file;
//   - anything else is treated as a SQLite database path, which is created
//     and migrated as needed.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("dsn", cfg.DSN).Msg("creating new storages...")

	kv, err := newKeyValueStore(cfg.DSN, logger)
	if err != nil {
		return nil, err
	}

	return &ClientStorages{
		KeyValue: kv,
	}, nil
}

func newKeyValueStore(dsn string, logger *logger.Logger) (KeyValueStore, error) {
	switch {
	case dsn == "":
		return nil, ErrEmptyDSN
	case dsn == "memory" || dsn == ":memory:":
		return NewMemoryStore(), nil
	case strings.HasPrefix(dsn, fileDSNPrefix):
		kv, err := NewFileStore(strings.TrimPrefix(dsn, fileDSNPrefix))
		if err != nil {
			return nil, fmt.Errorf("file storage error: %w", err)
		}
		return kv, nil
	}

	db, err := NewConnectSQLite(context.Background(), dsn, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewSQLiteStore(db, logger), nil
}

// Close releases every backend held by s.
func (s *ClientStorages) Close() error {
	if s == nil || s.KeyValue == nil {
		return nil
	}
	return s.KeyValue.Close()
}
