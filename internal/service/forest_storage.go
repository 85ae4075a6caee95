package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/linkdir/internal/codec"
	"github.com/MKhiriev/linkdir/internal/logger"
	"github.com/MKhiriev/linkdir/internal/store"
	"github.com/MKhiriev/linkdir/models"
)

type forestStorage struct {
	kv     store.KeyValueStore
	key    string
	logger *logger.Logger
}

// NewForestStorage stores the forest in kv under key.
func NewForestStorage(kv store.KeyValueStore, key string, logger *logger.Logger) ForestStorage {
	return &forestStorage{kv: kv, key: key, logger: logger}
}

func (s *forestStorage) Save(ctx context.Context, f models.Forest) error {
	data, err := codec.Encode(f)
	if err != nil {
		return fmt.Errorf("encode forest: %w", err)
	}

	if err = s.kv.Set(ctx, s.key, string(data)); err != nil {
		s.logger.Err(err).
			Str("func", "forestStorage.Save").
			Str("key", s.key).
			Msg("failed to save forest")
		return fmt.Errorf("save forest: %w", err)
	}

	s.logger.Debug().
		Str("func", "forestStorage.Save").
		Int("items", f.Count()).
		Msg("forest saved")
	return nil
}

func (s *forestStorage) Load(ctx context.Context) (models.Forest, error) {
	value, found, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("load forest: %w", err)
	}
	if !found || strings.TrimSpace(value) == "" {
		return models.Forest{}, nil
	}

	f, err := codec.DecodeString(value)
	if err != nil {
		s.logger.Err(err).
			Str("func", "forestStorage.Load").
			Str("key", s.key).
			Msg("stored forest is not valid")
		return nil, fmt.Errorf("load forest: %w", err)
	}

	return f, nil
}
