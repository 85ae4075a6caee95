package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/linkdir/internal/icons"
	"github.com/MKhiriev/linkdir/internal/logger"
	"github.com/MKhiriev/linkdir/internal/tree"
	"github.com/MKhiriev/linkdir/internal/validators"
	"github.com/MKhiriev/linkdir/models"
)

type linkTreeService struct {
	storage     ForestStorage
	interchange InterchangeService
	validator   validators.Validator
	logger      *logger.Logger

	mu     sync.RWMutex
	forest models.Forest
	opened bool
}

// NewLinkTreeService returns a session over storage. It holds an empty forest
// until Open is called.
func NewLinkTreeService(storage ForestStorage, interchange InterchangeService, validator validators.Validator, logger *logger.Logger) LinkTreeService {
	return &linkTreeService{
		storage:     storage,
		interchange: interchange,
		validator:   validator,
		logger:      logger,
		forest:      models.Forest{},
	}
}

func (s *linkTreeService) Open(ctx context.Context) error {
	f, err := s.storage.Load(ctx)
	if err != nil {
		return fmt.Errorf("open link tree: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.forest = f
	s.opened = true

	s.logger.Info().
		Str("func", "linkTreeService.Open").
		Int("items", f.Count()).
		Msg("link tree loaded")
	return nil
}

func (s *linkTreeService) Forest() models.Forest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.forest
}

func (s *linkTreeService) Add(ctx context.Context, parentID string, item models.Item) (models.Forest, error) {
	item, err := s.validate(ctx, item)
	if err != nil {
		return s.Forest(), err
	}
	return s.mutate(ctx, "Add", func(f models.Forest) (models.Forest, error) {
		return tree.Add(f, parentID, item)
	})
}

func (s *linkTreeService) Edit(ctx context.Context, id string, item models.Item) (models.Forest, error) {
	item, err := s.validate(ctx, item)
	if err != nil {
		return s.Forest(), err
	}
	return s.mutate(ctx, "Edit", func(f models.Forest) (models.Forest, error) {
		return tree.Edit(f, id, item)
	})
}

func (s *linkTreeService) Delete(ctx context.Context, id string) (models.Forest, error) {
	return s.mutate(ctx, "Delete", func(f models.Forest) (models.Forest, error) {
		out, _, err := tree.Delete(f, id)
		return out, err
	})
}

func (s *linkTreeService) Move(ctx context.Context, id, destParentID string) (models.Forest, error) {
	return s.mutate(ctx, "Move", func(f models.Forest) (models.Forest, error) {
		loc, ok := tree.Find(f, id)
		if !ok {
			return f, fmt.Errorf("%w: %s", tree.ErrIDNotFound, id)
		}
		if loc.ParentID(f) == destParentID {
			return f, fmt.Errorf("%w: %s", ErrNoOpMove, loc.Path)
		}
		return tree.Move(f, id, destParentID)
	})
}

func (s *linkTreeService) AddItem(ctx context.Context, path models.Path, item models.Item) (models.Forest, error) {
	item, err := s.validate(ctx, item)
	if err != nil {
		return s.Forest(), err
	}
	return s.mutate(ctx, "AddItem", func(f models.Forest) (models.Forest, error) {
		return tree.AddItem(f, path, item)
	})
}

func (s *linkTreeService) EditItem(ctx context.Context, path models.Path, item models.Item) (models.Forest, error) {
	item, err := s.validate(ctx, item)
	if err != nil {
		return s.Forest(), err
	}
	return s.mutate(ctx, "EditItem", func(f models.Forest) (models.Forest, error) {
		return tree.EditItem(f, path, item)
	})
}

func (s *linkTreeService) DeleteItem(ctx context.Context, path models.Path) (models.Forest, error) {
	return s.mutate(ctx, "DeleteItem", func(f models.Forest) (models.Forest, error) {
		return tree.DeleteItem(f, path)
	})
}

func (s *linkTreeService) MoveItem(ctx context.Context, fromPath, toPath models.Path) (models.Forest, error) {
	return s.mutate(ctx, "MoveItem", func(f models.Forest) (models.Forest, error) {
		if _, err := tree.Resolve(f, fromPath); err != nil {
			return f, err
		}
		if fromPath.Parent().Equal(toPath) {
			return f, fmt.Errorf("%w: %s", ErrNoOpMove, fromPath)
		}
		return tree.MoveItem(f, fromPath, toPath)
	})
}

func (s *linkTreeService) Replace(ctx context.Context, f models.Forest) (models.Forest, error) {
	return s.mutate(ctx, "Replace", func(models.Forest) (models.Forest, error) {
		return tree.AssignIDs(f), nil
	})
}

func (s *linkTreeService) ClearAll(ctx context.Context) (models.Forest, error) {
	return s.Replace(ctx, models.Forest{})
}

func (s *linkTreeService) ImportFromFile(ctx context.Context, path string) (models.Forest, error) {
	f, err := s.interchange.ImportFromFile(ctx, path)
	if err != nil {
		return s.Forest(), err
	}
	return s.Replace(ctx, f)
}

func (s *linkTreeService) ImportFromClipboard(ctx context.Context) (models.Forest, error) {
	f, err := s.interchange.ImportFromClipboard(ctx)
	if err != nil {
		return s.Forest(), err
	}
	return s.Replace(ctx, f)
}

func (s *linkTreeService) Export(ctx context.Context, dir string) (string, error) {
	return s.interchange.ExportToFile(ctx, s.Forest(), dir)
}

func (s *linkTreeService) CopyToClipboard(ctx context.Context) error {
	return s.interchange.ExportToClipboard(ctx, s.Forest())
}

func (s *linkTreeService) CopyURL(ctx context.Context, id string) (string, error) {
	loc, ok := tree.Find(s.Forest(), id)
	if !ok {
		return "", fmt.Errorf("%w: %s", tree.ErrIDNotFound, id)
	}
	if !loc.Item.IsLink() {
		return "", fmt.Errorf("%w: %s", tree.ErrKindMismatch, loc.Path)
	}

	url := icons.NormalizeURL(loc.Item.URL)
	if err := s.interchange.CopyText(ctx, url); err != nil {
		return "", err
	}
	return url, nil
}

func (s *linkTreeService) validate(ctx context.Context, item models.Item) (models.Item, error) {
	item.Name = strings.TrimSpace(item.Name)
	item.URL = strings.TrimSpace(item.URL)
	if item.IsFolder() && item.Children == nil {
		item.Children = []models.Item{}
	}

	if err := s.validator.Validate(ctx, item); err != nil {
		return item, fmt.Errorf("%w: %w", ErrInvalidItem, err)
	}
	return item, nil
}

// mutate applies op to the current forest, persists the result and only
// then makes it current.
func (s *linkTreeService) mutate(ctx context.Context, name string, op func(models.Forest) (models.Forest, error)) (models.Forest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.opened {
		return s.forest, ErrNotOpened
	}

	next, err := op(s.forest)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("func", "linkTreeService."+name).
			Msg("operation rejected")
		return s.forest, err
	}

	if err = s.storage.Save(ctx, next); err != nil {
		return s.forest, fmt.Errorf("%s: %w", strings.ToLower(name), err)
	}
	s.forest = next

	s.logger.Info().
		Str("func", "linkTreeService."+name).
		Int("items", next.Count()).
		Msg("link tree updated")
	return next, nil
}
