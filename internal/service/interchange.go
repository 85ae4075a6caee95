package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/linkdir/internal/adapter"
	"github.com/MKhiriev/linkdir/internal/codec"
	"github.com/MKhiriev/linkdir/internal/logger"
	"github.com/MKhiriev/linkdir/models"
)

const (
	exportFilePerm = 0o644
	exportDirPerm  = 0o755
	jsonExt        = ".json"
)

type interchangeService struct {
	clipboard adapter.Clipboard
	fs        adapter.FileSystem
	fileName  string
	logger    *logger.Logger
}

// NewInterchangeService exports into files named fileName.
func NewInterchangeService(clipboard adapter.Clipboard, fs adapter.FileSystem, fileName string, logger *logger.Logger) InterchangeService {
	return &interchangeService{
		clipboard: clipboard,
		fs:        fs,
		fileName:  fileName,
		logger:    logger,
	}
}

func (s *interchangeService) ExportToFile(ctx context.Context, f models.Forest, dir string) (string, error) {
	data, err := codec.EncodeIndent(f)
	if err != nil {
		return "", fmt.Errorf("encode forest for export: %w", err)
	}

	if dir == "" {
		dir = "."
	}
	if err = s.fs.MkdirAll(dir, exportDirPerm); err != nil {
		return "", fmt.Errorf("%w: create export dir: %w", ErrResource, err)
	}

	path := filepath.Join(dir, s.fileName)
	if err = s.fs.WriteFile(path, data, exportFilePerm); err != nil {
		s.logger.Err(err).
			Str("func", "interchangeService.ExportToFile").
			Str("path", path).
			Msg("failed to write export file")
		return "", fmt.Errorf("%w: write export file: %w", ErrResource, err)
	}

	s.logger.Info().
		Str("func", "interchangeService.ExportToFile").
		Str("path", path).
		Int("items", f.Count()).
		Msg("forest exported")
	return path, nil
}

func (s *interchangeService) ImportFromFile(ctx context.Context, path string) (models.Forest, error) {
	path = strings.TrimSpace(path)
	if !strings.EqualFold(filepath.Ext(path), jsonExt) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFile, path)
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		s.logger.Err(err).
			Str("func", "interchangeService.ImportFromFile").
			Str("path", path).
			Msg("failed to read import file")
		return nil, fmt.Errorf("%w: read import file: %w", ErrResource, err)
	}

	f, err := codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("import file %s: %w", path, err)
	}
	return f, nil
}

func (s *interchangeService) ImportFromClipboard(ctx context.Context) (models.Forest, error) {
	text, err := s.clipboard.ReadAll()
	if err != nil {
		s.logger.Err(err).
			Str("func", "interchangeService.ImportFromClipboard").
			Msg("failed to read clipboard")
		return nil, fmt.Errorf("%w: read clipboard: %w", ErrResource, err)
	}

	f, err := codec.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("import clipboard: %w", err)
	}
	return f, nil
}

func (s *interchangeService) ExportToClipboard(ctx context.Context, f models.Forest) error {
	data, err := codec.EncodeIndent(f)
	if err != nil {
		return fmt.Errorf("encode forest for clipboard: %w", err)
	}
	return s.CopyText(ctx, string(data))
}

func (s *interchangeService) CopyText(ctx context.Context, text string) error {
	if err := s.clipboard.WriteAll(text); err != nil {
		s.logger.Err(err).
			Str("func", "interchangeService.CopyText").
			Msg("failed to write clipboard")
		return fmt.Errorf("%w: write clipboard: %w", ErrResource, err)
	}
	return nil
}
