package adapter

import (
	"fmt"
	"os"
)

type osFileSystem struct{}

// NewOSFileSystem returns a [FileSystem] that works on the local disk.
func NewOSFileSystem() FileSystem {
	return osFileSystem{}
}

func (osFileSystem) ReadFile(name string) ([]byte, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileRead, err)
	}
	return data, nil
}

func (osFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	if err := os.WriteFile(name, data, perm); err != nil {
		return fmt.Errorf("%w: %w", ErrFileWrite, err)
	}
	return nil
}

func (osFileSystem) MkdirAll(dir string, perm os.FileMode) error {
	if err := os.MkdirAll(dir, perm); err != nil {
		return fmt.Errorf("%w: %w", ErrFileWrite, err)
	}
	return nil
}
