package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"mediscript-server/internal/service"

	"github.com/google/uuid"
)

type localFileStore struct {
	baseDir string
}

// NewLocalFileStore stores uploads under baseDir, one subdirectory per
// upload kind. Stored names are random so original filenames never collide
// or escape the directory.
func NewLocalFileStore(baseDir string) service.FileStore {
	return &localFileStore{baseDir: baseDir}
}

func (s *localFileStore) Save(subdir, originalName string, r io.Reader) (string, error) {
	dir := filepath.Join(s.baseDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	name := uuid.New().String() + filepath.Ext(originalName)
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return path, nil
}

func (s *localFileStore) Remove(path string) error {
	if path == "" {
		return nil
	}
	return os.Remove(path)
}
