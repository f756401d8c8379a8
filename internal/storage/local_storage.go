package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/shopfront/shopfront-backend/pkg/logger"
)

// LocalStorage writes uploads to a fixed directory on disk. A later upload
// with the same filename overwrites the earlier file.
type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) *LocalStorage {
	return &LocalStorage{dir: dir}
}

func (s *LocalStorage) Save(_ context.Context, content io.Reader, filename string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		logger.Error("Failed to create upload directory", err, map[string]interface{}{
			"dir": s.dir,
		})
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	dest := filepath.Join(s.dir, filename)
	out, err := os.Create(dest)
	if err != nil {
		logger.Error("Failed to create upload file", err, map[string]interface{}{
			"path": dest,
		})
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, content); err != nil {
		logger.Error("Failed to write upload file", err, map[string]interface{}{
			"path": dest,
		})
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	// Record the site-relative path the HTTP server serves the file at.
	relative := "/" + filepath.ToSlash(dest)

	logger.Info("Upload stored on disk", map[string]interface{}{
		"path": relative,
	})
	return relative, nil
}
