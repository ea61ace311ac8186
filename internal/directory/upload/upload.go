// Package upload stores multipart file uploads on local disk. Files are
// written before the aggregate that references them; the generated name
// (not the client's) is the stable reference kept on the record.
package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// Subdirectories under the store root, one per upload kind.
	ProfilesDir  = "profiles"
	DocumentsDir = "documents"
)

type Store struct {
	root   string
	logger *zap.Logger
}

func NewStore(root string, logger *zap.Logger) *Store {
	return &Store{
		root:   root,
		logger: logger.Named("upload_store"),
	}
}

// Save writes the upload into the given subdirectory ("" for the root)
// under a random name that keeps the original extension, and returns
// the generated filename.
func (s *Store) Save(file *multipart.FileHeader, subdir string) (string, error) {
	dir := filepath.Join(s.root, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	s.logger.Debug("stored upload",
		zap.String("original", file.Filename),
		zap.String("stored", name),
		zap.String("subdir", subdir),
	)
	return name, nil
}
