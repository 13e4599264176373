package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/mkhadiri/mentorhub/config"
	"github.com/rs/zerolog/log"
)

// FileStore persists uploaded files and serves them back for downloads.
type FileStore interface {
	// Save writes the upload under dir/<kind>/<uuid>.<ext> and returns the
	// stored relative path and the file extension.
	Save(kind string, fh *multipart.FileHeader) (path string, ext string, err error)
	Remove(path string) error
	Absolute(path string) string
	Exists(path string) bool
}

type diskStore struct {
	root string
}

func NewFileStore(cfg *config.Config) FileStore {
	return &diskStore{root: cfg.Upload.Dir}
}

func (s *diskStore) Save(kind string, fh *multipart.FileHeader) (string, string, error) {
	ext := strings.TrimPrefix(filepath.Ext(fh.Filename), ".")
	name := uuid.NewString()
	if ext != "" {
		name = name + "." + ext
	}
	rel := filepath.Join(kind, name)
	abs := filepath.Join(s.root, rel)

	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", "", fmt.Errorf("creating upload dir: %w", err)
	}

	src, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("opening upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(abs)
	if err != nil {
		return "", "", fmt.Errorf("creating file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", "", fmt.Errorf("writing file: %w", err)
	}
	return rel, ext, nil
}

func (s *diskStore) Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(filepath.Join(s.root, path)); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("path", path).Msg("Failed to remove stored file")
		return err
	}
	return nil
}

func (s *diskStore) Absolute(path string) string {
	return filepath.Join(s.root, path)
}

func (s *diskStore) Exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(s.root, path))
	return err == nil
}
