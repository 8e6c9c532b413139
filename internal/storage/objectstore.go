// Package storage persists generated images and exposes them at public
// URLs. The one-method ObjectStore capability keeps the image pipeline
// ignorant of the backend, so a cloud bucket can replace the disk store
// without touching the pipeline.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type ObjectStore interface {
	// Put stores body under key and returns the object's public URL.
	Put(ctx context.Context, key, contentType string, body []byte) (string, error)
}

// DiskStore writes objects into a bucket directory served by the API under
// the configured base URL.
type DiskStore struct {
	dir     string
	baseURL string
}

func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating image bucket directory: %w", err)
	}
	return &DiskStore{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

func (s *DiskStore) Put(_ context.Context, key, _ string, body []byte) (string, error) {
	if key == "" || key != filepath.Base(key) {
		return "", fmt.Errorf("invalid object key %q", key)
	}

	if err := os.WriteFile(filepath.Join(s.dir, key), body, 0o644); err != nil {
		return "", fmt.Errorf("writing object %q: %w", key, err)
	}

	return s.baseURL + "/" + key, nil
}
