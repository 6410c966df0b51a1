// Package filesystem provides the read-only site content store for devserve.
// It is backed by os.Root, so every lookup is sandboxed at the OS level and
// parent-directory escapes are rejected regardless of how the request path
// was normalized upstream.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/sagarc03/devserve"
)

// Store provides sandboxed, read-only access to the site content root.
type Store struct {
	root *os.Root
}

// NewSiteStore creates a Store over the given root directory. The root
// provides sandboxed file operations preventing path traversal.
func NewSiteStore(root *os.Root) *Store {
	return &Store{root: root}
}

// Stat returns file information for a content-root-relative path. The empty
// path refers to the content root directory itself. Returns
// devserve.ErrNotFound if the path does not exist.
func (s *Store) Stat(ctx context.Context, path string) (fs.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if path == "" {
		path = "."
	}

	info, err := s.root.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, devserve.ErrNotFound
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return info, nil
}

// Open opens a file for reading. Returns devserve.ErrNotFound if the file
// does not exist.
func (s *Store) Open(ctx context.Context, path string) (io.ReadSeekCloser, fs.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	f, err := s.root.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, devserve.ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("failed to stat open file: %w", err)
	}

	return f, info, nil
}
