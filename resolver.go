package devserve

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path"
)

// SiteFS defines the interface for read-only access to site content.
// Implementations must map "file does not exist" conditions to ErrNotFound
// and must never allow a path to escape the content root.
//
// All methods accept a context for cancellation control. The empty path
// refers to the content root itself.
type SiteFS interface {
	// Stat returns file information for a content-root-relative path.
	//
	// Returns:
	//   - fs.FileInfo: size, mode, and modification time of the entry
	//   - error: ErrNotFound if the path doesn't exist, or other I/O errors
	Stat(ctx context.Context, path string) (fs.FileInfo, error)

	// Open opens a content-root-relative path for reading.
	//
	// Returns:
	//   - io.ReadSeekCloser: reader over the file's bytes, seekable so the
	//     HTTP layer can serve ranges and HEAD requests
	//   - fs.FileInfo: information about the opened file
	//   - error: ErrNotFound if the path doesn't exist, or other I/O errors
	//
	// The caller is responsible for closing the returned ReadSeekCloser.
	Open(ctx context.Context, path string) (io.ReadSeekCloser, fs.FileInfo, error)
}

// Resolver applies the three-step resolution policy: direct file, directory
// index, SPA fallback. It holds no per-request state; every request is
// resolved fresh against the site filesystem.
type Resolver struct {
	site     SiteFS
	fallback string
}

// ResolverConfig holds configuration options for Resolver.
type ResolverConfig struct {
	// Fallback is the entry document name (default: index.html). It is both
	// the index document looked up inside directories and the document
	// served for unresolved routes.
	Fallback string
}

func NewResolver(site SiteFS, cfg ResolverConfig) (*Resolver, error) {
	if site == nil {
		return nil, errors.New("new resolver: site filesystem is required")
	}

	fallback := cfg.Fallback
	if fallback == "" {
		fallback = DefaultFallback
	}
	if !IsValidRequestPath(fallback) || NormalizeRequestPath(fallback) != fallback {
		return nil, fmt.Errorf("new resolver: %w: fallback document %q", ErrInvalidPath, cfg.Fallback)
	}

	return &Resolver{site: site, fallback: fallback}, nil
}

// Fallback returns the configured entry document name.
func (r *Resolver) Fallback() string {
	return r.fallback
}

// Resolve determines the response mode for one request path.
//
// The decision is deterministic, with no retries and no cross-request state:
//
//  1. If the path names a regular file, serve it (ModeDirectFile).
//  2. If the path names a directory containing the fallback document, serve
//     that document (ModeDirectoryIndex). The trailing slash is normalized
//     internally; no redirect is issued.
//  3. Otherwise serve the root fallback document (ModeFallback).
//
// Error types returned:
//   - ErrInvalidPath: the request path fails validation
//   - ErrNotFound: nothing matched and the fallback document is missing
//   - context errors and wrapped I/O errors from the site filesystem
func (r *Resolver) Resolve(ctx context.Context, requestPath string) (Resolution, error) {
	if err := ctx.Err(); err != nil {
		return Resolution{}, fmt.Errorf("resolve %q: %w", requestPath, err)
	}

	if !IsValidRequestPath(requestPath) {
		return Resolution{}, fmt.Errorf("resolve %q: %w", requestPath, ErrInvalidPath)
	}

	rel := NormalizeRequestPath(requestPath)

	info, err := r.site.Stat(ctx, rel)
	exists := err == nil
	slog.Debug("resolve: stat", "requested", requestPath, "path", rel, "exists", exists)

	if err != nil && !errors.Is(err, ErrNotFound) {
		return Resolution{}, fmt.Errorf("resolve %q: %w", requestPath, err)
	}

	if exists && !info.IsDir() {
		slog.Debug("resolve: direct file", "requested", requestPath, "path", rel)
		return Resolution{Mode: ModeDirectFile, Path: rel}, nil
	}

	if exists && info.IsDir() {
		idx := path.Join(rel, r.fallback)
		idxInfo, idxErr := r.site.Stat(ctx, idx)
		idxExists := idxErr == nil && !idxInfo.IsDir()
		slog.Debug("resolve: directory index", "requested", requestPath, "path", idx, "exists", idxExists)

		if idxErr != nil && !errors.Is(idxErr, ErrNotFound) {
			return Resolution{}, fmt.Errorf("resolve %q: %w", requestPath, idxErr)
		}
		if idxExists {
			return Resolution{Mode: ModeDirectoryIndex, Path: idx}, nil
		}
	}

	fbInfo, fbErr := r.site.Stat(ctx, r.fallback)
	fbExists := fbErr == nil && !fbInfo.IsDir()
	slog.Debug("resolve: fallback", "requested", requestPath, "path", r.fallback, "exists", fbExists)

	if fbErr != nil {
		if errors.Is(fbErr, ErrNotFound) {
			return Resolution{}, fmt.Errorf("resolve %q: fallback document missing: %w", requestPath, ErrNotFound)
		}
		return Resolution{}, fmt.Errorf("resolve %q: %w", requestPath, fbErr)
	}
	if !fbExists {
		return Resolution{}, fmt.Errorf("resolve %q: fallback document is a directory: %w", requestPath, ErrNotFound)
	}

	return Resolution{Mode: ModeFallback, Path: r.fallback}, nil
}

// Open resolves a request path and opens the file it resolved to.
//
// A file that disappears between the resolution stat and the open surfaces
// as ErrNotFound; the policy has no retries.
func (r *Resolver) Open(ctx context.Context, requestPath string) (Resolution, fs.FileInfo, io.ReadSeekCloser, error) {
	res, err := r.Resolve(ctx, requestPath)
	if err != nil {
		return Resolution{}, nil, nil, err
	}

	content, info, err := r.site.Open(ctx, res.Path)
	if err != nil {
		return Resolution{}, nil, nil, fmt.Errorf("open %q: %w", res.Path, err)
	}

	return res, info, content, nil
}
