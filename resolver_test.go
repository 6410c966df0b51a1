package devserve_test

import (
	"context"
	"io"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sagarc03/devserve"
)

type SpySiteFS struct {
	mock.Mock
}

func (s *SpySiteFS) Stat(ctx context.Context, path string) (fs.FileInfo, error) {
	args := s.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(fs.FileInfo), args.Error(1)
}

func (s *SpySiteFS) Open(ctx context.Context, path string) (io.ReadSeekCloser, fs.FileInfo, error) {
	args := s.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(io.ReadSeekCloser), args.Get(1).(fs.FileInfo), args.Error(2)
}

// fakeFileInfo is a minimal fs.FileInfo for stubbing Stat results.
type fakeFileInfo struct {
	name string
	dir  bool
}

func (f fakeFileInfo) Name() string       { return f.name }
func (f fakeFileInfo) Size() int64        { return 0 }
func (f fakeFileInfo) Mode() fs.FileMode  { return 0 }
func (f fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f fakeFileInfo) IsDir() bool        { return f.dir }
func (f fakeFileInfo) Sys() any           { return nil }

// readSeekNopCloser wraps an io.ReadSeeker to add a no-op Close method
type readSeekNopCloser struct {
	io.ReadSeeker
}

func (r readSeekNopCloser) Close() error { return nil }

func NewResolver(t *testing.T) (*devserve.Resolver, *SpySiteFS) {
	t.Helper()
	spySite := new(SpySiteFS)
	r, err := devserve.NewResolver(spySite, devserve.ResolverConfig{})
	assert.NoError(t, err, "new resolver")
	return r, spySite
}

func TestNewResolver_NilSite(t *testing.T) {
	_, err := devserve.NewResolver(nil, devserve.ResolverConfig{})
	assert.Error(t, err)
}

func TestNewResolver_DefaultFallback(t *testing.T) {
	r, _ := NewResolver(t)
	assert.Equal(t, "index.html", r.Fallback())
}

func TestNewResolver_InvalidFallback(t *testing.T) {
	spySite := new(SpySiteFS)

	_, err := devserve.NewResolver(spySite, devserve.ResolverConfig{Fallback: "../index.html"})
	assert.ErrorIs(t, err, devserve.ErrInvalidPath)

	_, err = devserve.NewResolver(spySite, devserve.ResolverConfig{Fallback: "bad\x00name"})
	assert.ErrorIs(t, err, devserve.ErrInvalidPath)
}

func TestResolver_Resolve_DirectFile(t *testing.T) {
	r, spySite := NewResolver(t)

	spySite.On("Stat", mock.Anything, "app.js").Return(fakeFileInfo{name: "app.js"}, nil)

	res, err := r.Resolve(context.Background(), "/app.js")
	assert.NoError(t, err)
	assert.Equal(t, devserve.ModeDirectFile, res.Mode)
	assert.Equal(t, "app.js", res.Path)

	spySite.AssertExpectations(t)
}

func TestResolver_Resolve_DirectoryIndex(t *testing.T) {
	r, spySite := NewResolver(t)

	spySite.On("Stat", mock.Anything, "docs").Return(fakeFileInfo{name: "docs", dir: true}, nil)
	spySite.On("Stat", mock.Anything, "docs/index.html").Return(fakeFileInfo{name: "index.html"}, nil)

	// No trailing slash: the index is still served, no redirect.
	res, err := r.Resolve(context.Background(), "/docs")
	assert.NoError(t, err)
	assert.Equal(t, devserve.ModeDirectoryIndex, res.Mode)
	assert.Equal(t, "docs/index.html", res.Path)

	spySite.AssertExpectations(t)
}

func TestResolver_Resolve_RootServesIndex(t *testing.T) {
	r, spySite := NewResolver(t)

	spySite.On("Stat", mock.Anything, "").Return(fakeFileInfo{name: ".", dir: true}, nil)
	spySite.On("Stat", mock.Anything, "index.html").Return(fakeFileInfo{name: "index.html"}, nil)

	res, err := r.Resolve(context.Background(), "/")
	assert.NoError(t, err)
	assert.Equal(t, devserve.ModeDirectoryIndex, res.Mode)
	assert.Equal(t, "index.html", res.Path)

	spySite.AssertExpectations(t)
}

func TestResolver_Resolve_Fallback(t *testing.T) {
	r, spySite := NewResolver(t)

	spySite.On("Stat", mock.Anything, "dashboard/settings").Return(nil, devserve.ErrNotFound)
	spySite.On("Stat", mock.Anything, "index.html").Return(fakeFileInfo{name: "index.html"}, nil)

	res, err := r.Resolve(context.Background(), "/dashboard/settings")
	assert.NoError(t, err)
	assert.Equal(t, devserve.ModeFallback, res.Mode)
	assert.Equal(t, "index.html", res.Path)

	spySite.AssertExpectations(t)
}

func TestResolver_Resolve_DirectoryWithoutIndexFallsBack(t *testing.T) {
	r, spySite := NewResolver(t)

	spySite.On("Stat", mock.Anything, "assets").Return(fakeFileInfo{name: "assets", dir: true}, nil)
	spySite.On("Stat", mock.Anything, "assets/index.html").Return(nil, devserve.ErrNotFound)
	spySite.On("Stat", mock.Anything, "index.html").Return(fakeFileInfo{name: "index.html"}, nil)

	res, err := r.Resolve(context.Background(), "/assets/")
	assert.NoError(t, err)
	assert.Equal(t, devserve.ModeFallback, res.Mode)
	assert.Equal(t, "index.html", res.Path)

	spySite.AssertExpectations(t)
}

func TestResolver_Resolve_MissingFallback(t *testing.T) {
	r, spySite := NewResolver(t)

	spySite.On("Stat", mock.Anything, "unknown").Return(nil, devserve.ErrNotFound)
	spySite.On("Stat", mock.Anything, "index.html").Return(nil, devserve.ErrNotFound)

	_, err := r.Resolve(context.Background(), "/unknown")
	assert.ErrorIs(t, err, devserve.ErrNotFound)

	spySite.AssertExpectations(t)
}

func TestResolver_Resolve_TraversalClampedToRoot(t *testing.T) {
	r, spySite := NewResolver(t)

	// The traversal collapses to etc/passwd under the content root; it does
	// not exist there, so the request falls back.
	spySite.On("Stat", mock.Anything, "etc/passwd").Return(nil, devserve.ErrNotFound)
	spySite.On("Stat", mock.Anything, "index.html").Return(fakeFileInfo{name: "index.html"}, nil)

	res, err := r.Resolve(context.Background(), "/../../etc/passwd")
	assert.NoError(t, err)
	assert.Equal(t, devserve.ModeFallback, res.Mode)
	assert.Equal(t, "index.html", res.Path)

	spySite.AssertExpectations(t)
}

func TestResolver_Resolve_InvalidPath(t *testing.T) {
	r, _ := NewResolver(t)

	_, err := r.Resolve(context.Background(), "/bad\x00path")
	assert.ErrorIs(t, err, devserve.ErrInvalidPath)
}

func TestResolver_Resolve_StatErrorPropagates(t *testing.T) {
	r, spySite := NewResolver(t)

	spySite.On("Stat", mock.Anything, "secret.txt").Return(nil, fs.ErrPermission)

	_, err := r.Resolve(context.Background(), "/secret.txt")
	assert.ErrorIs(t, err, fs.ErrPermission)

	spySite.AssertExpectations(t)
}

func TestResolver_Resolve_CancelledContext(t *testing.T) {
	r, _ := NewResolver(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Resolve(ctx, "/app.js")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolver_Resolve_CustomFallback(t *testing.T) {
	spySite := new(SpySiteFS)
	r, err := devserve.NewResolver(spySite, devserve.ResolverConfig{Fallback: "app.html"})
	assert.NoError(t, err)

	spySite.On("Stat", mock.Anything, "missing").Return(nil, devserve.ErrNotFound)
	spySite.On("Stat", mock.Anything, "app.html").Return(fakeFileInfo{name: "app.html"}, nil)

	res, err := r.Resolve(context.Background(), "/missing")
	assert.NoError(t, err)
	assert.Equal(t, devserve.ModeFallback, res.Mode)
	assert.Equal(t, "app.html", res.Path)

	spySite.AssertExpectations(t)
}

func TestResolver_Open_DirectFile(t *testing.T) {
	r, spySite := NewResolver(t)

	content := readSeekNopCloser{strings.NewReader("console.log(1)")}
	info := fakeFileInfo{name: "app.js"}

	spySite.On("Stat", mock.Anything, "app.js").Return(info, nil)
	spySite.On("Open", mock.Anything, "app.js").Return(content, info, nil)

	res, gotInfo, gotContent, err := r.Open(context.Background(), "/app.js")
	assert.NoError(t, err)
	assert.Equal(t, devserve.ModeDirectFile, res.Mode)
	assert.Equal(t, "app.js", gotInfo.Name())

	body, err := io.ReadAll(gotContent)
	assert.NoError(t, err)
	assert.Equal(t, "console.log(1)", string(body))

	spySite.AssertExpectations(t)
}

func TestResolver_Open_FileVanishedAfterResolve(t *testing.T) {
	r, spySite := NewResolver(t)

	spySite.On("Stat", mock.Anything, "app.js").Return(fakeFileInfo{name: "app.js"}, nil)
	spySite.On("Open", mock.Anything, "app.js").Return(nil, nil, devserve.ErrNotFound)

	_, _, _, err := r.Open(context.Background(), "/app.js")
	assert.ErrorIs(t, err, devserve.ErrNotFound)

	spySite.AssertExpectations(t)
}
