package e2e_test

import (
	"context"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sagarc03/devserve"
	"github.com/sagarc03/devserve/filesystem"
	devservehttp "github.com/sagarc03/devserve/http"
)

// startServer wires the full stack (sandboxed store, resolver, HTTP handler)
// and serves it on an ephemeral loopback port. Returns the base URL.
func startServer(t *testing.T, siteDir, fallback string) string {
	t.Helper()

	root, err := os.OpenRoot(siteDir)
	require.NoError(t, err, "open site root")
	t.Cleanup(func() { _ = root.Close() })

	store := filesystem.NewSiteStore(root)

	resolver, err := devserve.NewResolver(store, devserve.ResolverConfig{Fallback: fallback})
	require.NoError(t, err, "create resolver")

	handler := devservehttp.NewHandler(&devservehttp.HandlerConfig{}, resolver)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err, "listen")

	server := &http.Server{Handler: handler.Router()}
	go func() { _ = server.Serve(ln) }()

	t.Cleanup(func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	})

	return "http://" + ln.Addr().String()
}

// writeSite materializes a site layout under a temp dir. Keys ending in "/"
// create directories; other keys create files with the given content,
// creating parent directories as needed.
func writeSite(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if name[len(name)-1] == '/' {
			require.NoError(t, os.MkdirAll(path, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}
