package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sagarc03/devserve"
	"github.com/sagarc03/devserve/config"
	"github.com/sagarc03/devserve/filesystem"
	devservehttp "github.com/sagarc03/devserve/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the development server",
	Long: `Start the devserve HTTP server.

Real files under the content root are served directly, directories are
served their index document, and everything else falls back to the entry
document so client-side routes resolve.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("host", "", "interface to bind (default: all interfaces, env: DEVSERVE_SERVER_HOST)")
	serveCmd.Flags().Int("port", 0, "HTTP server port (default: 8080, env: DEVSERVE_SERVER_PORT)")
	serveCmd.Flags().String("root", "", "content root directory (default: the server executable's directory, env: DEVSERVE_SITE_ROOT)")
	serveCmd.Flags().String("fallback", "", "entry document name (default: index.html)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	cfg, err := config.FromContext(ctx)
	if err != nil {
		return err
	}

	rootDir, err := cfg.Site.ResolveRoot()
	if err != nil {
		return err
	}

	info, err := os.Stat(rootDir)
	if os.IsNotExist(err) {
		return fmt.Errorf("content root does not exist: %s", rootDir)
	}
	if err != nil {
		return fmt.Errorf("stat content root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("content root is not a directory: %s", rootDir)
	}

	root, err := os.OpenRoot(rootDir)
	if err != nil {
		return fmt.Errorf("open content root: %w", err)
	}
	defer func() { _ = root.Close() }()

	store := filesystem.NewSiteStore(root)

	resolver, err := devserve.NewResolver(store, devserve.ResolverConfig{
		Fallback: cfg.Site.Fallback,
	})
	if err != nil {
		return fmt.Errorf("create resolver: %w", err)
	}

	handlerConfig := devservehttp.HandlerConfig{
		CORS: cfg.CORS,
	}
	handler := devservehttp.NewHandler(&handlerConfig, resolver)

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))

	server := &http.Server{
		Addr:         addr,
		Handler:      handler.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down dev server...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "err", err)
		}
		cancel()
	}()

	printBanner(cfg, rootDir)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	slog.Info("dev server stopped")
	return nil
}

// printBanner writes the human-readable startup notice to stdout.
func printBanner(cfg *config.Config, rootDir string) {
	host := cfg.Server.Host
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	url := fmt.Sprintf("http://%s", net.JoinHostPort(host, strconv.Itoa(cfg.Server.Port)))

	bold := color.New(color.Bold)
	_, _ = bold.Printf("devserve running at %s\n", color.CyanString(url))
	fmt.Printf("   serving: %s\n", rootDir)
	fmt.Printf("   SPA fallback enabled (unknown routes -> /%s)\n", cfg.Site.Fallback)
}
