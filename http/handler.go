package http

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/sagarc03/devserve"
)

// Service resolves request paths to site content. Implemented by
// devserve.Resolver.
type Service interface {
	Open(ctx context.Context, requestPath string) (devserve.Resolution, fs.FileInfo, io.ReadSeekCloser, error)
}

type CORSConfig struct {
	Enabled          bool     `mapstructure:"enabled"`
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type HandlerConfig struct {
	CORS CORSConfig
}

// Handler adapts the resolution service to HTTP. Only GET and HEAD are
// routed; anything else gets the router's default method-not-allowed
// response.
type Handler struct {
	config  HandlerConfig
	service Service
}

// NewHandler creates a new Handler with the given configuration and service.
func NewHandler(config *HandlerConfig, service Service) *Handler {
	return &Handler{
		config:  *config,
		service: service,
	}
}

// Router returns an http.Handler routing every GET and HEAD request through
// the resolution policy.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestLogger)
	r.Use(PathValidationMiddleware)

	if h.config.CORS.Enabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.config.CORS.AllowedOrigins,
			AllowedMethods:   h.config.CORS.AllowedMethods,
			AllowedHeaders:   h.config.CORS.AllowedHeaders,
			ExposedHeaders:   h.config.CORS.ExposedHeaders,
			AllowCredentials: h.config.CORS.AllowCredentials,
			MaxAge:           h.config.CORS.MaxAge,
		}))
	}

	r.Get("/*", h.handleGet)
	r.Head("/*", h.handleGet)

	return r
}

// handleGet serves both GET and HEAD. http.ServeContent mirrors GET's
// headers on HEAD and omits the body.
func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	res, info, content, err := h.service.Open(r.Context(), r.URL.Path)
	if err != nil {
		if errors.Is(err, devserve.ErrNotFound) {
			writeDefaultNotFound(w)
			return
		}
		HandleError(w, err)
		return
	}
	defer func() { _ = content.Close() }()

	w.Header().Set("Content-Type", devserve.ContentType(res.Path))

	http.ServeContent(w, r, path.Base(res.Path), info.ModTime(), content)
}
