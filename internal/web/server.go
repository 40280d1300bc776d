package web

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/hpungsan/rig/internal/obs"
	"github.com/hpungsan/rig/internal/ops"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// NewServer creates and configures the HTTP server for the Rig web UI.
func NewServer(session *ops.Session, version, bind string, port int) (*http.Server, error) {
	// Create sub-FS for templates (strip "templates/" prefix)
	templateSub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("template sub-FS: %w", err)
	}

	// Create sub-FS for static files (strip "static/" prefix)
	staticSub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("static sub-FS: %w", err)
	}

	h := &Handlers{
		session:  session,
		renderer: NewRenderer(templateSub, version),
	}

	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", bind, port),
		Handler:           newRouter(h, staticSub),
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

func newRouter(h *Handlers, static fs.FS) http.Handler {
	mux := http.NewServeMux()

	// Routes using Go 1.22+ pattern syntax
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/build", http.StatusFound)
	})
	mux.HandleFunc("GET /build", h.HandleBuild)
	mux.HandleFunc("GET /build/summary", h.HandleSummary)
	mux.HandleFunc("POST /build/clear", h.HandleClear)
	mux.HandleFunc("GET /build/{category}", h.HandleOptions)
	mux.HandleFunc("POST /build/{category}/select", h.HandleSelect)
	mux.HandleFunc("GET /catalog", h.HandleCatalog)

	// Static file server
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static)))

	return WithRequestID(WithLogging(securityHeaders(mux)))
}

// Run starts the HTTP server and handles graceful shutdown on SIGINT/SIGTERM.
func Run(srv *http.Server) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	obs.Logger.Info("rig UI running", "url", "http://"+srv.Addr)

	if strings.Contains(srv.Addr, "0.0.0.0") || strings.Contains(srv.Addr, "::") {
		obs.Logger.Warn("server is binding to all interfaces and may be accessible from the network")
	}

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
		obs.Logger.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
