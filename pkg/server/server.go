// Package server serves rendered cheat sheets over HTTP. Sheets are
// addressed as /{language}/sheet/{app} with an optional ?platform=
// query; static assets (stylesheet, app logos) hang under /static/.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/neatsheets/neatsheets/pkg/catalog"
	"github.com/neatsheets/neatsheets/pkg/render"
)

// Server wraps an http.Server over a catalog.
type Server struct {
	catalog *catalog.Catalog
	httpd   *http.Server
	lis     net.Listener
}

// New builds a server for the catalog, listening on addr.
func New(cat *catalog.Catalog, addr string) *Server {
	s := &Server{catalog: cat}
	s.httpd = &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the route table, mainly for tests.
func (s *Server) Handler() http.Handler { return s.httpd.Handler }

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /static/style.css", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		_, _ = w.Write(render.StyleCSS())
	})
	mux.Handle("GET /static/apps/",
		http.StripPrefix("/static/apps/", http.FileServer(http.Dir(s.catalog.Root()))))
	mux.HandleFunc("GET /{language}/sheet/{app}", s.handleSheet)

	return logRequests(mux)
}

// handleSheet renders the cheat-sheet page for one app. The ".html"
// suffix is accepted as an alias of the bare app name.
func (s *Server) handleSheet(w http.ResponseWriter, r *http.Request) {
	lang := catalog.Language(r.PathValue("language"))
	name := strings.TrimSuffix(r.PathValue("app"), ".html")

	platform := catalog.PlatformMac
	if q := r.URL.Query().Get("platform"); q != "" {
		platform = catalog.Platform(q)
		if !platform.Valid() {
			http.Error(w, fmt.Sprintf("unknown platform %q", q), http.StatusNotFound)
			return
		}
	}

	app, err := s.catalog.Load(lang, name)
	if err != nil {
		logrus.WithField("app", name).WithError(err).Warn("sheet not available")
		http.NotFound(w, r)
		return
	}
	if app.Sheet(platform) == nil {
		http.Error(w, fmt.Sprintf("%s has no %s sheet", name, platform), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.WriteAppHTML(w, app, platform); err != nil {
		logrus.WithField("app", name).WithError(err).Error("render failed")
	}
}

// Start begins listening. It returns once the listener is bound; Serve
// errors other than a clean close are logged.
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.httpd.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpd.Addr, err)
	}
	s.lis = lis
	logrus.WithField("addr", lis.Addr().String()).Info("serving sheets")

	go func() {
		if err := s.httpd.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Error("http server stopped")
		}
	}()
	return nil
}

// Addr returns the bound listen address, once started.
func (s *Server) Addr() string {
	if s.lis == nil {
		return s.httpd.Addr
	}
	return s.lis.Addr().String()
}

// Shutdown stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	logrus.Info("shutting down")
	return s.httpd.Shutdown(ctx)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logrus.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).Round(time.Millisecond).String(),
		}).Debug("request")
	})
}
