package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/catalog"
	"github.com/san-kum/algoviz/internal/engine"
	"github.com/san-kum/algoviz/internal/prefs"
)

// Config holds server configuration.
type Config struct {
	Addr string
	// AllowedOrigins feeds both CORS and the websocket origin check. Empty
	// means local origins only.
	AllowedOrigins []string
}

// Server exposes one controller over HTTP and a websocket frame stream.
type Server struct {
	cfg        Config
	ctrl       *engine.Controller
	registry   *algo.Registry
	catalog    *catalog.Catalog
	prefs      *prefs.Store
	hub        *Hub
	router     chi.Router
	httpServer *http.Server
}

// New wires the server and subscribes its hub to ctrl. store may be nil, in
// which case the prefs routes answer 503.
func New(cfg Config, ctrl *engine.Controller, registry *algo.Registry, cat *catalog.Catalog, store *prefs.Store) *Server {
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"http://localhost:*", "http://127.0.0.1:*"}
	}
	s := &Server{
		cfg:      cfg,
		ctrl:     ctrl,
		registry: registry,
		catalog:  cat,
		prefs:    store,
		hub:      NewHub(originChecker(cfg.AllowedOrigins)),
	}
	ctrl.Subscribe(s.hub)
	s.router = s.buildRouter()
	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))

		r.Get("/algorithms", s.handleAlgorithms)
		r.Get("/algorithms/{id}", s.handleAlgorithm)

		r.Post("/run", s.handleRun)
		r.Post("/pause", s.control(s.ctrl.Pause))
		r.Post("/resume", s.control(s.ctrl.Resume))
		r.Post("/cancel", s.control(s.ctrl.Cancel))
		r.Post("/reset", s.control(s.ctrl.Reset))
		r.Put("/speed", s.handleSpeed)
		r.Get("/state", s.handleState)

		r.Route("/prefs", func(r chi.Router) {
			r.Use(s.requirePrefs)
			r.Get("/theme", s.handleGetTheme)
			r.Put("/theme", s.handlePutTheme)
			r.Put("/selected", s.handlePutSelected)
			r.Post("/selected/take", s.handleTakeSelected)
		})
	})

	r.Get("/ws", s.handleWebSocket)

	return r
}

// Handler returns the root handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Start listens on the configured address until Shutdown.
func (s *Server) Start() error {
	slog.Info("algoviz server listening.", "addr", s.cfg.Addr)
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops accepting requests, drops websocket clients and waits for
// in-flight handlers.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	return s.httpServer.Shutdown(ctx)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		slog.Debug("HTTP request.",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"elapsed", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
