// Package api serves the daemon's admin interface: logger levels,
// recent log history, version and Prometheus metrics.
package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"

	"github.com/asandikci/strongswan/internal/events"
	"github.com/asandikci/strongswan/internal/logging"
	"github.com/asandikci/strongswan/internal/version"
)

// Options configure the admin server.
type Options struct {
	// EventBus receives LevelChangedEvent on runtime level changes and
	// feeds the /api/events stream. Optional; without it the stream
	// endpoint is not registered.
	EventBus *events.Bus

	// MetricsHandler, when set, is mounted at /metrics.
	MetricsHandler http.Handler
}

// Server is the Huma v2 admin API server.
type Server struct {
	api        huma.API
	mux        *http.ServeMux
	httpServer *http.Server
	opts       *Options
	log        *logging.Logger
}

// NewServer creates the admin server and registers all routes.
func NewServer(opts *Options) *Server {
	if opts == nil {
		opts = &Options{}
	}

	mux := http.NewServeMux()
	cfg := huma.DefaultConfig("charon admin API", version.String())
	api := humago.New(mux, cfg)

	s := &Server{
		api:  api,
		mux:  mux,
		opts: opts,
		log:  logging.Get("api"),
	}

	s.registerLoggerRoutes(api)
	s.registerLogRoutes(api)
	s.registerVersionRoute(api)
	if opts.EventBus != nil {
		s.registerEventRoutes()
	}

	if opts.MetricsHandler != nil {
		mux.Handle("/metrics", opts.MetricsHandler)
	}

	return s
}

// Start begins serving on the given address. Blocks until the server
// stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.mux,
	}
	s.log.Log(logging.Control|logging.Level1, "admin API listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) registerVersionRoute(api huma.API) {
	type versionResponse struct {
		Body version.Info
	}

	huma.Register(api, huma.Operation{
		OperationID: "get-version",
		Method:      http.MethodGet,
		Path:        "/api/version",
		Summary:     "Version",
		Description: "Build and version information",
		Tags:        []string{"system"},
	}, func(_ context.Context, _ *struct{}) (*versionResponse, error) {
		return &versionResponse{Body: version.Get()}, nil
	})
}
