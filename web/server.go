package web

import (
	"context"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"

	"gostyles/component"
	"gostyles/config"
)

// Server is the rweb server together with the state its handlers share.
type Server struct {
	*rweb.Server

	Config   config.Config
	Registry *component.Registry
	Sessions *Sessions
}

// NewServer creates and configures the RWeb server
func NewServer(cfg config.Config) (*Server, error) {
	registry := component.NewRegistry()

	sessions, err := NewSessions(cfg.Session, registry)
	if err != nil {
		return nil, err
	}

	s := &Server{
		Server: rweb.NewServer(rweb.ServerOptions{
			Address: cfg.Server.Address,
			Verbose: cfg.Server.Verbose,
		}),
		Config:   cfg,
		Registry: registry,
		Sessions: sessions,
	}

	// Apply middleware
	s.Use(rweb.RequestInfo)
	s.Use(CorsMiddleware)
	s.Use(sessions.Middleware)
	s.Use(SecurityHeadersMiddleware)
	s.Use(LoggingMiddleware)
	if cfg.Server.RateLimit > 0 {
		s.Use(RateLimitMiddleware(cfg.Server.RateLimit))
	}

	setupRoutes(s)

	// Serve static files using embedded FS
	SetupStaticFiles(s.Server)

	return s, nil
}

// Run sweeps idle sessions in the background and starts serving.
func Run(ctx context.Context, s *Server) error {
	if idle := s.Config.Session.MaxIdle; idle > 0 {
		go s.Sessions.Sweep(ctx, idle/2)
	}

	logger.Info("gostyles server starting", "address", s.Config.Server.Address)
	return s.Server.Run()
}
