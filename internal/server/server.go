package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"trychooser/internal/domain"
)

const readHeaderTimeout = 10 * time.Second

// Server serves chooser sessions for a single definition.
type Server struct {
	srv      *http.Server
	config   *Config
	echo     *echo.Echo
	registry *Registry
}

// New returns a new Server for def.
func New(def *domain.Definition, opts ...Option) *Server {
	cfg := NewConfig(opts...)
	registry := NewRegistry(def, cfg.sessionTTL, cfg.maxSessions, cfg.compileOpts...)
	h := newHandlers(def, registry)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(requestLogger(cfg.logger))

	e.GET("/healthz", h.health)
	e.GET("/definition", h.definition)
	e.POST("/sessions", h.createSession)
	e.GET("/sessions/:id", h.getSession)
	e.POST("/sessions/:id/events", h.applyEvents)
	e.POST("/sessions/:id/reset", h.resetSession)
	e.DELETE("/sessions/:id", h.deleteSession)

	return &Server{
		srv: &http.Server{
			Handler:           e,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		config:   cfg,
		echo:     e,
		registry: registry,
	}
}

// Handler returns the HTTP handler, for embedding and tests.
func (s *Server) Handler() http.Handler { return s.echo }

// Registry returns the live session registry.
func (s *Server) Registry() *Registry { return s.registry }

// Listen starts listening on the configured address.
func (s *Server) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.config.Addr())
	if err != nil {
		return nil, err
	}
	s.config.logger.Info("chooserd listening", zap.String("addr", ln.Addr().String()))
	return ln, nil
}

// Run serves on ln until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, ln net.Listener) error {
	errGroup, ctx := errgroup.WithContext(ctx)
	errGroup.Go(func() error {
		<-ctx.Done()
		s.config.logger.Info("shutting down chooserd")

		ctx, cancel := context.WithTimeout(context.Background(), s.config.shutdownTimeout)
		defer cancel()

		if err := s.srv.Shutdown(ctx); err != nil {
			return err
		}
		return nil
	})
	if s.config.sessionTTL > 0 {
		errGroup.Go(func() error {
			s.expireSessions(ctx)
			return nil
		})
	}

	if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return errGroup.Wait()
}

// expireSessions sweeps idle sessions until ctx is done.
func (s *Server) expireSessions(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval(s.config.sessionTTL))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.registry.Expire(); n > 0 {
				s.config.logger.Debug("Expired idle sessions", zap.Int("count", n), zap.Int("live", s.registry.Len()))
			}
		}
	}
}

func sweepInterval(ttl time.Duration) time.Duration {
	const maxInterval = time.Minute
	if interval := ttl / 2; interval < maxInterval && interval > 0 {
		return interval
	}
	return maxInterval
}
