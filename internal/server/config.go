package server

import (
	"net"
	"strconv"
	"time"

	"go.uber.org/zap"

	"trychooser/internal/compile"
)

const (
	defaultHostname        = "localhost"
	defaultShutdownTimeout = time.Second * 30
	defaultSessionTTL      = time.Hour * 24
	defaultMaxSessions     = 10000
)

// Option configures a Server.
type Option func(Config) Config

// WithHostname sets the listen host.
func WithHostname(hostname string) Option {
	return func(cfg Config) Config {
		if hostname != "" {
			cfg.hostname = hostname
		}
		return cfg
	}
}

// WithPort sets the listen port. Port 0 picks a free port.
func WithPort(port int) Option {
	return func(cfg Config) Config {
		cfg.port = port
		return cfg
	}
}

// WithShutdownTimeout bounds graceful shutdown.
func WithShutdownTimeout(timeout time.Duration) Option {
	return func(cfg Config) Config {
		if timeout > 0 {
			cfg.shutdownTimeout = timeout
		}
		return cfg
	}
}

// WithSessionTTL drops sessions idle for longer than ttl. Zero disables
// expiry.
func WithSessionTTL(ttl time.Duration) Option {
	return func(cfg Config) Config {
		if ttl >= 0 {
			cfg.sessionTTL = ttl
		}
		return cfg
	}
}

// WithMaxSessions bounds the number of live sessions. Zero means no limit.
func WithMaxSessions(n int) Option {
	return func(cfg Config) Config {
		if n >= 0 {
			cfg.maxSessions = n
		}
		return cfg
	}
}

// WithLogger sets the logger for requests and lifecycle events.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg Config) Config {
		if logger != nil {
			cfg.logger = logger
		}
		return cfg
	}
}

// WithCompileOptions passes options to every session's compiler.
func WithCompileOptions(opts ...compile.Option) Option {
	return func(cfg Config) Config {
		cfg.compileOpts = append(cfg.compileOpts, opts...)
		return cfg
	}
}

// Config holds server settings.
type Config struct {
	hostname        string
	port            int
	shutdownTimeout time.Duration
	sessionTTL      time.Duration
	maxSessions     int
	logger          *zap.Logger
	compileOpts     []compile.Option
}

// NewConfig applies opts over the defaults.
func NewConfig(opts ...Option) *Config {
	cfg := Config{
		hostname:        defaultHostname,
		shutdownTimeout: defaultShutdownTimeout,
		sessionTTL:      defaultSessionTTL,
		maxSessions:     defaultMaxSessions,
		logger:          zap.NewNop(),
	}
	for _, opt := range opts {
		cfg = opt(cfg)
	}
	return &cfg
}

// Addr returns the host:port to listen on.
func (cfg *Config) Addr() string {
	return net.JoinHostPort(cfg.hostname, strconv.Itoa(cfg.port))
}
