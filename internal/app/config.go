package app

import (
	"net/http"

	"go.uber.org/zap"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home       string       // state directory, e.g. $HOME/.trychooser
	Definition string       // definition file (.yaml, .yml or .hcl) for local mode
	ServerURL  string       // chooserd base URL; switches to remote mode
	Session    string       // chooserd session to drive; empty reuses the remembered one
	HTTP       *http.Client // optional; defaults to http.DefaultClient
	Logger     *zap.Logger  // optional; defaults to a no-op logger
}

// Remote reports whether selections are driven through a chooserd server.
func (c Config) Remote() bool { return c.ServerURL != "" }
