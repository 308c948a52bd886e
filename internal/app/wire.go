package app

import (
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"trychooser/internal/client"
	"trychooser/internal/definition"
	"trychooser/internal/domain"
	"trychooser/internal/services/remote"
	"trychooser/internal/services/selection"
	"trychooser/internal/store"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Logger    *zap.Logger
	States    domain.StateStore
	Sessions  domain.SessionStore
	Selection domain.SelectionService
	Client    domain.ChooserClient // nil in local mode
	HTTP      *http.Client

	def    *domain.Definition // nil in remote mode
	remote *remote.Service
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// File-based stores
	stateStore := store.NewStateFileStore(cfg.Home)
	sessionStore := store.NewSessionFileStore(cfg.Home)

	w := &Wire{
		Logger:   logger,
		States:   stateStore,
		Sessions: sessionStore,
	}

	if cfg.Remote() {
		httpClient := cfg.HTTP
		if httpClient == nil {
			httpClient = http.DefaultClient
		}
		id := domain.SessionID(cfg.Session)
		if id == "" {
			saved, _, err := sessionStore.LoadSession(cfg.ServerURL)
			if err != nil {
				return nil, fmt.Errorf("loading remembered session: %w", err)
			}
			id = saved
		}
		w.HTTP = httpClient
		w.Client = client.NewHTTP(cfg.ServerURL, httpClient)
		w.remote = remote.New(w.Client, id)
		w.Selection = w.remote
		logger.Debug("Remote mode",
			zap.String("server", cfg.ServerURL),
			zap.String("session", id.String()),
		)
		return w, nil
	}

	if cfg.Definition == "" {
		return nil, errors.New("no definition file configured (--definition or TRYCHOOSER_DEFINITION)")
	}
	def, err := definition.Load(cfg.Definition)
	if err != nil {
		return nil, err
	}
	w.def = def
	w.Selection = selection.New(def, stateStore, logger)
	logger.Debug("Local mode",
		zap.String("definition", cfg.Definition),
		zap.String("fingerprint", definition.Fingerprint(def).String()),
	)
	return w, nil
}
