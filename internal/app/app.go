package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"trychooser/internal/definition"
	"trychooser/internal/domain"
	"trychooser/internal/services/remote"
)

// App is what commands operate on. It hides whether selections live in the
// local state store or in a chooserd session.
type App struct {
	*Wire
	cfg Config
}

// New wires cfg into an App.
func New(cfg Config) (*App, error) {
	w, err := NewWire(cfg)
	if err != nil {
		return nil, err
	}
	return &App{Wire: w, cfg: cfg}, nil
}

// Definition returns the active definition and its fingerprint.
func (a *App) Definition(ctx context.Context) (*domain.Definition, domain.Fingerprint, error) {
	if a.def != nil {
		return a.def, definition.Fingerprint(a.def), nil
	}
	def, fp, err := a.Client.Definition(ctx)
	if err != nil {
		return nil, "", err
	}
	return &def, fp, nil
}

// Controls lists every control of the active definition.
func (a *App) Controls(ctx context.Context) ([]domain.ControlInfo, error) {
	def, _, err := a.Definition(ctx)
	if err != nil {
		return nil, err
	}
	return definition.Controls(def), nil
}

// Snapshot returns the current selection.
func (a *App) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	return a.run(func(svc domain.SelectionService) (domain.Snapshot, error) {
		return svc.Snapshot(ctx)
	})
}

// Apply runs events against the current selection.
func (a *App) Apply(ctx context.Context, events ...domain.Event) (domain.Snapshot, error) {
	return a.run(func(svc domain.SelectionService) (domain.Snapshot, error) {
		return svc.Apply(ctx, events...)
	})
}

// Reset returns the selection to the definition's initial state.
func (a *App) Reset(ctx context.Context) (domain.Snapshot, error) {
	return a.run(func(svc domain.SelectionService) (domain.Snapshot, error) {
		return svc.Reset(ctx)
	})
}

// run calls fn and, in remote mode, keeps the remembered session current. A
// remembered session the server no longer knows is replaced once; an
// explicitly requested one is not.
func (a *App) run(fn func(domain.SelectionService) (domain.Snapshot, error)) (domain.Snapshot, error) {
	snap, err := fn(a.Selection)
	if a.remote == nil {
		return snap, err
	}
	if errors.Is(err, domain.ErrSessionNotFound) && a.cfg.Session == "" {
		a.Logger.Warn("Remembered session is gone; starting a new one",
			zap.String("session", a.remote.ID().String()),
		)
		a.remote = remote.New(a.Client, "")
		a.Selection = a.remote
		snap, err = fn(a.Selection)
	}
	if err != nil {
		return domain.Snapshot{}, err
	}
	if err := a.Sessions.SaveSession(a.cfg.ServerURL, a.remote.ID()); err != nil {
		return domain.Snapshot{}, fmt.Errorf("remembering session: %w", err)
	}
	return snap, nil
}
