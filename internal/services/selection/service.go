package selection

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"trychooser/internal/chooser"
	"trychooser/internal/domain"
)

// Service applies events to a persisted chooser session.
type Service struct {
	def    *domain.Definition
	states domain.StateStore
	logger *zap.Logger
}

// New constructs a selection Service for def backed by states.
func New(def *domain.Definition, states domain.StateStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{def: def, states: states, logger: logger}
}

// Snapshot returns the saved selection, or the definition's initial state
// when nothing was saved yet.
func (s *Service) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	sess, err := s.open(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return sess.Snapshot(), nil
}

// Apply runs events against the saved selection and persists the outcome.
func (s *Service) Apply(ctx context.Context, events ...domain.Event) (domain.Snapshot, error) {
	sess, err := s.open(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}
	snap, err := sess.Apply(events...)
	if err != nil {
		return domain.Snapshot{}, err
	}
	if err := s.save(snap); err != nil {
		return domain.Snapshot{}, err
	}
	s.logger.Debug("Applied events",
		zap.Int("events", len(events)),
		zap.String("syntax", snap.Result.Syntax),
	)
	return snap, nil
}

// Reset discards the saved selection and returns the initial state.
func (s *Service) Reset(ctx context.Context) (domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.Snapshot{}, err
	}
	sess := chooser.New(s.def)
	if err := s.states.DeleteState(sess.Fingerprint()); err != nil {
		return domain.Snapshot{}, fmt.Errorf("deleting saved state: %w", err)
	}
	s.logger.Debug("Selection reset", zap.String("fingerprint", sess.Fingerprint().String()))
	return sess.Snapshot(), nil
}

func (s *Service) open(ctx context.Context) (*chooser.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sess := chooser.New(s.def)
	saved, ok, err := s.states.LoadState(sess.Fingerprint())
	if err != nil {
		return nil, fmt.Errorf("loading saved state: %w", err)
	}
	if ok {
		sess.Restore(saved)
		s.logger.Debug("Restored saved selection", zap.String("fingerprint", sess.Fingerprint().String()))
	}
	return sess, nil
}

func (s *Service) save(snap domain.Snapshot) error {
	if err := s.states.SaveState(snap.Fingerprint, snap.State); err != nil {
		return fmt.Errorf("saving state: %w", err)
	}
	return nil
}

// Compile-time assertion that Service implements domain.SelectionService.
var _ domain.SelectionService = (*Service)(nil)
