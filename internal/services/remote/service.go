package remote

import (
	"context"

	"trychooser/internal/domain"
)

// Service drives one chooserd session. A zero session ID makes the first
// call create a session; ID reports it afterwards.
type Service struct {
	client domain.ChooserClient
	id     domain.SessionID
}

// New constructs a remote Service for session id.
func New(client domain.ChooserClient, id domain.SessionID) *Service {
	return &Service{client: client, id: id}
}

// ID returns the session the service is bound to.
func (s *Service) ID() domain.SessionID { return s.id }

// Snapshot fetches the session's current state.
func (s *Service) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	if s.id == "" {
		return s.create(ctx)
	}
	return s.client.Session(ctx, s.id)
}

// Apply sends events to the session.
func (s *Service) Apply(ctx context.Context, events ...domain.Event) (domain.Snapshot, error) {
	if s.id == "" {
		if _, err := s.create(ctx); err != nil {
			return domain.Snapshot{}, err
		}
	}
	return s.client.ApplyEvents(ctx, s.id, events)
}

// Reset returns the session to its initial state.
func (s *Service) Reset(ctx context.Context) (domain.Snapshot, error) {
	if s.id == "" {
		return s.create(ctx)
	}
	return s.client.ResetSession(ctx, s.id)
}

func (s *Service) create(ctx context.Context) (domain.Snapshot, error) {
	snap, err := s.client.CreateSession(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}
	s.id = snap.Session
	return snap, nil
}

// Compile-time assertion that Service implements domain.SelectionService.
var _ domain.SelectionService = (*Service)(nil)
