package interfaces

import (
	"context"

	domaintypes "trychooser/internal/domain/types"
)

// SelectionService drives one chooser: it applies events, reports the
// compiled result and can start over from the definition's initial state.
// It is implemented locally on top of a StateStore and remotely by the
// chooserd client.
type SelectionService interface {
	Snapshot(ctx context.Context) (domaintypes.Snapshot, error)
	Apply(ctx context.Context, events ...domaintypes.Event) (domaintypes.Snapshot, error)
	Reset(ctx context.Context) (domaintypes.Snapshot, error)
}
