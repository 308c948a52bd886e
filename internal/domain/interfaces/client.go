package interfaces

import (
	"context"

	domaintypes "trychooser/internal/domain/types"
)

// ChooserClient is how the CLI talks to a chooserd server.
type ChooserClient interface {
	Definition(ctx context.Context) (domaintypes.Definition, domaintypes.Fingerprint, error)
	CreateSession(ctx context.Context) (domaintypes.Snapshot, error)
	Session(ctx context.Context, id domaintypes.SessionID) (domaintypes.Snapshot, error)
	ApplyEvents(ctx context.Context, id domaintypes.SessionID, events []domaintypes.Event) (domaintypes.Snapshot, error)
	ResetSession(ctx context.Context, id domaintypes.SessionID) (domaintypes.Snapshot, error)
	DeleteSession(ctx context.Context, id domaintypes.SessionID) error
}
