package interfaces

import domaintypes "trychooser/internal/domain/types"

// StateStore persists selection state per definition fingerprint.
type StateStore interface {
	SaveState(fp domaintypes.Fingerprint, state domaintypes.State) error
	LoadState(fp domaintypes.Fingerprint) (domaintypes.State, bool, error)
	DeleteState(fp domaintypes.Fingerprint) error
}

// SessionStore remembers which chooserd session the CLI drives, per server.
type SessionStore interface {
	SaveSession(server string, id domaintypes.SessionID) error
	LoadSession(server string) (domaintypes.SessionID, bool, error)
	DeleteSession(server string) error
}
