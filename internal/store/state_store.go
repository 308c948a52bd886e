package store

import (
	"time"

	"trychooser/internal/domain"
)

const statesFilename = "states.json"

// StoredState is one saved selection.
type StoredState struct {
	State     domain.State `json:"state"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// StateFileStore persists selection state per definition fingerprint.
type StateFileStore struct {
	file *jsonMap[domain.Fingerprint, StoredState]
	now  func() time.Time
}

// NewStateFileStore returns a StateFileStore rooted at dir.
func NewStateFileStore(dir string) *StateFileStore {
	return &StateFileStore{
		file: newJSONMap[domain.Fingerprint, StoredState](dir, statesFilename),
		now:  time.Now,
	}
}

// Path returns the file the store writes to.
func (s *StateFileStore) Path() string { return s.file.path }

// SaveState writes the state for fp.
func (s *StateFileStore) SaveState(fp domain.Fingerprint, state domain.State) error {
	stored := StoredState{State: state.Clone(), UpdatedAt: s.now().UTC()}
	return s.file.update(func(states map[domain.Fingerprint]StoredState) bool {
		states[fp] = stored
		return true
	})
}

// LoadState retrieves the state saved for fp.
func (s *StateFileStore) LoadState(fp domain.Fingerprint) (domain.State, bool, error) {
	stored, ok, err := s.file.get(fp)
	if err != nil || !ok {
		return domain.State{}, false, err
	}
	return stored.State.Clone(), true, nil
}

// DeleteState forgets the state saved for fp. Deleting a missing entry is
// not an error.
func (s *StateFileStore) DeleteState(fp domain.Fingerprint) error {
	return s.file.update(func(states map[domain.Fingerprint]StoredState) bool {
		if _, ok := states[fp]; !ok {
			return false
		}
		delete(states, fp)
		return true
	})
}

// Entries returns every saved state keyed by fingerprint.
func (s *StateFileStore) Entries() (map[domain.Fingerprint]StoredState, error) {
	return s.file.all()
}

// Compile-time assertion that StateFileStore implements domain.StateStore.
var _ domain.StateStore = (*StateFileStore)(nil)
