package store

import "trychooser/internal/domain"

const sessionsFilename = "sessions.json"

// SessionFileStore remembers the chooserd session bound to each server URL.
type SessionFileStore struct {
	file *jsonMap[string, domain.SessionID]
}

// NewSessionFileStore returns a SessionFileStore rooted at dir.
func NewSessionFileStore(dir string) *SessionFileStore {
	return &SessionFileStore{file: newJSONMap[string, domain.SessionID](dir, sessionsFilename)}
}

// SaveSession records id as the session for server.
func (s *SessionFileStore) SaveSession(server string, id domain.SessionID) error {
	return s.file.update(func(sessions map[string]domain.SessionID) bool {
		if sessions[server] == id {
			return false
		}
		sessions[server] = id
		return true
	})
}

// LoadSession retrieves the session recorded for server.
func (s *SessionFileStore) LoadSession(server string) (domain.SessionID, bool, error) {
	return s.file.get(server)
}

// DeleteSession forgets the session recorded for server.
func (s *SessionFileStore) DeleteSession(server string) error {
	return s.file.update(func(sessions map[string]domain.SessionID) bool {
		if _, ok := sessions[server]; !ok {
			return false
		}
		delete(sessions, server)
		return true
	})
}

// Compile-time assertion that SessionFileStore implements domain.SessionStore.
var _ domain.SessionStore = (*SessionFileStore)(nil)
