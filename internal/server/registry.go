package server

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"

	"trychooser/internal/chooser"
	"trychooser/internal/compile"
	"trychooser/internal/domain"
)

// ErrSessionLimit is returned by Create when the registry is full.
var ErrSessionLimit = errors.New("too many sessions")

type entry struct {
	mu       sync.Mutex
	session  *chooser.Session
	lastUsed time.Time
}

// Registry holds the live sessions of one definition. Sessions idle for
// longer than the TTL are dropped; a TTL of zero keeps them forever. A
// positive limit bounds the number of live sessions.
type Registry struct {
	def         *domain.Definition
	compileOpts []compile.Option
	ttl         time.Duration
	limit       int
	now         func() time.Time
	sessions    *xsync.MapOf[domain.SessionID, *entry]
}

// NewRegistry returns an empty registry for def.
func NewRegistry(def *domain.Definition, ttl time.Duration, limit int, opts ...compile.Option) *Registry {
	return &Registry{
		def:         def,
		compileOpts: opts,
		ttl:         ttl,
		limit:       limit,
		now:         time.Now,
		sessions:    xsync.NewMapOf[domain.SessionID, *entry](),
	}
}

// Create starts a session and returns its ID and initial snapshot. When the
// registry is full, expired sessions are swept first.
func (r *Registry) Create() (domain.SessionID, domain.Snapshot, error) {
	if r.limit > 0 && r.sessions.Size() >= r.limit {
		r.Expire()
		if r.sessions.Size() >= r.limit {
			return "", domain.Snapshot{}, fmt.Errorf("%w: limit is %d", ErrSessionLimit, r.limit)
		}
	}

	id := domain.SessionID(uuid.New().String())
	e := &entry{session: chooser.New(r.def, r.compileOpts...), lastUsed: r.now()}
	r.sessions.Store(id, e)

	snap := e.session.Snapshot()
	snap.Session = id
	return id, snap, nil
}

// Do runs fn with exclusive access to the session and returns the snapshot
// fn produced, stamped with the session ID.
func (r *Registry) Do(id domain.SessionID, fn func(*chooser.Session) (domain.Snapshot, error)) (domain.Snapshot, error) {
	e, ok := r.sessions.Load(id)
	if !ok {
		return domain.Snapshot{}, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if r.expired(e) {
		r.sessions.Delete(id)
		return domain.Snapshot{}, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	e.lastUsed = r.now()

	snap, err := fn(e.session)
	if err != nil {
		return domain.Snapshot{}, err
	}
	snap.Session = id
	return snap, nil
}

// Delete forgets a session.
func (r *Registry) Delete(id domain.SessionID) error {
	if _, ok := r.sessions.LoadAndDelete(id); !ok {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	return nil
}

// Expire drops every session idle for longer than the TTL and reports how
// many were dropped.
func (r *Registry) Expire() int {
	if r.ttl <= 0 {
		return 0
	}
	n := 0
	r.sessions.Range(func(id domain.SessionID, e *entry) bool {
		e.mu.Lock()
		defer e.mu.Unlock()
		if r.expired(e) {
			r.sessions.Delete(id)
			n++
		}
		return true
	})
	return n
}

// Len returns the number of live sessions.
func (r *Registry) Len() int { return r.sessions.Size() }

// expired must be called with e.mu held.
func (r *Registry) expired(e *entry) bool {
	return r.ttl > 0 && r.now().Sub(e.lastUsed) > r.ttl
}
