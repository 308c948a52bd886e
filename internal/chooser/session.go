package chooser

import (
	"fmt"

	"trychooser/internal/compile"
	"trychooser/internal/definition"
	"trychooser/internal/domain"
	"trychooser/internal/reconcile"
)

// Session is the selection state of one chooser plus its last result.
type Session struct {
	def      *domain.Definition
	fp       domain.Fingerprint
	rec      *reconcile.Reconciler
	compiler *compile.Compiler

	state  domain.State
	result domain.Result
}

// New starts a session in the definition's initial state. def must be
// normalised and valid; see definition.Load.
func New(def *domain.Definition, opts ...compile.Option) *Session {
	s := &Session{
		def:      def,
		fp:       definition.Fingerprint(def),
		rec:      reconcile.New(def),
		compiler: compile.New(def, opts...),
	}
	s.reset()
	return s
}

// Definition returns the definition the session was built from.
func (s *Session) Definition() *domain.Definition { return s.def }

// Fingerprint returns the definition's fingerprint.
func (s *Session) Fingerprint() domain.Fingerprint { return s.fp }

// Result returns the result of the last compilation.
func (s *Session) Result() domain.Result { return s.result }

// Snapshot returns a copy of the current state with its result.
func (s *Session) Snapshot() domain.Snapshot {
	return domain.Snapshot{
		Fingerprint: s.fp,
		State:       s.state.Clone(),
		Groups:      s.rec.Modes(s.state),
		Result:      s.result,
	}
}

// Apply runs events in order and recompiles. Either every event is applied
// or none is.
func (s *Session) Apply(events ...domain.Event) (domain.Snapshot, error) {
	next := s.state.Clone()
	for i, ev := range events {
		if err := s.rec.Apply(next, ev); err != nil {
			return domain.Snapshot{}, fmt.Errorf("event %d: %w", i, err)
		}
	}
	s.state = next
	s.result = s.compiler.Compile(s.state)
	return s.Snapshot(), nil
}

// Reset returns to the definition's initial state.
func (s *Session) Reset() domain.Snapshot {
	s.reset()
	return s.Snapshot()
}

// Restore replaces the state with a previously saved one. Controls and radio
// values the definition does not know are dropped and the aggregates are
// recomputed, so a hand-edited or stale state still satisfies the group
// invariants. Radios missing from st keep their initial selection.
func (s *Session) Restore(st domain.State) domain.Snapshot {
	next := s.rec.Initial()
	next.Checked = make(map[domain.ControlID]bool, len(st.Checked))
	for id, checked := range st.Checked {
		if checked && s.rec.Known(id) {
			next.Checked[id] = true
		}
	}
	for name, value := range st.Selected {
		// Unknown radios and values keep the initial selection.
		_ = s.rec.Apply(next, domain.Select(name, value))
	}
	s.rec.Sync(next)
	s.state = next
	s.result = s.compiler.Compile(s.state)
	return s.Snapshot()
}

// Controls lists the controls of the session's definition.
func (s *Session) Controls() []domain.ControlInfo {
	return definition.Controls(s.def)
}

func (s *Session) reset() {
	s.state = s.rec.Initial()
	s.result = s.compiler.Compile(s.state)
}
