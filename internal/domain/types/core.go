package types

// ControlID identifies a checkbox: an option, an aggregate selector, a filter
// option or the profiling toggle.
type ControlID string

// String returns the string form of the control identifier.
func (id ControlID) String() string { return string(id) }

// Fingerprint is a short digest of a definition. Saved selection state is
// keyed by it so state is never applied to a different definition.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// SessionID identifies a selection session hosted by chooserd.
type SessionID string

// String returns the string form of the session identifier.
func (id SessionID) String() string { return string(id) }

const (
	// AllSuffix and NoneSuffix name a group's aggregate selectors:
	// "<group>/all" and "<group>/none".
	AllSuffix  = "/all"
	NoneSuffix = "/none"
)

// AllSelector returns the control ID of the group's all-selector.
func AllSelector(group string) ControlID { return ControlID(group + AllSuffix) }

// NoneSelector returns the control ID of the group's none-selector.
func NoneSelector(group string) ControlID { return ControlID(group + NoneSuffix) }
