package types

// GroupMode is the aggregate state of a group.
type GroupMode string

const (
	ModeAll   GroupMode = "all"
	ModeNone  GroupMode = "none"
	ModeMixed GroupMode = "mixed"
)

// FilterGate tells the presentation layer whether a section's filter control
// is usable.
type FilterGate struct {
	Section  string  `json:"section"`
	Disabled bool    `json:"disabled"`
	Opacity  float64 `json:"opacity"`
}

// Result is the output of one compilation.
type Result struct {
	Syntax     string       `json:"syntax"`
	NoneChosen bool         `json:"none_chosen"`
	Filters    []FilterGate `json:"filters,omitempty"`
}

// Snapshot is everything a client needs to redraw after an event.
type Snapshot struct {
	Session     SessionID            `json:"session,omitempty"`
	Fingerprint Fingerprint          `json:"fingerprint"`
	State       State                `json:"state"`
	Groups      map[string]GroupMode `json:"groups"`
	Result      Result               `json:"result"`
}

// ControlKind classifies a control for listings.
type ControlKind string

const (
	KindOption   ControlKind = "option"
	KindAll      ControlKind = "all"
	KindNone     ControlKind = "none"
	KindSubgroup ControlKind = "subgroup"
	KindFilter   ControlKind = "filter"
	KindProfile  ControlKind = "profile"
	KindRadio    ControlKind = "radio"
	KindEmail    ControlKind = "email"
)

// ControlInfo describes one control of a definition.
type ControlInfo struct {
	ID         ControlID   `json:"id"`
	Kind       ControlKind `json:"kind"`
	Group      string      `json:"group,omitempty"`
	Subgroup   string      `json:"subgroup,omitempty"`
	Section    string      `json:"section,omitempty"`
	Value      string      `json:"value,omitempty"`
	Nondefault bool        `json:"nondefault,omitempty"`
	Project    string      `json:"project,omitempty"`
}
