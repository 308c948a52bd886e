package types

// Option is a leaf checkbox inside a group or subgroup.
type Option struct {
	ID         ControlID `json:"id,omitempty" yaml:"id,omitempty"`
	Value      string    `json:"value" yaml:"value"`
	Nondefault bool      `json:"nondefault,omitempty" yaml:"nondefault,omitempty"`
	Project    string    `json:"project,omitempty" yaml:"project,omitempty"`
	Checked    bool      `json:"checked,omitempty" yaml:"checked,omitempty"`
}

// Subgroup is a nested collection of options headed by its own all-selector.
// The selector's control ID is Name; when the whole subgroup is selected the
// compiler emits Value instead of enumerating the members.
type Subgroup struct {
	Name    string   `json:"name" yaml:"name"`
	Value   string   `json:"value,omitempty" yaml:"value,omitempty"`
	Project string   `json:"project,omitempty" yaml:"project,omitempty"`
	Checked bool     `json:"checked,omitempty" yaml:"checked,omitempty"`
	Options []Option `json:"options" yaml:"options"`
}

// Selector returns the control ID of the subgroup's all-selector.
func (s Subgroup) Selector() ControlID { return ControlID(s.Name) }

// Group is a named collection of options bound to a try section ("p", "u",
// "t"). All and None hold the initial state of the aggregate selectors.
type Group struct {
	Name      string     `json:"name" yaml:"name"`
	Section   string     `json:"section,omitempty" yaml:"section,omitempty"`
	All       bool       `json:"all,omitempty" yaml:"all,omitempty"`
	None      bool       `json:"none,omitempty" yaml:"none,omitempty"`
	Options   []Option   `json:"options,omitempty" yaml:"options,omitempty"`
	Subgroups []Subgroup `json:"subgroups,omitempty" yaml:"subgroups,omitempty"`
}

// Choice is one value of a radio.
type Choice struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// Radio is a single-choice control. A sectioned radio emits
// "-<section> <value>"; an email-style radio emits its raw value.
type Radio struct {
	Name     string   `json:"name" yaml:"name"`
	Section  string   `json:"section,omitempty" yaml:"section,omitempty"`
	Choices  []Choice `json:"choices" yaml:"choices"`
	Selected string   `json:"selected,omitempty" yaml:"selected,omitempty"`
}

// HasChoice reports whether value is one of the radio's choices.
func (r Radio) HasChoice(value string) bool {
	for _, c := range r.Choices {
		if c.Value == value {
			return true
		}
	}
	return false
}

// FilterOption is a checkbox whose value is a comma-separated list of signed
// filter tokens ("windows,-debug").
type FilterOption struct {
	ID      ControlID `json:"id,omitempty" yaml:"id,omitempty"`
	Value   string    `json:"value" yaml:"value"`
	Checked bool      `json:"checked,omitempty" yaml:"checked,omitempty"`
}

// FilterControl is the filter checkbox set attached to a group's section.
type FilterControl struct {
	Section string         `json:"section" yaml:"section"`
	Options []FilterOption `json:"options" yaml:"options"`
}

// Toggle is a standalone checkbox.
type Toggle struct {
	ID      ControlID `json:"id" yaml:"id"`
	Checked bool      `json:"checked,omitempty" yaml:"checked,omitempty"`
}

// Definition is the static tree of controls a chooser is built from.
type Definition struct {
	Title          string          `json:"title,omitempty" yaml:"title,omitempty"`
	PrimarySection string          `json:"primary_section,omitempty" yaml:"primary_section,omitempty"`
	Radios         []Radio         `json:"radios,omitempty" yaml:"radios,omitempty"`
	Email          []Radio         `json:"email,omitempty" yaml:"email,omitempty"`
	Groups         []Group         `json:"groups,omitempty" yaml:"groups,omitempty"`
	Filters        []FilterControl `json:"filters,omitempty" yaml:"filters,omitempty"`
	Profile        *Toggle         `json:"profile,omitempty" yaml:"profile,omitempty"`
}

// Filter returns the filter control bound to section, if any.
func (d *Definition) Filter(section string) (FilterControl, bool) {
	for _, f := range d.Filters {
		if f.Section == section {
			return f, true
		}
	}
	return FilterControl{}, false
}
