package types

// State is the mutable part of a chooser: which checkboxes are checked and
// which value each radio holds. Missing entries are unchecked.
type State struct {
	Checked  map[ControlID]bool `json:"checked"`
	Selected map[string]string  `json:"selected"`
}

// NewState returns an empty, ready to use State.
func NewState() State {
	return State{
		Checked:  make(map[ControlID]bool),
		Selected: make(map[string]string),
	}
}

// IsChecked reports whether id is checked.
func (s State) IsChecked(id ControlID) bool { return s.Checked[id] }

// Set records the checked status of id. Unchecked controls are removed so
// equal states serialise identically.
func (s State) Set(id ControlID, checked bool) {
	if checked {
		s.Checked[id] = true
		return
	}
	delete(s.Checked, id)
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := State{
		Checked:  make(map[ControlID]bool, len(s.Checked)),
		Selected: make(map[string]string, len(s.Selected)),
	}
	for k, v := range s.Checked {
		if v {
			out.Checked[k] = true
		}
	}
	for k, v := range s.Selected {
		out.Selected[k] = v
	}
	return out
}

// Event is one user interaction. Checkbox events set Control and Checked;
// radio events set Radio and Value.
type Event struct {
	Control ControlID `json:"control,omitempty"`
	Checked bool      `json:"checked,omitempty"`
	Radio   string    `json:"radio,omitempty"`
	Value   string    `json:"value,omitempty"`
}

// Check returns an event checking id.
func Check(id ControlID) Event { return Event{Control: id, Checked: true} }

// Uncheck returns an event unchecking id.
func Uncheck(id ControlID) Event { return Event{Control: id} }

// Select returns an event choosing value on the named radio.
func Select(radio, value string) Event { return Event{Radio: radio, Value: value} }

// IsRadio reports whether the event targets a radio.
func (e Event) IsRadio() bool { return e.Radio != "" }
