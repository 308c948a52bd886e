package reconcile

import (
	"fmt"

	"trychooser/internal/domain"
)

type member struct {
	id         domain.ControlID
	nondefault bool
}

type subgroupIndex struct {
	name     string
	selector domain.ControlID
	members  []member
}

type groupIndex struct {
	name      string
	all, none domain.ControlID
	// members holds every option of the group, every subgroup option and the
	// subgroup selectors, in definition order.
	members   []member
	subgroups []subgroupIndex
}

type location struct {
	kind     domain.ControlKind
	group    int
	subgroup int
}

// Reconciler applies events to a State and re-establishes the aggregate
// invariants of the definition it was built from.
type Reconciler struct {
	def      *domain.Definition
	groups   []groupIndex
	byName   map[string]int
	controls map[domain.ControlID]location
	radios   map[string]domain.Radio
}

// New indexes def. The definition is expected to have passed validation;
// duplicate control IDs resolve to the last occurrence.
func New(def *domain.Definition) *Reconciler {
	r := &Reconciler{
		def:      def,
		byName:   make(map[string]int, len(def.Groups)),
		controls: make(map[domain.ControlID]location),
		radios:   make(map[string]domain.Radio, len(def.Radios)+len(def.Email)),
	}

	for gi, g := range def.Groups {
		gx := groupIndex{
			name: g.Name,
			all:  domain.AllSelector(g.Name),
			none: domain.NoneSelector(g.Name),
		}
		r.controls[gx.all] = location{kind: domain.KindAll, group: gi, subgroup: -1}
		r.controls[gx.none] = location{kind: domain.KindNone, group: gi, subgroup: -1}

		for _, o := range g.Options {
			gx.members = append(gx.members, member{id: o.ID, nondefault: o.Nondefault})
			r.controls[o.ID] = location{kind: domain.KindOption, group: gi, subgroup: -1}
		}
		for si, s := range g.Subgroups {
			sx := subgroupIndex{name: s.Name, selector: s.Selector()}
			r.controls[sx.selector] = location{kind: domain.KindSubgroup, group: gi, subgroup: si}
			gx.members = append(gx.members, member{id: sx.selector})
			for _, o := range s.Options {
				m := member{id: o.ID, nondefault: o.Nondefault}
				sx.members = append(sx.members, m)
				gx.members = append(gx.members, m)
				r.controls[o.ID] = location{kind: domain.KindOption, group: gi, subgroup: si}
			}
			gx.subgroups = append(gx.subgroups, sx)
		}

		r.byName[g.Name] = gi
		r.groups = append(r.groups, gx)
	}

	for _, f := range def.Filters {
		for _, o := range f.Options {
			r.controls[o.ID] = location{kind: domain.KindFilter, group: -1, subgroup: -1}
		}
	}
	if def.Profile != nil {
		r.controls[def.Profile.ID] = location{kind: domain.KindProfile, group: -1, subgroup: -1}
	}
	for _, radio := range def.Radios {
		r.radios[radio.Name] = radio
	}
	for _, radio := range def.Email {
		r.radios[radio.Name] = radio
	}
	return r
}

// Definition returns the definition the reconciler was built from.
func (r *Reconciler) Definition() *domain.Definition { return r.def }

// Initial builds the state encoded by the definition's checked attributes,
// applies initially checked all-selectors and then none-selectors, and runs
// the sync pass over every group.
func (r *Reconciler) Initial() domain.State {
	st := domain.NewState()
	for _, g := range r.def.Groups {
		st.Set(domain.AllSelector(g.Name), g.All)
		st.Set(domain.NoneSelector(g.Name), g.None)
		for _, o := range g.Options {
			st.Set(o.ID, o.Checked)
		}
		for _, s := range g.Subgroups {
			st.Set(s.Selector(), s.Checked)
			for _, o := range s.Options {
				st.Set(o.ID, o.Checked)
			}
		}
	}
	for _, f := range r.def.Filters {
		for _, o := range f.Options {
			st.Set(o.ID, o.Checked)
		}
	}
	if r.def.Profile != nil {
		st.Set(r.def.Profile.ID, r.def.Profile.Checked)
	}
	for _, radio := range r.def.Radios {
		st.Selected[radio.Name] = radio.Selected
	}
	for _, radio := range r.def.Email {
		st.Selected[radio.Name] = radio.Selected
	}

	for i := range r.groups {
		if st.IsChecked(r.groups[i].all) {
			forceAll(st, &r.groups[i])
		}
	}
	for i := range r.groups {
		if st.IsChecked(r.groups[i].none) {
			forceNone(st, &r.groups[i])
		}
	}
	r.Sync(st)
	return st
}

// Apply performs one event against st: the leaf mutation, any forcing it
// implies, and the sync pass for the affected group. st is modified in place.
func (r *Reconciler) Apply(st domain.State, ev domain.Event) error {
	if ev.IsRadio() {
		radio, ok := r.radios[ev.Radio]
		if !ok {
			return fmt.Errorf("%w: %q", domain.ErrUnknownRadio, ev.Radio)
		}
		if !radio.HasChoice(ev.Value) {
			return fmt.Errorf("%w: %q for radio %q", domain.ErrUnknownChoice, ev.Value, ev.Radio)
		}
		st.Selected[ev.Radio] = ev.Value
		return nil
	}

	loc, ok := r.controls[ev.Control]
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownControl, ev.Control)
	}
	st.Set(ev.Control, ev.Checked)
	if loc.group < 0 {
		return nil
	}

	g := &r.groups[loc.group]
	if ev.Checked {
		switch loc.kind {
		case domain.KindAll:
			forceAll(st, g)
		case domain.KindNone:
			forceNone(st, g)
		case domain.KindSubgroup:
			forceSubgroup(st, &g.subgroups[loc.subgroup])
		}
	}
	syncGroup(st, g)
	return nil
}

// Sync recomputes every aggregate selector from the member state.
func (r *Reconciler) Sync(st domain.State) {
	for i := range r.groups {
		syncGroup(st, &r.groups[i])
	}
}

// Mode reports the aggregate state of the named group. Unknown groups report
// ModeNone.
func (r *Reconciler) Mode(st domain.State, group string) domain.GroupMode {
	gi, ok := r.byName[group]
	if !ok {
		return domain.ModeNone
	}
	g := &r.groups[gi]
	switch {
	case st.IsChecked(g.none):
		return domain.ModeNone
	case st.IsChecked(g.all):
		return domain.ModeAll
	default:
		return domain.ModeMixed
	}
}

// Modes reports the aggregate state of every group.
func (r *Reconciler) Modes(st domain.State) map[string]domain.GroupMode {
	out := make(map[string]domain.GroupMode, len(r.groups))
	for _, g := range r.groups {
		out[g.name] = r.Mode(st, g.name)
	}
	return out
}

// Known reports whether id names a checkbox of the definition.
func (r *Reconciler) Known(id domain.ControlID) bool {
	_, ok := r.controls[id]
	return ok
}

// forceAll checks every default member and unchecks the none-selector.
// Nondefault members are left alone.
func forceAll(st domain.State, g *groupIndex) {
	for _, m := range g.members {
		if !m.nondefault {
			st.Set(m.id, true)
		}
	}
	st.Set(g.none, false)
}

// forceNone unchecks every member, nondefault ones included, and the
// all-selector.
func forceNone(st domain.State, g *groupIndex) {
	for _, m := range g.members {
		st.Set(m.id, false)
	}
	st.Set(g.all, false)
}

func forceSubgroup(st domain.State, s *subgroupIndex) {
	for _, m := range s.members {
		if !m.nondefault {
			st.Set(m.id, true)
		}
	}
}

// syncGroup recomputes the subgroup selectors and then the group's own
// aggregates. The order matters: subgroup selectors are members of the group.
func syncGroup(st domain.State, g *groupIndex) {
	for i := range g.subgroups {
		s := &g.subgroups[i]
		st.Set(s.selector, uncheckedDefaults(st, s.members) == 0)
	}
	checked := 0
	for _, m := range g.members {
		if st.IsChecked(m.id) {
			checked++
		}
	}
	st.Set(g.none, checked == 0)
	st.Set(g.all, uncheckedDefaults(st, g.members) == 0)
}

func uncheckedDefaults(st domain.State, members []member) int {
	n := 0
	for _, m := range members {
		if !m.nondefault && !st.IsChecked(m.id) {
			n++
		}
	}
	return n
}
