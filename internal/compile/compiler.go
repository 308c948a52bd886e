package compile

import (
	"strings"

	"trychooser/internal/domain"
	"trychooser/internal/filter"
)

const (
	// Prefix starts every compiled string.
	Prefix = "try:"
	// ProfileArg is appended when the profiling toggle is checked.
	ProfileArg = "mozharness: --spsProfile"
	// NoJobsChosen replaces the output when the primary section is "none".
	NoJobsChosen = "(NO JOBS CHOSEN)"
	// DefaultPrimarySection is used when the definition does not name one.
	DefaultPrimarySection = "p"

	emailDefault = "on"
	nameNone     = "none"
	nameAll      = "all"

	enabledOpacity  = 1.0
	disabledOpacity = 0.5
)

// DefaultPrivilegedProjects are the project tags that switch filters off for
// the group being compiled once any checked option carries them.
var DefaultPrivilegedProjects = []string{"android", "b2g"}

// Compiler compiles states of a single definition.
type Compiler struct {
	def        *domain.Definition
	primary    string
	privileged map[string]struct{}
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithPrivilegedProjects replaces DefaultPrivilegedProjects.
func WithPrivilegedProjects(projects ...string) Option {
	return func(c *Compiler) {
		c.privileged = make(map[string]struct{}, len(projects))
		for _, p := range projects {
			c.privileged[p] = struct{}{}
		}
	}
}

// New returns a Compiler for def.
func New(def *domain.Definition, opts ...Option) *Compiler {
	c := &Compiler{def: def, primary: def.PrimarySection}
	if c.primary == "" {
		c.primary = DefaultPrimarySection
	}
	WithPrivilegedProjects(DefaultPrivilegedProjects...)(c)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile renders st as try syntax. st must already be reconciled.
func (c *Compiler) Compile(st domain.State) domain.Result {
	var res domain.Result
	args := []string{Prefix}

	for _, radio := range c.def.Radios {
		if v := st.Selected[radio.Name]; v != "" {
			args = append(args, "-"+radio.Section+" "+v)
		}
	}
	for _, radio := range c.def.Email {
		if v := st.Selected[radio.Name]; v != "" && v != emailDefault {
			args = append(args, v)
		}
	}

	projects := make(map[string]struct{})
	primaryNone := false
	for i := range c.def.Groups {
		g := &c.def.Groups[i]
		if g.Section == "" {
			continue
		}

		names, none := groupNames(st, g, projects)
		if none && g.Section == c.primary {
			primaryNone = true
		}

		if fc, ok := c.def.Filter(g.Section); ok {
			gate := domain.FilterGate{Section: g.Section, Opacity: enabledOpacity}
			if c.anyPrivileged(projects) {
				gate.Disabled = true
				gate.Opacity = disabledOpacity
			}
			res.Filters = append(res.Filters, gate)

			if tokens, ok := checkedTokens(st, fc); ok && !gate.Disabled {
				suffix := filter.Suffix(tokens)
				for j := range names {
					names[j] += suffix
				}
			}
		}

		args = append(args, "-"+g.Section+" "+strings.Join(names, ","))
	}

	if c.def.Profile != nil && st.IsChecked(c.def.Profile.ID) {
		args = append(args, ProfileArg)
	}

	res.Syntax = strings.Join(args, " ")
	if primaryNone {
		res.Syntax = NoJobsChosen
		res.NoneChosen = true
	}
	return res
}

func (c *Compiler) anyPrivileged(projects map[string]struct{}) bool {
	for p := range c.privileged {
		if _, ok := projects[p]; ok {
			return true
		}
	}
	return false
}

// groupNames lists the names emitted for g and records the projects of
// explicitly listed options. Nondefault options appear once, either where
// the branch lists them or at the end. none reports that the none-selector
// decided the outcome.
func groupNames(st domain.State, g *domain.Group, projects map[string]struct{}) (names []string, none bool) {
	listed := make(map[domain.ControlID]bool)
	add := func(value, project string) {
		if value == "" {
			return
		}
		names = append(names, value)
		if project != "" {
			projects[project] = struct{}{}
		}
	}
	addOption := func(o domain.Option) {
		listed[o.ID] = true
		add(o.Value, o.Project)
	}
	addDefaults := func(opts []domain.Option) {
		for _, o := range opts {
			if !o.Nondefault && st.IsChecked(o.ID) {
				addOption(o)
			}
		}
	}

	switch {
	case st.IsChecked(domain.NoneSelector(g.Name)):
		names, none = []string{nameNone}, true
	case st.IsChecked(domain.AllSelector(g.Name)):
		names = []string{nameAll}
	case anySubgroupComplete(st, g):
		// Collapse complete subgroups into their own token. Options outside
		// the subgroups are listed whether or not they run by default.
		for _, o := range g.Options {
			if st.IsChecked(o.ID) {
				addOption(o)
			}
		}
		for _, s := range g.Subgroups {
			if st.IsChecked(s.Selector()) {
				add(s.Value, s.Project)
				continue
			}
			addDefaults(s.Options)
		}
	default:
		addDefaults(g.Options)
		for _, s := range g.Subgroups {
			addDefaults(s.Options)
		}
	}

	appendNondefault := func(opts []domain.Option) {
		for _, o := range opts {
			if o.Nondefault && o.Value != "" && st.IsChecked(o.ID) && !listed[o.ID] {
				names = append(names, o.Value)
			}
		}
	}
	appendNondefault(g.Options)
	for _, s := range g.Subgroups {
		appendNondefault(s.Options)
	}
	return names, none
}

func anySubgroupComplete(st domain.State, g *domain.Group) bool {
	for _, s := range g.Subgroups {
		if st.IsChecked(s.Selector()) {
			return true
		}
	}
	return false
}

// checkedTokens collects the signed tokens of every checked filter option.
// ok is false when no filter option is checked.
func checkedTokens(st domain.State, fc domain.FilterControl) (tokens []string, ok bool) {
	for _, o := range fc.Options {
		if st.IsChecked(o.ID) {
			ok = true
			tokens = append(tokens, filter.Split(o.Value)...)
		}
	}
	return tokens, ok
}
