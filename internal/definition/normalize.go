package definition

import (
	"trychooser/internal/compile"
	"trychooser/internal/domain"
)

// DefaultProfileID is the control ID given to a profiling toggle without one.
const DefaultProfileID domain.ControlID = "profile"

// Normalize fills in defaults in place.
func Normalize(def *domain.Definition) {
	if def.PrimarySection == "" {
		def.PrimarySection = compile.DefaultPrimarySection
	}
	for i := range def.Radios {
		normalizeRadio(&def.Radios[i])
	}
	for i := range def.Email {
		normalizeRadio(&def.Email[i])
	}
	for i := range def.Groups {
		g := &def.Groups[i]
		normalizeOptions(g.Options)
		for j := range g.Subgroups {
			s := &g.Subgroups[j]
			if s.Value == "" {
				s.Value = s.Name
			}
			normalizeOptions(s.Options)
		}
	}
	for i := range def.Filters {
		for j := range def.Filters[i].Options {
			o := &def.Filters[i].Options[j]
			if o.ID == "" {
				o.ID = domain.ControlID(o.Value)
			}
		}
	}
	if def.Profile != nil && def.Profile.ID == "" {
		def.Profile.ID = DefaultProfileID
	}
}

func normalizeRadio(r *domain.Radio) {
	if r.Name == "" {
		r.Name = r.Section
	}
}

func normalizeOptions(opts []domain.Option) {
	for i := range opts {
		if opts[i].ID == "" {
			opts[i].ID = domain.ControlID(opts[i].Value)
		}
	}
}
