package definition

import "trychooser/internal/domain"

// Controls lists every control of def in definition order: radios, email
// radios, then each group's selectors, options and subgroups, then filter
// options and the profiling toggle. Radios are listed by name.
func Controls(def *domain.Definition) []domain.ControlInfo {
	var out []domain.ControlInfo
	for _, r := range def.Radios {
		out = append(out, domain.ControlInfo{ID: domain.ControlID(r.Name), Kind: domain.KindRadio, Section: r.Section})
	}
	for _, r := range def.Email {
		out = append(out, domain.ControlInfo{ID: domain.ControlID(r.Name), Kind: domain.KindEmail})
	}
	for _, g := range def.Groups {
		out = append(out,
			domain.ControlInfo{ID: domain.AllSelector(g.Name), Kind: domain.KindAll, Group: g.Name, Section: g.Section},
			domain.ControlInfo{ID: domain.NoneSelector(g.Name), Kind: domain.KindNone, Group: g.Name, Section: g.Section},
		)
		out = appendOptions(out, g, "", g.Options)
		for _, s := range g.Subgroups {
			out = append(out, domain.ControlInfo{
				ID:       s.Selector(),
				Kind:     domain.KindSubgroup,
				Group:    g.Name,
				Subgroup: s.Name,
				Section:  g.Section,
				Value:    s.Value,
				Project:  s.Project,
			})
			out = appendOptions(out, g, s.Name, s.Options)
		}
	}
	for _, f := range def.Filters {
		for _, o := range f.Options {
			out = append(out, domain.ControlInfo{ID: o.ID, Kind: domain.KindFilter, Section: f.Section, Value: o.Value})
		}
	}
	if def.Profile != nil {
		out = append(out, domain.ControlInfo{ID: def.Profile.ID, Kind: domain.KindProfile})
	}
	return out
}

func appendOptions(out []domain.ControlInfo, g domain.Group, subgroup string, opts []domain.Option) []domain.ControlInfo {
	for _, o := range opts {
		out = append(out, domain.ControlInfo{
			ID:         o.ID,
			Kind:       domain.KindOption,
			Group:      g.Name,
			Subgroup:   subgroup,
			Section:    g.Section,
			Value:      o.Value,
			Nondefault: o.Nondefault,
			Project:    o.Project,
		})
	}
	return out
}
