package definition

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"trychooser/internal/domain"
)

// Validate checks a normalised definition and reports every problem found.
// The returned error wraps domain.ErrInvalidDefinition.
func Validate(def *domain.Definition) error {
	var errs *multierror.Error

	radios := make(map[string]bool)
	checkRadio := func(kind string, r domain.Radio, needSection bool) {
		switch {
		case r.Name == "":
			errs = multierror.Append(errs, fmt.Errorf("%s without a name", kind))
			return
		case radios[r.Name]:
			errs = multierror.Append(errs, fmt.Errorf("duplicate radio %q", r.Name))
		}
		radios[r.Name] = true
		if needSection && r.Section == "" {
			errs = multierror.Append(errs, fmt.Errorf("radio %q has no section", r.Name))
		}
		if len(r.Choices) == 0 {
			errs = multierror.Append(errs, fmt.Errorf("%s %q has no choices", kind, r.Name))
		}
		if r.Selected != "" && !r.HasChoice(r.Selected) {
			errs = multierror.Append(errs, fmt.Errorf("%s %q selects %q which is not one of its choices", kind, r.Name, r.Selected))
		}
	}
	for _, r := range def.Radios {
		checkRadio("radio", r, true)
	}
	for _, r := range def.Email {
		checkRadio("email radio", r, false)
	}

	groups := make(map[string]bool)
	sections := make(map[string]string)
	for _, g := range def.Groups {
		if g.Name == "" {
			errs = multierror.Append(errs, errors.New("group without a name"))
			continue
		}
		if groups[g.Name] {
			errs = multierror.Append(errs, fmt.Errorf("duplicate group %q", g.Name))
		}
		groups[g.Name] = true
		if g.Section != "" {
			if other, ok := sections[g.Section]; ok {
				errs = multierror.Append(errs, fmt.Errorf("groups %q and %q share section %q", other, g.Name, g.Section))
			}
			sections[g.Section] = g.Name
		}
		for _, s := range g.Subgroups {
			if s.Name == "" {
				errs = multierror.Append(errs, fmt.Errorf("group %q has a subgroup without a name", g.Name))
			}
		}
	}

	filters := make(map[string]bool)
	for _, f := range def.Filters {
		if _, ok := sections[f.Section]; !ok {
			errs = multierror.Append(errs, fmt.Errorf("filter section %q does not match any group", f.Section))
		}
		if filters[f.Section] {
			errs = multierror.Append(errs, fmt.Errorf("duplicate filter section %q", f.Section))
		}
		filters[f.Section] = true
	}

	seen := make(map[domain.ControlID]bool)
	for _, c := range Controls(def) {
		if c.Kind == domain.KindRadio || c.Kind == domain.KindEmail {
			continue
		}
		if c.ID == "" {
			errs = multierror.Append(errs, fmt.Errorf("%s in group %q has neither id nor value", c.Kind, c.Group))
			continue
		}
		if seen[c.ID] {
			errs = multierror.Append(errs, fmt.Errorf("duplicate control id %q", c.ID))
		}
		seen[c.ID] = true
	}

	if err := errs.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidDefinition, err)
	}
	return nil
}
