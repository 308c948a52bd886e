package definition

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"trychooser/internal/domain"
)

// hclFile is the top-level structure of an HCL definition.
type hclFile struct {
	Title          string      `hcl:"title,optional"`
	PrimarySection string      `hcl:"primary_section,optional"`
	Radios         []hclRadio  `hcl:"radio,block"`
	Email          []hclRadio  `hcl:"email,block"`
	Groups         []hclGroup  `hcl:"group,block"`
	Filters        []hclFilter `hcl:"filter,block"`
	Profile        *hclToggle  `hcl:"profile,block"`
}

type hclChoice struct {
	Value string `hcl:"value,label"`
	Label string `hcl:"label,optional"`
}

type hclRadio struct {
	Name     string      `hcl:"name,label"`
	Section  string      `hcl:"section,optional"`
	Selected string      `hcl:"selected,optional"`
	Choices  []hclChoice `hcl:"choice,block"`
}

// hclOption is labelled with its control ID; the value defaults to the ID
// when the attribute is absent.
type hclOption struct {
	ID         string  `hcl:"id,label"`
	Value      *string `hcl:"value,optional"`
	Nondefault bool    `hcl:"nondefault,optional"`
	Project    string  `hcl:"project,optional"`
	Checked    bool    `hcl:"checked,optional"`
}

type hclSubgroup struct {
	Name    string      `hcl:"name,label"`
	Value   string      `hcl:"value,optional"`
	Project string      `hcl:"project,optional"`
	Checked bool        `hcl:"checked,optional"`
	Options []hclOption `hcl:"option,block"`
}

type hclGroup struct {
	Name      string        `hcl:"name,label"`
	Section   string        `hcl:"section,optional"`
	All       bool          `hcl:"all,optional"`
	None      bool          `hcl:"none,optional"`
	Options   []hclOption   `hcl:"option,block"`
	Subgroups []hclSubgroup `hcl:"subgroup,block"`
}

type hclFilterOption struct {
	ID      string `hcl:"id,label"`
	Value   string `hcl:"value"`
	Checked bool   `hcl:"checked,optional"`
}

type hclFilter struct {
	Section string            `hcl:"section,label"`
	Options []hclFilterOption `hcl:"option,block"`
}

type hclToggle struct {
	ID      string `hcl:"id,label"`
	Checked bool   `hcl:"checked,optional"`
}

// ParseHCL decodes, normalises and validates an HCL definition. filename is
// only used in diagnostics.
func ParseHCL(data []byte, filename string) (*domain.Definition, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var parsed hclFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}
	return finish(parsed.definition())
}

func (f *hclFile) definition() *domain.Definition {
	def := &domain.Definition{
		Title:          f.Title,
		PrimarySection: f.PrimarySection,
	}
	for _, r := range f.Radios {
		def.Radios = append(def.Radios, r.radio())
	}
	for _, r := range f.Email {
		def.Email = append(def.Email, r.radio())
	}
	for _, g := range f.Groups {
		group := domain.Group{
			Name:    g.Name,
			Section: g.Section,
			All:     g.All,
			None:    g.None,
			Options: options(g.Options),
		}
		for _, s := range g.Subgroups {
			group.Subgroups = append(group.Subgroups, domain.Subgroup{
				Name:    s.Name,
				Value:   s.Value,
				Project: s.Project,
				Checked: s.Checked,
				Options: options(s.Options),
			})
		}
		def.Groups = append(def.Groups, group)
	}
	for _, fc := range f.Filters {
		control := domain.FilterControl{Section: fc.Section}
		for _, o := range fc.Options {
			control.Options = append(control.Options, domain.FilterOption{
				ID:      domain.ControlID(o.ID),
				Value:   o.Value,
				Checked: o.Checked,
			})
		}
		def.Filters = append(def.Filters, control)
	}
	if f.Profile != nil {
		def.Profile = &domain.Toggle{ID: domain.ControlID(f.Profile.ID), Checked: f.Profile.Checked}
	}
	return def
}

func (r hclRadio) radio() domain.Radio {
	radio := domain.Radio{Name: r.Name, Section: r.Section, Selected: r.Selected}
	for _, c := range r.Choices {
		radio.Choices = append(radio.Choices, domain.Choice{Value: c.Value, Label: c.Label})
	}
	return radio
}

func options(in []hclOption) []domain.Option {
	var out []domain.Option
	for _, o := range in {
		value := o.ID
		if o.Value != nil {
			value = *o.Value
		}
		out = append(out, domain.Option{
			ID:         domain.ControlID(o.ID),
			Value:      value,
			Nondefault: o.Nondefault,
			Project:    o.Project,
			Checked:    o.Checked,
		})
	}
	return out
}
