package filament

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"filament-mapper/internal/diagnostic"
)

// Project is the list of filaments a print uses, in tool order.
type Project struct {
	Name      string       `yaml:"name,omitempty"`
	Filaments []Descriptor `yaml:"filaments"`
}

// projectFile mirrors Project with an optional index so a missing index
// can be told apart from T0.
type projectFile struct {
	Name      string `yaml:"name"`
	Filaments []struct {
		Index      *int    `yaml:"index"`
		Name       string  `yaml:"name"`
		Type       string  `yaml:"type"`
		Color      string  `yaml:"color"`
		UsageGrams float64 `yaml:"usage_grams"`
	} `yaml:"filaments"`
}

// LoadFile loads and parses a YAML project file from the given path.
func LoadFile(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Project, defaulting missing indexes to the
// filament's position in the list.
func Parse(data []byte) (*Project, error) {
	var pf projectFile

	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("failed to parse project YAML: %w", err)
	}

	project := &Project{
		Name:      pf.Name,
		Filaments: make([]Descriptor, 0, len(pf.Filaments)),
	}

	for i, f := range pf.Filaments {
		d := Descriptor{
			Index:      i,
			Name:       f.Name,
			Type:       f.Type,
			Color:      f.Color,
			UsageGrams: f.UsageGrams,
		}
		if f.Index != nil {
			d.Index = *f.Index
		}

		project.Filaments = append(project.Filaments, d)
	}

	return project, nil
}

// Marshal serializes a Project to YAML.
func Marshal(p *Project) ([]byte, error) {
	return yaml.Marshal(p)
}

// Validate checks descriptor indexes and usage values.
func Validate(p *Project) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if p == nil {
		res.AddError(diagnostic.CodeInvalidDescriptor, "project is nil", diagnostic.NoSlot)
		return res
	}

	seen := map[int]int{} // index -> position

	for pos, d := range p.Filaments {
		if d.Index < 0 {
			res.AddError(diagnostic.CodeInvalidDescriptor,
				fmt.Sprintf("filament %q has negative index %d", d.Name, d.Index), diagnostic.NoSlot, pos)

			continue
		}

		if d.UsageGrams < 0 {
			res.AddError(diagnostic.CodeInvalidDescriptor,
				fmt.Sprintf("filament %q has negative usage %.1fg", d.Name, d.UsageGrams), diagnostic.NoSlot, pos)
		}

		if first, ok := seen[d.Index]; ok {
			res.AddError(diagnostic.CodeDuplicateIndex,
				fmt.Sprintf("index %d is used by more than one filament", d.Index), diagnostic.NoSlot, first, pos)

			continue
		}

		seen[d.Index] = pos
	}

	return res
}

// TotalUsage returns the summed estimated usage in grams.
func (p *Project) TotalUsage() float64 {
	total := 0.0
	for _, d := range p.Filaments {
		total += d.UsageGrams
	}

	return total
}
