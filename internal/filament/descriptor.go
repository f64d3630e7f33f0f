package filament

import (
	"fmt"
	"strings"
)

// Descriptor is one filament used by the project.
type Descriptor struct {
	// Index is the 0-based tool index (T0, T1, ...). Stable identity.
	Index int `yaml:"index"`
	// Name is the filament profile name, e.g. "Generic PLA".
	Name string `yaml:"name"`
	// Type is the material type, e.g. "PLA", "PETG". Optional.
	Type string `yaml:"type,omitempty"`
	// Color is an opaque display color, usually "#rrggbb". Optional.
	Color string `yaml:"color,omitempty"`
	// UsageGrams is the estimated usage. Optional.
	UsageGrams float64 `yaml:"usage_grams,omitempty"`
}

// New returns a descriptor with the given index and name.
func New(index int, name string) Descriptor {
	return Descriptor{Index: index, Name: name}
}

// DisplayName returns "T<index>: <name>".
func (d Descriptor) DisplayName() string {
	return fmt.Sprintf("T%d: %s", d.Index, d.Name)
}

// Label returns the display name followed by the material type and the
// estimated usage when they are known.
func (d Descriptor) Label() string {
	var sb strings.Builder
	sb.WriteString(d.DisplayName())

	if d.Type != "" {
		fmt.Fprintf(&sb, " (%s)", d.Type)
	}

	if d.UsageGrams > 0 {
		fmt.Fprintf(&sb, " - %.1fg", d.UsageGrams)
	}

	return sb.String()
}
