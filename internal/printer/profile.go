// Package printer reads the parts of a printer profile that filament
// mapping depends on: how many material slots the printer has and whether
// it supports mapping at all.
package printer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultSlotCount is used when a profile does not declare a slot count.
	DefaultSlotCount = 4
	// MinSlotCount and MaxSlotCount bound any declared slot count.
	MinSlotCount = 1
	MaxSlotCount = 64
)

// Profile is a printer profile as far as filament mapping is concerned.
// Unset fields fall back to defaults.
type Profile struct {
	Name                    string `yaml:"name,omitempty"`
	MaterialSlotCount       *int   `yaml:"material_slot_count,omitempty"`
	SupportsFilamentMapping *bool  `yaml:"supports_filament_mapping,omitempty"`
}

// SlotCount returns the declared slot count clamped to
// [MinSlotCount, MaxSlotCount], or DefaultSlotCount when the profile is nil
// or does not declare one.
func (p *Profile) SlotCount() int {
	if p == nil || p.MaterialSlotCount == nil {
		return DefaultSlotCount
	}

	return ClampSlotCount(*p.MaterialSlotCount)
}

// SupportsMapping reports whether the printer accepts a filament mapping.
// A nil profile or an unset flag means no.
func (p *Profile) SupportsMapping() bool {
	if p == nil || p.SupportsFilamentMapping == nil {
		return false
	}

	return *p.SupportsFilamentMapping
}

// ClampSlotCount limits n to [MinSlotCount, MaxSlotCount].
func ClampSlotCount(n int) int {
	return max(MinSlotCount, min(n, MaxSlotCount))
}

// LoadFile loads a printer profile from a YAML file.
func LoadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read printer profile %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses a YAML printer profile. Unknown keys are ignored so a full
// printer profile can be passed as-is.
func Parse(data []byte) (*Profile, error) {
	var p Profile

	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse printer profile YAML: %w", err)
	}

	return &p, nil
}
