package jobconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"filament-mapper/internal/mapping"
)

// CurrentVersion is written to every exported file.
const CurrentVersion = "1"

// JobMapping is the serialized form of a committed mapping.
type JobMapping struct {
	Version   string  `yaml:"version"`
	Printer   string  `yaml:"printer,omitempty"`
	SlotCount int     `yaml:"slot_count"`
	Entries   []Entry `yaml:"entries"`
	Conflicts []int   `yaml:"conflicts,flow,omitempty"`
}

// Entry maps one filament to one slot.
type Entry struct {
	// Filament is the tool index of the filament (T<n>).
	Filament int    `yaml:"filament"`
	Name     string `yaml:"name,omitempty"`
	Slot     int    `yaml:"slot"`
}

// Export captures the store's current mapping.
func Export(store *mapping.Store, printerName string) *JobMapping {
	descriptors := store.Descriptors()
	slots := store.Mapping()

	job := &JobMapping{
		Version:   CurrentVersion,
		Printer:   printerName,
		SlotCount: store.SlotCount(),
		Entries:   make([]Entry, len(slots)),
		Conflicts: store.Conflicts(),
	}

	for i, slot := range slots {
		job.Entries[i] = Entry{
			Filament: descriptors[i].Index,
			Name:     descriptors[i].Name,
			Slot:     slot,
		}
	}

	return job
}

// Values returns the slot of every entry, in entry order.
func (j *JobMapping) Values() []int {
	values := make([]int, len(j.Entries))
	for i, e := range j.Entries {
		values[i] = e.Slot
	}

	return values
}

// Marshal serializes a JobMapping to YAML.
func Marshal(j *JobMapping) ([]byte, error) {
	return yaml.Marshal(j)
}

// WriteFile writes a JobMapping to the given path.
func WriteFile(j *JobMapping, path string) error {
	data, err := Marshal(j)
	if err != nil {
		return fmt.Errorf("failed to marshal job mapping: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write job mapping %s: %w", path, err)
	}

	return nil
}

// Parse parses YAML data into a JobMapping.
func Parse(data []byte) (*JobMapping, error) {
	var j JobMapping

	if err := yaml.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("failed to parse job mapping YAML: %w", err)
	}

	if j.Version == "" {
		j.Version = CurrentVersion
	}

	if j.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported job mapping version %q", j.Version)
	}

	return &j, nil
}

// LoadFile loads a JobMapping from the given path.
func LoadFile(path string) (*JobMapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job mapping %s: %w", path, err)
	}

	return Parse(data)
}
