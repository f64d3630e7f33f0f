package mapping

import (
	"fmt"
	"maps"
	"slices"

	"filament-mapper/internal/assign"
	"filament-mapper/internal/diagnostic"
	"filament-mapper/internal/filament"
)

// Store holds the current mapping for one session.
type Store struct {
	descriptors []filament.Descriptor
	slotCount   int
	mapping     []int

	// Derived on every mutation.
	conflictSet map[int]int
	conflicts   []int
	diags       diagnostic.Diagnostics
}

// New creates a Store with the default mapping for descriptors.
// It fails with assign.ErrInvalidInput when slotCount < 1.
func New(descriptors []filament.Descriptor, slotCount int) (*Store, error) {
	initial, err := assign.Default(len(descriptors), slotCount)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize mapping: %w", err)
	}

	s := &Store{
		descriptors: slices.Clone(descriptors),
		slotCount:   slotCount,
		mapping:     initial,
	}
	s.refresh(nil)

	return s, nil
}

// Len returns the number of filaments in the mapping.
func (s *Store) Len() int {
	return len(s.mapping)
}

// SlotCount returns the number of printer slots.
func (s *Store) SlotCount() int {
	return s.slotCount
}

// Descriptors returns a copy of the filament descriptors in mapping order.
func (s *Store) Descriptors() []filament.Descriptor {
	return slices.Clone(s.descriptors)
}

// Mapping returns a copy of the current mapping.
func (s *Store) Mapping() []int {
	return slices.Clone(s.mapping)
}

// Slot returns the slot assigned to the filament at position i.
func (s *Store) Slot(i int) (int, error) {
	if err := s.checkIndex(i); err != nil {
		return 0, err
	}

	return s.mapping[i], nil
}

// Conflicts returns the slots claimed by more than one filament as of the
// last mutation, ascending.
func (s *Store) Conflicts() []int {
	return slices.Clone(s.conflicts)
}

// ConflictSet returns slot -> assignee count for the conflicting slots as of
// the last mutation.
func (s *Store) ConflictSet() map[int]int {
	return maps.Clone(s.conflictSet)
}

// HasConflicts reports whether any slot is shared.
func (s *Store) HasConflicts() bool {
	return len(s.conflicts) > 0
}

// Assignees returns the positions of the filaments mapped to slot.
func (s *Store) Assignees(slot int) []int {
	return assign.Assignees(s.mapping, slot)
}

// Diagnostics returns the diagnostics produced by the last mutation:
// one slot_conflict warning per shared slot, plus a slot_ignored note for
// every out-of-range value that mutation dropped.
func (s *Store) Diagnostics() *diagnostic.Diagnostics {
	out := &diagnostic.Diagnostics{}
	out.Merge(s.diags)

	return out
}

// Reset restores the default positional mapping.
func (s *Store) Reset() {
	s.replace(mustMapping(assign.Default(len(s.mapping), s.slotCount)))
}

// AutoMatch replaces the mapping with the best-effort automatic one.
func (s *Store) AutoMatch() {
	s.replace(mustMapping(assign.AutoMatch(len(s.mapping), s.slotCount)))
}

// Apply replaces the mapping using the given strategy.
func (s *Store) Apply(strategy assign.Strategy) error {
	next, err := assign.Apply(strategy, len(s.mapping), s.slotCount)
	if err != nil {
		return err
	}

	s.replace(next)

	return nil
}

// SetMapping updates the mapping entry by entry from values. Entries past
// the end of values are left alone, extra values are dropped, and
// out-of-range slots keep the prior value.
func (s *Store) SetMapping(values []int) {
	var ignored []ignoredValue

	for i := 0; i < len(s.mapping) && i < len(values); i++ {
		if !assign.ValidSlot(values[i], s.slotCount) {
			ignored = append(ignored, ignoredValue{position: i, slot: values[i]})
			continue
		}

		s.mapping[i] = values[i]
	}

	s.refresh(ignored)
}

// SetSlot assigns slot to the filament at position i. It fails with
// assign.ErrIndexOutOfRange for an unknown position and leaves the entry
// unchanged for an out-of-range slot.
func (s *Store) SetSlot(i, slot int) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}

	if !assign.ValidSlot(slot, s.slotCount) {
		s.refresh([]ignoredValue{{position: i, slot: slot}})
		return nil
	}

	s.mapping[i] = slot
	s.refresh(nil)

	return nil
}

type ignoredValue struct {
	position int
	slot     int
}

func (s *Store) replace(next []int) {
	s.mapping = next
	s.refresh(nil)
}

// refresh recomputes every derived field from the mapping.
func (s *Store) refresh(ignored []ignoredValue) {
	s.conflictSet = assign.ConflictSet(s.mapping)
	s.conflicts = assign.Conflicts(s.mapping)
	s.diags = diagnostic.Diagnostics{}

	for _, slot := range s.conflicts {
		s.diags.AddWarning(diagnostic.CodeSlotConflict,
			fmt.Sprintf("%d filaments mapped to Slot %d", s.conflictSet[slot], slot),
			slot, s.Assignees(slot)...)
	}

	for _, v := range ignored {
		s.diags.AddInfo(diagnostic.CodeSlotIgnored,
			fmt.Sprintf("slot %d is outside 1..%d, kept Slot %d", v.slot, s.slotCount, s.mapping[v.position]),
			diagnostic.NoSlot, v.position)
	}
}

func (s *Store) checkIndex(i int) error {
	if i < 0 || i >= len(s.mapping) {
		return fmt.Errorf("%w: %d not in [0, %d)", assign.ErrIndexOutOfRange, i, len(s.mapping))
	}

	return nil
}

// mustMapping unwraps an engine result whose inputs the Store has already
// validated.
func mustMapping(mapping []int, err error) []int {
	if err != nil {
		panic(fmt.Sprintf("mapping: engine rejected validated input: %v", err))
	}

	return mapping
}
