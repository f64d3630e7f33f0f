package assign

import (
	"maps"
	"slices"
)

// SlotUsage counts how many filaments are assigned to each slot.
func SlotUsage(mapping []int) map[int]int {
	usage := make(map[int]int, len(mapping))
	for _, slot := range mapping {
		usage[slot]++
	}

	return usage
}

// ConflictSet returns slot -> assignee count for every slot claimed by
// more than one filament.
func ConflictSet(mapping []int) map[int]int {
	set := map[int]int{}
	for slot, count := range SlotUsage(mapping) {
		if count > 1 {
			set[slot] = count
		}
	}

	return set
}

// Conflicts returns the slots claimed by more than one filament, ascending.
// The result is never nil.
func Conflicts(mapping []int) []int {
	conflicts := slices.Sorted(maps.Keys(ConflictSet(mapping)))
	if conflicts == nil {
		return []int{}
	}

	return conflicts
}

// Assignees returns the positions of the filaments mapped to slot, in
// project order.
func Assignees(mapping []int, slot int) []int {
	var positions []int
	for i, s := range mapping {
		if s == slot {
			positions = append(positions, i)
		}
	}

	return positions
}

// Excess counts assignments beyond the first on each slot, i.e. how many
// filaments would have to move for the mapping to be conflict-free.
func Excess(mapping []int) int {
	excess := 0
	for _, count := range ConflictSet(mapping) {
		excess += count - 1
	}

	return excess
}
