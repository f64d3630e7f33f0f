package assign

// unassigned marks an entry that no pass has claimed a slot for yet.
const unassigned = 0

// fallbackSlot receives every filament left over once all slots are claimed.
const fallbackSlot = 1

// AutoMatch computes a best-effort mapping for n filaments.
//
// The result is conflict-free whenever n <= slotCount. Otherwise every slot
// is used once and the n-slotCount leftover filaments share the fallback
// slot. Filaments are visited in project order only; material type and
// usage are not considered.
func AutoMatch(n, slotCount int) ([]int, error) {
	if err := checkInput(n, slotCount); err != nil {
		return nil, err
	}

	mapping := make([]int, n)
	claimed := make([]bool, slotCount+1) // indexed by 1-based slot, [0] unused

	// Primary pass: prefer the slot matching the filament position.
	for i := range mapping {
		preferred := i + 1
		if preferred <= slotCount && !claimed[preferred] {
			mapping[i] = preferred
			claimed[preferred] = true
		}
	}

	// Fill pass: lowest free slot for anything still unclaimed.
	for i := range mapping {
		if mapping[i] != unassigned {
			continue
		}

		if slot := firstFree(claimed); slot != unassigned {
			mapping[i] = slot
			claimed[slot] = true
		}
	}

	// Fallback: slots are exhausted, better a conflict than a hole.
	for i := range mapping {
		if mapping[i] == unassigned {
			mapping[i] = fallbackSlot
		}
	}

	return mapping, nil
}

// firstFree returns the lowest unclaimed slot, or unassigned if none is left.
func firstFree(claimed []bool) int {
	for slot := 1; slot < len(claimed); slot++ {
		if !claimed[slot] {
			return slot
		}
	}

	return unassigned
}
