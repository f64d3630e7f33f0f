package assign

import "fmt"

// Default returns the positional mapping for n filaments:
// filament i goes to slot (i mod slotCount) + 1.
//
// When n > slotCount the mapping wraps around and the resulting conflicts
// are left in place for the caller to surface.
func Default(n, slotCount int) ([]int, error) {
	if err := checkInput(n, slotCount); err != nil {
		return nil, err
	}

	mapping := make([]int, n)
	for i := range mapping {
		mapping[i] = i%slotCount + 1
	}

	return mapping, nil
}

// ValidSlot reports whether slot is a usable 1-based slot id.
func ValidSlot(slot, slotCount int) bool {
	return slot >= 1 && slot <= slotCount
}

func checkInput(n, slotCount int) error {
	if slotCount < 1 {
		return fmt.Errorf("%w: slot count %d must be at least 1", ErrInvalidInput, slotCount)
	}

	if n < 0 {
		return fmt.Errorf("%w: filament count %d is negative", ErrInvalidInput, n)
	}

	return nil
}
