package assign

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Strategy -output=strategy_string.go

// Strategy selects how a whole mapping is (re)computed.
type Strategy int

const (
	_ Strategy = iota // zero value is invalid

	// StrategyDefault is the positional T0->Slot1, T1->Slot2 mapping.
	StrategyDefault
	// StrategyAutoMatch is the best-effort conflict-minimizing mapping.
	StrategyAutoMatch
)

// ParseStrategy maps a user-facing name to a Strategy.
// Accepted names: "default", "reset", "auto", "auto-match", "automatch".
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "default", "reset":
		return StrategyDefault, nil
	case "auto", "auto-match", "automatch":
		return StrategyAutoMatch, nil
	default:
		return 0, fmt.Errorf("%w: unknown strategy %q", ErrInvalidInput, name)
	}
}

// Apply computes a fresh mapping for n filaments using the given strategy.
func Apply(strategy Strategy, n, slotCount int) ([]int, error) {
	switch strategy {
	case StrategyDefault:
		return Default(n, slotCount)
	case StrategyAutoMatch:
		return AutoMatch(n, slotCount)
	default:
		return nil, fmt.Errorf("%w: unsupported strategy %s", ErrInvalidInput, strategy)
	}
}
