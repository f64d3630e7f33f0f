// Package assign computes filament-to-slot mappings and derives conflicts
// from them.
//
// A mapping is a []int with one entry per project filament, in project
// order. Each entry is a 1-based printer slot in [1, slotCount].
//
// Key functions:
//   - Default: positional 1:1 mapping that wraps when filaments outnumber slots
//   - AutoMatch: two-pass greedy mapping, conflict-free whenever that is possible
//   - Conflicts: ascending list of slots claimed by more than one filament
//   - SlotUsage / ConflictSet: per-slot assignment counts
//
// Everything here is pure. Nothing in the package reads filament metadata
// (type, color, usage); only the count of filaments and their order matter.
package assign
