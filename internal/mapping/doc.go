// Package mapping holds the filament-to-slot mapping of one editing
// session.
//
// A Store is created from the project's filament descriptors and the
// printer's slot count, starting from the default positional mapping. The
// operator (or the auto-match command) then edits it; after every mutation
// the Store recomputes the conflicting slots and the diagnostics that go
// with them, so readers never see stale conflict data.
//
// # Mutation rules
//
//   - SetMapping applies a partial, entry-by-entry update
//   - SetSlot changes one entry and fails for an unknown filament
//   - Slot values outside [1, slotCount] are ignored, never errors
//   - Conflicts never block a mutation; they are reported, not prevented
//
// A Store is not safe for concurrent use. Give each session its own Store.
package mapping
