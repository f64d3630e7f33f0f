// Package diagnostic provides structured warnings, errors, and info notes
// about filament mappings and the project data they are built from.
//
// Key capabilities:
//   - Slot conflict warnings listing every filament that shares the slot
//   - Notes for slot values that were dropped as out of range
//   - Project validation errors (bad or duplicate filament indexes)
//   - The one-line operator summary shown next to a conflicting mapping
package diagnostic
