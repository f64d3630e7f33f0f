package diagnostic

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Diagnostic codes.
const (
	CodeSlotConflict      = "slot_conflict"
	CodeSlotIgnored       = "slot_ignored"
	CodeInvalidDescriptor = "invalid_descriptor"
	CodeDuplicateIndex    = "duplicate_index"
)

// NoSlot is used for diagnostics that are not tied to a printer slot.
const NoSlot = 0

// Diagnostics holds all diagnostic information produced by one operation.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Slot is the 1-based printer slot this relates to, or NoSlot.
	Slot int
	// Filaments are the project positions this relates to (if any).
	Filaments []int
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return "unknown"
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message string, slot int, filaments ...int) {
	d.Errors = append(d.Errors, newDiagnostic(DiagnosticError, code, message, slot, filaments))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message string, slot int, filaments ...int) {
	d.Warnings = append(d.Warnings, newDiagnostic(DiagnosticWarning, code, message, slot, filaments))
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message string, slot int, filaments ...int) {
	d.Infos = append(d.Infos, newDiagnostic(DiagnosticInfo, code, message, slot, filaments))
}

func newDiagnostic(severity DiagnosticSeverity, code, message string, slot int, filaments []int) Diagnostic {
	return Diagnostic{
		Severity:  severity,
		Code:      code,
		Message:   message,
		Slot:      slot,
		Filaments: append([]int(nil), filaments...),
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// HasWarnings returns true if there are any warning diagnostics.
func (d *Diagnostics) HasWarnings() bool {
	return len(d.Warnings) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// ByCode returns every diagnostic with the given code, errors first.
func (d *Diagnostics) ByCode(code string) []Diagnostic {
	var found []Diagnostic

	for _, group := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range group {
			if diag.Code == code {
				found = append(found, diag)
			}
		}
	}

	return found
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Slot != NoSlot {
		prefix = append(prefix, "[Slot "+strconv.Itoa(d.Slot)+"]")
	}

	if len(d.Filaments) > 0 {
		names := make([]string, len(d.Filaments))
		for i, f := range d.Filaments {
			names[i] = "T" + strconv.Itoa(f)
		}

		prefix = append(prefix, strings.Join(names, ","))
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

// Summary returns the operator-facing warning line for a set of
// conflicting slots, or "" when there are none.
func Summary(conflicts []int) string {
	if len(conflicts) == 0 {
		return ""
	}

	slots := make([]string, len(conflicts))
	for i, slot := range conflicts {
		slots[i] = fmt.Sprintf("Slot %d", slot)
	}

	return "Multiple filaments mapped to same slot: " + strings.Join(slots, ", ")
}
