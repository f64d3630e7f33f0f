// Package render draws a mapping session as terminal text: one row per
// filament with its color swatch, label and assigned slot, followed by a
// warning line when slots are shared.
package render

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"filament-mapper/internal/diagnostic"
	"filament-mapper/internal/mapping"
)

const (
	header = "Map project filaments to printer slots:"
	swatch = "■"

	// fallbackColor is used for filaments without a usable color.
	fallbackColor = "#c0c0c0"
	warningColor  = "#ff0000"
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Renderer formats mapping sessions for one output.
type Renderer struct {
	lg *lipgloss.Renderer
}

// New returns a Renderer for w. With color false the output carries no
// escape sequences regardless of the terminal.
func New(w io.Writer, color bool) *Renderer {
	lg := lipgloss.NewRenderer(w)
	if !color {
		lg.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{lg: lg}
}

// Session renders the header, one row per filament, and the conflict
// warning if any.
func (r *Renderer) Session(store *mapping.Store) string {
	descriptors := store.Descriptors()
	slots := store.Mapping()

	labels := make([]string, len(descriptors))
	width := 0

	for i, d := range descriptors {
		labels[i] = d.Label()
		width = max(width, lipgloss.Width(labels[i]))
	}

	labelStyle := r.lg.NewStyle().Width(width)

	var sb strings.Builder
	sb.WriteString(r.lg.NewStyle().Bold(true).Render(header))
	sb.WriteString("\n")

	for i, d := range descriptors {
		fmt.Fprintf(&sb, "  %s %s  Slot %d\n", r.Swatch(d.Color), labelStyle.Render(labels[i]), slots[i])
	}

	if w := r.Warning(store.Conflicts()); w != "" {
		sb.WriteString("\n")
		sb.WriteString(w)
		sb.WriteString("\n")
	}

	return sb.String()
}

// Swatch renders a color block for a filament color, grey when the color
// is missing or not a hex color.
func (r *Renderer) Swatch(color string) string {
	if !hexColor.MatchString(color) {
		color = fallbackColor
	}

	return r.lg.NewStyle().Foreground(lipgloss.Color(color)).Render(swatch)
}

// Warning renders the conflict warning line, or "" when there are none.
func (r *Renderer) Warning(conflicts []int) string {
	summary := diagnostic.Summary(conflicts)
	if summary == "" {
		return ""
	}

	return r.lg.NewStyle().Foreground(lipgloss.Color(warningColor)).Render("Warning: " + summary)
}

// Diagnostics renders every warning and info diagnostic, one per line.
func (r *Renderer) Diagnostics(d *diagnostic.Diagnostics) string {
	var sb strings.Builder

	for _, group := range [][]diagnostic.Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range group {
			fmt.Fprintf(&sb, "%s: %s\n", diag.Severity, diag.String())
		}
	}

	return sb.String()
}
