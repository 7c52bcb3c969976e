package views

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Row is one visible menu option
type Row struct {
	Label    string
	Hovered  bool
	Selected bool
}

// RowRenderer handles rendering of menu rows
type RowRenderer struct {
	styles *Styles
}

// NewRowRenderer creates a new row renderer
func NewRowRenderer(styles *Styles) *RowRenderer {
	return &RowRenderer{
		styles: styles,
	}
}

// RenderRow renders a menu row fitted into width columns
func (r *RowRenderer) RenderRow(row Row, width int) string {
	var parts []string

	// Hover indicator
	if row.Hovered {
		parts = append(parts, "› ")
	} else {
		parts = append(parts, "  ")
	}

	// Selection mark
	if row.Selected {
		parts = append(parts, r.styles.SelectedMark.Render("✓ "))
	} else {
		parts = append(parts, "  ")
	}

	label := FitLabel(row.Label, width-4)
	if row.Hovered {
		// Full-width bar under the hovered row
		label = runewidth.FillRight(label, width-4)
	}

	style := r.styles.Row
	if row.Selected {
		style = r.styles.Selected
	}
	if row.Hovered {
		style = style.Inherit(r.styles.HighlightBg)
	}
	parts = append(parts, style.Render(label))

	return strings.Join(parts, "")
}

// FitLabel truncates label to at most width display columns
func FitLabel(label string, width int) string {
	if width <= 0 {
		return ""
	}
	// Labels are single-line
	label = strings.ReplaceAll(label, "\n", " ")
	return runewidth.Truncate(label, width, "…")
}
