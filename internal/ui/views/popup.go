package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay renders popupContent centered over a greyed-out copy
// of mainContent
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	if width <= 0 {
		width = lipgloss.Width(styledPopup)
	}
	if height <= 0 {
		height = lipgloss.Height(styledPopup)
	}

	// Keep the base visible above the popup when it fits
	base := desaturateANSI(mainContent)
	baseLines := strings.Split(base, "\n")
	popupH := lipgloss.Height(styledPopup)
	keep := height - popupH
	if keep < 0 {
		keep = 0
	}
	if keep > len(baseLines) {
		keep = len(baseLines)
	}

	top := strings.Join(baseLines[:keep], "\n")
	placed := lipgloss.Place(width, height-keep, lipgloss.Center, lipgloss.Center, styledPopup)
	if top == "" {
		return placed
	}
	return lipgloss.JoinVertical(lipgloss.Left, top, placed)
}

// StripANSI removes ANSI escape sequences
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	if s == "" {
		return ""
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(StripANSI(s))
}
