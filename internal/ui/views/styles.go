package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Prompt       lipgloss.Style
	PromptFocus  lipgloss.Style
	Placeholder  lipgloss.Style
	Value        lipgloss.Style
	Chip         lipgloss.Style
	Clear        lipgloss.Style
	Dim          lipgloss.Style
	Disabled     lipgloss.Style
	Loading      lipgloss.Style
	Menu         lipgloss.Style
	Row          lipgloss.Style
	HighlightBg  lipgloss.Style
	Selected     lipgloss.Style
	SelectedMark lipgloss.Style
	NoOptions    lipgloss.Style
	Scroll       lipgloss.Style
	Help         lipgloss.Style
	InfoBox      lipgloss.Style
	Main         lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		PromptFocus: lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Placeholder: lipgloss.NewStyle().Faint(true),
		Value:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Chip: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238")).
			Padding(0, 1),
		Clear:        lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Dim:          lipgloss.NewStyle().Faint(true),
		Disabled:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true),
		Loading:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Menu:         lipgloss.NewStyle().PaddingLeft(2),
		Row:          lipgloss.NewStyle(),
		HighlightBg:  lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Selected:     lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true), // green
		SelectedMark: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		NoOptions:    lipgloss.NewStyle().Faint(true).Italic(true),
		Scroll:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Help:         lipgloss.NewStyle().Faint(true),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		Main: lipgloss.NewStyle(),
	}
}
