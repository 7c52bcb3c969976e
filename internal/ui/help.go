package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"comboselect/internal/ui/input/types"
)

var errNoProgram = errors.New("program not set")

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	keys types.KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(keys types.KeyMap) *HelpRenderer {
	return &HelpRenderer{keys: keys}
}

// RenderHelpContent generates the full help screen with colors
func (r *HelpRenderer) RenderHelpContent(multi bool) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(14)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	line := func(b key.Binding) {
		h := b.Help()
		help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc)))
	}

	// Title
	help.WriteString(titleStyle.Render("comboselect Help"))
	help.WriteString("\n")

	// Menu section
	help.WriteString(sectionStyle.Render("Menu"))
	help.WriteString("\n")
	line(r.keys.Up)
	line(r.keys.Down)
	line(r.keys.Select)
	line(r.keys.Close)
	help.WriteString("\n")

	// Selection section
	help.WriteString(sectionStyle.Render("Selection"))
	help.WriteString("\n")
	line(r.keys.Clear)
	if multi {
		line(r.keys.Unselect)
	}
	line(r.keys.Done)
	help.WriteString("\n")

	// Mouse section
	help.WriteString(sectionStyle.Render("Mouse"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render("click"), descStyle.Render("focus the control or pick a row")))
	help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render("wheel"), descStyle.Render("move the highlight")))
	help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render("✕"), descStyle.Render("clear the selection")))
	help.WriteString("\n")

	// Other section
	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	line(r.keys.Focus)
	line(r.keys.Help)
	help.WriteString(fmt.Sprintf("  %s%s", keyStyle.Render(r.keys.Quit.Help().Key), descStyle.Render("Quit without selecting")))

	return help.String()
}

// HelpOps shows help in an external pager
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return errNoProgram
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return fmt.Errorf("failed to release terminal: %w", err)
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return fmt.Errorf("failed to create pager: %w", err)
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
