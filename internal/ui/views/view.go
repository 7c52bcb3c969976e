package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth = 80
	promptText   = "❯ "
	clearMark    = "✕"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width            int
	Height           int
	Focused          bool
	Open             bool
	Disabled         bool
	Loading          bool
	Multi            bool
	InputView        string // rendered text input while focused
	InputText        string
	Placeholder      string
	SelectedLabel    string
	Chips            []string // multi-select values in order
	Clearable        bool
	Spinner          string
	Rows             []Row // rows inside the scroll window
	Offset           int   // index of Rows[0] in the visible list
	Total            int   // size of the visible list
	NoOptionsMessage string
	ShowHelp         bool
	HelpView         string
	ShowInfo         bool
	InfoContent      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	rowRender   *RowRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		rowRender:   NewRowRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles returns the renderer styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	control, _ := r.renderControl(state)
	content.WriteString(control)

	if state.Open && !state.Disabled {
		content.WriteString("\n")
		content.WriteString(r.renderMenu(state))
	}

	if state.ShowHelp && state.HelpView != "" {
		content.WriteString("\n\n")
		content.WriteString(r.styles.Help.Render(state.HelpView))
	}

	finalContent := r.styles.Main.Render(content.String())

	if state.ShowInfo && state.InfoContent != "" {
		return r.popupRender.RenderPopupOverlay(finalContent, state.InfoContent, state.Height, width(state), r.styles.InfoBox)
	}

	return finalContent
}

// renderControl renders the control line and returns the column of the
// clear mark, or -1 when it is not shown
func (r *Renderer) renderControl(state ViewState) (string, int) {
	prompt := r.styles.Prompt.Render(promptText)
	if state.Focused {
		prompt = r.styles.PromptFocus.Render(promptText)
	}

	left := prompt + r.renderValue(state)

	var right []string
	if state.Loading && state.Spinner != "" {
		right = append(right, r.styles.Loading.Render(state.Spinner))
	}
	if state.Clearable && !state.Disabled {
		right = append(right, r.styles.Clear.Render(clearMark))
	}
	if len(right) == 0 {
		return left, -1
	}

	rightContent := strings.Join(right, " ")
	padding := width(state) - lipgloss.Width(left) - lipgloss.Width(rightContent)
	if padding < 1 {
		padding = 1
	}

	line := fmt.Sprintf("%s%s%s", left, strings.Repeat(" ", padding), rightContent)
	clearX := -1
	if state.Clearable && !state.Disabled {
		clearX = lipgloss.Width(line) - 1
	}
	return line, clearX
}

// renderValue renders the text right of the prompt
func (r *Renderer) renderValue(state ViewState) string {
	var parts []string

	if state.Multi {
		for _, chip := range state.Chips {
			parts = append(parts, r.styles.Chip.Render(FitLabel(chip, 24)))
		}
	}

	switch {
	case state.Disabled:
		text := state.SelectedLabel
		if text == "" {
			text = state.Placeholder
		}
		if state.Multi && len(state.Chips) > 0 {
			text = ""
		}
		if text != "" {
			parts = append(parts, r.styles.Disabled.Render(text))
		}
	case state.Focused:
		parts = append(parts, state.InputView)
	case state.InputText != "":
		parts = append(parts, r.styles.Value.Render(state.InputText))
	case !state.Multi && state.SelectedLabel != "":
		parts = append(parts, r.styles.Value.Render(state.SelectedLabel))
	case state.Multi && len(state.Chips) > 0:
	default:
		parts = append(parts, r.styles.Placeholder.Render(state.Placeholder))
	}

	return strings.Join(parts, " ")
}

// renderMenu renders the open menu with scroll indicators
func (r *Renderer) renderMenu(state ViewState) string {
	if state.Total == 0 {
		return r.styles.Menu.Render(r.styles.NoOptions.Render(state.NoOptionsMessage))
	}

	var lines []string
	rowWidth := width(state) - r.styles.Menu.GetPaddingLeft()

	if state.Offset > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above", state.Offset)))
	}

	for _, row := range state.Rows {
		lines = append(lines, r.rowRender.RenderRow(row, rowWidth))
	}

	if below := state.Total - state.Offset - len(state.Rows); below > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below", below)))
	}

	return r.styles.Menu.Render(strings.Join(lines, "\n"))
}

func width(state ViewState) int {
	if state.Width <= 0 {
		return defaultWidth
	}
	return state.Width
}
