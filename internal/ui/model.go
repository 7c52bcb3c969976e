package ui

import (
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"comboselect/internal/domain"
	"comboselect/internal/ui/coordinator"
	"comboselect/internal/ui/input"
	inputtypes "comboselect/internal/ui/input/types"
	"comboselect/internal/ui/viewmodels"
	"comboselect/internal/ui/views"
)

// Settings holds presentation options that are not part of the widget state
type Settings struct {
	Placeholder      string
	NoOptionsMessage string
	ShowHelp         bool
	Mouse            bool
	ExitOnSelect     bool // a single-select commit ends the program
}

// DefaultSettings returns the default presentation options
func DefaultSettings() Settings {
	return Settings{
		Placeholder:      "Select...",
		NoOptionsMessage: "No options",
		ShowHelp:         true,
		Mouse:            true,
		ExitOnSelect:     true,
	}
}

// Option is the option type the terminal front end works with
type Option = *domain.Option

// Model represents the UI state
type Model struct {
	coord    *coordinator.Coordinator[Option]
	settings Settings

	width       int
	height      int
	help        help.Model
	spinner     spinner.Model
	inPagerMode bool // tracks if we're currently in pager mode

	// Fallback help popup when the pager is unavailable
	showInfo    bool
	infoContent string

	done      bool // confirmed; Result is valid
	cancelled bool
	quitting  bool

	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel[Option]
	helpRender   *HelpRenderer
	inputHandler *input.Handler
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model over coord
func NewModel(coord *coordinator.Coordinator[Option], settings Settings) *Model {
	keys := inputtypes.DefaultKeyMap()

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := &Model{
		coord:        coord,
		settings:     settings,
		help:         help.New(),
		spinner:      s,
		renderer:     views.NewRenderer(),
		helpRender:   NewHelpRenderer(keys),
		inputHandler: input.New(keys),
		helpOps:      NewHelpOps(nil),
	}
	m.spinner.Style = m.renderer.Styles().Loading

	m.viewModel = viewmodels.NewViewModel(coord, viewmodels.Presentation{
		Placeholder:      settings.Placeholder,
		NoOptionsMessage: settings.NoOptionsMessage,
		ShowHelp:         settings.ShowHelp,
	}, m.inputHandler.TextInput())
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Coordinator returns the widget coordinator
func (m *Model) Coordinator() *coordinator.Coordinator[Option] {
	return m.coord
}

// Result returns the committed values. ok is false when the user quit
// without confirming.
func (m *Model) Result() ([]Option, bool) {
	if !m.done || m.cancelled {
		return nil, false
	}
	return m.coord.Selection.Values(), true
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}

	snap := m.coord.Snapshot()
	if snap.Autofocus && !snap.Disabled {
		cmds = append(cmds, m.focus())
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	keys := m.inputHandler.Keys()

	// Fallback help popup swallows keys until dismissed
	if m.showInfo {
		switch {
		case key.Matches(msg, keys.Quit):
			return m.quit(true)
		case key.Matches(msg, keys.Close, keys.Help, keys.Select):
			m.showInfo = false
			m.infoContent = ""
		}
		return nil
	}

	if m.coord.Snapshot().Disabled {
		if key.Matches(msg, keys.Quit) {
			return m.quit(true)
		}
		return nil
	}

	ctx := m.context()
	actions, cmd := m.inputHandler.HandleKey(msg, ctx)

	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		cmds = append(cmds, m.processAction(action))
	}
	m.syncText()

	return tea.Batch(cmds...)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.settings.Mouse || m.showInfo || m.coord.Snapshot().Disabled {
		return nil
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		if m.coord.Menu.IsOpen() {
			m.coord.HoverPrev()
		}
		return nil

	case msg.Button == tea.MouseButtonWheelDown:
		if m.coord.Menu.IsOpen() {
			m.coord.HoverNext()
		}
		return nil

	case msg.Action == tea.MouseActionMotion:
		hit := m.renderer.HitTest(m.viewState(), msg.X, msg.Y)
		if hit.Kind == views.HitRow {
			m.coord.HoverIndex(hit.Row)
		}
		return nil

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		return m.handleClick(m.renderer.HitTest(m.viewState(), msg.X, msg.Y))
	}

	return nil
}

func (m *Model) handleClick(hit views.Hit) tea.Cmd {
	switch hit.Kind {
	case views.HitClear:
		m.coord.Clear()
		m.syncText()
		return nil

	case views.HitControl:
		if !m.inputHandler.IsFocused() {
			return m.focus()
		}
		if !m.coord.Menu.IsOpen() {
			m.coord.Open()
		}
		return nil

	case views.HitRow:
		visible := m.coord.Filter.Visible()
		if hit.Row < 0 || hit.Row >= len(visible) {
			return nil
		}
		m.coord.HoverIndex(hit.Row)
		return m.commit()

	default:
		// Clicking outside the widget blurs it
		if !m.inputHandler.IsFocused() {
			return nil
		}
		actions, cmd := m.inputHandler.Blur(m.context())
		cmds := []tea.Cmd{cmd}
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}
		return tea.Batch(cmds...)
	}
}

// focus moves keyboard focus into the control
func (m *Model) focus() tea.Cmd {
	actions, cmd := m.inputHandler.Focus(m.context())
	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		cmds = append(cmds, m.processAction(action))
	}
	return tea.Batch(cmds...)
}

func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	log.Printf("processAction: %s", action.Type())
	switch a := action.(type) {
	case inputtypes.OpenAction:
		m.coord.Open()

	case inputtypes.BlurAction:
		m.coord.Blur()

	case inputtypes.HoverAction:
		switch a.Direction {
		case "next":
			m.coord.HoverNext()
		case "prev":
			m.coord.HoverPrev()
		}

	case inputtypes.CommitAction:
		return m.commit()

	case inputtypes.ClearAction:
		m.coord.Clear()

	case inputtypes.UnselectLastAction:
		m.coord.UnselectLast()

	case inputtypes.UpdateTextAction:
		return m.coord.SetInputText(a.Text)

	case inputtypes.ShowHelpAction:
		content := m.helpRender.RenderHelpContent(m.coord.Selection.IsMulti())
		return m.fetchHelpPager(content)

	case inputtypes.QuitAction:
		return m.quit(a.Force)
	}

	return nil
}

// commit selects the hovered option
func (m *Model) commit() tea.Cmd {
	if !m.coord.Commit() {
		return nil
	}
	m.syncText()
	if m.settings.ExitOnSelect && !m.coord.Selection.IsMulti() {
		return m.quit(false)
	}
	return nil
}

func (m *Model) quit(force bool) tea.Cmd {
	m.quitting = true
	if force {
		m.cancelled = true
	} else {
		m.done = true
	}
	return tea.Quit
}

// syncText keeps the text input widget in step with the coordinator
func (m *Model) syncText() {
	m.inputHandler.SyncText(m.coord.Input.Value())
}

func (m *Model) context() *input.ModelContext[Option] {
	return &input.ModelContext[Option]{Coordinator: m.coord}
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	if m.program == nil {
		return func() tea.Msg {
			return helpPagerMsg{err: errNoProgram}
		}
	}
	return func() tea.Msg {
		// Pause rendering while pager is active
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Resume rendering after pager exits
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case coordinator.RecomputeMsg:
		m.coord.Update(msg)
		return m, nil

	case spinner.TickMsg:
		// Don't continue the tick loop while the pager owns the terminal
		if m.inPagerMode {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed, log and fall back to popup
			log.Printf("Help pager failed: %v", msg.err)
			m.showInfo = true
			m.infoContent = m.helpRender.RenderHelpContent(m.coord.Selection.IsMulti())
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, m.spinner.Tick
	}

	// Cursor blink and other text input messages
	return m, m.inputHandler.Update(msg)
}

// View renders the UI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderer.Render(m.viewState())
}

// viewState builds the rendering input from the view model
func (m *Model) viewState() views.ViewState {
	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetHelp(m.help, m.inputHandler.Keys())
	m.viewModel.SetFocused(m.inputHandler.IsFocused())
	m.viewModel.SetSpinner(m.spinner.View())
	m.viewModel.SetInfoContent(m.infoContent)
	return m.viewModel.BuildViewState()
}
