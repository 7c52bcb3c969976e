package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"comboselect/internal/ui/coordinator"
	"comboselect/internal/ui/views"
)

// Presentation holds the display options that are not widget state
type Presentation struct {
	Placeholder      string
	NoOptionsMessage string
	ShowHelp         bool
}

// ViewModel transforms coordinator state into view-ready data
type ViewModel[T comparable] struct {
	coord            *coordinator.Coordinator[T]
	presentation     Presentation
	width            int
	height           int
	help             help.Model
	keys             help.KeyMap
	spinner          string
	infoContent      string
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel[T comparable](coord *coordinator.Coordinator[T], presentation Presentation, textInput *textinput.Model) *ViewModel[T] {
	return &ViewModel[T]{
		coord:            coord,
		presentation:     presentation,
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel[T]) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetHelp sets the help model and the bindings it shows
func (vm *ViewModel[T]) SetHelp(helpModel help.Model, keys help.KeyMap) {
	vm.help = helpModel
	vm.keys = keys
}

// SetFocused records whether the control has focus
func (vm *ViewModel[T]) SetFocused(focused bool) {
	vm.inputTransformer.SetFocused(focused)
}

// SetSpinner sets the current spinner frame
func (vm *ViewModel[T]) SetSpinner(frame string) {
	vm.spinner = frame
}

// SetInfoContent sets the popup content; empty hides the popup
func (vm *ViewModel[T]) SetInfoContent(content string) {
	vm.infoContent = content
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel[T]) BuildViewState() views.ViewState {
	snap := vm.coord.Snapshot()
	multi := vm.coord.Selection.IsMulti()

	state := views.ViewState{
		Width:            vm.width,
		Height:           vm.height,
		Focused:          vm.inputTransformer.Focused(),
		Open:             snap.IsOpen,
		Disabled:         snap.Disabled,
		Loading:          snap.Loading,
		Multi:            multi,
		InputText:        snap.InputValue,
		Placeholder:      vm.presentation.Placeholder,
		Clearable:        vm.coord.Clearable(),
		Spinner:          vm.spinner,
		Total:            len(snap.VisibleOptions),
		NoOptionsMessage: vm.presentation.NoOptionsMessage,
		ShowHelp:         vm.presentation.ShowHelp,
		ShowInfo:         vm.infoContent != "",
		InfoContent:      vm.infoContent,
	}

	if vm.keys != nil {
		state.HelpView = vm.help.View(vm.keys)
	}

	if multi {
		for _, v := range snap.Selection.Values() {
			state.Chips = append(state.Chips, vm.coord.Label(v))
		}
	} else {
		state.SelectedLabel = vm.coord.SelectedLabel()
	}

	state.InputView = vm.inputTransformer.GetInputView(vm.presentation.Placeholder, state.SelectedLabel, len(state.Chips) > 0)

	start, end := vm.window(len(snap.VisibleOptions))
	state.Offset = start
	for i := start; i < end; i++ {
		opt := snap.VisibleOptions[i]
		state.Rows = append(state.Rows, views.Row{
			Label:    vm.coord.Label(opt),
			Hovered:  snap.IsHovered(i),
			Selected: snap.IsSelected(opt),
		})
	}

	return state
}

// window returns the rows to render, clamped to the current list
func (vm *ViewModel[T]) window(total int) (int, int) {
	height := vm.coord.Viewport.Height()
	start := vm.coord.Viewport.Offset()
	if start > total-height {
		start = total - height
	}
	if start < 0 {
		start = 0
	}
	end := start + height
	if end > total {
		end = total
	}
	return start, end
}
