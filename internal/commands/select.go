package commands

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"comboselect/internal/config"
	"comboselect/internal/domain"
	"comboselect/internal/eventbus"
	"comboselect/internal/options"
	"comboselect/internal/ui"
	"comboselect/internal/ui/coordinator"
	"comboselect/internal/ui/services/filter"
)

// ErrCancelled is returned when the user quits without confirming
var ErrCancelled = errors.New("selection cancelled")

// Select flag values. Flags override the config file only when set.
var (
	formatFlag           string
	multiFlag            bool
	labelKeyFlag         string
	debounceFlag         int
	matcherFlag          string
	placeholderFlag      string
	noOptionsFlag        string
	menuHeightFlag       int
	valueFlags           []string
	noFilterSelectedFlag bool
	disabledFlag         bool
	noAutofocusFlag      bool
	noMouseFlag          bool
	noHelpFlag           bool
	noExitOnSelectFlag   bool
	printFlag            string
)

func registerSelectFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&formatFlag, "format", "", "options format: toml, yaml, json or text (default from file extension, text for stdin)")
	flags.BoolVarP(&multiFlag, "multi", "m", false, "allow selecting several options")
	flags.StringVarP(&labelKeyFlag, "label-key", "k", "", `field shown as the option label ("." for the whole record)`)
	flags.IntVar(&debounceFlag, "debounce", 0, "input debounce in milliseconds")
	flags.StringVar(&matcherFlag, "matcher", "", "matching policy: substring or fuzzy")
	flags.StringVar(&placeholderFlag, "placeholder", "", "text shown when nothing is typed or selected")
	flags.StringVar(&noOptionsFlag, "no-options-message", "", "text shown when no option matches")
	flags.IntVar(&menuHeightFlag, "menu-height", 0, "number of menu rows shown at once")
	flags.StringArrayVar(&valueFlags, "value", nil, "initially selected option (id, value or label); repeatable")
	flags.BoolVar(&noFilterSelectedFlag, "no-filter-selected", false, "keep selected options in the menu")
	flags.BoolVar(&disabledFlag, "disabled", false, "show the control read-only")
	flags.BoolVar(&noAutofocusFlag, "no-autofocus", false, "start with the control blurred")
	flags.BoolVar(&noMouseFlag, "no-mouse", false, "disable mouse support")
	flags.BoolVar(&noHelpFlag, "no-help", false, "hide the key help bar")
	flags.BoolVar(&noExitOnSelectFlag, "no-exit-on-select", false, "keep running after a single-select pick (confirm with ctrl+s)")
	flags.StringVarP(&printFlag, "print", "p", "", "field printed for each picked option (default: the label key)")
}

// applySelectFlags overrides config values with the flags given on the
// command line
func applySelectFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	sel := &cfg.SelectSettings
	uiSettings := &cfg.UISettings

	if flags.Changed("multi") {
		sel.Multi = multiFlag
	}
	if flags.Changed("label-key") {
		sel.LabelKey = labelKeyFlag
	}
	if flags.Changed("debounce") {
		sel.InputDebounceMs = debounceFlag
	}
	if flags.Changed("matcher") {
		sel.Matcher = matcherFlag
	}
	if flags.Changed("placeholder") {
		sel.Placeholder = placeholderFlag
	}
	if flags.Changed("no-options-message") {
		sel.NoOptionsMessage = noOptionsFlag
	}
	if flags.Changed("no-filter-selected") {
		sel.FilterSelected = !noFilterSelectedFlag
	}
	if flags.Changed("menu-height") {
		uiSettings.MenuHeight = menuHeightFlag
	}
	if flags.Changed("no-mouse") {
		uiSettings.Mouse = !noMouseFlag
	}
	if flags.Changed("no-help") {
		uiSettings.ShowHelp = !noHelpFlag
	}
	if flags.Changed("no-exit-on-select") {
		uiSettings.ExitOnSelect = !noExitOnSelectFlag
	}
}

func runSelect(cmd *cobra.Command, args []string) error {
	bus := eventbus.New()
	subscribeLogging(bus)

	cfg, err := loadConfig(bus)
	if err != nil {
		return err
	}
	applySelectFlags(cmd, cfg)

	opts, fromStdin, err := loadOptions(args)
	if err != nil {
		return err
	}
	log.Printf("Loaded %d options", len(opts))

	selectCfg, err := buildSelectConfig(cfg, opts, bus)
	if err != nil {
		return err
	}

	model := ui.NewModel(coordinator.New(selectCfg), ui.Settings{
		Placeholder:      cfg.SelectSettings.Placeholder,
		NoOptionsMessage: cfg.SelectSettings.NoOptionsMessage,
		ShowHelp:         cfg.UISettings.ShowHelp,
		Mouse:            cfg.UISettings.Mouse,
		ExitOnSelect:     cfg.UISettings.ExitOnSelect,
	})

	// The picked options go to stdout, so the UI draws on stderr
	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithOutput(os.Stderr), tea.WithContext(cmd.Context())}
	if cfg.UISettings.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	if fromStdin {
		programOpts = append(programOpts, tea.WithInputTTY())
	}

	p := tea.NewProgram(model, programOpts...)
	model.SetProgram(p)

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			log.Printf("UI stopped: %v", err)
			return ErrCancelled
		}
		return fmt.Errorf("failed to run program: %w", err)
	}
	log.Printf("UI exited normally")

	picked, ok := model.Result()
	if !ok {
		return ErrCancelled
	}

	printKey := printFlag
	if printKey == "" {
		printKey = cfg.SelectSettings.LabelKey
	}
	out := cmd.OutOrStdout()
	for _, opt := range picked {
		fmt.Fprintln(out, domain.ResolveLabel(opt, domain.LabelKey(printKey)))
	}
	return nil
}

// loadOptions reads options from the file argument or stdin. Reports
// whether stdin was consumed.
func loadOptions(args []string) ([]*domain.Option, bool, error) {
	if len(args) == 1 && args[0] != "-" {
		if formatFlag == "" {
			opts, err := options.LoadFile(args[0])
			return opts, false, err
		}
		format, err := options.ParseFormat(formatFlag)
		if err != nil {
			return nil, false, err
		}
		f, err := os.Open(args[0])
		if err != nil {
			return nil, false, fmt.Errorf("failed to open options file: %w", err)
		}
		defer f.Close()
		opts, err := options.Read(f, format)
		return opts, false, err
	}

	if len(args) == 0 && term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, false, errors.New("no options given: pass a file or pipe options on stdin")
	}

	format := options.FormatText
	if formatFlag != "" {
		var err error
		if format, err = options.ParseFormat(formatFlag); err != nil {
			return nil, true, err
		}
	}
	opts, err := options.Read(os.Stdin, format)
	return opts, true, err
}

// buildSelectConfig turns the configuration into a coordinator config
func buildSelectConfig(cfg *config.Config, opts []*domain.Option, bus eventbus.EventBus) (coordinator.Config[ui.Option], error) {
	sel := cfg.SelectSettings

	matcher, err := filter.ParseMatcher(sel.Matcher)
	if err != nil {
		return coordinator.Config[ui.Option]{}, err
	}

	labelKey := domain.LabelKey(sel.LabelKey)

	c := coordinator.NewConfig[ui.Option](opts)
	c.LabelKey = labelKey
	c.Filter = filter.Settings{
		Debounce:                    time.Duration(sel.InputDebounceMs) * time.Millisecond,
		ShouldFilterSelectedOptions: sel.FilterSelected,
		Matcher:                     matcher,
	}
	c.MenuHeight = cfg.UISettings.MenuHeight
	c.Disabled = disabledFlag
	c.Autofocus = !noAutofocusFlag
	c.Bus = bus

	initial := matchValues(opts, valueFlags, labelKey)
	switch {
	case sel.Multi:
		c.Value = coordinator.Multi(initial...)
	case len(initial) > 0:
		c.Value = coordinator.Single(initial[0])
	default:
		c.Value = coordinator.None[ui.Option]()
	}

	return c, nil
}

// matchValues finds the options named by values, in the order given.
// A value matches an option id, value or label.
func matchValues(opts []*domain.Option, values []string, labelKey domain.LabelKey) []*domain.Option {
	var matched []*domain.Option
	for _, want := range values {
		for _, opt := range opts {
			if opt.ID == want || opt.Value == want || domain.ResolveLabel(opt, labelKey) == want {
				matched = append(matched, opt)
				break
			}
		}
	}
	return matched
}

// subscribeLogging logs the widget callbacks
func subscribeLogging(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventOptionSelected, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.OptionSelectedEvent); ok {
			log.Printf("Selected %v (multi=%t)", event.Option, event.Multi)
		}
	})
	bus.Subscribe(eventbus.EventOptionUnselected, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.OptionUnselectedEvent); ok {
			log.Printf("Unselected %v", event.Option)
		}
	})
	bus.Subscribe(eventbus.EventSelectionCleared, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SelectionClearedEvent); ok {
			log.Printf("Selection cleared (%d removed)", event.Removed)
		}
	})
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigLoadedEvent); ok {
			log.Printf("Config loaded from %s", event.Path)
		}
	})
}
