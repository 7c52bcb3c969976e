package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"comboselect/internal/eventbus"
)

// ErrNotFound is returned by LoadFromPath when the file does not exist
var ErrNotFound = errors.New("config file not found")

// Config represents the application configuration
type Config struct {
	Version        int            `toml:"version"`
	SelectSettings SelectSettings `toml:"select"`
	UISettings     UISettings     `toml:"ui"`
}

// SelectSettings holds the select widget construction options
type SelectSettings struct {
	LabelKey         string `toml:"label_key"`
	InputDebounceMs  int    `toml:"input_debounce_ms"`
	FilterSelected   bool   `toml:"filter_selected"`
	Matcher          string `toml:"matcher"`
	Placeholder      string `toml:"placeholder"`
	NoOptionsMessage string `toml:"no_options_message"`
	Multi            bool   `toml:"multi"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	MenuHeight   int  `toml:"menu_height"`
	ShowHelp     bool `toml:"show_help"`
	Mouse        bool `toml:"mouse"`
	ExitOnSelect bool `toml:"exit_on_select"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns $XDG_CONFIG_HOME/comboselect/config.toml, falling
// back to ~/.config when no user config directory is known
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "comboselect", "config.toml")
}

// NewConfigService creates a config service for the default path
func NewConfigService() ConfigService {
	return &configService{
		filePath: DefaultPath(),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support.
// An empty path selects DefaultPath.
func NewConfigServiceWithBus(bus eventbus.EventBus, path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{
		bus:      bus,
		filePath: path,
	}
}

// Path returns the file the service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file. A missing file yields the
// default configuration.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, ErrNotFound) {
		log.Printf("No config at %s, using defaults", cs.filePath)
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	// Publish ConfigLoaded event if bus is available
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	// Publish ConfigSaved event if bus is available
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	log.Printf("Loaded config from %s", path)
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Marshal config to TOML
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	log.Printf("Config saved to %s", path)
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		SelectSettings: SelectSettings{
			LabelKey:         "label",
			InputDebounceMs:  200,
			FilterSelected:   true,
			Matcher:          "substring",
			Placeholder:      "Select...",
			NoOptionsMessage: "No options",
			Multi:            false,
		},
		UISettings: UISettings{
			MenuHeight:   8,
			ShowHelp:     true,
			Mouse:        true,
			ExitOnSelect: true,
		},
	}
}
