package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pelletier/go-toml/v2"

	"multiselect/internal/domain"
)

const (
	DriverTea = "tea"
	DriverRaw = "raw"
)

// Config represents the application configuration
type Config struct {
	Version      int          `toml:"version"`
	Title        string       `toml:"title,omitempty"`
	Limit        int          `toml:"limit,omitempty"`
	InitialIndex int          `toml:"initial_index,omitempty"`
	Items        []ItemConfig `toml:"items,omitempty"`
	Selected     []string     `toml:"selected,omitempty"` // values selected at startup
	UI           UISettings   `toml:"ui"`
	Logging      Logging      `toml:"logging"`
}

// ItemConfig is one selectable row
type ItemConfig struct {
	Label string `toml:"label"`
	Value string `toml:"value,omitempty"` // defaults to the label
	Key   string `toml:"key,omitempty"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowHelp  bool   `toml:"show_help"`
	Driver    string `toml:"driver"` // "tea" or "raw"
	Cursor    string `toml:"cursor,omitempty"`
	Checked   string `toml:"checked,omitempty"`
	Unchecked string `toml:"unchecked,omitempty"`
}

// Logging configures the log file
type Logging struct {
	Level string `toml:"level"`
	File  string `toml:"file,omitempty"`
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
	filePath string
}

// NewConfigService creates a config service for the default location
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceAt creates a config service bound to path
func NewConfigServiceAt(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// DefaultPath returns the path of the configuration file
func DefaultPath() string {
	if configPath := os.Getenv("MULTISELECT_CONFIG"); configPath != "" {
		return configPath
	}

	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			home, _ := os.UserHomeDir()
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		return filepath.Join(appData, "multiselect", "config.toml")
	default:
		if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
			return filepath.Join(xdgConfig, "multiselect", "config.toml")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "multiselect", "config.toml")
	}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file. A missing file yields the defaults.
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.applyDefaults()

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		UI: UISettings{
			ShowHelp: true,
			Driver:   DriverTea,
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.UI.Driver == "" {
		c.UI.Driver = DriverTea
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate reports configuration errors. Every problem found is returned.
func (c *Config) Validate() error {
	var errs []error
	if c.Limit < 0 {
		errs = append(errs, fmt.Errorf("limit must not be negative, got %d", c.Limit))
	}
	if c.UI.Driver != DriverTea && c.UI.Driver != DriverRaw {
		errs = append(errs, fmt.Errorf("unknown ui driver %q", c.UI.Driver))
	}

	seen := make(map[string]bool, len(c.Items))
	for _, item := range c.ToItems() {
		if seen[item.Value] {
			errs = append(errs, fmt.Errorf("duplicate item value %q", item.Value))
		}
		seen[item.Value] = true
	}
	return errors.Join(errs...)
}

// ToItems converts the configured items to domain items. Items without a
// value use their label as value.
func (c *Config) ToItems() domain.ItemList {
	items := make(domain.ItemList, 0, len(c.Items))
	for _, ic := range c.Items {
		value := ic.Value
		if value == "" {
			value = ic.Label
		}
		items = append(items, domain.Item{Label: ic.Label, Value: value, Key: ic.Key})
	}
	return items
}
