package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"starseek/internal/eventbus"
)

// Layout defaults. Units are abstract; the terminal renders one row per item.
const (
	DefaultItemHeight     = 40
	DefaultViewportHeight = 280
	DefaultRenderAhead    = 5
	DefaultDebounceMS     = 200

	DefaultNameField = "pl_name"
	DefaultKeyField  = "hostname"

	// FileName is the per-directory config file picked up by main
	FileName = ".starseek.toml"
)

// Config represents the application configuration
type Config struct {
	Version    int             `toml:"version"`
	Catalog    CatalogSettings `toml:"catalog"`
	Layout     LayoutSettings  `toml:"layout"`
	UISettings UISettings      `toml:"ui"`
}

// CatalogSettings describes where the catalog comes from and how records are keyed
type CatalogSettings struct {
	Sources   []string `toml:"sources"`    // paths, http(s):// URLs or s3://bucket/key
	NameField string   `toml:"name_field"` // field used as the primary name
	KeyField  string   `toml:"key_field"`  // field used as the secondary key
}

// LayoutSettings holds the windowing constants
type LayoutSettings struct {
	ItemHeight     int `toml:"item_height"`
	ViewportHeight int `toml:"viewport_height"`
	RenderAhead    int `toml:"render_ahead"`
	DebounceMS     int `toml:"debounce_ms"`
}

// Debounce returns the quiet period as a duration
func (l LayoutSettings) Debounce() time.Duration {
	return time.Duration(l.DebounceMS) * time.Millisecond
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowScrollbar bool `toml:"show_scrollbar"`
	ShowSecondary bool `toml:"show_secondary"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service rooted in the user config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "starseek", "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from the user config file.
// A missing file yields the default configuration.
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cs.publishLoaded(cs.filePath, cfg)
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}
	cs.publishLoaded(cs.filePath, cfg)
	return cfg, nil
}

// Save saves the configuration to the user config file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so omitted keys keep their default values
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Validate()

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

func (cs *configService) publishLoaded(path string, cfg *Config) {
	if cs.bus == nil {
		return
	}
	cs.bus.Publish(eventbus.ConfigLoadedEvent{
		Path:    path,
		Sources: cfg.Catalog.Sources,
	})
}

// Validate replaces unusable values with defaults
func (c *Config) Validate() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Catalog.NameField == "" {
		c.Catalog.NameField = DefaultNameField
	}
	if c.Catalog.KeyField == "" {
		c.Catalog.KeyField = DefaultKeyField
	}
	if c.Layout.ItemHeight <= 0 {
		c.Layout.ItemHeight = DefaultItemHeight
	}
	if c.Layout.ViewportHeight <= 0 {
		c.Layout.ViewportHeight = DefaultViewportHeight
	}
	if c.Layout.RenderAhead < 0 {
		c.Layout.RenderAhead = DefaultRenderAhead
	}
	if c.Layout.DebounceMS < 0 {
		c.Layout.DebounceMS = DefaultDebounceMS
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Catalog: CatalogSettings{
			Sources:   []string{"star-index.json"},
			NameField: DefaultNameField,
			KeyField:  DefaultKeyField,
		},
		Layout: LayoutSettings{
			ItemHeight:     DefaultItemHeight,
			ViewportHeight: DefaultViewportHeight,
			RenderAhead:    DefaultRenderAhead,
			DebounceMS:     DefaultDebounceMS,
		},
		UISettings: UISettings{
			ShowScrollbar: true,
			ShowSecondary: true,
		},
	}
}
