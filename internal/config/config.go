package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"focusdeck/internal/domain"
	"focusdeck/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version    int          `toml:"version"`
	Title      string       `toml:"title"`
	Items      []ItemConfig `toml:"items"`
	Selected   []string     `toml:"selected"` // selection restored at startup
	Note       NoteSettings `toml:"note"`
	UISettings UISettings   `toml:"ui"`
}

// ItemConfig describes one focus item offered by the planner
type ItemConfig struct {
	ID       string `toml:"id"`
	Label    string `toml:"label"`
	Category string `toml:"category,omitempty"`
	Detail   string `toml:"detail,omitempty"`
}

// NoteSettings configures the free-text note field
type NoteSettings struct {
	MaxLength int    `toml:"max_length"`
	Text      string `toml:"text,omitempty"` // saved note text
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowCategories bool `toml:"show_categories"`
	AutosaveOnExit bool `toml:"autosave_on_exit"`
}

// Catalog converts the configured items into the domain catalog
func (c *Config) Catalog() *domain.Catalog {
	items := make([]domain.FocusItem, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, domain.FocusItem{
			ID:       it.ID,
			Label:    it.Label,
			Category: it.Category,
			Detail:   it.Detail,
		})
	}
	return &domain.Catalog{Items: items}
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

// NewConfigService creates a new config service
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

	focusdeckDir := filepath.Join(configDir, "focusdeck")
	os.MkdirAll(focusdeckDir, 0755)

	return &configService{
		filePath: filepath.Join(focusdeckDir, "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from the default path
func (cs *configService) Load() (*Config, error) {
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the default path
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads the configuration from the given file
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cs.publishLoaded(path, cfg)
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyDefaults(&cfg)
	cs.publishLoaded(path, &cfg)

	return &cfg, nil
}

// SaveToPath saves the configuration to the given file
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: path})
	}

	return nil
}

func (cs *configService) publishLoaded(path string, cfg *Config) {
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:      path,
			ItemCount: len(cfg.Items),
		})
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Note.MaxLength <= 0 {
		cfg.Note.MaxLength = DefaultNoteMaxLength
	}
	if cfg.Title == "" {
		cfg.Title = "focusdeck"
	}
}

// DefaultNoteMaxLength bounds the note field when the config does not say otherwise
const DefaultNoteMaxLength = 200

// DefaultConfig returns the built-in configuration with a sample catalog
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Title:   "focusdeck",
		Items: []ItemConfig{
			{ID: "quiet-room", Label: "Quiet room", Category: "Space"},
			{ID: "window-seat", Label: "Window seat", Category: "Space"},
			{ID: "whiteboard", Label: "Whiteboard", Category: "Equipment"},
			{ID: "projector", Label: "Projector", Category: "Equipment"},
			{ID: "coffee", Label: "Coffee service", Category: "Extras"},
		},
		Note: NoteSettings{
			MaxLength: DefaultNoteMaxLength,
		},
		UISettings: UISettings{
			ShowCategories: true,
			AutosaveOnExit: true,
		},
	}
}
