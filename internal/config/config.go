package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"rackbrowser/internal/eventbus"
)

const (
	appName        = "rackbrowser"
	configFileName = "config.toml"
	envPrefix      = "RACKBROWSER"
)

// Config represents the application configuration
type Config struct {
	PluginsDir   string     `toml:"plugins_dir" mapstructure:"plugins_dir"`
	SettingsPath string     `toml:"settings_path" mapstructure:"settings_path"`
	Log          LogConfig  `toml:"log" mapstructure:"log"`
	UI           UISettings `toml:"ui" mapstructure:"ui"`
}

// LogConfig controls where and how verbosely the app logs
type LogConfig struct {
	File  string `toml:"file" mapstructure:"file"`
	Level string `toml:"level" mapstructure:"level"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowTags     bool `toml:"show_tags" mapstructure:"show_tags"`
	ShowPlugin   bool `toml:"show_plugin" mapstructure:"show_plugin"`
	BrowserWidth int  `toml:"browser_width" mapstructure:"browser_width"`
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

// Dir returns the per-user rackbrowser config directory
func Dir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, appName)
}

// NewConfigService creates a config service for the default config path
func NewConfigService() ConfigService {
	return &configService{
		filePath: filepath.Join(Dir(), configFileName),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support.
// An empty path selects the default location.
func NewConfigServiceWithBus(bus eventbus.EventBus, path string) ConfigService {
	cs := NewConfigService().(*configService)
	if path != "" {
		cs.filePath = path
	}
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load reads the config file, falling back to defaults when it does not
// exist. RACKBROWSER_* environment variables override file values.
func (cs *configService) Load() (*Config, error) {
	cfg, err := load(cs.filePath, false)
	if err != nil {
		return nil, err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:       cs.filePath,
			PluginsDir: cfg.PluginsDir,
		})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path, which must exist
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	return load(path, true)
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := Marshal(config)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Marshal renders the configuration as TOML
func Marshal(config *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(config); err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return buf.Bytes(), nil
}

func load(path string, mustExist bool) (*Config, error) {
	v := viper.New()

	// Set defaults
	defaults := DefaultConfig()
	v.SetDefault("plugins_dir", defaults.PluginsDir)
	v.SetDefault("settings_path", defaults.SettingsPath)
	v.SetDefault("log.file", defaults.Log.File)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("ui.show_tags", defaults.UI.ShowTags)
	v.SetDefault("ui.show_plugin", defaults.UI.ShowPlugin)
	v.SetDefault("ui.browser_width", defaults.UI.BrowserWidth)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if errors.Is(err, fs.ErrNotExist) {
		if mustExist {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
	} else {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.UI.BrowserWidth < minBrowserWidth {
		cfg.UI.BrowserWidth = minBrowserWidth
	}
	return &cfg, nil
}

const minBrowserWidth = 30

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	dir := Dir()
	return &Config{
		PluginsDir:   filepath.Join(dir, "plugins"),
		SettingsPath: filepath.Join(dir, "settings.json"),
		Log: LogConfig{
			File:  filepath.Join(dir, appName+".log"),
			Level: "info",
		},
		UI: UISettings{
			ShowTags:     true,
			ShowPlugin:   false,
			BrowserWidth: 60,
		},
	}
}
