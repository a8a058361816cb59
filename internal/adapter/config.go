package adapter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Carousel CarouselConfig `mapstructure:"carousel"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Store    StoreConfig    `mapstructure:"store"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// CarouselConfig holds carousel behaviour settings
type CarouselConfig struct {
	Snap         bool `mapstructure:"snap"`          // Settle drags on item boundaries (required for focus tracking)
	ItemWidth    int  `mapstructure:"item_width"`    // Card width in cells
	RestoreFocus bool `mapstructure:"restore_focus"` // Reopen on the last focused item
}

// CatalogConfig holds catalog source settings
type CatalogConfig struct {
	File   string   `mapstructure:"file"`   // TOML catalog; built-in sample when empty
	Hidden []string `mapstructure:"hidden"` // Glob patterns matched against item IDs
}

// StoreConfig holds persistence settings
type StoreConfig struct {
	Path string `mapstructure:"path"` // Directory for the focus database; memory-only when empty
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

var envKeyReplacer = strings.NewReplacer(".", "_")

// MinItemWidth is the narrowest card that still fits a border and a title
const MinItemWidth = 8

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Carousel: CarouselConfig{
			Snap:         true,
			ItemWidth:    24,
			RestoreFocus: true,
		},
		Catalog: CatalogConfig{
			Hidden: []string{},
		},
		Store: StoreConfig{
			Path: defaultStorePath(),
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "reel", "reel.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "reel", "reel.log")
	}
}

// defaultStorePath returns the default store directory for the current OS
func defaultStorePath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "reel", "state")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "reel", "state")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "reel")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "reel")
	}
}

// LoadConfig loads configuration from file and environment. An explicit
// path must exist; the default locations are optional.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	viper.SetDefault("carousel.snap", cfg.Carousel.Snap)
	viper.SetDefault("carousel.item_width", cfg.Carousel.ItemWidth)
	viper.SetDefault("carousel.restore_focus", cfg.Carousel.RestoreFocus)
	viper.SetDefault("catalog.file", cfg.Catalog.File)
	viper.SetDefault("catalog.hidden", cfg.Catalog.Hidden)
	viper.SetDefault("store.path", cfg.Store.Path)
	viper.SetDefault("logging.file", cfg.Logging.File)
	viper.SetDefault("logging.level", cfg.Logging.Level)

	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(defaultConfigPath())
		viper.AddConfigPath(".")
	}

	// Environment variable overrides (REEL_CAROUSEL_SNAP, ...)
	viper.SetEnvPrefix("REEL")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that would make the UI unusable
func (c *Config) Validate() error {
	if c.Carousel.ItemWidth < MinItemWidth {
		return fmt.Errorf("carousel.item_width must be at least %d, got %d", MinItemWidth, c.Carousel.ItemWidth)
	}
	return nil
}

// WatchConfig reloads the config file on change and hands the new config to
// onChange. Invalid edits are logged and ignored. Returns false when no
// config file was loaded.
func WatchConfig(logger *slog.Logger, onChange func(*Config)) bool {
	if viper.ConfigFileUsed() == "" {
		return false
	}

	viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg := DefaultConfig()
		if err := viper.Unmarshal(cfg); err != nil {
			logger.Warn("ignoring config change", "file", e.Name, "error", err)
			return
		}
		if err := cfg.Validate(); err != nil {
			logger.Warn("ignoring config change", "file", e.Name, "error", err)
			return
		}
		logger.Info("config reloaded", "file", e.Name)
		onChange(cfg)
	})
	viper.WatchConfig()
	return true
}

// SaveConfig writes cfg back to the file it was loaded from, or to the
// default location if none was loaded. Returns the path written.
func SaveConfig(cfg *Config) (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configFile = filepath.Join(defaultConfigPath(), "config.yaml")
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.Set("carousel.snap", cfg.Carousel.Snap)
	viper.Set("carousel.item_width", cfg.Carousel.ItemWidth)
	viper.Set("carousel.restore_focus", cfg.Carousel.RestoreFocus)

	viper.Set("catalog.file", cfg.Catalog.File)
	viper.Set("catalog.hidden", cfg.Catalog.Hidden)

	viper.Set("store.path", cfg.Store.Path)

	viper.Set("logging.file", cfg.Logging.File)
	viper.Set("logging.level", cfg.Logging.Level)

	if err := viper.WriteConfigAs(configFile); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configFile, nil
}
