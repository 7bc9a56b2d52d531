package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/devsheet/internal/render"
)

const MinSidebarWidth = 16

// Config holds application configuration.
type Config struct {
	UI   UIConfig            `mapstructure:"ui"`
	Log  LogConfig           `mapstructure:"log"`
	Keys map[string][]string `mapstructure:"keys"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Style        string `mapstructure:"style"`
	SidebarWidth int    `mapstructure:"sidebar_width"`
	WrapWidth    int    `mapstructure:"wrap_width"`
	StartTopic   string `mapstructure:"start_topic"`
	ShowCredit   bool   `mapstructure:"show_credit"`
}

type LogConfig struct {
	File string `mapstructure:"file"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ui.style", "auto")
	v.SetDefault("ui.sidebar_width", 28)
	v.SetDefault("ui.wrap_width", 0)
	v.SetDefault("ui.start_topic", "Streamlit Basics")
	v.SetDefault("ui.show_credit", true)
	v.SetDefault("log.file", "")
}

// Default returns the built-in configuration.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

// DefaultPath is $DEVSHEET_CONFIG or ~/.config/devsheet/config.toml.
func DefaultPath() string {
	if p := os.Getenv("DEVSHEET_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "devsheet", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix DEVSHEET_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")
	v.SetConfigFile(DefaultPath())

	v.SetEnvPrefix("DEVSHEET")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.UI.Style = strings.ToLower(strings.TrimSpace(c.UI.Style))
	return c, nil
}

// Validate rejects settings the UI cannot honour.
func (c Config) Validate() error {
	if !render.ValidStyle(c.UI.Style) {
		return fmt.Errorf("ui.style: %w %q", render.ErrUnknownStyle, c.UI.Style)
	}
	if c.UI.SidebarWidth < MinSidebarWidth {
		return fmt.Errorf("ui.sidebar_width must be at least %d, got %d", MinSidebarWidth, c.UI.SidebarWidth)
	}
	if c.UI.WrapWidth < 0 {
		return fmt.Errorf("ui.wrap_width must not be negative, got %d", c.UI.WrapWidth)
	}
	for action, keys := range c.Keys {
		if len(keys) == 0 {
			return fmt.Errorf("keys.%s: at least one key is required", action)
		}
	}
	return nil
}

// Save writes cfg to path, creating the config directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.style", cfg.UI.Style)
	v.Set("ui.sidebar_width", cfg.UI.SidebarWidth)
	v.Set("ui.wrap_width", cfg.UI.WrapWidth)
	v.Set("ui.start_topic", cfg.UI.StartTopic)
	v.Set("ui.show_credit", cfg.UI.ShowCredit)
	v.Set("log.file", cfg.Log.File)
	for action, keys := range cfg.Keys {
		v.Set("keys."+action, keys)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
