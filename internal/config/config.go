package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/fireflytui/internal/store"
)

// Navigation layouts.
const (
	NavigationStack = "stack"
	NavigationTabs  = "tabs"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	UI       UIConfig
	Feedback FeedbackConfig
	Log      LogConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Currency    string
	Currencies  []string
	RangeMonths int `mapstructure:"range_months"`
	Timezone    string
	Navigation  string
	Theme       string
}

// FeedbackConfig controls the cue played on range shifts.
type FeedbackConfig struct {
	Bell bool
}

// LogConfig holds the log destination. The terminal belongs to the UI, so
// logs always go to a file.
type LogConfig struct {
	File string
}

// Load reads configuration from file and env. Env var overrides use prefix FIREFLYTUI_.
func Load() (Config, error) {
	v := viper.New()

	home := os.Getenv("HOME")
	// default values
	v.SetDefault("database.path", filepath.Join(home, ".local", "share", "fireflytui", "fireflytui.db"))
	v.SetDefault("ui.currency", "USD")
	v.SetDefault("ui.currencies", []string{"USD", "EUR", "GBP", "AUD"})
	v.SetDefault("ui.range_months", 1)
	v.SetDefault("ui.timezone", "Local")
	v.SetDefault("ui.navigation", NavigationStack)
	v.SetDefault("ui.theme", "mocha")
	v.SetDefault("feedback.bell", true)
	v.SetDefault("log.file", filepath.Join(home, ".local", "state", "fireflytui", "fireflytui.log"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("FIREFLYTUI_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "fireflytui"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("FIREFLYTUI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate normalizes currency codes and rejects settings the UI cannot honor.
func (c *Config) Validate() error {
	code, err := store.NormalizeCurrency(c.UI.Currency)
	if err != nil {
		return fmt.Errorf("ui.currency: %w", err)
	}
	c.UI.Currency = code

	codes := make([]string, 0, len(c.UI.Currencies)+1)
	seen := map[string]bool{}
	for _, raw := range append([]string{code}, c.UI.Currencies...) {
		norm, err := store.NormalizeCurrency(raw)
		if err != nil {
			return fmt.Errorf("ui.currencies: %w", err)
		}
		if !seen[norm] {
			seen[norm] = true
			codes = append(codes, norm)
		}
	}
	c.UI.Currencies = codes

	if !store.ValidRangeMonths(c.UI.RangeMonths) {
		return fmt.Errorf("ui.range_months: %w: %d", store.ErrUnsupportedRange, c.UI.RangeMonths)
	}
	switch c.UI.Navigation {
	case NavigationStack, NavigationTabs:
	default:
		return fmt.Errorf("ui.navigation: unknown layout %q", c.UI.Navigation)
	}
	return nil
}

// Save writes the provided config to disk, creating the config directory if needed.
// The filter screen uses it to remember the default currency and range width.
func Save(cfg Config) error {
	path := os.Getenv("FIREFLYTUI_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "fireflytui", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("ui.currency", cfg.UI.Currency)
	v.Set("ui.currencies", cfg.UI.Currencies)
	v.Set("ui.range_months", cfg.UI.RangeMonths)
	v.Set("ui.timezone", cfg.UI.Timezone)
	v.Set("ui.navigation", cfg.UI.Navigation)
	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("feedback.bell", cfg.Feedback.Bell)
	v.Set("log.file", cfg.Log.File)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
