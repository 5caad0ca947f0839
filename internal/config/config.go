// Package config loads hoverdeck settings from defaults, an optional file
// and HOVERDECK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/phinze/hoverdeck/internal/content"
	"github.com/phinze/hoverdeck/internal/coordinator"
	"github.com/phinze/hoverdeck/internal/overlay"
	"github.com/phinze/hoverdeck/internal/placement"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the full application configuration.
type Config struct {
	Tooltip TooltipConfig `mapstructure:"tooltip"`
	Logging LoggingConfig `mapstructure:"logging"`
	Deck    DeckConfig    `mapstructure:"deck"`
}

// TooltipConfig holds interaction timing and overlay appearance.
type TooltipConfig struct {
	Enabled               bool          `mapstructure:"enabled"`
	ShowDelay             time.Duration `mapstructure:"show_delay"`
	TouchSuppression      time.Duration `mapstructure:"touch_suppression"`
	TouchHitSize          float64       `mapstructure:"touch_hit_size"`
	ArrowInset            float64       `mapstructure:"arrow_inset"`
	ShowFade              time.Duration `mapstructure:"show_fade"`
	HideFade              time.Duration `mapstructure:"hide_fade"`
	Opacity               float64       `mapstructure:"opacity"`
	HighlightedValueLabel string        `mapstructure:"highlighted_value_label"`
}

// LoggingConfig selects log level and output format.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DeckConfig configures the Stream Deck host.
type DeckConfig struct {
	Brightness    int           `mapstructure:"brightness"`
	Regions       int           `mapstructure:"regions"`
	FrameInterval time.Duration `mapstructure:"frame_interval"`
}

// Coordinator returns the interaction policy.
func (t TooltipConfig) Coordinator() coordinator.Config {
	return coordinator.Config{
		ShowDelay:        t.ShowDelay,
		TouchSuppression: t.TouchSuppression,
		TouchHitSize:     t.TouchHitSize,
	}
}

// Overlay returns the overlay fade and placement options.
func (t TooltipConfig) Overlay() overlay.Options {
	return overlay.Options{
		Opacity:    t.Opacity,
		ShowFade:   t.ShowFade,
		HideFade:   t.HideFade,
		ArrowInset: t.ArrowInset,
	}
}

// Labels returns the localized labels.
func (t TooltipConfig) Labels() content.Labels {
	return content.Labels{HighlightedValue: t.HighlightedValueLabel}
}

// setDefaults registers every default with v.
func setDefaults(v *viper.Viper) {
	ov := overlay.DefaultOptions()
	co := coordinator.DefaultConfig()

	v.SetDefault("tooltip.enabled", true)
	v.SetDefault("tooltip.show_delay", co.ShowDelay)
	v.SetDefault("tooltip.touch_suppression", co.TouchSuppression)
	v.SetDefault("tooltip.touch_hit_size", placement.TouchHitSize)
	v.SetDefault("tooltip.arrow_inset", placement.ArrowInset)
	v.SetDefault("tooltip.show_fade", ov.ShowFade)
	v.SetDefault("tooltip.hide_fade", ov.HideFade)
	v.SetDefault("tooltip.opacity", ov.Opacity)
	v.SetDefault("tooltip.highlighted_value_label", content.DefaultHighlightedValueLabel)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("deck.brightness", 80)
	v.SetDefault("deck.regions", 4)
	v.SetDefault("deck.frame_interval", 33*time.Millisecond)
}

// Load reads configuration. An empty path only uses defaults and the
// environment; otherwise the file must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("HOVERDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file at %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration with nothing but defaults applied.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		// Defaults are static; failing here is a programming error.
		panic(fmt.Sprintf("config: defaults do not validate: %v", err))
	}
	return cfg
}

// Validate checks ranges.
func (c *Config) Validate() error {
	t := c.Tooltip
	switch {
	case t.ShowDelay < 0:
		return fmt.Errorf("%w: tooltip.show_delay must not be negative", ErrInvalid)
	case t.TouchSuppression < 0:
		return fmt.Errorf("%w: tooltip.touch_suppression must not be negative", ErrInvalid)
	case t.ArrowInset < 0:
		return fmt.Errorf("%w: tooltip.arrow_inset must not be negative", ErrInvalid)
	case t.TouchHitSize < 0:
		return fmt.Errorf("%w: tooltip.touch_hit_size must not be negative", ErrInvalid)
	case t.ShowFade < 0 || t.HideFade < 0:
		return fmt.Errorf("%w: fade durations must not be negative", ErrInvalid)
	case t.Opacity < 0 || t.Opacity > 1:
		return fmt.Errorf("%w: tooltip.opacity must be within [0,1], got %v", ErrInvalid, t.Opacity)
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logging.format must be console or json, got %q", ErrInvalid, c.Logging.Format)
	}

	d := c.Deck
	switch {
	case d.Brightness < 0 || d.Brightness > 100:
		return fmt.Errorf("%w: deck.brightness must be within [0,100], got %d", ErrInvalid, d.Brightness)
	case d.Regions < 1:
		return fmt.Errorf("%w: deck.regions must be at least 1, got %d", ErrInvalid, d.Regions)
	case d.FrameInterval <= 0:
		return fmt.Errorf("%w: deck.frame_interval must be positive", ErrInvalid)
	}

	return nil
}
