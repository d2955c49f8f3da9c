package sfoglia

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pheN1x/sfoglia/pkg/sfoglia/constants"
)

// Config tunes transition timing and gesture behavior for the card
// view. Values left zero in a config file fall back to the defaults.
type Config struct {
	TransitionMillis         int     `toml:"transition_millis"`          // Open/close animation length in milliseconds
	GestureResponseDistance  float64 `toml:"gesture_response_distance"`  // Fraction of card width a swipe must travel to dismiss
	GestureVelocityThreshold float64 `toml:"gesture_velocity_threshold"` // Release velocity (px/ms) that dismisses regardless of distance
	TouchDevice              string  `toml:"touch_device"`               // evdev touch panel path; empty disables the gesture reader
	Locale                   string  `toml:"locale"`                     // BCP 47 tag for header labels (default "en")
	LogPath                  string  `toml:"log_path"`
	LogLevel                 string  `toml:"log_level"`
}

// DefaultConfig returns the tuning used when no config file exists.
func DefaultConfig() Config {
	return Config{
		TransitionMillis:         int(constants.DefaultTransitionDuration / time.Millisecond),
		GestureResponseDistance:  constants.DefaultGestureResponseDistance,
		GestureVelocityThreshold: constants.DefaultGestureVelocityThreshold,
		TouchDevice:              constants.DefaultTouchDevicePath,
		Locale:                   "en",
	}
}

// LoadConfig reads a TOML config file, applies defaults for unset
// fields, and validates the result.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.TransitionMillis == 0 {
		c.TransitionMillis = defaults.TransitionMillis
	}
	if c.GestureResponseDistance == 0 {
		c.GestureResponseDistance = defaults.GestureResponseDistance
	}
	if c.GestureVelocityThreshold == 0 {
		c.GestureVelocityThreshold = defaults.GestureVelocityThreshold
	}
	if c.Locale == "" {
		c.Locale = defaults.Locale
	}
}

func (c Config) validate() error {
	if c.TransitionMillis < 0 {
		return fmt.Errorf("config: transition_millis must not be negative, got %d", c.TransitionMillis)
	}
	if c.GestureResponseDistance < 0 || c.GestureResponseDistance > 1 {
		return fmt.Errorf("config: gesture_response_distance must be within [0, 1], got %g", c.GestureResponseDistance)
	}
	if c.GestureVelocityThreshold < 0 {
		return fmt.Errorf("config: gesture_velocity_threshold must not be negative, got %g", c.GestureVelocityThreshold)
	}
	return nil
}

// TransitionDuration returns the configured animation length.
func (c Config) TransitionDuration() time.Duration {
	return time.Duration(c.TransitionMillis) * time.Millisecond
}
