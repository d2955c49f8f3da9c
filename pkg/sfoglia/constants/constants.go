// Package constants defines shared constants and default configuration
// values used throughout the sfoglia navigator.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// PlatformEnvVar names the environment variable custom firmwares use to
// announce the device platform.
const PlatformEnvVar = "PLATFORM"

// WindowWidthEnvVar overrides the window width in development mode.
const WindowWidthEnvVar = "WINDOW_WIDTH"

// WindowHeightEnvVar overrides the window height in development mode.
const WindowHeightEnvVar = "WINDOW_HEIGHT"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Default transition and gesture tuning.
const (
	// DefaultTransitionDuration is the open/close animation length.
	DefaultTransitionDuration = 250 * time.Millisecond

	// DefaultGestureResponseDistance is the fraction of the card width a
	// swipe must travel to dismiss the card on release.
	DefaultGestureResponseDistance = 0.5

	// DefaultGestureVelocityThreshold is the horizontal release velocity
	// in pixels per millisecond that dismisses regardless of distance.
	DefaultGestureVelocityThreshold = 0.35

	// DefaultTouchDevicePath is the evdev touch panel node on devices
	// that have one.
	DefaultTouchDevicePath = "/dev/input/event4"
)
