// Package platform detects which custom firmware the process is running
// on and encodes the per-platform defaults that depend on hardware.
package platform

import (
	"os"
	"strings"

	"github.com/pheN1x/sfoglia/pkg/sfoglia/constants"
)

// Platform identifies the device family the process runs on.
type Platform int

const (
	Desktop Platform = iota // Development desktop build
	NextUI                  // NextUI CFW on TrimUI TG-series hardware
	Cannoli                 // Cannoli CFW
)

func (p Platform) GetName() string {
	switch p {
	case Desktop:
		return "Desktop"
	case NextUI:
		return "NextUI"
	case Cannoli:
		return "Cannoli"
	default:
		return "Unknown"
	}
}

// Detect reads the PLATFORM environment variable set by the firmware.
// TG-series identifiers (TG5040, TG5050, ...) mean NextUI hardware;
// anything unrecognized is treated as a desktop build.
func Detect() Platform {
	value := strings.ToUpper(os.Getenv(constants.PlatformEnvVar))
	switch {
	case strings.Contains(value, "TG"):
		return NextUI
	case strings.Contains(value, "CANNOLI"):
		return Cannoli
	default:
		return Desktop
	}
}

// GestureDefault reports whether swipe gestures are available by
// default. NextUI targets ship without a touch panel, so gestures are
// off there unless a route explicitly opts in.
func (p Platform) GestureDefault() bool {
	return p != NextUI
}
