package sfoglia

import (
	"log/slog"

	"github.com/pheN1x/sfoglia/pkg/sfoglia/constants"
	"github.com/pheN1x/sfoglia/pkg/sfoglia/internal"
)

// Options configures navigator initialization.
type Options struct {
	WindowTitle string // Window title displayed in windowed mode
	FontPath    string // TTF file for header text; empty renders headers without text
	LogPath     string // Full path for the log file including filename (creates parent directories)
	LogLevel    string // Minimum log level ("debug", "info", "warn", "error")
	Borderless  bool   // Remove window decorations
	Fullscreen  bool   // Fullscreen at desktop resolution
}

// Init initializes SDL, the window, fonts, and logging. Must be called
// before creating a card view. Pure state derivation (the reconciler,
// store, and Navigator) works without Init; only the card package needs
// it.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	} else if constants.IsDevMode() {
		internal.SetLogLevel(slog.LevelDebug)
	} else {
		internal.SetLogLevel(slog.LevelError)
	}

	internal.Init(options.WindowTitle, internal.WindowConfig{
		Borderless: options.Borderless,
		Fullscreen: options.Fullscreen,
	}, options.FontPath)
}

// Close releases all SDL resources. Must be called before program exit
// to prevent resource leaks.
func Close() {
	internal.Cleanup()
}

// GetLogger returns the structured logger used by the navigator.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// SetRawLogLevel parses and sets the log level from a string
// (e.g. "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
