package internal

import (
	"os"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var window *Window

// Init brings up the SDL subsystems the card stack needs and creates
// the window. fontPath may be empty when no header text is rendered.
func Init(title string, cfg WindowConfig, fontPath string) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		os.Exit(1)
	}

	if err := ttf.Init(); err != nil {
		os.Exit(1)
	}

	img.Init(img.INIT_PNG)

	window = initWindow(title, cfg)

	if fontPath != "" {
		if err := InitFonts(fontPath); err != nil {
			GetLogger().Error("Failed to load fonts; headers will render without text", "path", fontPath, "error", err)
		}
	}
}

// Cleanup releases everything Init acquired, in reverse order.
func Cleanup() {
	if window != nil {
		window.closeWindow()
		window = nil
	}
	closeFonts()
	img.Quit()
	ttf.Quit()
	sdl.Quit()
	CloseLogger()
}
