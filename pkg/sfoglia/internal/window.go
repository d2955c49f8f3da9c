package internal

import (
	"os"
	"strconv"

	"github.com/pheN1x/sfoglia/pkg/sfoglia/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Window wraps the SDL window and renderer the card stack draws into.
type Window struct {
	Window          *sdl.Window
	Renderer        *sdl.Renderer
	Title           string
	hasVSync        bool
	lastPresentTime uint64
}

// WindowConfig selects SDL window flags for the navigator's window.
type WindowConfig struct {
	Borderless bool // Remove window decorations
	Resizable  bool // Allow window resizing
	Fullscreen bool // Fullscreen at desktop resolution
}

func (wc WindowConfig) toSDLFlags() uint32 {
	flags := uint32(sdl.WINDOW_SHOWN)

	if wc.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if wc.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	if wc.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	return flags
}

func initWindow(title string, cfg WindowConfig) *Window {
	width, height := int32(0), int32(0)

	displayMode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		GetLogger().Error("Failed to get display mode", "error", err)
		width, height = 1024, 768
	} else {
		width, height = displayMode.W, displayMode.H
	}

	x, y := int32(0), int32(0)

	if constants.IsDevMode() {
		cfg.Borderless = false
		cfg.Fullscreen = false
		x, y = int32(50), int32(50)
		width = devSizeOverride(constants.WindowWidthEnvVar, 1024)
		height = devSizeOverride(constants.WindowHeightEnvVar, 768)
	}

	GetLogger().Debug("Initializing SDL window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, cfg.toSDLFlags())
	if err != nil {
		panic(err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		GetLogger().Error("Failed to create renderer", "error", err)
		os.Exit(1)
	}

	renderer.SetLogicalSize(width, height)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   window,
		Renderer: renderer,
		Title:    title,
		hasVSync: vsync,
	}
}

func devSizeOverride(envVar string, fallback int32) int32 {
	v := os.Getenv(envVar)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		GetLogger().Warn("Invalid window size override; using default", "var", envVar, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func (w *Window) closeWindow() {
	w.Renderer.Destroy()
	w.Window.Destroy()
}

// GetWindow returns the window created by Init.
func GetWindow() *Window {
	return window
}

func (w *Window) GetWidth() int32 {
	width, _ := w.Window.GetSize()
	return width
}

func (w *Window) GetHeight() int32 {
	_, height := w.Window.GetSize()
	return height
}

// Present swaps the render buffer and enforces ~60fps frame timing when
// VSync is not available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}
