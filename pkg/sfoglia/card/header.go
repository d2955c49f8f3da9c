package card

import (
	"image"
	"strings"
	"unsafe"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
	"golang.org/x/text/language"

	"github.com/pheN1x/sfoglia/pkg/sfoglia"
	"github.com/pheN1x/sfoglia/pkg/sfoglia/internal"
)

const (
	headerBarHeight = 56
	chevronSize     = 24
)

const backChevronSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path d="M15.5 3.5 7 12l8.5 8.5 2-2L11 12l6.5-6.5z" fill="#ffffff"/></svg>`

// header renders the translucent bar above the focused card: centered
// route title, and a back chevron with the previous route's name when
// there is somewhere to go back to.
type header struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	backLabel string
	icon      *sdl.Texture
	textures  *textureCache
}

func newHeader(locale string) *header {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	h := &header{
		bundle:   bundle,
		textures: newTextureCache(defaultTextureBudget),
	}
	h.SetLocale(locale)
	return h
}

// LoadMessageFile adds a TOML translation file to the header's bundle
// and re-resolves the labels.
func (h *header) LoadMessageFile(path, locale string) error {
	if _, err := h.bundle.LoadMessageFile(path); err != nil {
		return err
	}
	h.SetLocale(locale)
	return nil
}

// SetLocale re-resolves localized labels for the given BCP 47 tag.
func (h *header) SetLocale(locale string) {
	h.localizer = i18n.NewLocalizer(h.bundle, locale)
	label, err := h.localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{ID: "BackButton", Other: "Back"},
	})
	if err != nil || label == "" {
		label = "Back"
	}
	h.backLabel = label
}

func (h *header) draw(renderer *sdl.Renderer, top sfoglia.Route, previous *sfoglia.Route, width int32, offset int32) {
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	renderer.SetDrawColor(0, 0, 0, 160)
	renderer.FillRect(&sdl.Rect{X: offset, Y: 0, W: width, H: headerBarHeight})

	fonts := internal.GetFonts()

	if fonts.Header != nil && top.Name != "" {
		if texture, w, ht := h.textTexture(renderer, fonts.Header, "title:"+top.Name, top.Name); texture != nil {
			renderer.Copy(texture, nil, &sdl.Rect{
				X: offset + (width-w)/2,
				Y: (headerBarHeight - ht) / 2,
				W: w,
				H: ht,
			})
		}
	}

	if previous == nil {
		return
	}

	if h.icon == nil {
		icon, err := rasterizeChevron(renderer, chevronSize)
		if err != nil {
			internal.GetLogger().Warn("back chevron rasterization failed", "error", err)
		}
		h.icon = icon
	}
	x := offset + 16
	if h.icon != nil {
		renderer.Copy(h.icon, nil, &sdl.Rect{X: x, Y: (headerBarHeight - chevronSize) / 2, W: chevronSize, H: chevronSize})
		x += chevronSize + 8
	}

	label := previous.Name
	if label == "" {
		label = h.backLabel
	}
	if fonts.Label != nil {
		if texture, w, ht := h.textTexture(renderer, fonts.Label, "back:"+label, label); texture != nil {
			renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: (headerBarHeight - ht) / 2, W: w, H: ht})
		}
	}
}

func (h *header) textTexture(renderer *sdl.Renderer, font *ttf.Font, key, text string) (*sdl.Texture, int32, int32) {
	if texture := h.textures.get(key); texture != nil {
		_, _, w, ht, err := texture.Query()
		if err == nil {
			return texture, w, ht
		}
	}

	surface, err := font.RenderUTF8Blended(text, sdl.Color{R: 255, G: 255, B: 255, A: 255})
	if err != nil {
		return nil, 0, 0
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, 0, 0
	}
	h.textures.put(key, texture)
	return texture, surface.W, surface.H
}

// rasterizeChevron renders the embedded back chevron SVG into an SDL
// texture.
func rasterizeChevron(renderer *sdl.Renderer, size int) (*sdl.Texture, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(backChevronSVG))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1.0)

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		int32(size), int32(size), 32, int32(rgba.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888),
	)
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	return renderer.CreateTextureFromSurface(surface)
}

func (h *header) destroy() {
	h.textures.purge()
	if h.icon != nil {
		h.icon.Destroy()
		h.icon = nil
	}
}
