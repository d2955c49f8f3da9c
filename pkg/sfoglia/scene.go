package sfoglia

import "github.com/veandco/go-sdl2/sdl"

// Scene is the content mounted inside a card. Scenes are built by the
// route's descriptor and treated as opaque by the navigator; the card
// view calls Draw once per frame with the card's current frame.
type Scene interface {
	Draw(renderer *sdl.Renderer, frame sdl.Rect) error
}
