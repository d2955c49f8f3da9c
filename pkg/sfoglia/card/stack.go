package card

import (
	"log/slog"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"

	"github.com/pheN1x/sfoglia/pkg/sfoglia"
	"github.com/pheN1x/sfoglia/pkg/sfoglia/internal"
)

// Stack is the card view: it consumes the navigator's render state,
// animates one Card per mounted route, and reports every animation
// completion back through the navigator's lifecycle handlers.
//
// All methods run on the render loop timeline. The only concurrency is
// the gesture reader goroutine, which communicates exclusively through
// a channel and the in-flight flag.
type Stack struct {
	nav      *sfoglia.Navigator
	cfg      sfoglia.Config
	cards    map[string]*Card
	header   *header
	gestures *gestureReader
	inFlight *atomic.Bool // Read by the gesture goroutine to ignore swipes mid-transition
	lastStep uint64
	log      *slog.Logger
}

// NewStack builds the card view for a navigator. The touch panel is
// optional; when it cannot be opened the stack works without gestures.
func NewStack(nav *sfoglia.Navigator, cfg sfoglia.Config) *Stack {
	s := &Stack{
		nav:      nav,
		cfg:      cfg,
		cards:    make(map[string]*Card),
		header:   newHeader(cfg.Locale),
		inFlight: atomic.NewBool(false),
		log:      internal.GetLogger(),
	}

	if cfg.TouchDevice != "" {
		reader, err := openGestureReader(cfg.TouchDevice, s.inFlight)
		if err != nil {
			s.log.Warn("touch device unavailable, swipe gestures disabled", "path", cfg.TouchDevice, "error", err)
		} else {
			s.gestures = reader
		}
	}

	s.sync()
	return s
}

// LoadMessageFile adds a TOML translation file for header labels.
func (s *Stack) LoadMessageFile(path string) error {
	return s.header.LoadMessageFile(path, s.cfg.Locale)
}

// sync aligns the card table with the navigator's current render
// state: cards are created for newly mounted routes (animating only
// when the route is marked entering), switched to closing for leaving
// routes, and dropped for routes that were unmounted.
func (s *Stack) sync() {
	state := s.nav.State()
	mounted := make(map[string]bool, len(state.Routes))

	for _, route := range state.Routes {
		mounted[route.Key] = true

		c, ok := s.cards[route.Key]
		if !ok {
			opening := state.IsEntering(route.Key)
			c = newCard(route, opening, s.cfg.TransitionDuration())
			s.cards[route.Key] = c
			if opening {
				s.nav.HandleTransitionStart(route, false)
			}
			continue
		}

		if state.IsLeaving(route.Key) && c.Phase() != PhaseClosing {
			c.BeginClose()
			s.nav.HandleTransitionStart(route, true)
			continue
		}

		// A cancelled dismissal: the route is back on the live path
		// while its card is still closing. Completed cards are left
		// alone; they are waiting for the owner's pop to flow back.
		if !state.IsLeaving(route.Key) && c.Phase() == PhaseClosing && !c.Completed() && !c.Dragging() {
			c.BeginOpen()
		}
	}

	for key := range s.cards {
		if !mounted[key] {
			delete(s.cards, key)
		}
	}

	s.inFlight.Store(!state.Settled())
}

// Step advances all animations to the given sdl.GetTicks64 timestamp,
// pumps pending gesture events, and fires lifecycle callbacks for
// cards that finished animating this frame.
func (s *Stack) Step(now uint64) {
	s.pumpGestures()

	if s.lastStep == 0 {
		s.lastStep = now
	}
	dt := time.Duration(now-s.lastStep) * time.Millisecond
	s.lastStep = now

	state := s.nav.State()
	for _, route := range state.Routes {
		c, ok := s.cards[route.Key]
		if !ok {
			continue
		}

		if c.Advance(dt) {
			switch c.Phase() {
			case PhaseSettled:
				s.nav.HandleOpenComplete(route)
				s.nav.HandleTransitionEnd(route, false)
			case PhaseClosing:
				s.nav.HandleCloseComplete(route)
				s.nav.HandleTransitionEnd(route, true)
			}
			continue
		}

		// A gesture already closed this card before the external owner
		// caught up. Once the owner's update marks it leaving, report
		// the close again so the navigator can unmount it.
		if c.Completed() && c.Phase() == PhaseClosing && state.IsLeaving(route.Key) {
			s.nav.HandleCloseComplete(route)
		}
	}

	s.sync()
}

// pumpGestures drains the gesture channel and applies swipes to the
// focused card.
func (s *Stack) pumpGestures() {
	if s.gestures == nil {
		return
	}
	for {
		select {
		case ev := <-s.gestures.Events():
			s.handleGesture(ev)
		default:
			return
		}
	}
}

func (s *Stack) handleGesture(ev GestureEvent) {
	state := s.nav.State()
	if len(state.Routes) < 2 {
		// Nothing beneath the focused card to reveal.
		return
	}

	top := state.Routes[len(state.Routes)-1]
	if state.IsLeaving(top.Key) || !s.nav.GesturesEnabled(top) {
		return
	}
	c, ok := s.cards[top.Key]
	if !ok || c.Completed() {
		return
	}

	width := float64(internal.GetWindow().GetWidth())

	switch ev.Kind {
	case GestureDrag:
		if !c.Dragging() {
			s.nav.HandleTransitionStart(top, true)
		}
		c.Drag(ev.DX, width)
	case GestureRelease:
		if !c.Dragging() {
			return
		}
		if shouldDismiss(ev.DX/width, ev.Velocity, s.cfg) {
			s.log.Debug("swipe dismissed focused card", "key", top.Key)
			c.BeginClose()
		} else {
			c.BeginOpen()
		}
	}
}

// Render draws every mounted card bottom-to-top at its animated offset
// and the header bar over the focused card, then presents the frame.
// Routes without a resolvable scene render as empty slots but keep
// their place in the stack.
func (s *Stack) Render() {
	window := internal.GetWindow()
	renderer := window.Renderer
	width, height := window.GetWidth(), window.GetHeight()

	renderer.SetDrawColor(0, 0, 0, 255)
	renderer.Clear()

	state := s.nav.State()
	for _, route := range state.Routes {
		c, ok := s.cards[route.Key]
		if !ok {
			continue
		}

		offset := c.Offset(width)
		frame := sdl.Rect{X: offset, Y: 0, W: width, H: height}

		scene := s.nav.SceneFor(route)
		if scene == nil {
			continue
		}
		if err := scene.Draw(renderer, frame); err != nil {
			s.log.Error("scene draw failed", "key", route.Key, "error", err)
		}
	}

	if len(state.Routes) > 0 {
		top := state.Routes[len(state.Routes)-1]
		if c, ok := s.cards[top.Key]; ok {
			s.header.draw(renderer, top, s.nav.PreviousRoute(top), width, c.Offset(width))
		}
	}

	window.Present()
}

// Close stops the gesture reader and releases header textures.
func (s *Stack) Close() {
	if s.gestures != nil {
		s.gestures.Close()
		s.gestures = nil
	}
	s.header.destroy()
}
