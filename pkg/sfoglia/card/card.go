// Package card implements the animated card view that consumes the
// navigator's render state. It keeps one Card per mounted route, drives
// open/close slide animations and swipe-to-dismiss gestures, and
// reports animation completion back through the navigator's lifecycle
// handlers.
package card

import (
	"time"

	"github.com/pheN1x/sfoglia/pkg/sfoglia"
)

// Phase is a card's animation phase.
type Phase int

const (
	PhaseOpening Phase = iota // Sliding in from the right
	PhaseSettled              // Fully presented
	PhaseClosing              // Sliding out to the right
)

func (p Phase) GetName() string {
	switch p {
	case PhaseOpening:
		return "Opening"
	case PhaseSettled:
		return "Settled"
	case PhaseClosing:
		return "Closing"
	default:
		return "Unknown"
	}
}

// Card animates a single route. progress runs from 0 (parked off-screen
// right) to 1 (fully presented); gestures position it directly while a
// drag is active.
type Card struct {
	Route sfoglia.Route

	phase     Phase
	progress  float64
	duration  time.Duration
	dragging  bool
	completed bool
}

func newCard(route sfoglia.Route, opening bool, duration time.Duration) *Card {
	c := &Card{Route: route, duration: duration}
	if opening {
		c.phase = PhaseOpening
	} else {
		c.phase = PhaseSettled
		c.progress = 1
	}
	return c
}

// Phase returns the current animation phase.
func (c *Card) Phase() Phase { return c.phase }

// Progress returns the presentation progress in [0, 1].
func (c *Card) Progress() float64 { return c.progress }

// Dragging reports whether a gesture is positioning the card.
func (c *Card) Dragging() bool { return c.dragging }

// Completed reports whether the card has finished its current open or
// close animation and already reported it.
func (c *Card) Completed() bool { return c.completed }

// BeginClose starts the exit animation from the current position.
func (c *Card) BeginClose() {
	c.phase = PhaseClosing
	c.dragging = false
	c.completed = false
}

// BeginOpen animates the card back to fully presented, e.g. after a
// cancelled dismissal gesture.
func (c *Card) BeginOpen() {
	c.phase = PhaseOpening
	c.dragging = false
	c.completed = false
}

// Drag positions the card directly from a rightward touch offset.
func (c *Card) Drag(offsetPx, width float64) {
	if width <= 0 {
		return
	}
	c.dragging = true
	c.progress = clamp01(1 - offsetPx/width)
}

// Advance moves the animation by dt and reports whether the card
// reached its target this step. Completion is reported once.
func (c *Card) Advance(dt time.Duration) bool {
	if c.dragging || c.completed {
		return false
	}

	step := 1.0
	if c.duration > 0 {
		step = float64(dt) / float64(c.duration)
	}

	switch c.phase {
	case PhaseOpening:
		c.progress += step
		if c.progress >= 1 {
			c.progress = 1
			c.phase = PhaseSettled
			c.completed = true
			return true
		}
	case PhaseClosing:
		c.progress -= step
		if c.progress <= 0 {
			c.progress = 0
			c.completed = true
			return true
		}
	}
	return false
}

// Offset converts progress into a horizontal pixel offset for a card of
// the given width.
func (c *Card) Offset(width int32) int32 {
	return int32(float64(width) * (1 - easeOutCubic(c.progress)))
}

func easeOutCubic(t float64) float64 {
	t = clamp01(t)
	u := 1 - t
	return 1 - u*u*u
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
