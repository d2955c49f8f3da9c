package card

import (
	"time"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"

	"github.com/pheN1x/sfoglia/pkg/sfoglia"
)

// GestureKind classifies a touch gesture event.
type GestureKind int

const (
	GestureDrag    GestureKind = iota // Finger moving right while touching
	GestureRelease                    // Finger lifted
)

// GestureEvent is a rightward swipe observation from the touch panel.
type GestureEvent struct {
	Kind     GestureKind
	DX       float64 // Rightward travel in pixels since the touch began
	Velocity float64 // Pixels per millisecond, release events only
}

// gestureReader turns raw evdev touch events into swipe events. The
// read loop runs on its own goroutine; it only writes to the event
// channel and reads the suppress flag, never touching render state.
// SDL finger events are not delivered on the supported firmwares, so
// the touch panel is read directly.
type gestureReader struct {
	dev      *evdev.InputDevice
	events   chan GestureEvent
	suppress *atomic.Bool
	done     chan struct{}
}

func openGestureReader(path string, suppress *atomic.Bool) (*gestureReader, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, err
	}
	r := &gestureReader{
		dev:      dev,
		events:   make(chan GestureEvent, 16),
		suppress: suppress,
		done:     make(chan struct{}),
	}
	go r.loop()
	return r, nil
}

func (r *gestureReader) Events() <-chan GestureEvent {
	return r.events
}

func (r *gestureReader) Close() {
	close(r.done)
	r.dev.Close()
}

func (r *gestureReader) loop() {
	var (
		touching       bool
		startX, lastX  int32
		touchStartedAt time.Time
	)
	startX, lastX = -1, -1

	for {
		select {
		case <-r.done:
			return
		default:
		}

		ev, err := r.dev.ReadOne()
		if err != nil {
			// Device closed or unplugged; the reader is done.
			return
		}

		switch {
		case ev.Type == evdev.EV_KEY && ev.Code == evdev.BTN_TOUCH:
			if ev.Value == 1 {
				touching = true
				startX, lastX = -1, -1
				touchStartedAt = time.Now()
				continue
			}
			if !touching {
				continue
			}
			touching = false
			if r.suppress.Load() || startX < 0 {
				continue
			}
			dx := float64(lastX - startX)
			if dx <= 0 {
				continue
			}
			elapsed := time.Since(touchStartedAt).Milliseconds()
			if elapsed <= 0 {
				elapsed = 1
			}
			r.emit(GestureEvent{Kind: GestureRelease, DX: dx, Velocity: dx / float64(elapsed)})

		case ev.Type == evdev.EV_ABS && (ev.Code == evdev.ABS_X || ev.Code == evdev.ABS_MT_POSITION_X):
			if !touching {
				continue
			}
			if startX < 0 {
				startX, lastX = ev.Value, ev.Value
				continue
			}
			lastX = ev.Value
			if r.suppress.Load() {
				continue
			}
			if dx := float64(lastX - startX); dx > 0 {
				r.emit(GestureEvent{Kind: GestureDrag, DX: dx})
			}
		}
	}
}

// emit never blocks the read loop; the render loop drains the channel
// once per frame and stale drag events are safe to drop.
func (r *gestureReader) emit(ev GestureEvent) {
	select {
	case r.events <- ev:
	default:
	}
}

// shouldDismiss decides whether a released swipe dismisses the card:
// either the travel crossed the response distance or the finger was
// moving fast enough on release.
func shouldDismiss(travelFraction, velocity float64, cfg sfoglia.Config) bool {
	return travelFraction >= cfg.GestureResponseDistance || velocity >= cfg.GestureVelocityThreshold
}
