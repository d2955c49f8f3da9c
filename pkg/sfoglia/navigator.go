package sfoglia

import (
	"log/slog"

	"github.com/pheN1x/sfoglia/pkg/sfoglia/internal"
	"github.com/pheN1x/sfoglia/pkg/sfoglia/platform"
)

// Navigator owns the render state on behalf of the card view. It
// re-derives the state on every external update via Apply and corrects
// it from the card view's animation-completion callbacks. All of its
// methods must be called from the same timeline that runs the render
// loop; nothing here is safe for concurrent use and nothing needs to
// be, since render state has exactly one owner.
type Navigator struct {
	state    RenderState
	dispatch DispatchFunc
	log      *slog.Logger
}

// NewNavigator derives the initial render state from the external
// owner's current state. dispatch receives correction actions; pass nil
// when the owner does not consume them.
func NewNavigator(initial NavigationState, descriptors DescriptorTable, dispatch DispatchFunc) (*Navigator, error) {
	state, err := NewRenderState(initial, descriptors)
	if err != nil {
		return nil, err
	}
	if dispatch == nil {
		dispatch = func(Action) {}
	}
	return &Navigator{
		state:    state,
		dispatch: dispatch,
		log:      internal.GetLogger(),
	}, nil
}

// Apply re-derives the render state from a changed external state.
// An InvariantError from the derivation leaves the previous render
// state untouched.
func (n *Navigator) Apply(next NavigationState, descriptors DescriptorTable) error {
	state, err := Reconcile(n.state, next, descriptors)
	if err != nil {
		return err
	}
	n.state = state
	n.log.Debug("navigation state applied",
		"mounted", len(state.Routes),
		"entering", state.EnteringKeys(),
		"leaving", state.LeavingKeys(),
		"replacing", state.ReplacingKeys())
	return nil
}

// State returns the current render state. The card view must treat it
// as read-only for the duration of one render pass.
func (n *Navigator) State() RenderState {
	return n.state
}

// Routes returns the mounted routes in render order, bottom to top.
func (n *Navigator) Routes() []Route {
	return append([]Route(nil), n.state.Routes...)
}

// HandleOpenComplete is called by the card view when a route's entrance
// animation finishes. It acknowledges the transition upstream, discards
// routes that were only mounted to sit beneath a push-style
// replacement, and clears any stale transition markers for the route.
func (n *Navigator) HandleOpenComplete(route Route) {
	n.dispatch(Action{Kind: ActionCompleteTransition, Key: route.Key})

	if !n.state.replacing.Empty() {
		kept := n.state.Routes[:0:0]
		for _, r := range n.state.Routes {
			if n.state.replacing.Has(r.Key) {
				continue
			}
			kept = append(kept, r)
		}
		n.log.Debug("replaced routes discarded", "keys", n.state.ReplacingKeys())
		n.state.Routes = kept
		n.state.replacing.clear()
	}

	// A route cannot logically be in both sets, but cancelled
	// transitions can leave stale markers behind.
	n.state.entering.Remove(route.Key)
	n.state.leaving.Remove(route.Key)
}

// HandleCloseComplete is called by the card view when a route's exit
// animation finishes, including gesture-driven dismissal.
//
// When the route is still present in the external owner's state the
// exit ran ahead of it: a pop correction is dispatched upstream and
// local state is left alone until the owner's update flows back through
// Apply. Otherwise the route is unmounted here and the transition is
// acknowledged for the newly focused route beneath it.
func (n *Navigator) HandleCloseComplete(route Route) {
	if containsKey(n.state.previousRoutes, route.Key) {
		n.log.Debug("exit finished ahead of owner, dispatching pop", "key", route.Key)
		n.dispatch(Action{Kind: ActionPop, Key: route.Key})
		return
	}

	idx := indexOfKey(n.state.Routes, route.Key)
	if idx < 0 {
		// A newer update already unmounted it; just drop stale markers.
		n.state.entering.Remove(route.Key)
		n.state.leaving.Remove(route.Key)
		n.state.replacing.Remove(route.Key)
		return
	}

	// Copy on remove: a render pass may still be ranging over a
	// snapshot that shares the old backing array.
	kept := n.state.Routes[:0:0]
	kept = append(kept, n.state.Routes[:idx]...)
	kept = append(kept, n.state.Routes[idx+1:]...)
	n.state.Routes = kept
	n.state.entering.Remove(route.Key)
	n.state.leaving.Remove(route.Key)
	n.state.replacing.Remove(route.Key)

	if len(n.state.Routes) == 0 {
		n.log.Error("close completion left no mounted routes", "key", route.Key)
		return
	}

	focus := idx - 1
	if focus < 0 {
		focus = 0
	}
	if focus >= len(n.state.Routes) {
		focus = len(n.state.Routes) - 1
	}
	n.dispatch(Action{Kind: ActionCompleteTransition, Key: n.state.Routes[focus].Key})
}

// HandleTransitionStart forwards to the route's descriptor callback.
func (n *Navigator) HandleTransitionStart(route Route, closing bool) {
	if d, ok := n.state.DescriptorFor(route.Key); ok && d.OnTransitionStart != nil {
		d.OnTransitionStart(route, closing)
	}
}

// HandleTransitionEnd forwards to the route's descriptor callback.
func (n *Navigator) HandleTransitionEnd(route Route, closing bool) {
	if d, ok := n.state.DescriptorFor(route.Key); ok && d.OnTransitionEnd != nil {
		d.OnTransitionEnd(route, closing)
	}
}

// GesturesEnabled reports whether swipe-back may dismiss the route.
// Gestures without animation are disallowed; otherwise the descriptor
// override wins, falling back to the platform default.
func (n *Navigator) GesturesEnabled(route Route) bool {
	desc, ok := n.state.DescriptorFor(route.Key)
	if ok && desc.DisableAnimation {
		return false
	}
	if ok {
		switch desc.Gesture {
		case GestureEnabled:
			return true
		case GestureDisabled:
			return false
		}
	}
	return platform.Detect().GestureDefault()
}

// PreviousRoute returns the route beneath the given one once routes
// that are mid-exit or mid-replacement are skipped, so back navigation
// and back-button labels never target a route that is on its way out.
// The queried route itself is kept even when it is mid-exit. Returns
// nil for the bottom route.
func (n *Navigator) PreviousRoute(route Route) *Route {
	filtered := n.state.Routes[:0:0]
	for _, r := range n.state.Routes {
		if r.Key != route.Key && (n.state.leaving.Has(r.Key) || n.state.replacing.Has(r.Key)) {
			continue
		}
		filtered = append(filtered, r)
	}
	idx := indexOfKey(filtered, route.Key)
	if idx <= 0 {
		return nil
	}
	previous := filtered[idx-1]
	return &previous
}

// SceneFor resolves the scene to mount for a route. A missing
// descriptor degrades to no content for the slot while the route keeps
// animating; that happens when the external owner drops configuration
// for a route that is still mounted.
func (n *Navigator) SceneFor(route Route) Scene {
	desc, ok := n.state.DescriptorFor(route.Key)
	if !ok {
		n.log.Warn("no descriptor for mounted route, rendering empty slot", "key", route.Key)
		return nil
	}
	if desc.Scene == nil {
		return nil
	}
	return desc.Scene()
}
