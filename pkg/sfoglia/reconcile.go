package sfoglia

// RenderState is the locally owned state the card view consumes. It is
// derived from the external NavigationState by Reconcile and corrected
// by the navigator's lifecycle handlers; nothing else mutates it.
//
// Routes may contain entries the external owner has already removed:
// they stay mounted until their exit animation completes. The marker
// sets track which routes are mid-transition; a key is never in both
// entering and leaving.
type RenderState struct {
	Routes      []Route         // Ordered bottom-to-top; the last element is the focused route
	Descriptors DescriptorTable // Per-route configuration, stale entries retained while animating out

	previousRoutes []Route // Last external route list seen, for change detection
	previousIndex  int     // Focused index that came with that list
	entering       KeySet  // Routes animating in
	leaving        KeySet  // Routes animating out
	replacing      KeySet  // Routes mounted beneath a push-style replacement
}

// NewRenderState seeds a settled render state from the initial external
// state: every route fully presented, nothing animating. Returns an
// InvariantError when the initial state has no routes.
func NewRenderState(initial NavigationState, descriptors DescriptorTable) (RenderState, error) {
	routes := truncateAtFocus(initial)
	if len(routes) == 0 {
		return RenderState{}, &InvariantError{Op: "mount", Detail: "initial navigation state has no routes"}
	}
	return RenderState{
		Routes:         routes,
		Descriptors:    mergeDescriptors(routes, descriptors, nil),
		previousRoutes: append([]Route(nil), initial.Routes...),
		previousIndex:  initial.Index,
	}, nil
}

// IsEntering reports whether the route with key is animating in.
func (s RenderState) IsEntering(key string) bool { return s.entering.Has(key) }

// IsLeaving reports whether the route with key is animating out.
func (s RenderState) IsLeaving(key string) bool { return s.leaving.Has(key) }

// IsReplacing reports whether the route with key is mounted beneath a
// push-style replacement awaiting discard.
func (s RenderState) IsReplacing(key string) bool { return s.replacing.Has(key) }

// EnteringKeys returns the keys of routes animating in, in insertion order.
func (s RenderState) EnteringKeys() []string { return s.entering.Keys() }

// LeavingKeys returns the keys of routes animating out, in insertion order.
func (s RenderState) LeavingKeys() []string { return s.leaving.Keys() }

// ReplacingKeys returns the keys of routes awaiting discard after a
// push-style replacement.
func (s RenderState) ReplacingKeys() []string { return s.replacing.Keys() }

// Settled reports whether no route is mid-transition.
func (s RenderState) Settled() bool {
	return s.entering.Empty() && s.leaving.Empty() && s.replacing.Empty()
}

// DescriptorFor resolves the descriptor for a mounted route.
func (s RenderState) DescriptorFor(key string) (Descriptor, bool) {
	d, ok := s.Descriptors[key]
	return d, ok
}

// Reconcile derives the next render state from the previous one and a
// fresh external state. It is pure: prev is never mutated, and calling
// it again with an unchanged external route list returns an equal state.
//
// The external route list is truncated at the focused index first, so
// the focused route is always the last element of the result. When the
// focus changes the transition is classified as push-like (new focused
// route), pop-like (previously focused route removed), or an ambiguous
// reorder, which deliberately gets no animation. Routes still animating
// out are kept mounted; routes whose animation is disabled are dropped
// immediately.
//
// An empty result is an InvariantError: the external owner produced a
// state with nothing to show.
func Reconcile(prev RenderState, next NavigationState, descriptors DescriptorTable) (RenderState, error) {
	// Fast path: neither the external route list nor the focused index
	// changed since the last derivation. Only descriptors may differ;
	// merge and return. An index move alone shifts the truncation point
	// and must take the slow path.
	if len(prev.Routes) > 0 && sameRouteKeys(prev.previousRoutes, next.Routes) &&
		focusEnd(NavigationState{Routes: prev.previousRoutes, Index: prev.previousIndex}) == focusEnd(next) {
		st := prev
		st.Descriptors = mergeDescriptors(prev.Routes, descriptors, prev.Descriptors)
		return st, nil
	}

	truncated := truncateAtFocus(next)

	var prevFocused, nextFocused *Route
	if len(prev.Routes) > 0 {
		prevFocused = &prev.Routes[len(prev.Routes)-1]
	}
	if len(truncated) > 0 {
		nextFocused = &truncated[len(truncated)-1]
	}

	entering := prev.entering.clone()
	leaving := prev.leaving.clone()
	replacing := prev.replacing.clone()
	routes := append([]Route(nil), truncated...)

	switch {
	case prevFocused == nil || nextFocused == nil:
		// First derivation or an empty external state. Nothing to
		// animate; the empty case fails the post-condition below.

	case prevFocused.Key != nextFocused.Key:
		prevStillLive := containsKey(truncated, prevFocused.Key)

		switch {
		case !containsKey(prev.Routes, nextFocused.Key):
			// Push-like: the focused route was not mounted before.
			if desc, _ := lookupDescriptor(nextFocused.Key, descriptors, prev.Descriptors); !desc.DisableAnimation && !entering.Has(nextFocused.Key) {
				entering.Add(nextFocused.Key)
				leaving.Remove(nextFocused.Key)
				replacing.Remove(nextFocused.Key)
			}
			if !prevStillLive {
				// The old focused route vanished in the same update:
				// this is a replace. Its descriptor decides the style.
				desc, _ := lookupDescriptor(prevFocused.Key, descriptors, prev.Descriptors)
				if desc.ReplaceStyle == ReplacePop {
					// Old route animates out on top; the new one
					// appears instantly beneath it.
					leaving.Add(prevFocused.Key)
					entering.Remove(prevFocused.Key)
					replacing.Remove(prevFocused.Key)
					entering.Remove(nextFocused.Key)
					routes = append(routes, *prevFocused)
				} else {
					// Old route stays mounted beneath the incoming one
					// until the entrance animation completes.
					replacing.Add(prevFocused.Key)
					leaving.Remove(prevFocused.Key)
					entering.Remove(prevFocused.Key)
					routes = insertBeforeLast(routes, *prevFocused)
				}
			}

		case !prevStillLive:
			// Pop-like: focus moved back to a mounted route and the old
			// focused route was removed externally.
			desc, _ := lookupDescriptor(prevFocused.Key, descriptors, prev.Descriptors)
			if !desc.DisableAnimation {
				if !leaving.Has(prevFocused.Key) {
					leaving.Add(prevFocused.Key)
					entering.Remove(prevFocused.Key)
					replacing.Remove(prevFocused.Key)
				}
				routes = append(routes, *prevFocused)
			}

		default:
			// Both focused routes still exist but neither push nor pop
			// matches: the stack was reshuffled. There is no animation
			// policy for this; take the truncated list as-is.
		}

	default:
		// Focus unchanged. Keep routes that are still animating out
		// mounted just beneath the focused route; routes whose
		// animation is disabled are dropped right away.
		if !leaving.Empty() || !replacing.Empty() {
			for _, route := range prev.Routes {
				if !leaving.Has(route.Key) && !replacing.Has(route.Key) {
					continue
				}
				if containsKey(routes, route.Key) {
					continue
				}
				if desc, _ := lookupDescriptor(route.Key, descriptors, prev.Descriptors); desc.DisableAnimation {
					leaving.Remove(route.Key)
					replacing.Remove(route.Key)
					continue
				}
				routes = insertBeforeLast(routes, route)
			}
		}
	}

	if len(routes) == 0 {
		return RenderState{}, &InvariantError{Op: "reconcile", Detail: "derived route list is empty"}
	}

	// A route present in the live external path is by definition not
	// mid-exit; clear stale markers left by cancelled transitions.
	for _, route := range truncated {
		leaving.Remove(route.Key)
		replacing.Remove(route.Key)
	}

	// Marker sets only ever refer to mounted routes.
	pruneToRoutes(&entering, routes)
	pruneToRoutes(&leaving, routes)
	pruneToRoutes(&replacing, routes)

	return RenderState{
		Routes:         routes,
		Descriptors:    mergeDescriptors(routes, descriptors, prev.Descriptors),
		previousRoutes: append([]Route(nil), next.Routes...),
		previousIndex:  next.Index,
		entering:       entering,
		leaving:        leaving,
		replacing:      replacing,
	}, nil
}

// truncateAtFocus drops every route after the focused index so the
// focused route is the last element. The index is clamped into range.
func truncateAtFocus(state NavigationState) []Route {
	end := focusEnd(state)
	if end == 0 {
		return nil
	}
	return append([]Route(nil), state.Routes[:end]...)
}

// focusEnd returns the exclusive end of the live path: the focused
// index clamped into range, plus one. Zero for an empty route list.
func focusEnd(state NavigationState) int {
	if len(state.Routes) == 0 {
		return 0
	}
	end := state.Index + 1
	if end < 1 {
		end = 1
	}
	if end > len(state.Routes) {
		end = len(state.Routes)
	}
	return end
}

// mergeDescriptors builds a table for exactly the given routes, with
// external descriptors winning over retained ones. Routes known to
// neither table stay absent and degrade to an empty scene slot.
func mergeDescriptors(routes []Route, external, retained DescriptorTable) DescriptorTable {
	merged := make(DescriptorTable, len(routes))
	for _, route := range routes {
		if d, ok := lookupDescriptor(route.Key, external, retained); ok {
			merged[route.Key] = d
		}
	}
	return merged
}

// insertBeforeLast inserts route just beneath the focused route.
func insertBeforeLast(routes []Route, route Route) []Route {
	if len(routes) == 0 {
		return []Route{route}
	}
	out := append(routes, Route{})
	copy(out[len(out)-1:], out[len(out)-2:])
	out[len(out)-2] = route
	return out
}

func containsKey(routes []Route, key string) bool {
	return indexOfKey(routes, key) >= 0
}

func indexOfKey(routes []Route, key string) int {
	for i, route := range routes {
		if route.Key == key {
			return i
		}
	}
	return -1
}

func sameRouteKeys(a, b []Route) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Key != b[i].Key {
			return false
		}
	}
	return true
}

func pruneToRoutes(set *KeySet, routes []Route) {
	for _, key := range set.Keys() {
		if !containsKey(routes, key) {
			set.Remove(key)
		}
	}
}
