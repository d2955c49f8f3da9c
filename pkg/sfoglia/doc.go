// Package sfoglia provides a declarative card-stack navigator for SDL2
// applications on embedded Linux handhelds.
//
// Unlike the imperative screen routers common on these devices, sfoglia
// does not own navigation state. An external owner (the store package, or
// application code) holds an ordered list of routes plus a focused index
// and mutates it freely: push, pop, replace, reset. On every change the
// Navigator derives a render state for the card view: which routes must
// stay mounted, which are animating in, which are animating out, and
// which are being silently covered by a replacement.
//
// # Basic Usage
//
//	// The external owner holds the truth.
//	owner := store.New()
//	home := owner.Push("home", nil)
//
//	// Descriptors configure each route's transition behavior.
//	descriptors := sfoglia.DescriptorTable{
//	    home.Key: {Scene: newHomeScene},
//	}
//
//	// The navigator derives render state and feeds corrections back.
//	nav, err := sfoglia.NewNavigator(owner.State(), descriptors, owner.Handle)
//	if err != nil {
//	    // the owner produced an empty stack
//	}
//	owner.OnChange(func(state sfoglia.NavigationState) {
//	    _ = nav.Apply(state, descriptors)
//	})
//
//	// The card view consumes the render state and reports animation
//	// completion through the navigator's lifecycle handlers.
//	view := card.NewStack(nav, sfoglia.DefaultConfig())
//
// # Render State
//
// The derived state keeps routes mounted past their removal from the
// external owner so exit animations can finish. A route removed
// externally stays in Routes, marked leaving, until the card view calls
// HandleCloseComplete. A route replaced push-style stays mounted beneath
// its replacement, marked replacing, until HandleOpenComplete fires for
// the new route. Descriptors for such stale routes are retained from the
// previous derivation because the external owner no longer supplies them.
//
// # Gesture-Driven Dismissal
//
// A swipe can close a card before the external owner knows about it. In
// that case HandleCloseComplete does not touch local state; it dispatches
// a pop correction upstream and waits for the owner's update to flow back
// through Apply.
package sfoglia
