package sfoglia

// Route is one addressable screen instance in the navigation stack.
// Routes are immutable once created; identity is the Key. Two routes
// with equal keys refer to the same screen instance even if their
// params differ.
type Route struct {
	Key    string // Unique key, stable for the lifetime of the screen instance
	Name   string // Route name, used for scene lookup and header back labels
	Params any    // Opaque application data passed through to the scene
}

// NavigationState is the externally owned source of truth: an ordered
// route list and the index of the focused route. The navigator only ever
// reads it; mutation belongs to the external owner.
type NavigationState struct {
	Routes []Route // Ordered bottom-to-top; keys must be unique
	Index  int     // Index of the focused route within Routes
}

// Focused returns the focused route, or nil for an empty state.
func (s NavigationState) Focused() *Route {
	if len(s.Routes) == 0 {
		return nil
	}
	i := s.Index
	if i < 0 {
		i = 0
	}
	if i >= len(s.Routes) {
		i = len(s.Routes) - 1
	}
	route := s.Routes[i]
	return &route
}

// ActionKind identifies a correction action sent upstream to the
// external state owner.
type ActionKind int

const (
	// ActionPop asks the owner to remove the route with the given key
	// and everything above it. Dispatched when an exit animation
	// finishes ahead of the owner's state, e.g. a swipe dismissal.
	ActionPop ActionKind = iota

	// ActionCompleteTransition acknowledges that the transition for the
	// route with the given key has finished animating.
	ActionCompleteTransition
)

func (k ActionKind) GetName() string {
	switch k {
	case ActionPop:
		return "Pop"
	case ActionCompleteTransition:
		return "CompleteTransition"
	default:
		return "Unknown"
	}
}

// Action is a one-way correction message from the navigator to the
// external state owner.
type Action struct {
	Kind ActionKind
	Key  string
}

// DispatchFunc delivers actions upstream. The navigator dispatches on
// the same timeline it mutates render state on, so an owner reacting
// synchronously observes a consistent state.
type DispatchFunc func(Action)
