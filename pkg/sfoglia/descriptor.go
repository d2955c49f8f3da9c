package sfoglia

// ReplaceStyle selects how a replaced route leaves the screen.
type ReplaceStyle int

const (
	// ReplacePush covers the old route with the incoming one. The old
	// route stays mounted beneath the replacement and is discarded when
	// the entrance animation completes.
	ReplacePush ReplaceStyle = iota

	// ReplacePop shows the incoming route instantly and animates the
	// old route out above it.
	ReplacePop
)

func (s ReplaceStyle) GetName() string {
	switch s {
	case ReplacePush:
		return "Push"
	case ReplacePop:
		return "Pop"
	default:
		return "Unknown"
	}
}

// GestureOverride is a per-route override for swipe-back availability.
// The zero value defers to the platform default.
type GestureOverride int

const (
	GestureDefault GestureOverride = iota // Follow the platform default
	GestureEnabled
	GestureDisabled
)

// SceneFunc builds the scene content for a route. Called lazily by the
// card view; may be nil when a route renders no content.
type SceneFunc func() Scene

// Descriptor bundles per-route configuration supplied by the external
// owner. The zero value means: animation enabled, platform-default
// gestures, push-style replace, no callbacks, no scene.
type Descriptor struct {
	DisableAnimation bool            // Skip open/close animation for this route
	Gesture          GestureOverride // Swipe-back override; gestures never work with animation disabled
	ReplaceStyle     ReplaceStyle    // How this route animates when replaced
	Scene            SceneFunc       // Scene factory; nil renders an empty slot

	// OnTransitionStart fires when this route begins animating.
	// closing is true for exit animations.
	OnTransitionStart func(route Route, closing bool)

	// OnTransitionEnd fires when this route finishes animating.
	OnTransitionEnd func(route Route, closing bool)
}

// DescriptorTable maps route keys to their descriptors. A key may be
// absent when the external owner has already dropped a route that is
// still animating out; the navigator retains the stale descriptor from
// the previous derivation in that case.
type DescriptorTable map[string]Descriptor

// lookupDescriptor resolves a descriptor with the external table taking
// precedence over the retained one.
func lookupDescriptor(key string, external, retained DescriptorTable) (Descriptor, bool) {
	if d, ok := external[key]; ok {
		return d, true
	}
	d, ok := retained[key]
	return d, ok
}
