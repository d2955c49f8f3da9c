package sfoglia

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

type actionRecorder struct {
	actions []Action
}

func (r *actionRecorder) dispatch(action Action) {
	r.actions = append(r.actions, action)
}

func (r *actionRecorder) want(t *testing.T, want ...Action) {
	t.Helper()
	if len(r.actions) != len(want) {
		t.Fatalf("dispatched actions = %v, want %v", r.actions, want)
	}
	for i := range want {
		if r.actions[i] != want[i] {
			t.Fatalf("dispatched actions = %v, want %v", r.actions, want)
		}
	}
}

type stubScene struct{}

func (stubScene) Draw(*sdl.Renderer, sdl.Rect) error { return nil }

func newTestNavigator(t *testing.T, descriptors DescriptorTable, keys ...string) (*Navigator, *actionRecorder) {
	t.Helper()
	rec := &actionRecorder{}
	nav, err := NewNavigator(mkState(keys...), descriptors, rec.dispatch)
	if err != nil {
		t.Fatalf("NewNavigator(%v): %v", keys, err)
	}
	return nav, rec
}

func TestNewNavigatorRejectsEmptyState(t *testing.T) {
	_, err := NewNavigator(NavigationState{}, nil, nil)
	if !IsInvariant(err) {
		t.Fatalf("NewNavigator with no routes: err=%v, want invariant error", err)
	}
}

func TestApplyErrorKeepsPreviousState(t *testing.T) {
	nav, _ := newTestNavigator(t, nil, "a", "b")
	if err := nav.Apply(NavigationState{}, nil); !IsInvariant(err) {
		t.Fatalf("Apply empty state: err=%v, want invariant error", err)
	}
	wantRouteKeys(t, nav.State(), "a", "b")
}

func TestOpenCompleteFlushesReplacedRoutes(t *testing.T) {
	nav, rec := newTestNavigator(t, nil, "a")
	if err := nav.Apply(mkState("b"), nil); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	wantKeys(t, "replacing", nav.State().ReplacingKeys(), []string{"a"})

	nav.HandleOpenComplete(Route{Key: "b"})

	wantRouteKeys(t, nav.State(), "b")
	if !nav.State().Settled() {
		t.Fatalf("open completion should settle the state")
	}
	rec.want(t, Action{Kind: ActionCompleteTransition, Key: "b"})
}

func TestCloseCompleteUnmountsAndAcknowledges(t *testing.T) {
	nav, rec := newTestNavigator(t, nil, "a", "b")
	if err := nav.Apply(mkState("a"), nil); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	wantKeys(t, "leaving", nav.State().LeavingKeys(), []string{"b"})

	nav.HandleCloseComplete(Route{Key: "b"})

	wantRouteKeys(t, nav.State(), "a")
	if !nav.State().Settled() {
		t.Fatalf("close completion should settle the state")
	}
	rec.want(t, Action{Kind: ActionCompleteTransition, Key: "a"})
}

func TestCloseCompleteAheadOfOwnerDispatchesPop(t *testing.T) {
	// The gesture dismissed b before the owner heard about it: b is
	// still in the owner's route list, so the navigator must not touch
	// local state and instead ask the owner to pop.
	nav, rec := newTestNavigator(t, nil, "a", "b")

	nav.HandleCloseComplete(Route{Key: "b"})

	wantRouteKeys(t, nav.State(), "a", "b")
	rec.want(t, Action{Kind: ActionPop, Key: "b"})
}

func TestCloseCompleteLeavesEarlierSnapshotsIntact(t *testing.T) {
	// The render loop ranges over a state snapshot while completion
	// handlers run; removing a mid-list route must not shift elements
	// under that snapshot.
	nav, _ := newTestNavigator(t, nil, "a", "b")
	if err := nav.Apply(mkState("a"), nil); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if err := nav.Apply(mkState("a", "c"), nil); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	wantRouteKeys(t, nav.State(), "a", "b", "c")
	wantKeys(t, "replacing", nav.State().ReplacingKeys(), []string{"b"})

	snapshot := nav.State()
	nav.HandleCloseComplete(Route{Key: "b"})

	wantRouteKeys(t, nav.State(), "a", "c")
	wantRouteKeys(t, snapshot, "a", "b", "c")
}

func TestCloseCompleteForUnmountedRouteIsNoop(t *testing.T) {
	nav, rec := newTestNavigator(t, nil, "a")
	nav.HandleCloseComplete(Route{Key: "gone"})
	wantRouteKeys(t, nav.State(), "a")
	rec.want(t)
}

func TestTransitionCallbacksForwarded(t *testing.T) {
	type call struct {
		key     string
		closing bool
	}
	var started, ended []call
	descriptors := DescriptorTable{
		"a": {
			OnTransitionStart: func(r Route, closing bool) { started = append(started, call{r.Key, closing}) },
			OnTransitionEnd:   func(r Route, closing bool) { ended = append(ended, call{r.Key, closing}) },
		},
		"b": {},
	}
	nav, _ := newTestNavigator(t, descriptors, "a", "b")

	nav.HandleTransitionStart(Route{Key: "a"}, true)
	nav.HandleTransitionEnd(Route{Key: "a"}, false)
	nav.HandleTransitionStart(Route{Key: "b"}, true)

	if len(started) != 1 || started[0] != (call{"a", true}) {
		t.Fatalf("start calls = %v", started)
	}
	if len(ended) != 1 || ended[0] != (call{"a", false}) {
		t.Fatalf("end calls = %v", ended)
	}
}

func TestGesturesEnabled(t *testing.T) {
	descriptors := DescriptorTable{
		"plain":    {},
		"forced":   {Gesture: GestureEnabled},
		"blocked":  {Gesture: GestureDisabled},
		"instant":  {DisableAnimation: true, Gesture: GestureEnabled},
		"noconfig": {},
	}

	cases := []struct {
		name     string
		platform string
		key      string
		want     bool
	}{
		{"desktop default", "", "plain", true},
		{"no-gesture platform default", "tg5040", "plain", false},
		{"override wins on no-gesture platform", "tg5040", "forced", true},
		{"override disables", "", "blocked", false},
		{"animation disabled blocks gestures", "", "instant", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("PLATFORM", tc.platform)
			nav, _ := newTestNavigator(t, descriptors, "plain", "forced", "blocked", "instant", "noconfig")
			if got := nav.GesturesEnabled(Route{Key: tc.key}); got != tc.want {
				t.Fatalf("GesturesEnabled(%q) on %q = %v, want %v", tc.key, tc.platform, got, tc.want)
			}
		})
	}
}

func TestPreviousRouteSkipsExitingRoutes(t *testing.T) {
	nav, _ := newTestNavigator(t, nil, "a", "b")
	if err := nav.Apply(mkState("a"), nil); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	// b is mid-exit but still queryable; its previous route is a.
	if prev := nav.PreviousRoute(Route{Key: "b"}); prev == nil || prev.Key != "a" {
		t.Fatalf("PreviousRoute(b) = %v, want a", prev)
	}
	if prev := nav.PreviousRoute(Route{Key: "a"}); prev != nil {
		t.Fatalf("PreviousRoute(a) = %v, want nil", prev)
	}
}

func TestPreviousRouteSkipsReplacedRoutes(t *testing.T) {
	nav, _ := newTestNavigator(t, nil, "a")
	if err := nav.Apply(mkState("b"), nil); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	// a sits beneath b only to be discarded; it is not a back target.
	if prev := nav.PreviousRoute(Route{Key: "b"}); prev != nil {
		t.Fatalf("PreviousRoute(b) = %v, want nil", prev)
	}
}

func TestSceneForResolvesDescriptorScene(t *testing.T) {
	descriptors := DescriptorTable{
		"a": {Scene: func() Scene { return stubScene{} }},
		"b": {},
	}
	nav, _ := newTestNavigator(t, descriptors, "a", "b", "c")

	if scene := nav.SceneFor(Route{Key: "a"}); scene == nil {
		t.Fatalf("SceneFor(a) = nil, want the configured scene")
	}
	if scene := nav.SceneFor(Route{Key: "b"}); scene != nil {
		t.Fatalf("SceneFor(b) = %v, want nil for a descriptor without a scene", scene)
	}
	if scene := nav.SceneFor(Route{Key: "c"}); scene != nil {
		t.Fatalf("SceneFor(c) = %v, want nil for a missing descriptor", scene)
	}
}

func TestRoutesReturnsACopy(t *testing.T) {
	nav, _ := newTestNavigator(t, nil, "a", "b")
	routes := nav.Routes()
	routes[0].Key = "mutated"
	if nav.State().Routes[0].Key != "a" {
		t.Fatalf("Routes() must not expose internal storage")
	}
}
