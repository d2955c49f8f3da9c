package store

import (
	"testing"

	"github.com/pheN1x/sfoglia/pkg/sfoglia"
)

func stateKeys(state sfoglia.NavigationState) []string {
	keys := make([]string, 0, len(state.Routes))
	for _, r := range state.Routes {
		keys = append(keys, r.Key)
	}
	return keys
}

func wantStack(t *testing.T, s *Store, want ...string) {
	t.Helper()
	got := stateKeys(s.State())
	if len(got) != len(want) {
		t.Fatalf("stack = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("stack = %v, want %v", got, want)
		}
	}
}

func TestPushMintsUniqueKeys(t *testing.T) {
	s := New()
	first := s.Push("detail", 1)
	second := s.Push("detail", 2)

	if first.Key == second.Key {
		t.Fatalf("re-pushed name must get a fresh key, both are %q", first.Key)
	}
	wantStack(t, s, first.Key, second.Key)
	if st := s.State(); st.Index != 1 {
		t.Fatalf("Index = %d, want 1", st.Index)
	}
}

func TestPopRefusesLastRoute(t *testing.T) {
	s := New()
	home := s.Push("home", nil)
	detail := s.Push("detail", nil)

	if popped := s.Pop(); popped == nil || popped.Key != detail.Key {
		t.Fatalf("Pop() = %v, want %s", popped, detail.Key)
	}
	if popped := s.Pop(); popped != nil {
		t.Fatalf("Pop() on a single-route stack = %v, want nil", popped)
	}
	wantStack(t, s, home.Key)
}

func TestPopToKeyRemovesKeyAndAbove(t *testing.T) {
	s := New()
	home := s.Push("home", nil)
	list := s.Push("list", nil)
	s.Push("detail", nil)

	s.PopToKey(list.Key)
	wantStack(t, s, home.Key)

	s.PopToKey("missing")
	wantStack(t, s, home.Key)

	s.PopToKey(home.Key) // would empty the stack, refused
	wantStack(t, s, home.Key)
}

func TestReplaceSwapsFocusedRoute(t *testing.T) {
	s := New()
	home := s.Push("home", nil)
	s.Push("login", nil)
	profile := s.Replace("profile", nil)

	wantStack(t, s, home.Key, profile.Key)
}

func TestResetRebuildsStack(t *testing.T) {
	s := New()
	s.Push("home", nil)
	s.Push("detail", nil)

	routes := s.Reset("onboarding", "welcome")
	if len(routes) != 2 {
		t.Fatalf("Reset returned %d routes, want 2", len(routes))
	}
	wantStack(t, s, routes[0].Key, routes[1].Key)
}

func TestOnChangeNotifiedAfterEveryMutation(t *testing.T) {
	s := New()
	var seen [][]string
	s.OnChange(func(state sfoglia.NavigationState) {
		seen = append(seen, stateKeys(state))
	})

	home := s.Push("home", nil)
	s.Push("detail", nil)
	s.Pop()

	if len(seen) != 3 {
		t.Fatalf("listener called %d times, want 3", len(seen))
	}
	last := seen[len(seen)-1]
	if len(last) != 1 || last[0] != home.Key {
		t.Fatalf("last notification = %v, want [%s]", last, home.Key)
	}
}

func TestCompleteTransitionSettlesWithoutNotify(t *testing.T) {
	s := New()
	focused := s.Push("home", nil)
	if !s.Transitioning() {
		t.Fatalf("push should leave a transition outstanding")
	}

	notified := false
	s.OnChange(func(sfoglia.NavigationState) { notified = true })

	s.Handle(sfoglia.Action{Kind: sfoglia.ActionCompleteTransition, Key: focused.Key})
	if s.Transitioning() {
		t.Fatalf("acknowledgment for the focused route should settle the store")
	}
	if notified {
		t.Fatalf("acknowledgment must not notify the listener")
	}

	// An acknowledgment for a stale route changes nothing.
	s.Push("detail", nil)
	s.Handle(sfoglia.Action{Kind: sfoglia.ActionCompleteTransition, Key: focused.Key})
	if !s.Transitioning() {
		t.Fatalf("stale acknowledgment must not settle the store")
	}
}

func TestHandlePopAction(t *testing.T) {
	s := New()
	home := s.Push("home", nil)
	detail := s.Push("detail", nil)

	s.Handle(sfoglia.Action{Kind: sfoglia.ActionPop, Key: detail.Key})
	wantStack(t, s, home.Key)
}

// A gesture can finish a dismissal before the store hears about it. The
// navigator then dispatches a pop, the store's change notification flows
// back through Apply, and a second close completion converges both
// sides.
func TestGestureDismissalConvergesWithNavigator(t *testing.T) {
	s := New()
	home := s.Push("home", nil)
	detail := s.Push("detail", nil)

	descriptors := sfoglia.DescriptorTable{home.Key: {}, detail.Key: {}}
	nav, err := sfoglia.NewNavigator(s.State(), descriptors, s.Handle)
	if err != nil {
		t.Fatalf("NewNavigator: %v", err)
	}
	s.OnChange(func(state sfoglia.NavigationState) {
		if err := nav.Apply(state, descriptors); err != nil {
			t.Fatalf("Apply: %v", err)
		}
	})

	// First completion: the store still holds detail, so the navigator
	// pops it upstream and the update flows back synchronously.
	nav.HandleCloseComplete(detail)
	wantStack(t, s, home.Key)
	if !nav.State().IsLeaving(detail.Key) {
		t.Fatalf("dismissed route should be marked leaving after the pop flows back")
	}

	// Second completion unmounts it locally and settles both sides.
	nav.HandleCloseComplete(detail)
	if got := nav.Routes(); len(got) != 1 || got[0].Key != home.Key {
		t.Fatalf("mounted routes = %v, want [%s]", got, home.Key)
	}
	if !nav.State().Settled() {
		t.Fatalf("navigator should be settled after convergence")
	}
	if s.Transitioning() {
		t.Fatalf("store should be settled after the final acknowledgment")
	}
}
