// Package store provides an in-process owner for navigation state.
//
// The navigator deliberately does not own the route list; applications
// with their own state management can feed sfoglia.NavigationState from
// anywhere. Store is the batteries-included owner for applications that
// do not: it mints unique route keys, applies push/pop/replace/reset
// mutations, consumes the navigator's correction actions, and notifies
// a listener after every change.
package store

import (
	"fmt"

	"github.com/pheN1x/sfoglia/pkg/sfoglia"
)

// Store owns an ordered route list and the focused index. All methods
// must be called from the navigator's timeline; Store is not safe for
// concurrent use.
type Store struct {
	routes        []sfoglia.Route
	serial        int
	transitioning bool
	onChange      func(sfoglia.NavigationState)
}

// New creates an empty store. Push at least one route before handing
// its state to a navigator.
func New() *Store {
	return &Store{}
}

// OnChange registers the listener notified after every mutation.
// Typically this forwards to Navigator.Apply.
func (s *Store) OnChange(fn func(sfoglia.NavigationState)) {
	s.onChange = fn
}

// State returns a copy of the current navigation state. The focused
// route is always the last one.
func (s *Store) State() sfoglia.NavigationState {
	return sfoglia.NavigationState{
		Routes: append([]sfoglia.Route(nil), s.routes...),
		Index:  len(s.routes) - 1,
	}
}

// Transitioning reports whether a transition acknowledgment is still
// outstanding for the focused route.
func (s *Store) Transitioning() bool {
	return s.transitioning
}

// Push appends a new focused route and returns it. Keys are minted from
// the name and a serial so re-pushing a name yields a distinct screen
// instance.
func (s *Store) Push(name string, params any) sfoglia.Route {
	s.serial++
	route := sfoglia.Route{
		Key:    fmt.Sprintf("%s-%d", name, s.serial),
		Name:   name,
		Params: params,
	}
	s.routes = append(s.routes, route)
	s.transitioning = true
	s.notify()
	return route
}

// Pop removes the focused route and returns it. Popping the last
// remaining route is refused: a stack always shows something.
func (s *Store) Pop() *sfoglia.Route {
	if len(s.routes) <= 1 {
		return nil
	}
	popped := s.routes[len(s.routes)-1]
	s.routes = s.routes[:len(s.routes)-1]
	s.transitioning = true
	s.notify()
	return &popped
}

// PopToKey removes the route with the given key and everything above
// it. A miss or an attempt to empty the stack leaves state untouched.
func (s *Store) PopToKey(key string) {
	for i, route := range s.routes {
		if route.Key != key {
			continue
		}
		if i == 0 {
			return
		}
		s.routes = s.routes[:i]
		s.transitioning = true
		s.notify()
		return
	}
}

// Replace swaps the focused route for a new one and returns it.
func (s *Store) Replace(name string, params any) sfoglia.Route {
	s.serial++
	route := sfoglia.Route{
		Key:    fmt.Sprintf("%s-%d", name, s.serial),
		Name:   name,
		Params: params,
	}
	if len(s.routes) == 0 {
		s.routes = []sfoglia.Route{route}
	} else {
		s.routes[len(s.routes)-1] = route
	}
	s.transitioning = true
	s.notify()
	return route
}

// Reset replaces the whole stack with freshly minted routes for the
// given names, focusing the last.
func (s *Store) Reset(names ...string) []sfoglia.Route {
	s.routes = s.routes[:0]
	for _, name := range names {
		s.serial++
		s.routes = append(s.routes, sfoglia.Route{
			Key:  fmt.Sprintf("%s-%d", name, s.serial),
			Name: name,
		})
	}
	s.transitioning = len(s.routes) > 0
	s.notify()
	return append([]sfoglia.Route(nil), s.routes...)
}

// Handle consumes a correction action dispatched by the navigator. Pop
// corrections mutate the stack; transition acknowledgments only settle
// the in-flight flag and never notify, so a synchronous dispatch cannot
// re-enter reconciliation mid-handler.
func (s *Store) Handle(action sfoglia.Action) {
	switch action.Kind {
	case sfoglia.ActionPop:
		s.PopToKey(action.Key)
	case sfoglia.ActionCompleteTransition:
		if focused := s.State().Focused(); focused != nil && focused.Key == action.Key {
			s.transitioning = false
		}
	}
}

func (s *Store) notify() {
	if s.onChange != nil {
		s.onChange(s.State())
	}
}
