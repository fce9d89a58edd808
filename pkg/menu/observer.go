package menu

import "github.com/mesh-intelligence/storefront/pkg/types"

// ObserverFunc receives a selection snapshot after every successful mutation.
// Observers replace framework reactivity: a presentation layer subscribes and
// re-renders from each snapshot it receives.
type ObserverFunc func(types.Selection)

// observer pairs a subscriber with a stable ID for unsubscription.
type observer struct {
	id int
	fn ObserverFunc
}

// Subscribe registers fn to be called after every successful mutation, in
// subscription order. A nil fn is dropped and the returned func is a no-op.
// The returned func removes the subscription; calling it more than once is
// harmless.
func (s *Store) Subscribe(fn ObserverFunc) func() {
	if fn == nil {
		return func() {}
	}

	id := s.nextObsID
	s.nextObsID++
	s.observers = append(s.observers, observer{id: id, fn: fn})

	return func() {
		for i, obs := range s.observers {
			if obs.id == id {
				s.observers = append(s.observers[:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// notify delivers the current selection snapshot to all observers. It iterates
// a copy of the subscriber list so an observer may unsubscribe itself (or
// others) from within its callback without disturbing the delivery order.
func (s *Store) notify() {
	if len(s.observers) == 0 {
		return
	}
	snapshot := s.Selection()
	obs := append([]observer(nil), s.observers...)
	for _, o := range obs {
		o.fn(snapshot)
	}
}
