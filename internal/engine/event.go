package engine

// Event is a multi-cast event with one argument. Subscribe returns a
// Subscription token; cancelling through the token removes exactly that
// listener, so closures can be unsubscribed reliably.
type Event[T any] struct {
	nextID    int
	listeners []eventListener[T]
}

type eventListener[T any] struct {
	id int
	fn func(T)
}

// Subscription identifies one registered listener on one event.
type Subscription struct {
	cancel func()
}

// Cancel removes the listener this token was issued for. Safe to call twice.
func (s Subscription) Cancel() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Subscribe registers a callback and returns its cancellation token.
func (e *Event[T]) Subscribe(fn func(T)) Subscription {
	if fn == nil {
		return Subscription{}
	}
	e.nextID++
	id := e.nextID
	e.listeners = append(e.listeners, eventListener[T]{id: id, fn: fn})
	return Subscription{cancel: func() { e.remove(id) }}
}

func (e *Event[T]) remove(id int) {
	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return
		}
	}
}

// Invoke calls all registered listeners in subscription order.
func (e *Event[T]) Invoke(arg T) {
	// Copy so a listener cancelling itself mid-invoke doesn't skip others.
	snapshot := make([]eventListener[T], len(e.listeners))
	copy(snapshot, e.listeners)
	for _, l := range snapshot {
		l.fn(arg)
	}
}

// Len returns the number of registered listeners (for debugging).
func (e *Event[T]) Len() int {
	return len(e.listeners)
}

// Signal is an Event with no payload.
type Signal struct {
	inner Event[struct{}]
}

func (s *Signal) Subscribe(fn func()) Subscription {
	if fn == nil {
		return Subscription{}
	}
	return s.inner.Subscribe(func(struct{}) { fn() })
}

func (s *Signal) Invoke() {
	s.inner.Invoke(struct{}{})
}

func (s *Signal) Len() int {
	return s.inner.Len()
}
