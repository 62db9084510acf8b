package event

import (
	"slices"

	"github.com/google/uuid"
)

// Event is the subscribe-only view of a Dispatcher.
type Event[T any] interface {
	// Subscribe registers fn for every future dispatch.
	Subscribe(fn func(T)) *Subscription
	// Once registers fn for the next dispatch only.
	Once(fn func(T)) *Subscription
	// Count returns the number of registered handlers.
	Count() int
}

type subscriber[T any] struct {
	sub    *Subscription
	fn     func(T)
	once   bool
	active bool
}

// Dispatcher delivers payloads of type T to its subscribers synchronously.
// The zero value is ready to use.
type Dispatcher[T any] struct {
	subscribers []*subscriber[T]
}

// NewDispatcher creates an empty Dispatcher.
func NewDispatcher[T any]() *Dispatcher[T] {
	return &Dispatcher[T]{}
}

// Subscribe registers fn for every future dispatch. A nil fn is ignored and
// an inert Subscription is returned.
func (d *Dispatcher[T]) Subscribe(fn func(T)) *Subscription {
	return d.add(fn, false)
}

// Once registers fn for the next dispatch only. The handler is removed before
// it is called.
func (d *Dispatcher[T]) Once(fn func(T)) *Subscription {
	return d.add(fn, true)
}

// Dispatch calls every registered handler with payload, in subscription
// order, and returns once all of them have returned.
func (d *Dispatcher[T]) Dispatch(payload T) {
	for _, s := range slices.Clone(d.subscribers) {
		if !s.active {
			continue
		}
		if s.once {
			s.sub.Unsubscribe()
		}
		s.fn(payload)
	}
}

// Count returns the number of registered handlers.
func (d *Dispatcher[T]) Count() int {
	return len(d.subscribers)
}

// Has reports whether sub is registered with this dispatcher.
func (d *Dispatcher[T]) Has(sub *Subscription) bool {
	if sub == nil {
		return false
	}
	return slices.ContainsFunc(d.subscribers, func(s *subscriber[T]) bool {
		return s.sub == sub
	})
}

// Clear removes every handler. Outstanding subscriptions become inactive.
func (d *Dispatcher[T]) Clear() {
	for _, s := range d.subscribers {
		s.active = false
		s.sub.cancel = nil
	}
	d.subscribers = nil
}

// AsEvent returns a view of d that can subscribe but not dispatch.
func (d *Dispatcher[T]) AsEvent() Event[T] {
	return view[T]{d: d}
}

func (d *Dispatcher[T]) add(fn func(T), once bool) *Subscription {
	if fn == nil {
		return &Subscription{}
	}

	s := &subscriber[T]{
		fn:     fn,
		once:   once,
		active: true,
	}
	s.sub = &Subscription{
		id:     uuid.Must(uuid.NewV7()).String(),
		cancel: func() { d.remove(s) },
	}

	d.subscribers = append(d.subscribers, s)
	return s.sub
}

func (d *Dispatcher[T]) remove(target *subscriber[T]) {
	target.active = false
	d.subscribers = slices.DeleteFunc(d.subscribers, func(s *subscriber[T]) bool {
		return s == target
	})
}

// view hides Dispatch so consumers cannot type-assert their way to it.
type view[T any] struct {
	d *Dispatcher[T]
}

func (v view[T]) Subscribe(fn func(T)) *Subscription { return v.d.Subscribe(fn) }
func (v view[T]) Once(fn func(T)) *Subscription      { return v.d.Once(fn) }
func (v view[T]) Count() int                         { return v.d.Count() }
