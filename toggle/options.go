package toggle

import "github.com/tailored-agentic-units/toggle/observability"

type settings struct {
	name        string
	observer    observability.Observer
	subscribers []any
}

// Option configures a Toggle at construction. Options passed to
// NewFromConfig are applied after the config-derived settings.
type Option func(*settings)

// WithName labels the toggle in observability events.
func WithName(name string) Option {
	return func(s *settings) { s.name = name }
}

// WithObserver sets the observer receiving lifecycle events. A nil observer
// restores NoOpObserver.
func WithObserver(o observability.Observer) Option {
	return func(s *settings) {
		if o == nil {
			o = observability.NoOpObserver{}
		}
		s.observer = o
	}
}

// WithSubscriber registers fn before the initial dispatch, so it receives the
// initial state. fn's payload type must match the Toggle being built.
func WithSubscriber[T any](fn func(State[T])) Option {
	return func(s *settings) {
		if fn != nil {
			s.subscribers = append(s.subscribers, fn)
		}
	}
}

func newSettings(opts []Option) *settings {
	s := &settings{observer: observability.NoOpObserver{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
