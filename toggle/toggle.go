// Package toggle associates an arbitrary payload with a selected flag and
// notifies subscribers whenever either changes.
//
// Every successful mutation ends with one synchronous dispatch of the full
// State to all current subscribers, in subscription order:
//
//	t, err := toggle.New[string](`{"value": "photo-1", "selected": false}`)
//	if err != nil {
//	    return err
//	}
//	t.OnToggle().Subscribe(func(s toggle.State[string]) {
//	    fmt.Println(s.Value, s.Selected)
//	})
//	t.Toggle() // prints "photo-1 true"
//
// Full-state inputs and SetSelected accept untyped values and validate them
// at runtime; invalid input is rejected with a typed error and leaves the
// previous state in place.
//
// A Toggle is not safe for concurrent use. Confine it to the goroutine that
// owns the UI element it backs.
package toggle

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tailored-agentic-units/toggle/event"
	"github.com/tailored-agentic-units/toggle/observability"
)

// Toggle holds one validated State[T] and publishes it after every mutation.
type Toggle[T any] struct {
	id       string
	name     string
	state    State[T]
	changes  *event.Dispatcher[State[T]]
	observer observability.Observer
}

// New creates a Toggle from initial, validated with ParseState. On success
// the initial state is dispatched once; only subscribers supplied through
// WithSubscriber can observe it.
func New[T any](initial any, opts ...Option) (*Toggle[T], error) {
	state, err := ParseState[T](initial)
	if err != nil {
		return nil, err
	}

	s := newSettings(opts)

	t := &Toggle[T]{
		id:       uuid.Must(uuid.NewV7()).String(),
		name:     s.name,
		state:    state,
		changes:  event.NewDispatcher[State[T]](),
		observer: s.observer,
	}

	for _, sub := range s.subscribers {
		fn, ok := sub.(func(State[T]))
		if !ok {
			return nil, fmt.Errorf("%w: got %T, want %T", ErrSubscriberType, sub, fn)
		}
		t.changes.Subscribe(fn)
	}

	t.emit(EventCreate, "toggle.New")
	t.changes.Dispatch(t.state)
	return t, nil
}

// Of creates a Toggle from a typed value. It panics only if an option
// carries a subscriber for a different payload type.
func Of[T any](value T, selected bool, opts ...Option) *Toggle[T] {
	t, err := New[T](State[T]{Value: value, Selected: selected}, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// ID returns the toggle's UUIDv7 identifier.
func (t *Toggle[T]) ID() string {
	return t.id
}

// Name returns the label set with WithName or Config.Name.
func (t *Toggle[T]) Name() string {
	return t.name
}

// State returns a copy of the current state.
func (t *Toggle[T]) State() State[T] {
	return t.state
}

// SetState replaces the whole state. candidate is validated with ParseState;
// on failure the current state is kept and nothing is dispatched.
func (t *Toggle[T]) SetState(candidate any) error {
	state, err := ParseState[T](candidate)
	if err != nil {
		return err
	}
	t.replace(state, "toggle.SetState")
	return nil
}

// Replace is the typed form of SetState and cannot fail.
func (t *Toggle[T]) Replace(state State[T]) {
	t.replace(state, "toggle.Replace")
}

func (t *Toggle[T]) Value() T {
	return t.state.Value
}

// SetValue replaces the payload and keeps the selected flag.
func (t *Toggle[T]) SetValue(value T) {
	t.state.Value = value
	t.emit(EventValueSet, "toggle.SetValue")
	t.changes.Dispatch(t.state)
}

func (t *Toggle[T]) Selected() bool {
	return t.state.Selected
}

// SetSelected sets the selected flag from untyped input. Anything other than
// a bool fails with *InvalidTypeError, leaving the state untouched.
func (t *Toggle[T]) SetSelected(selected any) error {
	b, ok := selected.(bool)
	if !ok {
		return &InvalidTypeError{Got: selected}
	}
	t.setSelected(b, "toggle.SetSelected")
	return nil
}

// Select sets the selected flag to true.
func (t *Toggle[T]) Select() {
	t.setSelected(true, "toggle.Select")
}

// Deselect sets the selected flag to false.
func (t *Toggle[T]) Deselect() {
	t.setSelected(false, "toggle.Deselect")
}

// Toggle flips the selected flag and keeps the payload.
func (t *Toggle[T]) Toggle() {
	t.state.Selected = !t.state.Selected
	t.emit(EventToggle, "toggle.Toggle")
	t.changes.Dispatch(t.state)
}

// OnToggle returns the subscribe-only stream of state changes.
func (t *Toggle[T]) OnToggle() event.Event[State[T]] {
	return t.changes.AsEvent()
}

func (t *Toggle[T]) replace(state State[T], source string) {
	t.state = state
	t.emit(EventStateSet, source)
	t.changes.Dispatch(t.state)
}

func (t *Toggle[T]) setSelected(selected bool, source string) {
	t.state.Selected = selected
	t.emit(EventSelectedSet, source)
	t.changes.Dispatch(t.state)
}

func (t *Toggle[T]) emit(eventType observability.EventType, source string) {
	data := map[string]any{
		"selected":    t.state.Selected,
		"subscribers": t.changes.Count(),
	}
	if t.name != "" {
		data["name"] = t.name
	}

	t.observer.OnEvent(context.Background(), observability.Event{
		Type:      eventType,
		Level:     observability.LevelVerbose,
		Timestamp: time.Now(),
		Source:    source,
		Subject:   t.id,
		Data:      data,
	})
}
