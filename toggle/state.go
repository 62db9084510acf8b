package toggle

import (
	"bytes"
	"encoding/json"
)

// State pairs a payload with its selected flag. Subscribers always receive a
// complete State, never a delta.
type State[T any] struct {
	Value    T    `json:"value"`
	Selected bool `json:"selected"`
}

// IsState reports whether candidate is an acceptable full state for a
// Toggle[T]. See ParseState for the accepted shapes.
func IsState[T any](candidate any) bool {
	_, err := ParseState[T](candidate)
	return err == nil
}

// ParseState converts untyped input into a State[T]. It accepts:
//
//   - State[T], and non-nil *State[T]
//   - map[string]any with a "value" key holding a T or nil, and a "selected"
//     key holding a bool
//   - a JSON object as []byte, json.RawMessage, or string, with a "value"
//     member decodable into T and a boolean "selected" member
//
// A present but zero, empty, or null value is accepted; nil decodes to the
// zero value of T. Anything else fails with *MalformedStateError.
func ParseState[T any](candidate any) (State[T], error) {
	var (
		state State[T]
		ok    bool
	)

	switch c := candidate.(type) {
	case State[T]:
		return c, nil
	case *State[T]:
		if c != nil {
			return *c, nil
		}
	case map[string]any:
		state, ok = fromMap[T](c)
	case json.RawMessage:
		state, ok = fromJSON[T](c)
	case []byte:
		state, ok = fromJSON[T](c)
	case string:
		state, ok = fromJSON[T]([]byte(c))
	}

	if !ok {
		return State[T]{}, &MalformedStateError{Got: candidate}
	}
	return state, nil
}

func fromMap[T any](m map[string]any) (State[T], bool) {
	raw, present := m["value"]
	if !present {
		return State[T]{}, false
	}

	selected, isBool := m["selected"].(bool)
	if !isBool {
		return State[T]{}, false
	}

	var value T
	if raw != nil {
		v, fits := raw.(T)
		if !fits {
			return State[T]{}, false
		}
		value = v
	}

	return State[T]{Value: value, Selected: selected}, true
}

var jsonNull = []byte("null")

func fromJSON[T any](data []byte) (State[T], bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return State[T]{}, false
	}

	rawValue, present := fields["value"]
	if !present {
		return State[T]{}, false
	}

	// encoding/json leaves a bool untouched for null, so reject it here.
	rawSelected, present := fields["selected"]
	if !present || bytes.Equal(bytes.TrimSpace(rawSelected), jsonNull) {
		return State[T]{}, false
	}

	var state State[T]
	if err := json.Unmarshal(rawSelected, &state.Selected); err != nil {
		return State[T]{}, false
	}
	if err := json.Unmarshal(rawValue, &state.Value); err != nil {
		return State[T]{}, false
	}

	return state, true
}
