package toggle

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for errors.Is matching against the typed errors below.
var (
	ErrMalformedState = errors.New("malformed toggle state")
	ErrInvalidType    = errors.New("invalid type")
	ErrSubscriberType = errors.New("subscriber payload type mismatch")
)

// MalformedStateError reports a full-state input that is missing its value
// or whose selected field is not a bool. Got holds the rejected input.
type MalformedStateError struct {
	Got any
}

func (e *MalformedStateError) Error() string {
	return fmt.Sprintf("Expected object matching { selected: boolean, value: any }, got %s", render(e.Got))
}

func (e *MalformedStateError) Is(target error) bool {
	return target == ErrMalformedState
}

// InvalidTypeError reports a non-bool passed to SetSelected.
type InvalidTypeError struct {
	Got any
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("Expected boolean value for toggle.selected, got %T", e.Got)
}

func (e *InvalidTypeError) Is(target error) bool {
	return target == ErrInvalidType
}

// render produces the JSON text of v, falling back to Go syntax for values
// encoding/json cannot represent.
func render(v any) string {
	switch x := v.(type) {
	case json.RawMessage:
		return renderBytes(x)
	case []byte:
		return renderBytes(x)
	case string:
		return renderBytes([]byte(x))
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%#v", v)
	}
	return string(data)
}

func renderBytes(b []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, b); err == nil {
		return buf.String()
	}
	return strconv.Quote(string(b))
}
