package toggle

import "github.com/tailored-agentic-units/toggle/observability"

// Toggle event types emitted to the configured observer. Rejected mutations
// emit nothing.
const (
	EventCreate      observability.EventType = "toggle.create"
	EventStateSet    observability.EventType = "toggle.state.set"
	EventValueSet    observability.EventType = "toggle.value.set"
	EventSelectedSet observability.EventType = "toggle.selected.set"
	EventToggle      observability.EventType = "toggle.toggle"
)
