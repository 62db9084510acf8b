package observability

import "context"

// NoOpObserver discards every event. It is the default observer for toggles.
type NoOpObserver struct{}

func (NoOpObserver) OnEvent(ctx context.Context, event Event) {}
