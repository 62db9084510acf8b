package event

// Subscription is the handle returned by Subscribe and Once.
type Subscription struct {
	id     string
	cancel func()
}

// ID returns the subscription's UUIDv7 identifier. Inert subscriptions,
// returned for nil handlers, have an empty ID.
func (s *Subscription) ID() string {
	if s == nil {
		return ""
	}
	return s.id
}

// Unsubscribe removes the handler from its dispatcher. Calling it more than
// once, or after the dispatcher was cleared, has no effect.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.cancel == nil {
		return
	}
	cancel := s.cancel
	s.cancel = nil
	cancel()
}

// Active reports whether the handler is still registered.
func (s *Subscription) Active() bool {
	return s != nil && s.cancel != nil
}
