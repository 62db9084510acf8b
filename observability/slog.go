package observability

import (
	"context"
	"log/slog"
)

// SlogObserver writes events to a slog.Logger. The event type becomes the log
// message, Source and Subject become attributes, and Data is nested under a
// "data" group.
type SlogObserver struct {
	logger *slog.Logger
}

// NewSlogObserver creates a SlogObserver that emits to the given logger.
// A nil logger falls back to slog.Default().
func NewSlogObserver(logger *slog.Logger) *SlogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogObserver{logger: logger}
}

func (o *SlogObserver) OnEvent(ctx context.Context, event Event) {
	level := event.Level.SlogLevel()
	if !o.logger.Enabled(ctx, level) {
		return
	}

	attrs := make([]slog.Attr, 0, 3)
	attrs = append(attrs, slog.String("source", event.Source))
	if event.Subject != "" {
		attrs = append(attrs, slog.String("subject", event.Subject))
	}
	if len(event.Data) > 0 {
		data := make([]any, 0, len(event.Data))
		for k, v := range event.Data {
			data = append(data, slog.Any(k, v))
		}
		attrs = append(attrs, slog.Group("data", data...))
	}

	o.logger.LogAttrs(ctx, level, string(event.Type), attrs...)
}
