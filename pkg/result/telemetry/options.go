package telemetry

import "context"

type optionKey string

const sinkOptionKey optionKey = "telemetry_sink"

// WithSink attaches a Sink to the context so call sites further down can
// pick it up without plumbing it explicitly.
func WithSink(ctx context.Context, s Sink) context.Context {
	return context.WithValue(ctx, sinkOptionKey, s)
}

// SinkFrom returns the Sink carried by ctx, the fallback when there is
// none, and Nop when both are absent.
func SinkFrom(ctx context.Context, fallback Sink) Sink {
	if s, ok := ctx.Value(sinkOptionKey).(Sink); ok && s != nil {
		return s
	}
	if fallback != nil {
		return fallback
	}
	return Nop{}
}
