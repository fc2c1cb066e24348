// Package telemetry defines the observability Sink the orchestration layer
// and the wrappers notify, plus a slog-backed debug implementation. Sinks
// are fire-and-forget collaborators: nothing they do (or fail to do) can
// change a Result.
package telemetry
