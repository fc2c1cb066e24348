package telemetry

import (
	"log/slog"
	"sync"
	"time"

	"github.com/brunosps/usecase-go/pkg/result"
)

// Sink receives fire-and-forget observability notifications from the
// use-case boundary and the wrappers. Implementations must not be relied on
// for correctness; callers guard every invocation so a misbehaving sink
// cannot alter a Result.
type Sink interface {
	// StartTiming marks the beginning of an operation.
	StartTiming(operation string, input any)
	// LogSuccess reports a completed operation and its accumulated contexts.
	LogSuccess(operation string, output any, ctxs result.ContextMap)
	// LogFailure reports a failed operation with its tag.
	LogFailure(operation string, err error, failureType string, ctxs result.ContextMap)
	// LogWrapper reports one wrapper invocation.
	LogWrapper(kind string, success bool, label string, err error, elapsed time.Duration)
}

// Nop discards every notification. It is the default sink.
type Nop struct{}

func (Nop) StartTiming(string, any)                               {}
func (Nop) LogSuccess(string, any, result.ContextMap)             {}
func (Nop) LogFailure(string, error, string, result.ContextMap)   {}
func (Nop) LogWrapper(string, bool, string, error, time.Duration) {}

// DebugSink logs notifications through slog at debug level and keeps a
// start-time slot per operation name to report elapsed durations.
//
// Known limitation: two concurrent calls under the same operation name share
// one slot, so the second start overwrites the first and one of the reported
// durations is wrong. This affects diagnostic timing only, never Results.
type DebugSink struct {
	log *slog.Logger

	mu      sync.Mutex
	started map[string]time.Time
}

func NewDebugSink(log *slog.Logger) *DebugSink {
	if log == nil {
		log = slog.Default()
	}
	return &DebugSink{
		log:     log,
		started: make(map[string]time.Time),
	}
}

func (s *DebugSink) StartTiming(operation string, input any) {
	s.mu.Lock()
	s.started[operation] = time.Now()
	s.mu.Unlock()

	s.log.Debug("operation start", "operation", operation, "input", input)
}

func (s *DebugSink) LogSuccess(operation string, output any, ctxs result.ContextMap) {
	args := []any{"operation", operation, "output", output, "contexts", len(ctxs)}
	if elapsed, ok := s.take(operation); ok {
		args = append(args, "elapsed", elapsed)
	}
	s.log.Debug("operation success", args...)
}

func (s *DebugSink) LogFailure(operation string, err error, failureType string, ctxs result.ContextMap) {
	args := []any{"operation", operation, "error", err, "failure_type", failureType, "contexts", len(ctxs)}
	if elapsed, ok := s.take(operation); ok {
		args = append(args, "elapsed", elapsed)
	}
	s.log.Debug("operation failure", args...)
}

func (s *DebugSink) LogWrapper(kind string, success bool, label string, err error, elapsed time.Duration) {
	s.log.Debug("wrapper", "kind", kind, "success", success, "label", label, "error", err, "elapsed", elapsed)
}

// take removes and returns the start slot for operation, if one exists.
func (s *DebugSink) take(operation string) (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start, ok := s.started[operation]
	if !ok {
		return 0, false
	}
	delete(s.started, operation)
	return time.Since(start), true
}
