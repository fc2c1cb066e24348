package usecase

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/brunosps/usecase-go/pkg/result"
	"github.com/brunosps/usecase-go/pkg/result/promise"
	"github.com/brunosps/usecase-go/pkg/result/telemetry"
)

// Interactor is one use case. Execute is expected to return Results, never
// panic; a panic is a contract violation the Call boundary absorbs.
type Interactor[In, Out any] interface {
	Execute(ctx context.Context, in In) result.Result[Out]
}

// Named lets an Interactor override the reflected operation name.
type Named interface {
	OperationName() string
}

// ErrNilInteractor is the failure carried when Call is invoked without a
// concrete Interactor.
var ErrNilInteractor = errors.New("usecase: nil interactor")

type options struct {
	sink telemetry.Sink
	name string
}

type Option func(*options)

// WithSink routes boundary notifications to s. Without it, Call falls back
// to the sink carried by the context, then to the nop sink.
func WithSink(s telemetry.Sink) Option {
	return func(o *options) { o.sink = s }
}

// WithName overrides the operation name used for context keys and
// notifications.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// Call runs the use case behind the uniform boundary and returns a Promise
// of its Result:
//
//   - the sink is told the operation started;
//   - a failure from Execute passes through untouched except for the
//     originating-operation stamp;
//   - a success is re-wrapped with a fresh input/output context entry keyed
//     by the operation name, merged over any contexts Execute attached;
//   - a panic out of Execute becomes an UNEXPECTED_ERROR failure carrying
//     the raw panic payload in its context entry. This is the single place
//     panics are converted to Results.
//
// A nil Interactor resolves to an UNEXPECTED_ERROR failure instead of
// panicking.
func Call[In, Out any](ctx context.Context, uc Interactor[In, Out], in In, opts ...Option) *promise.Promise[Out] {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	sink := o.sink
	if sink == nil {
		sink = telemetry.SinkFrom(ctx, nil)
	}

	if result.IsNil(uc) {
		return promise.Settled(ctx, result.FailureAs[Out](ErrNilInteractor, result.TypeUnexpectedError))
	}

	name := o.name
	if name == "" {
		name = operationName(uc)
	}

	return promise.Run(ctx, func(ctx context.Context) result.Result[Out] {
		notify(func() { sink.StartTiming(name, in) })

		res, rec, panicked := execute(ctx, uc, in)
		switch {
		case panicked:
			ctxs := result.ContextMap{name: {InputParams: in, RawError: rec}}
			res = result.FailureWith[Out](result.CoerceError(rec), result.TypeUnexpectedError, ctxs, name)

		case res.IsFailure():
			res = res.WithOperation(name)

		default:
			own := result.ContextMap{name: {InputParams: in, OutputParams: res.Value()}}
			res = result.SuccessWith(res.Value(), res.Contexts().Merge(own), name)
		}

		if res.IsFailure() {
			notify(func() { sink.LogFailure(name, res.Err(), res.FailureType(), res.Contexts()) })
		} else {
			notify(func() { sink.LogSuccess(name, res.Value(), res.Contexts()) })
		}
		return res
	})
}

// execute isolates the recover boundary so Call can tell a panic apart from
// a returned failure.
func execute[In, Out any](ctx context.Context, uc Interactor[In, Out], in In) (res result.Result[Out], rec any, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			rec = r
			panicked = true
		}
	}()
	return uc.Execute(ctx, in), nil, false
}

// notify shields the boundary from a misbehaving sink.
func notify(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}

// operationName derives the context key for an interactor: its Named
// override when present, otherwise the concrete type name.
func operationName(uc any) string {
	if n, ok := uc.(Named); ok {
		return n.OperationName()
	}

	t := reflect.TypeOf(uc)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Name() != "" {
		return t.Name()
	}
	return strings.TrimPrefix(t.String(), "*")
}
