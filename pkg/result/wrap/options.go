package wrap

import (
	"github.com/brunosps/usecase-go/pkg/result"
	"github.com/brunosps/usecase-go/pkg/result/telemetry"
)

type options struct {
	mappings    []Mapping
	defaultType string
	contexts    result.ContextMap
	operation   string
	sink        telemetry.Sink
}

// Option configures the callable wrappers Sync and Async.
type Option func(*options)

// WithMappings appends error-to-tag mappings, kept in call order.
func WithMappings(ms ...Mapping) Option {
	return func(o *options) { o.mappings = append(o.mappings, ms...) }
}

// WithDefaultFailureType overrides the tag used when no mapping matches.
func WithDefaultFailureType(failureType string) Option {
	return func(o *options) { o.defaultType = failureType }
}

// WithContexts attaches free-form operation contexts to the produced Result.
func WithContexts(ctxs result.ContextMap) Option {
	return func(o *options) { o.contexts = ctxs }
}

// WithOperation labels the produced Result with an originating operation.
func WithOperation(operation string) Option {
	return func(o *options) { o.operation = operation }
}

// WithSink routes wrapper notifications to s instead of discarding them.
func WithSink(s telemetry.Sink) Option {
	return func(o *options) { o.sink = s }
}

func buildOptions(opts []Option) *options {
	o := &options{
		defaultType: result.TypeFailure,
		sink:        telemetry.Nop{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type valueOptions[T any] struct {
	options

	nilAsFailure         bool
	emptyStringAsFailure bool
	zeroAsFailure        bool
	emptyArrayAsFailure  bool
	emptyObjectAsFailure bool
	validate             func(v T) (valid bool, errMsg string)
}

// ValueOption configures the value wrappers Value, ValueErr and ValueAsync.
type ValueOption[T any] func(*valueOptions[T])

// WithOptions applies plain wrapper options (mappings, default tag,
// contexts, operation, sink) inside a value wrapper call.
func WithOptions[T any](opts ...Option) ValueOption[T] {
	return func(vo *valueOptions[T]) {
		for _, opt := range opts {
			opt(&vo.options)
		}
	}
}

// NilAsFailure fails nil values (nil interfaces and typed nil pointers,
// maps, slices alike).
func NilAsFailure[T any]() ValueOption[T] {
	return func(vo *valueOptions[T]) { vo.nilAsFailure = true }
}

func EmptyStringAsFailure[T any]() ValueOption[T] {
	return func(vo *valueOptions[T]) { vo.emptyStringAsFailure = true }
}

func ZeroAsFailure[T any]() ValueOption[T] {
	return func(vo *valueOptions[T]) { vo.zeroAsFailure = true }
}

func EmptyArrayAsFailure[T any]() ValueOption[T] {
	return func(vo *valueOptions[T]) { vo.emptyArrayAsFailure = true }
}

func EmptyObjectAsFailure[T any]() ValueOption[T] {
	return func(vo *valueOptions[T]) { vo.emptyObjectAsFailure = true }
}

// CustomValidation runs after the built-in checks; an empty errMsg on an
// invalid value falls back to a generic message.
func CustomValidation[T any](validate func(v T) (valid bool, errMsg string)) ValueOption[T] {
	return func(vo *valueOptions[T]) { vo.validate = validate }
}

func buildValueOptions[T any](opts []ValueOption[T]) *valueOptions[T] {
	vo := &valueOptions[T]{
		options: options{
			defaultType: result.TypeFailure,
			sink:        telemetry.Nop{},
		},
	}
	for _, opt := range opts {
		opt(vo)
	}
	return vo
}
