package wrap

import (
	"context"
	"errors"
	"time"

	"github.com/brunosps/usecase-go/pkg/result"
	"github.com/brunosps/usecase-go/pkg/result/promise"
)

// Wrapper kinds reported to the sink.
const (
	KindSync       = "sync"
	KindAsync      = "async"
	KindValue      = "value"
	KindValueAsync = "value_async"
)

// Sync calls fn and converts its outcome into a Result: the returned value
// becomes a success, a returned error or recovered panic becomes a failure
// tagged by the configured mappings. Arguments belong in the closure.
func Sync[T any](fn func() (T, error), opts ...Option) result.Result[T] {
	o := buildOptions(opts)

	start := time.Now()
	res := callSync(fn, o)
	notify(o, KindSync, res, time.Since(start))
	return res
}

// Async is Sync for context-aware functions, awaited through a Promise.
func Async[T any](ctx context.Context, fn func(ctx context.Context) (T, error), opts ...Option) *promise.Promise[T] {
	o := buildOptions(opts)

	return promise.Run(ctx, func(ctx context.Context) result.Result[T] {
		start := time.Now()
		res := callAsync(ctx, fn, o)
		notify(o, KindAsync, res, time.Since(start))
		return res
	})
}

// Value treats an already-produced value as an outcome. A value that is
// itself a non-nil error fails immediately (mapped); otherwise the enabled
// validation checks run and the first violation fails with that check's
// message; otherwise the value wraps as a success.
func Value[T any](v T, opts ...ValueOption[T]) result.Result[T] {
	vo := buildValueOptions(opts)

	start := time.Now()
	res := wrapValue(v, vo)
	notify(&vo.options, KindValue, res, time.Since(start))
	return res
}

// ValueErr adapts a (value, error) pair: a non-nil err fails (mapped),
// otherwise v goes through the same pipeline as Value.
func ValueErr[T any](v T, err error, opts ...ValueOption[T]) result.Result[T] {
	vo := buildValueOptions(opts)

	start := time.Now()
	var res result.Result[T]
	if err != nil {
		res = failureOf[T](&vo.options, err)
	} else {
		res = wrapValue(v, vo)
	}
	notify(&vo.options, KindValue, res, time.Since(start))
	return res
}

// ValueAsync resolves fn first, propagating a returned error or panic as a
// mapped failure like Async, then applies the Value pipeline to the
// resolved value.
func ValueAsync[T any](ctx context.Context, fn func(ctx context.Context) (T, error), opts ...ValueOption[T]) *promise.Promise[T] {
	vo := buildValueOptions(opts)

	return promise.Run(ctx, func(ctx context.Context) result.Result[T] {
		start := time.Now()
		res := callValueAsync(ctx, fn, vo)
		notify(&vo.options, KindValueAsync, res, time.Since(start))
		return res
	})
}

func callSync[T any](fn func() (T, error), o *options) (res result.Result[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			res = failureOf[T](o, result.CoerceError(rec))
		}
	}()

	v, err := fn()
	if err != nil {
		return failureOf[T](o, err)
	}
	return result.SuccessWith(v, o.contexts, o.operation)
}

func callAsync[T any](ctx context.Context, fn func(ctx context.Context) (T, error), o *options) (res result.Result[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			res = failureOf[T](o, result.CoerceError(rec))
		}
	}()

	v, err := fn(ctx)
	if err != nil {
		return failureOf[T](o, err)
	}
	return result.SuccessWith(v, o.contexts, o.operation)
}

func callValueAsync[T any](ctx context.Context, fn func(ctx context.Context) (T, error), vo *valueOptions[T]) (res result.Result[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			res = failureOf[T](&vo.options, result.CoerceError(rec))
		}
	}()

	v, err := fn(ctx)
	if err != nil {
		return failureOf[T](&vo.options, err)
	}
	return wrapValue(v, vo)
}

func wrapValue[T any](v T, vo *valueOptions[T]) result.Result[T] {
	if err, ok := any(v).(error); ok && !result.IsNil(err) {
		return failureOf[T](&vo.options, err)
	}

	if valid, msg := validateValue(v, vo); !valid {
		return failureOf[T](&vo.options, errors.New(msg))
	}
	return result.SuccessWith(v, vo.contexts, vo.operation)
}

func failureOf[T any](o *options, err error) result.Result[T] {
	return result.FailureWith[T](err, o.failureTypeFor(err), o.contexts, o.operation)
}

// notify reports one wrapper invocation; a panicking sink never reaches
// the caller.
func notify[T any](o *options, kind string, res result.Result[T], elapsed time.Duration) {
	defer func() {
		_ = recover()
	}()
	o.sink.LogWrapper(kind, res.IsSuccess(), o.operation, res.Err(), elapsed)
}
