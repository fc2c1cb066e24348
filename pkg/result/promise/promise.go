package promise

import (
	"context"
	"sync"

	"github.com/brunosps/usecase-go/pkg/result"
)

// Promise wraps a future result.Result together with the context that
// drives its steps. It has two states: pending until the computation
// settles, settled afterwards. Await is the only way in.
type Promise[T any] struct {
	ctx  context.Context
	ch   chan result.Result[T]
	once sync.Once
	res  result.Result[T]
}

// Run starts fn on its own goroutine and returns the pending Promise.
// A panic inside fn settles the Promise as an UNEXPECTED_ERROR failure
// instead of crashing the chain.
func Run[T any](ctx context.Context, fn func(ctx context.Context) result.Result[T]) *Promise[T] {
	p := &Promise[T]{ctx: ctx, ch: make(chan result.Result[T], 1)}
	go func() {
		p.ch <- protect(ctx, fn)
	}()
	return p
}

// Settled returns an already-resolved Promise carrying r.
func Settled[T any](ctx context.Context, r result.Result[T]) *Promise[T] {
	p := &Promise[T]{ctx: ctx, ch: make(chan result.Result[T], 1)}
	p.ch <- r
	return p
}

// FromValue returns an already-resolved successful Promise.
func FromValue[T any](ctx context.Context, v T) *Promise[T] {
	return Settled(ctx, result.Success(v))
}

func protect[T any](ctx context.Context, fn func(ctx context.Context) result.Result[T]) (res result.Result[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			res = result.FailureAs[T](result.CoerceError(rec), result.TypeUnexpectedError)
		}
	}()
	return fn(ctx)
}

// Await blocks until the Promise settles and returns its Result. Further
// calls return the same Result without blocking. There is no timeout or
// abort: a computation that hangs, hangs its chain.
func (p *Promise[T]) Await() result.Result[T] {
	p.once.Do(func() {
		p.res = <-p.ch
	})
	return p.res
}

// Context returns the context the Promise threads into its steps.
func (p *Promise[T]) Context() context.Context {
	return p.ctx
}

// Then sequences a dependent step after p. The upstream Result is awaited
// first; on failure the step is never invoked and the same failure (error,
// tag, contexts, operation) carries over. On success the step runs, its
// Promise is awaited, and the upstream contexts are merged into the
// downstream Result, downstream entries winning on collision. Steps execute
// strictly in call order, one at a time.
func Then[T, U any](p *Promise[T], step func(ctx context.Context, v T) *Promise[U]) *Promise[U] {
	return Run(p.ctx, func(ctx context.Context) result.Result[U] {
		current := p.Await()
		if current.IsFailure() {
			return result.FailureFrom[T, U](current)
		}

		next := step(ctx, current.Value()).Await()
		return next.MergeContexts(current.Contexts())
	})
}

// ThenTry sequences a plain (value, error) function as a step; a non-nil
// error becomes an unmapped failure.
func ThenTry[T, U any](p *Promise[T], try func(ctx context.Context, v T) (U, error)) *Promise[U] {
	return Then(p, func(ctx context.Context, v T) *Promise[U] {
		return Run(ctx, func(ctx context.Context) result.Result[U] {
			out, err := try(ctx, v)
			if err != nil {
				return result.Failure[U](err)
			}
			return result.Success(out)
		})
	})
}

// Map transforms the successful value; failures pass through untouched.
func Map[T, U any](p *Promise[T], fn func(ctx context.Context, v T) U) *Promise[U] {
	return Then(p, func(ctx context.Context, v T) *Promise[U] {
		return Run(ctx, func(ctx context.Context) result.Result[U] {
			return result.Success(fn(ctx, v))
		})
	})
}

// Ensure runs a side effect on success without changing the outcome.
func (p *Promise[T]) Ensure(onSuccess func(ctx context.Context, v T)) *Promise[T] {
	return Run(p.ctx, func(ctx context.Context) result.Result[T] {
		current := p.Await()
		if current.IsSuccess() {
			onSuccess(ctx, current.Value())
		}
		return current
	})
}

// Finally collapses the Promise into a plain value via the two handlers.
func Finally[T, U any](p *Promise[T],
	onSuccess func(ctx context.Context, v T) U,
	onFailure func(ctx context.Context, err error) U) U {

	r := p.Await()
	if r.IsSuccess() {
		return onSuccess(p.ctx, r.Value())
	}
	return onFailure(p.ctx, r.Err())
}
