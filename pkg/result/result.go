package result

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Result is the closed outcome of one operation: either a success carrying
// a value, or a failure carrying an error and a failure tag. A Result never
// changes after construction.
type Result[T any] struct {
	id          uuid.UUID
	createdAt   time.Time
	value       T
	err         error
	failureType string
	contexts    ContextMap
	operation   string
	isSuccess   bool
}

func Success[T any](v T) Result[T] {
	return SuccessWith(v, nil, "")
}

func SuccessWith[T any](v T, ctxs ContextMap, operation string) Result[T] {
	return Result[T]{
		value:       v,
		failureType: TypeSuccess,
		contexts:    ctxs,
		operation:   operation,
		isSuccess:   true,
		createdAt:   time.Now().UTC(),
		id:          uuid.New(),
	}
}

func Failure[T any](err error) Result[T] {
	return FailureWith[T](err, TypeFailure, nil, "")
}

func FailureAs[T any](err error, failureType string) Result[T] {
	return FailureWith[T](err, failureType, nil, "")
}

// FailureWith builds a failure with full metadata. A nil err is replaced by
// a generic error and an empty tag by TypeFailure, so a failed Result always
// carries both.
func FailureWith[T any](err error, failureType string, ctxs ContextMap, operation string) Result[T] {
	if IsNil(err) {
		err = errors.New("operation failed")
	}
	if failureType == "" {
		failureType = TypeFailure
	}
	return Result[T]{
		err:         err,
		failureType: failureType,
		contexts:    ctxs,
		operation:   operation,
		createdAt:   time.Now().UTC(),
		id:          uuid.New(),
	}
}

// FailureFrom carries a failed Result across a value-type boundary, keeping
// error, tag, contexts, operation, id and creation time.
func FailureFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:         from.err,
		failureType: from.failureType,
		contexts:    from.contexts,
		operation:   from.operation,
		isSuccess:   from.isSuccess,
		createdAt:   from.createdAt,
		id:          from.id,
	}
}

// Value returns the success value, or the zero value of T on failure. It
// never panics; check IsSuccess when the zero value is a legal payload.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the failure error, nil on success.
func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

// FailureType returns the failure tag, TypeSuccess on success.
func (r Result[T]) FailureType() string {
	return r.failureType
}

// Contexts returns the accumulated operation snapshots. Callers must treat
// the map as read-only.
func (r Result[T]) Contexts() ContextMap {
	return r.contexts
}

// Operation returns the name of the operation that most recently produced
// this Result, empty when nothing stamped one.
func (r Result[T]) Operation() string {
	return r.operation
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// OnSuccess invokes fn with the value iff this is a success, then returns
// the receiver unchanged.
func (r Result[T]) OnSuccess(fn func(v T)) Result[T] {
	if r.isSuccess {
		fn(r.value)
	}
	return r
}

// OnFailure invokes fn with the error iff this is a failure and either no
// tags were given (catch-all) or the failure tag is among them. It returns
// the receiver unchanged, so calls with different tags chain like a switch;
// put a catch-all last by convention. The stored error is handed to fn,
// never re-raised.
func (r Result[T]) OnFailure(fn func(err error), failureTypes ...string) Result[T] {
	if r.isSuccess {
		return r
	}

	if len(failureTypes) == 0 {
		fn(r.err)
		return r
	}

	for _, ft := range failureTypes {
		if ft == r.failureType {
			fn(r.err)
			break
		}
	}
	return r
}

// WithOperation returns a copy stamped with the given operation name.
func (r Result[T]) WithOperation(operation string) Result[T] {
	r.operation = operation
	return r
}

// WithContexts returns a copy whose contexts are replaced by ctxs.
func (r Result[T]) WithContexts(ctxs ContextMap) Result[T] {
	r.contexts = ctxs
	return r
}

// MergeContexts returns a copy with upstream entries added; the receiver's
// own entries win on key collision.
func (r Result[T]) MergeContexts(upstream ContextMap) Result[T] {
	r.contexts = upstream.Merge(r.contexts)
	return r
}
