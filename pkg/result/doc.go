// Package result defines the core success/failure sum type used across the
// module.
//
// A Result[T] is a terminal fact about one operation's outcome: it holds
// either a value or an error plus a string failure tag, and is never
// re-derived or mutated after construction. Alongside the outcome it can
// carry a ContextMap of per-operation input/output snapshots and the name
// of the operation that produced it.
//
// Key operations:
// - Success/SuccessWith, Failure/FailureAs/FailureWith: construct Results
// - FailureFrom: move a failure across a value-type boundary
// - OnSuccess/OnFailure: fluent tag-filtered callbacks, never re-raising
// - MergeContexts/WithOperation: derive copies with extra chain metadata
// - CoerceError: the single rule turning recovered panics into errors
package result
