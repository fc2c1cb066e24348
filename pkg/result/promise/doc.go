// Package promise provides a deferred wrapper around result.Result for
// composing asynchronous steps.
//
// A Promise[T] is a single-item asynchronous container: one goroutine, one
// future Result. Then is the bind over it, short-circuiting on failure and
// merging per-operation contexts across the chain. Chains are strictly
// sequential pipelines; there is no fan-out and no cancellation.
//
// Key operations:
// - Run/Settled/FromValue: begin a Promise from a computation, Result or value
// - Then: sequence a dependent Result-producing step on success
// - ThenTry: sequence a (value, error) function, converting error to failure
// - Map: transform the successful value
// - Ensure: run side effects on success without changing the result
// - Finally: collapse into a final value via handlers
package promise
