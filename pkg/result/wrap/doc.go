// Package wrap adapts plain Go call shapes into the Result world.
//
// Four adapters cover the usual shapes: Sync and Async for callables that
// return (value, error) — panics included — and Value/ValueErr/ValueAsync
// for already-produced values, with an opt-in validation pipeline (nil,
// empty string, zero, empty slice, empty map, custom check).
//
// Failures are classified through ordered Mappings: the first predicate
// claiming the error decides the tag, unmatched errors get the default
// (result.TypeFailure unless overridden). MapAs and MapIs build predicates
// over errors.As and errors.Is; order them specific-first.
package wrap
