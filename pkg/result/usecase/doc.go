// Package usecase wraps user-supplied operations behind a uniform boundary.
//
// An Interactor's Execute returns Results and never panics; Call provides
// the safety net for the cases where it does anyway, records a fresh
// input/output context entry per successful call, stamps the originating
// operation on failures, and notifies the telemetry sink at each step.
// Call returns a promise.Promise so use cases chain with promise.Then.
package usecase
