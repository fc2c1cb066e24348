package result

// Failure classification tags. Tags are open strings: callers may classify
// failures under any tag they like, these are the ones the core itself
// produces.
const (
	// TypeSuccess is the type of every successful Result.
	TypeSuccess = "SUCCESS"
	// TypeFailure is the default tag for failures no mapping claimed.
	TypeFailure = "FAILURE"
	// TypeUnexpectedError tags panics escaping an operation that promised
	// to return Results instead.
	TypeUnexpectedError = "UNEXPECTED_ERROR"
)
