package result

import (
	"errors"
	"testing"
)

func TestSuccess_Accessors(t *testing.T) {
	t.Parallel()

	r := Success(42)

	if !r.IsSuccess() || r.IsFailure() {
		t.Fatalf("expected success, got failure: %v", r.Err())
	}
	if r.Value() != 42 {
		t.Fatalf("expected value 42, got %d", r.Value())
	}
	if r.Err() != nil {
		t.Fatalf("expected nil error, got %v", r.Err())
	}
	if r.FailureType() != TypeSuccess {
		t.Fatalf("expected type %q, got %q", TypeSuccess, r.FailureType())
	}
}

func TestFailure_Accessors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	r := FailureAs[int](boom, "NOPE")

	if r.IsSuccess() {
		t.Fatalf("expected failure, got success: %v", r.Value())
	}
	if !errors.Is(r.Err(), boom) {
		t.Fatalf("expected original error, got %v", r.Err())
	}
	if r.FailureType() != "NOPE" {
		t.Fatalf("expected type NOPE, got %q", r.FailureType())
	}
	if r.Value() != 0 {
		t.Fatalf("expected zero value on failure, got %d", r.Value())
	}
}

func TestFailureWith_Defaults(t *testing.T) {
	t.Parallel()

	r := FailureWith[string](nil, "", nil, "")

	if r.Err() == nil {
		t.Fatal("expected a non-nil error substituted for nil")
	}
	if r.FailureType() != TypeFailure {
		t.Fatalf("expected default type %q, got %q", TypeFailure, r.FailureType())
	}
}

func TestCoerceError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	if CoerceError(boom) != boom {
		t.Fatal("expected errors to pass through unchanged")
	}

	err := CoerceError("plain string")
	if err == nil || err.Error() != "plain string" {
		t.Fatalf("expected coerced 'plain string' error, got %v", err)
	}

	if CoerceError(nil) == nil {
		t.Fatal("expected a generic error for nil")
	}
}

func TestFailureFrom_PreservesEverything(t *testing.T) {
	t.Parallel()

	ctxs := ContextMap{"Op": {InputParams: 1, OutputParams: 2}}
	from := FailureWith[int](errors.New("boom"), "NOPE", ctxs, "Op")

	to := FailureFrom[int, string](from)

	if to.IsSuccess() {
		t.Fatal("expected failure to carry over")
	}
	if to.Err() != from.Err() || to.FailureType() != "NOPE" || to.Operation() != "Op" {
		t.Fatalf("expected metadata to carry over, got %v / %q / %q", to.Err(), to.FailureType(), to.Operation())
	}
	if to.Id() != from.Id() || !to.CreatedAt().Equal(from.CreatedAt()) {
		t.Fatal("expected id and creation time to carry over")
	}
	if _, ok := to.Contexts()["Op"]; !ok {
		t.Fatal("expected contexts to carry over")
	}
}

func TestOnSuccess_OnFailure_Filters(t *testing.T) {
	t.Parallel()

	succeeded, failed := 0, 0
	Success("ok").
		OnSuccess(func(v string) { succeeded++ }).
		OnFailure(func(err error) { failed++ })

	if succeeded != 1 || failed != 0 {
		t.Fatalf("expected 1/0 callbacks on success, got %d/%d", succeeded, failed)
	}

	var matched, catchAll, other int
	r := FailureAs[string](errors.New("boom"), "NOPE")
	r.OnFailure(func(err error) { other++ }, "ELSEWHERE").
		OnFailure(func(err error) { matched++ }, "NOPE").
		OnFailure(func(err error) { catchAll++ })

	if other != 0 || matched != 1 || catchAll != 1 {
		t.Fatalf("expected 0/1/1 filtered callbacks, got %d/%d/%d", other, matched, catchAll)
	}
}

func TestCallbacks_DoNotMutate(t *testing.T) {
	t.Parallel()

	r := FailureAs[int](errors.New("boom"), "NOPE")
	for i := 0; i < 3; i++ {
		r = r.OnFailure(func(err error) {}, "NOPE")
	}

	if r.FailureType() != "NOPE" || r.Err() == nil || r.IsSuccess() {
		t.Fatal("expected repeated callbacks to leave the result untouched")
	}
}

func TestContextMap_Merge(t *testing.T) {
	t.Parallel()

	a := ContextMap{
		"A":      {InputParams: 1, OutputParams: 2},
		"Shared": {InputParams: "old"},
	}
	b := ContextMap{
		"B":      {InputParams: 3, OutputParams: 4},
		"Shared": {InputParams: "new"},
	}

	merged := a.Merge(b)

	if len(merged) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(merged))
	}
	if merged["Shared"].InputParams != "new" {
		t.Fatalf("expected later entry to win, got %v", merged["Shared"].InputParams)
	}
	if a["Shared"].InputParams != "old" {
		t.Fatal("expected Merge to leave the receiver untouched")
	}

	if got := ContextMap(nil).Merge(nil); got != nil {
		t.Fatalf("expected nil merge of empty maps, got %v", got)
	}
}

func TestMergeContexts_OwnEntriesWin(t *testing.T) {
	t.Parallel()

	r := SuccessWith(1, ContextMap{"B": {InputParams: "own"}}, "B")
	merged := r.MergeContexts(ContextMap{
		"A": {InputParams: "up"},
		"B": {InputParams: "up"},
	})

	if merged.Contexts()["A"].InputParams != "up" {
		t.Fatal("expected upstream entry to be added")
	}
	if merged.Contexts()["B"].InputParams != "own" {
		t.Fatal("expected own entry to win on collision")
	}
	if len(r.Contexts()) != 1 {
		t.Fatal("expected the original result to be untouched")
	}
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	if !IsNil(nil) {
		t.Fatal("expected nil to be nil")
	}
	var p *int
	if !IsNil(p) {
		t.Fatal("expected typed nil pointer to be nil")
	}
	var m map[string]int
	if !IsNil(m) {
		t.Fatal("expected nil map to be nil")
	}
	if IsNil(0) || IsNil("") {
		t.Fatal("expected zero values not to be nil")
	}
}
