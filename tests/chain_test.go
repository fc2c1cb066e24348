package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunosps/usecase-go/pkg/result"
	"github.com/brunosps/usecase-go/pkg/result/promise"
	"github.com/brunosps/usecase-go/pkg/result/usecase"
	"github.com/brunosps/usecase-go/pkg/result/wrap"
)

type registerInput struct {
	Email string
}

type registerOutput struct {
	UserID int
}

type RegisterUser struct{}

func (RegisterUser) Execute(ctx context.Context, in registerInput) result.Result[registerOutput] {
	if in.Email == "" {
		return result.FailureAs[registerOutput](errors.New("email required"), "INVALID_INPUT")
	}
	return result.Success(registerOutput{UserID: 101})
}

type SendWelcome struct{}

func (SendWelcome) Execute(ctx context.Context, in registerOutput) result.Result[string] {
	return result.Success("welcome sent")
}

type AlwaysRejects struct{}

func (AlwaysRejects) Execute(ctx context.Context, in registerOutput) result.Result[string] {
	return result.FailureAs[string](errors.New("no"), "NOPE")
}

// TestTwoStepChain_HappyPath chains two use cases and checks that the final
// result accumulates one context entry per step with the right snapshots.
func TestTwoStepChain_HappyPath(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	in := registerInput{Email: "a@b.c"}

	res := promise.Then(
		usecase.Call(ctx, RegisterUser{}, in),
		func(ctx context.Context, out registerOutput) *promise.Promise[string] {
			return usecase.Call(ctx, SendWelcome{}, out)
		},
	).Await()

	require.True(t, res.IsSuccess())
	assert.Equal(t, "welcome sent", res.Value())

	first, ok := res.Contexts()["RegisterUser"]
	require.True(t, ok)
	assert.Equal(t, in, first.InputParams)
	assert.Equal(t, registerOutput{UserID: 101}, first.OutputParams)

	second, ok := res.Contexts()["SendWelcome"]
	require.True(t, ok)
	assert.Equal(t, registerOutput{UserID: 101}, second.InputParams)
	assert.Equal(t, "welcome sent", second.OutputParams)
}

// TestTwoStepChain_SecondStepFails mirrors the classic pipeline shape where
// step one succeeds and step two rejects: the chain surfaces step two's
// failure while keeping step one's context entry.
func TestTwoStepChain_SecondStepFails(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	res := promise.Then(
		usecase.Call(ctx, RegisterUser{}, registerInput{Email: "a@b.c"}),
		func(ctx context.Context, out registerOutput) *promise.Promise[string] {
			return usecase.Call(ctx, AlwaysRejects{}, out)
		},
	).Await()

	require.True(t, res.IsFailure())
	assert.Equal(t, "NOPE", res.FailureType())
	assert.Equal(t, "no", res.Err().Error())
	assert.Equal(t, "AlwaysRejects", res.Operation())

	assert.Contains(t, res.Contexts(), "RegisterUser")
	assert.NotContains(t, res.Contexts(), "AlwaysRejects")
}

// TestTwoStepChain_FirstStepFails checks the short-circuit: the dependent
// step must never run once the first one failed.
func TestTwoStepChain_FirstStepFails(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	secondRan := 0

	res := promise.Then(
		usecase.Call(ctx, RegisterUser{}, registerInput{}),
		func(ctx context.Context, out registerOutput) *promise.Promise[string] {
			secondRan++
			return usecase.Call(ctx, SendWelcome{}, out)
		},
	).Await()

	require.True(t, res.IsFailure())
	assert.Equal(t, 0, secondRan)
	assert.Equal(t, "INVALID_INPUT", res.FailureType())
	assert.Equal(t, "RegisterUser", res.Operation())
}

// TestWrapIntoChain feeds a legacy (value, error) function into a use-case
// chain and drives the tag-filtered callbacks at the end.
func TestWrapIntoChain(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	parsed := wrap.Sync(func() (registerInput, error) {
		return registerInput{Email: "a@b.c"}, nil
	}, wrap.WithOperation("ParseRequest"))
	require.True(t, parsed.IsSuccess())

	res := promise.Then(
		promise.Settled(ctx, parsed),
		func(ctx context.Context, in registerInput) *promise.Promise[registerOutput] {
			return usecase.Call(ctx, RegisterUser{}, in)
		},
	).Await()

	require.True(t, res.IsSuccess())

	var invalid, unexpected, handled int
	res.
		OnFailure(func(err error) { invalid++ }, "INVALID_INPUT").
		OnFailure(func(err error) { unexpected++ }, result.TypeUnexpectedError).
		OnFailure(func(err error) { handled++ }).
		OnSuccess(func(out registerOutput) { handled++ })

	assert.Equal(t, 0, invalid)
	assert.Equal(t, 0, unexpected)
	assert.Equal(t, 1, handled)
}
