package chain

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/grubdash/internal/errs"
)

func record(name string, trace *[]string, err error) Stage[string] {
	return Step(name, func(ctx context.Context, st *State[string]) error {
		*trace = append(*trace, name)
		return err
	})
}

func TestChain_RunsStagesInOrder(t *testing.T) {
	var trace []string

	c := New("things.create",
		record("first", &trace, nil),
		record("second", &trace, nil),
	).Handle(func(ctx context.Context, st *State[string]) (Result, error) {
		trace = append(trace, "terminal")
		return Created("thing"), nil
	})

	result, err := c.Run(context.Background(), NewState[string]("", nil))
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second", "terminal"}, trace)
	assert.Equal(t, http.StatusCreated, result.Status)
	assert.Equal(t, "thing", result.Data)
	assert.Equal(t, []string{"first", "second"}, c.Stages())
}

func TestChain_ShortCircuitsOnFirstFailure(t *testing.T) {
	var trace []string
	failure := errs.NewBadRequestError("Dish must include a name")

	c := New("things.update",
		record("load", &trace, nil),
		record("check", &trace, failure),
		record("never", &trace, nil),
	).Handle(func(ctx context.Context, st *State[string]) (Result, error) {
		trace = append(trace, "terminal")
		return OK(nil), nil
	})

	_, err := c.Run(context.Background(), NewState[string]("1", nil))
	require.Error(t, err)

	assert.Equal(t, []string{"load", "check"}, trace)

	var stageErr *StageError
	require.True(t, errors.As(err, &stageErr))
	assert.Equal(t, "things.update", stageErr.Chain)
	assert.Equal(t, "check", stageErr.Stage)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Dish must include a name", httpErr.Message)
}

func TestChain_TerminalFailureIsReported(t *testing.T) {
	c := New[string]("things.delete").Handle(func(ctx context.Context, st *State[string]) (Result, error) {
		return Result{}, errs.NewNotFoundError("gone")
	})

	_, err := c.Run(context.Background(), NewState[string]("1", nil))

	var stageErr *StageError
	require.True(t, errors.As(err, &stageErr))
	assert.Equal(t, TerminalStage, stageErr.Stage)
}

func TestChain_MissingTerminalIsInternalError(t *testing.T) {
	c := New[string]("things.list")

	_, err := c.Run(context.Background(), NewState[string]("", nil))

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestChain_StagesShareState(t *testing.T) {
	loader := Step("load", func(ctx context.Context, st *State[string]) error {
		st.Attach("record-" + st.RouteID)
		return nil
	})

	c := New("things.read", loader).Handle(func(ctx context.Context, st *State[string]) (Result, error) {
		rec, ok := st.Record()
		if !ok {
			return Result{}, errs.NewInternalServerError()
		}
		return OK(rec), nil
	})

	result, err := c.Run(context.Background(), NewState[string]("7", nil))
	require.NoError(t, err)
	assert.Equal(t, "record-7", result.Data)
}

func TestResult_HasBody(t *testing.T) {
	assert.True(t, OK(nil).HasBody())
	assert.True(t, Created(1).HasBody())
	assert.False(t, NoContent().HasBody())
}
