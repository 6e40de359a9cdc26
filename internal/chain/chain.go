// Package chain runs the ordered validation and mutation stages of one
// API operation.
//
// A Chain is a fixed list of stages followed by a terminal handler. Stages
// run strictly in order; returning nil advances to the next stage, and the
// first error stops the run. Nothing after a failing stage executes, so no
// mutation happens on a request that fails validation.
package chain

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/deppfellow/grubdash/internal/errs"
)

// TerminalStage is the name reported when the terminal handler fails.
const TerminalStage = "handler"

// Stage is a single validation or loading step.
type Stage[T any] interface {
	Name() string
	Run(ctx context.Context, st *State[T]) error
}

// Terminal performs the operation's effect and produces the response.
type Terminal[T any] func(ctx context.Context, st *State[T]) (Result, error)

type stageFunc[T any] struct {
	name string
	fn   func(ctx context.Context, st *State[T]) error
}

func (s stageFunc[T]) Name() string { return s.name }

func (s stageFunc[T]) Run(ctx context.Context, st *State[T]) error { return s.fn(ctx, st) }

// Step adapts a function into a named Stage.
func Step[T any](name string, fn func(ctx context.Context, st *State[T]) error) Stage[T] {
	return stageFunc[T]{name: name, fn: fn}
}

// Chain is the ordered pipeline for one operation, e.g. "dishes.update".
type Chain[T any] struct {
	name     string
	stages   []Stage[T]
	terminal Terminal[T]
}

// New builds a chain from stages in execution order.
func New[T any](name string, stages ...Stage[T]) *Chain[T] {
	return &Chain[T]{
		name:   name,
		stages: append([]Stage[T](nil), stages...),
	}
}

// Then appends stages after the ones already in the chain.
func (c *Chain[T]) Then(stages ...Stage[T]) *Chain[T] {
	c.stages = append(c.stages, stages...)
	return c
}

// Handle sets the terminal handler and returns the chain.
func (c *Chain[T]) Handle(terminal Terminal[T]) *Chain[T] {
	c.terminal = terminal
	return c
}

// Name returns the operation name.
func (c *Chain[T]) Name() string { return c.name }

// Stages returns the stage names in execution order, terminal excluded.
func (c *Chain[T]) Stages() []string {
	names := make([]string, len(c.stages))
	for i, s := range c.stages {
		names[i] = s.Name()
	}
	return names
}

// Run executes every stage in order and then the terminal handler.
//
// A failure is returned as *StageError wrapping the stage's error.
func (c *Chain[T]) Run(ctx context.Context, st *State[T]) (Result, error) {
	logger := zerolog.Ctx(ctx)

	for _, stage := range c.stages {
		start := time.Now()
		if err := stage.Run(ctx, st); err != nil {
			logger.Debug().
				Str("chain", c.name).
				Str("stage", stage.Name()).
				Dur("duration", time.Since(start)).
				Err(err).
				Msg("stage failed")

			return Result{}, &StageError{Chain: c.name, Stage: stage.Name(), Err: err}
		}

		logger.Debug().
			Str("chain", c.name).
			Str("stage", stage.Name()).
			Dur("duration", time.Since(start)).
			Msg("stage passed")
	}

	if c.terminal == nil {
		return Result{}, &StageError{Chain: c.name, Stage: TerminalStage, Err: errs.NewInternalServerError()}
	}

	result, err := c.terminal(ctx, st)
	if err != nil {
		return Result{}, &StageError{Chain: c.name, Stage: TerminalStage, Err: err}
	}

	return result, nil
}

// StageError records which stage stopped a chain.
type StageError struct {
	Chain string
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Chain, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
