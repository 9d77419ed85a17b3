// Package benchmark provides a named, reusable benchmark definition that
// binds prepare, measure and verify functions to the timer's repeat
// primitive and manages warmup.
package benchmark

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/MeKo-Tech/lapbench/internal/timer"
)

const (
	minWarmupRuns = 2
	maxWarmupRuns = 10
)

// Benchmark is an immutable benchmark definition over inputs of type T.
//
// A run has three phases: prepare (optional, untimed) produces the argument
// handed to measure; measure (required, timed) is the operation under
// study; verify (optional, untimed) checks the outcome. Only measure
// contributes to the reported time.
//
// A Benchmark may be reused across many sequential runs. Concurrent runs of
// the same Benchmark are unsupported.
type Benchmark[T any] struct {
	description string
	prepare     func(T) (T, error)
	measure     func(T) error
	verify      func(T) error
}

// Option configures optional phases of a Benchmark.
type Option[T any] func(*Benchmark[T])

// WithPrepare sets the untimed prepare phase. Its result is the value
// passed to the measured function.
func WithPrepare[T any](prepare func(T) (T, error)) Option[T] {
	return func(b *Benchmark[T]) {
		b.prepare = prepare
	}
}

// WithVerify sets the untimed verify phase, run after each timed iteration.
// Verification errors propagate; they never alter the timing.
func WithVerify[T any](verify func(T) error) Option[T] {
	return func(b *Benchmark[T]) {
		b.verify = verify
	}
}

// New creates a benchmark definition for the given measured function.
func New[T any](description string, measure func(T) error, opts ...Option[T]) *Benchmark[T] {
	b := &Benchmark[T]{
		description: description,
		measure:     measure,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Description returns the human-readable benchmark description.
func (b *Benchmark[T]) Description() string {
	return b.description
}

// WarmupRuns returns the number of warmup iterations for m timed runs:
// m/10 clamped to [2, 10].
func WarmupRuns(m int) int {
	return max(minWarmupRuns, min(maxWarmupRuns, m/10))
}

// Run measures the benchmark m times against a fixed input and returns the
// mean time per run in milliseconds.
//
// The same input value is handed to every iteration. If the measured
// function mutates its argument in place, install a prepare function that
// copies it, otherwise later iterations observe the mutations of earlier
// ones.
func (b *Benchmark[T]) Run(input T, m int) (float64, error) {
	return b.RunFromSupplier(func() T { return input }, m)
}

// RunFromSupplier measures the benchmark m times, drawing a fresh input
// from supplier for each iteration, and returns the mean time per run in
// milliseconds.
//
// A warmup pass of WarmupRuns(m) iterations is executed first to stabilize
// runtime state; its timing is discarded and its verify phase is skipped.
// Any error from prepare, measure or verify aborts the run and propagates.
func (b *Benchmark[T]) RunFromSupplier(supplier func() T, m int) (float64, error) {
	if m < 1 {
		return 0, fmt.Errorf("benchmark %q: run count must be at least 1, got %d", b.description, m)
	}
	if b.measure == nil {
		return 0, fmt.Errorf("benchmark %q: no measured function", b.description)
	}
	if supplier == nil {
		return 0, errors.New("benchmark: supplier must not be nil")
	}

	slog.Info("Begin run", "benchmark", b.description, "runs", m)

	// Adapt the side-effecting measure into a pass-through transform so it
	// composes with the repeat primitive.
	function := func(t T) (T, error) {
		return t, b.measure(t)
	}

	if _, err := timer.Repeat(WarmupRuns(m), supplier, function, b.prepare, nil); err != nil {
		return 0, fmt.Errorf("benchmark %q: warmup: %w", b.description, err)
	}

	mean, err := timer.Repeat(m, supplier, function, b.prepare, b.verify)
	if err != nil {
		return 0, fmt.Errorf("benchmark %q: %w", b.description, err)
	}
	return mean, nil
}
