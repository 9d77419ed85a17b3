// Package timer provides a lap stopwatch and the repeat primitive used to
// measure the mean running time of an operation over many executions.
package timer

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for timer state violations. These indicate a programming
// defect in the caller rather than a recoverable condition.
var (
	// ErrTimerRunning is returned by Start or Resume on a running timer.
	ErrTimerRunning = errors.New("timer is already running")

	// ErrTimerNotRunning is returned by Pause on a paused timer.
	ErrTimerNotRunning = errors.New("timer is not running")

	// ErrNoLaps is returned when querying a timer that has recorded no laps.
	ErrNoLaps = errors.New("timer has recorded no laps")
)

// Timer accumulates wall-clock time across multiple discontiguous intervals
// ("laps"). Elapsed time only advances between Start/Resume and Pause;
// anything done while the timer is paused is excluded from the total.
//
// A Timer is not safe for concurrent use. Timing uses time.Now/time.Since,
// which read the monotonic clock.
type Timer struct {
	ticks     time.Duration
	laps      int
	running   bool
	lastStart time.Time
}

// New creates a fresh, paused timer with no accumulated time.
func New() *Timer {
	return &Timer{}
}

// Start resets the accumulator and lap count and begins a new lap.
// Returns ErrTimerRunning if the timer is already running.
func (t *Timer) Start() error {
	if t.running {
		return fmt.Errorf("start: %w", ErrTimerRunning)
	}
	t.ticks = 0
	t.laps = 0
	t.running = true
	t.lastStart = time.Now()
	return nil
}

// Resume begins a new lap without resetting the accumulator.
// Returns ErrTimerRunning if the timer is already running.
func (t *Timer) Resume() error {
	if t.running {
		return fmt.Errorf("resume: %w", ErrTimerRunning)
	}
	t.running = true
	t.lastStart = time.Now()
	return nil
}

// Pause ends the current lap, adding its duration to the accumulator and
// incrementing the lap count. Returns ErrTimerNotRunning if the timer is
// not running.
func (t *Timer) Pause() error {
	if !t.running {
		return fmt.Errorf("pause: %w", ErrTimerNotRunning)
	}
	t.ticks += time.Since(t.lastStart)
	t.laps++
	t.running = false
	return nil
}

// Stop finalizes the timer and returns the total accumulated elapsed time,
// pausing first if a lap is in flight. Stopping a timer that never ran is a
// state violation and returns ErrTimerNotRunning.
func (t *Timer) Stop() (time.Duration, error) {
	if t.running {
		if err := t.Pause(); err != nil {
			return 0, err
		}
		return t.ticks, nil
	}
	if t.laps == 0 {
		return 0, fmt.Errorf("stop: %w", ErrTimerNotRunning)
	}
	return t.ticks, nil
}

// Elapsed returns the time accumulated by completed laps. A lap in flight
// contributes nothing until it is paused.
func (t *Timer) Elapsed() time.Duration {
	return t.ticks
}

// Laps returns the number of completed laps.
func (t *Timer) Laps() int {
	return t.laps
}

// MeanLapTime returns the accumulated elapsed time divided by the number of
// laps. Returns ErrNoLaps if no lap has completed; it never silently
// reports zero.
func (t *Timer) MeanLapTime() (time.Duration, error) {
	if t.laps == 0 {
		return 0, fmt.Errorf("mean lap time: %w", ErrNoLaps)
	}
	return t.ticks / time.Duration(t.laps), nil
}

// String returns a formatted representation of the timer state.
func (t *Timer) String() string {
	return fmt.Sprintf("%v over %d laps", t.ticks, t.laps)
}

// Repeat runs the three-phase measurement protocol n times and returns the
// mean lap time in milliseconds.
//
// Each iteration obtains a fresh input from supplier, transforms it with pre
// (when non-nil), then invokes function with the timer running and passes
// the result to post (when non-nil). Only the function call contributes to
// elapsed time; supplier, pre and post run with the clock stopped, so setup
// and verification cost never leaks into the measurement.
//
// An error from any phase aborts the loop immediately. No partial mean is
// returned: skipping failed samples would bias the result.
//
// Repeat is a package-level function because Go methods cannot introduce
// type parameters. It constructs its own Timer so accumulated state can
// never leak between unrelated runs.
func Repeat[T, U any](n int, supplier func() T, function func(T) (U, error), pre func(T) (T, error), post func(U) error) (float64, error) {
	if n < 1 {
		return 0, fmt.Errorf("repeat: run count must be at least 1, got %d", n)
	}
	if supplier == nil {
		return 0, errors.New("repeat: supplier must not be nil")
	}
	if function == nil {
		return 0, errors.New("repeat: function must not be nil")
	}

	t := New()
	for i := 0; i < n; i++ {
		input := supplier()
		if pre != nil {
			var err error
			if input, err = pre(input); err != nil {
				return 0, fmt.Errorf("repeat: prepare failed on run %d: %w", i+1, err)
			}
		}

		if err := t.Resume(); err != nil {
			return 0, fmt.Errorf("repeat: %w", err)
		}
		result, fnErr := function(input)
		if err := t.Pause(); err != nil {
			return 0, fmt.Errorf("repeat: %w", err)
		}
		if fnErr != nil {
			return 0, fmt.Errorf("repeat: run %d failed: %w", i+1, fnErr)
		}

		if post != nil {
			if err := post(result); err != nil {
				return 0, fmt.Errorf("repeat: verify failed on run %d: %w", i+1, err)
			}
		}
	}

	mean, err := t.MeanLapTime()
	if err != nil {
		return 0, fmt.Errorf("repeat: %w", err)
	}
	return float64(mean) / float64(time.Millisecond), nil
}
