// Package solver integrates ODE systems over a caller-supplied time
// grid. The steppers are adapted textbook fixed-step and adaptive
// Runge-Kutta methods; the grid driver sub-steps between grid points
// and reports the state exactly at each requested time.
package solver

import (
	"context"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrTimeGrid indicates a time grid that is not strictly increasing.
	ErrTimeGrid = errors.New("solver: time grid must be strictly increasing")

	// ErrUnstable indicates the state picked up NaN or Inf values.
	ErrUnstable = errors.New("solver: state diverged (NaN or Inf)")

	// ErrStepTooSmall indicates the adaptive step shrank below the minimum.
	ErrStepTooSmall = errors.New("solver: adaptive step below minimum")
)

// System is an autonomous-or-not ODE right-hand side dy/dt = f(y, t).
type System interface {
	Dim() int
	Derive(y []float64, t float64) []float64
}

// Stepper advances the state by one step of size dt.
type Stepper interface {
	Step(sys System, y []float64, t, dt float64) []float64
}

// AdaptiveStepper additionally estimates its local error and proposes
// the next step size.
type AdaptiveStepper interface {
	Stepper
	StepAdaptive(sys System, y []float64, t, dt, tol float64) (next []float64, dtNext float64, errEst float64)
}

type Options struct {
	InitialStep float64
	MinStep     float64
	MaxStep     float64
	Tolerance   float64
}

func DefaultOptions() Options {
	return Options{
		InitialStep: 1e-3,
		MinStep:     1e-12,
		MaxStep:     math.Inf(1),
		Tolerance:   1e-8,
	}
}

// Solve integrates sys from times[0] through the whole grid and
// returns one state per grid point; the first row is y0 unchanged.
// Between grid points the stepper sub-steps, adaptively when it
// supports that, and the final sub-step is clipped to land exactly on
// the grid point. Solve checks ctx between sub-steps and returns
// ctx.Err() on cancellation.
func Solve(ctx context.Context, sys System, y0 []float64, times []float64, st Stepper, opts Options) ([][]float64, error) {
	if len(times) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points, got %d", ErrTimeGrid, len(times))
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			return nil, fmt.Errorf("%w: times[%d]=%g, times[%d]=%g", ErrTimeGrid, i-1, times[i-1], i, times[i])
		}
	}
	if opts.InitialStep <= 0 {
		opts = DefaultOptions()
	}

	out := make([][]float64, len(times))
	y := make([]float64, len(y0))
	copy(y, y0)
	out[0] = clone(y)

	adaptive, _ := st.(AdaptiveStepper)
	dt := opts.InitialStep

	for k := 1; k < len(times); k++ {
		t, target := times[k-1], times[k]
		for t < target {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}

			h := math.Min(dt, target-t)

			if adaptive != nil {
				next, dtNext, errEst := adaptive.StepAdaptive(sys, y, t, h, opts.Tolerance)
				if errEst > 1 {
					// Step rejected; retry with the smaller proposal.
					if dtNext < opts.MinStep {
						return nil, fmt.Errorf("%w at t=%g", ErrStepTooSmall, t)
					}
					dt = dtNext
					continue
				}
				y = next
				t += h
				dt = math.Min(dtNext, opts.MaxStep)
			} else {
				y = st.Step(sys, y, t, h)
				t += h
			}

			if !valid(y) {
				return nil, fmt.Errorf("%w at t=%g", ErrUnstable, t)
			}
		}
		out[k] = clone(y)
	}
	return out, nil
}

func clone(y []float64) []float64 {
	c := make([]float64, len(y))
	copy(c, y)
	return c
}

func valid(y []float64) bool {
	for _, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
