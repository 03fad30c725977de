package vqe

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/optimize"
)

// Objective is the function a classical optimizer minimizes: energy as a
// function of variational parameters.
type Objective func(theta []float64) (float64, error)

// OptimizeResult carries the outcome of one minimization run.
type OptimizeResult struct {
	// Energy is the lowest objective value found.
	Energy float64

	// Params is the parameter vector producing Energy.
	Params []float64

	// Evaluations counts objective calls made by the optimizer.
	Evaluations int
}

// Optimizer is a pluggable classical minimization strategy.
type Optimizer interface {
	Minimize(obj Objective, initial []float64) (*OptimizeResult, error)
}

const (
	defaultMaxIterations = 2000
	defaultFuncTol       = 1e-5
	defaultGradStep      = 1e-5
)

// QuasiNewton minimizes with L-BFGS over forward-difference gradients.
type QuasiNewton struct {
	// MaxIterations caps major optimizer iterations. Zero means the
	// default cap.
	MaxIterations int

	// FuncTol is the absolute function-value convergence tolerance. Zero
	// means the default tolerance.
	FuncTol float64

	// GradStep is the finite-difference step used for gradients. Zero
	// means the default step.
	GradStep float64
}

// DefaultOptimizer returns the default minimization strategy.
func DefaultOptimizer() Optimizer {
	return &QuasiNewton{}
}

// Minimize runs the quasi-Newton descent from initial. Objective errors
// abort the run and surface unchanged; the NaN returned in their place
// stops the line search promptly.
func (q *QuasiNewton) Minimize(obj Objective, initial []float64) (*OptimizeResult, error) {
	maxIter := q.MaxIterations
	if maxIter <= 0 {
		maxIter = defaultMaxIterations
	}
	funcTol := q.FuncTol
	if funcTol <= 0 {
		funcTol = defaultFuncTol
	}
	gradStep := q.GradStep
	if gradStep <= 0 {
		gradStep = defaultGradStep
	}

	var objErr error
	f := func(x []float64) float64 {
		v, err := obj(x)
		if err != nil {
			if objErr == nil {
				objErr = err
			}
			return math.NaN()
		}
		return v
	}
	problem := optimize.Problem{
		Func: f,
		Grad: func(grad, x []float64) {
			fd.Gradient(grad, f, x, &fd.Settings{Step: gradStep})
		},
	}
	settings := &optimize.Settings{
		MajorIterations: maxIter,
		Converger: &optimize.FunctionConverge{
			Absolute:   funcTol,
			Iterations: 20,
		},
	}

	result, err := optimize.Minimize(problem, initial, settings, &optimize.LBFGS{})
	if objErr != nil {
		return nil, objErr
	}
	if err != nil {
		// Near a flat optimum the finite-difference gradient is noisier
		// than the remaining function variation and the final line search
		// cannot converge, even though the recorded minimum is already
		// settled. Keep that minimum.
		if !errors.Is(err, optimize.ErrLinesearcherFailure) || result == nil || math.IsNaN(result.F) || math.IsInf(result.F, 0) {
			return nil, err
		}
	}
	return &OptimizeResult{
		Energy:      result.F,
		Params:      append([]float64(nil), result.X...),
		Evaluations: result.Stats.FuncEvaluations,
	}, nil
}
