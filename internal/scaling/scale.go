package scaling

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"watex/domain/core"
	"watex/internal"
	"watex/internal/curvefit"
)

// Model is a parametric curve y = Func(x, p) with NumParams parameters
type Model struct {
	Name      string
	NumParams int
	Func      func(x float64, p []float64) float64
}

// Linear is a*x + b with p = [a, b]
var Linear = &Model{
	Name:      "linear",
	NumParams: 2,
	Func:      func(x float64, p []float64) float64 { return p[0]*x + p[1] },
}

// Result holds the corrected values and the fit statistics
type Result struct {
	Corrected  []float64
	Params     []float64
	Covariance *mat.Dense
	Iterations int
	Converged  bool
}

const (
	defaultTolerance = 1.49012e-08
	initialDamping   = 1e-3
	maxDampingSteps  = 30
)

type options struct {
	maxIterations int
	tolerance     float64
	logger        zerolog.Logger
}

// Option configures Scale
type Option func(*options)

// WithMaxIterations bounds the number of accepted steps
func WithMaxIterations(n int) Option {
	return func(o *options) { o.maxIterations = n }
}

// WithTolerance sets the relative convergence tolerance
func WithTolerance(tol float64) Option {
	return func(o *options) { o.tolerance = tol }
}

// WithLogger overrides the component logger
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// Scale fits model to (x, y) by nonlinear least squares and returns y
// re-evaluated at the fitted parameters. A nil model is Linear, a nil x is
// evenly spaced over [0, 4] and a nil p0 starts every parameter at 1.
func Scale(y, x []float64, model *Model, p0 []float64, opts ...Option) (*Result, error) {
	if model == nil {
		model = Linear
	}
	if model.Func == nil {
		return nil, fmt.Errorf("%w: model %q has no function", core.ErrInvalidFunction, model.Name)
	}
	if len(y) == 0 {
		return nil, core.NewInsufficientDataError(1, 0)
	}
	if x == nil {
		x = curvefit.Linspace(0, 4, len(y))
	}
	if len(x) != len(y) {
		return nil, core.NewLengthMismatchError("x and y", len(x), len(y))
	}

	k := model.NumParams
	if p0 != nil {
		k = len(p0)
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: model %q needs at least one parameter", core.ErrInvalidArgument, model.Name)
	}
	if model.NumParams > 0 && k != model.NumParams {
		return nil, fmt.Errorf("%w: model %q takes %d parameters, got %d", core.ErrInvalidArgument, model.Name, model.NumParams, k)
	}

	o := options{
		maxIterations: 200 * (k + 1),
		tolerance:     defaultTolerance,
		logger:        internal.Component("scaling"),
	}
	for _, opt := range opts {
		opt(&o)
	}

	p := make([]float64, k)
	if p0 != nil {
		copy(p, p0)
	} else {
		floats.AddConst(1, p)
	}

	lm := levenbergMarquardt{x: x, y: y, model: model, tol: o.tolerance}
	iterations, converged := lm.minimize(p, o.maxIterations)
	if !converged {
		o.logger.Warn().Str("model", model.Name).Int("iterations", iterations).
			Msg("least squares did not converge, returning the last parameters")
	}

	corrected := make([]float64, len(x))
	for i, xi := range x {
		corrected[i] = model.Func(xi, p)
	}

	return &Result{
		Corrected:  corrected,
		Params:     p,
		Covariance: lm.covariance(p),
		Iterations: iterations,
		Converged:  converged,
	}, nil
}

type levenbergMarquardt struct {
	x, y  []float64
	model *Model
	tol   float64
}

func (lm levenbergMarquardt) residuals(p []float64) []float64 {
	r := make([]float64, len(lm.y))
	for i, xi := range lm.x {
		r[i] = lm.y[i] - lm.model.Func(xi, p)
	}
	return r
}

func (lm levenbergMarquardt) jacobian(p []float64) *mat.Dense {
	jac := mat.NewDense(len(lm.y), len(p), nil)
	fd.Jacobian(jac, func(dst, params []float64) {
		for i, xi := range lm.x {
			dst[i] = lm.model.Func(xi, params)
		}
	}, p, &fd.JacobianSettings{Formula: fd.Central})
	return jac
}

// minimize updates p in place and reports the accepted steps
func (lm levenbergMarquardt) minimize(p []float64, maxIterations int) (int, bool) {
	r := lm.residuals(p)
	ssr := floats.Dot(r, r)
	if ssr == 0 {
		return 0, true
	}
	damping := initialDamping
	k := len(p)

	for iter := 1; iter <= maxIterations; iter++ {
		jac := lm.jacobian(p)
		var jtj mat.Dense
		jtj.Mul(jac.T(), jac)
		grad := mat.NewVecDense(k, nil)
		grad.MulVec(jac.T(), mat.NewVecDense(len(r), r))

		accepted := false
		for step := 0; step < maxDampingSteps; step++ {
			a := mat.DenseCopyOf(&jtj)
			for j := 0; j < k; j++ {
				d := jtj.At(j, j)
				if d == 0 {
					d = 1
				}
				a.Set(j, j, jtj.At(j, j)+damping*d)
			}

			var delta mat.VecDense
			if err := delta.SolveVec(a, grad); err != nil {
				var cond mat.Condition
				if !errors.As(err, &cond) {
					damping *= 10
					continue
				}
			}

			trial := make([]float64, k)
			floats.AddTo(trial, p, delta.RawVector().Data)
			tr := lm.residuals(trial)
			trialSSR := floats.Dot(tr, tr)
			if !(trialSSR < ssr) {
				damping *= 10
				continue
			}

			reduction := ssr - trialSSR
			stepNorm := floats.Norm(delta.RawVector().Data, 2)
			copy(p, trial)
			r, ssr = tr, trialSSR
			damping = math.Max(damping/10, 1e-12)
			accepted = true

			if ssr == 0 || reduction <= lm.tol*ssr || stepNorm <= lm.tol*(floats.Norm(p, 2)+lm.tol) {
				return iter, true
			}
			break
		}
		if !accepted {
			// no downhill step left: p is a local minimum within tolerance
			return iter, true
		}
	}
	return maxIterations, false
}

// covariance is inv(JᵀJ) scaled by the residual variance, Inf-filled when
// the problem is singular or has no degrees of freedom.
func (lm levenbergMarquardt) covariance(p []float64) *mat.Dense {
	k, m := len(p), len(lm.y)
	cov := mat.NewDense(k, k, nil)
	infFill := func() *mat.Dense {
		for i := 0; i < k; i++ {
			for j := 0; j < k; j++ {
				cov.Set(i, j, math.Inf(1))
			}
		}
		return cov
	}
	if m <= k {
		return infFill()
	}

	jac := lm.jacobian(p)
	var jtj mat.Dense
	jtj.Mul(jac.T(), jac)
	if err := cov.Inverse(&jtj); err != nil {
		return infFill()
	}
	r := lm.residuals(p)
	cov.Scale(floats.Dot(r, r)/float64(m-k), cov)
	return cov
}
