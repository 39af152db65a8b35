package curvefit

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"watex/domain/core"
	"watex/internal"
)

// DefaultSampleCount is the resampling grid size used for fitted curves
const DefaultSampleCount = 1000

// Result is a fitted curve with its resampled values
type Result struct {
	Curve  Polynomial
	Degree int
	X      []float64
	Y      []float64
}

type options struct {
	degree      int
	sampleCount int
	logger      zerolog.Logger
}

// Option configures Fit
type Option func(*options)

// WithDegree fixes the polynomial degree instead of deriving it from the extrema
func WithDegree(degree int) Option {
	return func(o *options) { o.degree = degree }
}

// WithSampleCount sets the number of resampled points
func WithSampleCount(n int) Option {
	return func(o *options) { o.sampleCount = n }
}

// WithLogger overrides the component logger
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// Fit fits a least-squares polynomial over (x, y) and resamples it over
// [min x, max x]. Without WithDegree the degree is DefaultDegree(y).
func Fit(x, y []float64, opts ...Option) (*Result, error) {
	o := options{
		degree:      -1,
		sampleCount: DefaultSampleCount,
		logger:      internal.Component("curvefit"),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if len(x) != len(y) {
		return nil, core.NewDimensionMismatchError(len(x), len(y))
	}
	if len(x) < 2 {
		return nil, core.NewInsufficientDataError(2, len(x))
	}
	if o.sampleCount < 1 {
		return nil, fmt.Errorf("%w: sample count %d", core.ErrInvalidArgument, o.sampleCount)
	}

	degree := o.degree
	if degree < 0 {
		degree = DefaultDegree(y)
		o.logger.Warn().Int("degree", degree).Msg("degree not given, using local extrema count + 1")
	}
	if degree > len(x)-1 {
		o.logger.Warn().Int("degree", degree).Int("points", len(x)).
			Msg("degree exceeds point count, capping to n-1")
		degree = len(x) - 1
	}

	curve, err := Polyfit(x, y, degree)
	if err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, err
		}
		o.logger.Warn().Float64("condition", float64(cond)).Msg("polynomial fit is poorly conditioned")
	}

	xs := Linspace(floats.Min(x), floats.Max(x), o.sampleCount)
	return &Result{
		Curve:  curve,
		Degree: degree,
		X:      xs,
		Y:      curve.EvalAll(xs),
	}, nil
}

// Polyfit solves the least-squares Vandermonde system of the given degree
// with a QR decomposition. Columns are normalised before factorizing.
// A mat.Condition error is returned alongside the coefficients when the
// system is ill-conditioned.
func Polyfit(x, y []float64, degree int) (Polynomial, error) {
	if len(x) != len(y) {
		return nil, core.NewDimensionMismatchError(len(x), len(y))
	}
	if degree < 0 {
		return nil, fmt.Errorf("%w: negative degree %d", core.ErrInvalidArgument, degree)
	}
	n, cols := len(x), degree+1
	if n < cols {
		return nil, core.NewInsufficientDataError(cols, n)
	}

	// Build Vandermonde matrix for polynomial regression
	X := mat.NewDense(n, cols, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < cols; j++ {
			X.Set(i, j, math.Pow(x[i], float64(j)))
		}
	}

	norms := make([]float64, cols)
	for j := 0; j < cols; j++ {
		norms[j] = floats.Norm(mat.Col(nil, j, X), 2)
		if norms[j] == 0 {
			norms[j] = 1
		}
		for i := 0; i < n; i++ {
			X.Set(i, j, X.At(i, j)/norms[j])
		}
	}

	var qr mat.QR
	qr.Factorize(X)

	coeffs := mat.NewVecDense(cols, nil)
	solveErr := qr.SolveVecTo(coeffs, false, mat.NewVecDense(n, append([]float64(nil), y...)))
	var cond mat.Condition
	if solveErr != nil && !errors.As(solveErr, &cond) {
		return nil, solveErr
	}

	p := make(Polynomial, cols)
	for j := range p {
		p[j] = coeffs.AtVec(j) / norms[j]
	}
	return p, solveErr
}
