package curvefit

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Polynomial holds coefficients in ascending order: c[0] + c[1]x + c[2]x^2 ...
type Polynomial []float64

// Degree returns the polynomial degree ignoring zero leading coefficients
func (p Polynomial) Degree() int {
	for d := len(p) - 1; d > 0; d-- {
		if p[d] != 0 {
			return d
		}
	}
	return 0
}

// Eval evaluates the polynomial at x with Horner's scheme
func (p Polynomial) Eval(x float64) float64 {
	y := 0.0
	for i := len(p) - 1; i >= 0; i-- {
		y = y*x + p[i]
	}
	return y
}

// EvalAll evaluates the polynomial at every x
func (p Polynomial) EvalAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = p.Eval(x)
	}
	return out
}

// Sub returns p - q
func (p Polynomial) Sub(q Polynomial) Polynomial {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	out := make(Polynomial, n)
	copy(out, p)
	for i, c := range q {
		out[i] -= c
	}
	return out
}

// Roots returns the real roots of the polynomial in ascending order.
// They are the real eigenvalues of the companion matrix.
func (p Polynomial) Roots() []float64 {
	// drop negligible leading terms so the companion matrix stays finite
	scale := 0.0
	for _, c := range p {
		scale = math.Max(scale, math.Abs(c))
	}
	if scale == 0 {
		return nil
	}
	d := len(p) - 1
	for d > 0 && math.Abs(p[d]) <= 1e-14*scale {
		d--
	}
	if d == 0 {
		return nil
	}

	lead := p[d]
	companion := mat.NewDense(d, d, nil)
	for i := 1; i < d; i++ {
		companion.Set(i, i-1, 1)
	}
	for i := 0; i < d; i++ {
		companion.Set(i, d-1, -p[i]/lead)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(companion, mat.EigenNone); !ok {
		return nil
	}

	var roots []float64
	for _, v := range eig.Values(nil) {
		re, im := real(v), imag(v)
		if math.Abs(im) <= 1e-8*math.Max(1, math.Abs(re)) {
			roots = append(roots, re)
		}
	}
	sort.Float64s(roots)
	return roots
}
