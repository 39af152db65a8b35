package sounding

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

const (
	quadOrder       = 10
	maxQuadDepth    = 30
	maxQuadSegments = 2000
)

// Integrate approximates the integral of f over [a, b] with adaptive
// Gauss-Legendre quadrature. An interval is accepted once the n and 2n point
// rules agree within its share of tol; the returned error sums those gaps.
func Integrate(f func(float64) float64, a, b, tol float64) (float64, float64) {
	if a == b {
		return 0, 0
	}
	if a > b {
		v, e := Integrate(f, b, a, tol)
		return -v, e
	}

	type segment struct {
		lo, hi float64
		depth  int
	}
	var value, errEst float64
	stack := []segment{{a, b, 0}}
	width := b - a
	for visited := 0; len(stack) > 0; visited++ {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		coarse := quad.Fixed(f, s.lo, s.hi, quadOrder, quad.Legendre{}, 0)
		fine := quad.Fixed(f, s.lo, s.hi, 2*quadOrder, quad.Legendre{}, 0)
		gap := math.Abs(fine - coarse)
		share := tol * (s.hi - s.lo) / width

		if gap <= share || gap <= 1e-12*math.Abs(fine) || s.depth >= maxQuadDepth || visited >= maxQuadSegments {
			value += fine
			errEst += gap
			continue
		}
		mid := s.lo + (s.hi-s.lo)/2
		stack = append(stack, segment{s.lo, mid, s.depth + 1}, segment{mid, s.hi, s.depth + 1})
	}
	return value, errEst
}
