package curvefit

import "gonum.org/v1/gonum/floats"

// LocalMinima returns the indexes strictly lower than both neighbours.
// Endpoints are never extrema.
func LocalMinima(y []float64) []int {
	var idx []int
	for i := 1; i < len(y)-1; i++ {
		if y[i] < y[i-1] && y[i] < y[i+1] {
			idx = append(idx, i)
		}
	}
	return idx
}

// LocalMaxima returns the indexes strictly greater than both neighbours
func LocalMaxima(y []float64) []int {
	var idx []int
	for i := 1; i < len(y)-1; i++ {
		if y[i] > y[i-1] && y[i] > y[i+1] {
			idx = append(idx, i)
		}
	}
	return idx
}

// DefaultDegree is the number of local extrema plus one
func DefaultDegree(y []float64) int {
	return len(LocalMinima(y)) + len(LocalMaxima(y)) + 1
}

// Linspace returns n evenly spaced values over [start, stop]
func Linspace(start, stop float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{start}
	}
	xs := floats.Span(make([]float64, n), start, stop)
	xs[n-1] = stop
	return xs
}

// Argmin returns the index of the first minimum value
func Argmin(y []float64) int {
	return floats.MinIdx(y)
}

// Argmax returns the index of the first maximum value
func Argmax(y []float64) int {
	return floats.MaxIdx(y)
}
