package curvefit

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"watex/domain/core"
)

func TestFit_DefaultDegreeInterpolates(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{1, 3, 2, 5, 4}

	res, err := Fit(x, y, WithLogger(zerolog.Nop()))
	require.NoError(t, err)

	// one minimum and two maxima -> degree 4, which interpolates 5 points
	assert.Equal(t, 4, res.Degree)
	for i := range x {
		assert.InDelta(t, y[i], res.Curve.Eval(x[i]), 1e-8)
	}
	assert.Len(t, res.X, DefaultSampleCount)
	assert.Len(t, res.Y, DefaultSampleCount)
	assert.InDelta(t, 0.0, res.X[0], 1e-12)
	assert.InDelta(t, 4.0, res.X[len(res.X)-1], 1e-12)
}

func TestFit_LinearMatchesRegression(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{1, 3, 2, 5, 4}

	res, err := Fit(x, y, WithDegree(1), WithLogger(zerolog.Nop()))
	require.NoError(t, err)

	alpha, beta := stat.LinearRegression(x, y, nil, false)
	assert.InDelta(t, alpha+beta*2, res.Curve.Eval(2), 1e-9)
	assert.InDelta(t, 3.0, res.Curve.Eval(2), 1e-9)
}

func TestFit_RecoversQuadratic(t *testing.T) {
	x := []float64{0, 10, 20, 30, 40, 50}
	y := make([]float64, len(x))
	want := Polynomial{1, 2, -0.5}
	for i, v := range x {
		y[i] = want.Eval(v)
	}

	res, err := Fit(x, y, WithDegree(2), WithSampleCount(11), WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	require.Len(t, res.Curve, 3)
	for i := range want {
		assert.InDelta(t, want[i], res.Curve[i], 1e-6)
	}
	assert.Equal(t, []float64{0, 5, 10, 15, 20, 25, 30, 35, 40, 45, 50}, res.X)
}

func TestFit_CapsDegree(t *testing.T) {
	res, err := Fit([]float64{0, 1, 2}, []float64{0, 1, 0}, WithDegree(5), WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Degree)
	assert.InDelta(t, 1.0, res.Curve.Eval(1), 1e-9)
}

func TestFit_Errors(t *testing.T) {
	_, err := Fit([]float64{0, 1}, []float64{1}, WithLogger(zerolog.Nop()))
	assert.ErrorIs(t, err, core.ErrDimensionMismatch)

	_, err = Fit([]float64{0}, []float64{1}, WithLogger(zerolog.Nop()))
	assert.ErrorIs(t, err, core.ErrInsufficientData)

	_, err = Fit([]float64{0, 1}, []float64{1, 2}, WithSampleCount(0), WithLogger(zerolog.Nop()))
	assert.ErrorIs(t, err, core.ErrInvalidArgument)

	_, err = Polyfit([]float64{0, 1}, []float64{1, 2}, 3)
	assert.ErrorIs(t, err, core.ErrInsufficientData)
}

func TestFit_WarnsOnDefaultDegree(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{1, 3, 2, 5, 4}

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.WarnLevel)

	_, err := Fit(x, y, WithDegree(2), WithLogger(logger))
	require.NoError(t, err)
	assert.Zero(t, buf.Len())

	_, err = Fit(x, y, WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "degree not given")
	assert.Contains(t, buf.String(), `"level":"warn"`)
}
