package sounding

import (
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"watex/domain/core"
)

type lastPick struct{}

func (lastPick) Intn(n int) int { return n - 1 }

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"mean", ModeMean},
		{"MEDIAN", ModeMedian},
		{"LeaveOneOut", ModeLeaveOneOut},
		{"none", ModeMean},
		{"", ModeMean},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseMode("mode")
	assert.ErrorIs(t, err, core.ErrInvalidMode)
}

func TestReduce_Modes(t *testing.T) {
	ab := []float64{0, 10, 10, 20}
	rho := []float64{100, 90, 110, 80}

	tests := []struct {
		mode Mode
		want []float64
	}{
		{ModeMean, []float64{100, 100, 80}},
		{ModeMedian, []float64{100, 100, 80}},
		{ModeLeaveOneOut, []float64{100, 110, 80}},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			x, y, err := Reduce(ab, rho, tt.mode, WithRandSource(lastPick{}), WithLogger(zerolog.Nop()))
			require.NoError(t, err)
			assert.Equal(t, []float64{0, 10, 20}, x)
			assert.Equal(t, tt.want, y)
		})
	}
}

func TestReduce_UnsortedInput(t *testing.T) {
	x, y, err := Reduce([]float64{30, 10, 20, 10}, []float64{5, 1, 3, 2}, ModeMean, WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30}, x)
	assert.Equal(t, []float64{1.5, 3, 5}, y)
}

func TestReduce_Idempotent(t *testing.T) {
	ab := []float64{1, 2, 2, 2, 3, 5, 5, 8}
	rho := []float64{40, 35, 37, 30, 28, 20, 26, 60}

	for _, mode := range []Mode{ModeMean, ModeMedian, ModeLeaveOneOut} {
		x1, y1, err := Reduce(ab, rho, mode, WithRandSource(rand.New(rand.NewSource(7))), WithLogger(zerolog.Nop()))
		require.NoError(t, err)
		x2, y2, err := Reduce(x1, y1, mode, WithRandSource(rand.New(rand.NewSource(7))), WithLogger(zerolog.Nop()))
		require.NoError(t, err)
		assert.Equal(t, x1, x2, mode)
		assert.Equal(t, y1, y2, mode)
	}
}

func TestReduce_SeededLeaveOneOutIsDeterministic(t *testing.T) {
	ab := []float64{1, 1, 1, 2, 2}
	rho := []float64{10, 20, 30, 40, 50}

	_, y1, err := Reduce(ab, rho, ModeLeaveOneOut, WithRandSource(rand.New(rand.NewSource(42))), WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	_, y2, err := Reduce(ab, rho, ModeLeaveOneOut, WithRandSource(rand.New(rand.NewSource(42))), WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	assert.Equal(t, y1, y2)
	assert.Contains(t, []float64{10, 20, 30}, y1[0])
	assert.Contains(t, []float64{40, 50}, y1[1])
}

func TestReduce_Errors(t *testing.T) {
	_, _, err := Reduce([]float64{0, 1}, []float64{1}, ModeMean, WithLogger(zerolog.Nop()))
	assert.ErrorIs(t, err, core.ErrLengthMismatch)

	_, _, err = Reduce([]float64{0, 1}, []float64{1, 2}, Mode("max"), WithLogger(zerolog.Nop()))
	assert.ErrorIs(t, err, core.ErrInvalidMode)
}
