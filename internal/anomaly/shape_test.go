package anomaly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"watex/domain/core"
	"watex/domain/survey"
)

func TestShape_DecisionTable(t *testing.T) {
	tests := []struct {
		name string
		zone []float64
		want survey.Shape
	}{
		{"monotonic", []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, survey.ShapeC},
		{"one sided minimum", []float64{10, 50, 20, 60, 5, 8, 9}, survey.ShapeK},
		{"bowl", []float64{90, 60, 40, 30, 45, 70, 95}, survey.ShapeU},
		{"double trough", []float64{90, 40, 60, 20, 55, 35, 95}, survey.ShapeW},
		{"low ends with peaks", []float64{12, 80, 30, 10, 15, 90, 11}, survey.ShapeM},
		{"unmatched", []float64{10, 50, 30, 40, 5, 40, 20, 60}, survey.ShapeV},
		{"right-side single minimum", []float64{60, 70, 65, 40, 30, 31, 34, 40, 38, 50, 61, 90}, survey.ShapeH},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Shape(tt.zone, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShape_ScaleInvariant(t *testing.T) {
	zone := []float64{90, 40, 60, 20, 55, 35, 95}
	scaled := make([]float64, len(zone))
	for i, v := range zone {
		scaled[i] = v * 10
	}

	a, err := Shape(zone, nil)
	require.NoError(t, err)
	b, err := Shape(scaled, nil)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestShape_Errors(t *testing.T) {
	_, err := Shape(nil, nil)
	assert.ErrorIs(t, err, core.ErrInsufficientData)

	station := 7
	_, err = Shape([]float64{1, 2, 3, 4, 5, 6, 7}, &station)
	assert.ErrorIs(t, err, core.ErrStationOutOfRange)
}

func TestShapeFromMeanLine(t *testing.T) {
	line := []float64{60, 70, 65, 40, 30, 31, 34, 40, 38, 50, 61, 90}
	assert.Equal(t, survey.ShapeU, ShapeFromMeanLine(line))
	assert.Equal(t, survey.ShapeV, ShapeFromMeanLine(nil))
}
