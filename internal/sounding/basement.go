package sounding

import (
	"fmt"
	"math"

	"watex/domain/core"
)

// BasementCurve is the imaginary basement line slope*x + intercept,
// anchored on the sounding curve value at the key depth.
type BasementCurve struct {
	Slope     float64
	Intercept float64
}

// NewBasementCurve anchors the basement at curve(keyDepth). The slope is the
// sine of slopeDegrees, not its tangent.
func NewBasementCurve(curve func(float64) float64, keyDepth, slopeDegrees float64) (BasementCurve, error) {
	if math.IsNaN(keyDepth) || math.IsInf(keyDepth, 0) {
		return BasementCurve{}, fmt.Errorf("%w: key depth %v", core.ErrInvalidArgument, keyDepth)
	}
	return BasementCurve{
		Slope:     math.Sin(slopeDegrees * math.Pi / 180),
		Intercept: curve(keyDepth),
	}, nil
}

// Eval returns the basement resistivity at x
func (b BasementCurve) Eval(x float64) float64 {
	return b.Slope*x + b.Intercept
}
