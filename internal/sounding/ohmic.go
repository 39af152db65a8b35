package sounding

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"watex/domain/core"
	"watex/domain/survey"
	"watex/internal/curvefit"
)

// OhmicArea is the pseudo-area between the basement line and the sounding
// curve below it, per root interval.
type OhmicArea struct {
	// Areas holds one non-negative value per interval, or only the total when summed.
	Areas []float64
	// Errors holds the unclamped quadrature error estimate per interval.
	Errors []float64
	// Roots are the interval limits in depth units, flattened in pairs.
	Roots  []float64
	Total  float64
	Summed bool

	KeyDepth float64
	// Reduced is the sounding after duplicate spacing reduction.
	Reduced survey.Profile
	// Fitted is the global fit over the reduced sounding.
	Fitted *curvefit.Result
	// Basement holds the basement values at the searched depths.
	Basement survey.Profile
}

// ParseKeyDepth converts a key depth such as "45", "45m" or "none".
// "none" resolves to half the maximum depth.
func ParseKeyDepth(raw string, positions []float64) (float64, error) {
	s := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "m", "")
	if strings.Contains(s, "none") {
		if len(positions) == 0 {
			return 0, core.NewInsufficientDataError(1, 0)
		}
		return floats.Max(positions) / 2, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, core.NewConversionError(raw, err)
	}
	return v, nil
}

// ComputeOhmicArea integrates the gap between the basement line anchored at
// keyDepth and the sounding curve wherever the basement lies above it.
// No intersection is a valid outcome and yields empty areas.
func ComputeOhmicArea(positions, resistivities []float64, keyDepth float64, opts ...Option) (*OhmicArea, error) {
	o := newOptions(opts)

	if len(positions) != len(resistivities) {
		return nil, core.NewLengthMismatchError("AB spacings and resistivities", len(positions), len(resistivities))
	}
	if len(positions) < 2 {
		return nil, core.NewInsufficientDataError(2, len(positions))
	}
	if o.sampleCount < 2 {
		return nil, fmt.Errorf("%w: sample count %d", core.ErrInvalidArgument, o.sampleCount)
	}
	if maxDepth := floats.Max(positions); math.IsNaN(keyDepth) || math.IsInf(keyDepth, 0) || keyDepth >= maxDepth {
		return nil, core.NewKeyDepthError(keyDepth, maxDepth)
	}

	X, Y, err := Reduce(positions, resistivities, o.mode, opts...)
	if err != nil {
		return nil, err
	}
	fitOpts := []curvefit.Option{curvefit.WithSampleCount(o.sampleCount), curvefit.WithLogger(o.logger)}
	global, err := curvefit.Fit(X, Y, fitOpts...)
	if err != nil {
		return nil, err
	}

	// search starts at the spacing nearest the key depth
	gaps := make([]float64, len(X))
	for i, x := range X {
		gaps[i] = math.Abs(x - keyDepth)
	}
	oIx := floats.MinIdx(gaps)
	oB, oY := X[oIx:], Y[oIx:]

	basement, err := NewBasementCurve(global.Curve.Eval, keyDepth, o.slopeDegrees)
	if err != nil {
		return nil, err
	}

	result := &OhmicArea{
		Areas:    []float64{},
		Errors:   []float64{},
		Roots:    []float64{},
		KeyDepth: keyDepth,
		Reduced:  survey.Profile{Positions: X, Resistivities: Y},
		Fitted:   global,
		Basement: basementProfile(basement, oB),
		Summed:   o.sum,
	}
	if len(oB) < 2 {
		o.logger.Warn().Float64("key_depth", keyDepth).Msg("key depth leaves fewer than two spacings to search, ohmic area is zero")
		return result.finish(), nil
	}

	xx := curvefit.Linspace(oB[0], oB[len(oB)-1], o.sampleCount)
	var above []int
	for i, x := range xx {
		if basement.Eval(x)-global.Curve.Eval(x) > 0 {
			above = append(above, i)
		}
	}
	bounds := FindBounds(above)
	if len(bounds) == 0 {
		o.logger.Debug().Float64("key_depth", keyDepth).Msg("basement never above the sounding curve")
		return result.finish(), nil
	}

	local, err := curvefit.Fit(oB, oY, fitOpts...)
	if err != nil {
		return nil, err
	}
	integrand := func(x float64) float64 {
		return basement.Eval(x) - local.Curve.Eval(x)
	}

	for _, b := range bounds {
		lo, hi := xx[b.Lower], xx[b.Upper]
		result.Roots = append(result.Roots, lo, hi)

		area, errEst := Integrate(integrand, lo, hi, o.tolerance)
		if !(area > 0) {
			area = 0
		}
		result.Areas = append(result.Areas, area)
		result.Errors = append(result.Errors, errEst)
	}
	return result.finish(), nil
}

func (r *OhmicArea) finish() *OhmicArea {
	r.Total = floats.Sum(r.Areas)
	if r.Summed {
		r.Areas = []float64{r.Total}
	}
	return r
}

func basementProfile(b BasementCurve, depths []float64) survey.Profile {
	values := make([]float64, len(depths))
	for i, d := range depths {
		values[i] = b.Eval(d)
	}
	return survey.Profile{Positions: depths, Resistivities: values}
}
