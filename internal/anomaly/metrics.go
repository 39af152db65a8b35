package anomaly

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"watex/domain/core"
	"watex/internal"
	"watex/internal/curvefit"
	"watex/internal/profiling"
)

// DegenerateSFI is reported when the index cannot be computed
var DegenerateSFI = -math.Sqrt2

// Power is the width of the conductive zone, |max - min| of its positions
func Power(positions []float64) float64 {
	if len(positions) == 0 {
		return 0
	}
	return math.Abs(floats.Max(positions) - floats.Min(positions))
}

// Magnitude is the resistivity contrast of the conductive zone
func Magnitude(resistivities []float64) float64 {
	if len(resistivities) == 0 {
		return 0
	}
	return math.Abs(floats.Max(resistivities) - floats.Min(resistivities))
}

// SFI computes the standard fracturation index of a conductive zone.
//
// The zone is fitted with a polynomial, split at the station, and the lower
// of the two side maxima is projected onto the opposite side of the fitted
// curve. The projected width and contrast are compared to the zone power and
// magnitude; the index is folded modulo sqrt(2).
//
// Positions default to 0, dl, 2dl... when nil. A nil station uses the lowest
// resistivity point.
func SFI(zone, positions []float64, station *int, dipoleLength float64) (float64, error) {
	logger := internal.Component("anomaly")

	if len(zone) < 2 {
		return 0, core.NewInsufficientDataError(2, len(zone))
	}
	if positions == nil {
		if dipoleLength <= 0 {
			dipoleLength = DefaultDipoleLength
		}
		positions = make([]float64, len(zone))
		for i := range positions {
			positions[i] = float64(i) * dipoleLength
		}
	}
	if len(positions) != len(zone) {
		return 0, core.NewLengthMismatchError("positions and conductive zone", len(positions), len(zone))
	}

	s := floats.MinIdx(zone)
	if station != nil {
		s = *station
	}
	if s < 0 || s >= len(zone) {
		return 0, core.NewStationError(s, len(zone))
	}

	fit, err := curvefit.Fit(positions, zone, curvefit.WithLogger(logger))
	if err != nil {
		return 0, err
	}

	rhoSide, projectRight := splitSides(zone, s)
	pmin, pmax := floats.Min(positions), floats.Max(positions)
	spos := positions[s]

	// the opposite side point of the fitted curve nearest to the station
	level := fit.Curve.Sub([]float64{rhoSide})
	projected := math.NaN()
	for _, r := range level.Roots() {
		if r < pmin || r > pmax {
			continue
		}
		if projectRight && r > spos && (math.IsNaN(projected) || r < projected) {
			projected = r
		}
		if !projectRight && r < spos && (math.IsNaN(projected) || r > projected) {
			projected = r
		}
	}
	if math.IsNaN(projected) {
		projected = pmin
		if projectRight {
			projected = pmax
		}
		logger.Debug().Float64("rho_side", rhoSide).Float64("fallback", projected).
			Msg("side resistivity not reached on the opposite side, using the zone boundary")
	}

	pw, ma := Power(positions), Magnitude(zone)
	pwStar := math.Abs(pmin - projected)
	maStar := math.Abs(floats.Min(zone) - rhoSide)

	sfi := math.Mod(math.Hypot(pwStar/pw, maStar/ma), math.Sqrt2)
	if math.IsInf(sfi, 0) || math.IsNaN(sfi) {
		sfi = math.Mod(math.Hypot(pw/pwStar, ma/maStar), math.Sqrt2)
	}
	if math.IsInf(sfi, 0) || math.IsNaN(sfi) {
		return DegenerateSFI, nil
	}
	return sfi, nil
}

// splitSides returns the lower of the two side maxima and whether it must be
// projected on the right side of the station.
func splitSides(zone []float64, s int) (float64, bool) {
	leftMax := floats.Max(zone[:s+1])
	rightMax := floats.Max(zone[s:])
	if leftMax < rightMax {
		return leftMax, true
	}
	return rightMax, false
}

// CompactSFI computes the index from the anomaly boundaries only: positions
// pkMin and pkMax with resistivities rhoMin and rhoMax, and the station at pk
// with resistivity rho. Degenerate inputs yield DegenerateSFI.
func CompactSFI(pkMin, pkMax, rhoMin, rhoMax, rho, pk float64) float64 {
	var ma, maStar, pa, paStar float64
	if (rho == rhoMin && pk == pkMin) || (rho == rhoMax && pk == pkMax) {
		ma, maStar = math.Max(rhoMin, rhoMax), math.Min(rhoMin, rhoMax)
		pa, paStar = math.Max(pkMin, pkMax), math.Min(pkMin, pkMax)
	} else {
		maxRho, minRho := math.Max(rhoMin, rhoMax), math.Min(rhoMin, rhoMax)
		maStar = math.Abs(minRho - rho)
		ma = math.Abs(maxRho - rho)
		pa = math.Abs(pkMin - pkMax)
		paStar = maStar / ma * pa
	}

	sfi := math.Hypot(paStar/pa, maStar/ma)
	if math.IsNaN(sfi) || math.IsInf(sfi, 0) {
		return DegenerateSFI
	}
	return sfi
}

// ANR is the anomaly resistivity ratio: sfi times the absolute mean of the
// standardized line between lower and upper (inclusive).
func ANR(sfi float64, profile []float64, lower, upper int) (float64, error) {
	if lower > upper {
		lower, upper = upper, lower
	}
	if lower < 0 || upper >= len(profile) {
		return 0, core.NewStationError(upper, len(profile))
	}
	z := profiling.Standardize(profile)
	window := z[lower : upper+1]
	return sfi * math.Abs(floats.Sum(window)/float64(len(window))), nil
}
