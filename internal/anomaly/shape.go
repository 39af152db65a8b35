package anomaly

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"

	"watex/domain/core"
	"watex/domain/survey"
	"watex/internal/curvefit"
)

// Shape classifies the pace of the resistivity curve around the station.
// A nil station uses the lowest resistivity point. The zone is split at the
// station (both halves keep it) and each half is compared to the zone median,
// so the result does not depend on the resistivity scale.
func Shape(zone []float64, station *int) (survey.Shape, error) {
	if len(zone) == 0 {
		return "", core.NewInsufficientDataError(1, 0)
	}
	s := floats.MinIdx(zone)
	if station != nil {
		s = *station
	}
	if s < 0 || s >= len(zone) {
		return "", core.NewStationError(s, len(zone))
	}

	left, right := zone[:s+1], zone[s:]
	ls, rs := left[0], right[len(right)-1]
	minL, minR := len(curvefit.LocalMinima(left)), len(curvefit.LocalMinima(right))
	maxL, maxR := len(curvefit.LocalMaxima(left)), len(curvefit.LocalMaxima(right))

	med, err := stats.Median(zone)
	if err != nil {
		return "", err
	}

	switch {
	case (ls >= med) != (rs >= med):
		switch {
		case minL == 0 && minR == 0:
			return survey.ShapeC, nil
		case (minL == 0) != (minR == 0):
			return survey.ShapeK, nil
		}
	case ls > med && rs > med:
		switch {
		case minL == 0 && minR == 0:
			return survey.ShapeU, nil
		case (minL == 0 && minR == 1) || (minL == 1 && minR == 0):
			return survey.ShapeH, nil
		case minL >= 1 && minR >= 1:
			return survey.ShapeW, nil
		}
	case ls < med && rs < med:
		if maxL >= 1 || maxR >= 1 {
			return survey.ShapeM, nil
		}
	}
	return survey.ShapeV, nil
}

// ShapeFromMeanLine is the older classifier that compares the curve to its
// mean line and to the mean between its outer local minima. It can disagree
// with Shape on the same zone.
func ShapeFromMeanLine(rho []float64) survey.Shape {
	if len(rho) == 0 {
		return survey.ShapeV
	}
	minima := curvefit.LocalMinima(rho)
	average, _ := stats.Mean(rho)
	first, last := rho[0], rho[len(rho)-1]

	switch {
	case len(minima) > 1:
		slice := rho[minima[0] : minima[len(minima)-1]+1]
		sliceAverage, _ := stats.Mean(slice)
		if average >= 1.2*sliceAverage {
			peaks := curvefit.LocalMaxima(slice)
			if last < average && len(peaks) > 0 && last > slice[peaks[0]] {
				return survey.ShapeK
			}
			return survey.ShapeU
		}
		if first < average && last < average {
			return survey.ShapeM
		}
		return survey.ShapeW
	case len(minima) == 1:
		if first < average && last < average {
			return survey.ShapeM
		}
		if last <= average {
			return survey.ShapeC
		}
	}
	return survey.ShapeV
}
