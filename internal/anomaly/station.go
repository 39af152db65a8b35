package anomaly

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"watex/domain/core"
)

// ParseStation strips the s, pk and ta prefixes from a station name such as
// "S30", "pk40" or "sta2" and returns the number.
func ParseStation(name string) (int, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, "s", "")
	s = strings.ReplaceAll(s, "pk", "")
	s = strings.ReplaceAll(s, "ta", "")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, core.NewConversionError(name, err)
	}
	return n, nil
}

// DetectStation resolves a station name against the line positions. A
// number larger than the station count is read as a distance and must fall
// on a station; otherwise it is an index.
func DetectStation(name string, positions []float64) (int, float64, error) {
	s, err := ParseStation(name)
	if err != nil {
		return 0, 0, err
	}
	return DetectStationIndex(s, positions)
}

// DetectStationIndex is DetectStation for an already numeric station
func DetectStationIndex(s int, positions []float64) (int, float64, error) {
	n := len(positions)
	if n == 0 {
		return 0, 0, core.NewInsufficientDataError(1, 0)
	}
	if s < 0 {
		return 0, 0, core.NewStationError(s, n)
	}

	if s > n {
		if n < 2 {
			return 0, 0, core.NewStationError(s, n)
		}
		dl := (floats.Max(positions) - floats.Min(positions)) / float64(n-1)
		if dl <= 0 || math.Mod(float64(s), dl) != 0 {
			return 0, 0, fmt.Errorf("%w: unable to detect the station position %d with spacing %g",
				core.ErrStationOutOfRange, s, dl)
		}
		if float64(s) > floats.Max(positions) {
			return 0, 0, fmt.Errorf("%w: station %d is out of the range, max position = %g",
				core.ErrStationOutOfRange, s, floats.Max(positions))
		}
		index := int(float64(s) / dl)
		return index, float64(index) * dl, nil
	}

	if s >= n {
		return 0, 0, core.NewStationError(s, n)
	}
	return s, positions[s], nil
}

// StationNumber converts a distance from the first station into a 1-based
// station number.
func StationNumber(distance, dipoleLength float64) (int, error) {
	if dipoleLength <= 0 {
		return 0, fmt.Errorf("%w: dipole length %g", core.ErrInvalidArgument, dipoleLength)
	}
	return int(math.Round(distance/dipoleLength)) + 1, nil
}
