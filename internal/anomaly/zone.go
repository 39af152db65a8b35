package anomaly

import (
	"fmt"

	"watex/domain/core"
	"watex/domain/survey"
)

// DefaultZoneExtent is the number of stations in a conductive zone
const DefaultZoneExtent = 7

// SelectZone frames extent stations of the line around the 1-based station
// number. The window is shifted to stay inside the line; station 0 is read
// as the first station.
func SelectZone(erp survey.Profile, station, extent int) (survey.ConductiveZone, error) {
	if err := erp.Validate(); err != nil {
		return survey.ConductiveZone{}, err
	}
	n := erp.Len()
	if extent < 1 {
		return survey.ConductiveZone{}, fmt.Errorf("%w: zone extent %d", core.ErrInvalidArgument, extent)
	}
	if station < 0 || station > n {
		return survey.ConductiveZone{}, core.NewStationError(station, n)
	}
	if station == 0 {
		station = 1
	}
	if extent > n {
		extent = n
	}

	idx := station - 1
	lower := idx - (extent-1)/2
	upper := lower + extent - 1
	if lower < 0 {
		lower, upper = 0, extent-1
	}
	if upper > n-1 {
		lower, upper = n-extent, n-1
	}

	return survey.ConductiveZone{
		Profile:      erp.Slice(lower, upper),
		StationIndex: idx - lower,
		Lower:        lower,
		Upper:        upper,
	}, nil
}
