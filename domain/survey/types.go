package survey

import (
	"sort"

	"watex/domain/core"
)

// Profile is an ordered line of (position, resistivity) measurements.
// For an ERP line the positions are station distances; for a VES sounding
// they are AB/2 spacings.
type Profile struct {
	Positions     []float64 `json:"positions"`
	Resistivities []float64 `json:"resistivities"`
}

// NewProfile builds a profile and validates it
func NewProfile(positions, resistivities []float64) (Profile, error) {
	p := Profile{Positions: positions, Resistivities: resistivities}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// NewProfileFromSpacing builds a profile with stations every dipoleLength meters starting at 0
func NewProfileFromSpacing(resistivities []float64, dipoleLength float64) Profile {
	positions := make([]float64, len(resistivities))
	for i := range positions {
		positions[i] = float64(i) * dipoleLength
	}
	return Profile{Positions: positions, Resistivities: resistivities}
}

// Len returns the number of measurements
func (p Profile) Len() int {
	return len(p.Resistivities)
}

// Validate checks the parallel arrays are consistent
func (p Profile) Validate() error {
	if len(p.Positions) != len(p.Resistivities) {
		return core.NewLengthMismatchError("positions and resistivities", len(p.Positions), len(p.Resistivities))
	}
	if len(p.Positions) == 0 {
		return core.NewInsufficientDataError(1, 0)
	}
	return nil
}

// Sorted returns a copy of the profile ordered by position. The sort is stable
// so repeated positions keep their acquisition order.
func (p Profile) Sorted() Profile {
	idx := make([]int, len(p.Positions))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return p.Positions[idx[a]] < p.Positions[idx[b]]
	})

	out := Profile{
		Positions:     make([]float64, len(idx)),
		Resistivities: make([]float64, len(idx)),
	}
	for i, j := range idx {
		out.Positions[i] = p.Positions[j]
		out.Resistivities[i] = p.Resistivities[j]
	}
	return out
}

// Slice returns the sub-profile [lower, upper] (both inclusive)
func (p Profile) Slice(lower, upper int) Profile {
	return Profile{
		Positions:     p.Positions[lower : upper+1],
		Resistivities: p.Resistivities[lower : upper+1],
	}
}

// ConductiveZone is the part of an ERP line framed around the presumed
// drilling station.
type ConductiveZone struct {
	Profile
	// StationIndex is the drilling station index inside the zone.
	StationIndex int `json:"station_index"`
	// Lower and Upper are the zone bounds as indexes in the parent profile.
	Lower int `json:"lower"`
	Upper int `json:"upper"`
}

// Shape describes the pace of the resistivity curve around the station.
type Shape string

const (
	ShapeV Shape = "V"
	ShapeU Shape = "U"
	ShapeW Shape = "W"
	ShapeM Shape = "M"
	ShapeK Shape = "K"
	ShapeC Shape = "C"
	ShapeH Shape = "H"
)

// Type describes the lateral resistivity distribution along the whole line.
type Type string

const (
	// TypeEC is an extensive conductive anomaly
	TypeEC Type = "EC"
	// TypeNC is a narrow conductive anomaly
	TypeNC Type = "NC"
	// TypeCB2P is a contact between two planes
	TypeCB2P Type = "CB2P"
	// TypePC is a conductive plane
	TypePC Type = "PC"
)

// Site gathers everything measured for one borehole candidate.
type Site struct {
	ID       core.SiteID `json:"id"`
	Easting  float64     `json:"easting"`
	Northing float64     `json:"northing"`
	ERP      Profile     `json:"erp"`
	// VES is optional; without it the ohmic area is reported as zero.
	VES *Profile `json:"ves,omitempty"`
	// Station is the drilling station number (1-based) on the ERP line.
	// Zero means the lowest resistivity station is used.
	Station int `json:"station"`
	// Flow is the measured borehole flow rate in m3/h, when known.
	Flow *float64 `json:"flow,omitempty"`
}

// Features is one row of the geo-electrical feature table used for
// flow-rate classification.
type Features struct {
	ID        core.SiteID `json:"id"`
	Easting   float64     `json:"easting"`
	Northing  float64     `json:"northing"`
	Power     float64     `json:"power"`
	Magnitude float64     `json:"magnitude"`
	Shape     Shape       `json:"shape"`
	Type      Type        `json:"type"`
	SFI       float64     `json:"sfi"`
	OhmS      float64     `json:"ohms"`
	ANR       float64     `json:"anr"`
	Flow      *float64    `json:"flow,omitempty"`
	FlowClass string      `json:"flow_class,omitempty"`
}
