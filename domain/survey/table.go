package survey

import (
	"fmt"
	"strconv"
	"strings"

	"watex/domain/core"
)

// RawRow represents a single row with column name to raw cell mapping
type RawRow map[string]string

// Table is tabular survey data as supplied by a reader or fetcher
type Table struct {
	Headers []string `json:"headers"`
	Rows    []RawRow `json:"rows"`
}

// Column resolves the first header matching one of the aliases (case-insensitive)
func (t *Table) Column(aliases ...string) (string, bool) {
	for _, alias := range aliases {
		for _, header := range t.Headers {
			if strings.EqualFold(strings.TrimSpace(header), alias) {
				return header, true
			}
		}
	}
	return "", false
}

// Float64Column parses every row of the first matching column
func (t *Table) Float64Column(aliases ...string) ([]float64, error) {
	header, ok := t.Column(aliases...)
	if !ok {
		return nil, fmt.Errorf("%w: none of the columns %v found in %v", core.ErrInvalidArgument, aliases, t.Headers)
	}

	values := make([]float64, 0, len(t.Rows))
	for i, row := range t.Rows {
		raw := strings.TrimSpace(row[header])
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d column %s: %w", i+1, header, core.NewConversionError(raw, nil))
		}
		values = append(values, v)
	}
	return values, nil
}

// Column aliases accepted for survey tables
var (
	PositionColumns    = []string{"station", "pk", "position", "x"}
	SpacingColumns     = []string{"AB", "AB/2", "spacing", "depth"}
	ResistivityColumns = []string{"resistivity", "rho", "rhoa", "res"}
	EastingColumns     = []string{"easting", "x_m", "utm_x"}
	NorthingColumns    = []string{"northing", "y_m", "utm_y"}
)

// ERPProfile extracts a resistivity profile from a station/resistivity table
func (t *Table) ERPProfile() (Profile, error) {
	return t.profile(PositionColumns)
}

// VESProfile extracts a sounding from an AB/resistivity table
func (t *Table) VESProfile() (Profile, error) {
	return t.profile(SpacingColumns)
}

func (t *Table) profile(positionAliases []string) (Profile, error) {
	positions, err := t.Float64Column(positionAliases...)
	if err != nil {
		return Profile{}, err
	}
	resistivities, err := t.Float64Column(ResistivityColumns...)
	if err != nil {
		return Profile{}, err
	}
	return NewProfile(positions, resistivities)
}
