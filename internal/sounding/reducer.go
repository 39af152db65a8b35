package sounding

import (
	"fmt"
	"sort"
	"strings"

	"github.com/montanaflynn/stats"

	"watex/domain/core"
)

// Mode is the aggregation applied to resistivities measured twice at the same AB spacing
type Mode string

const (
	ModeMean        Mode = "mean"
	ModeMedian      Mode = "median"
	ModeLeaveOneOut Mode = "leaveOneOut"
)

// ParseMode resolves a mode name case-insensitively. "none" and the empty
// string are aliases for ModeMean.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return ModeMean, nil
	case "mean":
		return ModeMean, nil
	case "median":
		return ModeMedian, nil
	case "leaveoneout":
		return ModeLeaveOneOut, nil
	}
	return "", fmt.Errorf("%w: %q, expected one of mean, median, leaveOneOut", core.ErrInvalidMode, s)
}

// Reduce collapses duplicated positions into a single resistivity each.
// Output positions are sorted and unique; positions measured once pass unchanged.
func Reduce(positions, resistivities []float64, mode Mode, opts ...Option) ([]float64, []float64, error) {
	o := newOptions(opts)

	if len(positions) != len(resistivities) {
		return nil, nil, core.NewLengthMismatchError("AB spacings and resistivities", len(positions), len(resistivities))
	}
	if m := strings.ToLower(strings.TrimSpace(string(mode))); m == "" || m == "none" {
		o.logger.Warn().Msg("no reduce mode given, using mean")
	}
	mode, err := ParseMode(string(mode))
	if err != nil {
		return nil, nil, err
	}

	groups := make(map[float64][]float64, len(positions))
	for i, p := range positions {
		groups[p] = append(groups[p], resistivities[i])
	}

	unique := make([]float64, 0, len(groups))
	for p := range groups {
		unique = append(unique, p)
	}
	sort.Float64s(unique)

	reduced := make([]float64, len(unique))
	for i, p := range unique {
		values := groups[p]
		if len(values) == 1 {
			reduced[i] = values[0]
			continue
		}
		v, err := aggregate(values, mode, o)
		if err != nil {
			return nil, nil, err
		}
		reduced[i] = v
	}

	if dups := len(positions) - len(unique); dups > 0 {
		o.logger.Debug().Int("duplicates", dups).Str("mode", string(mode)).Msg("reduced duplicated spacings")
	}
	return unique, reduced, nil
}

func aggregate(values []float64, mode Mode, o options) (float64, error) {
	switch mode {
	case ModeMedian:
		return stats.Median(values)
	case ModeLeaveOneOut:
		return values[o.rnd.Intn(len(values))], nil
	default:
		return stats.Mean(values)
	}
}
