package profiling

import (
	"github.com/rs/zerolog"

	"watex/domain/survey"
	"watex/internal"
)

// DataProfiler summarizes the numeric columns of survey tables
type DataProfiler struct {
	logger zerolog.Logger
}

// NewDataProfiler creates a new data profiler
func NewDataProfiler() *DataProfiler {
	return &DataProfiler{logger: internal.Component("profiling")}
}

// ProfileColumn summarizes a single column. A column that cannot be
// summarized yields a summary holding only its count.
func (dp *DataProfiler) ProfileColumn(data []float64, name string) Summary {
	summary, err := Summarize(data)
	if err != nil {
		dp.logger.Debug().Str("column", name).Err(err).Msg("column not summarized")
		return Summary{Count: len(data)}
	}
	return summary
}

// ProfileTable summarizes every column whose cells all parse as numbers
func (dp *DataProfiler) ProfileTable(table *survey.Table) map[string]Summary {
	results := make(map[string]Summary)
	for _, header := range table.Headers {
		data, err := table.Float64Column(header)
		if err != nil {
			continue
		}
		results[header] = dp.ProfileColumn(data, header)
	}
	return results
}
