package datasets

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"watex/domain/core"
	"watex/domain/survey"
	"watex/internal/profiling"
	"watex/ports"
)

// Describe summarizes every numeric column of the dataset under tag
func Describe(ctx context.Context, fetcher ports.DataFetcher, tag string) (map[string]profiling.Summary, error) {
	table, err := fetcher.Fetch(ctx, tag)
	if err != nil {
		return nil, fmt.Errorf("fetch %q: %w", tag, err)
	}
	return profiling.NewDataProfiler().ProfileTable(table), nil
}

// LoadSite fetches the ERP line under erpTag and, when vesTag is not empty,
// the sounding under vesTag. Coordinates are the mean of the easting and
// northing columns when the ERP table has them.
func LoadSite(ctx context.Context, fetcher ports.DataFetcher, erpTag, vesTag string) (survey.Site, error) {
	table, err := fetcher.Fetch(ctx, erpTag)
	if err != nil {
		return survey.Site{}, fmt.Errorf("fetch %q: %w", erpTag, err)
	}
	erp, err := table.ERPProfile()
	if err != nil {
		return survey.Site{}, fmt.Errorf("dataset %q: %w", erpTag, err)
	}

	site := survey.Site{
		ID:  core.SiteID(normalizeTag(erpTag)),
		ERP: erp,
	}
	if easting, err := table.Float64Column(survey.EastingColumns...); err == nil {
		site.Easting = stat.Mean(easting, nil)
	}
	if northing, err := table.Float64Column(survey.NorthingColumns...); err == nil {
		site.Northing = stat.Mean(northing, nil)
	}

	if vesTag == "" {
		return site, nil
	}
	vesTable, err := fetcher.Fetch(ctx, vesTag)
	if err != nil {
		return survey.Site{}, fmt.Errorf("fetch %q: %w", vesTag, err)
	}
	ves, err := vesTable.VESProfile()
	if err != nil {
		return survey.Site{}, fmt.Errorf("dataset %q: %w", vesTag, err)
	}
	site.VES = &ves
	return site, nil
}
