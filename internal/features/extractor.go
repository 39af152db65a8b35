package features

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"watex/domain/core"
	"watex/domain/survey"
	"watex/internal"
	"watex/internal/anomaly"
	"watex/internal/config"
	"watex/internal/profiling"
	"watex/internal/sounding"
	"watex/ports"
)

// Extractor computes the geo-electrical feature row of a site
type Extractor struct {
	cfg     *config.Config
	plotter ports.Plotter
	logger  zerolog.Logger
}

// ExtractorOption configures an Extractor
type ExtractorOption func(*Extractor)

// WithPlotter renders every reduced sounding with its fitted curve
func WithPlotter(p ports.Plotter) ExtractorOption {
	return func(e *Extractor) { e.plotter = p }
}

// WithExtractorLogger overrides the component logger
func WithExtractorLogger(logger zerolog.Logger) ExtractorOption {
	return func(e *Extractor) { e.logger = logger }
}

// NewExtractor creates an extractor driven by cfg
func NewExtractor(cfg *config.Config, opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		cfg:    cfg,
		logger: internal.Component("features"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract selects the conductive zone around the site station and computes
// its features. A site without a sounding gets a zero ohmic area.
func (e *Extractor) Extract(ctx context.Context, site survey.Site) (survey.Features, error) {
	if err := ctx.Err(); err != nil {
		return survey.Features{}, err
	}

	id := site.ID
	if id.IsEmpty() {
		id = core.NewSiteID()
	}
	logger := e.logger.With().Str("site_id", id.String()).Logger()

	if err := site.ERP.Validate(); err != nil {
		return survey.Features{}, err
	}
	erp := site.ERP.Sorted()
	dl := e.cfg.Anomaly.DipoleLength
	if line, err := profiling.Summarize(erp.Resistivities); err == nil && line.Outliers > 0 {
		logger.Warn().Int("outliers", line.Outliers).Float64("median", line.Median).
			Msg("resistivity outliers on the ERP line")
	}

	station := site.Station
	if station == 0 {
		station = floats.MinIdx(erp.Resistivities) + 1
		logger.Debug().Int("station", station).Msg("no drilling station given, using the lowest resistivity")
	}
	zone, err := anomaly.SelectZone(erp, station, e.cfg.Anomaly.ZoneExtent)
	if err != nil {
		return survey.Features{}, err
	}

	shape, err := anomaly.Shape(zone.Resistivities, &zone.StationIndex)
	if err != nil {
		return survey.Features{}, err
	}
	sfi, err := anomaly.SFI(zone.Resistivities, zone.Positions, &zone.StationIndex, dl)
	if err != nil {
		return survey.Features{}, err
	}
	anr, err := anomaly.ANR(sfi, erp.Resistivities, zone.Lower, zone.Upper)
	if err != nil {
		return survey.Features{}, err
	}

	f := survey.Features{
		ID:        id,
		Easting:   site.Easting,
		Northing:  site.Northing,
		Power:     anomaly.Power(zone.Positions),
		Magnitude: anomaly.Magnitude(zone.Resistivities),
		Shape:     shape,
		Type:      anomaly.Type(erp.Resistivities, anomaly.WithDipoleLength(dl)),
		SFI:       sfi,
		ANR:       anr,
		Flow:      site.Flow,
	}

	if site.VES != nil {
		if f.OhmS, err = e.ohmicArea(*site.VES); err != nil {
			return survey.Features{}, fmt.Errorf("ohmic area: %w", err)
		}
	} else {
		logger.Debug().Msg("no sounding, ohmic area set to zero")
	}

	if site.Flow != nil {
		if f.FlowClass, err = CategorizeFlow(*site.Flow, e.cfg.Features.FlowBounds, nil); err != nil {
			return survey.Features{}, err
		}
	}

	logger.Debug().Str("shape", string(f.Shape)).Str("type", string(f.Type)).
		Float64("sfi", f.SFI).Float64("ohms", f.OhmS).Msg("features extracted")
	return f, nil
}

func (e *Extractor) ohmicArea(ves survey.Profile) (float64, error) {
	if err := ves.Validate(); err != nil {
		return 0, err
	}
	keyDepth, err := sounding.ParseKeyDepth(e.cfg.Sounding.KeyDepth, ves.Positions)
	if err != nil {
		return 0, err
	}
	mode, err := sounding.ParseMode(e.cfg.Sounding.ReduceMode)
	if err != nil {
		return 0, err
	}

	opts := []sounding.Option{
		sounding.WithSum(true),
		sounding.WithReduceMode(mode),
		sounding.WithSlope(e.cfg.Sounding.SlopeDegrees),
		sounding.WithSampleCount(e.cfg.Sounding.SampleCount),
		sounding.WithLogger(e.logger),
	}
	if e.cfg.Sounding.Seed != 0 {
		opts = append(opts, sounding.WithRandSource(rand.New(rand.NewSource(e.cfg.Sounding.Seed))))
	}

	area, err := sounding.ComputeOhmicArea(ves.Positions, ves.Resistivities, keyDepth, opts...)
	if err != nil {
		return 0, err
	}

	if e.plotter != nil {
		fitted := area.Fitted.Curve.EvalAll(area.Reduced.Positions)
		if err := e.plotter.Plot(area.Reduced.Positions, area.Reduced.Resistivities, fitted, false); err != nil {
			e.logger.Warn().Err(err).Msg("failed to plot the sounding")
		}
	}
	return area.Total, nil
}

// ExtractAll extracts every site with at most Features.Workers running at
// once. Rows keep the order of sites; the first failure cancels the rest.
func (e *Extractor) ExtractAll(ctx context.Context, sites []survey.Site) ([]survey.Features, error) {
	rows := make([]survey.Features, len(sites))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(e.cfg.Features.Workers, 1))
	for i, site := range sites {
		g.Go(func() error {
			row, err := e.Extract(ctx, site)
			if err != nil {
				return fmt.Errorf("site %d (%s): %w", i, site.ID, err)
			}
			rows[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	e.logger.Info().Int("sites", len(sites)).Msg("feature table built")
	return rows, nil
}
