package testkit

import (
	"fmt"
	"math"
	"math/rand"

	"watex/domain/core"
	"watex/domain/survey"
)

// SurveyGeneratorConfig configures the synthetic survey generator
type SurveyGeneratorConfig struct {
	SiteCount    int       `json:"site_count"`
	Stations     int       `json:"stations"`
	DipoleLength float64   `json:"dipole_length"`
	Spacings     []float64 `json:"spacings"`
	// BackgroundRho is the host rock resistivity in ohm.m
	BackgroundRho float64 `json:"background_rho"`
	// AnomalyContrast is the relative resistivity drop at the fracture (0..1)
	AnomalyContrast float64 `json:"anomaly_contrast"`
	// AnomalyWidth is the fracture half-width in stations
	AnomalyWidth float64 `json:"anomaly_width"`
	NoiseLevel   float64 `json:"noise_level"`
	// DuplicateSpacings repeats a few AB/2 readings like overlapping MN setups do
	DuplicateSpacings bool  `json:"duplicate_spacings"`
	Seed              int64 `json:"seed"`
}

// DefaultSurveyConfig returns a small crystalline-basement survey
func DefaultSurveyConfig() SurveyGeneratorConfig {
	return SurveyGeneratorConfig{
		SiteCount:         8,
		Stations:          21,
		DipoleLength:      10,
		Spacings:          []float64{1, 2, 3, 4, 6, 8, 10, 15, 20, 25, 30, 40, 50, 60, 70, 80, 100},
		BackgroundRho:     400,
		AnomalyContrast:   0.75,
		AnomalyWidth:      2,
		NoiseLevel:        0.03,
		DuplicateSpacings: true,
		Seed:              42,
	}
}

// SurveyGenerator generates ERP lines and VES soundings with a conductive
// fracture zone.
type SurveyGenerator struct {
	config SurveyGeneratorConfig
	rng    *rand.Rand
}

// NewSurveyGenerator creates a new survey generator
func NewSurveyGenerator(config SurveyGeneratorConfig) *SurveyGenerator {
	return &SurveyGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// GenerateERP returns a line whose resistivity drops around the 0-based
// station index.
func (g *SurveyGenerator) GenerateERP(station int) survey.Profile {
	res := make([]float64, g.config.Stations)
	for i := range res {
		d := (float64(i) - float64(station)) / g.config.AnomalyWidth
		trough := 1 - g.config.AnomalyContrast*math.Exp(-d*d)
		res[i] = g.noisy(g.config.BackgroundRho * trough)
	}
	return survey.NewProfileFromSpacing(res, g.config.DipoleLength)
}

// GenerateVES returns a sounding over a weathered layer: resistive cover,
// conductive saprolite, then the rising basement.
func (g *SurveyGenerator) GenerateVES() survey.Profile {
	var positions, res []float64
	for i, ab := range g.config.Spacings {
		rho := g.vesModel(ab)
		positions = append(positions, ab)
		res = append(res, g.noisy(rho))
		if g.config.DuplicateSpacings && i%5 == 4 {
			positions = append(positions, ab)
			res = append(res, g.noisy(rho))
		}
	}
	return survey.Profile{Positions: positions, Resistivities: res}
}

func (g *SurveyGenerator) vesModel(ab float64) float64 {
	bg := g.config.BackgroundRho
	l := math.Log(ab / 20)
	saprolite := 1 - 0.6*math.Exp(-l*l/0.8)
	basement := 1 + ab/100
	return 0.5 * bg * saprolite * basement
}

// GenerateSites returns SiteCount sites with a VES and a measured flow
func (g *SurveyGenerator) GenerateSites() []survey.Site {
	sites := make([]survey.Site, 0, g.config.SiteCount)
	for i := 0; i < g.config.SiteCount; i++ {
		station := 3 + g.rng.Intn(max(g.config.Stations-6, 1))
		ves := g.GenerateVES()
		flow := g.randomFlow()
		sites = append(sites, survey.Site{
			ID:       core.SiteID(fmt.Sprintf("site_%04d", i+1)),
			Easting:  790000 + g.rng.Float64()*5000,
			Northing: 1090000 + g.rng.Float64()*5000,
			ERP:      g.GenerateERP(station),
			VES:      &ves,
			Station:  station + 1,
			Flow:     &flow,
		})
	}
	return sites
}

// randomFlow returns a dry borehole one time in ten, otherwise an
// exponentially distributed rate in m3/h.
func (g *SurveyGenerator) randomFlow() float64 {
	if g.rng.Float64() < 0.1 {
		return 0
	}
	return math.Round(g.rng.ExpFloat64()*2*100) / 100
}

func (g *SurveyGenerator) noisy(v float64) float64 {
	v *= 1 + g.config.NoiseLevel*g.rng.NormFloat64()
	return math.Max(v, 1)
}
