package sounding

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"watex/internal"
	"watex/internal/curvefit"
	"watex/ports"
)

// DefaultSlopeDegrees is the angle of the imaginary basement curve
const DefaultSlopeDegrees = 45.0

// DefaultTolerance is the absolute error target of the area quadrature
const DefaultTolerance = 1.49e-8

type options struct {
	sum          bool
	mode         Mode
	rnd          ports.RandSource
	slopeDegrees float64
	sampleCount  int
	tolerance    float64
	logger       zerolog.Logger
}

// Option configures Reduce and ComputeOhmicArea
type Option func(*options)

func defaultOptions() options {
	return options{
		mode:         ModeMean,
		slopeDegrees: DefaultSlopeDegrees,
		sampleCount:  curvefit.DefaultSampleCount,
		tolerance:    DefaultTolerance,
		logger:       internal.Component("sounding"),
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.rnd == nil {
		o.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}

// WithSum collapses the per-interval areas into their total
func WithSum(sum bool) Option {
	return func(o *options) { o.sum = sum }
}

// WithReduceMode sets the duplicate spacing aggregation
func WithReduceMode(mode Mode) Option {
	return func(o *options) { o.mode = mode }
}

// WithRandSource injects the source used by ModeLeaveOneOut
func WithRandSource(rnd ports.RandSource) Option {
	return func(o *options) { o.rnd = rnd }
}

// WithSlope sets the basement curve angle in degrees
func WithSlope(degrees float64) Option {
	return func(o *options) { o.slopeDegrees = degrees }
}

// WithSampleCount sets the resampling grid size
func WithSampleCount(n int) Option {
	return func(o *options) { o.sampleCount = n }
}

// WithTolerance sets the absolute error target of the quadrature
func WithTolerance(tol float64) Option {
	return func(o *options) { o.tolerance = tol }
}

// WithLogger overrides the component logger
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}
