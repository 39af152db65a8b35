package features

import (
	"fmt"
	"math"

	"watex/domain/core"
)

// DefaultFlowBounds are the borehole flow rate limits in m3/h separating
// dry boreholes, village, improved village and urban hydraulic systems.
var DefaultFlowBounds = []float64{0, 1, 3}

// FlowBand is a half-open flow rate interval (Lower, Upper]
type FlowBand struct {
	Lower float64
	Upper float64
}

// ExpandFlowBounds turns [0, 1, 3] into the bands [0, 0], (0, 1], (1, 3]
// and (3, +Inf).
func ExpandFlowBounds(bounds []float64) []FlowBand {
	if len(bounds) == 0 {
		return nil
	}
	bands := make([]FlowBand, 0, len(bounds)+1)
	bands = append(bands, FlowBand{Lower: bounds[0], Upper: bounds[0]})
	for i := 1; i < len(bounds); i++ {
		bands = append(bands, FlowBand{Lower: bounds[i-1], Upper: bounds[i]})
	}
	return append(bands, FlowBand{Lower: bounds[len(bounds)-1], Upper: math.Inf(1)})
}

// FlowClasses returns the default labels FR0, FR1... for n bands
func FlowClasses(n int) []string {
	classes := make([]string, n)
	for i := range classes {
		classes[i] = fmt.Sprintf("FR%d", i)
	}
	return classes
}

// CategorizeFlow labels a flow rate. Nil bounds use DefaultFlowBounds and
// nil classes use FlowClasses. A flow at or below the first bound falls in
// the first class.
func CategorizeFlow(flow float64, bounds []float64, classes []string) (string, error) {
	if bounds == nil {
		bounds = DefaultFlowBounds
	}
	if len(bounds) == 0 {
		return "", fmt.Errorf("%w: no flow bounds", core.ErrInvalidArgument)
	}
	for i := 1; i < len(bounds); i++ {
		if bounds[i] <= bounds[i-1] {
			return "", fmt.Errorf("%w: flow bounds %v are not strictly increasing", core.ErrInvalidArgument, bounds)
		}
	}
	bands := ExpandFlowBounds(bounds)
	if classes == nil {
		classes = FlowClasses(len(bands))
	}
	if len(classes) != len(bands) {
		return "", fmt.Errorf("%w: %d classes for %d flow bands", core.ErrInvalidArgument, len(classes), len(bands))
	}
	if math.IsNaN(flow) || flow < 0 {
		return "", fmt.Errorf("%w: flow rate %g", core.ErrInvalidArgument, flow)
	}

	if flow <= bands[0].Upper {
		return classes[0], nil
	}
	for i, band := range bands[1:] {
		if flow > band.Lower && flow <= band.Upper {
			return classes[i+1], nil
		}
	}
	return classes[len(classes)-1], nil
}
