package anomaly

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"watex/domain/survey"
)

const (
	// TypeWindow is the number of stations analysed together
	TypeWindow = 7
	// DefaultDipoleLength is the station spacing in meters
	DefaultDipoleLength = 10.0
)

type typeOptions struct {
	dipoleLength float64
}

// TypeOption configures Type
type TypeOption func(*typeOptions)

// WithDipoleLength sets the station spacing used to measure maxima spread
func WithDipoleLength(dl float64) TypeOption {
	return func(o *typeOptions) { o.dipoleLength = dl }
}

// Type classifies the lateral resistivity distribution of the whole line.
// The line is cut into windows of TypeWindow stations, the last one possibly
// shorter. Every window is extensive when its maxima are more than four
// dipoles apart. All extensive gives EC, none gives NC, one contiguous
// block of each gives CB2P and anything else PC. Windows alternating one by
// one, such as extensive, narrow, extensive, are a conductive plane (PC).
func Type(profile []float64, opts ...TypeOption) survey.Type {
	o := typeOptions{dipoleLength: DefaultDipoleLength}
	for _, opt := range opts {
		opt(&o)
	}
	if len(profile) == 0 {
		return survey.TypePC
	}

	var yes, no []int
	for w, start := 0, 0; start < len(profile); w, start = w+1, start+TypeWindow {
		end := start + TypeWindow
		if end > len(profile) {
			end = len(profile)
		}
		if extensive, _ := typeMechanism(profile[start:end], o.dipoleLength); extensive {
			yes = append(yes, w)
		} else {
			no = append(no, w)
		}
	}

	switch {
	case len(no) == 0:
		return survey.TypeEC
	case len(yes) == 0:
		return survey.TypeNC
	case contiguous(yes) && contiguous(no):
		return survey.TypeCB2P
	}
	return survey.TypePC
}

// typeMechanism splits the window at its minimum and measures the distance
// between the left maximum (first occurrence) and the right maximum (last
// occurrence).
func typeMechanism(cz []float64, dipoleLength float64) (bool, float64) {
	s := floats.MinIdx(cz)
	left, right := cz[:s+1], cz[s:]

	ixl := floats.MaxIdx(left)
	rightMax := floats.Max(right)
	ixr := s
	for i, v := range right {
		if v == rightMax {
			ixr = s + i
		}
	}

	spread := dipoleLength * math.Abs(float64(ixl-ixr))
	return spread > 4*dipoleLength, spread
}

// contiguous reports whether the indexes step by exactly one. Fewer than
// two indexes have no step and are not contiguous.
func contiguous(ix []int) bool {
	if len(ix) < 2 {
		return false
	}
	for i := 1; i < len(ix); i++ {
		if ix[i]-ix[i-1] != 1 {
			return false
		}
	}
	return true
}
