package ports

// Plotter renders a profile with its fitted curve. Rendering lives outside
// this module; implementations receive the raw arrays only.
type Plotter interface {
	Plot(positions, values, fitted []float64, raw bool) error
}
