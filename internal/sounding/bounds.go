package sounding

// Bound is an inclusive index interval where the basement lies above the sounding curve
type Bound struct {
	Lower int
	Upper int
}

// FindBounds splits sorted indices into maximal runs of consecutive values.
// Each pass subtracts a unit progression starting at the first remaining
// index; the leading zero residuals form one run.
func FindBounds(indices []int) []Bound {
	var bounds []Bound
	for rest := indices; len(rest) > 0; {
		start := rest[0]
		last := 0
		for k := 1; k < len(rest) && rest[k]-(start+k) == 0; k++ {
			last = k
		}
		bounds = append(bounds, Bound{Lower: start, Upper: rest[last]})
		rest = rest[last+1:]
	}
	return bounds
}

// FindLimits is the pairwise difference variant of FindBounds: any step
// other than one closes the current run.
func FindLimits(indices []int) []Bound {
	if len(indices) == 0 {
		return nil
	}
	var bounds []Bound
	open := indices[0]
	for i := 1; i < len(indices); i++ {
		if indices[i]-indices[i-1] != 1 {
			bounds = append(bounds, Bound{Lower: open, Upper: indices[i-1]})
			open = indices[i]
		}
	}
	return append(bounds, Bound{Lower: open, Upper: indices[len(indices)-1]})
}
