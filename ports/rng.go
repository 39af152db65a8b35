package ports

// RandSource provides the random draws used by the leave-one-out duplicate
// reduction. Inject a seeded source for deterministic results.
type RandSource interface {
	// Intn returns a uniform value in [0, n)
	Intn(n int) int
}
