package rng

//go:generate mockgen -destination=mock/mock_roller.go -package=mockrng -source=roller.go

// Roller provides an interface for drawing random numbers
// This allows us to inject different implementations for testing
type Roller interface {
	// Float64 draws one uniform sample in [0.0, 1.0)
	Float64() float64

	// Intn draws one uniform integer in [0, n)
	Intn(n int) int
}
