package rng

import (
	"math/rand"
	"time"
)

// randomRoller implements Roller using math/rand seeded at construction
type randomRoller struct {
	random *rand.Rand
}

// NewRandomRoller creates a new random roller
func NewRandomRoller() Roller {
	return &randomRoller{
		random: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewSeededRoller creates a roller with a fixed seed for reproducible runs
func NewSeededRoller(seed int64) Roller {
	return &randomRoller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Float64 implements Roller.Float64
func (r *randomRoller) Float64() float64 {
	return r.random.Float64()
}

// Intn implements Roller.Intn
func (r *randomRoller) Intn(n int) int {
	return r.random.Intn(n)
}
