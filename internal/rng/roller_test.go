package rng_test

import (
	"testing"

	"github.com/dadddeck/deck-bot-discord/internal/rng"
	mockrng "github.com/dadddeck/deck-bot-discord/internal/rng/mock"
	"github.com/stretchr/testify/assert"
)

func TestScriptedRoller_Float64(t *testing.T) {
	roller := mockrng.NewScriptedRoller()
	roller.SetFloats([]float64{0.25, 0.99})

	assert.Equal(t, 0.25, roller.Float64())
	assert.Equal(t, 0.99, roller.Float64())
	assert.Equal(t, 2, roller.Draws())

	// Exhausted script falls back to zero but still counts the draw
	assert.Equal(t, 0.0, roller.Float64())
	assert.Equal(t, 3, roller.Draws())
}

func TestScriptedRoller_Intn(t *testing.T) {
	roller := mockrng.NewScriptedRoller()
	roller.SetInts([]int{3, 7, 2})

	assert.Equal(t, 3, roller.Intn(5))
	// 7 does not fit [0, 5)
	assert.Equal(t, 0, roller.Intn(5))
	assert.Equal(t, 2, roller.Intn(5))
	assert.Equal(t, 3, roller.Draws())
}

func TestScriptedRoller_Reset(t *testing.T) {
	roller := mockrng.NewScriptedRoller()
	roller.SetFloats([]float64{0.5})
	roller.Float64()
	roller.Reset()

	assert.Equal(t, 0, roller.Draws())
	assert.Equal(t, 0.0, roller.Float64())
}

func TestSeededRoller_Reproducible(t *testing.T) {
	a := rng.NewSeededRoller(42)
	b := rng.NewSeededRoller(42)

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.Intn(100), b.Intn(100))
	}
}

func TestRandomRoller_Bounds(t *testing.T) {
	roller := rng.NewRandomRoller()

	for i := 0; i < 100; i++ {
		f := roller.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)

		n := roller.Intn(6)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 6)
	}
}
