package mockrng

import (
	"sync"
)

// ScriptedRoller implements rng.Roller for testing with predetermined draws.
// Every draw is counted so tests can assert that a code path consumed zero
// entropy.
type ScriptedRoller struct {
	mu     sync.Mutex
	floats []float64
	ints   []int
	draws  int
}

// NewScriptedRoller creates a new scripted roller
func NewScriptedRoller() *ScriptedRoller {
	return &ScriptedRoller{}
}

// SetFloats sets the predetermined Float64 draws
func (m *ScriptedRoller) SetFloats(floats []float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.floats = append([]float64(nil), floats...)
}

// SetInts sets the predetermined Intn draws
func (m *ScriptedRoller) SetInts(ints []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ints = append([]int(nil), ints...)
}

// Draws returns the total number of samples consumed so far
func (m *ScriptedRoller) Draws() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draws
}

// Reset clears the scripts and the draw counter
func (m *ScriptedRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.floats = nil
	m.ints = nil
	m.draws = 0
}

// Float64 pops the next predetermined float, or 0 when the script is exhausted
func (m *ScriptedRoller) Float64() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draws++
	if len(m.floats) == 0 {
		return 0
	}
	v := m.floats[0]
	m.floats = m.floats[1:]
	return v
}

// Intn pops the next predetermined int, or 0 when the script is exhausted or
// the scripted value does not fit [0, n)
func (m *ScriptedRoller) Intn(n int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draws++
	if len(m.ints) == 0 {
		return 0
	}
	v := m.ints[0]
	m.ints = m.ints[1:]
	if v < 0 || v >= n {
		return 0
	}
	return v
}
