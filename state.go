package qsphere

import "math"

// normEpsilon guards renormalization against division by a near-zero sum
const normEpsilon = 1e-12

// State holds the complex amplitudes of a quantum state vector.
// For a single qubit, index 0 is the |0⟩ amplitude and index 1 the |1⟩ amplitude.
type State []complex128

// NewState builds a single-qubit state from its two amplitudes
func NewState(alpha, beta complex128) State {
	return State{alpha, beta}
}

// DefaultState returns the |0⟩ basis state
func DefaultState() State {
	return State{1, 0}
}

// SquaredNorm returns the sum of squared amplitude magnitudes
func (s State) SquaredNorm() float64 {
	var sum float64
	for _, a := range s {
		sum += SquaredMagnitude(a)
	}
	return sum
}

// Normalize rescales the state to unit norm. A near-zero vector is returned
// unchanged so degenerate inputs never divide by zero.
func (s State) Normalize() State {
	sum := s.SquaredNorm()
	if sum < normEpsilon {
		return s
	}

	scale := 1 / math.Sqrt(sum)
	out := make(State, len(s))
	for i, a := range s {
		out[i] = ScaleReal(a, scale)
	}
	return out
}
