package qsphere

import (
	"math"
	"math/cmplx"
	"strings"
)

// Gate is a matrix of complex entries applied to a state vector.
// Library gates are 2×2 unitaries; ad-hoc caller matrices may be any shape.
type Gate [][]complex128

// PauliX returns the bit-flip gate
//
//	X = [0 1]
//	    [1 0]
func PauliX() Gate {
	return Gate{
		{0, 1},
		{1, 0},
	}
}

// PauliY returns the bit-and-phase-flip gate
//
//	Y = [0 -i]
//	    [i  0]
func PauliY() Gate {
	return Gate{
		{0, complex(0, -1)},
		{complex(0, 1), 0},
	}
}

// PauliZ returns the phase-flip gate
//
//	Z = [1  0]
//	    [0 -1]
func PauliZ() Gate {
	return Gate{
		{1, 0},
		{0, -1},
	}
}

// Hadamard returns the superposition gate
//
//	H = 1/√2 * [1  1]
//	           [1 -1]
func Hadamard() Gate {
	h := complex(1/math.Sqrt2, 0)
	return Gate{
		{h, h},
		{h, -h},
	}
}

// SGate returns the quarter-turn phase gate, Phase(π/2)
func SGate() Gate {
	return Gate{
		{1, 0},
		{0, complex(0, 1)},
	}
}

// TGate returns the eighth-turn phase gate, Phase(π/4)
func TGate() Gate {
	return Gate{
		{1, 0},
		{0, cmplx.Exp(complex(0, math.Pi/4))},
	}
}

// Phase returns the gate that rotates the |1⟩ amplitude by theta radians
//
//	P(θ) = [1            0]
//	       [0 cosθ + i·sinθ]
func Phase(theta float64) Gate {
	return Gate{
		{1, 0},
		{0, complex(math.Cos(theta), math.Sin(theta))},
	}
}

// GateNamed resolves a gate by its UI name, case-insensitively. The phase
// gate ("PHASE" or "P") reads its rotation angle in radians from params[0],
// defaulting to 0 when absent. Unknown names return false.
func GateNamed(name string, params ...float64) (Gate, bool) {
	theta := 0.0
	if len(params) > 0 {
		theta = params[0]
	}

	switch strings.ToUpper(name) {
	case "X":
		return PauliX(), true
	case "Y":
		return PauliY(), true
	case "Z":
		return PauliZ(), true
	case "H":
		return Hadamard(), true
	case "S":
		return SGate(), true
	case "T":
		return TGate(), true
	case "PHASE", "P":
		return Phase(theta), true
	default:
		return nil, false
	}
}
