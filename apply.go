package qsphere

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrDimensionMismatch is returned when a gate's column count does not match
// the state vector it is applied to
var ErrDimensionMismatch = errors.New("gate columns must match state dimension")

/*
Apply left-multiplies a state vector by a gate matrix and renormalizes the
product. Unitarity is not checked; the caller is trusted to supply valid
gates, and the renormalization keeps ad-hoc matrices from drifting the
state off unit norm.

Parameters:
  - g: gate matrix whose column count equals len(s)
  - s: state vector

Returns:
  - State: the normalized product g·s
  - error: ErrDimensionMismatch when the shapes disagree
*/
func Apply(g Gate, s State) (State, error) {
	out := make(State, len(g))
	for i, row := range g {
		if len(row) != len(s) {
			return nil, fmt.Errorf("%w: row %d has %d columns for %d amplitudes",
				ErrDimensionMismatch, i, len(row), len(s))
		}

		var sum complex128
		for j, m := range row {
			sum += m * s[j]
		}
		out[i] = sum
	}
	return out.Normalize(), nil
}

/*
Transform applies a gate to a point on the Bloch sphere: the point converts
to a state, the gate multiplies it, and the renormalized product converts
back. This is the entry point visualization callers use. Applying a
self-inverse gate twice returns the original point within floating-point
tolerance, and the result always keeps unit length.
*/
func Transform(v r3.Vec, g Gate) (r3.Vec, error) {
	s, err := Apply(g, BlochToState(v))
	if err != nil {
		return r3.Vec{}, err
	}
	return StateToBloch(s)
}
