// bloch.go
package qsphere

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrInvalidDimension is returned when a single-qubit operation receives a
// state that does not hold exactly two amplitudes
var ErrInvalidDimension = errors.New("state must hold exactly two amplitudes")

// blochEpsilon is the cutoff below which a Bloch vector counts as degenerate
const blochEpsilon = 1e-9

/*
StateToBloch maps a single-qubit pure state onto its point on the Bloch
sphere. With amplitudes α and β the point is

	x = 2·Re(conj(α)·β)
	y = 2·Im(conj(α)·β)
	z = |α|² − |β|²

The signs and ordering matter: getting them wrong flips the rendered
sphere without failing any dimension check.

Parameters:
  - s: state vector holding exactly two amplitudes

Returns:
  - r3.Vec: the Bloch coordinate
  - error: ErrInvalidDimension when s is not a single-qubit state
*/
func StateToBloch(s State) (r3.Vec, error) {
	if len(s) != 2 {
		return r3.Vec{}, fmt.Errorf("%w: got %d", ErrInvalidDimension, len(s))
	}

	p := cmplx.Conj(s[0]) * s[1]
	return r3.Vec{
		X: 2 * real(p),
		Y: 2 * imag(p),
		Z: SquaredMagnitude(s[0]) - SquaredMagnitude(s[1]),
	}, nil
}

/*
BlochToState maps a point back to a single-qubit pure state. Off-sphere
points are pulled onto the unit sphere first, so callers may pass raw
user input. A near-zero vector has no direction to encode and falls back
to the default |0⟩ state; the zero coordinate shows up naturally in
uninitialized callers and must not fail.

The spherical angles θ = acos(z) and φ = atan2(y, x) stay inside their
domains because the point is normalized before they are taken.
*/
func BlochToState(v r3.Vec) State {
	norm := r3.Norm(v)
	if norm < blochEpsilon {
		return DefaultState()
	}

	n := r3.Scale(1/norm, v)
	theta := math.Acos(n.Z)
	phi := math.Atan2(n.Y, n.X)

	return State{
		complex(math.Cos(theta/2), 0),
		complex(math.Sin(theta/2)*math.Cos(phi), math.Sin(theta/2)*math.Sin(phi)),
	}
}
