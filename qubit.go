package qsphere

import (
	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r3"
)

// Qubit tracks one independent vector on the Bloch sphere
type Qubit struct {
	ID      string
	Color   string
	Initial r3.Vec // coordinate Reset returns to
	Current r3.Vec // coordinate gates act on
}

// NewQubit creates a qubit sitting at the given Bloch coordinate
func NewQubit(initial r3.Vec, color string) *Qubit {
	q := &Qubit{
		ID:      uuid.New().String(),
		Color:   color,
		Initial: initial,
		Current: initial,
	}
	return q
}

// Apply replaces the current coordinate with the gate's output.
// The coordinate is left untouched when the gate cannot be applied.
func (q *Qubit) Apply(g Gate) error {
	next, err := Transform(q.Current, g)
	if err != nil {
		return err
	}
	q.Current = next
	return nil
}

// Reset moves the qubit back to its initial coordinate
func (q *Qubit) Reset() {
	q.Current = q.Initial
}
