package qsphere

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestNewQubit(t *testing.T) {
	Convey("Given a Bloch coordinate and a color", t, func() {
		Convey("When creating a qubit", func() {
			q := NewQubit(r3.Vec{Z: 1}, "#ffd700")

			Convey("Then it should be properly initialized", func() {
				So(q, ShouldNotBeNil)
				So(q.ID, ShouldNotBeBlank)
				So(q.Color, ShouldEqual, "#ffd700")
				So(q.Current, ShouldResemble, q.Initial)
			})
		})

		Convey("When creating two qubits", func() {
			first := NewQubit(r3.Vec{Z: 1}, "#ffd700")
			second := NewQubit(r3.Vec{Z: 1}, "#00e5ff")

			Convey("Then their identifiers should differ", func() {
				So(first.ID, ShouldNotEqual, second.ID)
			})
		})
	})
}

func TestQubitApply(t *testing.T) {
	Convey("Given a qubit at the north pole", t, func() {
		q := NewQubit(r3.Vec{Z: 1}, "#ffd700")

		Convey("When applying Pauli-X", func() {
			err := q.Apply(PauliX())

			Convey("Then only the current coordinate should move", func() {
				So(err, ShouldBeNil)
				So(q.Current.Z, ShouldAlmostEqual, -1, tolerance)
				So(q.Initial.Z, ShouldEqual, 1.0)
			})

			Convey("And resetting should restore the initial coordinate", func() {
				q.Reset()

				So(q.Current, ShouldResemble, q.Initial)
			})
		})

		Convey("When a gate cannot be applied", func() {
			err := q.Apply(Gate{{1, 0, 0}})

			Convey("Then the coordinate should stay where it was", func() {
				So(err, ShouldNotBeNil)
				So(q.Current.Z, ShouldEqual, 1.0)
			})
		})

		Convey("When chaining gates", func() {
			So(q.Apply(Hadamard()), ShouldBeNil)
			So(q.Apply(SGate()), ShouldBeNil)

			Convey("Then the qubit should follow each rotation", func() {
				So(q.Current.X, ShouldAlmostEqual, 0, tolerance)
				So(q.Current.Y, ShouldAlmostEqual, 1, tolerance)
				So(q.Current.Z, ShouldAlmostEqual, 0, tolerance)
			})
		})
	})
}
