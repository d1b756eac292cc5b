package qreg

import (
	"errors"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"gonum.org/v1/gonum/mat"
)

// rawOperation implements Operation without going through NewOperation.
type rawOperation struct {
	m *mat.CDense
}

func (o rawOperation) Matrix() mat.CMatrix            { return dense(o.m) }
func (o rawOperation) Adjoint() Operation             { return rawOperation{m: adjoint(o.m)} }
func (o rawOperation) Then(other Operation) Operation { return rawOperation{m: multiply(other.Matrix(), o.m)} }
func (o rawOperation) Apply(q *Qubit) error           { return q.ApplyOperation(o) }

func shear() rawOperation {
	return rawOperation{m: mat.NewCDense(2, 2, []complex128{1, 1, 0, 1})}
}

func TestNewOperation(t *testing.T) {
	Convey("Given a non-unitary matrix", t, func() {
		m := mat.NewCDense(2, 2, []complex128{1, 1, 0, 1})

		Convey("Construction should fail without an operation", func() {
			op, err := NewOperation(m)
			So(op, ShouldBeNil)
			So(errors.Is(err, ErrNotUnitary), ShouldBeTrue)
		})

		Convey("MustOperation should panic", func() {
			So(func() { MustOperation(m) }, ShouldPanic)
		})
	})

	Convey("Given a matrix of the wrong shape", t, func() {
		op, err := NewOperation(identity(4))
		So(op, ShouldBeNil)
		So(errors.Is(err, ErrNotUnitary), ShouldBeTrue)
	})

	Convey("Given a unitary matrix", t, func() {
		h := 1 / math.Sqrt2
		m := mat.NewCDense(2, 2, []complex128{complex(h, 0), complex(0, h), complex(0, h), complex(h, 0)})

		op, err := NewOperation(m)
		So(err, ShouldBeNil)

		Convey("It should keep its own copy of the matrix", func() {
			m.Set(0, 0, 5)
			So(op.Matrix().At(0, 0), ShouldEqual, complex(h, 0))
		})

		Convey("Mutating the returned matrix should not affect the operation", func() {
			view := op.Matrix().(*mat.CDense)
			view.Set(1, 1, 7)
			So(op.Matrix().At(1, 1), ShouldEqual, complex(h, 0))
		})
	})
}

func TestAdjoint(t *testing.T) {
	Convey("Given an operation with complex entries", t, func() {
		op := S()

		Convey("Its adjoint should be the conjugate transpose", func() {
			adj := op.Adjoint().Matrix()
			So(adj.At(1, 1), ShouldEqual, complex(0, -1))
			So(adj.At(0, 1), ShouldEqual, complex(0, 0))
		})

		Convey("Composing with the adjoint should give the identity", func() {
			So(mat.CEqualApprox(op.Then(op.Adjoint()).Matrix(), identity(2), Tolerance), ShouldBeTrue)
		})
	})
}

func TestThen(t *testing.T) {
	Convey("Given two operations", t, func() {
		a, b := Hadamard(), S()

		Convey("Then should multiply in reverse order", func() {
			got := a.Then(b).Matrix()
			want := multiply(b.Matrix(), a.Matrix())
			So(mat.CEqual(got, want), ShouldBeTrue)
		})

		Convey("The composition should differ from the opposite order", func() {
			So(mat.CEqualApprox(a.Then(b).Matrix(), b.Then(a).Matrix(), Tolerance), ShouldBeFalse)
		})

		Convey("The composition should stay unitary", func() {
			So(IsUnitary(a.Then(b).Then(T()).Matrix()), ShouldBeTrue)
		})
	})
}

func TestThenForeignOperation(t *testing.T) {
	Convey("Given an operation implemented outside MatrixOperation", t, func() {
		Convey("A unitary one should compose like any other", func() {
			flip := rawOperation{m: dense(PauliX().Matrix())}
			got := Hadamard().Then(flip)

			So(got, ShouldHaveSameTypeAs, &MatrixOperation{})
			So(mat.CEqual(got.Matrix(), Hadamard().Then(PauliX()).Matrix()), ShouldBeTrue)
		})

		Convey("A non-unitary one should be refused", func() {
			So(func() { Identity().Then(shear()) }, ShouldPanic)
		})

		Convey("A wrongly shaped one should be refused", func() {
			So(func() { Identity().Then(rawOperation{m: identity(3)}) }, ShouldPanic)
		})
	})
}

func TestIdentity(t *testing.T) {
	Convey("Given the identity operation", t, func() {
		So(mat.CEqual(Identity().Matrix(), identity(2)), ShouldBeTrue)
		So(Identity().String(), ShouldEqual, "[[(1+0i) (0+0i)] [(0+0i) (1+0i)]]")
	})
}
