package qreg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

/*
Operation is a single-qubit unitary gate. Implementations are immutable:
Adjoint and Then return new values and never modify the receiver.
*/
type Operation interface {
	// Matrix returns a copy of the 2×2 unitary matrix.
	Matrix() mat.CMatrix
	// Adjoint returns the conjugate transpose, the inverse of this operation.
	Adjoint() Operation
	// Then returns the operation that applies the receiver and then other.
	Then(other Operation) Operation
	// Apply mutates the register that q belongs to.
	Apply(q *Qubit) error
}

/*
MatrixOperation is an Operation backed directly by its 2×2 matrix. The only
ways to obtain one are NewOperation, MustOperation, Identity and the gate
constructors, and Then validates anything else it composes with, so every
MatrixOperation in existence is unitary.
*/
type MatrixOperation struct {
	m *mat.CDense
}

/*
NewOperation validates m and wraps it. A matrix that is not a 2×2 unitary
within Tolerance yields ErrNotUnitary and no operation.
*/
func NewOperation(m mat.CMatrix) (*MatrixOperation, error) {
	if err := checkUnitary(m); err != nil {
		return nil, err
	}
	return &MatrixOperation{m: dense(m)}, nil
}

func checkUnitary(m mat.CMatrix) error {
	if r, c := m.Dims(); r != 2 || c != 2 {
		return fmt.Errorf("%w: got %dx%d", ErrNotUnitary, r, c)
	}
	if !IsUnitary(m) {
		return fmt.Errorf("%w: %s", ErrNotUnitary, formatMatrix(m))
	}
	return nil
}

// MustOperation is NewOperation that panics instead of returning an error.
func MustOperation(m mat.CMatrix) *MatrixOperation {
	op, err := NewOperation(m)
	if err != nil {
		panic(err)
	}
	return op
}

// Identity returns the operation that leaves every state unchanged.
func Identity() *MatrixOperation {
	return &MatrixOperation{m: identity(2)}
}

func (op *MatrixOperation) Matrix() mat.CMatrix {
	return dense(op.m)
}

func (op *MatrixOperation) Adjoint() Operation {
	return &MatrixOperation{m: adjoint(op.m)}
}

/*
Then composes op followed by other. Matrices act by left multiplication, so
the product is other·op. Another MatrixOperation is already unitary; any
other implementation is validated first and Then panics with ErrNotUnitary
if its matrix is not a 2×2 unitary, as MustOperation does.
*/
func (op *MatrixOperation) Then(other Operation) Operation {
	next, ok := other.(*MatrixOperation)
	if !ok {
		next = MustOperation(other.Matrix())
	}
	return &MatrixOperation{m: multiply(next.m, op.m)}
}

func (op *MatrixOperation) Apply(q *Qubit) error {
	return q.ApplyOperation(op)
}

func (op *MatrixOperation) String() string {
	return formatMatrix(op.m)
}
