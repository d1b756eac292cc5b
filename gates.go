package qreg

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// gate wraps a matrix known to be unitary without validating it.
func gate(a, b, c, d complex128) *MatrixOperation {
	return &MatrixOperation{m: mat.NewCDense(2, 2, []complex128{a, b, c, d})}
}

// PauliX is the bit flip [[0,1],[1,0]].
func PauliX() *MatrixOperation { return gate(0, 1, 1, 0) }

// PauliY is [[0,-i],[i,0]].
func PauliY() *MatrixOperation { return gate(0, -1i, 1i, 0) }

// PauliZ is the phase flip [[1,0],[0,-1]].
func PauliZ() *MatrixOperation { return gate(1, 0, 0, -1) }

/*
Hadamard maps |0⟩ to (|0⟩+|1⟩)/√2 and |1⟩ to (|0⟩-|1⟩)/√2.

	H = 1/√2 * [1  1]
	           [1 -1]
*/
func Hadamard() *MatrixOperation {
	h := complex(1/math.Sqrt2, 0)
	return gate(h, h, h, -h)
}

// Phase multiplies the |1⟩ amplitude by e^(iθ).
func Phase(theta float64) *MatrixOperation {
	return gate(1, 0, 0, cmplx.Exp(complex(0, theta)))
}

// S is Phase(π/2).
func S() *MatrixOperation { return gate(1, 0, 0, 1i) }

// T is Phase(π/4).
func T() *MatrixOperation { return Phase(math.Pi / 4) }

// RX rotates by theta around the X axis.
func RX(theta float64) *MatrixOperation {
	c := complex(math.Cos(theta/2), 0)
	s := complex(0, -math.Sin(theta/2))
	return gate(c, s, s, c)
}

// RY rotates by theta around the Y axis.
func RY(theta float64) *MatrixOperation {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return gate(c, -s, s, c)
}

// RZ rotates by theta around the Z axis.
func RZ(theta float64) *MatrixOperation {
	return gate(cmplx.Exp(complex(0, -theta/2)), 0, 0, cmplx.Exp(complex(0, theta/2)))
}

/*
GateByName resolves the short names accepted by the command line tool:
x, y, z, h, s, t and id. The boolean is false for unknown names.
*/
func GateByName(name string) (*MatrixOperation, bool) {
	switch name {
	case "x":
		return PauliX(), true
	case "y":
		return PauliY(), true
	case "z":
		return PauliZ(), true
	case "h":
		return Hadamard(), true
	case "s":
		return S(), true
	case "t":
		return T(), true
	case "id":
		return Identity(), true
	}
	return nil, false
}
