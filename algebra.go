package qreg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

/*
PermutationMatrix builds the N×N matrix whose row i is row perm[i] of the
identity, where N is len(perm). perm must contain every index in [0, N)
exactly once.
*/
func PermutationMatrix(perm []int) (*mat.CDense, error) {
	n := len(perm)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidPermutation)
	}

	seen := make([]bool, n)
	out := mat.NewCDense(n, n, nil)

	for row, p := range perm {
		if p < 0 || p >= n {
			return nil, fmt.Errorf("%w: index %d outside [0,%d)", ErrInvalidPermutation, p, n)
		}
		if seen[p] {
			return nil, fmt.Errorf("%w: index %d repeated", ErrInvalidPermutation, p)
		}
		seen[p] = true
		out.Set(row, p, 1)
	}

	return out, nil
}

// IsUnitary reports whether m is square and m·m† is the identity within Tolerance.
func IsUnitary(m mat.CMatrix) bool {
	r, c := m.Dims()
	if r != c || r == 0 {
		return false
	}
	return mat.CEqualApprox(multiply(m, m.H()), identity(r), Tolerance)
}

/*
Ket concatenates, for each bit, the pair [1,0] (bit 0) or [0,1] (bit 1).
The result has length 2·len(bits). It is a per-bit encoding, not a state of
the joint register; use BasisKet for that.
*/
func Ket(bits []Bit) []complex128 {
	out := make([]complex128, 0, 2*len(bits))
	for _, b := range bits {
		if b == Zero {
			out = append(out, 1, 0)
		} else {
			out = append(out, 0, 1)
		}
	}
	return out
}

// Bra is the row form of Ket: the conjugate of the same entries.
func Bra(bits []Bit) []complex128 {
	out := Ket(bits)
	for i, z := range out {
		out[i] = complex(real(z), -imag(z))
	}
	return out
}

/*
BasisKet returns the computational basis state of a register whose qubit j
holds bits[j]. The vector has length 2^len(bits) and a single unit entry at
the index whose bit j is bits[j], the ordering State uses.
*/
func BasisKet(bits []Bit) []complex128 {
	idx := 0
	for j, b := range bits {
		if b == One {
			idx |= 1 << j
		}
	}
	out := make([]complex128, 1<<len(bits))
	out[idx] = 1
	return out
}
