package qreg

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/mat"
)

// identity returns the n×n complex identity matrix.
func identity(n int) *mat.CDense {
	m := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// dense copies any CMatrix into a freshly allocated CDense.
func dense(a mat.CMatrix) *mat.CDense {
	r, c := a.Dims()
	m := mat.NewCDense(r, c, nil)
	m.Copy(a)
	return m
}

// adjoint returns the conjugate transpose of a.
func adjoint(a mat.CMatrix) *mat.CDense {
	return dense(a.H())
}

/*
kronecker returns the tensor product a ⊗ b. Element (i*br+k, j*bc+l) of the
result is a(i,j)·b(k,l), so a's indices are the most significant.
*/
func kronecker(a, b mat.CMatrix) *mat.CDense {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	out := mat.NewCDense(ar*br, ac*bc, nil)

	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			aij := a.At(i, j)
			if aij == 0 {
				continue
			}
			for k := 0; k < br; k++ {
				for l := 0; l < bc; l++ {
					out.Set(i*br+k, j*bc+l, aij*b.At(k, l))
				}
			}
		}
	}

	return out
}

// multiply returns a·b using the cblas128 Gemm kernel.
func multiply(a, b mat.CMatrix) *mat.CDense {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ac != br {
		panic(mat.ErrShape)
	}

	ad, bd := dense(a), dense(b)
	out := mat.NewCDense(ar, bc, nil)
	cblas128.Gemm(blas.NoTrans, blas.NoTrans, 1, ad.RawCMatrix(), bd.RawCMatrix(), 0, out.RawCMatrix())
	return out
}

// column views v as a len(v)×1 matrix sharing v's backing array.
func column(v []complex128) *mat.CDense {
	return mat.NewCDense(len(v), 1, v)
}

/*
apply returns op·v as a new slice. op must be len(v)×len(v).
*/
func apply(op *mat.CDense, v []complex128) []complex128 {
	out := make([]complex128, len(v))
	cblas128.Gemm(
		blas.NoTrans, blas.NoTrans, 1,
		op.RawCMatrix(),
		cblas128.General{Rows: len(v), Cols: 1, Stride: 1, Data: v},
		0,
		cblas128.General{Rows: len(v), Cols: 1, Stride: 1, Data: out},
	)
	return out
}

// norm returns the Euclidean norm of v.
func norm(v []complex128) float64 {
	return cmplxs.Norm(v, 2)
}

/*
normalize scales v in place to unit norm and reports false, leaving v as it
was, if the norm is within Tolerance of zero or not a number.
*/
func normalize(v []complex128) bool {
	n := norm(v)
	if math.IsNaN(n) || n <= Tolerance {
		return false
	}
	cmplxs.ScaleReal(1/n, v)
	return true
}

// normSqr returns |z|².
func normSqr(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}

// formatMatrix renders m row by row, e.g. [[(1+0i) (0+0i)] [(0+0i) (1+0i)]].
func formatMatrix(m mat.CMatrix) string {
	r, c := m.Dims()
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < r; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('[')
		for j := 0; j < c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatComplex(m.At(i, j), 'g', -1, 128))
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')
	return sb.String()
}
