// Package linalg holds the small dense complex-matrix helpers shared by the
// gate algebra and the statevector simulator. All matrices are square and of
// dimension 2^n for n-qubit operators.
package linalg

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Zero returns an n x n matrix of zeros.
func Zero(n int) *mat.CDense {
	return mat.NewCDense(n, n, nil)
}

// Identity returns the n x n identity matrix.
func Identity(n int) *mat.CDense {
	m := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// Diag returns a square matrix with the given diagonal entries.
func Diag(entries ...complex128) *mat.CDense {
	n := len(entries)
	m := mat.NewCDense(n, n, nil)
	for i, e := range entries {
		m.Set(i, i, e)
	}
	return m
}

// Square returns an n x n matrix filled row-major from data.
func Square(n int, data []complex128) *mat.CDense {
	return mat.NewCDense(n, n, data)
}

// AddScaled accumulates dst += f*a and returns dst.
func AddScaled(dst *mat.CDense, f complex128, a mat.CMatrix) *mat.CDense {
	r, c := dst.Dims()
	ar, ac := a.Dims()
	if r != ar || c != ac {
		panic(fmt.Sprintf("linalg: dimension mismatch %dx%d vs %dx%d", r, c, ar, ac))
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			dst.Set(i, j, dst.At(i, j)+f*a.At(i, j))
		}
	}
	return dst
}

// Mul returns the product a*b.
func Mul(a, b mat.CMatrix) *mat.CDense {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ac != br {
		panic(fmt.Sprintf("linalg: dimension mismatch %dx%d times %dx%d", ar, ac, br, bc))
	}
	out := mat.NewCDense(ar, bc, nil)
	for i := 0; i < ar; i++ {
		for j := 0; j < bc; j++ {
			var sum complex128
			for k := 0; k < ac; k++ {
				sum += a.At(i, k) * b.At(k, j)
			}
			out.Set(i, j, sum)
		}
	}
	return out
}

// Kron returns the Kronecker product of a and b.
func Kron(a, b mat.CMatrix) *mat.CDense {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	out := mat.NewCDense(ar*br, ac*bc, nil)
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			f := a.At(i, j)
			for k := 0; k < br; k++ {
				for l := 0; l < bc; l++ {
					out.Set(i*br+k, j*bc+l, f*b.At(k, l))
				}
			}
		}
	}
	return out
}

// EqualApprox reports whether a and b agree entry-wise within tol.
func EqualApprox(a, b mat.CMatrix, tol float64) bool {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return false
	}
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			if cmplx.Abs(a.At(i, j)-b.At(i, j)) > tol {
				return false
			}
		}
	}
	return true
}

// IsUnitary reports whether m*conjugateTranspose(m) is the identity within tol.
func IsUnitary(m *mat.CDense, tol float64) bool {
	r, c := m.Dims()
	if r != c {
		return false
	}
	return EqualApprox(Mul(m, m.H()), Identity(r), tol)
}

// EqualUpToGlobalPhase reports whether a == exp(i*phi)*b for some phase phi,
// within tol. The phase is taken from the largest-magnitude entry of b to
// keep the comparison stable near zero entries.
func EqualUpToGlobalPhase(a, b mat.CMatrix, tol float64) bool {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return false
	}
	var pivot complex128
	best := 0.0
	pi, pj := 0, 0
	for i := 0; i < br; i++ {
		for j := 0; j < bc; j++ {
			if v := cmplx.Abs(b.At(i, j)); v > best {
				best = v
				pivot = b.At(i, j)
				pi, pj = i, j
			}
		}
	}
	if best <= tol {
		return EqualApprox(a, b, tol)
	}
	ref := a.At(pi, pj)
	if math.Abs(cmplx.Abs(ref)-best) > tol {
		return false
	}
	phase := ref / pivot
	scaled := Zero(br)
	AddScaled(scaled, phase, b)
	return EqualApprox(a, scaled, tol)
}
