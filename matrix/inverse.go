// SPDX-License-Identifier: MIT
// Package matrix provides the inversion kernel and the two helpers needed to
// check its results (Mul, AllClose). All functions perform strict fail-fast
// validation and return sentinel errors wrapped with an operation tag.
//
// Purpose:
//   - Inverse: LU factorization (optionally row-pivoted) followed by one
//     forward/backward substitution per unit column.
//   - Keep loop orders fixed so identical inputs and options give identical bits.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for forward/backward substitution.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opInverse  = "Inverse"
	opLU       = "LU"
	opMul      = "Mul"
	opAllClose = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// luFactors is a packed LU factorization of a row-permuted square matrix:
// P·A = L·U, where L (unit diagonal, implicit) lives strictly below the
// diagonal of lu and U on and above it. perm[i] is the original row placed
// at position i.
type luFactors struct {
	n    int
	lu   []float64 // n*n row-major
	perm []int
}

// factorize computes the packed LU of a private copy of m.
// Implementation:
//   - Stage 1: copy m into a flat buffer; compute scale = max|a_ij|.
//   - Stage 2: for k=0..n-1 choose the pivot row (largest |a_ik|, i ≥ k, when
//     pivoting; row k otherwise), reject |pivot| ≤ tol·scale, swap, eliminate.
//
// Errors:
//   - ErrSingular (wrapped with the failing column).
//
// Determinism:
//   - Ties in pivot search keep the lowest row index.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func factorize(m Matrix, o inverseOptions) (*luFactors, error) {
	a, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	n := a.r
	d := a.data

	// Non-finite entries only reach here under WithNoValidateFinite; they
	// must not inflate the threshold to +Inf.
	var scale float64
	for _, v := range d {
		if v = math.Abs(v); v > scale && !math.IsInf(v, 0) {
			scale = v
		}
	}
	thresh := o.tol * scale

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var i, j, k, p int
	var best, v, l float64
	for k = 0; k < n; k++ {
		p = k
		if o.pivoting {
			best = math.Abs(d[k*n+k])
			for i = k + 1; i < n; i++ {
				if v = math.Abs(d[i*n+k]); v > best {
					best, p = v, i
				}
			}
		}
		if math.Abs(d[p*n+k]) <= thresh {
			return nil, matrixErrorf(opLU, fmt.Errorf("pivot %d: %w", k, ErrSingular))
		}
		if p != k {
			for j = 0; j < n; j++ {
				d[k*n+j], d[p*n+j] = d[p*n+j], d[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
		}
		for i = k + 1; i < n; i++ {
			l = d[i*n+k] / d[k*n+k]
			d[i*n+k] = l
			for j = k + 1; j < n; j++ {
				d[i*n+j] -= l * d[k*n+j]
			}
		}
	}

	return &luFactors{n: n, lu: d, perm: perm}, nil
}

// Inverse returns A⁻¹ for a square, non-singular matrix.
// Implementation:
//   - Stage 1: ValidateNotNil, ValidateSquare, optional ValidateFinite.
//   - Stage 2: factorize P·A = L·U (see factorize).
//   - Stage 3: for each column c solve L·y = P·e_c, then U·x = y; write x into column c.
//
// Behavior highlights:
//   - Input m is read-only; the result is a fresh *Dense.
//   - Options tune pivoting, the singularity tolerance and NaN/Inf policy.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrNonSquare, also matching ErrSingular (a non-square matrix has no inverse).
//   - ErrNaNInf when finite validation is on.
//   - ErrSingular when a pivot falls within tolerance of zero.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// AI-Hints:
//   - Keep WithoutPivoting for reproducibility tests only; pivoting is the
//     numerically sane default.
func Inverse(m Matrix, opts ...InverseOption) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, fmt.Errorf("%w: %w", ErrSingular, err))
	}
	o := gatherInverseOptions(opts...)
	if o.validateFinite {
		if err := ValidateFinite(m); err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
	}

	f, err := factorize(m, o)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := f.n
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		col, i, k int
		sum       float64
		y         = make([]float64, n) // forward substitution workspace
		x         = make([]float64, n) // backward substitution workspace
		lu        = f.lu
	)
	for col = 0; col < n; col++ {
		// Forward: L·y = P·e_col (unit diagonal).
		for i = 0; i < n; i++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += lu[i*n+k] * y[k]
			}
			if f.perm[i] == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = ZeroSum - sum // keeps +0 rather than -0
			}
		}
		// Backward: U·x = y.
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			for k = i + 1; k < n; k++ {
				sum += lu[i*n+k] * x[k]
			}
			x[i] = (y[i] - sum) / lu[i*n+i]
		}
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// Mul returns the matrix product a×b as a fresh *Dense.
// Loop order i→k→j keeps the inner loop on contiguous memory.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	ad, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bd, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out, err := NewDense(ad.r, bd.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	r, inner, c := ad.r, ad.c, bd.c
	var i, k, j int
	var aik float64
	for i = 0; i < r; i++ {
		for k = 0; k < inner; k++ {
			aik = ad.data[i*inner+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < c; j++ {
				out.data[i*c+j] += aik * bd.data[k*c+j]
			}
		}
	}

	return out, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if every element satisfies the relation; (false,nil)
// otherwise. NaN never compares close.
//
// Policy:
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances → ErrNaNInf.
//   - Shapes must match; else ErrDimensionMismatch.
//
// Complexity: Time O(r*c), Space O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, matrixErrorf(opAllClose, ErrDimensionMismatch)
	}

	var av, bv float64
	var err error
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			// Negated form so NaN differences fail the check.
			if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
				return false, nil
			}
		}
	}

	return true, nil
}
