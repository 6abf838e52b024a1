// SPDX-License-Identifier: MIT

// Package matrix provides the dense float64 matrix and the inversion kernel
// that backs the invcache package.
//
// The matrix package provides:
//
//   - Matrix, a small interface over two-dimensional mutable float64 arrays,
//     and Dense, its row-major implementation with bounds-checked At/Set.
//   - Inverse, an LU-based inversion with partial pivoting (default) or the
//     deterministic no-pivot Doolittle scheme (WithoutPivoting).
//   - Validators (ValidateNotNil, ValidateSquare, ValidateFinite) and a
//     sentinel error set matched with errors.Is.
//   - Mul and AllClose for residual checks such as A·A⁻¹ ≈ I.
//
// Singularity policy: a pivot p is treated as zero when
// |p| <= tol · max|a_ij|, with tol = DefaultPivotTolerance unless overridden
// through WithPivotTolerance. Inverse never mutates its input.
//
// Quick example:
//
//	A, _ := matrix.NewDenseFrom([][]float64{{2, 0}, {0, 2}})
//	inv, err := matrix.Inverse(A)
//	if errors.Is(err, matrix.ErrSingular) {
//		// not invertible
//	}
//	fmt.Print(inv) // [0.5, 0]
//	               // [0, 0.5]
package matrix
