// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes a read-only snapshot of the resolved inversion options
// and the packed LU factors to package matrix_test without widening the API.

// InverseOptionsSnapshot mirrors inverseOptions with exported fields.
type InverseOptionsSnapshot struct {
	Tol            float64
	Pivoting       bool
	ValidateFinite bool
}

// GatherInverseOptions_TestOnly resolves opts against defaults.
func GatherInverseOptions_TestOnly(opts ...InverseOption) InverseOptionsSnapshot {
	o := gatherInverseOptions(opts...)
	return InverseOptionsSnapshot{Tol: o.tol, Pivoting: o.pivoting, ValidateFinite: o.validateFinite}
}

// Factorize_TestOnly returns the packed LU buffer and the row permutation.
func Factorize_TestOnly(m Matrix, opts ...InverseOption) ([]float64, []int, error) {
	f, err := factorize(m, gatherInverseOptions(opts...))
	if err != nil {
		return nil, nil, err
	}
	return f.lu, f.perm, nil
}
