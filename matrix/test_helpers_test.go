// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures for kernels.
//   • Keep all data finite and well-formed unless a test targets the numeric policy.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcache/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic At-based copy path in kernels.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// FromRows builds a *Dense from row literals or fails the test.
func FromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RequireIdentity asserts that m ≈ I within atol.
func RequireIdentity(t *testing.T, m matrix.Matrix, atol float64) {
	t.Helper()
	I, err := matrix.NewIdentity(m.Rows())
	require.NoError(t, err)
	ok, err := matrix.AllClose(m, I, 0, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "want ≈ I within %.1e, got:\n%v", atol, m)
}
