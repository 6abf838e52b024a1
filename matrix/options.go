// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the inversion kernel.
// This file defines:
//   - InverseOption / inverseOptions (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherInverseOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotTolerance is the relative tolerance below which a pivot is
	// treated as zero: |p| <= tol · max|a_ij|.
	DefaultPivotTolerance = 1e-12

	// DefaultPivoting enables partial (row) pivoting during LU factorization.
	// false ⇒ deterministic Doolittle without row exchanges; any zero leading
	// minor then reports ErrSingular even if the matrix is invertible.
	DefaultPivoting = true

	// DefaultValidateFinite rejects NaN/±Inf input before factorization.
	DefaultValidateFinite = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotToleranceInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"
)

// InverseOption mutates internal inversion options. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type InverseOption func(*inverseOptions)

// inverseOptions stores the effective configuration after applying setters.
type inverseOptions struct {
	tol            float64 // >= 0; DefaultPivotTolerance
	pivoting       bool    // DefaultPivoting
	validateFinite bool    // DefaultValidateFinite
}

// WithPivotTolerance sets the relative pivot tolerance.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that writes tol.
//
// Errors:
//   - Panics with a stable message when tol is invalid.
//
// Notes:
//   - tol = 0 reproduces the exact zero-pivot check.
//   - Larger tol reports near-singular inputs as ErrSingular earlier.
func WithPivotTolerance(tol float64) InverseOption {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *inverseOptions) { o.tol = tol }
}

// WithPartialPivoting enables row exchanges during factorization (default).
func WithPartialPivoting() InverseOption {
	return func(o *inverseOptions) { o.pivoting = true }
}

// WithoutPivoting disables row exchanges: plain Doolittle LU, bit-for-bit
// reproducible, but inputs with a zero leading minor (e.g. [[0,1],[1,0]])
// report ErrSingular.
func WithoutPivoting() InverseOption {
	return func(o *inverseOptions) { o.pivoting = false }
}

// WithValidateFinite enables NaN/±Inf rejection on input (default).
func WithValidateFinite() InverseOption {
	return func(o *inverseOptions) { o.validateFinite = true }
}

// WithNoValidateFinite skips the finiteness scan. NaN inputs then propagate
// into the result instead of failing fast.
func WithNoValidateFinite() InverseOption {
	return func(o *inverseOptions) { o.validateFinite = false }
}

// gatherInverseOptions applies setters on top of defaults, last-writer-wins.
// Complexity: Time O(k), Space O(1) for k=len(user).
func gatherInverseOptions(user ...InverseOption) inverseOptions {
	o := inverseOptions{
		tol:            DefaultPivotTolerance,
		pivoting:       DefaultPivoting,
		validateFinite: DefaultValidateFinite,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
