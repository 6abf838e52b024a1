// SPDX-License-Identifier: MIT

// Package invcache memoizes the inverse of a single matrix.
//
// A Cell owns one matrix value and an optional cached inverse. Replacing the
// value through SetValue clears the cached inverse in the same call, so a
// stale inverse is never observable. Solve is the lookup-or-compute accessor:
// it returns the cached inverse when present (logging a diagnostic) and
// otherwise inverts the current value, stores the result and returns it.
//
//	c := invcache.New(A)
//	inv, err := invcache.Solve(c)   // computes
//	inv, err = invcache.Solve(c)    // "getting cached inverse"
//	c.SetValue(B)                   // invalidates
//
// Inversion options (pivoting, tolerance) are forwarded to the underlying
// solver:
//
//	inv, err := invcache.Solve(c, matrix.WithPivotTolerance(1e-9))
//
// A Cell is meant for a single owner and holds no lock. Callers that share a
// Cell between goroutines must serialize access themselves.
package invcache
