// SPDX-License-Identifier: MIT

package invcache

import (
	"errors"

	"github.com/katalvlaran/matcache/matrix"
)

// ErrNilCell is returned by Solve when called with a nil *Cell.
var ErrNilCell = errors.New("invcache: nil cell")

// ErrSingular aliases matrix.ErrSingular so callers matching the failure of
// Solve need not import the matrix package.
var ErrSingular = matrix.ErrSingular
