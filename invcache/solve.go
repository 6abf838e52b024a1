// SPDX-License-Identifier: MIT

package invcache

import (
	"fmt"

	"github.com/apex/log"

	"github.com/katalvlaran/matcache/matrix"
)

// Solve returns the inverse of c's matrix, computing it at most once per
// stored value.
//
// On a cache hit the stored inverse is returned unchanged and an Info
// diagnostic is logged. On a miss the current value is inverted with the
// cell's Inverter (opts are forwarded), stored with SetInverse and returned.
//
// Errors from the inverter are returned wrapped and the cache stays empty;
// errors.Is(err, matrix.ErrSingular) reports a non-invertible value. A cell
// without a value fails with matrix.ErrNilMatrix, a nil cell with ErrNilCell.
func Solve(c *Cell, opts ...matrix.InverseOption) (matrix.Matrix, error) {
	if c == nil {
		return nil, ErrNilCell
	}
	if inv, ok := c.Inverse(); ok {
		c.log.WithFields(shapeFields(inv)).Info("getting cached inverse")
		return inv, nil
	}

	m := c.Value()
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("invcache: solve: %w", err)
	}

	c.log.WithFields(shapeFields(m)).Debug("computing inverse")
	inv, err := c.invert(m, opts...)
	if err != nil {
		return nil, fmt.Errorf("invcache: solve: %w", err)
	}
	c.SetInverse(inv)

	return inv, nil
}

func shapeFields(m matrix.Matrix) log.Fields {
	return log.Fields{"rows": m.Rows(), "cols": m.Cols()}
}
