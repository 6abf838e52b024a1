// SPDX-License-Identifier: MIT

package invcache

import (
	"github.com/apex/log"

	"github.com/katalvlaran/matcache/matrix"
)

// Cell holds a matrix and, once computed, its inverse.
//
// The inverse slot is written only by SetInverse (and therefore by Solve) and
// cleared by SetValue. The zero Cell is not usable; construct with New.
type Cell struct {
	value   matrix.Matrix
	inverse matrix.Matrix // nil means absent

	invert Inverter
	log    log.Interface
}

// New returns a Cell holding m with no cached inverse. m may be nil to
// create an unset placeholder that is filled later with SetValue.
func New(m matrix.Matrix, opts ...Option) *Cell {
	c := &Cell{
		value:  m,
		invert: matrix.Inverse,
		log:    log.Log,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SetValue replaces the stored matrix and drops any cached inverse.
//
// The Cell keeps the caller's matrix as-is. Mutating it in place afterwards
// (via Set) bypasses invalidation; call SetValue again instead.
func (c *Cell) SetValue(m matrix.Matrix) {
	c.value = m
	c.inverse = nil
	c.log.Debug("invcache: value replaced, cached inverse cleared")
}

// Value returns the stored matrix (nil for an unset placeholder).
func (c *Cell) Value() matrix.Matrix {
	return c.value
}

// SetInverse stores inv as the cached inverse without verifying it.
// Passing nil, or a typed nil such as (*matrix.Dense)(nil), clears the slot.
func (c *Cell) SetInverse(inv matrix.Matrix) {
	if matrix.ValidateNotNil(inv) != nil {
		inv = nil
	}
	c.inverse = inv
}

// Inverse returns the cached inverse and true, or nil and false when no
// inverse has been stored since the last SetValue.
func (c *Cell) Inverse() (matrix.Matrix, bool) {
	return c.inverse, c.inverse != nil
}

// Cached reports whether an inverse is currently stored.
func (c *Cell) Cached() bool {
	return c.inverse != nil
}
