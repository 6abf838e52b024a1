// SPDX-License-Identifier: MIT

package invcache

import (
	"github.com/apex/log"

	"github.com/katalvlaran/matcache/matrix"
)

// Inverter computes the inverse of m. matrix.Inverse is the default; the
// options given to Solve are forwarded unchanged.
type Inverter func(m matrix.Matrix, opts ...matrix.InverseOption) (matrix.Matrix, error)

const (
	panicNilInverter = "invcache: WithInverter: inverter must not be nil"
	panicNilLogger   = "invcache: WithLogger: logger must not be nil"
)

// Option configures a Cell at construction time.
type Option func(*Cell)

// WithInverter replaces the inversion routine. Panics on nil.
func WithInverter(inv Inverter) Option {
	if inv == nil {
		panic(panicNilInverter)
	}

	return func(c *Cell) { c.invert = inv }
}

// WithLogger sets the sink for cache diagnostics (default log.Log).
// Panics on nil.
func WithLogger(l log.Interface) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(c *Cell) { c.log = l }
}
