// SPDX-License-Identifier: MIT

package invcache_test

import (
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcache/invcache"
	"github.com/katalvlaran/matcache/matrix"
)

// dense builds a *matrix.Dense from row literals or fails the test.
func dense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// memLogger returns a logger that records every entry at Debug and above.
func memLogger() (*log.Logger, *memory.Handler) {
	h := memory.New()
	return &log.Logger{Handler: h, Level: log.DebugLevel}, h
}

func TestNew_StartsWithoutInverse(t *testing.T) {
	t.Parallel()

	A := dense(t, [][]float64{{1, 2}, {3, 4}})
	c := invcache.New(A)

	assert.Same(t, A, c.Value())
	inv, ok := c.Inverse()
	assert.False(t, ok)
	assert.Nil(t, inv)
	assert.False(t, c.Cached())
}

func TestNew_Placeholder(t *testing.T) {
	t.Parallel()

	c := invcache.New(nil)
	assert.Nil(t, c.Value())

	A := dense(t, [][]float64{{1}})
	c.SetValue(A)
	assert.Same(t, A, c.Value())
}

func TestSetInverse_RoundTrip(t *testing.T) {
	t.Parallel()

	c := invcache.New(dense(t, [][]float64{{2, 0}, {0, 2}}))
	// Deliberately not the inverse: the cell does not verify.
	bogus := dense(t, [][]float64{{7, 7}, {7, 7}})
	c.SetInverse(bogus)

	got, ok := c.Inverse()
	require.True(t, ok)
	assert.Same(t, bogus, got)

	c.SetInverse(nil)
	_, ok = c.Inverse()
	assert.False(t, ok)
}

func TestSetInverse_TypedNilIsAbsent(t *testing.T) {
	t.Parallel()

	logger, _ := memLogger()
	ci := &countingInverter{}
	c := invcache.New(dense(t, [][]float64{{2, 0}, {0, 2}}),
		invcache.WithInverter(ci.invert), invcache.WithLogger(logger))

	var typedNil *matrix.Dense
	c.SetInverse(typedNil)
	got, ok := c.Inverse()
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.False(t, c.Cached())

	var inv matrix.Matrix
	var err error
	require.NotPanics(t, func() { inv, err = invcache.Solve(c) })
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0.5, 0}, {0, 0.5}}, inv.(*matrix.Dense).ToRows())
	assert.Equal(t, 1, ci.calls)
}

func TestSetValue_ClearsInverse(t *testing.T) {
	t.Parallel()

	logger, h := memLogger()
	c := invcache.New(dense(t, [][]float64{{2, 0}, {0, 2}}), invcache.WithLogger(logger))
	c.SetInverse(dense(t, [][]float64{{0.5, 0}, {0, 0.5}}))
	require.True(t, c.Cached())

	M2 := dense(t, [][]float64{{4, 0}, {0, 4}})
	c.SetValue(M2)

	_, ok := c.Inverse()
	assert.False(t, ok)
	assert.Same(t, M2, c.Value())
	require.Len(t, h.Entries, 1)
	assert.Equal(t, log.DebugLevel, h.Entries[0].Level)
}

func TestSetValue_SameMatrixStillInvalidates(t *testing.T) {
	t.Parallel()

	A := dense(t, [][]float64{{2, 0}, {0, 2}})
	c := invcache.New(A)
	c.SetInverse(A)
	c.SetValue(A)

	assert.False(t, c.Cached())
}

func TestOptions_PanicOnNil(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { invcache.WithInverter(nil) })
	assert.Panics(t, func() { invcache.WithLogger(nil) })
}
