// SPDX-License-Identifier: MIT

package invcache_test

import (
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/text"

	"github.com/katalvlaran/matcache/invcache"
	"github.com/katalvlaran/matcache/matrix"
)

// ExampleSolve computes an inverse once and serves the second request from the cell.
func ExampleSolve() {
	// Diagnostics go to stderr so they stay out of the example output.
	logger := &log.Logger{Handler: text.New(os.Stderr), Level: log.InfoLevel}

	A, _ := matrix.NewDenseFrom([][]float64{{2, 0}, {0, 2}})
	c := invcache.New(A, invcache.WithLogger(logger))

	inv, _ := invcache.Solve(c)
	fmt.Print(inv)

	again, _ := invcache.Solve(c)
	fmt.Println(inv == again, c.Cached())

	c.SetValue(A)
	fmt.Println(c.Cached())
	// Output:
	// [0.5, 0]
	// [0, 0.5]
	// true true
	// false
}
