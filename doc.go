// Package matcache memoizes matrix inverses: ask for the inverse of an
// unchanged matrix twice and the second answer comes from the cache.
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/   — Dense float64 matrix, validators, sentinel errors and the
//	            LU-based Inverse kernel (partial pivoting, tunable tolerance)
//	invcache/ — Cell (matrix + cached inverse) and Solve, the
//	            lookup-or-compute accessor
//
// and one command:
//
//	cmd/matinv — inverts a matrix given inline or as YAML, repeating the
//	             request through a Cell so cache hits show in the log
//
// Quick example:
//
//	A, _ := matrix.NewDenseFrom([][]float64{{2, 0}, {0, 2}})
//	c := invcache.New(A)
//	inv, _ := invcache.Solve(c) // computed
//	inv, _ = invcache.Solve(c)  // "getting cached inverse"
//	c.SetValue(B)               // cache cleared
//
//	go get github.com/katalvlaran/matcache
package matcache
