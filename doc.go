// Package densemat is a small dense-matrix toolkit: a float64 matrix type
// with an explicit ownership lifecycle and textbook linear algebra.
//
// What is inside?
//
//	matrix/           Dense, arithmetic, transpose, minor, determinant,
//	                   algebraic complements, inverse; sentinel errors & options
//	matrix/interop/   conversion to and from gonum.org/v1/gonum/mat
//
// Quick example:
//
//	A, _ := matrix.NewFromValues(2, 2, []float64{1, 2, 3, 4})
//	det, _ := A.Determinant()  // -2
//	inv, _ := A.Inverse()      // [[-2, 1], [1.5, -0.5]]
//
// Determinant and inverse use cofactor expansion on purpose: results are
// exact for small integer matrices and the cost grows as n!, so keep inputs
// small or hand large ones to gonum through interop.
//
//	go get github.com/katalvlaran/densemat
package densemat
