// SPDX-License-Identifier: MIT

// Package interop converts between *matrix.Dense and gonum.org/v1/gonum/mat.
//
// Purpose:
//   - Let callers hand matrices to gonum (LU/QR/SVD, BLAS-backed products)
//     without this module reimplementing those algorithms.
//   - Bring gonum results back as *matrix.Dense with an explicit numeric policy.
//
// Both directions copy: the returned value never aliases its source.
package interop

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/densemat/matrix"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum copies m into a new *mat.Dense of the same shape.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil m.
//   - matrix.ErrEmpty for a moved-from or released m.
//
// Complexity: O(r*c).
func ToGonum(m *matrix.Dense) (*mat.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", opToGonum, matrix.ErrNilMatrix)
	}
	if m.IsEmpty() {
		return nil, fmt.Errorf("%s: %w", opToGonum, matrix.ErrEmpty)
	}

	rows, cols := m.Shape()
	buf := make([]float64, 0, rows*cols)
	m.Do(func(_, _ int, v float64) bool {
		buf = append(buf, v)
		return true
	})

	return mat.NewDense(rows, cols, buf), nil
}

// FromGonum copies any gonum mat.Matrix into a new *matrix.Dense.
// opts set the numeric policy of the result (see matrix.WithEpsilon).
//
// Errors:
//   - matrix.ErrNilMatrix for a nil src.
//   - matrix.ErrInvalidDimensions for a zero-sized src.
//   - matrix.ErrNaNInf when src holds non-finite values and the guard is on.
//
// Complexity: O(r*c).
func FromGonum(src mat.Matrix, opts ...matrix.Option) (*matrix.Dense, error) {
	if src == nil {
		return nil, fmt.Errorf("%s: %w", opFromGonum, matrix.ErrNilMatrix)
	}
	rows, cols := src.Dims()
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%s: %dx%d: %w", opFromGonum, rows, cols, matrix.ErrInvalidDimensions)
	}

	values := make([]float64, rows*cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			values[i*cols+j] = src.At(i, j)
		}
	}
	out, err := matrix.NewFromValues(rows, cols, values, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFromGonum, err)
	}

	return out, nil
}
