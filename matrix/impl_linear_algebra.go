// SPDX-License-Identifier: MIT
// Package matrix provides the cofactor-based linear-algebra kernels of Dense:
// transpose, minor, determinant, algebraic complements and inverse.
//
// Purpose:
//   - Keep the classic textbook algorithms: determinant by cofactor expansion
//     along row 0, inverse as adjugate / determinant.
//   - Validate once at the public surface; recurse on unexported store helpers.
//
// Numeric policy:
//   - No pivoting and no elimination. Determinant costs O(n!) and allocates a
//     minor per expansion term, so these kernels are meant for small matrices
//     (n ≲ 10). Callers needing LU/QR should convert via matrix/interop.
//   - Singularity is |det| ≤ eps of the receiver (DefaultEpsilon = 1e-7).

package matrix

import (
	"fmt"
	"math"
)

const (
	opTranspose       = "Transpose"
	opMinor           = "Minor"
	opDeterminant     = "Determinant"
	opCalcComplements = "CalcComplements"
	opInverse         = "Inverse"
)

// ZeroSum is the initial value of the expansion accumulator.
const ZeroSum = 0.0

// Transpose returns a new cols×rows matrix with out[j][i] = m[i][j].
// Errors: ErrNilMatrix, ErrEmpty.
// Complexity: O(r*c).
func (m *Dense) Transpose() (*Dense, error) {
	if err := validatePopulated(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return m.derive(transposeStore(m.s)), nil
}

func transposeStore(s *store) *store {
	out := newStore(s.c, s.r)
	var i, j, base int
	for i = 0; i < s.r; i++ {
		base = i * s.c
		for j = 0; j < s.c; j++ {
			out.data[j*s.r+i] = s.data[base+j]
		}
	}

	return out
}

// Minor returns the (rows-1)×(cols-1) matrix obtained by deleting row and
// col, preserving the relative order of the remaining elements.
//
// Errors:
//   - ErrNilMatrix, ErrEmpty.
//   - ErrOutOfRange when row or col is outside the matrix.
//   - ErrInvalidDimensions when m has a single row or column (no legal result).
//
// Complexity: O(r*c).
func (m *Dense) Minor(row, col int) (*Dense, error) {
	if err := validatePopulated(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if err := validateIndex(m.s, row, col); err != nil {
		return nil, matrixErrorf(opMinor, fmt.Errorf("(%d,%d): %w", row, col, err))
	}
	if m.s.r < 2 || m.s.c < 2 {
		return nil, matrixErrorf(opMinor, ErrInvalidDimensions)
	}

	return m.derive(minorStore(m.s, row, col)), nil
}

// minorStore copies s without row dr and column dc; s must be at least 2×2.
func minorStore(s *store, dr, dc int) *store {
	out := newStore(s.r-1, s.c-1)
	var i, j, base int
	dst := 0
	for i = 0; i < s.r; i++ {
		if i == dr {
			continue
		}
		base = i * s.c
		for j = 0; j < s.c; j++ {
			if j == dc {
				continue
			}
			out.data[dst] = s.data[base+j]
			dst++
		}
	}

	return out
}

// Determinant returns det(m) by cofactor expansion along row 0:
//
//	det = Σ_j (-1)^j · m[0][j] · det(Minor(0, j)),  det([[a]]) = a.
//
// Errors: ErrNilMatrix, ErrEmpty, ErrNonSquare.
// Complexity: O(n!) time, O(n^2) live memory per recursion level.
func (m *Dense) Determinant() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return detStore(m.s), nil
}

// detStore expands a square store recursively along its first row.
func detStore(s *store) float64 {
	if s.r == 1 {
		return s.data[0]
	}
	if s.r == 2 {
		return s.data[0]*s.data[3] - s.data[1]*s.data[2]
	}
	det := ZeroSum
	sign := 1.0
	for j := 0; j < s.c; j++ {
		det += sign * s.data[j] * detStore(minorStore(s, 0, j))
		sign = -sign
	}

	return det
}

// CalcComplements returns the matrix of algebraic complements (cofactors):
//
//	out[i][j] = (-1)^(i+j) · det(Minor(i, j)).
//
// Errors: ErrNilMatrix, ErrEmpty, ErrNonSquare, ErrTooSmallForComplement (1×1).
// Complexity: O(n^2 · (n-1)!).
func (m *Dense) CalcComplements() (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCalcComplements, err)
	}
	if m.s.r < 2 {
		return nil, matrixErrorf(opCalcComplements, ErrTooSmallForComplement)
	}

	return m.derive(complementsStore(m.s)), nil
}

func complementsStore(s *store) *store {
	n := s.r
	out := newStore(n, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			cof := detStore(minorStore(s, i, j))
			if (i+j)%2 == 1 {
				cof = -cof
			}
			out.data[i*n+j] = cof
		}
	}

	return out
}

// Inverse returns m⁻¹ = adj(m) / det(m), where adj(m) = Transpose(CalcComplements(m)).
// Implementation:
//   - Stage 1: compute det (validates square); |det| ≤ eps ⇒ ErrSingular.
//   - Stage 2: 1×1 ⇒ [[1/det]]; otherwise build complements, transpose, scale by 1/det.
//
// Behavior highlights:
//   - Nothing is cached: each call re-derives det and the full cofactor matrix.
//   - m is never mutated.
//
// Errors: ErrNilMatrix, ErrEmpty, ErrNonSquare, ErrSingular.
// Complexity: O(n^2 · (n-1)!) dominated by the complements.
func (m *Dense) Inverse() (*Dense, error) {
	det, err := m.Determinant()
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if math.Abs(det) <= m.eps {
		return nil, matrixErrorf(opInverse, fmt.Errorf("det=%g: %w", det, ErrSingular))
	}
	if m.s.r == 1 {
		out := m.derive(newStore(1, 1))
		out.s.data[0] = 1.0 / det

		return out, nil
	}

	adj := transposeStore(complementsStore(m.s))
	out := m.derive(adj)
	out.Scale(1.0 / det)

	return out, nil
}
