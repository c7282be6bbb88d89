// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Avoid logic duplication; each facade delegates to the canonical method.
//
// Determinism & Policy:
//   - Facades never change loop orders or numeric policy of the underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

import "math"

const (
	opZerosLike    = "ZerosLike"
	opIdentityLike = "IdentityLike"
	opAdjugate     = "Adjugate"
	opAllClose     = "AllClose"
)

// NewZeros returns a new zero-initialized rows×cols matrix.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) {
	return NewDense(rows, cols, opts...)
}

// ZerosLike returns a new zero matrix with the same shape and policy as m.
// Errors: ErrNilMatrix, ErrEmpty.
func ZerosLike(m *Dense) (*Dense, error) {
	if err := validatePopulated(m); err != nil {
		return nil, matrixErrorf(opZerosLike, err)
	}

	return m.derive(newStore(m.s.r, m.s.c)), nil
}

// IdentityLike returns I with dimension Rows(m) and m's policy; requires square m.
// Errors: ErrNilMatrix, ErrEmpty, ErrNonSquare.
func IdentityLike(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opIdentityLike, err)
	}
	n := m.s.r
	I := m.derive(newStore(n, n))
	for i := 0; i < n; i++ {
		I.s.data[i*n+i] = 1.0
	}

	return I, nil
}

// T is an alias for (*Dense).Transpose.
func T(m *Dense) (*Dense, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return m.Transpose()
}

// Det is an alias for (*Dense).Determinant.
func Det(m *Dense) (float64, error) {
	if err := validateNotNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return m.Determinant()
}

// InverseOf is an alias for (*Dense).Inverse (adjugate over determinant).
func InverseOf(m *Dense) (*Dense, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return m.Inverse()
}

// Adjugate returns adj(m) = Transpose(CalcComplements(m)), so that
// m × adj(m) = det(m)·I. Defined for square matrices of size ≥ 2.
// Errors: ErrNilMatrix, ErrEmpty, ErrNonSquare, ErrTooSmallForComplement.
func Adjugate(m *Dense) (*Dense, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	c, err := m.CalcComplements()
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return c.Transpose()
}

// Equal reports a.Equal(b); the tolerance is the larger of the two eps
// values, so the result does not depend on argument order. False if either is nil.
func Equal(a, b *Dense) bool {
	if a == nil {
		return false
	}

	return a.Equal(b)
}

// AllClose reports whether |a-b| ≤ atol + rtol*|b| holds element-wise.
// Unlike Equal it takes explicit tolerances and reports shape problems as errors.
//
// Policy:
//   - Negative tolerances are normalized to their absolute values.
//   - Non-finite tolerances are rejected with ErrNaNInf.
//
// Errors: ErrNaNInf, ErrNilMatrix, ErrEmpty, ErrDifferentDimensions.
// Complexity: O(r*c), early exit on the first violation.
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	bd := b.s.data
	for idx, av := range a.s.data {
		if math.Abs(av-bd[idx]) > atol+rtol*math.Abs(bd[idx]) {
			return false, nil
		}
	}

	return true, nil
}
