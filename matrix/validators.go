// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/empty/shape/index checks here.
//  - Validators return sentinels tagged with the validator name; kernels wrap
//    once more with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure, O(1), and allocate nothing on success.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil → Populated → Shape.
//    The same sequence defines the error priority seen by callers.

package matrix

import (
	"fmt"
	"math/bits"
)

// maxElements caps rows*cols so the flat buffer length never overflows int
// and stays within what the runtime can allocate (2^44 elements on 64-bit,
// 2^28 on 32-bit).
const maxElements = 1 << (bits.UintSize/2 + 12)

// shapeFits reports whether a positive rows×cols buffer is addressable.
func shapeFits(rows, cols int) bool {
	return rows <= maxElements && cols <= maxElements/rows
}

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateNotNil ensures the matrix pointer is non-nil.
func validateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// validatePopulated ensures m is non-nil and holds a store.
func validatePopulated(m *Dense) error {
	if err := validateNotNil(m); err != nil {
		return err
	}
	if m.s == nil {
		return validatorErrorf("ValidatePopulated", ErrEmpty)
	}

	return nil
}

// ValidateSameShape ensures a and b are populated and have equal dimensions.
//
// Errors: ErrNilMatrix, ErrEmpty, ErrDifferentDimensions.
// Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if err := validatePopulated(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := validatePopulated(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.s.r != b.s.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDifferentDimensions)
	}
	if a.s.c != b.s.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDifferentDimensions)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows for the product a×b.
//
// Errors: ErrNilMatrix, ErrEmpty, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if err := validatePopulated(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := validatePopulated(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.s.c != b.s.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare ensures m is populated and Rows == Cols.
//
// Errors: ErrNilMatrix, ErrEmpty, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := validatePopulated(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.s.r != m.s.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// validateIndex checks 0 ≤ row < r and 0 ≤ col < c on a populated store.
// Returns the bare sentinel; public indexers wrap it with coordinates.
func validateIndex(s *store, row, col int) error {
	if row < 0 || row >= s.r {
		return ErrOutOfRange
	}
	if col < 0 || col >= s.c {
		return ErrOutOfRange
	}

	return nil
}

// validateResize checks a requested target shape; rows are checked first.
// A shape whose element count exceeds maxElements is rejected on the axis
// that pushes it over.
func validateResize(rows, cols int) error {
	if rows <= 0 || rows > maxElements {
		return ErrInvalidRowSize
	}
	if cols <= 0 || !shapeFits(rows, cols) {
		return ErrInvalidColSize
	}

	return nil
}
