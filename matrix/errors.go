// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors and their
// classification. All operations MUST return these sentinels (wrapped with
// context via %w) and tests MUST check them via errors.Is. No operation panics
// on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Public operations wrap these sentinels with an
// operation tag (matrixErrorf) or with cell coordinates (denseErrorf);
// callers still match them with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> empty -> shape/index -> dimension mismatch -> numeric (singular).

// Category splits error kinds into "bad numeric operand" (logic) and
// "bad logical input" (invalid argument) so that validating callers can
// tell them apart from pure-math callers.
type Category uint8

const (
	// CategoryLogic covers operand combinations that make an operation
	// mathematically undefined (shapes, singularity, empty operands).
	CategoryLogic Category = iota
	// CategoryInvalidArgument covers out-of-contract scalar arguments
	// (indices, requested sizes, non-finite values, nil pointers).
	CategoryInvalidArgument
)

// Category sentinels. Every kind sentinel satisfies errors.Is against
// exactly one of them.
var (
	// ErrLogic matches every error of CategoryLogic.
	ErrLogic = errors.New("matrix: logic error")

	// ErrInvalidArgument matches every error of CategoryInvalidArgument.
	ErrInvalidArgument = errors.New("matrix: invalid argument")
)

// Error is the concrete type behind every sentinel of this package.
// Values are created once at package init; compare with errors.Is.
type Error struct {
	kind Kind
}

// Kind reports the symbolic failure kind.
func (e *Error) Kind() Kind { return e.kind }

// Error renders the canonical message from the message table.
func (e *Error) Error() string { return "matrix: " + e.kind.Message() }

// Is lets a kind sentinel match its category sentinel.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrLogic:
		return e.kind.Category() == CategoryLogic
	case ErrInvalidArgument:
		return e.kind.Category() == CategoryInvalidArgument
	}

	return false
}

var (
	// ErrDifferentDimensions indicates that two operands of an element-wise
	// operation (Add/Sub) or a value ingestion differ in size.
	ErrDifferentDimensions error = &Error{kind: KindDifferentDimensions}

	// ErrDimensionMismatch indicates that a.Cols != b.Rows in a product.
	ErrDimensionMismatch error = &Error{kind: KindDimensionMismatch}

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare error = &Error{kind: KindNotSquare}

	// ErrSingular is returned when the determinant is within eps of zero.
	ErrSingular error = &Error{kind: KindSingular}

	// ErrTooSmallForComplement is returned by CalcComplements on a 1×1 matrix.
	ErrTooSmallForComplement error = &Error{kind: KindTooSmallForComplement}

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Ref) MUST return this, not panic.
	ErrOutOfRange error = &Error{kind: KindOutOfRange}

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions error = &Error{kind: KindIncorrectSize}

	// ErrInvalidRowSize is returned by Resize/SetRows for a non-positive row count.
	ErrInvalidRowSize error = &Error{kind: KindInvalidRowSize}

	// ErrInvalidColSize is returned by Resize/SetCols for a non-positive column count.
	ErrInvalidColSize error = &Error{kind: KindInvalidColSize}

	// ErrEmpty indicates use of a matrix whose store was moved out or released.
	ErrEmpty error = &Error{kind: KindEmpty}

	// ErrNilMatrix indicates that a nil *Dense was passed as an argument.
	ErrNilMatrix error = &Error{kind: KindNilMatrix}

	// ErrNaNInf signals a NaN or ±Inf value rejected by the ingestion policy.
	ErrNaNInf error = &Error{kind: KindNaNInf}
)

// KindOf extracts the failure kind from any error returned by this package.
// The second result is false when err does not carry a matrix sentinel.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.kind, true
	}

	return 0, false
}

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Shape: "Dense.<method>(row,col): <underlying>".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
