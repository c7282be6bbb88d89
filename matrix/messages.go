// SPDX-License-Identifier: MIT

package matrix

// messages maps each Kind to its human-readable text. Index == Kind.
var messages = [kindCount]string{
	KindDifferentDimensions:   "Different matrix sizes.",
	KindDimensionMismatch:     "The number of columns of the first matrix is not equal to the number of rows of the second matrix.",
	KindNotSquare:             "The matrix is not square.",
	KindSingular:              "The matrix determinant is 0.",
	KindTooSmallForComplement: "The matrix size for a compute algebraic complement matrix should be at least 2.",
	KindOutOfRange:            "Index outside the matrix.",
	KindIncorrectSize:         "The matrix size is incorrect.",
	KindInvalidRowSize:        "The new row size is incorrect.",
	KindInvalidColSize:        "The new column size is incorrect.",
	KindEmpty:                 "The matrix is empty (moved-from or released).",
	KindNilMatrix:             "The matrix is nil.",
	KindNaNInf:                "NaN or Inf value encountered.",
}

// unknownMessage is returned for kinds outside the table.
const unknownMessage = "Unknown error"

// Message returns the canonical text for k, or "Unknown error".
func (k Kind) Message() string {
	if k >= kindCount {
		return unknownMessage
	}

	return messages[k]
}
