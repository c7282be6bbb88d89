// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by storage, kernels and error reporting.
// Errors and options live in dedicated files (errors.go, options.go);
// canonical messages live in messages.go.
package matrix

// Kind is the symbolic failure kind carried by every sentinel error.
// The numeric values are stable and index the message table.
type Kind uint8

const (
	KindDifferentDimensions   Kind = iota // Add/Sub/SetValues size mismatch
	KindDimensionMismatch                 // a.Cols != b.Rows in Mul
	KindNotSquare                         // square matrix required
	KindSingular                          // |det| within eps of zero
	KindTooSmallForComplement             // CalcComplements on 1×1
	KindOutOfRange                        // bad (row, col) index
	KindIncorrectSize                     // non-positive size at construction
	KindInvalidRowSize                    // non-positive rows on resize
	KindInvalidColSize                    // non-positive cols on resize
	KindEmpty                             // moved-from or released matrix
	KindNilMatrix                         // nil *Dense argument
	KindNaNInf                            // non-finite value under the ingestion guard

	kindCount // sentinel for table sizing; keep last
)

// Category classifies the kind. The first five kinds plus KindEmpty describe
// operands that make the operation undefined; the rest describe bad inputs.
func (k Kind) Category() Category {
	switch k {
	case KindDifferentDimensions, KindDimensionMismatch, KindNotSquare,
		KindSingular, KindTooSmallForComplement, KindEmpty:
		return CategoryLogic
	default:
		return CategoryInvalidArgument
	}
}

// String returns the canonical message; Kind satisfies fmt.Stringer.
func (k Kind) String() string { return k.Message() }

// binaryOp tags the element-wise/product operations that share the single
// validate-then-apply routine in impl_arithmetic.go.
type binaryOp uint8

const (
	opTagAdd binaryOp = iota
	opTagSub
	opTagMul
)

// store is the populated state of a Dense: exact shape plus a flat
// row-major buffer with len(data) == r*c. A Dense without a store is Empty.
type store struct {
	r, c int
	data []float64
}
