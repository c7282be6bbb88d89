// SPDX-License-Identifier: MIT
// Package matrix provides element-wise addition, subtraction, scalar scaling
// and matrix multiplication on Dense. All in-place methods perform strict
// fail-fast validation before the receiver's store is touched.
//
// Purpose:
//   - In-place kernels (Add/Sub/Scale/Mul) mutate the receiver (compound operators).
//   - Out-of-place facades (Sum/Diff/Product/Scaled) clone the left operand and
//     run the same in-place kernel on the clone.
//   - A single validate-then-apply routine dispatches on an operation tag.

package matrix

// Operation name constants for unified error wrapping.
const (
	opAdd     = "Add"
	opSub     = "Sub"
	opMul     = "Mul"
	opSum     = "Sum"
	opDiff    = "Diff"
	opProduct = "Product"
	opScaled  = "Scaled"
)

// tagName maps an operation tag to its error-context name.
func (op binaryOp) tagName() string {
	switch op {
	case opTagAdd:
		return opAdd
	case opTagSub:
		return opSub
	default:
		return opMul
	}
}

// apply is the shared validate-then-apply routine behind Add, Sub and Mul.
// Implementation:
//   - Stage 1: validate receiver and operand for the given op (no mutation yet).
//   - Stage 2: element-wise accumulate (Add/Sub) or build the product store (Mul).
//
// Behavior highlights:
//   - Deterministic flat loops for Add/Sub; i→k→j for Mul.
//   - other may be m itself (A += A, A *= A); the product is built into a fresh store.
func (m *Dense) apply(op binaryOp, other *Dense) error {
	switch op {
	case opTagAdd, opTagSub:
		if err := ValidateSameShape(m, other); err != nil {
			return matrixErrorf(op.tagName(), err)
		}
		sign := 1.0
		if op == opTagSub {
			sign = -1.0
		}
		src := other.s.data
		for idx := range m.s.data {
			m.s.data[idx] += sign * src[idx]
		}
	case opTagMul:
		if err := ValidateMulCompatible(m, other); err != nil {
			return matrixErrorf(op.tagName(), err)
		}
		m.s = mulStore(m.s, other.s)
	}

	return nil
}

// mulStore computes a×b into a new store (a.c == b.r is assumed).
// Loop order i→k→j keeps both operands on row-major strides.
// Complexity: O(r*n*c).
func mulStore(a, b *store) *store {
	out := newStore(a.r, b.c)
	var i, k, j int
	var aik float64
	var aBase, bBase, oBase int
	for i = 0; i < a.r; i++ {
		aBase = i * a.c
		oBase = i * b.c
		for k = 0; k < a.c; k++ {
			aik = a.data[aBase+k]
			bBase = k * b.c
			for j = 0; j < b.c; j++ {
				out.data[oBase+j] += aik * b.data[bBase+j]
			}
		}
	}

	return out
}

// Add accumulates other into m element-wise (m += other).
// Errors: ErrNilMatrix, ErrEmpty, ErrDifferentDimensions.
// Complexity: O(r*c).
func (m *Dense) Add(other *Dense) error { return m.apply(opTagAdd, other) }

// Sub subtracts other from m element-wise (m -= other).
// Errors: ErrNilMatrix, ErrEmpty, ErrDifferentDimensions.
// Complexity: O(r*c).
func (m *Dense) Sub(other *Dense) error { return m.apply(opTagSub, other) }

// Mul replaces m with the product m×other (m *= other).
// The result has shape m.Rows()×other.Cols().
// Errors: ErrNilMatrix, ErrEmpty, ErrDimensionMismatch.
// Complexity: O(r*n*c).
func (m *Dense) Mul(other *Dense) error { return m.apply(opTagMul, other) }

// Scale multiplies every element by k in place (m *= k). Cannot fail;
// a no-op on an Empty matrix.
// Complexity: O(r*c).
func (m *Dense) Scale(k float64) {
	if m == nil || m.s == nil {
		return
	}
	for idx := range m.s.data {
		m.s.data[idx] *= k
	}
}

// compute clones a and runs the in-place kernel for op on the clone.
func compute(tag string, a, b *Dense, op binaryOp) (*Dense, error) {
	if err := validatePopulated(a); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out := a.Clone()
	if err := out.apply(op, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return out, nil
}

// Sum returns a + b as a new matrix; operands are not mutated.
// Errors: ErrNilMatrix, ErrEmpty, ErrDifferentDimensions.
func Sum(a, b *Dense) (*Dense, error) { return compute(opSum, a, b, opTagAdd) }

// Diff returns a − b as a new matrix; operands are not mutated.
// Errors: ErrNilMatrix, ErrEmpty, ErrDifferentDimensions.
func Diff(a, b *Dense) (*Dense, error) { return compute(opDiff, a, b, opTagSub) }

// Product returns a × b as a new matrix; operands are not mutated.
// Errors: ErrNilMatrix, ErrEmpty, ErrDimensionMismatch.
func Product(a, b *Dense) (*Dense, error) { return compute(opProduct, a, b, opTagMul) }

// Scaled returns k·a as a new matrix; a is not mutated.
// Errors: ErrNilMatrix, ErrEmpty.
func Scaled(a *Dense, k float64) (*Dense, error) {
	if err := validatePopulated(a); err != nil {
		return nil, matrixErrorf(opScaled, err)
	}
	out := a.Clone()
	out.Scale(k)

	return out, nil
}
