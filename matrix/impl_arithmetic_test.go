package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densemat/matrix"
)

// TestAddSubInPlace checks element-wise accumulation on the receiver.
func TestAddSubInPlace(t *testing.T) {
	a := mustValues(t, 2, 2, 1, 2, 3, 4)
	b := mustValues(t, 2, 2, 10, 20, 30, 40)

	require.NoError(t, a.Add(b))
	requireValues(t, a, 11, 22, 33, 44)

	require.NoError(t, a.Sub(b))
	requireValues(t, a, 1, 2, 3, 4)
	requireValues(t, b, 10, 20, 30, 40) // operand untouched

	require.NoError(t, a.Add(a)) // self-operand
	requireValues(t, a, 2, 4, 6, 8)
}

// TestAddSubDifferentDimensions verifies the error and the no-partial-mutation rule.
func TestAddSubDifferentDimensions(t *testing.T) {
	a := mustValues(t, 2, 2, 1, 2, 3, 4)
	b := mustDense(t, 2, 3)

	err := a.Add(b)
	require.ErrorIs(t, err, matrix.ErrDifferentDimensions)
	require.ErrorIs(t, err, matrix.ErrLogic)
	require.ErrorIs(t, a.Sub(b), matrix.ErrDifferentDimensions)
	require.ErrorIs(t, a.Add(nil), matrix.ErrNilMatrix)
	requireValues(t, a, 1, 2, 3, 4)

	_, err = matrix.Sum(a, b)
	require.ErrorIs(t, err, matrix.ErrDifferentDimensions)
	_, err = matrix.Diff(a, b)
	require.ErrorIs(t, err, matrix.ErrDifferentDimensions)
}

// TestScale multiplies every element in place and out of place.
func TestScale(t *testing.T) {
	a := mustValues(t, 2, 2, 1, -2, 3, 0.5)
	out, err := matrix.Scaled(a, 2)
	require.NoError(t, err)
	requireValues(t, out, 2, -4, 6, 1)
	requireValues(t, a, 1, -2, 3, 0.5)

	a.Scale(-1)
	requireValues(t, a, -1, 2, -3, -0.5)

	_, err = matrix.Scaled(nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMulScenario checks [[1,2],[3,4]] × [[5,6],[7,8]].
func TestMulScenario(t *testing.T) {
	a := mustValues(t, 2, 2, 1, 2, 3, 4)
	b := mustValues(t, 2, 2, 5, 6, 7, 8)

	p, err := matrix.Product(a, b)
	require.NoError(t, err)
	requireValues(t, p, 19, 22, 43, 50)
	requireValues(t, a, 1, 2, 3, 4) // operands untouched

	require.NoError(t, a.Mul(b))
	require.True(t, a.Equal(p))
}

// TestMulReshapes verifies the product shape r×n · n×c = r×c.
func TestMulReshapes(t *testing.T) {
	a := mustValues(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := mustValues(t, 3, 1, 1, 0, -1)

	require.NoError(t, a.Mul(b))
	require.Equal(t, 2, a.Rows())
	require.Equal(t, 1, a.Cols())
	requireValues(t, a, -2, -2)
}

// TestMulDimensionMismatch checks 2×3 × 4×2.
func TestMulDimensionMismatch(t *testing.T) {
	a := mustDense(t, 2, 3)
	b := mustDense(t, 4, 2)
	fillDenseRand(t, a, 7)
	before := a.Clone()

	err := a.Mul(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.True(t, a.Equal(before))
	require.Equal(t, 3, a.Cols())

	_, err = matrix.Product(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	k, ok := matrix.KindOf(err)
	require.True(t, ok)
	require.Equal(t, matrix.KindDimensionMismatch, k)
}

// TestAddSubRoundTrip checks A + B - B == A and A + B == B + A on random data.
func TestAddSubRoundTrip(t *testing.T) {
	for _, shape := range [][2]int{{1, 1}, {2, 5}, {4, 4}, {7, 3}} {
		t.Run(fmt.Sprintf("%dx%d", shape[0], shape[1]), func(t *testing.T) {
			a := mustDense(t, shape[0], shape[1])
			b := mustDense(t, shape[0], shape[1])
			fillDenseRand(t, a, 101)
			fillDenseRand(t, b, 202)

			ab, err := matrix.Sum(a, b)
			require.NoError(t, err)
			back, err := matrix.Diff(ab, b)
			require.NoError(t, err)
			require.True(t, back.Equal(a))

			ba, err := matrix.Sum(b, a)
			require.NoError(t, err)
			require.True(t, ab.Equal(ba))
		})
	}
}

// TestMulIdentityNeutral checks I·A == A·I == A.
func TestMulIdentityNeutral(t *testing.T) {
	a := mustDense(t, 4, 4)
	fillDenseRand(t, a, 99)
	I, err := matrix.IdentityLike(a)
	require.NoError(t, err)

	left, err := matrix.Product(I, a)
	require.NoError(t, err)
	right, err := matrix.Product(a, I)
	require.NoError(t, err)
	require.True(t, left.Equal(a))
	require.True(t, right.Equal(a))
}
