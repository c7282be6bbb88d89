package matrix_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densemat/matrix"
)

// TestSentinelCategories pins the logic / invalid-argument split of every kind.
func TestSentinelCategories(t *testing.T) {
	logic := []error{
		matrix.ErrDifferentDimensions,
		matrix.ErrDimensionMismatch,
		matrix.ErrNonSquare,
		matrix.ErrSingular,
		matrix.ErrTooSmallForComplement,
		matrix.ErrEmpty,
	}
	invalid := []error{
		matrix.ErrOutOfRange,
		matrix.ErrInvalidDimensions,
		matrix.ErrInvalidRowSize,
		matrix.ErrInvalidColSize,
		matrix.ErrNilMatrix,
		matrix.ErrNaNInf,
	}
	for _, err := range logic {
		assert.ErrorIs(t, err, matrix.ErrLogic, err.Error())
		assert.NotErrorIs(t, err, matrix.ErrInvalidArgument, err.Error())
	}
	for _, err := range invalid {
		assert.ErrorIs(t, err, matrix.ErrInvalidArgument, err.Error())
		assert.NotErrorIs(t, err, matrix.ErrLogic, err.Error())
	}
}

// TestSentinelsAreDistinct ensures no two sentinels match each other.
func TestSentinelsAreDistinct(t *testing.T) {
	all := []error{
		matrix.ErrDifferentDimensions, matrix.ErrDimensionMismatch, matrix.ErrNonSquare,
		matrix.ErrSingular, matrix.ErrTooSmallForComplement, matrix.ErrOutOfRange,
		matrix.ErrInvalidDimensions, matrix.ErrInvalidRowSize, matrix.ErrInvalidColSize,
		matrix.ErrEmpty, matrix.ErrNilMatrix, matrix.ErrNaNInf,
	}
	for i, a := range all {
		for j, b := range all {
			if i != j {
				require.False(t, errors.Is(a, b), "%v matched %v", a, b)
			}
		}
	}
}

// TestKindMessages pins the canonical message table.
func TestKindMessages(t *testing.T) {
	cases := map[matrix.Kind]string{
		matrix.KindDifferentDimensions:   "Different matrix sizes.",
		matrix.KindDimensionMismatch:     "The number of columns of the first matrix is not equal to the number of rows of the second matrix.",
		matrix.KindNotSquare:             "The matrix is not square.",
		matrix.KindSingular:              "The matrix determinant is 0.",
		matrix.KindTooSmallForComplement: "The matrix size for a compute algebraic complement matrix should be at least 2.",
		matrix.KindOutOfRange:            "Index outside the matrix.",
		matrix.KindIncorrectSize:         "The matrix size is incorrect.",
		matrix.KindInvalidRowSize:        "The new row size is incorrect.",
		matrix.KindInvalidColSize:        "The new column size is incorrect.",
	}
	for k, want := range cases {
		require.Equal(t, want, k.Message())
		require.Equal(t, want, k.String())
	}
	require.Equal(t, "Unknown error", matrix.Kind(200).Message())
	require.Equal(t, "matrix: The matrix is not square.", matrix.ErrNonSquare.Error())
}

// TestKindOf extracts kinds through wrapping layers.
func TestKindOf(t *testing.T) {
	_, err := mustDense(t, 2, 3).Inverse()
	k, ok := matrix.KindOf(err)
	require.True(t, ok)
	require.Equal(t, matrix.KindNotSquare, k)
	require.Contains(t, err.Error(), "Inverse: Determinant:")

	wrapped := fmt.Errorf("caller: %w", err)
	k, ok = matrix.KindOf(wrapped)
	require.True(t, ok)
	require.Equal(t, matrix.KindNotSquare, k)

	_, ok = matrix.KindOf(errors.New("other"))
	require.False(t, ok)
	_, ok = matrix.KindOf(nil)
	require.False(t, ok)

	var me *matrix.Error
	require.ErrorAs(t, err, &me)
	require.Equal(t, matrix.KindNotSquare, me.Kind())
}
