// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densemat/matrix"
)

// mustDense ALLOCATES an r×c zero matrix or fails the test.
func mustDense(tb testing.TB, r, c int, opts ...matrix.Option) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c, opts...)
	require.NoError(tb, err)

	return m
}

// mustValues builds an r×c matrix from row-major values or fails the test.
func mustValues(tb testing.TB, r, c int, values ...float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewFromValues(r, c, values)
	require.NoError(tb, err)

	return m
}

// fillDenseRand fills m with deterministic values in [-1, 1).
func fillDenseRand(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	r, c := m.Shape()
	values := make([]float64, r*c)
	for i := range values {
		values[i] = rng.Float64()*2 - 1
	}
	require.NoError(tb, m.SetValues(values))
}

// randomInvertible returns a strictly diagonally dominant n×n matrix
// (random entries in [-1,1), diagonal shifted by n+1), hence non-singular.
func randomInvertible(tb testing.TB, n int, seed int64) *matrix.Dense {
	tb.Helper()
	m := mustDense(tb, n, n)
	fillDenseRand(tb, m, seed)
	for i := 0; i < n; i++ {
		p, err := m.Ref(i, i)
		require.NoError(tb, err)
		*p += float64(n + 1)
	}

	return m
}

// requireValues asserts the row-major contents of m exactly.
func requireValues(tb testing.TB, m *matrix.Dense, want ...float64) {
	tb.Helper()
	got := make([]float64, 0, len(want))
	m.Do(func(_, _ int, v float64) bool {
		got = append(got, v)
		return true
	})
	require.Equal(tb, want, got)
}
