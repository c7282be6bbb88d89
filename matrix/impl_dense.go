// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Ref return errors instead of panicking.
//   - Model the populated/empty duality explicitly: a Dense either owns a store or has none.
//   - Enforce the numeric policy (optional rejection of NaN/Inf on ingestion) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Ref: O(1); SetValues: O(r*c); Equal: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"        // method tag used in error wrappers
	ctxSet       = "Set"       // method tag used in error wrappers
	ctxRef       = "Ref"       // method tag used in error wrappers
	ctxSetValues = "SetValues" // method tag used in error wrappers
	ctxNewDense  = "NewDense"  // ctor tag
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtEmpty    = "[]\n"
)

// Dense is a dense row-major matrix of float64 values.
//   - s is the populated state (shape + flat buffer); nil means Empty.
//   - eps and validateNaNInf are the numeric policy resolved from Options.
//
// A Dense exclusively owns its store. It is not safe for concurrent mutation;
// distinct instances never share storage and may be used in parallel.
type Dense struct {
	s              *store  // nil when moved-from or released
	eps            float64 // tolerance for Equal and the singular check
	validateNaNInf bool    // reject NaN/Inf in Set/SetValues when true
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 and that rows*cols fits the
//     addressable buffer; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer and resolve the numeric policy.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 || !shapeFits(rows, cols) {
		return nil, matrixErrorf(ctxNewDense, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions))
	}
	o := gatherOptions(opts...)

	return &Dense{
		s:              newStore(rows, cols),
		eps:            o.eps,
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// New returns a DefaultRows×DefaultCols (3×3) zero matrix.
func New(opts ...Option) *Dense {
	m, _ := NewDense(DefaultRows, DefaultCols, opts...) // constant shape cannot fail

	return m
}

// NewFromValues creates a rows×cols matrix and loads values row-major.
// Errors: ErrInvalidDimensions, ErrDifferentDimensions, ErrNaNInf (guard on).
func NewFromValues(rows, cols int, values []float64, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if err = m.SetValues(values); err != nil {
		return nil, err
	}

	return m, nil
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	I, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.s.data[i*n+i] = 1.0
	}

	return I, nil
}

// newStore allocates a zero-filled r×c store; callers validate the shape.
func newStore(r, c int) *store {
	return &store{r: r, c: c, data: make([]float64, r*c)}
}

// derive wraps s in a new Dense that inherits m's numeric policy.
func (m *Dense) derive(s *store) *Dense {
	return &Dense{s: s, eps: m.eps, validateNaNInf: m.validateNaNInf}
}

// Rows returns the row count, or 0 for an Empty matrix.
func (m *Dense) Rows() int {
	if m.s == nil {
		return 0
	}

	return m.s.r
}

// Cols returns the column count, or 0 for an Empty matrix.
func (m *Dense) Cols() int {
	if m.s == nil {
		return 0
	}

	return m.s.c
}

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// IsEmpty reports whether m holds no store (moved-from or released).
func (m *Dense) IsEmpty() bool { return m.s == nil }

// Epsilon returns the tolerance this matrix compares with.
func (m *Dense) Epsilon() float64 { return m.eps }

// offset validates state and indices and returns the flat offset.
func (m *Dense) offset(method string, row, col int) (int, error) {
	if m.s == nil {
		return 0, denseErrorf(method, row, col, ErrEmpty)
	}
	if err := validateIndex(m.s, row, col); err != nil {
		return 0, denseErrorf(method, row, col, err)
	}

	return row*m.s.c + col, nil
}

// At returns the value at (row, col).
// Errors: ErrEmpty, ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.offset(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.s.data[off], nil
}

// Set stores v at (row, col).
// Errors: ErrEmpty, ErrOutOfRange, ErrNaNInf (when the guard is on).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.offset(ctxSet, row, col)
	if err != nil {
		return err
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.s.data[off] = v

	return nil
}

// Ref returns a pointer to the stored element for in-place mutation.
// The pointer is valid until the next operation that replaces the store
// (Mul, Resize, SetRows, SetCols, CopyFrom, MoveFrom, Take, Release).
// Writes through the pointer bypass the NaN/Inf guard.
func (m *Dense) Ref(row, col int) (*float64, error) {
	off, err := m.offset(ctxRef, row, col)
	if err != nil {
		return nil, err
	}

	return &m.s.data[off], nil
}

// SetValues fills the matrix row-major from values.
// Implementation:
//   - Stage 1: state and length check (len(values) must equal rows*cols).
//   - Stage 2: numeric policy scan, before anything is written.
//   - Stage 3: single copy into the store.
//
// Errors: ErrNilMatrix, ErrEmpty, ErrDifferentDimensions, ErrNaNInf.
// Complexity: O(r*c).
func (m *Dense) SetValues(values []float64) error {
	if err := validatePopulated(m); err != nil {
		return matrixErrorf(ctxSetValues, err)
	}
	if len(values) != len(m.s.data) {
		return matrixErrorf(ctxSetValues, fmt.Errorf("got %d values for %dx%d: %w",
			len(values), m.s.r, m.s.c, ErrDifferentDimensions))
	}
	if m.validateNaNInf {
		for idx, v := range values {
			if isNonFinite(v) {
				return denseErrorf(ctxSetValues, idx/m.s.c, idx%m.s.c, ErrNaNInf)
			}
		}
	}
	copy(m.s.data, values)

	return nil
}

// SameShape reports whether m and other have identical dimensions.
// Two Empty matrices share the 0×0 shape; nil never matches.
func (m *Dense) SameShape(other *Dense) bool {
	if m == nil || other == nil {
		return false
	}

	return m.Rows() == other.Rows() && m.Cols() == other.Cols()
}

// Equal reports whether shapes match and every pair of elements differs by
// at most max(m.eps, other.eps) in absolute value, so a.Equal(b) == b.Equal(a).
// Complexity: O(r*c) worst case; stops at the first differing element.
func (m *Dense) Equal(other *Dense) bool {
	if !m.SameShape(other) {
		return false
	}
	if m.s == nil {
		return true // both Empty
	}
	eps := max(m.eps, other.eps)
	for idx, v := range m.s.data {
		if math.Abs(v-other.s.data[idx]) > eps {
			return false
		}
	}

	return true
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. No-op on an Empty matrix.
// Complexity: O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	if m.s == nil {
		return
	}
	var i, j, base int
	for i = 0; i < m.s.r; i++ {
		base = i * m.s.c
		for j = 0; j < m.s.c; j++ {
			if !f(i, j, m.s.data[base+j]) {
				return
			}
		}
	}
}

// String HUMAN-READABLE dump of rows for diagnostics.
// An Empty matrix renders as "[]\n".
// Complexity: O(r*c).
func (m *Dense) String() string {
	if m.s == nil {
		return _fmtEmpty
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.s.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.s.c
		for j = 0; j < m.s.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.s.data[base+j]))
			if j+1 < m.s.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
