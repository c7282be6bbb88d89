// SPDX-License-Identifier: MIT

// Package matrix - ownership lifecycle of Dense: copy, move, release, resize.
//
// State model:
//   - Populated: s != nil, s.r > 0, s.c > 0, len(s.data) == s.r*s.c.
//   - Empty:     s == nil. Reached via Take, MoveFrom (as source) or Release.
//
// Every transition that builds a new store finishes building it before the
// old one is dropped, so a failed precondition never leaves a half-updated
// matrix behind.

package matrix

const (
	ctxCopyFrom = "CopyFrom"
	ctxMoveFrom = "MoveFrom"
	ctxResize   = "Resize"
	ctxSetRows  = "SetRows"
	ctxSetCols  = "SetCols"
)

// cloneStore deep-copies a populated store.
func cloneStore(s *store) *store {
	cp := make([]float64, len(s.data))
	copy(cp, s.data)

	return &store{r: s.r, c: s.c, data: cp}
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Cloning an Empty matrix yields a new Empty matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	if m.s == nil {
		return m.derive(nil)
	}

	return m.derive(cloneStore(m.s))
}

// Take moves m's store into a new Dense without copying; m becomes Empty.
// Complexity: O(1).
func (m *Dense) Take() *Dense {
	out := m.derive(m.s)
	m.s = nil

	return out
}

// adoptPolicy copies src's tolerance and NaN/Inf guard onto m.
func (m *Dense) adoptPolicy(src *Dense) {
	m.eps = src.eps
	m.validateNaNInf = src.validateNaNInf
}

// Release drops the store. Idempotent; a no-op on an Empty matrix.
func (m *Dense) Release() {
	m.s = nil
}

// CopyFrom replaces m's contents and numeric policy with a deep copy of src
// (copy-assignment); afterwards m is indistinguishable from src.Clone().
// Implementation:
//   - Stage 1: identity check; m == src is a no-op.
//   - Stage 2: validate src (non-nil, populated) before touching m.
//   - Stage 3: clone src's store, then swap it in together with src's policy.
//
// Errors: ErrNilMatrix, ErrEmpty (src is Empty; m is left unchanged).
// Complexity: O(r*c).
func (m *Dense) CopyFrom(src *Dense) error {
	if m == src {
		return nil
	}
	if err := validatePopulated(src); err != nil {
		return matrixErrorf(ctxCopyFrom, err)
	}
	m.s = cloneStore(src.s)
	m.adoptPolicy(src)

	return nil
}

// MoveFrom transfers src's store and numeric policy into m (move-assignment);
// src becomes Empty and keeps its own policy. m's previous store is dropped.
// Moving from an Empty src leaves m Empty.
// m == src is a no-op.
//
// Errors: ErrNilMatrix.
// Complexity: O(1).
func (m *Dense) MoveFrom(src *Dense) error {
	if m == src {
		return nil
	}
	if err := validateNotNil(src); err != nil {
		return matrixErrorf(ctxMoveFrom, err)
	}
	m.s = src.s
	m.adoptPolicy(src)
	src.s = nil

	return nil
}

// Resize changes the shape to rows×cols.
// Implementation:
//   - Stage 1: validate state, then rows>0 (ErrInvalidRowSize), then cols>0 (ErrInvalidColSize).
//   - Stage 2: allocate a zero-filled rows×cols store.
//   - Stage 3: copy the overlap [0,min(r,rows)) × [0,min(c,cols)); swap stores.
//
// Behavior highlights:
//   - Growth zero-fills new cells; shrink discards cells outside the overlap.
//
// Complexity: O(rows*cols).
func (m *Dense) Resize(rows, cols int) error {
	return m.resize(ctxResize, rows, cols)
}

// SetRows changes the row count, keeping the column count.
// Errors: ErrEmpty, ErrInvalidRowSize.
func (m *Dense) SetRows(rows int) error {
	if err := validatePopulated(m); err != nil {
		return matrixErrorf(ctxSetRows, err)
	}

	return m.resize(ctxSetRows, rows, m.s.c)
}

// SetCols changes the column count, keeping the row count.
// Errors: ErrEmpty, ErrInvalidColSize.
func (m *Dense) SetCols(cols int) error {
	if err := validatePopulated(m); err != nil {
		return matrixErrorf(ctxSetCols, err)
	}

	return m.resize(ctxSetCols, m.s.r, cols)
}

func (m *Dense) resize(tag string, rows, cols int) error {
	if err := validatePopulated(m); err != nil {
		return matrixErrorf(tag, err)
	}
	if err := validateResize(rows, cols); err != nil {
		return matrixErrorf(tag, err)
	}
	if rows == m.s.r && cols == m.s.c {
		return nil
	}

	next := newStore(rows, cols)
	keepR, keepC := min(m.s.r, rows), min(m.s.c, cols)
	for i := 0; i < keepR; i++ {
		copy(next.data[i*cols:i*cols+keepC], m.s.data[i*m.s.c:i*m.s.c+keepC])
	}
	m.s = next

	return nil
}
