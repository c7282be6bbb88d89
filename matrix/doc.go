// Package matrix offers a dense float64 matrix with classic cofactor-based
// linear algebra.
//
// The matrix package provides:
//
//   - Dense: a row-major rows×cols store with bounds-checked At/Set/Ref,
//     row-major bulk ingestion (SetValues) and tolerance-based Equal.
//   - An explicit ownership lifecycle: Clone (deep copy), Take/MoveFrom
//     (transfer, leaving the source Empty), CopyFrom, Release and Resize.
//   - Arithmetic in place (Add, Sub, Scale, Mul) and out of place
//     (Sum, Diff, Scaled, Product).
//   - Transpose, Minor, Determinant (cofactor expansion), CalcComplements
//     and Inverse (adjugate over determinant).
//
// Every failure is a sentinel error (ErrNonSquare, ErrSingular, ...) wrapped
// with operation context; classify with errors.Is, KindOf or the category
// sentinels ErrLogic and ErrInvalidArgument.
//
// Determinant and Inverse are O(n!) by construction and suit small matrices.
// For large systems convert with the interop sub-package.
package matrix
