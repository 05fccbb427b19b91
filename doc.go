// Package matrix is a mutable, one-indexed matrix engine built on
// arbitrary-precision decimal elements.
//
// 🚀 What does it offer?
//
//	A single package that brings together:
//		• Element – exact decimal arithmetic interoperable with float64
//		• Storage – flat row-major data, one-indexed, inclusive clamped slicing
//		• Views – Rows/Columns collections, composable step slices, live
//		  Row/Column lines with pure and in-place arithmetic
//		• Cursor – row-major element iteration with Seek
//		• Linear algebra – determinant, rank, echelon forms, triangular
//		  reductions, inverse and linear-system solving via partial-pivoting
//		  Gaussian elimination
//		• Predicates – square, null, diagonal, unit, triangular, (skew-)
//		  symmetric, orthogonal
//
// ✨ Design notes
//
//   - One-indexed everywhere – At(1,1) is the top-left element, and slice
//     bounds are inclusive with out-of-range stops clamped
//   - Views alias storage – a structural change (resize, delete, in-place
//     transpose or augment) bumps an internal epoch and invalidates every
//     outstanding view; stale views fail with ErrConcurrentModification
//   - Pure vs in-place – every mutating operation X has a pure counterpart
//     returning a fresh result and leaving the receiver untouched
//   - Exact where possible – elements are shopspring/decimal values;
//     float64 values convert via their shortest round-trip representation,
//     and near-zero residue below the round limit counts as zero
//
// The package is single-threaded by contract: no locks are taken, and the
// epoch counter is the only coherence mechanism. Guard a Matrix with your
// own synchronization if you share it across goroutines.
//
//	go get github.com/AnonymouX47/matrix
package matrix
