// Package matrix is the exact integer 3×3 kernel behind lattice projection.
//
// The matrix package provides:
//
//   - Det3 (rule of Sarrus) and Det3Checked, which reports ErrOverflow
//     instead of wrapping.
//   - Adjugate and UnimodularInverse: an inverse is returned only when the
//     determinant is ±1, so it stays integral and no division happens.
//   - MulVec and Mul on column-stored Mat3 values.
//
// Columns are Vec3 values holding the counts of letters 0, 1 and 2 of a
// step vector, so [σ | v | w] with σ a step signature is built directly
// from count vectors.
//
// All operations are O(1) and allocation-free.
package matrix
