// SPDX-License-Identifier: MIT
// Package matrix: sentinel errors of the integer kernel.
// Callers match them with errors.Is; the kernel wraps them with the name of
// the failing operation.

package matrix

import "errors"

var (
	// ErrOverflow indicates an integer kernel result outside the int range.
	ErrOverflow = errors.New("matrix: integer overflow")

	// ErrNotUnimodular indicates an integer inverse request for a matrix whose
	// determinant is not ±1.
	ErrNotUnimodular = errors.New("matrix: determinant is not ±1")
)
