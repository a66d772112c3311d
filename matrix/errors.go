// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every kernel returns these sentinels (possibly wrapped with a call-site
// tag) and tests match them via errors.Is. No exported function panics on a
// user-triggered condition.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Wrap with
// fmt.Errorf("ctx: %w", ErrX) at the nearest detection site; callers still
// use errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// empty -> non-square -> dimension mismatch -> index -> arithmetic.

var (
	// ErrEmpty is returned when a matrix without any row is ingested.
	ErrEmpty = errors.New("matrix: matrix is empty")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub/Mul of matrices with different sizes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDivideByZero is returned by Div when the divisor is zero.
	ErrDivideByZero = errors.New("matrix: division by zero")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
