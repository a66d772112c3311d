// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape checks here.
//  - Return tagged sentinel errors so call sites can wrap uniformly.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil -> Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if a.n != b.n {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) -> NotNil(b) -> SameShape.
// Complexity: O(1).
func ValidateBinarySameShape(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateRows checks that rows describe a non-empty square matrix without
// allocating anything. FromRows performs the same checks before copying.
// Complexity: O(n).
func ValidateRows(rows [][]int) error {
	n := len(rows)
	if n == 0 {
		return validatorErrorf("ValidateRows", ErrEmpty)
	}
	for i, row := range rows {
		if len(row) != n {
			return validatorErrorf(fmt.Sprintf("ValidateRows: row %d", i), ErrNonSquare)
		}
	}

	return nil
}
