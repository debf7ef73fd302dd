// SPDX-License-Identifier: MIT
// Package matrix: central validation checks.
//
// Validators return plain sentinels so each public entry point wraps them with
// its own operation tag via matrixErrorf. All checks are O(1) and allocate nothing.

package matrix

// validateShape rejects negative dimensions.
// Used by every constructor. Returns ErrBadShape when rows < 0 or cols < 0.
//
// Parameters:
//   - rows, cols: requested dimensions; 0 is allowed (empty matrices are valid).
//
// Complexity: O(1) time and space.
func validateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return ErrBadShape
	}

	return nil
}

// validateIndex checks 0 ≤ i < rows and 0 ≤ j < cols.
// Used by the element accessors and NewSparse. Returns ErrOutOfRange otherwise.
//
// Parameters:
//   - rows, cols: dimensions of the addressed matrix.
//   - i, j:       zero-based row and column index.
//
// Complexity: O(1) time and space.
func validateIndex(rows, cols, i, j int) error {
	if i < 0 || i >= rows || j < 0 || j >= cols {
		return ErrOutOfRange
	}

	return nil
}

// validateSameShape is the Add/Sub compatibility guard.
// Returns ErrDimensionMismatch unless both operands are aRows×aCols.
//
// Parameters:
//   - aRows, aCols: shape of the receiver.
//   - bRows, bCols: shape of the operand.
//
// Complexity: O(1) time and space.
func validateSameShape(aRows, aCols, bRows, bCols int) error {
	if aRows != bRows || aCols != bCols {
		return ErrDimensionMismatch
	}

	return nil
}

// validateMulShape requires a.Cols == b.Rows.
// Used by Mul and MulWith. Returns ErrDimensionMismatch otherwise.
//
// Parameters:
//   - aCols: column count of the left factor.
//   - bRows: row count of the right factor.
//
// Complexity: O(1) time and space.
func validateMulShape(aCols, bRows int) error {
	if aCols != bRows {
		return ErrDimensionMismatch
	}

	return nil
}

// validateSquare requires rows == cols.
// Used by Determinant and the matrix group predicates. Returns ErrNonSquare otherwise.
//
// Parameters:
//   - rows, cols: shape to check.
//
// Complexity: O(1) time and space.
func validateSquare(rows, cols int) error {
	if rows != cols {
		return ErrNonSquare
	}

	return nil
}

// validateRange checks a half-open interval [lo, hi) inside [0, n].
// Used by Submatrix. Returns ErrOutOfRange for reversed or escaping bounds.
//
// Parameters:
//   - lo: first index, inclusive.
//   - hi: last index, exclusive; hi == lo selects nothing.
//   - n:  extent of the dimension being sliced.
//
// Complexity: O(1) time and space.
func validateRange(lo, hi, n int) error {
	if lo < 0 || hi < lo || hi > n {
		return ErrOutOfRange
	}

	return nil
}
