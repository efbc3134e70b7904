// Package matrix: sentinel error set.
// All operations MUST return these sentinels on user-triggered error
// conditions, and tests MUST check them via errors.Is. Messages carry
// the "matrix: ..." prefix for grepability across logs.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (rows <= 0 or cols <= 0, or an empty row set).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid
	// bounds. Public indexers (At/Set/Minor) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions:
	// ragged row input, Add with different shapes, or Mul where
	// a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required
	// (Determinant, Adjugate, Inverse) but the input was rectangular.
	ErrNonSquare = errors.New("matrix: matrix is not square")
)
