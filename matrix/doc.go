// Package matrix implements the small dense linear-algebra kernel
// behind the match-quality evaluator.
//
// It is deliberately tiny: a rectangular row-major Dense type plus the
// handful of pure operations the quality quadratic form needs:
// transpose, minor, determinant (Gaussian elimination with partial
// pivoting), adjugate, inverse, addition, multiplication and scalar
// scaling. Matrices here are a few rows/columns wide (one row per
// adjacent team pair, one column per player), so closed-form cofactor
// expansion is preferred over factorizations.
//
// Contracts:
//   - All operations are non-mutating and return fresh matrices.
//   - All user-triggered error conditions return package sentinels
//     checked via errors.Is; no operation panics on user input.
//   - Determinant returns exactly 0 when a pivot column is entirely
//     zero, so degenerate systems produce 0 instead of NaN.
//   - Loop orders are fixed and data-independent: results are
//     deterministic for identical inputs.
package matrix
