package matrix

import (
	"fmt"
	"math"
)

// Determinant computes det(m) by Gaussian elimination with partial
// pivoting by absolute value. Returns ErrNonSquare for rectangular
// input. When a pivot column is entirely zero the matrix is singular
// and the result is exactly 0, never NaN.
func (m *Dense) Determinant() (float64, error) {
	if m.r != m.c {
		return 0, fmt.Errorf("Determinant(%dx%d): %w", m.r, m.c, ErrNonSquare)
	}
	n := m.r
	tmp := m.Clone()
	det := 1.0
	for col := 0; col < n; col++ {
		// pick the largest |pivot| in this column at or below the diagonal
		p := col
		for r := col + 1; r < n; r++ {
			if math.Abs(tmp.data[r*n+col]) > math.Abs(tmp.data[p*n+col]) {
				p = r
			}
		}
		pivot := tmp.data[p*n+col]
		if pivot == 0 {
			return 0, nil
		}
		if p != col {
			swapRows(tmp, p, col)
			det = -det
		}
		det *= pivot
		// eliminate below the pivot
		for r := col + 1; r < n; r++ {
			f := tmp.data[r*n+col] / pivot
			if f == 0 {
				continue
			}
			for x := col; x < n; x++ {
				tmp.data[r*n+x] -= f * tmp.data[col*n+x]
			}
		}
	}

	return det, nil
}

// Adjugate returns the classical adjugate adj(m), the transpose of the
// cofactor matrix, with m · adj(m) = det(m) · I. The 2×2 case has a
// closed form; larger matrices use cofactor expansion.
// Returns ErrNonSquare for rectangular input.
func (m *Dense) Adjugate() (*Dense, error) {
	if m.r != m.c {
		return nil, fmt.Errorf("Adjugate(%dx%d): %w", m.r, m.c, ErrNonSquare)
	}
	n := m.r
	if n == 1 {
		return FromRows([][]float64{{1}})
	}
	if n == 2 {
		a, b := m.data[0], m.data[1]
		c, d := m.data[2], m.data[3]

		return FromRows([][]float64{{d, -b}, {-c, a}})
	}
	out, _ := New(n, n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			minor, err := m.Minor(r, c)
			if err != nil {
				return nil, err
			}
			cof, err := minor.Determinant()
			if err != nil {
				return nil, err
			}
			if (r+c)%2 == 1 {
				cof = -cof
			}
			// transposed placement: cofactor of (r,c) lands at (c,r)
			out.data[c*n+r] = cof
		}
	}

	return out, nil
}

// Inverse returns m⁻¹: the 1×1 closed form, otherwise adj(m)/det(m).
// Returns ErrNonSquare for rectangular input. A singular matrix is not
// trapped here; its zero determinant propagates ±Inf/NaN entries to the
// caller, matching the quality evaluator's degenerate-input contract.
func (m *Dense) Inverse() (*Dense, error) {
	if m.r != m.c {
		return nil, fmt.Errorf("Inverse(%dx%d): %w", m.r, m.c, ErrNonSquare)
	}
	if m.r == 1 {
		return FromRows([][]float64{{1 / m.data[0]}})
	}
	adj, err := m.Adjugate()
	if err != nil {
		return nil, err
	}
	det, err := m.Determinant()
	if err != nil {
		return nil, err
	}

	return adj.Scale(1 / det), nil
}

// swapRows exchanges rows a and b of m in place.
func swapRows(m *Dense, a, b int) {
	ra := m.data[a*m.c : (a+1)*m.c]
	rb := m.data[b*m.c : (b+1)*m.c]
	for i := range ra {
		ra[i], rb[i] = rb[i], ra[i]
	}
}
