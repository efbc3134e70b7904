package matrix

import "fmt"

// Transpose returns mᵀ as a fresh matrix.
func (m *Dense) Transpose() *Dense {
	out := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	for r := 0; r < m.r; r++ {
		base := r * m.c
		for c := 0; c < m.c; c++ {
			out.data[c*m.r+r] = m.data[base+c]
		}
	}

	return out
}

// Minor returns the matrix with row dropRow and column dropCol removed.
// Returns ErrOutOfRange for indices outside the shape and ErrBadShape
// when the receiver is too small to lose a row and a column.
func (m *Dense) Minor(dropRow, dropCol int) (*Dense, error) {
	if dropRow < 0 || dropRow >= m.r || dropCol < 0 || dropCol >= m.c {
		return nil, fmt.Errorf("Minor(%d,%d): %w", dropRow, dropCol, ErrOutOfRange)
	}
	out, err := New(m.r-1, m.c-1)
	if err != nil {
		return nil, fmt.Errorf("Minor(%d,%d): %w", dropRow, dropCol, ErrBadShape)
	}
	i := 0
	for r := 0; r < m.r; r++ {
		if r == dropRow {
			continue
		}
		base := r * m.c
		for c := 0; c < m.c; c++ {
			if c == dropCol {
				continue
			}
			out.data[i] = m.data[base+c]
			i++
		}
	}

	return out, nil
}

// Add returns m + o. Returns ErrDimensionMismatch on shape conflict.
func (m *Dense) Add(o *Dense) (*Dense, error) {
	if m.r != o.r || m.c != o.c {
		return nil, fmt.Errorf("Add(%dx%d, %dx%d): %w", m.r, m.c, o.r, o.c, ErrDimensionMismatch)
	}
	out := m.Clone()
	for i := range out.data {
		out.data[i] += o.data[i]
	}

	return out, nil
}

// Mul returns the matrix product m · o.
// Returns ErrDimensionMismatch when m.Cols != o.Rows.
func (m *Dense) Mul(o *Dense) (*Dense, error) {
	if m.c != o.r {
		return nil, fmt.Errorf("Mul(%dx%d, %dx%d): %w", m.r, m.c, o.r, o.c, ErrDimensionMismatch)
	}
	out, _ := New(m.r, o.c)
	// i→k→j with row-major strides; zero rows of m are skipped.
	for i := 0; i < m.r; i++ {
		baseM := i * m.c
		baseO := i * o.c
		for k := 0; k < m.c; k++ {
			v := m.data[baseM+k]
			if v == 0 {
				continue
			}
			rowO := k * o.c
			for j := 0; j < o.c; j++ {
				out.data[baseO+j] += v * o.data[rowO+j]
			}
		}
	}

	return out, nil
}

// Scale returns alpha · m.
func (m *Dense) Scale(alpha float64) *Dense {
	out := m.Clone()
	for i := range out.data {
		out.data[i] *= alpha
	}

	return out
}
