package matrix

import "fmt"

// Dense is a rectangular matrix stored row-major in a flat slice:
// element (r, c) lives at data[r*cols+c].
type Dense struct {
	r, c int
	data []float64
}

// Index addresses a single entry in the sparse-map constructor.
type Index struct {
	Row, Col int
}

// New allocates a zero matrix of the given shape.
// Returns ErrBadShape for non-positive dimensions.
func New(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows builds a matrix from a dense 2-D array.
// Returns ErrBadShape on empty input and ErrDimensionMismatch when the
// rows are ragged.
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrBadShape)
	}
	cols := len(rows[0])
	m, err := New(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w",
				r, len(row), cols, ErrDimensionMismatch)
		}
		copy(m.data[r*cols:(r+1)*cols], row)
	}

	return m, nil
}

// FromEntries builds a matrix of the declared shape from a sparse
// (row,col) -> value map; unset entries are zero. Entries outside the
// declared shape return ErrOutOfRange.
func FromEntries(rows, cols int, entries map[Index]float64) (*Dense, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for idx, v := range entries {
		if idx.Row < 0 || idx.Row >= rows || idx.Col < 0 || idx.Col >= cols {
			return nil, fmt.Errorf("FromEntries(%d,%d): %w", idx.Row, idx.Col, ErrOutOfRange)
		}
		m.data[idx.Row*cols+idx.Col] = v
	}

	return m, nil
}

// Generate builds a matrix of the declared shape by evaluating f at
// every index in fixed r→c order. Useful for constructive definitions
// where the bulk of the entries is a simple function of the position.
func Generate(rows, cols int, f func(r, c int) float64) (*Dense, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for r := 0; r < rows; r++ {
		base := r * cols
		for c := 0; c < cols; c++ {
			m.data[base+c] = f(r, c)
		}
	}

	return m, nil
}

// Column builds a single-column matrix from a vector.
func Column(v []float64) (*Dense, error) {
	if len(v) == 0 {
		return nil, fmt.Errorf("Column: %w", ErrBadShape)
	}
	m, _ := New(len(v), 1)
	copy(m.data, v)

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// At returns element (r, c), or ErrOutOfRange.
func (m *Dense) At(r, c int) (float64, error) {
	if r < 0 || r >= m.r || c < 0 || c >= m.c {
		return 0, fmt.Errorf("At(%d,%d): %w", r, c, ErrOutOfRange)
	}

	return m.data[r*m.c+c], nil
}

// Set assigns element (r, c), or returns ErrOutOfRange.
func (m *Dense) Set(r, c int, v float64) error {
	if r < 0 || r >= m.r || c < 0 || c >= m.c {
		return fmt.Errorf("Set(%d,%d): %w", r, c, ErrOutOfRange)
	}
	m.data[r*m.c+c] = v

	return nil
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	copy(out.data, m.data)

	return out
}
