package matrix_test

import (
	"testing"

	"github.com/katalvlaran/trueskill/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustAt reads an element or fails the test.
func mustAt(t *testing.T, m *matrix.Dense, r, c int) float64 {
	t.Helper()
	v, err := m.At(r, c)
	require.NoError(t, err)

	return v
}

// TestFromRows_Ragged ensures ragged input is rejected.
func TestFromRows_Ragged(t *testing.T) {
	_, err := matrix.FromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "ragged rows must error")
}

// TestFromRows_Empty ensures empty input is rejected.
func TestFromRows_Empty(t *testing.T) {
	_, err := matrix.FromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrBadShape, "empty input must error")
}

// TestNew_BadShape ensures non-positive dimensions are rejected.
func TestNew_BadShape(t *testing.T) {
	_, err := matrix.New(0, 3)
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.New(3, -1)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestAtSet_Bounds exercises the indexer sentinels.
func TestAtSet_Bounds(t *testing.T) {
	m, err := matrix.New(2, 2)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
}

// TestFromEntries builds a sparse diagonal and checks unset zeros.
func TestFromEntries(t *testing.T) {
	m, err := matrix.FromEntries(3, 3, map[matrix.Index]float64{
		{Row: 0, Col: 0}: 1,
		{Row: 1, Col: 1}: 2,
		{Row: 2, Col: 2}: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, 2.0, mustAt(t, m, 1, 1), "declared entry")
	assert.Zero(t, mustAt(t, m, 0, 2), "unset entries are zero")

	_, err = matrix.FromEntries(2, 2, map[matrix.Index]float64{{Row: 2, Col: 0}: 1})
	assert.ErrorIs(t, err, matrix.ErrOutOfRange, "entries outside the shape must error")
}

// TestGenerate builds from an index function.
func TestGenerate(t *testing.T) {
	m, err := matrix.Generate(2, 3, func(r, c int) float64 { return float64(r*3 + c) })
	require.NoError(t, err)

	assert.Equal(t, 5.0, mustAt(t, m, 1, 2))
}

// TestTranspose_Involution verifies mᵀᵀ == m.
func TestTranspose_Involution(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	tt := m.Transpose().Transpose()
	assert.Equal(t, m.Rows(), tt.Rows())
	assert.Equal(t, m.Cols(), tt.Cols())
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			assert.Equal(t, mustAt(t, m, r, c), mustAt(t, tt, r, c), "transpose is an involution")
		}
	}
}

// TestMinor drops a row and a column.
func TestMinor(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.NoError(t, err)

	minor, err := m.Minor(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, minor.Rows())
	assert.Equal(t, 1.0, mustAt(t, minor, 0, 0))
	assert.Equal(t, 9.0, mustAt(t, minor, 1, 1))

	_, err = m.Minor(3, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestDeterminant checks known values including the singular case.
func TestDeterminant(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	det, err := m.Determinant()
	require.NoError(t, err)
	assert.InDelta(t, -2.0, det, 1e-12)

	// row 2 = 2 * row 0: singular, must be exactly zero
	s, err := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}, {2, 4, 6}})
	require.NoError(t, err)
	det, err = s.Determinant()
	require.NoError(t, err)
	assert.Zero(t, det, "singular determinant is exactly 0")

	rect, err := matrix.New(2, 3)
	require.NoError(t, err)
	_, err = rect.Determinant()
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestInverse_RoundTrip verifies M * M⁻¹ ≈ I for a non-symmetric matrix.
func TestInverse_RoundTrip(t *testing.T) {
	m, err := matrix.FromRows([][]float64{
		{4, 7, 2},
		{3, 6, 1},
		{2, 5, 3},
	})
	require.NoError(t, err)

	inv, err := m.Inverse()
	require.NoError(t, err)
	prod, err := m.Mul(inv)
	require.NoError(t, err)

	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			want := 0.0
			if r == c {
				want = 1.0
			}
			assert.InDelta(t, want, mustAt(t, prod, r, c), 1e-9, "M*inv(M) must be identity")
		}
	}
}

// TestInverse_OneByOne checks the scalar closed form.
func TestInverse_OneByOne(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{4}})
	require.NoError(t, err)

	inv, err := m.Inverse()
	require.NoError(t, err)
	assert.InDelta(t, 0.25, mustAt(t, inv, 0, 0), 1e-12)
}

// TestAddMul_Shapes exercises the dimension sentinels and a known product.
func TestAddMul_Shapes(t *testing.T) {
	a, err := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b, err := matrix.FromRows([][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)
	c, err := matrix.New(3, 2)
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, 1.0, mustAt(t, sum, 0, 0))
	assert.Equal(t, 3.0, mustAt(t, sum, 0, 1))

	_, err = a.Add(c)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	prod, err := a.Mul(b)
	require.NoError(t, err)
	assert.Equal(t, 2.0, mustAt(t, prod, 0, 0), "column swap")
	assert.Equal(t, 1.0, mustAt(t, prod, 0, 1), "column swap")

	_, err = b.Mul(c)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestScale verifies scalar multiplication leaves the receiver untouched.
func TestScale(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, -2}})
	require.NoError(t, err)

	s := m.Scale(-3)
	assert.Equal(t, -3.0, mustAt(t, s, 0, 0))
	assert.Equal(t, 6.0, mustAt(t, s, 0, 1))
	assert.Equal(t, 1.0, mustAt(t, m, 0, 0), "receiver is not mutated")
}
