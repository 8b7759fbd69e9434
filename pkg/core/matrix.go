package core

import "fmt"

// Matrix represents a rectangular grid of float64 values, indexed by
// (row, col) from the top left. Square 4x4 matrices model affine
// transforms; the general form supports the submatrix recursion that
// determinants and inverses build on.
type Matrix struct {
	width    int
	height   int
	elements [][]float64
}

// NewMatrix creates a zeroed width x height matrix
func NewMatrix(width, height int) Matrix {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("matrix dimensions must be positive, got %dx%d", height, width))
	}
	elements := make([][]float64, height)
	for row := range elements {
		elements[row] = make([]float64, width)
	}
	return Matrix{width: width, height: height, elements: elements}
}

// FromRows builds a matrix from explicit rows, copying the values.
// Ragged input is a programmer error.
func FromRows(rows [][]float64) Matrix {
	if len(rows) == 0 {
		panic("matrix requires at least one row")
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			panic(fmt.Sprintf("matrix rows must have equal length: row 0 has %d columns, row %d has %d", width, i, len(row)))
		}
	}
	m := NewMatrix(width, len(rows))
	for r, row := range rows {
		copy(m.elements[r], row)
	}
	return m
}

// Identity returns the n x n identity matrix
func Identity(n int) Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.elements[i][i] = 1
	}
	return m
}

// Width returns the number of columns
func (m Matrix) Width() int {
	return m.width
}

// Height returns the number of rows
func (m Matrix) Height() int {
	return m.height
}

func (m Matrix) inBounds(row, col int) bool {
	return row >= 0 && row < m.height && col >= 0 && col < m.width
}

// Get returns the element at (row, col)
func (m Matrix) Get(row, col int) float64 {
	if !m.inBounds(row, col) {
		panic(fmt.Sprintf("matrix index (%d, %d) out of range for %dx%d matrix", row, col, m.height, m.width))
	}
	return m.elements[row][col]
}

// Set assigns the element at (row, col) in place
func (m Matrix) Set(row, col int, value float64) {
	if !m.inBounds(row, col) {
		panic(fmt.Sprintf("matrix index (%d, %d) out of range for %dx%d matrix", row, col, m.height, m.width))
	}
	m.elements[row][col] = value
}

// Equals compares dimensions and elements within Epsilon
func (m Matrix) Equals(other Matrix) bool {
	if m.width != other.width || m.height != other.height {
		return false
	}
	for row := 0; row < m.height; row++ {
		for col := 0; col < m.width; col++ {
			if !EqualFloats(m.elements[row][col], other.elements[row][col]) {
				return false
			}
		}
	}
	return true
}

// Multiply returns the matrix product m x other.
// The receiver's width must match the argument's height.
func (m Matrix) Multiply(other Matrix) Matrix {
	if m.width != other.height {
		panic(fmt.Sprintf("cannot multiply %dx%d by %dx%d matrix", m.height, m.width, other.height, other.width))
	}
	result := NewMatrix(other.width, m.height)
	for row := 0; row < m.height; row++ {
		for col := 0; col < other.width; col++ {
			sum := 0.0
			for k := 0; k < m.width; k++ {
				sum += m.elements[row][k] * other.elements[k][col]
			}
			result.elements[row][col] = sum
		}
	}
	return result
}

// MultiplyTuple applies the matrix to a tuple treated as a 4x1 column,
// transforming the point or vector it represents
func (m Matrix) MultiplyTuple(t Tuple) Tuple {
	if m.width != 4 || m.height != 4 {
		panic(fmt.Sprintf("tuple multiplication requires a 4x4 matrix, got %dx%d", m.height, m.width))
	}
	in := [4]float64{t.X, t.Y, t.Z, t.W}
	var out [4]float64
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[row] += m.elements[row][col] * in[col]
		}
	}
	return Tuple{X: out[0], Y: out[1], Z: out[2], W: out[3]}
}

// Transpose returns the matrix with rows and columns swapped
func (m Matrix) Transpose() Matrix {
	result := NewMatrix(m.height, m.width)
	for row := 0; row < m.height; row++ {
		for col := 0; col < m.width; col++ {
			result.elements[col][row] = m.elements[row][col]
		}
	}
	return result
}

// Submatrix returns a copy of the matrix with the given row and column removed
func (m Matrix) Submatrix(row, col int) Matrix {
	if !m.inBounds(row, col) {
		panic(fmt.Sprintf("cannot remove (%d, %d) from %dx%d matrix", row, col, m.height, m.width))
	}
	result := NewMatrix(m.width-1, m.height-1)
	for r := 0; r < m.height; r++ {
		if r == row {
			continue
		}
		targetRow := r
		if r > row {
			targetRow--
		}
		for c := 0; c < m.width; c++ {
			if c == col {
				continue
			}
			targetCol := c
			if c > col {
				targetCol--
			}
			result.elements[targetRow][targetCol] = m.elements[r][c]
		}
	}
	return result
}

// Minor returns the determinant of the submatrix at (row, col)
func (m Matrix) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the minor at (row, col), negated when row+col is odd
func (m Matrix) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Determinant computes the determinant by cofactor expansion along the
// first row, bottoming out at the 2x2 ad-bc case. Only square matrices
// have one.
func (m Matrix) Determinant() float64 {
	if m.width != m.height {
		panic(fmt.Sprintf("determinant requires a square matrix, got %dx%d", m.height, m.width))
	}
	if m.width == 1 {
		return m.elements[0][0]
	}
	if m.width == 2 {
		return m.elements[0][0]*m.elements[1][1] - m.elements[0][1]*m.elements[1][0]
	}
	det := 0.0
	for col := 0; col < m.width; col++ {
		det += m.elements[0][col] * m.Cofactor(0, col)
	}
	return det
}

// IsInvertible reports whether the matrix has a non-zero determinant
func (m Matrix) IsInvertible() bool {
	return !EqualFloats(m.Determinant(), 0)
}

// Inverse returns the inverse via the adjugate over the determinant.
// Writing each cofactor to the transposed cell folds the adjugate
// transpose and the determinant division into a single pass.
func (m Matrix) Inverse() Matrix {
	det := m.Determinant()
	if EqualFloats(det, 0) {
		panic(fmt.Sprintf("matrix is not invertible, determinant is %g", det))
	}
	result := NewMatrix(m.width, m.height)
	for row := 0; row < m.height; row++ {
		for col := 0; col < m.width; col++ {
			result.elements[col][row] = m.Cofactor(row, col) / det
		}
	}
	return result
}
