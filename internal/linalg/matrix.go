package linalg

// Matrices are stored as arrays of row vectors. Products follow the
// column-vector convention: M.MulVec(v) dots every row of M with v.

// Mat3 is a 3×3 matrix.
type Mat3[T Number] [3]Vec3[T]

// Mat4 is a 4×4 matrix.
type Mat4[T Number] [4]Vec4[T]

// Mat3x2 is a 3-row, 2-column matrix (e.g. one UV pair per triangle vertex).
type Mat3x2[T Number] [3]Vec2[T]

// Mat2x3 is a 2-row, 3-column matrix.
type Mat2x3[T Number] [2]Vec3[T]

// Identity3 returns the 3×3 identity.
func Identity3[T Number]() Mat3[T] {
	return Mat3[T]{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Identity4 returns the 4×4 identity.
func Identity4[T Number]() Mat4[T] {
	return Mat4[T]{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}
}

// Outer returns the 3×1 · 1×3 product a·bᵗ.
func Outer[T Number](a, b Vec3[T]) Mat3[T] {
	var m Mat3[T]
	for r := 0; r < 3; r++ {
		m[r] = b.Scale(a[r])
	}
	return m
}

// ---- Mat3 ----

// Get returns the element at row r, column c.
func (m Mat3[T]) Get(r, c int) T { return m[r][c] }

// Set stores val at row r, column c.
func (m *Mat3[T]) Set(r, c int, val T) { m[r][c] = val }

// Transpose returns mᵗ.
func (m Mat3[T]) Transpose() Mat3[T] {
	var t Mat3[T]
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			t[c][r] = m[r][c]
		}
	}
	return t
}

// Add returns the element-wise sum m + n.
func (m Mat3[T]) Add(n Mat3[T]) Mat3[T] {
	for r := range m {
		m[r] = m[r].Add(n[r])
	}
	return m
}

// Sub returns the element-wise difference m − n.
func (m Mat3[T]) Sub(n Mat3[T]) Mat3[T] {
	for r := range m {
		m[r] = m[r].Sub(n[r])
	}
	return m
}

// Scale multiplies every element by s.
func (m Mat3[T]) Scale(s T) Mat3[T] {
	for r := range m {
		m[r] = m[r].Scale(s)
	}
	return m
}

// MulVec returns m·v.
func (m Mat3[T]) MulVec(v Vec3[T]) Vec3[T] {
	return Vec3[T]{m[0].Dot(v), m[1].Dot(v), m[2].Dot(v)}
}

// Mul returns m·n.
func (m Mat3[T]) Mul(n Mat3[T]) Mat3[T] {
	var out Mat3[T]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				out[i][j] += m[i][k] * n[k][j]
			}
		}
	}
	return out
}

// Embed places m in the top-left block of a 4×4 matrix with a 1 in the
// bottom-right corner.
func (m Mat3[T]) Embed() Mat4[T] {
	var out Mat4[T]
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r][c] = m[r][c]
		}
	}
	out[3][3] = 1
	return out
}

// ---- Mat4 ----

// Get returns the element at row r, column c.
func (m Mat4[T]) Get(r, c int) T { return m[r][c] }

// Set stores val at row r, column c.
func (m *Mat4[T]) Set(r, c int, val T) { m[r][c] = val }

// Transpose returns mᵗ.
func (m Mat4[T]) Transpose() Mat4[T] {
	var t Mat4[T]
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			t[c][r] = m[r][c]
		}
	}
	return t
}

// Add returns the element-wise sum m + n.
func (m Mat4[T]) Add(n Mat4[T]) Mat4[T] {
	for r := range m {
		m[r] = m[r].Add(n[r])
	}
	return m
}

// Sub returns the element-wise difference m − n.
func (m Mat4[T]) Sub(n Mat4[T]) Mat4[T] {
	for r := range m {
		m[r] = m[r].Sub(n[r])
	}
	return m
}

// Scale multiplies every element by s.
func (m Mat4[T]) Scale(s T) Mat4[T] {
	for r := range m {
		m[r] = m[r].Scale(s)
	}
	return m
}

// MulVec returns m·v.
func (m Mat4[T]) MulVec(v Vec4[T]) Vec4[T] {
	return Vec4[T]{m[0].Dot(v), m[1].Dot(v), m[2].Dot(v), m[3].Dot(v)}
}

// Mul returns m·n.
func (m Mat4[T]) Mul(n Mat4[T]) Mat4[T] {
	var out Mat4[T]
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				out[i][j] += m[i][k] * n[k][j]
			}
		}
	}
	return out
}

// Upper3 returns the top-left 3×3 block.
func (m Mat4[T]) Upper3() Mat3[T] {
	var out Mat3[T]
	for r := 0; r < 3; r++ {
		out[r] = Vec3[T]{m[r][0], m[r][1], m[r][2]}
	}
	return out
}

// ---- Mat3x2 / Mat2x3 ----

// Get returns the element at row r, column c.
func (m Mat3x2[T]) Get(r, c int) T { return m[r][c] }

// Set stores val at row r, column c.
func (m *Mat3x2[T]) Set(r, c int, val T) { m[r][c] = val }

// Transpose returns mᵗ.
func (m Mat3x2[T]) Transpose() Mat2x3[T] {
	return Mat2x3[T]{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
	}
}

// MulVec returns m·v.
func (m Mat3x2[T]) MulVec(v Vec2[T]) Vec3[T] {
	return Vec3[T]{m[0].Dot(v), m[1].Dot(v), m[2].Dot(v)}
}

// Mul returns the 3×3 product m·n.
func (m Mat3x2[T]) Mul(n Mat2x3[T]) Mat3[T] {
	var out Mat3[T]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 2; k++ {
				out[i][j] += m[i][k] * n[k][j]
			}
		}
	}
	return out
}

// Get returns the element at row r, column c.
func (m Mat2x3[T]) Get(r, c int) T { return m[r][c] }

// Set stores val at row r, column c.
func (m *Mat2x3[T]) Set(r, c int, val T) { m[r][c] = val }

// Transpose returns mᵗ.
func (m Mat2x3[T]) Transpose() Mat3x2[T] {
	return Mat3x2[T]{
		{m[0][0], m[1][0]},
		{m[0][1], m[1][1]},
		{m[0][2], m[1][2]},
	}
}

// MulVec returns m·v.
func (m Mat2x3[T]) MulVec(v Vec3[T]) Vec2[T] {
	return Vec2[T]{m[0].Dot(v), m[1].Dot(v)}
}

// Mul returns the 2×2 product m·n as row vectors.
func (m Mat2x3[T]) Mul(n Mat3x2[T]) [2]Vec2[T] {
	var out [2]Vec2[T]
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 3; k++ {
				out[i][j] += m[i][k] * n[k][j]
			}
		}
	}
	return out
}
