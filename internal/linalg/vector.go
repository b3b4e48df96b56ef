package linalg

import "math"

// Vec2 is a 2-component vector (value type).
type Vec2[T Number] [2]T

// Vec3 is a 3-component vector (value type).
type Vec3[T Number] [3]T

// Vec4 is a 4-component vector (value type).
type Vec4[T Number] [4]T

// V2 builds a Vec2.
func V2[T Number](x, y T) Vec2[T] { return Vec2[T]{x, y} }

// V3 builds a Vec3.
func V3[T Number](x, y, z T) Vec3[T] { return Vec3[T]{x, y, z} }

// V4 builds a Vec4.
func V4[T Number](x, y, z, w T) Vec4[T] { return Vec4[T]{x, y, z, w} }

// Vec2Of converts the element type of v, truncating toward zero for
// float-to-integer conversions.
func Vec2Of[T, S Number](v Vec2[S]) Vec2[T] { return Vec2[T]{T(v[0]), T(v[1])} }

// Vec3Of converts the element type of v.
func Vec3Of[T, S Number](v Vec3[S]) Vec3[T] { return Vec3[T]{T(v[0]), T(v[1]), T(v[2])} }

// Vec4Of converts the element type of v.
func Vec4Of[T, S Number](v Vec4[S]) Vec4[T] {
	return Vec4[T]{T(v[0]), T(v[1]), T(v[2]), T(v[3])}
}

// ---- Vec2 ----

// X returns component 0.
func (v Vec2[T]) X() T { return v[0] }

// Y returns component 1.
func (v Vec2[T]) Y() T { return v[1] }

// Add returns the component-wise sum v + u.
func (v Vec2[T]) Add(u Vec2[T]) Vec2[T] { return Vec2[T]{v[0] + u[0], v[1] + u[1]} }

// Sub returns the component-wise difference v − u.
func (v Vec2[T]) Sub(u Vec2[T]) Vec2[T] { return Vec2[T]{v[0] - u[0], v[1] - u[1]} }

// Scale multiplies every component by s.
func (v Vec2[T]) Scale(s T) Vec2[T] { return Vec2[T]{v[0] * s, v[1] * s} }

// Div divides every component by s.
func (v Vec2[T]) Div(s T) Vec2[T] { return Vec2[T]{v[0] / s, v[1] / s} }

// Dot returns the scalar product v·u.
func (v Vec2[T]) Dot(u Vec2[T]) T { return v[0]*u[0] + v[1]*u[1] }

// Norm2 returns the squared length v·v.
func (v Vec2[T]) Norm2() T { return v.Dot(v) }

// Lift appends a homogeneous 1.
func (v Vec2[T]) Lift() Vec3[T] { return Vec3[T]{v[0], v[1], 1} }

// ---- Vec3 ----

// X returns component 0.
func (v Vec3[T]) X() T { return v[0] }

// Y returns component 1.
func (v Vec3[T]) Y() T { return v[1] }

// Z returns component 2.
func (v Vec3[T]) Z() T { return v[2] }

// Add returns the component-wise sum v + u.
func (v Vec3[T]) Add(u Vec3[T]) Vec3[T] { return Vec3[T]{v[0] + u[0], v[1] + u[1], v[2] + u[2]} }

// Sub returns the component-wise difference v − u.
func (v Vec3[T]) Sub(u Vec3[T]) Vec3[T] { return Vec3[T]{v[0] - u[0], v[1] - u[1], v[2] - u[2]} }

// Scale multiplies every component by s.
func (v Vec3[T]) Scale(s T) Vec3[T] { return Vec3[T]{v[0] * s, v[1] * s, v[2] * s} }

// Div divides every component by s.
func (v Vec3[T]) Div(s T) Vec3[T] { return Vec3[T]{v[0] / s, v[1] / s, v[2] / s} }

// Dot returns the scalar product v·u.
func (v Vec3[T]) Dot(u Vec3[T]) T { return v[0]*u[0] + v[1]*u[1] + v[2]*u[2] }

// Norm2 returns the squared length v·v.
func (v Vec3[T]) Norm2() T { return v.Dot(v) }

// Cross returns the right-handed cross product v × u.
func (v Vec3[T]) Cross(u Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v[1]*u[2] - v[2]*u[1],
		v[2]*u[0] - v[0]*u[2],
		v[0]*u[1] - v[1]*u[0],
	}
}

// Lift appends a homogeneous 1.
func (v Vec3[T]) Lift() Vec4[T] { return Vec4[T]{v[0], v[1], v[2], 1} }

// Project divides x and y by z. The caller must not pass z == 0.
func (v Vec3[T]) Project() Vec2[T] { return Vec2[T]{v[0], v[1]}.Div(v[2]) }

// ---- Vec4 ----

// X returns component 0.
func (v Vec4[T]) X() T { return v[0] }

// Y returns component 1.
func (v Vec4[T]) Y() T { return v[1] }

// Z returns component 2.
func (v Vec4[T]) Z() T { return v[2] }

// W returns component 3.
func (v Vec4[T]) W() T { return v[3] }

// Add returns the component-wise sum v + u.
func (v Vec4[T]) Add(u Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] + u[0], v[1] + u[1], v[2] + u[2], v[3] + u[3]}
}

// Sub returns the component-wise difference v − u.
func (v Vec4[T]) Sub(u Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] - u[0], v[1] - u[1], v[2] - u[2], v[3] - u[3]}
}

// Scale multiplies every component by s.
func (v Vec4[T]) Scale(s T) Vec4[T] { return Vec4[T]{v[0] * s, v[1] * s, v[2] * s, v[3] * s} }

// Div divides every component by s.
func (v Vec4[T]) Div(s T) Vec4[T] { return Vec4[T]{v[0] / s, v[1] / s, v[2] / s, v[3] / s} }

// Dot returns the scalar product v·u.
func (v Vec4[T]) Dot(u Vec4[T]) T { return v[0]*u[0] + v[1]*u[1] + v[2]*u[2] + v[3]*u[3] }

// Norm2 returns the squared length v·v.
func (v Vec4[T]) Norm2() T { return v.Dot(v) }

// Project performs the perspective divide. The caller must not pass w == 0;
// the result is then ±Inf or NaN.
func (v Vec4[T]) Project() Vec3[T] { return Vec3[T]{v[0], v[1], v[2]}.Div(v[3]) }

// ---- float-only ----

// Norm returns the Euclidean length of v.
func Norm[T Float](v Vec3[T]) T { return T(math.Sqrt(float64(v.Norm2()))) }

// Normalize returns v / |v|. A zero vector yields NaN components.
func Normalize[T Float](v Vec3[T]) Vec3[T] { return v.Div(Norm(v)) }

// Norm2D returns the Euclidean length of a 2-vector.
func Norm2D[T Float](v Vec2[T]) T { return T(math.Sqrt(float64(v.Norm2()))) }

// Normalize2D returns v / |v|.
func Normalize2D[T Float](v Vec2[T]) Vec2[T] { return v.Div(Norm2D(v)) }

// Norm4D returns the Euclidean length of a 4-vector.
func Norm4D[T Float](v Vec4[T]) T { return T(math.Sqrt(float64(v.Norm2()))) }

// Normalize4D returns v / |v|.
func Normalize4D[T Float](v Vec4[T]) Vec4[T] { return v.Div(Norm4D(v)) }
