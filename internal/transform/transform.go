// Package transform builds the 4×4 model, view, projection and viewport
// matrices of the pipeline. Matrices are row-major and multiply column
// vectors from the left: p' = M·p.
package transform

import (
	"math"

	"softrender/internal/linalg"
)

// Mat4 is the matrix type produced by this package.
type Mat4 = linalg.Mat4[float32]

// Vec3 is the vector type consumed by this package.
type Vec3 = linalg.Vec3[float32]

// Identity returns the 4×4 identity.
func Identity() Mat4 { return linalg.Identity4[float32]() }

// Translate returns a translation by delta.
func Translate(delta Vec3) Mat4 {
	m := Identity()
	m.Set(0, 3, delta[0])
	m.Set(1, 3, delta[1])
	m.Set(2, 3, delta[2])
	return m
}

// Scale returns a non-uniform scale.
func Scale(sx, sy, sz float32) Mat4 {
	m := Identity()
	m.Set(0, 0, sx)
	m.Set(1, 1, sy)
	m.Set(2, 2, sz)
	return m
}

// Rotate returns a rotation of angle radians about axis using Rodrigues'
// formula: I·cosθ + (n·nᵗ)(1−cosθ) + K·sinθ. The axis must already be
// normalized.
func Rotate(axis Vec3, angle float32) Mat4 {
	c := float32(math.Cos(float64(angle)))
	s := float32(math.Sin(float64(angle)))
	k := linalg.Mat3[float32]{
		{0, -axis[2], axis[1]},
		{axis[2], 0, -axis[0]},
		{-axis[1], axis[0], 0},
	}
	r := linalg.Identity3[float32]().Scale(c).
		Add(linalg.Outer(axis, axis).Scale(1 - c)).
		Add(k.Scale(s))
	return r.Embed()
}

// Camera returns the view matrix for an eye at eye looking along the
// direction lookDir with the given up vector. lookDir is a direction, not a
// target point. The basis rows are lookDir×up, up and −lookDir.
func Camera(eye, lookDir, up Vec3) Mat4 {
	tView := Translate(eye.Scale(-1))
	side := lookDir.Cross(up)
	rView := Mat4{
		{side[0], side[1], side[2], 0},
		{up[0], up[1], up[2], 0},
		{-lookDir[0], -lookDir[1], -lookDir[2], 0},
		{0, 0, 0, 1},
	}
	return rView.Mul(tView)
}

// Ortho maps the box [l,r]×[b,t]×[f,n] onto the canonical cube [−1,1]³.
// Near and far are signed: the camera looks down −z so n > f.
func Ortho(l, r, b, t, f, n float32) Mat4 {
	scale := Scale(2/(r-l), 2/(t-b), 2/(n-f))
	center := Translate(Vec3{-(r + l) / 2, -(t + b) / 2, -(n + f) / 2})
	return scale.Mul(center)
}

// Persp squashes the frustum into the ortho box and then applies Ortho.
// After the perspective divide a larger z is nearer the camera.
func Persp(l, r, b, t, f, n float32) Mat4 {
	squash := Mat4{
		{n, 0, 0, 0},
		{0, n, 0, 0},
		{0, 0, n + f, -n * f},
		{0, 0, 1, 0},
	}
	return Ortho(l, r, b, t, f, n).Mul(squash)
}

// PerspByFOV builds a symmetric frustum from a vertical field of view in
// radians. zNear and zFar are negative.
func PerspByFOV(fovY, aspect, zNear, zFar float32) Mat4 {
	t := float32(math.Abs(float64(zNear))) * float32(math.Tan(float64(fovY)/2))
	b := -t
	r := t * aspect
	l := -r
	return Persp(l, r, b, t, zFar, zNear)
}

// Viewport maps normalized device coordinates onto the pixel rectangle
// starting at (x, y) with size w×h. Depth passes through unchanged; y grows
// upwards, matching the color buffer's bottom-left origin.
func Viewport(x, y, w, h float32) Mat4 {
	return Mat4{
		{w / 2, 0, 0, x + w/2},
		{0, h / 2, 0, y + h/2},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// MVP composes viewport · projection · view · model.
func MVP(viewport, projection, view, model Mat4) Mat4 {
	return viewport.Mul(projection).Mul(view).Mul(model)
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float32) float32 {
	return d * math.Pi / 180
}
