// Package scene drives the pipeline: it owns the frame buffers, turns mesh
// faces into screen-space triangles and runs the per-frame loop.
package scene

import (
	"softrender/internal/linalg"
	"softrender/internal/present"
	"softrender/internal/transform"
)

type (
	Vec3 = linalg.Vec3[float32]
	Mat4 = transform.Mat4
)

// Camera is a free-flying eye. Dir and Up are unit directions.
type Camera struct {
	Eye Vec3
	Dir Vec3
	Up  Vec3
	// Step is the distance moved per Go/Back/Up/Down event.
	Step float32
	// Turn is the angle in radians turned per TurnLeft/TurnRight event.
	Turn float32
}

// DefaultCamera sits at +3 on z looking at the origin.
func DefaultCamera() Camera {
	return Camera{
		Eye:  Vec3{0, 0, 3},
		Dir:  Vec3{0, 0, -1},
		Up:   Vec3{0, 1, 0},
		Step: 0.1,
		Turn: transform.Deg2Rad(5),
	}
}

// Apply moves the camera for ev and reports whether anything changed.
func (c *Camera) Apply(ev present.Event) bool {
	switch ev {
	case present.Go:
		c.Eye = c.Eye.Add(c.Dir.Scale(c.Step))
	case present.Back:
		c.Eye = c.Eye.Sub(c.Dir.Scale(c.Step))
	case present.Up:
		c.Eye = c.Eye.Add(c.Up.Scale(c.Step))
	case present.Down:
		c.Eye = c.Eye.Sub(c.Up.Scale(c.Step))
	case present.TurnLeft:
		c.Dir = turn(c.Dir, c.Up, c.Turn)
	case present.TurnRight:
		c.Dir = turn(c.Dir, c.Up, -c.Turn)
	default:
		return false
	}
	return true
}

// View returns the view matrix.
func (c Camera) View() Mat4 {
	return transform.Camera(c.Eye, c.Dir, c.Up)
}

func turn(dir, axis Vec3, angle float32) Vec3 {
	return transform.Rotate(axis, angle).MulVec(dir.Lift()).Project()
}
