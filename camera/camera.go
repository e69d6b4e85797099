// Package camera implements the orbit/pan/zoom camera model of the viewer.
//
// The camera is defined by a position, a look-at target and a world-up vector.
// All interaction primitives mutate position (and for Pan, target) and keep
// the remaining parameters fixed:
//
//   - Orbit rotates position around target (pitch about the camera-right axis,
//     then yaw about world-up).
//   - Pan translates position and target together along the camera's local
//     right/up basis, so the look direction never changes.
//   - Zoom dollies position along the view direction toward or away from the
//     target; the target itself never moves.
//
// Near-degenerate configurations (view direction almost parallel to up,
// zero-length view offsets, dollying into the target) are clamped or skipped
// so an interactive drag can never drive the camera into NaN territory.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// epsilon guards basis construction against zero-length vectors.
	epsilon = 1e-6

	// poleLimit is the maximum |cos| between view direction and up before a
	// pitch step is rejected, keeping the orbit away from the poles.
	poleLimit = 0.999

	// minDistance is the closest the position may dolly toward the target.
	minDistance = 0.01

	panScale  = 0.02
	zoomScale = 0.2
)

// Camera holds the view parameters for a single viewer window. It is owned
// and mutated by the render thread only.
type Camera struct {
	position mgl32.Vec3
	target   mgl32.Vec3
	up       mgl32.Vec3

	fov    float32
	aspect float32
	near   float32
	far    float32
}

// New creates a camera looking at the origin from (2, 2, 2) with a 45 degree
// vertical field of view.
func New(aspect float32) *Camera {
	return &Camera{
		position: mgl32.Vec3{2, 2, 2},
		target:   mgl32.Vec3{0, 0, 0},
		up:       mgl32.Vec3{0, 1, 0},
		fov:      math.Pi / 4,
		aspect:   aspect,
		near:     0.1,
		far:      100,
	}
}

// NewLookAt creates a camera with an explicit pose and the default
// projection parameters.
func NewLookAt(position, target, up mgl32.Vec3, aspect float32) *Camera {
	c := New(aspect)
	c.position = position
	c.target = target
	c.up = up
	return c
}

// ViewMatrix returns the right-handed look-at transform for the current pose.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.target, c.up)
}

// ProjectionMatrix returns the perspective projection for the current
// fov/aspect/near/far parameters.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(c.fov, c.aspect, c.near, c.far)
}

// SetAspect updates the projection aspect ratio. Non-positive values are
// ignored so a zero-height resize can never poison the projection.
func (c *Camera) SetAspect(aspect float32) {
	if aspect <= 0 {
		return
	}
	c.aspect = aspect
}

// Orbit rotates the position around the target: deltaPitch about the
// camera-right axis, then -deltaYaw about the up vector, so dragging right
// orbits the camera to the right.
func (c *Camera) Orbit(deltaYaw, deltaPitch float32) {
	offset := c.position.Sub(c.target)
	if offset.Len() < epsilon {
		return
	}

	up := c.up.Normalize()
	right := offset.Cross(c.up)
	if right.Len() >= epsilon {
		pitched := mgl32.QuatRotate(deltaPitch, right.Normalize()).Rotate(offset)
		// Reject the pitch step if it would push the view over a pole.
		if abs(pitched.Normalize().Dot(up)) < poleLimit {
			offset = pitched
		}
	}

	rotated := mgl32.QuatRotate(-deltaYaw, up).Rotate(offset)
	c.position = c.target.Add(rotated)
}

// Pan translates position and target together along the camera's local
// right/up basis. The step is scaled by the distance to the target so the
// motion feels the same at any zoom level.
func (c *Camera) Pan(deltaX, deltaY float32) {
	offset := c.target.Sub(c.position)
	dist := offset.Len()
	if dist < epsilon {
		return
	}
	viewDir := offset.Mul(1 / dist)

	right := viewDir.Cross(c.up)
	if right.Len() < epsilon {
		return
	}
	right = right.Normalize()
	up := right.Cross(viewDir).Normalize()

	movement := right.Mul(deltaX).Add(up.Mul(deltaY)).Mul(dist * panScale)
	c.position = c.position.Add(movement)
	c.target = c.target.Add(movement)
}

// Zoom dollies the position along the view direction. Positive delta moves
// toward the target, stopping at minDistance so position and target can
// never coincide.
func (c *Camera) Zoom(delta float32) {
	offset := c.target.Sub(c.position)
	dist := offset.Len()
	if dist < epsilon {
		return
	}

	step := delta * zoomScale
	if step > dist-minDistance {
		step = dist - minDistance
	}
	if step == 0 {
		return
	}

	c.position = c.position.Add(offset.Mul(step / dist))
}

// Position returns the camera position.
func (c *Camera) Position() mgl32.Vec3 { return c.position }

// Target returns the look-at point.
func (c *Camera) Target() mgl32.Vec3 { return c.target }

// Up returns the world-up vector.
func (c *Camera) Up() mgl32.Vec3 { return c.up }

// Aspect returns the current projection aspect ratio.
func (c *Camera) Aspect() float32 { return c.aspect }

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
