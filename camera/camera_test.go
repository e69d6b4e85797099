package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const tolerance = 1e-5

func vec3Near(a, b mgl32.Vec3, epsilon float32) bool {
	return a.Sub(b).Len() <= epsilon
}

func vec3Finite(v mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		f := float64(v[i])
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

func TestOrbitZeroIsNoOp(t *testing.T) {
	cam := New(4.0 / 3.0)
	position := cam.Position()
	target := cam.Target()

	cam.Orbit(0, 0)

	if !vec3Near(cam.Position(), position, tolerance) {
		t.Errorf("Orbit(0, 0) moved position from %v to %v", position, cam.Position())
	}
	if !vec3Near(cam.Target(), target, tolerance) {
		t.Errorf("Orbit(0, 0) moved target from %v to %v", target, cam.Target())
	}
}

func TestOrbitPreservesDistance(t *testing.T) {
	tests := []struct {
		name  string
		yaw   float32
		pitch float32
	}{
		{"yaw only", 0.5, 0},
		{"pitch only", 0, 0.3},
		{"both", -0.7, 0.2},
		{"full turn", 2 * math.Pi, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := New(1)
			before := cam.Position().Sub(cam.Target()).Len()

			cam.Orbit(tt.yaw, tt.pitch)

			after := cam.Position().Sub(cam.Target()).Len()
			if !mgl32.FloatEqualThreshold(before, after, tolerance) {
				t.Errorf("orbit changed distance to target: %v -> %v", before, after)
			}
			if !vec3Near(cam.Target(), mgl32.Vec3{0, 0, 0}, tolerance) {
				t.Errorf("orbit moved the target: %v", cam.Target())
			}
		})
	}
}

func TestOrbitYawDirection(t *testing.T) {
	cam := NewLookAt(mgl32.Vec3{2, 2, 2}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}, 1)

	// A positive yaw rotates the offset by -yaw about +Y:
	// (x, z) -> (x cos - z sin, x sin + z cos), so a quarter turn maps
	// (2, 2, 2) to (-2, 2, 2).
	cam.Orbit(math.Pi/2, 0)

	want := mgl32.Vec3{-2, 2, 2}
	if !vec3Near(cam.Position(), want, 1e-4) {
		t.Errorf("Orbit(pi/2, 0) position = %v, want %v", cam.Position(), want)
	}
}

func TestOrbitPoleClamp(t *testing.T) {
	cam := New(1)

	// Pitch hard toward the pole many times; the clamp must keep the view
	// direction away from the up vector and every value finite.
	for i := 0; i < 200; i++ {
		cam.Orbit(0, 0.3)
	}

	if !vec3Finite(cam.Position()) {
		t.Fatalf("position not finite after repeated pitch: %v", cam.Position())
	}
	dir := cam.Position().Sub(cam.Target()).Normalize()
	if !vec3Finite(dir) {
		t.Fatalf("view direction not finite: %v", dir)
	}
	dot := dir.Dot(cam.Up())
	if dot > 0.9999 || dot < -0.9999 {
		t.Errorf("view direction reached the pole: dot with up = %v", dot)
	}
}

func TestOrbitDegenerateViewParallelUp(t *testing.T) {
	// Looking straight down the up axis: no camera-right axis exists, so
	// the pitch component must be skipped without producing NaN.
	cam := NewLookAt(mgl32.Vec3{0, 2, 0}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}, 1)

	cam.Orbit(0.4, 0.4)

	if !vec3Finite(cam.Position()) {
		t.Fatalf("position not finite: %v", cam.Position())
	}
	dist := cam.Position().Sub(cam.Target()).Len()
	if !mgl32.FloatEqualThreshold(dist, 2, 1e-4) {
		t.Errorf("degenerate orbit changed distance: %v", dist)
	}
}

func TestOrbitZeroOffset(t *testing.T) {
	cam := NewLookAt(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}, 1)

	cam.Orbit(0.5, 0.5)

	if !vec3Near(cam.Position(), mgl32.Vec3{0, 0, 0}, tolerance) {
		t.Errorf("orbit with coincident position/target moved position: %v", cam.Position())
	}
}

func TestZoomRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		delta float32
	}{
		{"small step", 0.5},
		{"larger step", 2.0},
		{"negative first", -1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := New(1)
			position := cam.Position()

			cam.Zoom(tt.delta)
			cam.Zoom(-tt.delta)

			if !vec3Near(cam.Position(), position, 1e-4) {
				t.Errorf("zoom round trip moved position from %v to %v", position, cam.Position())
			}
		})
	}
}

func TestZoomMovesTowardTarget(t *testing.T) {
	cam := New(1)
	before := cam.Position().Sub(cam.Target()).Len()
	target := cam.Target()

	cam.Zoom(1)

	after := cam.Position().Sub(cam.Target()).Len()
	if after >= before {
		t.Errorf("positive zoom did not reduce distance: %v -> %v", before, after)
	}
	if !vec3Near(cam.Target(), target, tolerance) {
		t.Errorf("zoom moved the target: %v", cam.Target())
	}
}

func TestZoomClampsAtTarget(t *testing.T) {
	cam := New(1)

	// Far more zoom than the distance to the target. The dolly must stop
	// short of it instead of passing through or landing exactly on it.
	for i := 0; i < 100; i++ {
		cam.Zoom(100)
	}

	if !vec3Finite(cam.Position()) {
		t.Fatalf("position not finite: %v", cam.Position())
	}
	dist := cam.Position().Sub(cam.Target()).Len()
	if dist < minDistance/2 {
		t.Errorf("zoom collapsed position onto target: distance %v", dist)
	}
}

func TestPanPreservesViewVector(t *testing.T) {
	tests := []struct {
		name string
		dx   float32
		dy   float32
	}{
		{"right", 1, 0},
		{"up", 0, 1},
		{"diagonal", -2.5, 3.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := New(1)
			viewVector := cam.Position().Sub(cam.Target())

			cam.Pan(tt.dx, tt.dy)

			after := cam.Position().Sub(cam.Target())
			if !vec3Near(viewVector, after, tolerance) {
				t.Errorf("pan changed the view vector: %v -> %v", viewVector, after)
			}
		})
	}
}

func TestPanScalesWithDistance(t *testing.T) {
	near := NewLookAt(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}, 1)
	far := NewLookAt(mgl32.Vec3{2, 0, 0}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}, 1)

	near.Pan(1, 0)
	far.Pan(1, 0)

	nearStep := near.Target().Len()
	farStep := far.Target().Len()
	if !mgl32.FloatEqualThreshold(farStep, 2*nearStep, tolerance) {
		t.Errorf("pan step does not scale with distance: near %v, far %v", nearStep, farStep)
	}
}

func TestPanDegenerateViewParallelUp(t *testing.T) {
	cam := NewLookAt(mgl32.Vec3{0, 2, 0}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}, 1)
	position := cam.Position()

	cam.Pan(1, 1)

	if !vec3Finite(cam.Position()) {
		t.Fatalf("position not finite: %v", cam.Position())
	}
	if !vec3Near(cam.Position(), position, tolerance) {
		t.Errorf("degenerate pan moved position: %v", cam.Position())
	}
}

func TestSetAspect(t *testing.T) {
	tests := []struct {
		name   string
		aspect float32
		want   float32
	}{
		{"valid", 16.0 / 9.0, 16.0 / 9.0},
		{"zero rejected", 0, 4.0 / 3.0},
		{"negative rejected", -1, 4.0 / 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := New(4.0 / 3.0)
			cam.SetAspect(tt.aspect)
			if cam.Aspect() != tt.want {
				t.Errorf("aspect = %v, want %v", cam.Aspect(), tt.want)
			}
		})
	}
}

func TestMatricesFinite(t *testing.T) {
	cam := New(4.0 / 3.0)
	cam.Orbit(0.3, 0.2)
	cam.Pan(1, -1)
	cam.Zoom(0.5)

	view := cam.ViewMatrix()
	projection := cam.ProjectionMatrix()
	for i := 0; i < 16; i++ {
		if math.IsNaN(float64(view[i])) {
			t.Fatalf("view matrix contains NaN at %d: %v", i, view)
		}
		if math.IsNaN(float64(projection[i])) {
			t.Fatalf("projection matrix contains NaN at %d: %v", i, projection)
		}
	}
}
