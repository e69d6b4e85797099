// Transform-helper demo: frames built with the transform package rotating in
// place, orbiting another frame and oscillating through world space.
package main

import (
	"fmt"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/poselab/framesviewer"
	"github.com/poselab/framesviewer/transform"
)

func main() {
	viewer := framesviewer.New()
	if err := viewer.Start(); err != nil {
		fmt.Println("failed to start viewer:", err)
		os.Exit(1)
	}

	// A fixed reference frame at an offset.
	basePosition := mgl32.Vec3{0.3, 0.2, 0.1}
	viewer.PushFrame("base", transform.MakePose(basePosition, mgl32.Vec3{}))

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	var t float32
	for {
		select {
		case <-interrupt:
			viewer.Stop()
			return
		case <-ticker.C:
		}

		// Spinning in place about Z.
		rotating := transform.MakePoseDeg(mgl32.Vec3{0.5, 0, 0}, mgl32.Vec3{0, 0, t * 90})
		viewer.PushFrame("rotating", rotating)

		// Orbiting the base frame about its Y axis.
		orbiting := transform.RotateAbout(
			transform.MakePose(mgl32.Vec3{0.2, 0, 0}, mgl32.Vec3{}),
			mgl32.Vec3{0, mgl32.DegToRad(t * 90), 0},
			basePosition,
		)
		viewer.PushFrame("orbiting", orbiting)

		// Oscillating through world space with a fixed tilt.
		oscillating := transform.TranslateAbsolute(
			transform.MakePoseDeg(mgl32.Vec3{}, mgl32.Vec3{45, 0, 45}),
			mgl32.Vec3{0.3 + 0.2*float32(math.Sin(float64(t*2))), 0.4, 0.2},
		)
		viewer.PushFrame("oscillating", oscillating)

		// Tumbling about its own X and Y axes.
		selfRotating := transform.RotateInSelf(
			transform.MakePose(mgl32.Vec3{0, 0.5, 0}, mgl32.Vec3{}),
			mgl32.Vec3{mgl32.DegToRad(t * 90), mgl32.DegToRad(t * 45), 0},
		)
		viewer.PushFrame("self_rotating", selfRotating)

		t += 0.016
	}
}
