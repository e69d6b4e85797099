// Basic demo: one frame oscillating along X at 1 Hz while the viewer stays
// interactive. Ctrl-C stops the viewer.
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

	frame := transform.MakePose(mgl32.Vec3{0, 0.1, 0.1}, mgl32.Vec3{})

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-interrupt:
			viewer.Stop()
			return
		case <-ticker.C:
			t := time.Since(start).Seconds()
			frame[12] = float32(0.1 * math.Sin(2*math.Pi*t))
			viewer.PushFrame("frame1", frame)
		}
	}
}
