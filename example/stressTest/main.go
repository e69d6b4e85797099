// Stress demo: a 32x32 grid of frames animated as a travelling wave, with
// periodic update-rate output. Ctrl-C stops the viewer and prints totals.
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

const gridSize = 32

// Wave animation parameters.
const (
	amplitude        = 0.1 // 10cm wave height
	frequency        = 2.0
	spatialFrequency = 0.3
	rotSpeed         = 1.0
	rotAmplitude     = 0.2
)

// waveTransform places a frame on a 20cm grid with a travelling-wave height
// offset and a gentle position-dependent wobble.
func waveTransform(x, y, t float64) mgl32.Mat4 {
	baseX := x * 0.2
	baseY := y * 0.2

	zOffset := amplitude * math.Sin(frequency*t+math.Hypot(x, y)*spatialFrequency)

	rotX := math.Sin(t*rotSpeed+x*0.1) * rotAmplitude
	rotY := math.Cos(t*rotSpeed+y*0.1) * rotAmplitude
	rotZ := math.Sin(t*rotSpeed+(x+y)*0.1) * rotAmplitude

	return transform.MakePose(
		mgl32.Vec3{float32(baseX), float32(baseY), float32(zOffset)},
		mgl32.Vec3{float32(rotX), float32(rotY), float32(rotZ)},
	)
}

func main() {
	viewer := framesviewer.New()
	if err := viewer.Start(); err != nil {
		fmt.Println("failed to start viewer:", err)
		os.Exit(1)
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	fmt.Printf("Animating %d frames...\n", gridSize*gridSize)

	start := time.Now()
	updates := 0
	for {
		select {
		case <-interrupt:
			viewer.Stop()
			elapsed := time.Since(start).Seconds()
			fmt.Printf("\nTotal updates: %d\n", updates)
			fmt.Printf("Average rate: %.2f/s\n", float64(updates)/elapsed)
			return
		default:
		}

		t := time.Since(start).Seconds()
		for x := 0; x < gridSize; x++ {
			for y := 0; y < gridSize; y++ {
				pose := waveTransform(float64(x-gridSize/2), float64(y-gridSize/2), t)
				viewer.PushFrame(fmt.Sprintf("frame_%d_%d", x, y), pose)
			}
		}

		updates++
		if updates%100 == 0 {
			rate := float64(updates) / time.Since(start).Seconds()
			fmt.Printf("Update rate: %.2f/s (%d frames)\n", rate, gridSize*gridSize)
		}

		time.Sleep(time.Millisecond)
	}
}
