// Package framesviewer implements a real-time 3D viewer for named coordinate
// frames. Each frame is a 4x4 pose rendered as a colored axis triad (X red,
// Y green, Z blue) over a grid of the XY, XZ and YZ planes, in meters.
//
// Producers push and clear frames from any goroutine at whatever rate they
// like; a dedicated render thread redraws at its own cadence from a copied
// snapshot of the store. The camera orbits with a left drag, pans with a
// middle drag and zooms with the scroll wheel.
package framesviewer

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/poselab/framesviewer/render"
)

// Config holds the window and input parameters of a viewer. Zero fields are
// replaced with the defaults of DefaultConfig.
type Config struct {
	Title  string
	Width  int
	Height int
	// VSync caps the render loop at the display refresh rate. Off by
	// default: the loop redraws as fast as the host allows.
	VSync bool

	// OrbitSensitivity is radians of camera rotation per pixel dragged.
	OrbitSensitivity float32
	// PanSensitivity scales pixel drag deltas before the distance-
	// proportional pan step.
	PanSensitivity float32
	// ScrollSensitivity is the zoom amount per scroll line.
	ScrollSensitivity float32
}

// DefaultConfig returns the standard viewer parameters: an 800x600 window
// and the interaction sensitivities the viewer has always shipped with.
func DefaultConfig() Config {
	return Config{
		Title:             "Frames Viewer",
		Width:             800,
		Height:            600,
		OrbitSensitivity:  0.01,
		PanSensitivity:    0.08,
		ScrollSensitivity: 2.0,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Title == "" {
		c.Title = def.Title
	}
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.OrbitSensitivity == 0 {
		c.OrbitSensitivity = def.OrbitSensitivity
	}
	if c.PanSensitivity == 0 {
		c.PanSensitivity = def.PanSensitivity
	}
	if c.ScrollSensitivity == 0 {
		c.ScrollSensitivity = def.ScrollSensitivity
	}
	return c
}

// Viewer composes the frame store, the render pipeline and the render-thread
// lifecycle. All methods are safe to call from any goroutine.
type Viewer struct {
	cfg   Config
	store *FrameStore

	running       atomic.Bool
	stopRequested atomic.Bool
}

// New creates a viewer with DefaultConfig.
func New() *Viewer {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a viewer with the given configuration.
func NewWithConfig(cfg Config) *Viewer {
	return &Viewer{
		cfg:   cfg.withDefaults(),
		store: NewFrameStore(),
	}
}

// Start opens the viewer window and spawns the render thread. It blocks
// until the window, GL context and shader program exist, so any setup
// failure is reported here with its underlying cause. Returns
// ErrAlreadyRunning if the viewer is already live.
func (v *Viewer) Start() error {
	if !v.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	v.stopRequested.Store(false)

	ready := make(chan error, 1)
	go v.run(ready)

	if err := <-ready; err != nil {
		v.running.Store(false)
		return err
	}
	return nil
}

// PushFrame inserts or replaces the frame displayed under name. The
// transform is copied; the next rendered frame reflects it.
func (v *Viewer) PushFrame(name string, transform Transform) {
	v.store.Push(name, transform)
}

// ClearFrames removes all frames from the viewer. The origin triad is not a
// stored frame and remains visible.
func (v *Viewer) ClearFrames() {
	v.store.Clear()
}

// Stop signals the render loop to exit after its current iteration. It does
// not block for completion and does not interrupt an in-flight draw.
func (v *Viewer) Stop() {
	v.stopRequested.Store(true)
}

// Running reports whether the render thread is live.
func (v *Viewer) Running() bool {
	return v.running.Load()
}

// run is the body of the render thread. GL contexts are thread-affine, so
// the goroutine is locked to its OS thread and every GL handle stays inside
// it; producers only ever reach the loop through the frame store.
func (v *Viewer) run(ready chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer v.running.Store(false)

	window, pipeline, err := v.setup()
	if err != nil {
		ready <- err
		return
	}
	ready <- nil

	input := &inputState{}
	v.bindCallbacks(window, pipeline, input)

	for !window.ShouldClose() && !v.stopRequested.Load() {
		// Callbacks fire here, on this thread, so all camera and
		// viewport mutation happens before the draw below.
		glfw.PollEvents()

		drawScene(pipeline, v.store.Snapshot())
		window.SwapBuffers()
	}

	pipeline.Destroy()
	window.Destroy()
	glfw.Terminate()
}

// setup creates the window, makes its GL context current and builds the
// render pipeline.
func (v *Viewer) setup() (*glfw.Window, *render.Pipeline, error) {
	if err := glfw.Init(); err != nil {
		return nil, nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(v.cfg.Width, v.cfg.Height, v.cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if v.cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	fbWidth, fbHeight := window.GetFramebufferSize()
	pipeline, err := render.New(fbWidth, fbHeight)
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, nil, fmt.Errorf("initialize renderer: %w", err)
	}
	return window, pipeline, nil
}

// bindCallbacks translates window events into camera and pipeline calls:
// left drag orbits, middle drag pans, scroll zooms, resize updates the
// viewport and aspect together.
func (v *Viewer) bindCallbacks(window *glfw.Window, pipeline *render.Pipeline, input *inputState) {
	window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		pressed := action == glfw.Press
		switch button {
		case glfw.MouseButtonLeft:
			input.setButton(buttonLeft, pressed)
		case glfw.MouseButtonMiddle:
			input.setButton(buttonMiddle, pressed)
		}
	})

	window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		dx, dy := input.motion(x, y)
		cam := pipeline.Camera()
		switch {
		case input.leftPressed:
			cam.Orbit(float32(dx)*v.cfg.OrbitSensitivity, float32(dy)*v.cfg.OrbitSensitivity)
		case input.middlePressed:
			cam.Pan(float32(-dx)*v.cfg.PanSensitivity, float32(dy)*v.cfg.PanSensitivity)
		}
	})

	window.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		pipeline.Camera().Zoom(float32(yoff) * v.cfg.ScrollSensitivity)
	})

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		pipeline.Resize(width, height)
	})
}

// scenePipeline is the subset of the render pipeline the draw sequence
// drives. render.Pipeline implements it; tests substitute a recorder.
type scenePipeline interface {
	BeginFrame()
	DrawGrid()
	DrawFrame(transform mgl32.Mat4)
}

// drawScene issues one complete frame: clear, grid, every stored frame in
// unspecified order, then the origin frame last so the world reference is
// always drawn on top.
func drawScene(p scenePipeline, frames []Frame) {
	p.BeginFrame()
	p.DrawGrid()
	for _, frame := range frames {
		p.DrawFrame(frame.Transform)
	}
	p.DrawFrame(mgl32.Ident4())
}
