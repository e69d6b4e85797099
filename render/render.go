// Package render owns the GPU side of the viewer: the line shader program,
// the static axis-triad and grid vertex buffers, and the per-frame draw
// calls. A Pipeline must only ever be touched from the thread that owns the
// GL context.
package render

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/poselab/framesviewer/camera"
)

const (
	gridLineWidth  = 1.0
	frameLineWidth = 3.0
)

// backgroundColor is the clear color of every frame, a light gray.
var backgroundColor = [4]float32{0.95, 0.95, 0.95, 1}

// Pipeline holds the GL resources of one viewer window. Resources are
// allocated once by New and released by Destroy; between those only uniform
// values change.
type Pipeline struct {
	program uint32

	frameVAO uint32
	frameVBO uint32
	gridVAO  uint32
	gridVBO  uint32

	modelLoc      int32
	viewLoc       int32
	projectionLoc int32

	camera *camera.Camera
}

// New initializes GL state, compiles and links the line shader and uploads
// the static triad and grid geometry. The GL context must be current on the
// calling thread. Shader failures are returned with the compiler diagnostics
// attached; the viewer treats them as fatal.
func New(width, height int) (*Pipeline, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.Enable(gl.LINE_SMOOTH)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthFunc(gl.LEQUAL)

	program, err := linkProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		program:       program,
		modelLoc:      gl.GetUniformLocation(program, gl.Str("model\x00")),
		viewLoc:       gl.GetUniformLocation(program, gl.Str("view\x00")),
		projectionLoc: gl.GetUniformLocation(program, gl.Str("projection\x00")),
		camera:        camera.New(aspectOf(width, height)),
	}

	p.frameVAO, p.frameVBO = uploadLines(axisVertices())
	p.gridVAO, p.gridVBO = uploadLines(gridVertices())

	gl.Viewport(0, 0, int32(width), int32(height))

	return p, nil
}

// uploadLines creates a VAO/VBO pair for a static position+color line buffer.
func uploadLines(vertices []float32) (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)

	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	stride := int32(floatsPerVertex * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, gl.PtrOffset(3*4))

	return vao, vbo
}

// Camera returns the camera owned by this pipeline. It must only be mutated
// from the render thread.
func (p *Pipeline) Camera() *camera.Camera {
	return p.camera
}

// Resize updates the viewport and forwards the new aspect ratio to the
// camera. Width and height are always applied together.
func (p *Pipeline) Resize(width, height int) {
	p.camera.SetAspect(aspectOf(width, height))
	gl.Viewport(0, 0, int32(width), int32(height))
}

// BeginFrame clears the color and depth buffers to the background color.
func (p *Pipeline) BeginFrame() {
	gl.ClearColor(backgroundColor[0], backgroundColor[1], backgroundColor[2], backgroundColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawGrid draws the three grid planes with thin lines and an identity model
// matrix. It is called before any frame so frames render on top.
func (p *Pipeline) DrawGrid() {
	p.useCamera()

	model := mgl32.Ident4()
	gl.UniformMatrix4fv(p.modelLoc, 1, false, &model[0])

	gl.LineWidth(gridLineWidth)
	gl.BindVertexArray(p.gridVAO)
	gl.DrawArrays(gl.LINES, 0, int32(GridVertexCount))
}

// DrawFrame draws one axis triad with the given model transform, using
// thicker lines than the grid.
func (p *Pipeline) DrawFrame(transform mgl32.Mat4) {
	p.useCamera()

	gl.UniformMatrix4fv(p.modelLoc, 1, false, &transform[0])

	gl.LineWidth(frameLineWidth)
	gl.BindVertexArray(p.frameVAO)
	gl.DrawArrays(gl.LINES, 0, AxisVertexCount)
}

// Destroy releases all GL resources. The context must still be current.
func (p *Pipeline) Destroy() {
	gl.DeleteBuffers(1, &p.frameVBO)
	gl.DeleteBuffers(1, &p.gridVBO)
	gl.DeleteVertexArrays(1, &p.frameVAO)
	gl.DeleteVertexArrays(1, &p.gridVAO)
	gl.DeleteProgram(p.program)
}

func (p *Pipeline) useCamera() {
	gl.UseProgram(p.program)

	view := p.camera.ViewMatrix()
	projection := p.camera.ProjectionMatrix()
	gl.UniformMatrix4fv(p.viewLoc, 1, false, &view[0])
	gl.UniformMatrix4fv(p.projectionLoc, 1, false, &projection[0])
}

// aspectOf clamps the window height so a minimized or zero-height window can
// never produce a division by zero.
func aspectOf(width, height int) float32 {
	if height < 1 {
		height = 1
	}
	return float32(width) / float32(height)
}
