package render

// Vertex layout shared by the axis-triad and grid buffers: 3 position floats
// followed by 4 RGBA color floats.
const floatsPerVertex = 7

const (
	// GridSize is the extent of each grid plane in meters.
	GridSize = 1.0
	// GridStep is the spacing between grid lines, one tenth of the extent.
	GridStep = 0.1
	// AxisLength is the length of each axis of a frame triad.
	AxisLength = 0.1
)

const gridLines = int(GridSize / GridStep)

// AxisVertexCount is the number of vertices in the triad buffer: two per
// axis line.
const AxisVertexCount = 6

// GridVertexCount is the number of vertices in the grid buffer: per plane,
// gridLines+1 positions each spawning two lines of two vertices, for three
// orthogonal planes.
const GridVertexCount = (gridLines + 1) * 4 * 3

// axisVertices returns the triad geometry: one line per axis from the origin,
// X red, Y green, Z blue.
func axisVertices() []float32 {
	return []float32{
		// position        color
		0, 0, 0, 1, 0, 0, 1,
		AxisLength, 0, 0, 1, 0, 0, 1,
		0, 0, 0, 0, 1, 0, 1,
		0, AxisLength, 0, 0, 1, 0, 1,
		0, 0, 0, 0, 0, 1, 1,
		0, 0, AxisLength, 0, 0, 1, 1,
	}
}

// gridColor is the uniform translucent gray of all grid lines.
var gridColor = [4]float32{0.8, 0.8, 0.8, 0.3}

// gridVertices returns line segments tiling the XY, XZ and YZ unit planes at
// GridStep spacing.
func gridVertices() []float32 {
	vertices := make([]float32, 0, GridVertexCount*floatsPerVertex)

	line := func(x0, y0, z0, x1, y1, z1 float32) {
		vertices = append(vertices,
			x0, y0, z0, gridColor[0], gridColor[1], gridColor[2], gridColor[3],
			x1, y1, z1, gridColor[0], gridColor[1], gridColor[2], gridColor[3],
		)
	}

	for i := 0; i <= gridLines; i++ {
		pos := float32(i) * GridStep

		// XY plane
		line(0, pos, 0, GridSize, pos, 0)
		line(pos, 0, 0, pos, GridSize, 0)

		// XZ plane
		line(0, 0, pos, GridSize, 0, pos)
		line(pos, 0, 0, pos, 0, GridSize)

		// YZ plane
		line(0, 0, pos, 0, GridSize, pos)
		line(0, pos, 0, 0, pos, GridSize)
	}

	return vertices
}
