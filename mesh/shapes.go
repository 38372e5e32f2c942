package mesh

import "github.com/go-gl/mathgl/mgl32"

// Triangle has position and color attributes.
var Triangle = Data{
	Layout: Layout{3, 3},
	Vertices: []float32{
		// positions      // colors
		0.5, -0.5, 0.0, 1.0, 0.0, 0.0,
		-0.5, -0.5, 0.0, 0.0, 1.0, 0.0,
		0.0, 0.5, 0.0, 0.0, 0.0, 1.0,
	},
}

// Rectangle is two indexed triangles with position and color attributes.
var Rectangle = Data{
	Layout: Layout{3, 3},
	Vertices: []float32{
		0.5, 0.5, 0.0, 1.0, 0.0, 0.0, // top right
		0.5, -0.5, 0.0, 0.0, 1.0, 0.0, // bottom right
		-0.5, -0.5, 0.0, 0.0, 0.0, 1.0, // bottom left
		-0.5, 0.5, 0.0, 1.0, 1.0, 1.0, // top left
	},
	Indices: []uint32{
		0, 1, 3,
		1, 2, 3,
	},
}

// Quad is Rectangle with texture coordinates.
var Quad = Data{
	Layout: Layout{3, 3, 2},
	Vertices: []float32{
		0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 1.0, 1.0,
		0.5, -0.5, 0.0, 0.0, 1.0, 0.0, 1.0, 0.0,
		-0.5, -0.5, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0,
		-0.5, 0.5, 0.0, 1.0, 1.0, 0.0, 0.0, 1.0,
	},
	Indices: []uint32{
		0, 1, 3,
		1, 2, 3,
	},
}

// Cube is a unit cube of 36 vertices with position and uv attributes.
var Cube = Data{
	Layout: Layout{3, 2},
	Vertices: []float32{
		-0.5, -0.5, -0.5, 0.0, 0.0,
		0.5, -0.5, -0.5, 1.0, 0.0,
		0.5, 0.5, -0.5, 1.0, 1.0,
		0.5, 0.5, -0.5, 1.0, 1.0,
		-0.5, 0.5, -0.5, 0.0, 1.0,
		-0.5, -0.5, -0.5, 0.0, 0.0,

		-0.5, -0.5, 0.5, 0.0, 0.0,
		0.5, -0.5, 0.5, 1.0, 0.0,
		0.5, 0.5, 0.5, 1.0, 1.0,
		0.5, 0.5, 0.5, 1.0, 1.0,
		-0.5, 0.5, 0.5, 0.0, 1.0,
		-0.5, -0.5, 0.5, 0.0, 0.0,

		-0.5, 0.5, 0.5, 1.0, 0.0,
		-0.5, 0.5, -0.5, 1.0, 1.0,
		-0.5, -0.5, -0.5, 0.0, 1.0,
		-0.5, -0.5, -0.5, 0.0, 1.0,
		-0.5, -0.5, 0.5, 0.0, 0.0,
		-0.5, 0.5, 0.5, 1.0, 0.0,

		0.5, 0.5, 0.5, 1.0, 0.0,
		0.5, 0.5, -0.5, 1.0, 1.0,
		0.5, -0.5, -0.5, 0.0, 1.0,
		0.5, -0.5, -0.5, 0.0, 1.0,
		0.5, -0.5, 0.5, 0.0, 0.0,
		0.5, 0.5, 0.5, 1.0, 0.0,

		-0.5, -0.5, -0.5, 0.0, 1.0,
		0.5, -0.5, -0.5, 1.0, 1.0,
		0.5, -0.5, 0.5, 1.0, 0.0,
		0.5, -0.5, 0.5, 1.0, 0.0,
		-0.5, -0.5, 0.5, 0.0, 0.0,
		-0.5, -0.5, -0.5, 0.0, 1.0,

		-0.5, 0.5, -0.5, 0.0, 1.0,
		0.5, 0.5, -0.5, 1.0, 1.0,
		0.5, 0.5, 0.5, 1.0, 0.0,
		0.5, 0.5, 0.5, 1.0, 0.0,
		-0.5, 0.5, 0.5, 0.0, 0.0,
		-0.5, 0.5, -0.5, 0.0, 1.0,
	},
}

// CubePositions places ten cubes around the origin.
var CubePositions = []mgl32.Vec3{
	{0.0, 0.0, 0.0},
	{2.0, 5.0, -15.0},
	{-1.5, -2.2, -2.5},
	{-3.8, -2.0, -12.3},
	{2.4, -0.4, -3.5},
	{-1.7, 3.0, -7.5},
	{1.3, -2.0, -2.5},
	{1.5, 2.0, -2.5},
	{1.5, 0.2, -1.5},
	{-1.3, 1.0, -1.5},
}
