package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/lumina/engine/core"
	"github.com/spaghettifunk/lumina/engine/math"
)

// Unit cube corners in the hexahedral node ordering: nodes 0-3 on the
// bottom face, nodes 4-7 on the top face, node i+4 above node i.
func unitCubeVertices() []math.Vec3 {
	return []math.Vec3{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
	}
}

func TestUnitCubeHexahedron(t *testing.T) {
	scene := newTestScene(t)

	mesh, err := NewElementMesh(scene, "cube", unitCubeVertices(), [][]uint32{
		{0, 1, 2, 3, 4, 5, 6, 7},
	})
	require.NoError(t, err)

	assert.Equal(t, uint32(1), mesh.ElementCount())
	assert.Equal(t, uint32(HexahedronNodeCount), mesh.NodesPerElement())
	assert.Equal(t, uint32(12), mesh.TriangleCount())
	assert.Equal(t, uint32(8), mesh.VertexCount())
	assert.Equal(t, unitCubeVertices(), mesh.Vertices())

	// All 12 triangles, face by face, each quad split along its diagonal.
	expected := []math.Triangle{
		{V0: 0, V1: 1, V2: 2}, {V0: 0, V1: 2, V2: 3}, // bottom
		{V0: 4, V1: 5, V2: 6}, {V0: 4, V1: 6, V2: 7}, // top
		{V0: 0, V1: 1, V2: 5}, {V0: 0, V1: 5, V2: 4}, // front
		{V0: 1, V1: 2, V2: 6}, {V0: 1, V1: 6, V2: 5}, // right
		{V0: 0, V1: 3, V2: 7}, {V0: 0, V1: 7, V2: 4}, // left
		{V0: 3, V1: 2, V2: 6}, {V0: 3, V1: 6, V2: 7}, // back
	}
	assert.Equal(t, expected, mesh.Triangles())
}

func TestHexahedraShareVertexPool(t *testing.T) {
	scene := newTestScene(t)

	// Two hexahedra stacked in z, sharing the four middle vertices.
	vertices := []math.Vec3{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
		{X: 0, Y: 0, Z: 2}, {X: 1, Y: 0, Z: 2}, {X: 1, Y: 1, Z: 2}, {X: 0, Y: 1, Z: 2},
	}
	elements := [][]uint32{
		{0, 1, 2, 3, 4, 5, 6, 7},
		{4, 5, 6, 7, 8, 9, 10, 11},
	}

	mesh, err := NewElementMesh(scene, "stack", vertices, elements)
	require.NoError(t, err)

	assert.Equal(t, uint32(24), mesh.TriangleCount())
	// Vertex pool is shared and unchanged; no duplication.
	assert.Equal(t, uint32(12), mesh.VertexCount())

	// Element 1's triangles start at offset 12 and come from the fixed
	// face table mapped through its local-to-global row.
	second := mesh.Triangles()[12:]
	assert.Equal(t, math.Triangle{V0: 4, V1: 5, V2: 6}, second[0])
	assert.Equal(t, math.Triangle{V0: 4, V1: 6, V2: 7}, second[1])
	assert.Equal(t, math.Triangle{V0: 8, V1: 9, V2: 10}, second[2])
	assert.Equal(t, math.Triangle{V0: 8, V1: 10, V2: 11}, second[3])
	assert.Equal(t, math.Triangle{V0: 4, V1: 5, V2: 9}, second[4])
	assert.Equal(t, math.Triangle{V0: 4, V1: 9, V2: 8}, second[5])
}

func TestSingleTetrahedron(t *testing.T) {
	scene := newTestScene(t)

	vertices := []math.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}

	mesh, err := NewElementMesh(scene, "tet", vertices, [][]uint32{{0, 1, 2, 3}})
	require.NoError(t, err)

	assert.Equal(t, uint32(TetrahedronNodeCount), mesh.NodesPerElement())
	assert.Equal(t, uint32(4), mesh.TriangleCount())
	assert.Equal(t, uint32(4), mesh.VertexCount())
	assert.Equal(t, vertices, mesh.Vertices())

	// One face per omitted node.
	expected := []math.Triangle{
		{V0: 0, V1: 1, V2: 2},
		{V0: 0, V1: 1, V2: 3},
		{V0: 0, V1: 2, V2: 3},
		{V0: 1, V1: 2, V2: 3},
	}
	assert.Equal(t, expected, mesh.Triangles())
}

func TestTetrahedronLocalToGlobalMapping(t *testing.T) {
	scene := newTestScene(t)

	vertices := []math.Vec3{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1},
	}
	// Non-identity node row: the face table applies to local positions.
	mesh, err := NewElementMesh(scene, "", vertices, [][]uint32{{4, 2, 1, 0}})
	require.NoError(t, err)

	expected := []math.Triangle{
		{V0: 4, V1: 2, V2: 1},
		{V0: 4, V1: 2, V2: 0},
		{V0: 4, V1: 1, V2: 0},
		{V0: 2, V1: 1, V2: 0},
	}
	assert.Equal(t, expected, mesh.Triangles())
}

func TestUnsupportedElementArity(t *testing.T) {
	scene := newTestScene(t)

	for _, arity := range []int{1, 3, 5, 6, 7, 9} {
		element := make([]uint32, arity)
		_, err := NewElementMesh(scene, "", unitCubeVertices(), [][]uint32{element})
		assert.ErrorIs(t, err, core.ErrUnsupportedElementArity, "arity %d", arity)
	}

	// Arity failures happen before any scene-side allocation.
	assert.Equal(t, uint32(0), scene.GeometryCount())
}

func TestRaggedElementsRejected(t *testing.T) {
	scene := newTestScene(t)

	_, err := NewElementMesh(scene, "", unitCubeVertices(), [][]uint32{
		{0, 1, 2, 3},
		{0, 1, 2},
	})
	assert.ErrorIs(t, err, core.ErrInvalidInputShape)
	assert.Equal(t, uint32(0), scene.GeometryCount())
}

func TestElementNodeOutOfRange(t *testing.T) {
	scene := newTestScene(t)

	_, err := NewElementMesh(scene, "", unitCubeVertices(), [][]uint32{
		{0, 1, 2, 3, 4, 5, 6, 8},
	})
	assert.ErrorIs(t, err, core.ErrOutOfRangeIndex)
	assert.Equal(t, uint32(0), scene.GeometryCount())
}
