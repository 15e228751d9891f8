package geometry

import (
	"fmt"

	"github.com/spaghettifunk/lumina/engine/accel"
	"github.com/spaghettifunk/lumina/engine/core"
	"github.com/spaghettifunk/lumina/engine/math"
)

const (
	/** @brief Nodes per tetrahedral element. */
	TetrahedronNodeCount = 4
	/** @brief Nodes per hexahedral element. */
	HexahedronNodeCount = 8
	/** @brief Surface triangles produced per tetrahedron. */
	TrianglesPerTetrahedron = 4
	/** @brief Surface triangles produced per hexahedron (6 quad faces, split in two). */
	TrianglesPerHexahedron = 12
)

// localTriangle holds local node indices of one face triangle.
type localTriangle [3]uint32

// hexFaceTriangles fixes how the six quadrilateral faces of a
// hexahedron split into triangles. Local node numbering: 0-3 bottom
// face, 4-7 top face, node i+4 above node i. Each face lists its two
// triangles sharing the face diagonal.
var hexFaceTriangles = [TrianglesPerHexahedron]localTriangle{
	{0, 1, 2}, {0, 2, 3}, // face {0,1,2,3}
	{4, 5, 6}, {4, 6, 7}, // face {4,5,6,7}
	{0, 1, 5}, {0, 5, 4}, // face {0,1,5,4}
	{1, 2, 6}, {1, 6, 5}, // face {1,2,6,5}
	{0, 3, 7}, {0, 7, 4}, // face {0,3,7,4}
	{3, 2, 6}, {3, 6, 7}, // face {3,2,6,7}
}

// tetFaceTriangles lists the four faces of a tetrahedron, one per
// omitted node.
var tetFaceTriangles = [TrianglesPerTetrahedron]localTriangle{
	{0, 1, 2},
	{0, 1, 3},
	{0, 2, 3},
	{1, 2, 3},
}

/**
 * @brief A higher-order element mesh (tetrahedra or hexahedra) lowered
 * to triangles over a single shared vertex pool. After construction it
 * behaves exactly like a TriangleMesh; only the population path differs.
 */
type ElementMesh struct {
	TriangleMesh
	elementCount uint32
	nodesPerElem uint32
}

// NewElementMesh registers an element mesh with the scene. The element
// type is dispatched solely by the per-element width of `elements`:
// 8 nodes selects the hexahedron path, 4 the tetrahedron path, anything
// else fails with an unsupported-arity error. All validation happens
// before any scene-side allocation.
func NewElementMesh(scene *accel.Scene, name string, vertices []math.Vec3, elements [][]uint32) (*ElementMesh, error) {
	if scene == nil {
		return nil, sceneRequired("NewElementMesh")
	}
	if len(vertices) == 0 || len(elements) == 0 {
		err := fmt.Errorf("%w: an element mesh needs vertices and elements (vertices=%d, elements=%d)",
			core.ErrInvalidInputShape, len(vertices), len(elements))
		core.LogError(err.Error())
		return nil, err
	}

	nodesPerElem := uint32(len(elements[0]))
	var table []localTriangle
	switch nodesPerElem {
	case TetrahedronNodeCount:
		table = tetFaceTriangles[:]
	case HexahedronNodeCount:
		table = hexFaceTriangles[:]
	default:
		err := fmt.Errorf("%w: elements have %d nodes, supported are %d (tetrahedra) and %d (hexahedra)",
			core.ErrUnsupportedElementArity, nodesPerElem, TetrahedronNodeCount, HexahedronNodeCount)
		core.LogError(err.Error())
		return nil, err
	}

	numVertices := uint32(len(vertices))
	for e, element := range elements {
		if uint32(len(element)) != nodesPerElem {
			err := fmt.Errorf("%w: element %d has %d nodes, expected %d",
				core.ErrInvalidInputShape, e, len(element), nodesPerElem)
			core.LogError(err.Error())
			return nil, err
		}
		for n, node := range element {
			if node >= numVertices {
				err := fmt.Errorf("%w: element %d node %d references vertex %d but only %d vertices exist",
					core.ErrOutOfRangeIndex, e, n, node, numVertices)
				core.LogError(err.Error())
				return nil, err
			}
		}
	}

	trianglesPerElem := uint32(len(table))
	numTriangles := trianglesPerElem * uint32(len(elements))

	geometry, err := scene.CreateTriangleGeometry(name, numTriangles, numVertices, accel.GeometryFlagStatic)
	if err != nil {
		return nil, err
	}

	mesh := &ElementMesh{
		TriangleMesh: TriangleMesh{scene: scene, geometry: geometry},
		elementCount: uint32(len(elements)),
		nodesPerElem: nodesPerElem,
	}
	if err := mesh.populate(func(vertexBuffer []math.Vec3, indexBuffer []math.Triangle) {
		copy(vertexBuffer, vertices)
		for e, element := range elements {
			base := trianglesPerElem * uint32(e)
			for t, face := range table {
				// Local node indices mapped through the element's
				// local-to-global table.
				indexBuffer[base+uint32(t)] = math.Triangle{
					V0: element[face[0]],
					V1: element[face[1]],
					V2: element[face[2]],
				}
			}
		}
	}); err != nil {
		return nil, err
	}
	return mesh, nil
}

func (m *ElementMesh) ElementCount() uint32 {
	return m.elementCount
}

// NodesPerElement returns 4 for tetrahedral meshes and 8 for
// hexahedral meshes.
func (m *ElementMesh) NodesPerElement() uint32 {
	return m.nodesPerElem
}
