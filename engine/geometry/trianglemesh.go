package geometry

import (
	"fmt"

	"github.com/spaghettifunk/lumina/engine/accel"
	"github.com/spaghettifunk/lumina/engine/core"
	"github.com/spaghettifunk/lumina/engine/math"
)

/**
 * @brief A triangle-primitive geometry registered with a scene.
 *
 * The vertex and triangle buffers are owned by the scene's backend; the
 * mesh holds non-owning read views for its lifetime. Once constructed,
 * a mesh is immutable: counts are fixed and the buffers are finalized.
 */
type TriangleMesh struct {
	scene    *accel.Scene
	geometry *accel.Geometry
	// Finalized, backend-owned buffers.
	vertices  []math.Vec3
	triangles []math.Triangle
}

// NewTriangleSoup registers an unindexed triangle soup. Every triangle
// gets three private vertices: triangle i occupies vertex slots
// 3i, 3i+1, 3i+2 and its index entry is exactly that triple. Memory is
// traded for simplicity; coincident vertices are never shared, so
// shading that relies on shared-vertex normals can show seams.
func NewTriangleSoup(scene *accel.Scene, name string, triangles [][3]math.Vec3) (*TriangleMesh, error) {
	if scene == nil {
		return nil, sceneRequired("NewTriangleSoup")
	}
	if len(triangles) == 0 {
		err := fmt.Errorf("%w: a triangle soup needs at least one triangle", core.ErrInvalidInputShape)
		core.LogError(err.Error())
		return nil, err
	}

	numTriangles := uint32(len(triangles))
	geometry, err := scene.CreateTriangleGeometry(name, numTriangles, 3*numTriangles, accel.GeometryFlagStatic)
	if err != nil {
		return nil, err
	}

	mesh := &TriangleMesh{scene: scene, geometry: geometry}
	if err := mesh.populate(func(vertices []math.Vec3, indices []math.Triangle) {
		for i, corners := range triangles {
			base := uint32(3 * i)
			vertices[base+0] = corners[0]
			vertices[base+1] = corners[1]
			vertices[base+2] = corners[2]
			indices[i] = math.Triangle{V0: base, V1: base + 1, V2: base + 2}
		}
	}); err != nil {
		return nil, err
	}
	return mesh, nil
}

// NewIndexedTriangleMesh registers a shared-vertex triangle mesh. Both
// arrays are copied verbatim into the scene's buffers. Every index must
// be < len(vertices); out-of-range indices fail construction before any
// scene-side allocation happens.
func NewIndexedTriangleMesh(scene *accel.Scene, name string, vertices []math.Vec3, triangles []math.Triangle) (*TriangleMesh, error) {
	if scene == nil {
		return nil, sceneRequired("NewIndexedTriangleMesh")
	}
	if len(vertices) == 0 || len(triangles) == 0 {
		err := fmt.Errorf("%w: an indexed mesh needs vertices and triangles (vertices=%d, triangles=%d)",
			core.ErrInvalidInputShape, len(vertices), len(triangles))
		core.LogError(err.Error())
		return nil, err
	}
	numVertices := uint32(len(vertices))
	for i, tri := range triangles {
		if tri.V0 >= numVertices || tri.V1 >= numVertices || tri.V2 >= numVertices {
			err := fmt.Errorf("%w: triangle %d references (%d,%d,%d) but only %d vertices exist",
				core.ErrOutOfRangeIndex, i, tri.V0, tri.V1, tri.V2, numVertices)
			core.LogError(err.Error())
			return nil, err
		}
	}

	geometry, err := scene.CreateTriangleGeometry(name, uint32(len(triangles)), numVertices, accel.GeometryFlagStatic)
	if err != nil {
		return nil, err
	}

	mesh := &TriangleMesh{scene: scene, geometry: geometry}
	if err := mesh.populate(func(vertexBuffer []math.Vec3, indexBuffer []math.Triangle) {
		copy(vertexBuffer, vertices)
		copy(indexBuffer, triangles)
	}); err != nil {
		return nil, err
	}
	return mesh, nil
}

// populate runs the shared acquire -> fill -> release sequence for both
// buffers. Releases are deferred so they run on the error path too; no
// buffer is ever left in the acquired state when construction returns.
// On success the finalized views and extents are recorded on the mesh.
func (m *TriangleMesh) populate(fill func(vertices []math.Vec3, indices []math.Triangle)) (err error) {
	handle := m.geometry.Handle

	vertices, err := m.scene.AcquireVertexBuffer(handle)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := m.scene.ReleaseBuffer(handle, accel.BufferKindVertex); rerr != nil && err == nil {
			err = rerr
		}
	}()

	indices, err := m.scene.AcquireIndexBuffer(handle)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := m.scene.ReleaseBuffer(handle, accel.BufferKindIndex); rerr != nil && err == nil {
			err = rerr
		}
	}()

	fill(vertices, indices)

	m.vertices = vertices
	m.triangles = indices
	m.geometry.Extents = math.CalculateExtents(vertices)
	return nil
}

// Handle returns the opaque geometry identifier assigned by the scene.
func (m *TriangleMesh) Handle() accel.GeometryHandle {
	return m.geometry.Handle
}

func (m *TriangleMesh) Name() string {
	return m.geometry.Name
}

func (m *TriangleMesh) VertexCount() uint32 {
	return m.geometry.VertexCount
}

func (m *TriangleMesh) TriangleCount() uint32 {
	return m.geometry.TriangleCount
}

// Vertices returns the finalized, scene-owned vertex buffer. Read-only
// by contract; it must not outlive the scene.
func (m *TriangleMesh) Vertices() []math.Vec3 {
	return m.vertices
}

// Triangles returns the finalized, scene-owned triangle buffer.
func (m *TriangleMesh) Triangles() []math.Triangle {
	return m.triangles
}

func (m *TriangleMesh) Extents() math.Extents3D {
	return m.geometry.Extents
}

// FaceNormals computes one normal per triangle from the finalized
// buffers. Orientation follows the input winding; this engine does not
// enforce consistent outward orientation across faces.
func (m *TriangleMesh) FaceNormals() []math.Vec3 {
	return math.GenerateFaceNormals(m.vertices, m.triangles)
}

// Destroy frees the scene-side geometry slot. The mesh is unusable
// afterwards.
func (m *TriangleMesh) Destroy() error {
	return m.scene.DestroyGeometry(m.geometry.Handle)
}

func sceneRequired(caller string) error {
	err := fmt.Errorf("func %s - scene must not be nil", caller)
	core.LogError(err.Error())
	return err
}
