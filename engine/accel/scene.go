package accel

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/spaghettifunk/lumina/engine/config"
	"github.com/spaghettifunk/lumina/engine/core"
	"github.com/spaghettifunk/lumina/engine/math"
)

/**
 * @brief A scene groups the geometries registered against one
 * acceleration-structure backend. Mesh wrappers hold a reference to the
 * scene for their whole lifetime, so the scene (and the backend memory
 * behind it) cannot be torn down while a wrapper is still alive.
 */
type Scene struct {
	name    string
	config  *config.Config
	backend Backend
	// Registered geometries, keyed by backend handle.
	geometries map[GeometryHandle]*Geometry
	committed  bool
}

func NewScene(cfg *config.Config, backend Backend) (*Scene, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if backend == nil {
		err := fmt.Errorf("func NewScene - backend must not be nil")
		core.LogError(err.Error())
		return nil, err
	}
	return &Scene{
		name:       fmt.Sprintf("%s-%s", cfg.SceneName, uuid.New().String()),
		config:     cfg,
		backend:    backend,
		geometries: map[GeometryHandle]*Geometry{},
	}, nil
}

func (s *Scene) Name() string {
	return s.name
}

// CreateTriangleGeometry allocates a backend slot sized for the given
// counts and registers it with the scene. An empty name gets a
// generated one.
func (s *Scene) CreateTriangleGeometry(name string, triangleCount, vertexCount uint32, flags GeometryFlags) (*Geometry, error) {
	if s.committed {
		err := fmt.Errorf("%w: cannot register geometry on scene '%s'", core.ErrSceneCommitted, s.name)
		core.LogError(err.Error())
		return nil, err
	}
	if uint32(len(s.geometries)) >= s.config.MaxGeometryCount {
		err := fmt.Errorf("%w: scene '%s' holds %d geometries. Adjust max_geometry_count to allow more space",
			core.ErrSceneLimit, s.name, len(s.geometries))
		core.LogError(err.Error())
		return nil, err
	}

	handle, err := s.backend.AllocateTriangleGeometry(triangleCount, vertexCount, flags)
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}

	if name == "" {
		name = uuid.New().String()
	}
	geometry := &Geometry{
		Handle:        handle,
		Name:          name,
		TriangleCount: triangleCount,
		VertexCount:   vertexCount,
	}
	s.geometries[handle] = geometry

	core.LogDebug("scene '%s': allocated geometry '%s' (handle=%d, triangles=%d, vertices=%d)",
		s.name, name, handle, triangleCount, vertexCount)

	return geometry, nil
}

func (s *Scene) AcquireVertexBuffer(handle GeometryHandle) ([]math.Vec3, error) {
	return s.backend.AcquireVertexBuffer(handle)
}

func (s *Scene) AcquireIndexBuffer(handle GeometryHandle) ([]math.Triangle, error) {
	return s.backend.AcquireIndexBuffer(handle)
}

func (s *Scene) ReleaseBuffer(handle GeometryHandle, kind BufferKind) error {
	return s.backend.ReleaseBuffer(handle, kind)
}

func (s *Scene) VertexBuffer(handle GeometryHandle) ([]math.Vec3, error) {
	return s.backend.VertexBuffer(handle)
}

func (s *Scene) IndexBuffer(handle GeometryHandle) ([]math.Triangle, error) {
	return s.backend.IndexBuffer(handle)
}

// Geometry returns the scene-side record for a handle.
func (s *Scene) Geometry(handle GeometryHandle) (*Geometry, error) {
	geometry, ok := s.geometries[handle]
	if !ok {
		err := fmt.Errorf("scene '%s' has no geometry with handle %d", s.name, handle)
		core.LogError(err.Error())
		return nil, err
	}
	return geometry, nil
}

func (s *Scene) GeometryCount() uint32 {
	return uint32(len(s.geometries))
}

// DestroyGeometry frees a slot and drops it from the registry.
func (s *Scene) DestroyGeometry(handle GeometryHandle) error {
	if _, ok := s.geometries[handle]; !ok {
		err := fmt.Errorf("scene '%s' cannot destroy unknown handle %d. Nothing was done", s.name, handle)
		core.LogWarn(err.Error())
		return err
	}
	if err := s.backend.DestroyGeometry(handle); err != nil {
		core.LogError(err.Error())
		return err
	}
	delete(s.geometries, handle)
	return nil
}

// Commit seals the scene. Every registered geometry must have both of
// its buffers finalized; a partially filled slot means a construction
// failed mid-way and the scene must not be handed to the engine.
func (s *Scene) Commit() error {
	if s.committed {
		core.LogWarn("scene '%s' already committed. Nothing was done.", s.name)
		return nil
	}
	for handle, geometry := range s.geometries {
		finalized, err := s.backend.GeometryFinalized(handle)
		if err != nil {
			core.LogError(err.Error())
			return err
		}
		if !finalized {
			err := fmt.Errorf("%w: geometry '%s' (handle=%d) is not finalized",
				core.ErrBufferProtocol, geometry.Name, handle)
			core.LogError(err.Error())
			return err
		}
	}
	s.committed = true
	core.LogInfo("scene '%s' committed with %d geometries", s.name, len(s.geometries))
	return nil
}

func (s *Scene) Committed() bool {
	return s.committed
}

func (s *Scene) Shutdown() error {
	s.geometries = map[GeometryHandle]*Geometry{}
	return s.backend.Shutdown()
}
