package memory

import (
	"fmt"
	"sync"

	"github.com/spaghettifunk/lumina/engine/accel"
	"github.com/spaghettifunk/lumina/engine/core"
	"github.com/spaghettifunk/lumina/engine/math"
)

/** @brief The write state of a single geometry buffer. */
type bufferState int

const (
	// Allocated, not yet acquired for writing.
	stateWritable bufferState = iota
	// Acquired; exactly one writer may populate it.
	stateAcquired
	// Released; contents are published and immutable.
	stateFinalized
)

func (s bufferState) String() string {
	switch s {
	case stateWritable:
		return "writable"
	case stateAcquired:
		return "acquired"
	case stateFinalized:
		return "finalized"
	}
	return "unknown"
}

type geometrySlot struct {
	inUse       bool
	static      bool
	vertices    []math.Vec3
	triangles   []math.Triangle
	vertexState bufferState
	indexState  bufferState
}

/**
 * @brief An in-memory geometry storage backend. It owns all buffer
 * memory and enforces the acquire/release discipline; it performs no
 * spatial indexing of its own.
 */
type Backend struct {
	mutex sync.Mutex
	slots []geometrySlot
	count uint32
}

func NewBackend(maxGeometryCount uint32) *Backend {
	if maxGeometryCount == 0 {
		core.LogWarn("maxGeometryCount must be > 0. Defaulting to one.")
		maxGeometryCount = 1
	}
	return &Backend{
		slots: make([]geometrySlot, maxGeometryCount),
	}
}

func (b *Backend) AllocateTriangleGeometry(triangleCount, vertexCount uint32, flags accel.GeometryFlags) (accel.GeometryHandle, error) {
	if triangleCount == 0 || vertexCount == 0 {
		err := fmt.Errorf("%w: geometry must declare at least one triangle and one vertex (triangles=%d, vertices=%d)",
			core.ErrInvalidInputShape, triangleCount, vertexCount)
		return accel.InvalidHandle, err
	}

	b.mutex.Lock()
	defer b.mutex.Unlock()

	// Existing free spot. Take it.
	for i := range b.slots {
		if b.slots[i].inUse {
			continue
		}
		b.slots[i] = geometrySlot{
			inUse:     true,
			static:    flags&accel.GeometryFlagStatic != 0,
			vertices:  make([]math.Vec3, vertexCount),
			triangles: make([]math.Triangle, triangleCount),
		}
		b.count++
		return accel.GeometryHandle(i), nil
	}

	err := fmt.Errorf("unable to obtain free slot for geometry (capacity=%d)", len(b.slots))
	return accel.InvalidHandle, err
}

func (b *Backend) AcquireVertexBuffer(handle accel.GeometryHandle) ([]math.Vec3, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	slot, err := b.slot(handle)
	if err != nil {
		return nil, err
	}
	if slot.vertexState != stateWritable {
		return nil, b.protocolViolation(handle, accel.BufferKindVertex, "acquire", slot.vertexState)
	}
	slot.vertexState = stateAcquired
	return slot.vertices, nil
}

func (b *Backend) AcquireIndexBuffer(handle accel.GeometryHandle) ([]math.Triangle, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	slot, err := b.slot(handle)
	if err != nil {
		return nil, err
	}
	if slot.indexState != stateWritable {
		return nil, b.protocolViolation(handle, accel.BufferKindIndex, "acquire", slot.indexState)
	}
	slot.indexState = stateAcquired
	return slot.triangles, nil
}

func (b *Backend) ReleaseBuffer(handle accel.GeometryHandle, kind accel.BufferKind) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	slot, err := b.slot(handle)
	if err != nil {
		return err
	}
	switch kind {
	case accel.BufferKindVertex:
		if slot.vertexState != stateAcquired {
			return b.protocolViolation(handle, kind, "release", slot.vertexState)
		}
		slot.vertexState = stateFinalized
	case accel.BufferKindIndex:
		if slot.indexState != stateAcquired {
			return b.protocolViolation(handle, kind, "release", slot.indexState)
		}
		slot.indexState = stateFinalized
	default:
		return fmt.Errorf("%w: unknown buffer kind %d", core.ErrBufferProtocol, kind)
	}
	return nil
}

func (b *Backend) GeometryFinalized(handle accel.GeometryHandle) (bool, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	slot, err := b.slot(handle)
	if err != nil {
		return false, err
	}
	return slot.vertexState == stateFinalized && slot.indexState == stateFinalized, nil
}

func (b *Backend) VertexBuffer(handle accel.GeometryHandle) ([]math.Vec3, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	slot, err := b.slot(handle)
	if err != nil {
		return nil, err
	}
	if slot.vertexState != stateFinalized {
		return nil, b.protocolViolation(handle, accel.BufferKindVertex, "read", slot.vertexState)
	}
	return slot.vertices, nil
}

func (b *Backend) IndexBuffer(handle accel.GeometryHandle) ([]math.Triangle, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	slot, err := b.slot(handle)
	if err != nil {
		return nil, err
	}
	if slot.indexState != stateFinalized {
		return nil, b.protocolViolation(handle, accel.BufferKindIndex, "read", slot.indexState)
	}
	return slot.triangles, nil
}

func (b *Backend) DestroyGeometry(handle accel.GeometryHandle) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	slot, err := b.slot(handle)
	if err != nil {
		return err
	}
	// Just zero out the entry, making the slot available for use.
	*slot = geometrySlot{}
	b.count--
	return nil
}

func (b *Backend) GeometryCount() uint32 {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.count
}

func (b *Backend) Shutdown() error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.slots = nil
	b.count = 0
	return nil
}

func (b *Backend) slot(handle accel.GeometryHandle) (*geometrySlot, error) {
	if uint32(handle) >= uint32(len(b.slots)) || !b.slots[handle].inUse {
		return nil, fmt.Errorf("invalid geometry handle %d", handle)
	}
	return &b.slots[handle], nil
}

// protocolViolation builds the error for a buffer used outside the
// acquire -> populate -> release order. These indicate a bug in the
// lowering logic, not a recoverable runtime condition.
func (b *Backend) protocolViolation(handle accel.GeometryHandle, kind accel.BufferKind, op string, state bufferState) error {
	err := fmt.Errorf("%w: cannot %s %s buffer of geometry %d while %s",
		core.ErrBufferProtocol, op, kind, handle, state)
	core.LogError(err.Error())
	return err
}
