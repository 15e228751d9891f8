package accel

import (
	"github.com/spaghettifunk/lumina/engine/math"
)

/**
 * @brief The interface a geometry storage backend must implement.
 *
 * The backend owns all vertex and index memory. Callers follow a strict
 * protocol per buffer: acquire for writing, populate every element
 * exactly once, then release. Release finalizes the buffer; a finalized
 * buffer can never be re-acquired. The in-memory backend under
 * accel/memory is the reference implementation.
 */
type Backend interface {
	// AllocateTriangleGeometry reserves a geometry slot sized for the given
	// triangle and vertex counts. Counts are immutable afterwards.
	AllocateTriangleGeometry(triangleCount, vertexCount uint32, flags GeometryFlags) (GeometryHandle, error)
	// AcquireVertexBuffer grants exclusive write access to the slot's
	// vertex buffer and returns it as a bounded writable view.
	AcquireVertexBuffer(handle GeometryHandle) ([]math.Vec3, error)
	// AcquireIndexBuffer grants exclusive write access to the slot's
	// triangle buffer and returns it as a bounded writable view.
	AcquireIndexBuffer(handle GeometryHandle) ([]math.Triangle, error)
	// ReleaseBuffer finalizes a previously acquired buffer. Must be called
	// exactly once per successful acquisition.
	ReleaseBuffer(handle GeometryHandle, kind BufferKind) error
	// GeometryFinalized reports whether both buffers of the slot have been
	// released. The engine must not be queried against unfinalized slots.
	GeometryFinalized(handle GeometryHandle) (bool, error)
	// VertexBuffer returns the finalized vertex buffer for reading.
	VertexBuffer(handle GeometryHandle) ([]math.Vec3, error)
	// IndexBuffer returns the finalized triangle buffer for reading.
	IndexBuffer(handle GeometryHandle) ([]math.Triangle, error)
	// DestroyGeometry frees the slot. The handle becomes invalid.
	DestroyGeometry(handle GeometryHandle) error
	// GeometryCount returns the number of live geometry slots.
	GeometryCount() uint32
	Shutdown() error
}
