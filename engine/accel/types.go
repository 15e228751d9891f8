package accel

import (
	"github.com/spaghettifunk/lumina/engine/math"
)

/** @brief A sentinel value for an invalid geometry handle. */
const InvalidHandle GeometryHandle = 0xFFFFFFFF

/**
 * @brief An opaque identifier for a geometry slot inside the
 * acceleration-structure backend. Handles are never reused for the
 * lifetime of the mesh wrapper that owns them.
 */
type GeometryHandle uint32

/** @brief The kind of geometry buffer being addressed. */
type BufferKind int

const (
	/** @brief The vertex (position) buffer of a geometry slot. */
	BufferKindVertex BufferKind = iota
	/** @brief The index (triangle) buffer of a geometry slot. */
	BufferKindIndex
)

func (k BufferKind) String() string {
	switch k {
	case BufferKindVertex:
		return "vertex"
	case BufferKindIndex:
		return "index"
	}
	return "unknown"
}

/** @brief Allocation hints for a geometry slot. */
type GeometryFlags uint32

const (
	/**
	 * @brief The geometry is built once and never modified after its
	 * buffers are released. All geometry produced by this engine is static.
	 */
	GeometryFlagStatic GeometryFlags = 1 << iota
)

/**
 * @brief Scene-side record of a registered geometry. Counts are fixed
 * at allocation time and immutable afterwards.
 */
type Geometry struct {
	/** @brief The backend geometry handle. */
	Handle GeometryHandle
	/** @brief The geometry name. Generated if the caller supplies none. */
	Name string
	/** @brief The number of triangles declared at allocation. */
	TriangleCount uint32
	/** @brief The number of vertices declared at allocation. */
	VertexCount uint32
	/** @brief The axis-aligned bounds, recorded once buffers are finalized. */
	Extents math.Extents3D
}
