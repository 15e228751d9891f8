package math

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

/**
 * @brief A single triangle, stored as three zero-based indices
 * into a vertex buffer. Winding order is significant for
 * downstream normal computation and is preserved as given.
 */
type Triangle struct {
	V0, V1, V2 uint32
}

/**
 * @brief Represents the extents of a 3d object.
 */
type Extents3D struct {
	/** @brief The minimum extents of the object. */
	Min Vec3
	/** @brief The maximum extents of the object. */
	Max Vec3
}
