package math

// GenerateFaceNormals computes one normal per triangle from the
// finalized vertex/triangle buffers of a mesh.
// NOTE: These are face normals. Because unindexed (soup) meshes never
// share vertex slots between adjacent triangles, smooth per-vertex
// normals cannot be derived from them without a deduplication pass.
func GenerateFaceNormals(vertices []Vec3, triangles []Triangle) []Vec3 {
	normals := make([]Vec3, len(triangles))
	for i, tri := range triangles {
		edge1 := vertices[tri.V1].Sub(vertices[tri.V0])
		edge2 := vertices[tri.V2].Sub(vertices[tri.V0])
		normals[i] = edge1.Cross(edge2).Normalized()
	}
	return normals
}

// CalculateExtents returns the axis-aligned bounds of a vertex buffer.
func CalculateExtents(vertices []Vec3) Extents3D {
	if len(vertices) == 0 {
		return Extents3D{}
	}
	extents := Extents3D{Min: vertices[0], Max: vertices[0]}
	for _, v := range vertices[1:] {
		if v.X < extents.Min.X {
			extents.Min.X = v.X
		}
		if v.Y < extents.Min.Y {
			extents.Min.Y = v.Y
		}
		if v.Z < extents.Min.Z {
			extents.Min.Z = v.Z
		}
		if v.X > extents.Max.X {
			extents.Max.X = v.X
		}
		if v.Y > extents.Max.Y {
			extents.Max.Y = v.Y
		}
		if v.Z > extents.Max.Z {
			extents.Max.Z = v.Z
		}
	}
	return extents
}

// Center returns the midpoint of the extents.
func (e Extents3D) Center() Vec3 {
	return e.Min.Add(e.Max).MulScalar(0.5)
}
