/*
This is an example of application that will use the
engine packages to test things out
*/
package main

import (
	"github.com/spaghettifunk/lumina/engine/accel"
	"github.com/spaghettifunk/lumina/engine/accel/memory"
	"github.com/spaghettifunk/lumina/engine/config"
	"github.com/spaghettifunk/lumina/engine/core"
	"github.com/spaghettifunk/lumina/engine/geometry"
	"github.com/spaghettifunk/lumina/engine/math"
)

func main() {
	cfg, err := config.Load("lumina.toml")
	if err != nil {
		panic(err)
	}

	scene, err := accel.NewScene(cfg, memory.NewBackend(cfg.MaxGeometryCount))
	if err != nil {
		panic(err)
	}
	defer scene.Shutdown()

	// A random triangle soup.
	soup := make([][3]math.Vec3, 32)
	for i := range soup {
		for c := 0; c < 3; c++ {
			soup[i][c] = math.NewVec3(
				math.FRandomInRange(-10, 10),
				math.FRandomInRange(-10, 10),
				math.FRandomInRange(-10, 10),
			)
		}
	}
	soupMesh, err := geometry.NewTriangleSoup(scene, "random-soup", soup)
	if err != nil {
		panic(err)
	}

	// An indexed quad: two triangles over four shared vertices.
	quadMesh, err := geometry.NewIndexedTriangleMesh(scene, "quad",
		[]math.Vec3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0}},
		[]math.Triangle{{V0: 0, V1: 1, V2: 2}, {V0: 0, V1: 2, V2: 3}},
	)
	if err != nil {
		panic(err)
	}

	// A unit cube as a single hexahedral element.
	cubeMesh, err := geometry.NewElementMesh(scene, "unit-cube",
		[]math.Vec3{
			{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
		},
		[][]uint32{{0, 1, 2, 3, 4, 5, 6, 7}},
	)
	if err != nil {
		panic(err)
	}

	// A single tetrahedron.
	tetMesh, err := geometry.NewElementMesh(scene, "tet",
		[]math.Vec3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1}},
		[][]uint32{{0, 1, 2, 3}},
	)
	if err != nil {
		panic(err)
	}

	if err := scene.Commit(); err != nil {
		panic(err)
	}

	for _, mesh := range []*geometry.TriangleMesh{soupMesh, quadMesh, &cubeMesh.TriangleMesh, &tetMesh.TriangleMesh} {
		core.LogInfo("mesh '%s': handle=%d triangles=%d vertices=%d extents=%+v",
			mesh.Name(), mesh.Handle(), mesh.TriangleCount(), mesh.VertexCount(), mesh.Extents())
	}
}
