package accel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/lumina/engine/accel"
	"github.com/spaghettifunk/lumina/engine/accel/memory"
	"github.com/spaghettifunk/lumina/engine/config"
	"github.com/spaghettifunk/lumina/engine/core"
)

func newScene(t *testing.T, cfg *config.Config) *accel.Scene {
	t.Helper()
	scene, err := accel.NewScene(cfg, memory.NewBackend(8))
	require.NoError(t, err)
	return scene
}

func TestSceneRequiresBackend(t *testing.T) {
	_, err := accel.NewScene(config.Default(), nil)
	assert.Error(t, err)
}

func TestUnnamedGeometryGetsGeneratedName(t *testing.T) {
	scene := newScene(t, nil)

	geometry, err := scene.CreateTriangleGeometry("", 1, 3, accel.GeometryFlagStatic)
	require.NoError(t, err)
	assert.NotEmpty(t, geometry.Name)

	named, err := scene.CreateTriangleGeometry("teapot", 1, 3, accel.GeometryFlagStatic)
	require.NoError(t, err)
	assert.Equal(t, "teapot", named.Name)
}

func TestSceneGeometryLimit(t *testing.T) {
	cfg := config.Default()
	cfg.MaxGeometryCount = 1
	scene := newScene(t, cfg)

	_, err := scene.CreateTriangleGeometry("a", 1, 3, accel.GeometryFlagStatic)
	require.NoError(t, err)
	_, err = scene.CreateTriangleGeometry("b", 1, 3, accel.GeometryFlagStatic)
	assert.ErrorIs(t, err, core.ErrSceneLimit)
}

func TestCommitRejectsUnfinalizedGeometry(t *testing.T) {
	scene := newScene(t, nil)

	geometry, err := scene.CreateTriangleGeometry("half-built", 1, 3, accel.GeometryFlagStatic)
	require.NoError(t, err)

	// Only the vertex buffer goes through the full protocol.
	_, err = scene.AcquireVertexBuffer(geometry.Handle)
	require.NoError(t, err)
	require.NoError(t, scene.ReleaseBuffer(geometry.Handle, accel.BufferKindVertex))

	err = scene.Commit()
	assert.ErrorIs(t, err, core.ErrBufferProtocol)
	assert.False(t, scene.Committed())
}

func TestCommitSealsScene(t *testing.T) {
	scene := newScene(t, nil)

	geometry, err := scene.CreateTriangleGeometry("tri", 1, 3, accel.GeometryFlagStatic)
	require.NoError(t, err)

	_, err = scene.AcquireVertexBuffer(geometry.Handle)
	require.NoError(t, err)
	require.NoError(t, scene.ReleaseBuffer(geometry.Handle, accel.BufferKindVertex))
	_, err = scene.AcquireIndexBuffer(geometry.Handle)
	require.NoError(t, err)
	require.NoError(t, scene.ReleaseBuffer(geometry.Handle, accel.BufferKindIndex))

	require.NoError(t, scene.Commit())
	assert.True(t, scene.Committed())

	// No further registrations after commit.
	_, err = scene.CreateTriangleGeometry("late", 1, 3, accel.GeometryFlagStatic)
	assert.ErrorIs(t, err, core.ErrSceneCommitted)

	// Committing again is a no-op.
	assert.NoError(t, scene.Commit())
}

func TestGeometryLookup(t *testing.T) {
	scene := newScene(t, nil)

	created, err := scene.CreateTriangleGeometry("lookup", 2, 6, accel.GeometryFlagStatic)
	require.NoError(t, err)

	found, err := scene.Geometry(created.Handle)
	require.NoError(t, err)
	assert.Equal(t, created, found)
	assert.Equal(t, uint32(2), found.TriangleCount)
	assert.Equal(t, uint32(6), found.VertexCount)

	_, err = scene.Geometry(accel.GeometryHandle(99))
	assert.Error(t, err)
}
