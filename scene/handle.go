package scene

import (
	"sync/atomic"

	scenebridge "github.com/wippyai/scene-bridge"
	"github.com/wippyai/scene-bridge/errors"
	"github.com/wippyai/scene-bridge/native"
)

// Scene owns an importer-produced scene pointer. It is created by a Library
// front-end (see the importer package), read any number of times, and closed
// exactly once; Close hands the pointer back to Library.ReleaseImport.
type Scene struct {
	view
	lib    scenebridge.Library
	closed atomic.Bool
}

// New wraps an importer-owned scene pointer. It is intended for Library
// implementations and import front-ends, not for application code: the
// caller asserts that raw came from an import entry point of lib and that
// no other handle owns it.
func New(lib scenebridge.Library, raw *native.AiScene) *Scene {
	return &Scene{
		view: view{raw: raw, life: newLife()},
		lib:  lib,
	}
}

// Clone deep-copies the scene through the foreign copy routine and returns
// a mutable handle owning the copy. The receiver stays valid and keeps its
// own release obligation; closing either handle never affects the other.
func (s *Scene) Clone() (*SceneMut, error) {
	if s.closed.Load() {
		return nil, errors.Closed(errors.PhaseCopy)
	}
	cp, err := s.lib.CopyScene(s.raw)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseCopy, errors.KindAllocation, err, "scene copy failed")
	}
	if cp == nil {
		// A nil copy with a nil error would otherwise become a handle whose
		// every use is undefined behavior on the foreign side.
		return nil, errors.AllocationFailed(errors.PhaseCopy, "scene copy")
	}
	return &SceneMut{
		view: view{raw: cp, life: newLife()},
		lib:  s.lib,
	}, nil
}

// Close releases the imported scene through Library.ReleaseImport. The
// first call wins; later calls are no-ops. All entity wrappers derived from
// this handle become invalid immediately.
func (s *Scene) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	s.life.kill()
	s.lib.ReleaseImport(s.raw)
	return nil
}

// SceneMut owns an independent deep copy of some source scene. It exposes
// every read operation of Scene plus a small mutation surface, and must be
// closed exactly once; Close hands the pointer to Library.FreeScene, never
// ReleaseImport.
type SceneMut struct {
	view
	lib    scenebridge.Library
	closed atomic.Bool
}

// Close releases the copied scene through Library.FreeScene. The first call
// wins; later calls are no-ops.
func (m *SceneMut) Close() error {
	if !m.closed.CompareAndSwap(false, true) {
		return nil
	}
	m.life.kill()
	m.lib.FreeScene(m.raw)
	return nil
}

// SetFlags replaces the scene flag bitset.
func (m *SceneMut) SetFlags(f native.SceneFlags) {
	m.life.check()
	m.raw.Flags = f
}

// AddFlags sets the given flag bits.
func (m *SceneMut) AddFlags(f native.SceneFlags) {
	m.life.check()
	m.raw.Flags |= f
}

// ClearFlags clears the given flag bits.
func (m *SceneMut) ClearFlags(f native.SceneFlags) {
	m.life.check()
	m.raw.Flags &^= f
}

// AppendMesh appends raw to the scene's mesh array. Ownership of raw
// transfers to the scene; it must not already belong to another scene.
func (m *SceneMut) AppendMesh(raw *native.AiMesh) {
	m.life.check()
	appendPtr(&m.raw.NumMeshes, &m.raw.Meshes, raw)
}

// RemoveMesh deletes the mesh at index i, preserving the order of the
// remaining meshes.
//
// Panics if i is out of range, matching the access contract of Mesh.
func (m *SceneMut) RemoveMesh(i int) {
	m.life.check()
	n := int(m.raw.NumMeshes)
	if i < 0 || i >= n {
		panic(errors.OutOfRange(errors.PhaseAccess, "mesh", i, n))
	}
	removePtr(&m.raw.NumMeshes, &m.raw.Meshes, i)
}
