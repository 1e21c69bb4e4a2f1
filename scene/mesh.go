package scene

import (
	"github.com/wippyai/scene-bridge/native"
)

// Mesh is a non-owning alias of one foreign mesh.
type Mesh struct {
	raw  *native.AiMesh
	life *life
}

func newMesh(raw *native.AiMesh, l *life) Mesh {
	return Mesh{raw: raw, life: l}
}

// Name returns the mesh name, which may be empty.
func (m Mesh) Name() string {
	m.life.check()
	return m.raw.Name.String()
}

// PrimitiveTypes returns the bitset of primitive types present in the mesh.
func (m Mesh) PrimitiveTypes() uint32 {
	m.life.check()
	return m.raw.PrimitiveTypes
}

// NumVertices returns the vertex count.
func (m Mesh) NumVertices() uint32 {
	m.life.check()
	return m.raw.NumVertices
}

// NumFaces returns the face count.
func (m Mesh) NumFaces() uint32 {
	m.life.check()
	return m.raw.NumFaces
}

// MaterialIndex returns the index into the scene's material array.
func (m Mesh) MaterialIndex() uint32 {
	m.life.check()
	return m.raw.MaterialIndex
}
