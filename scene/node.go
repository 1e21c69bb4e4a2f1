package scene

import (
	"unsafe"

	"github.com/wippyai/scene-bridge/native"
)

// Node is a non-owning alias of one node in the scene hierarchy. Its
// validity is bounded by the handle it was obtained from.
type Node struct {
	raw  *native.AiNode
	life *life
}

func newNode(raw *native.AiNode, l *life) Node {
	return Node{raw: raw, life: l}
}

// Name returns the node name.
func (n Node) Name() string {
	n.life.check()
	return n.raw.Name.String()
}

// Transformation returns the node's transform relative to its parent.
func (n Node) Transformation() native.AiMatrix4x4 {
	n.life.check()
	return n.raw.Transformation
}

// Parent returns the parent node. ok is false at the hierarchy root.
func (n Node) Parent() (parent Node, ok bool) {
	n.life.check()
	if n.raw.Parent == nil {
		return Node{}, false
	}
	return newNode(n.raw.Parent, n.life), true
}

// NumChildren returns the number of child nodes.
func (n Node) NumChildren() uint32 {
	n.life.check()
	return n.raw.NumChildren
}

// Children returns a fresh snapshot of the child nodes in array order.
func (n Node) Children() []Node {
	return wrapAll(n.raw.NumChildren, n.raw.Children, n.life, newNode)
}

// MeshIndices returns the indices into the scene's mesh array that this
// node renders. The returned slice is a copy.
func (n Node) MeshIndices() []uint32 {
	n.life.check()
	if n.raw.NumMeshes == 0 || n.raw.MeshIndices == nil {
		return nil
	}
	out := make([]uint32, n.raw.NumMeshes)
	copy(out, unsafe.Slice(n.raw.MeshIndices, n.raw.NumMeshes))
	return out
}
