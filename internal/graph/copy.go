package graph

import (
	"unsafe"

	"github.com/wippyai/scene-bridge/native"
)

// DeepCopy clones an entire scene graph. The result shares no memory with
// src: every entity struct, pointer array and node is a fresh allocation,
// so the copy's lifetime is fully independent of the source's.
func DeepCopy(src *native.AiScene) *native.AiScene {
	dst := &native.AiScene{Flags: src.Flags}
	dst.RootNode = copyNode(src.RootNode, nil)

	dst.NumMeshes, dst.Meshes = copyPtrArray(src.NumMeshes, src.Meshes)
	dst.NumMaterials, dst.Materials = copyPtrArray(src.NumMaterials, src.Materials)
	dst.NumAnimations, dst.Animations = copyPtrArray(src.NumAnimations, src.Animations)
	dst.NumTextures, dst.Textures = copyPtrArray(src.NumTextures, src.Textures)
	dst.NumLights, dst.Lights = copyPtrArray(src.NumLights, src.Lights)
	dst.NumCameras, dst.Cameras = copyPtrArray(src.NumCameras, src.Cameras)
	return dst
}

// copyPtrArray clones a (count, pointer-array) pair along with the structs
// the pointers address.
func copyPtrArray[T any](count uint32, items **T) (uint32, **T) {
	if count == 0 || items == nil {
		return 0, nil
	}
	src := unsafe.Slice(items, count)
	out := make([]*T, count)
	for i, p := range src {
		cp := *p
		out[i] = &cp
	}
	return count, &out[0]
}

func copyNode(n *native.AiNode, parent *native.AiNode) *native.AiNode {
	if n == nil {
		return nil
	}
	cp := &native.AiNode{
		Name:           n.Name,
		Transformation: n.Transformation,
		Parent:         parent,
	}
	if n.NumMeshes > 0 && n.MeshIndices != nil {
		idx := make([]uint32, n.NumMeshes)
		copy(idx, unsafe.Slice(n.MeshIndices, n.NumMeshes))
		cp.NumMeshes = n.NumMeshes
		cp.MeshIndices = &idx[0]
	}
	if n.NumChildren > 0 && n.Children != nil {
		src := unsafe.Slice(n.Children, n.NumChildren)
		kids := make([]*native.AiNode, n.NumChildren)
		for i, c := range src {
			kids[i] = copyNode(c, cp)
		}
		cp.NumChildren = n.NumChildren
		cp.Children = &kids[0]
	}
	return cp
}
