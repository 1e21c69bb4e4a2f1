package graph

import (
	"testing"

	"github.com/wippyai/scene-bridge/native"
)

func sampleScene() *native.AiScene {
	meshes := []*native.AiMesh{
		{Name: native.NewAiString("a"), NumVertices: 10},
		{Name: native.NewAiString("b"), NumVertices: 20},
	}
	idx := []uint32{0, 1}
	root := &native.AiNode{
		Name:           native.NewAiString("ROOT"),
		Transformation: native.Identity4x4(),
	}
	child := &native.AiNode{
		Name:        native.NewAiString("child"),
		Parent:      root,
		NumMeshes:   2,
		MeshIndices: &idx[0],
	}
	kids := []*native.AiNode{child}
	root.NumChildren = 1
	root.Children = &kids[0]

	return &native.AiScene{
		Flags:     native.SceneFlagValidated,
		RootNode:  root,
		NumMeshes: 2,
		Meshes:    &meshes[0],
	}
}

func TestDeepCopySharesNothing(t *testing.T) {
	src := sampleScene()
	cp := DeepCopy(src)

	if cp == src {
		t.Fatal("copy is the source")
	}
	if cp.Flags != src.Flags || cp.NumMeshes != src.NumMeshes {
		t.Fatal("header fields not copied")
	}
	if cp.RootNode == src.RootNode {
		t.Fatal("root node shared")
	}
	if cp.Meshes == src.Meshes {
		t.Fatal("mesh array shared")
	}

	// Mutating the copy must not show through the source.
	cp.RootNode.Name = native.NewAiString("renamed")
	if src.RootNode.Name.String() != "ROOT" {
		t.Fatal("copy mutation visible in source node")
	}
}

func TestDeepCopyFixesParentPointers(t *testing.T) {
	cp := DeepCopy(sampleScene())

	if cp.RootNode.NumChildren != 1 {
		t.Fatalf("root children = %d", cp.RootNode.NumChildren)
	}
	child := *cp.RootNode.Children
	if child.Parent != cp.RootNode {
		t.Fatal("child parent points outside the copy")
	}
	if child.NumMeshes != 2 {
		t.Fatalf("child mesh indices = %d", child.NumMeshes)
	}
}

func TestDeepCopyEmptyScene(t *testing.T) {
	src := &native.AiScene{RootNode: &native.AiNode{Name: native.NewAiString("ROOT")}}
	cp := DeepCopy(src)

	if cp.NumMeshes != 0 || cp.Meshes != nil {
		t.Fatal("empty mesh array materialized")
	}
	if cp.RootNode == nil || cp.RootNode == src.RootNode {
		t.Fatal("root node missing or shared")
	}
}
