package memscene

import (
	"github.com/wippyai/scene-bridge/native"
)

// NodeSpec describes one node of the hierarchy to build. A zero Transform
// means identity.
type NodeSpec struct {
	Name        string
	Transform   native.AiMatrix4x4
	MeshIndices []uint32
	Children    []*NodeSpec
}

// Builder accumulates a scene description and materializes native scene
// graphs from it. Build may be called any number of times; every call
// produces a fully independent graph.
type Builder struct {
	flags      native.SceneFlags
	root       *NodeSpec
	meshes     []native.AiMesh
	materials  []native.AiMaterial
	animations []native.AiAnimation
	textures   []native.AiTexture
	lights     []native.AiLight
	cameras    []native.AiCamera
}

// NewBuilder returns an empty scene description.
func NewBuilder() *Builder {
	return &Builder{}
}

// Flags sets the initial scene flag bitset.
func (b *Builder) Flags(f native.SceneFlags) *Builder {
	b.flags = f
	return b
}

// Root sets the node hierarchy. Unset, Build supplies a single node named
// "ROOT" with identity transform.
func (b *Builder) Root(root *NodeSpec) *Builder {
	b.root = root
	return b
}

// AddMesh appends a triangle mesh description.
func (b *Builder) AddMesh(name string, vertices, faces, materialIndex uint32) *Builder {
	b.meshes = append(b.meshes, native.AiMesh{
		PrimitiveTypes: native.PrimitiveTypeTriangle,
		NumVertices:    vertices,
		NumFaces:       faces,
		MaterialIndex:  materialIndex,
		Name:           native.NewAiString(name),
	})
	return b
}

// AddMaterial appends a material with the given property count.
func (b *Builder) AddMaterial(numProperties uint32) *Builder {
	b.materials = append(b.materials, native.AiMaterial{
		NumProperties: numProperties,
		NumAllocated:  numProperties,
	})
	return b
}

// AddAnimation appends an animation description.
func (b *Builder) AddAnimation(name string, duration, ticksPerSecond float64, channels uint32) *Builder {
	b.animations = append(b.animations, native.AiAnimation{
		Name:           native.NewAiString(name),
		Duration:       duration,
		TicksPerSecond: ticksPerSecond,
		NumChannels:    channels,
	})
	return b
}

// AddTexture appends an embedded texture description. A zero height marks a
// compressed payload described by hint.
func (b *Builder) AddTexture(width, height uint32, hint string) *Builder {
	t := native.AiTexture{Width: width, Height: height}
	copy(t.FormatHint[:], hint)
	b.textures = append(b.textures, t)
	return b
}

// AddLight appends a light description.
func (b *Builder) AddLight(name string, typ uint32, pos native.AiVector3D, color native.AiColor3D) *Builder {
	b.lights = append(b.lights, native.AiLight{
		Name:         native.NewAiString(name),
		Type:         typ,
		Position:     pos,
		ColorDiffuse: color,
	})
	return b
}

// AddCamera appends a camera description.
func (b *Builder) AddCamera(name string, hfov, near, far float32) *Builder {
	b.cameras = append(b.cameras, native.AiCamera{
		Name:          native.NewAiString(name),
		Up:            native.AiVector3D{Y: 1},
		LookAt:        native.AiVector3D{Z: 1},
		HorizontalFOV: hfov,
		ClipPlaneNear: near,
		ClipPlaneFar:  far,
	})
	return b
}

// Build materializes a fresh native scene graph from the description.
func (b *Builder) Build() *native.AiScene {
	sc := &native.AiScene{Flags: b.flags}

	sc.NumMeshes, sc.Meshes = buildPtrArray(b.meshes)
	sc.NumMaterials, sc.Materials = buildPtrArray(b.materials)
	sc.NumAnimations, sc.Animations = buildPtrArray(b.animations)
	sc.NumTextures, sc.Textures = buildPtrArray(b.textures)
	sc.NumLights, sc.Lights = buildPtrArray(b.lights)
	sc.NumCameras, sc.Cameras = buildPtrArray(b.cameras)

	root := b.root
	if root == nil {
		root = &NodeSpec{Name: "ROOT"}
	}
	sc.RootNode = buildNode(root, nil)
	return sc
}

// buildPtrArray copies the prototypes into fresh structs and lays a foreign
// pointer array over them.
func buildPtrArray[T any](protos []T) (uint32, **T) {
	if len(protos) == 0 {
		return 0, nil
	}
	ptrs := make([]*T, len(protos))
	for i := range protos {
		cp := protos[i]
		ptrs[i] = &cp
	}
	return uint32(len(protos)), &ptrs[0]
}

func buildNode(spec *NodeSpec, parent *native.AiNode) *native.AiNode {
	n := &native.AiNode{
		Name:           native.NewAiString(spec.Name),
		Transformation: spec.Transform,
		Parent:         parent,
	}
	if isZeroMatrix(spec.Transform) {
		n.Transformation = native.Identity4x4()
	}
	if len(spec.MeshIndices) > 0 {
		idx := make([]uint32, len(spec.MeshIndices))
		copy(idx, spec.MeshIndices)
		n.NumMeshes = uint32(len(idx))
		n.MeshIndices = &idx[0]
	}
	if len(spec.Children) > 0 {
		kids := make([]*native.AiNode, len(spec.Children))
		for i, c := range spec.Children {
			kids[i] = buildNode(c, n)
		}
		n.NumChildren = uint32(len(kids))
		n.Children = &kids[0]
	}
	return n
}

func isZeroMatrix(m native.AiMatrix4x4) bool {
	for _, v := range m {
		if v != 0 {
			return false
		}
	}
	return true
}
