package native

// AiVector3D mirrors the foreign 3-component float vector.
type AiVector3D struct {
	X, Y, Z float32
}

// AiColor3D mirrors the foreign RGB color.
type AiColor3D struct {
	R, G, B float32
}

// AiMatrix4x4 mirrors the foreign row-major 4x4 transform.
type AiMatrix4x4 [16]float32

// Identity4x4 returns the identity transform.
func Identity4x4() AiMatrix4x4 {
	return AiMatrix4x4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// AiNode is one node of the scene hierarchy. MeshIndices points at an array
// of NumMeshes indices into the scene's mesh array.
type AiNode struct {
	Name           AiString
	Transformation AiMatrix4x4
	Parent         *AiNode

	NumChildren uint32
	Children    **AiNode

	NumMeshes   uint32
	MeshIndices *uint32
}

// Primitive type bits for AiMesh.PrimitiveTypes, pinned to the foreign
// aiPrimitiveType values.
const (
	PrimitiveTypePoint    uint32 = 0x1
	PrimitiveTypeLine     uint32 = 0x2
	PrimitiveTypeTriangle uint32 = 0x4
	PrimitiveTypePolygon  uint32 = 0x8
)

// AiMesh carries the mesh header fields the bridge reads. Vertex and face
// payloads stay opaque to this package.
type AiMesh struct {
	PrimitiveTypes uint32
	NumVertices    uint32
	NumFaces       uint32
	MaterialIndex  uint32
	Name           AiString
}

// AiMaterial is a property bag on the foreign side; the bridge only reads
// its property count.
type AiMaterial struct {
	NumProperties uint32
	NumAllocated  uint32
}

// AiAnimation carries the animation header fields the bridge reads.
type AiAnimation struct {
	Name           AiString
	Duration       float64
	TicksPerSecond float64
	NumChannels    uint32
}

// AiTexture describes an embedded texture. Height zero means the payload is
// a compressed image whose format FormatHint names.
type AiTexture struct {
	Width      uint32
	Height     uint32
	FormatHint [9]byte
}

// Light source types, pinned to the foreign aiLightSourceType values.
const (
	LightSourceUndefined   uint32 = 0x0
	LightSourceDirectional uint32 = 0x1
	LightSourcePoint       uint32 = 0x2
	LightSourceSpot        uint32 = 0x3
	LightSourceAmbient     uint32 = 0x4
	LightSourceArea        uint32 = 0x5
)

// AiLight carries the light header fields the bridge reads.
type AiLight struct {
	Name         AiString
	Type         uint32
	Position     AiVector3D
	Direction    AiVector3D
	ColorDiffuse AiColor3D
}

// AiCamera carries the camera header fields the bridge reads.
type AiCamera struct {
	Name          AiString
	Position      AiVector3D
	Up            AiVector3D
	LookAt        AiVector3D
	HorizontalFOV float32
	ClipPlaneNear float32
	ClipPlaneFar  float32
	Aspect        float32
}
