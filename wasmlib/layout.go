package wasmlib

import (
	"github.com/wippyai/scene-bridge/native"
)

// Linear-memory struct layouts of the wasm importer shim (wasm32, little
// endian). These offsets are the shim's ABI; the shim build pins them with
// static asserts on its side.

// aiString: u32 length followed by the fixed data buffer.
const (
	stringLenOff  = 0
	stringDataOff = 4
	stringSize    = 4 + native.MaxStringLen
)

// aiScene header.
const (
	sceneFlagsOff         = 0
	sceneRootNodeOff      = 4
	sceneNumMeshesOff     = 8
	sceneMeshesOff        = 12
	sceneNumMaterialsOff  = 16
	sceneMaterialsOff     = 20
	sceneNumAnimationsOff = 24
	sceneAnimationsOff    = 28
	sceneNumTexturesOff   = 32
	sceneTexturesOff      = 36
	sceneNumLightsOff     = 40
	sceneLightsOff        = 44
	sceneNumCamerasOff    = 48
	sceneCamerasOff       = 52
)

// aiNode.
const (
	nodeNameOff        = 0
	nodeTransformOff   = stringSize
	nodeParentOff      = nodeTransformOff + 16*4
	nodeNumChildrenOff = nodeParentOff + 4
	nodeChildrenOff    = nodeNumChildrenOff + 4
	nodeNumMeshesOff   = nodeChildrenOff + 4
	nodeMeshIndicesOff = nodeNumMeshesOff + 4
)

// aiMesh.
const (
	meshPrimitiveTypesOff = 0
	meshNumVerticesOff    = 4
	meshNumFacesOff       = 8
	meshMaterialIndexOff  = 12
	meshNameOff           = 16
)

// aiMaterial.
const (
	materialNumPropertiesOff = 0
	materialNumAllocatedOff  = 4
)

// aiAnimation. The f64 fields sit on the first 8-aligned offset past the
// name buffer.
const (
	animationNameOff           = 0
	animationDurationOff       = 1032
	animationTicksPerSecondOff = 1040
	animationNumChannelsOff    = 1048
)

// aiTexture.
const (
	textureWidthOff      = 0
	textureHeightOff     = 4
	textureFormatHintOff = 8
)

// aiLight.
const (
	lightNameOff         = 0
	lightTypeOff         = stringSize
	lightPositionOff     = lightTypeOff + 4
	lightDirectionOff    = lightPositionOff + 12
	lightColorDiffuseOff = lightDirectionOff + 12
)

// aiCamera.
const (
	cameraNameOff          = 0
	cameraPositionOff      = stringSize
	cameraUpOff            = cameraPositionOff + 12
	cameraLookAtOff        = cameraUpOff + 12
	cameraHorizontalFOVOff = cameraLookAtOff + 12
	cameraClipPlaneNearOff = cameraHorizontalFOVOff + 4
	cameraClipPlaneFarOff  = cameraClipPlaneNearOff + 4
	cameraAspectOff        = cameraClipPlaneFarOff + 4
)
