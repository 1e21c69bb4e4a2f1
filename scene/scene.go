package scene

import (
	"github.com/wippyai/scene-bridge/errors"
	"github.com/wippyai/scene-bridge/native"
)

// view is the shared read-only base of Scene and SceneMut. It carries no
// release capability; both handle types embed it and get every read method
// by promotion.
type view struct {
	raw  *native.AiScene
	life *life
}

// Flags returns the raw scene flag bitset.
func (v view) Flags() native.SceneFlags {
	v.life.check()
	return v.raw.Flags
}

// IsIncomplete reports whether the imported scene is not complete.
func (v view) IsIncomplete() bool {
	return v.Flags().Contains(native.SceneFlagIncomplete)
}

// IsValidated reports whether the scene was successfully validated by the
// validate-data-structure post-process step.
func (v view) IsValidated() bool {
	return v.Flags().Contains(native.SceneFlagValidated)
}

// HasValidationWarning reports whether the validate-data-structure
// post-process step generated warnings. The warning details go to the
// importer's own log.
func (v view) HasValidationWarning() bool {
	return v.Flags().Contains(native.SceneFlagValidationWarning)
}

// IsNonVerboseFormat reports whether the join-identical-vertices
// post-process step was run.
func (v view) IsNonVerboseFormat() bool {
	return v.Flags().Contains(native.SceneFlagNonVerboseFormat)
}

// IsTerrain reports whether the imported data contained height-map terrain.
func (v view) IsTerrain() bool {
	return v.Flags().Contains(native.SceneFlagTerrain)
}

// RootNode returns the root of the node hierarchy. A well-formed import
// always has one; a nil root is a defect of the foreign data and is not
// defended against here.
func (v view) RootNode() Node {
	v.life.check()
	return newNode(v.raw.RootNode, v.life)
}

// NumMeshes returns the number of meshes in the scene.
func (v view) NumMeshes() uint32 {
	v.life.check()
	return v.raw.NumMeshes
}

// Meshes returns a fresh snapshot of all meshes in array order.
func (v view) Meshes() []Mesh {
	return wrapAll(v.raw.NumMeshes, v.raw.Meshes, v.life, newMesh)
}

// Mesh returns the mesh at index i.
//
// Panics if i is out of range: the count is always known beforehand, so a
// bad index is a caller bug, not a data error.
func (v view) Mesh(i int) Mesh {
	v.life.check()
	n := int(v.raw.NumMeshes)
	if i < 0 || i >= n {
		panic(errors.OutOfRange(errors.PhaseAccess, "mesh", i, n))
	}
	return wrapAt(v.raw.Meshes, i, v.life, newMesh)
}

// NumMaterials returns the number of materials in the scene.
func (v view) NumMaterials() uint32 {
	v.life.check()
	return v.raw.NumMaterials
}

// Materials returns a fresh snapshot of all materials in array order.
func (v view) Materials() []Material {
	return wrapAll(v.raw.NumMaterials, v.raw.Materials, v.life, newMaterial)
}

// NumAnimations returns the number of animations in the scene.
func (v view) NumAnimations() uint32 {
	v.life.check()
	return v.raw.NumAnimations
}

// Animations returns a fresh snapshot of all animations in array order.
func (v view) Animations() []Animation {
	return wrapAll(v.raw.NumAnimations, v.raw.Animations, v.life, newAnimation)
}

// NumTextures returns the number of embedded textures in the scene.
func (v view) NumTextures() uint32 {
	v.life.check()
	return v.raw.NumTextures
}

// Textures returns a fresh snapshot of all embedded textures in array order.
func (v view) Textures() []Texture {
	return wrapAll(v.raw.NumTextures, v.raw.Textures, v.life, newTexture)
}

// NumLights returns the number of lights in the scene.
func (v view) NumLights() uint32 {
	v.life.check()
	return v.raw.NumLights
}

// Lights returns a fresh snapshot of all lights in array order.
func (v view) Lights() []Light {
	return wrapAll(v.raw.NumLights, v.raw.Lights, v.life, newLight)
}

// NumCameras returns the number of cameras in the scene.
func (v view) NumCameras() uint32 {
	v.life.check()
	return v.raw.NumCameras
}

// Cameras returns a fresh snapshot of all cameras in array order.
func (v view) Cameras() []Camera {
	return wrapAll(v.raw.NumCameras, v.raw.Cameras, v.life, newCamera)
}
