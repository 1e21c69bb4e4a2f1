package native

// SceneFlags is the aiScene::mFlags bitset.
type SceneFlags uint32

// Scene flag bits, pinned to the values published by the importer as
// AI_SCENE_FLAGS_INCOMPLETE through AI_SCENE_FLAGS_TERRAIN.
const (
	// SceneFlagIncomplete is set when the import did not produce a full
	// scene (for example a material-library file with no geometry).
	SceneFlagIncomplete SceneFlags = 0x1

	// SceneFlagValidated is set by the validate-data-structure post-process
	// step on success.
	SceneFlagValidated SceneFlags = 0x2

	// SceneFlagValidationWarning is set when validation succeeded but
	// generated warnings.
	SceneFlagValidationWarning SceneFlags = 0x4

	// SceneFlagNonVerboseFormat is set after the join-identical-vertices
	// post-process step: vertices are shared between faces.
	SceneFlagNonVerboseFormat SceneFlags = 0x8

	// SceneFlagTerrain is set when the source contained height-map terrain
	// data.
	SceneFlagTerrain SceneFlags = 0x10
)

// Contains reports whether every bit of mask is set.
func (f SceneFlags) Contains(mask SceneFlags) bool {
	return f&mask == mask
}

// AiScene mirrors the foreign aiScene. The importer owns the whole graph
// reachable from here; nothing in this struct implies Go ownership.
type AiScene struct {
	Flags    SceneFlags
	RootNode *AiNode

	NumMeshes uint32
	Meshes    **AiMesh

	NumMaterials uint32
	Materials    **AiMaterial

	NumAnimations uint32
	Animations    **AiAnimation

	NumTextures uint32
	Textures    **AiTexture

	NumLights uint32
	Lights    **AiLight

	NumCameras uint32
	Cameras    **AiCamera
}
