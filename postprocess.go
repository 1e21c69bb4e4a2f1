package scenebridge

import "strings"

// PostProcess is the post-process step bitset passed to the import entry
// points. Values are pinned to the foreign aiProcess_* constants.
type PostProcess uint32

const (
	CalcTangentSpace         PostProcess = 0x1
	JoinIdenticalVertices    PostProcess = 0x2
	MakeLeftHanded           PostProcess = 0x4
	Triangulate              PostProcess = 0x8
	RemoveComponent          PostProcess = 0x10
	GenNormals               PostProcess = 0x20
	GenSmoothNormals         PostProcess = 0x40
	SplitLargeMeshes         PostProcess = 0x80
	PreTransformVertices     PostProcess = 0x100
	LimitBoneWeights         PostProcess = 0x200
	ValidateDataStructure    PostProcess = 0x400
	ImproveCacheLocality     PostProcess = 0x800
	RemoveRedundantMaterials PostProcess = 0x1000
	FixInfacingNormals       PostProcess = 0x2000
	SortByPType              PostProcess = 0x8000
	FindDegenerates          PostProcess = 0x10000
	FindInvalidData          PostProcess = 0x20000
	GenUVCoords              PostProcess = 0x40000
	TransformUVCoords        PostProcess = 0x80000
	FindInstances            PostProcess = 0x100000
	OptimizeMeshes           PostProcess = 0x200000
	OptimizeGraph            PostProcess = 0x400000
	FlipUVs                  PostProcess = 0x800000
	FlipWindingOrder         PostProcess = 0x1000000
)

var postProcessNames = []struct {
	bit  PostProcess
	name string
}{
	{CalcTangentSpace, "calc-tangent-space"},
	{JoinIdenticalVertices, "join-identical-vertices"},
	{MakeLeftHanded, "make-left-handed"},
	{Triangulate, "triangulate"},
	{RemoveComponent, "remove-component"},
	{GenNormals, "gen-normals"},
	{GenSmoothNormals, "gen-smooth-normals"},
	{SplitLargeMeshes, "split-large-meshes"},
	{PreTransformVertices, "pre-transform-vertices"},
	{LimitBoneWeights, "limit-bone-weights"},
	{ValidateDataStructure, "validate-data-structure"},
	{ImproveCacheLocality, "improve-cache-locality"},
	{RemoveRedundantMaterials, "remove-redundant-materials"},
	{FixInfacingNormals, "fix-infacing-normals"},
	{SortByPType, "sort-by-ptype"},
	{FindDegenerates, "find-degenerates"},
	{FindInvalidData, "find-invalid-data"},
	{GenUVCoords, "gen-uv-coords"},
	{TransformUVCoords, "transform-uv-coords"},
	{FindInstances, "find-instances"},
	{OptimizeMeshes, "optimize-meshes"},
	{OptimizeGraph, "optimize-graph"},
	{FlipUVs, "flip-uvs"},
	{FlipWindingOrder, "flip-winding-order"},
}

// String lists the set steps as a comma-separated sequence of step names.
func (p PostProcess) String() string {
	if p == 0 {
		return "none"
	}
	var parts []string
	for _, e := range postProcessNames {
		if p&e.bit != 0 {
			parts = append(parts, e.name)
		}
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, ",")
}
