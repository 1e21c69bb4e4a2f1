package scenebridge

import (
	"github.com/wippyai/scene-bridge/native"
)

// Library is the boundary to the foreign scene importer. It exposes the four
// entry points the handle layer needs: producing a scene, releasing an
// imported scene, deep-copying a scene, and freeing a copy.
//
// ReleaseImport and FreeScene mirror the foreign contract: they cannot fail
// and must be called exactly once per owned pointer. Pairing a pointer with
// the wrong release routine is undefined behavior on the foreign side, which
// is why the scene package tracks provenance and callers never invoke these
// directly.
type Library interface {
	// ImportFile reads the scene description at path and returns an owned
	// pointer to the populated scene. flags is the post-process step bitset
	// passed through to the importer.
	ImportFile(path string, flags PostProcess) (*native.AiScene, error)

	// ImportMemory imports a scene from an in-memory buffer. hint is the
	// file-extension hint some importers need to pick a format ("obj",
	// "gltf", ...); it may be empty.
	ImportMemory(data []byte, hint string, flags PostProcess) (*native.AiScene, error)

	// ReleaseImport frees a scene produced by ImportFile or ImportMemory.
	ReleaseImport(sc *native.AiScene)

	// CopyScene produces an independently-owned deep copy of src. The copy
	// must be released with FreeScene, never ReleaseImport.
	CopyScene(src *native.AiScene) (*native.AiScene, error)

	// FreeScene frees a scene produced by CopyScene.
	FreeScene(sc *native.AiScene)
}

// Memory is a byte-addressed, little-endian read view over foreign memory.
// The wasmlib decoder uses it to walk an aiScene graph laid out in wasm
// linear memory; tests back it with a plain byte slice.
type Memory interface {
	Read(offset uint32, length uint32) ([]byte, error)
	ReadU8(offset uint32) (uint8, error)
	ReadU16(offset uint32) (uint16, error)
	ReadU32(offset uint32) (uint32, error)
	ReadU64(offset uint32) (uint64, error)
	ReadF32(offset uint32) (float32, error)
	ReadF64(offset uint32) (float64, error)
}
