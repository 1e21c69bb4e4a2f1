// Package scenebridge provides an ownership-safe Go bridge to an
// assimp-style 3D scene importer.
//
// The importer library populates a C-layout object graph (an aiScene with
// meshes, materials, animations, textures, lights, cameras and a node
// hierarchy) and hands out a raw pointer to it. This library wraps that
// pointer graph in handle types that track which release routine applies and
// guarantee it runs exactly once, and exposes the count+array-pointer pairs
// of the foreign struct as bounds-checked snapshots of safe entity wrappers.
//
// # Architecture Overview
//
//	scenebridge/         Root package with the Library and Memory interfaces
//	├── native/          Pinned foreign ABI: struct layouts and flag bits
//	├── scene/           Scene / SceneMut ownership layer and entity wrappers
//	├── errors/          Structured error types for debugging
//	├── importer/        Import front-end: post-process flags and properties
//	├── memscene/        In-process Library implementation and scene builder
//	└── wasmlib/         Library implementation running a wasm importer build
//
// # Quick Start
//
// Import a scene and walk its meshes:
//
//	lib := memscene.New()
//	imp := importer.New(lib, importer.WithPostProcess(importer.Triangulate))
//
//	sc, err := imp.ImportFile("model.obj")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer sc.Close()
//
//	for _, m := range sc.Meshes() {
//	    fmt.Println(m.Name(), m.NumVertices())
//	}
//
// Mutation requires a private deep copy:
//
//	mut, err := sc.Clone()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer mut.Close()
//	mut.AddFlags(native.SceneFlagNonVerboseFormat)
//
// # Ownership Model
//
// A Scene owns an importer-produced pointer and must release it through
// Library.ReleaseImport; a SceneMut owns a copy produced by Library.CopyScene
// and must release it through Library.FreeScene. Both releases happen in
// Close, exactly once, on every path. Entity wrappers (Mesh, Node, ...) are
// non-owning aliases: their validity is bounded by the owning handle, and the
// bound is enforced dynamically, so touching an entity after its scene was
// closed fails loudly instead of dereferencing freed foreign memory.
//
// # Thread Safety
//
// Handles are safe to Close concurrently with each other, but read access is
// single-threaded-per-call with no internal locking. Sharing one handle
// across goroutines requires external synchronization.
package scenebridge
