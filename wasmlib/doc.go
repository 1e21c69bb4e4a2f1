// Package wasmlib implements scenebridge.Library over a wasm build of the
// importer running under wazero.
//
// The importer shim is a core wasm module with a small C ABI: an allocator
// export, an import entry point that materializes an aiScene graph in linear
// memory, and a release export that frees it. After each import the package
// decodes the graph out of linear memory into host-owned native structs
// (32-bit guest pointers become Go pointers) and immediately releases the
// guest-side scene, so guest memory never outlives a single import call.
// Copy and free of decoded scenes are host-side operations with the same
// provenance tracking the in-process library uses.
//
// The linear-memory struct layouts in layout.go are the shim's pinned ABI;
// they must match the shim build exactly and are never re-derived.
package wasmlib
