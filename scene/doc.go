// Package scene implements the ownership layer over the foreign scene graph.
//
// Two handle types wrap a *native.AiScene. Scene owns an importer-produced
// pointer and releases it through Library.ReleaseImport; SceneMut owns an
// independent deep copy produced by Library.CopyScene and releases it through
// Library.FreeScene. Provenance is fixed at construction, so a pointer can
// never meet the wrong release routine, and an atomic close guard makes the
// release run exactly once.
//
// Both handles share one unexported read-only base, so SceneMut exposes every
// read operation of Scene by method promotion without duplicating logic and
// without gaining a second release path through it.
//
// Entity accessors snapshot the foreign count+array-pointer pairs: each call
// re-reads the array and returns freshly wrapped, order-preserving entity
// values. Wrappers are non-owning aliases; they carry a liveness token shared
// with the owning handle, and any access after the handle is closed panics
// instead of dereferencing freed foreign memory. Indexed access past the
// authoritative count is a caller bug and also panics.
package scene
