// Package memscene is an in-process Library implementation over Go-allocated
// native scene graphs.
//
// Scenes are registered as Builder fixtures under a file path or a memory
// format hint; each import materializes a fresh, independent graph, the way
// a real importer populates a fresh aiScene per call. The library tracks
// every pointer it hands out together with its provenance, so a double
// release, a leaked scene, or a pointer paired with the wrong release
// routine fails loudly instead of silently corrupting memory. That makes
// memscene both the reference Library for development and the leak detector
// the test suites run against.
package memscene
