// Package importer is the front-end that turns a Library's raw import entry
// points into owned scene handles.
//
// An Importer carries a post-process step bitset and a property bag, calls
// the configured Library, and wraps the resulting pointer in a scene.Scene
// that owns the release obligation. Foreign failures come back as structured
// *errors.Error values with the import phase and the source file attached.
package importer
