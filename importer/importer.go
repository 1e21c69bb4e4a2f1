package importer

import (
	"go.uber.org/zap"

	scenebridge "github.com/wippyai/scene-bridge"
	"github.com/wippyai/scene-bridge/errors"
	"github.com/wippyai/scene-bridge/scene"
)

// Importer imports scenes through a Library and hands out owned handles.
// It is safe for concurrent use once constructed.
type Importer struct {
	lib   scenebridge.Library
	flags scenebridge.PostProcess
	props map[string]int
}

// Option configures an Importer.
type Option func(*Importer)

// WithPostProcess adds post-process steps to every import.
func WithPostProcess(flags scenebridge.PostProcess) Option {
	return func(imp *Importer) {
		imp.flags |= flags
	}
}

// WithProperty sets an integer import property ("max bone weights" style
// importer tunables, keyed by the foreign property name).
func WithProperty(name string, value int) Option {
	return func(imp *Importer) {
		imp.props[name] = value
	}
}

// New creates an Importer bound to lib.
func New(lib scenebridge.Library, opts ...Option) *Importer {
	imp := &Importer{
		lib:   lib,
		props: make(map[string]int),
	}
	for _, opt := range opts {
		opt(imp)
	}
	return imp
}

// PostProcess returns the configured post-process bitset.
func (imp *Importer) PostProcess() scenebridge.PostProcess {
	return imp.flags
}

// Property returns a configured import property.
func (imp *Importer) Property(name string) (int, bool) {
	v, ok := imp.props[name]
	return v, ok
}

// ImportFile imports the scene at path and returns an owned handle. The
// caller must Close the handle when done with it and everything derived
// from it.
func (imp *Importer) ImportFile(path string) (*scene.Scene, error) {
	raw, err := imp.lib.ImportFile(path, imp.flags)
	if err != nil {
		return nil, wrapImportErr(err, path)
	}
	if raw == nil {
		return nil, errors.New(errors.PhaseImport, errors.KindInvalidData).
			File(path).
			Detail("importer returned a nil scene without an error").
			Build()
	}
	Logger().Debug("imported scene",
		zap.String("path", path),
		zap.Stringer("post_process", imp.flags))
	return scene.New(imp.lib, raw), nil
}

// ImportMemory imports a scene from an in-memory buffer. hint is the
// file-extension hint for format selection and may be empty when the
// library can sniff the format.
func (imp *Importer) ImportMemory(data []byte, hint string) (*scene.Scene, error) {
	raw, err := imp.lib.ImportMemory(data, hint, imp.flags)
	if err != nil {
		return nil, wrapImportErr(err, "<memory>")
	}
	if raw == nil {
		return nil, errors.New(errors.PhaseImport, errors.KindInvalidData).
			Detail("importer returned a nil scene without an error").
			Build()
	}
	Logger().Debug("imported scene from memory",
		zap.String("hint", hint),
		zap.Int("bytes", len(data)))
	return scene.New(imp.lib, raw), nil
}

// wrapImportErr attaches import-phase context unless the library already
// reported a structured error.
func wrapImportErr(err error, path string) error {
	if _, ok := err.(*errors.Error); ok {
		return err
	}
	return errors.New(errors.PhaseImport, errors.KindIO).
		File(path).
		Cause(err).
		Detail("import failed").
		Build()
}
