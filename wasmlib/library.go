package wasmlib

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"go.uber.org/zap"

	scenebridge "github.com/wippyai/scene-bridge"
	"github.com/wippyai/scene-bridge/errors"
	"github.com/wippyai/scene-bridge/internal/graph"
	"github.com/wippyai/scene-bridge/native"
)

// Exports the importer shim must provide.
const (
	exportAlloc        = "sb_alloc"         // (size u32) -> ptr u32
	exportFree         = "sb_free"          // (ptr u32, size u32)
	exportImportMemory = "sb_import_memory" // (data u32, len u32, hint u32, hintLen u32, flags u32) -> scene u32
	exportReleaseScene = "sb_release_scene" // (scene u32)
)

// Library runs a wasm importer shim under wazero. Guest calls are
// serialized; the handles it produces follow the usual ownership rules.
type Library struct {
	runtime wazero.Runtime
	module  api.Module
	owners  *graph.Owners

	alloc        api.Function
	free         api.Function
	importMemory api.Function
	releaseScene api.Function

	mu sync.Mutex
}

// Open instantiates the importer shim from its wasm binary.
func Open(ctx context.Context, wasmBytes []byte) (*Library, error) {
	rt := wazero.NewRuntime(ctx)
	wasi_snapshot_preview1.MustInstantiate(ctx, rt)

	mod, err := rt.Instantiate(ctx, wasmBytes)
	if err != nil {
		rt.Close(ctx)
		return nil, errors.Wrap(errors.PhaseImport, errors.KindInvalidData, err, "instantiate importer shim")
	}

	lib := &Library{
		runtime: rt,
		module:  mod,
		owners:  graph.NewOwners(),
	}
	for _, e := range []struct {
		name string
		fn   *api.Function
	}{
		{exportAlloc, &lib.alloc},
		{exportFree, &lib.free},
		{exportImportMemory, &lib.importMemory},
		{exportReleaseScene, &lib.releaseScene},
	} {
		*e.fn = mod.ExportedFunction(e.name)
		if *e.fn == nil {
			rt.Close(ctx)
			return nil, errors.New(errors.PhaseImport, errors.KindUnsupported).
				Detail("importer shim does not export %q", e.name).
				Build()
		}
	}
	if mod.Memory() == nil {
		rt.Close(ctx)
		return nil, errors.Unsupported(errors.PhaseImport, "importer shim exports no memory")
	}
	return lib, nil
}

// OpenFile instantiates the importer shim from a wasm file on disk.
func OpenFile(ctx context.Context, path string) (*Library, error) {
	wasmBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(errors.PhaseImport, errors.KindIO).
			File(path).
			Cause(err).
			Detail("read importer shim").
			Build()
	}
	return Open(ctx, wasmBytes)
}

// Close tears down the wazero runtime. Scenes already decoded stay valid:
// they are host-owned and hold nothing in guest memory.
func (l *Library) Close(ctx context.Context) error {
	return l.runtime.Close(ctx)
}

// ImportFile reads path on the host side and imports it through the shim,
// using the file extension as the format hint.
func (l *Library) ImportFile(path string, flags scenebridge.PostProcess) (*native.AiScene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(errors.PhaseImport, errors.KindIO).
			File(path).
			Cause(err).
			Detail("read scene file").
			Build()
	}
	hint := strings.TrimPrefix(filepath.Ext(path), ".")
	return l.ImportMemory(data, hint, flags)
}

// ImportMemory imports a scene from an in-memory buffer. The guest builds
// the aiScene in linear memory; it is decoded into host structs and the
// guest copy is released before returning.
func (l *Library) ImportMemory(data []byte, hint string, flags scenebridge.PostProcess) (*native.AiScene, error) {
	if len(data) == 0 {
		return nil, errors.InvalidData(errors.PhaseImport, "empty import buffer")
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	ctx := context.Background()

	dataPtr, err := l.writeGuest(ctx, data)
	if err != nil {
		return nil, err
	}
	defer l.freeGuest(ctx, dataPtr, uint32(len(data)))

	var hintPtr uint32
	if hint != "" {
		if hintPtr, err = l.writeGuest(ctx, []byte(hint)); err != nil {
			return nil, err
		}
		defer l.freeGuest(ctx, hintPtr, uint32(len(hint)))
	}

	res, err := l.importMemory.Call(ctx,
		uint64(dataPtr), uint64(len(data)),
		uint64(hintPtr), uint64(len(hint)),
		uint64(flags))
	if err != nil {
		return nil, errors.Wrap(errors.PhaseImport, errors.KindInvalidData, err, "importer shim trapped")
	}
	scenePtr := uint32(res[0])
	if scenePtr == 0 {
		return nil, errors.InvalidData(errors.PhaseImport, "importer shim returned a null scene")
	}
	defer l.releaseScene.Call(ctx, uint64(scenePtr))

	sc, err := NewDecoder(guestMemory{l.module.Memory()}).Scene(scenePtr)
	if err != nil {
		return nil, err
	}
	l.owners.Add(sc, graph.Imported)
	Logger().Debug("decoded scene from guest memory",
		zap.String("hint", hint),
		zap.Uint32("guest_ptr", scenePtr),
		zap.Uint32("meshes", sc.NumMeshes))
	return sc, nil
}

// ReleaseImport drops a decoded imported scene.
func (l *Library) ReleaseImport(sc *native.AiScene) {
	l.owners.Release(sc, graph.Imported)
}

// CopyScene deep-copies a decoded scene on the host side.
func (l *Library) CopyScene(src *native.AiScene) (*native.AiScene, error) {
	cp := graph.DeepCopy(src)
	l.owners.Add(cp, graph.Copied)
	return cp, nil
}

// FreeScene drops a copied scene.
func (l *Library) FreeScene(sc *native.AiScene) {
	l.owners.Release(sc, graph.Copied)
}

// LiveScenes returns the number of scenes handed out and not yet released.
func (l *Library) LiveScenes() int {
	return l.owners.Len()
}

func (l *Library) writeGuest(ctx context.Context, data []byte) (uint32, error) {
	res, err := l.alloc.Call(ctx, uint64(len(data)))
	if err != nil {
		return 0, errors.Wrap(errors.PhaseImport, errors.KindAllocation, err, "guest alloc trapped")
	}
	ptr := uint32(res[0])
	if ptr == 0 {
		return 0, errors.AllocationFailed(errors.PhaseImport, "guest buffer")
	}
	if !l.module.Memory().Write(ptr, data) {
		l.freeGuest(ctx, ptr, uint32(len(data)))
		return 0, errors.InvalidData(errors.PhaseImport, "guest buffer write out of range")
	}
	return ptr, nil
}

func (l *Library) freeGuest(ctx context.Context, ptr, size uint32) {
	// Best effort; a trap here means the guest heap is already wrecked.
	_, _ = l.free.Call(ctx, uint64(ptr), uint64(size))
}
