package memscene

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	scenebridge "github.com/wippyai/scene-bridge"
	"github.com/wippyai/scene-bridge/errors"
	"github.com/wippyai/scene-bridge/internal/graph"
	"github.com/wippyai/scene-bridge/native"
)

// Library implements scenebridge.Library over registered Builder fixtures.
// The zero value is not usable; call New.
type Library struct {
	owners   *graph.Owners
	mu       sync.RWMutex
	files    map[string]*Builder
	blobs    map[string]*Builder
	failCopy atomic.Bool
}

// New creates an empty in-process library.
func New() *Library {
	return &Library{
		owners: graph.NewOwners(),
		files:  make(map[string]*Builder),
		blobs:  make(map[string]*Builder),
	}
}

// RegisterFile makes ImportFile of path produce scenes from b.
func (l *Library) RegisterFile(path string, b *Builder) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.files[path] = b
}

// RegisterMemory makes ImportMemory with the given format hint produce
// scenes from b.
func (l *Library) RegisterMemory(hint string, b *Builder) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.blobs[hint] = b
}

// ImportFile materializes a fresh scene for a registered path.
func (l *Library) ImportFile(path string, flags scenebridge.PostProcess) (*native.AiScene, error) {
	l.mu.RLock()
	b, ok := l.files[path]
	l.mu.RUnlock()
	if !ok {
		return nil, errors.NotFound(errors.PhaseImport, path)
	}
	return l.produce(b, flags, path), nil
}

// ImportMemory materializes a fresh scene for a registered format hint.
func (l *Library) ImportMemory(data []byte, hint string, flags scenebridge.PostProcess) (*native.AiScene, error) {
	if len(data) == 0 {
		return nil, errors.InvalidData(errors.PhaseImport, "empty import buffer")
	}
	l.mu.RLock()
	b, ok := l.blobs[hint]
	l.mu.RUnlock()
	if !ok {
		return nil, errors.Unsupported(errors.PhaseImport, "no importer registered for hint "+hint)
	}
	return l.produce(b, flags, "<memory>"), nil
}

func (l *Library) produce(b *Builder, flags scenebridge.PostProcess, source string) *native.AiScene {
	sc := b.Build()
	applyPostProcess(sc, flags)
	l.owners.Add(sc, graph.Imported)
	Logger().Debug("imported scene",
		zap.String("source", source),
		zap.Stringer("post_process", flags),
		zap.Uint32("meshes", sc.NumMeshes))
	return sc
}

// ReleaseImport drops an imported scene. Panics on a double release or a
// pointer that did not come from an import entry point.
func (l *Library) ReleaseImport(sc *native.AiScene) {
	l.owners.Release(sc, graph.Imported)
}

// CopyScene deep-copies src into an independently-owned graph.
func (l *Library) CopyScene(src *native.AiScene) (*native.AiScene, error) {
	if l.failCopy.CompareAndSwap(true, false) {
		return nil, errors.AllocationFailed(errors.PhaseCopy, "scene copy")
	}
	cp := graph.DeepCopy(src)
	l.owners.Add(cp, graph.Copied)
	return cp, nil
}

// FreeScene drops a copied scene. Panics on a double free or a pointer that
// did not come from CopyScene.
func (l *Library) FreeScene(sc *native.AiScene) {
	l.owners.Release(sc, graph.Copied)
}

// FailNextCopy makes the next CopyScene call report allocation failure.
// Test hook for the copy-on-mutate error path.
func (l *Library) FailNextCopy() {
	l.failCopy.Store(true)
}

// LiveScenes returns the number of scenes handed out and not yet released.
func (l *Library) LiveScenes() int {
	return l.owners.Len()
}

// LiveImports returns the number of live importer-owned scenes.
func (l *Library) LiveImports() int {
	return l.owners.Live(graph.Imported)
}

// LiveCopies returns the number of live copy-owned scenes.
func (l *Library) LiveCopies() int {
	return l.owners.Live(graph.Copied)
}

// applyPostProcess mirrors the flag side effects of the post-process steps
// the bridge can observe.
func applyPostProcess(sc *native.AiScene, flags scenebridge.PostProcess) {
	if flags&scenebridge.ValidateDataStructure != 0 {
		sc.Flags |= native.SceneFlagValidated
	}
	if flags&scenebridge.JoinIdenticalVertices != 0 {
		sc.Flags |= native.SceneFlagNonVerboseFormat
	}
}
