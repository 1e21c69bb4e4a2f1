package scene

import (
	"errors"
	"testing"

	scenebridge "github.com/wippyai/scene-bridge"
	scerr "github.com/wippyai/scene-bridge/errors"
	"github.com/wippyai/scene-bridge/internal/graph"
	"github.com/wippyai/scene-bridge/native"
)

// fakeLib counts releases so the exactly-once contract is observable.
type fakeLib struct {
	releases int
	frees    int
	copyErr  error
	released []*native.AiScene
	freed    []*native.AiScene
}

func (f *fakeLib) ImportFile(string, scenebridge.PostProcess) (*native.AiScene, error) {
	return nil, scerr.Unsupported(scerr.PhaseImport, "fake library")
}

func (f *fakeLib) ImportMemory([]byte, string, scenebridge.PostProcess) (*native.AiScene, error) {
	return nil, scerr.Unsupported(scerr.PhaseImport, "fake library")
}

func (f *fakeLib) ReleaseImport(sc *native.AiScene) {
	f.releases++
	f.released = append(f.released, sc)
}

func (f *fakeLib) CopyScene(src *native.AiScene) (*native.AiScene, error) {
	if f.copyErr != nil {
		return nil, f.copyErr
	}
	return graph.DeepCopy(src), nil
}

func (f *fakeLib) FreeScene(sc *native.AiScene) {
	f.frees++
	f.freed = append(f.freed, sc)
}

// buildRaw assembles a native scene with the given mesh and material counts
// and a two-level node hierarchy.
func buildRaw(numMeshes, numMaterials int) *native.AiScene {
	sc := &native.AiScene{}

	if numMeshes > 0 {
		meshes := make([]*native.AiMesh, numMeshes)
		for i := range meshes {
			meshes[i] = &native.AiMesh{
				PrimitiveTypes: native.PrimitiveTypeTriangle,
				NumVertices:    uint32(3 * (i + 1)),
				NumFaces:       uint32(i + 1),
				Name:           native.NewAiString("mesh"),
			}
		}
		sc.NumMeshes = uint32(numMeshes)
		sc.Meshes = &meshes[0]
	}

	if numMaterials > 0 {
		mats := make([]*native.AiMaterial, numMaterials)
		for i := range mats {
			mats[i] = &native.AiMaterial{NumProperties: uint32(i + 1)}
		}
		sc.NumMaterials = uint32(numMaterials)
		sc.Materials = &mats[0]
	}

	root := &native.AiNode{
		Name:           native.NewAiString("ROOT"),
		Transformation: native.Identity4x4(),
	}
	if numMeshes > 0 {
		idx := make([]uint32, numMeshes)
		for i := range idx {
			idx[i] = uint32(i)
		}
		child := &native.AiNode{
			Name:           native.NewAiString("geometry"),
			Transformation: native.Identity4x4(),
			Parent:         root,
			NumMeshes:      uint32(len(idx)),
			MeshIndices:    &idx[0],
		}
		kids := []*native.AiNode{child}
		root.NumChildren = 1
		root.Children = &kids[0]
	}
	sc.RootNode = root
	return sc
}

func TestSnapshotLengthsMatchCounts(t *testing.T) {
	lib := &fakeLib{}
	sc := New(lib, buildRaw(3, 1))
	defer sc.Close()

	if got := sc.NumMeshes(); got != 3 {
		t.Fatalf("NumMeshes = %d, want 3", got)
	}
	if got := len(sc.Meshes()); got != 3 {
		t.Fatalf("len(Meshes) = %d, want 3", got)
	}
	if got := len(sc.Materials()); got != 1 {
		t.Fatalf("len(Materials) = %d, want 1", got)
	}
	if sc.NumAnimations() != 0 {
		t.Fatalf("NumAnimations = %d, want 0", sc.NumAnimations())
	}
	for name, n := range map[string]int{
		"animations": len(sc.Animations()),
		"textures":   len(sc.Textures()),
		"lights":     len(sc.Lights()),
		"cameras":    len(sc.Cameras()),
	} {
		if n != 0 {
			t.Errorf("%s snapshot has %d elements, want 0", name, n)
		}
	}
}

func TestSnapshotPreservesOrderAndIdentity(t *testing.T) {
	lib := &fakeLib{}
	sc := New(lib, buildRaw(3, 0))
	defer sc.Close()

	all := sc.Meshes()
	for i := range all {
		byIndex := sc.Mesh(i)
		if all[i].raw != byIndex.raw {
			t.Errorf("Meshes()[%d] and Mesh(%d) wrap different pointers", i, i)
		}
		// Fresh wrapper instances, same identity.
		again := sc.Mesh(i)
		if again.raw != byIndex.raw {
			t.Errorf("repeated Mesh(%d) changed identity", i)
		}
	}
	if all[0].NumVertices() != 3 || all[2].NumVertices() != 9 {
		t.Errorf("snapshot order not preserved: %d, %d", all[0].NumVertices(), all[2].NumVertices())
	}
}

func TestMeshIndexOutOfRangePanics(t *testing.T) {
	lib := &fakeLib{}
	sc := New(lib, buildRaw(2, 0))
	defer sc.Close()

	for _, i := range []int{-1, 2, 100} {
		func() {
			defer func() {
				r := recover()
				if r == nil {
					t.Errorf("Mesh(%d) did not panic", i)
					return
				}
				err, ok := r.(*scerr.Error)
				if !ok || err.Kind != scerr.KindOutOfRange {
					t.Errorf("Mesh(%d) panicked with %v, want out_of_range error", i, r)
				}
			}()
			sc.Mesh(i)
		}()
	}
}

func TestFlagPredicatesAreIndependent(t *testing.T) {
	preds := func(sc *Scene) map[string]bool {
		return map[string]bool{
			"incomplete":         sc.IsIncomplete(),
			"validated":          sc.IsValidated(),
			"validation-warning": sc.HasValidationWarning(),
			"non-verbose-format": sc.IsNonVerboseFormat(),
			"terrain":            sc.IsTerrain(),
		}
	}

	raw := buildRaw(0, 0)
	raw.Flags = native.SceneFlagValidationWarning
	sc := New(&fakeLib{}, raw)
	defer sc.Close()

	for name, set := range preds(sc) {
		want := name == "validation-warning"
		if set != want {
			t.Errorf("predicate %s = %v, want %v", name, set, want)
		}
	}

	raw2 := buildRaw(0, 0)
	raw2.Flags = native.SceneFlagIncomplete | native.SceneFlagTerrain
	sc2 := New(&fakeLib{}, raw2)
	defer sc2.Close()

	for name, set := range preds(sc2) {
		want := name == "incomplete" || name == "terrain"
		if set != want {
			t.Errorf("predicate %s = %v, want %v", name, set, want)
		}
	}
}

func TestRootNodeHierarchy(t *testing.T) {
	lib := &fakeLib{}
	sc := New(lib, buildRaw(2, 0))
	defer sc.Close()

	root := sc.RootNode()
	if root.Name() != "ROOT" {
		t.Fatalf("root name = %q", root.Name())
	}
	if _, ok := root.Parent(); ok {
		t.Fatal("root has a parent")
	}
	kids := root.Children()
	if len(kids) != 1 {
		t.Fatalf("root has %d children, want 1", len(kids))
	}
	geo := kids[0]
	if parent, ok := geo.Parent(); !ok || parent.raw != root.raw {
		t.Fatal("child's parent is not the root")
	}
	if idx := geo.MeshIndices(); len(idx) != 2 || idx[0] != 0 || idx[1] != 1 {
		t.Fatalf("mesh indices = %v", idx)
	}
	if root.Transformation() != native.Identity4x4() {
		t.Fatal("root transform is not identity")
	}
}

func TestCloseReleasesExactlyOnce(t *testing.T) {
	lib := &fakeLib{}
	raw := buildRaw(0, 0)
	sc := New(lib, raw)

	if err := sc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := sc.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if lib.releases != 1 {
		t.Fatalf("ReleaseImport called %d times, want 1", lib.releases)
	}
	if lib.released[0] != raw {
		t.Fatal("released a different pointer than was wrapped")
	}
	if lib.frees != 0 {
		t.Fatal("imported scene went through FreeScene")
	}
}

func TestEmptySceneCloseDoesNotFail(t *testing.T) {
	lib := &fakeLib{}
	sc := New(lib, buildRaw(0, 0))
	if err := sc.Close(); err != nil {
		t.Fatalf("Close of empty scene: %v", err)
	}
	if lib.releases != 1 {
		t.Fatalf("ReleaseImport called %d times, want 1", lib.releases)
	}
}

func TestCloneIsDeepAndIndependent(t *testing.T) {
	lib := &fakeLib{}
	sc := New(lib, buildRaw(3, 1))

	mut, err := sc.Clone()
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}
	defer mut.Close()

	if mut.NumMeshes() != sc.NumMeshes() || mut.NumMaterials() != sc.NumMaterials() {
		t.Fatal("clone counts differ from source")
	}
	srcMeshes, cpMeshes := sc.Meshes(), mut.Meshes()
	for i := range srcMeshes {
		if srcMeshes[i].raw == cpMeshes[i].raw {
			t.Fatalf("mesh %d shared between source and copy", i)
		}
		if srcMeshes[i].NumVertices() != cpMeshes[i].NumVertices() {
			t.Fatalf("mesh %d contents differ", i)
		}
	}

	// Destroying the source must not affect the copy.
	if err := sc.Close(); err != nil {
		t.Fatalf("source Close: %v", err)
	}
	if mut.NumMeshes() != 3 {
		t.Fatal("copy invalidated by closing the source")
	}
	if mut.RootNode().Name() != "ROOT" {
		t.Fatal("copy hierarchy invalidated by closing the source")
	}
}

func TestCloneReleaseRouting(t *testing.T) {
	lib := &fakeLib{}
	sc := New(lib, buildRaw(1, 0))

	mut, err := sc.Clone()
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}

	mut.Close()
	mut.Close()
	sc.Close()

	if lib.releases != 1 || lib.frees != 1 {
		t.Fatalf("releases = %d, frees = %d, want 1 and 1", lib.releases, lib.frees)
	}
	if lib.released[0] == lib.freed[0] {
		t.Fatal("the same pointer went through both release routines")
	}
}

func TestCloneSurfacesAllocationFailure(t *testing.T) {
	lib := &fakeLib{copyErr: scerr.AllocationFailed(scerr.PhaseCopy, "scene copy")}
	sc := New(lib, buildRaw(1, 0))
	defer sc.Close()

	mut, err := sc.Clone()
	if err == nil {
		t.Fatal("Clone succeeded with failing copy routine")
	}
	if mut != nil {
		t.Fatal("Clone returned a handle alongside an error")
	}
	if !errors.Is(err, &scerr.Error{Phase: scerr.PhaseCopy, Kind: scerr.KindAllocation}) {
		t.Fatalf("Clone error = %v, want copy/allocation", err)
	}
}

func TestCloneAfterCloseFails(t *testing.T) {
	lib := &fakeLib{}
	sc := New(lib, buildRaw(1, 0))
	sc.Close()

	if _, err := sc.Clone(); !errors.Is(err, &scerr.Error{Phase: scerr.PhaseCopy, Kind: scerr.KindClosed}) {
		t.Fatalf("Clone after Close = %v, want copy/closed", err)
	}
}

func TestUseAfterClosePanics(t *testing.T) {
	lib := &fakeLib{}
	sc := New(lib, buildRaw(1, 0))

	mesh := sc.Mesh(0)
	root := sc.RootNode()
	sc.Close()

	for name, access := range map[string]func(){
		"mesh wrapper":  func() { mesh.NumVertices() },
		"node wrapper":  func() { root.Name() },
		"scene handle":  func() { sc.NumMeshes() },
		"mesh snapshot": func() { sc.Meshes() },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s access after Close did not panic", name)
				}
			}()
			access()
		}()
	}
}

func TestSnapshotsAreFreshPerCall(t *testing.T) {
	lib := &fakeLib{}
	sc := New(lib, buildRaw(2, 0))
	defer sc.Close()

	a, b := sc.Meshes(), sc.Meshes()
	if &a[0] == &b[0] {
		t.Fatal("two snapshot calls returned the same backing storage")
	}
	for i := range a {
		if a[i].raw != b[i].raw {
			t.Fatalf("snapshot %d differs in identity between calls", i)
		}
	}
}
