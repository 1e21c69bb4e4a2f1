package scene

import (
	"testing"

	scerr "github.com/wippyai/scene-bridge/errors"
	"github.com/wippyai/scene-bridge/native"
)

func cloneForTest(t *testing.T, numMeshes int) (*fakeLib, *SceneMut) {
	t.Helper()
	lib := &fakeLib{}
	sc := New(lib, buildRaw(numMeshes, 0))
	mut, err := sc.Clone()
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}
	sc.Close()
	return lib, mut
}

func TestMutFlagOperations(t *testing.T) {
	_, mut := cloneForTest(t, 0)
	defer mut.Close()

	mut.SetFlags(native.SceneFlagIncomplete)
	if !mut.IsIncomplete() || mut.IsTerrain() {
		t.Fatal("SetFlags did not apply cleanly")
	}

	mut.AddFlags(native.SceneFlagTerrain)
	if !mut.IsIncomplete() || !mut.IsTerrain() {
		t.Fatal("AddFlags dropped or missed bits")
	}

	mut.ClearFlags(native.SceneFlagIncomplete)
	if mut.IsIncomplete() || !mut.IsTerrain() {
		t.Fatal("ClearFlags cleared the wrong bits")
	}
}

func TestMutAppendMesh(t *testing.T) {
	_, mut := cloneForTest(t, 2)
	defer mut.Close()

	added := &native.AiMesh{
		Name:        native.NewAiString("extra"),
		NumVertices: 99,
	}
	mut.AppendMesh(added)

	if mut.NumMeshes() != 3 {
		t.Fatalf("NumMeshes = %d, want 3", mut.NumMeshes())
	}
	last := mut.Mesh(2)
	if last.raw != added {
		t.Fatal("appended mesh is not at the end")
	}
	if got := mut.Meshes(); got[0].NumVertices() != 3 || got[1].NumVertices() != 6 {
		t.Fatal("append disturbed existing order")
	}
}

func TestMutAppendToEmptyScene(t *testing.T) {
	_, mut := cloneForTest(t, 0)
	defer mut.Close()

	mut.AppendMesh(&native.AiMesh{Name: native.NewAiString("first")})
	if mut.NumMeshes() != 1 {
		t.Fatalf("NumMeshes = %d, want 1", mut.NumMeshes())
	}
	if mut.Mesh(0).Name() != "first" {
		t.Fatalf("mesh name = %q", mut.Mesh(0).Name())
	}
}

func TestMutRemoveMesh(t *testing.T) {
	_, mut := cloneForTest(t, 3)
	defer mut.Close()

	mut.RemoveMesh(1)
	if mut.NumMeshes() != 2 {
		t.Fatalf("NumMeshes = %d, want 2", mut.NumMeshes())
	}
	got := mut.Meshes()
	if got[0].NumVertices() != 3 || got[1].NumVertices() != 9 {
		t.Fatalf("remove disturbed order: %d, %d", got[0].NumVertices(), got[1].NumVertices())
	}

	mut.RemoveMesh(1)
	mut.RemoveMesh(0)
	if mut.NumMeshes() != 0 {
		t.Fatalf("NumMeshes = %d, want 0", mut.NumMeshes())
	}
	if len(mut.Meshes()) != 0 {
		t.Fatal("snapshot not empty after removing every mesh")
	}
}

func TestMutRemoveMeshOutOfRangePanics(t *testing.T) {
	_, mut := cloneForTest(t, 1)
	defer mut.Close()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("RemoveMesh(1) did not panic")
		}
		if err, ok := r.(*scerr.Error); !ok || err.Kind != scerr.KindOutOfRange {
			t.Fatalf("panicked with %v, want out_of_range error", r)
		}
	}()
	mut.RemoveMesh(1)
}

func TestMutUseAfterClosePanics(t *testing.T) {
	_, mut := cloneForTest(t, 1)
	mut.Close()

	defer func() {
		if recover() == nil {
			t.Fatal("mutation after Close did not panic")
		}
	}()
	mut.AddFlags(native.SceneFlagTerrain)
}

func TestMutReadsMatchImmutableSemantics(t *testing.T) {
	lib := &fakeLib{}
	raw := buildRaw(2, 1)
	raw.Flags = native.SceneFlagValidated
	sc := New(lib, raw)
	defer sc.Close()

	mut, err := sc.Clone()
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}
	defer mut.Close()

	if mut.IsValidated() != sc.IsValidated() {
		t.Fatal("flag predicate differs between handle kinds")
	}
	if mut.NumMeshes() != sc.NumMeshes() {
		t.Fatal("mesh count differs between handle kinds")
	}
	if mut.RootNode().Name() != sc.RootNode().Name() {
		t.Fatal("root node differs between handle kinds")
	}
}
