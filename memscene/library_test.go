package memscene

import (
	"errors"
	"testing"

	scenebridge "github.com/wippyai/scene-bridge"
	scerr "github.com/wippyai/scene-bridge/errors"
	"github.com/wippyai/scene-bridge/native"
)

func registeredLib() *Library {
	lib := New()
	lib.RegisterFile("ship.obj", NewBuilder().
		AddMesh("hull", 100, 50, 0).
		AddMaterial(4))
	lib.RegisterMemory("obj", NewBuilder().AddMesh("blob", 10, 5, 0))
	return lib
}

func TestImportFileProducesFreshScenes(t *testing.T) {
	lib := registeredLib()

	a, err := lib.ImportFile("ship.obj", 0)
	if err != nil {
		t.Fatalf("ImportFile: %v", err)
	}
	b, err := lib.ImportFile("ship.obj", 0)
	if err != nil {
		t.Fatalf("ImportFile: %v", err)
	}
	if a == b {
		t.Fatal("two imports returned the same graph")
	}
	if a.NumMeshes != 1 || a.NumMaterials != 1 {
		t.Fatalf("counts: meshes=%d materials=%d", a.NumMeshes, a.NumMaterials)
	}
	if a.RootNode == nil || a.RootNode.Name.String() != "ROOT" {
		t.Fatal("default root node missing")
	}

	lib.ReleaseImport(a)
	lib.ReleaseImport(b)
	if lib.LiveScenes() != 0 {
		t.Fatalf("live scenes = %d after releases", lib.LiveScenes())
	}
}

func TestImportFileUnknownPath(t *testing.T) {
	lib := registeredLib()

	_, err := lib.ImportFile("missing.fbx", 0)
	if !errors.Is(err, &scerr.Error{Phase: scerr.PhaseImport, Kind: scerr.KindNotFound}) {
		t.Fatalf("err = %v, want import/not_found", err)
	}
}

func TestImportMemory(t *testing.T) {
	lib := registeredLib()

	sc, err := lib.ImportMemory([]byte("o blob"), "obj", 0)
	if err != nil {
		t.Fatalf("ImportMemory: %v", err)
	}
	defer lib.ReleaseImport(sc)
	if sc.NumMeshes != 1 {
		t.Fatalf("meshes = %d", sc.NumMeshes)
	}

	if _, err := lib.ImportMemory(nil, "obj", 0); !errors.Is(err, &scerr.Error{Phase: scerr.PhaseImport, Kind: scerr.KindInvalidData}) {
		t.Fatalf("empty buffer err = %v, want import/invalid_data", err)
	}
	if _, err := lib.ImportMemory([]byte("x"), "dae", 0); !errors.Is(err, &scerr.Error{Phase: scerr.PhaseImport, Kind: scerr.KindUnsupported}) {
		t.Fatalf("unknown hint err = %v, want import/unsupported", err)
	}
}

func TestPostProcessFlagEffects(t *testing.T) {
	lib := registeredLib()

	sc, err := lib.ImportFile("ship.obj", scenebridge.ValidateDataStructure|scenebridge.JoinIdenticalVertices)
	if err != nil {
		t.Fatalf("ImportFile: %v", err)
	}
	defer lib.ReleaseImport(sc)

	if !sc.Flags.Contains(native.SceneFlagValidated) {
		t.Error("validate step did not set the validated flag")
	}
	if !sc.Flags.Contains(native.SceneFlagNonVerboseFormat) {
		t.Error("join step did not set the non-verbose flag")
	}
	if sc.Flags.Contains(native.SceneFlagIncomplete) {
		t.Error("unrelated flag set")
	}
}

func TestCopySceneProvenance(t *testing.T) {
	lib := registeredLib()

	sc, err := lib.ImportFile("ship.obj", 0)
	if err != nil {
		t.Fatalf("ImportFile: %v", err)
	}
	cp, err := lib.CopyScene(sc)
	if err != nil {
		t.Fatalf("CopyScene: %v", err)
	}

	if lib.LiveImports() != 1 || lib.LiveCopies() != 1 {
		t.Fatalf("imports=%d copies=%d", lib.LiveImports(), lib.LiveCopies())
	}

	lib.FreeScene(cp)
	lib.ReleaseImport(sc)
	if lib.LiveScenes() != 0 {
		t.Fatalf("live scenes = %d", lib.LiveScenes())
	}
}

func TestWrongReleaseRoutinePanics(t *testing.T) {
	lib := registeredLib()
	sc, err := lib.ImportFile("ship.obj", 0)
	if err != nil {
		t.Fatalf("ImportFile: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("FreeScene of an imported scene did not panic")
		}
	}()
	lib.FreeScene(sc)
}

func TestFailNextCopy(t *testing.T) {
	lib := registeredLib()
	sc, err := lib.ImportFile("ship.obj", 0)
	if err != nil {
		t.Fatalf("ImportFile: %v", err)
	}
	defer lib.ReleaseImport(sc)

	lib.FailNextCopy()
	if _, err := lib.CopyScene(sc); !errors.Is(err, &scerr.Error{Phase: scerr.PhaseCopy, Kind: scerr.KindAllocation}) {
		t.Fatalf("err = %v, want copy/allocation", err)
	}

	// One-shot: the next copy works again.
	cp, err := lib.CopyScene(sc)
	if err != nil {
		t.Fatalf("CopyScene after failure: %v", err)
	}
	lib.FreeScene(cp)
}
