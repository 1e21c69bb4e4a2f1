package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseAccess,
				Kind:   KindOutOfRange,
				Entity: "mesh",
				Index:  7,
				Detail: "index 7 out of range (count 3)",
			},
			contains: []string{"[access]", "out_of_range", "mesh[7]", "count 3"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseCopy,
				Kind:  KindAllocation,
				Index: -1,
			},
			contains: []string{"[copy]", "allocation"},
		},
		{
			name: "error with file and cause",
			err: &Error{
				Phase:  PhaseImport,
				Kind:   KindIO,
				File:   "model.obj",
				Detail: "read failed",
				Cause:  errors.New("underlying error"),
				Index:  -1,
			},
			contains: []string{"[import]", "io", "model.obj", "read failed", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(PhaseImport, KindIO, cause, "import failed")

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is did not see through the wrapper")
	}
}

func TestError_Is(t *testing.T) {
	err := OutOfRange(PhaseAccess, "mesh", 5, 2)

	if !errors.Is(err, &Error{Phase: PhaseAccess, Kind: KindOutOfRange}) {
		t.Error("expected match on same phase and kind")
	}
	if errors.Is(err, &Error{Phase: PhaseCopy, Kind: KindOutOfRange}) {
		t.Error("unexpected match across phases")
	}
	if errors.Is(err, &Error{Phase: PhaseAccess, Kind: KindAllocation}) {
		t.Error("unexpected match across kinds")
	}
}

func TestBuilder(t *testing.T) {
	err := New(PhaseDecode, KindInvalidData).
		Entity("node").
		Index(2).
		File("scene.gltf").
		Detail("child pointer %#x outside memory", 0xdeadbeef).
		Build()

	if err.Phase != PhaseDecode || err.Kind != KindInvalidData {
		t.Fatalf("unexpected phase/kind: %v/%v", err.Phase, err.Kind)
	}
	if err.Entity != "node" || err.Index != 2 {
		t.Fatalf("unexpected entity/index: %v/%v", err.Entity, err.Index)
	}
	msg := err.Error()
	for _, s := range []string{"node[2]", "scene.gltf", "deadbeef"} {
		if !strings.Contains(msg, s) {
			t.Errorf("error message %q does not contain %q", msg, s)
		}
	}
}

func TestConvenienceConstructors(t *testing.T) {
	if got := AllocationFailed(PhaseCopy, "scene copy"); got.Kind != KindAllocation {
		t.Errorf("AllocationFailed kind = %v", got.Kind)
	}
	if got := NotFound(PhaseImport, "missing.obj"); got.File != "missing.obj" {
		t.Errorf("NotFound file = %v", got.File)
	}
	if got := Closed(PhaseAccess); got.Kind != KindClosed {
		t.Errorf("Closed kind = %v", got.Kind)
	}
	if got := Unsupported(PhaseImport, "format"); got.Kind != KindUnsupported {
		t.Errorf("Unsupported kind = %v", got.Kind)
	}
}
