package scenebridge

import "testing"

func TestPostProcessString(t *testing.T) {
	cases := []struct {
		p    PostProcess
		want string
	}{
		{0, "none"},
		{Triangulate, "triangulate"},
		{Triangulate | ValidateDataStructure, "triangulate,validate-data-structure"},
		{JoinIdenticalVertices | FlipWindingOrder, "join-identical-vertices,flip-winding-order"},
		{PostProcess(0x4000), "unknown"},
	}
	for _, c := range cases {
		if got := c.p.String(); got != c.want {
			t.Errorf("String(%#x) = %q, want %q", uint32(c.p), got, c.want)
		}
	}
}

func TestPostProcessBitsAreDistinct(t *testing.T) {
	seen := map[PostProcess]string{}
	for _, e := range postProcessNames {
		if prev, ok := seen[e.bit]; ok {
			t.Fatalf("%s and %s share bit %#x", prev, e.name, uint32(e.bit))
		}
		seen[e.bit] = e.name
	}
}
