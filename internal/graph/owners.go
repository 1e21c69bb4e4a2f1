package graph

import (
	"fmt"
	"sync"

	"github.com/wippyai/scene-bridge/native"
)

// Provenance records which foreign entry point produced a scene pointer,
// and therefore which release routine is correct for it.
type Provenance uint8

const (
	Imported Provenance = iota + 1
	Copied
)

func (p Provenance) String() string {
	switch p {
	case Imported:
		return "imported"
	case Copied:
		return "copied"
	default:
		return "unknown"
	}
}

// Owners tracks every live scene pointer a Library has handed out, keyed by
// provenance. Releasing a pointer twice, releasing one the library never
// produced, or releasing through the wrong routine is undefined behavior on
// a real foreign library; here it panics with a diagnostic so tests catch
// the bug instead of corrupting memory.
type Owners struct {
	mu   sync.Mutex
	live map[*native.AiScene]Provenance
}

func NewOwners() *Owners {
	return &Owners{live: make(map[*native.AiScene]Provenance)}
}

// Add registers a freshly produced scene pointer.
func (o *Owners) Add(sc *native.AiScene, p Provenance) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if prev, ok := o.live[sc]; ok {
		panic(fmt.Sprintf("graph: scene pointer already live with provenance %s", prev))
	}
	o.live[sc] = p
}

// Release unregisters a pointer, verifying it is live and was produced by
// the entry point matching want.
func (o *Owners) Release(sc *native.AiScene, want Provenance) {
	o.mu.Lock()
	defer o.mu.Unlock()
	got, ok := o.live[sc]
	if !ok {
		panic("graph: release of a scene pointer that is not live (double release or foreign pointer)")
	}
	if got != want {
		panic(fmt.Sprintf("graph: %s scene released through the %s routine", got, want))
	}
	delete(o.live, sc)
}

// Live returns the number of live pointers with the given provenance.
func (o *Owners) Live(p Provenance) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	n := 0
	for _, got := range o.live {
		if got == p {
			n++
		}
	}
	return n
}

// Len returns the total number of live pointers.
func (o *Owners) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.live)
}
