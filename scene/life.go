package scene

import (
	"sync/atomic"
)

// life is the liveness token shared between an owning handle and every
// non-owning alias derived from it. Closing the handle kills the token,
// which turns later alias access into a loud failure instead of a read of
// freed foreign memory.
type life struct {
	dead atomic.Bool
}

func newLife() *life {
	return &life{}
}

func (l *life) kill() {
	l.dead.Store(true)
}

func (l *life) alive() bool {
	return !l.dead.Load()
}

// check panics if the owning handle was closed.
func (l *life) check() {
	if l.dead.Load() {
		panic("scene: use of foreign scene data after the owning handle was closed")
	}
}
