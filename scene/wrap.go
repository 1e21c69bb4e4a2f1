package scene

import (
	"unsafe"
)

// wrapAll views the foreign (count, pointer-array) pair as a Go slice and
// wraps every element through ctor, preserving array order. The returned
// slice is a snapshot: it holds wrapped aliases only, never the raw array.
// count is the authoritative length; the array pointer is non-nil whenever
// count is positive, per the foreign contract.
func wrapAll[R any, W any](count uint32, items **R, l *life, ctor func(*R, *life) W) []W {
	l.check()
	if count == 0 || items == nil {
		return nil
	}
	raw := unsafe.Slice(items, count)
	out := make([]W, count)
	for i, p := range raw {
		out[i] = ctor(p, l)
	}
	return out
}

// wrapAt wraps the single element at index i. The caller has already
// bounds-checked i against count.
func wrapAt[R any, W any](items **R, i int, l *life, ctor func(*R, *life) W) W {
	raw := unsafe.Slice(items, i+1)
	return ctor(raw[i], l)
}

// appendPtr grows a foreign pointer array by one element. The array is
// reallocated on the Go side; holding the interior pointer keeps the backing
// store reachable. Only valid on an exclusively-owned scene copy.
func appendPtr[R any](count *uint32, items ***R, p *R) {
	n := *count
	next := make([]*R, 0, n+1)
	if n > 0 && *items != nil {
		next = append(next, unsafe.Slice(*items, n)...)
	}
	next = append(next, p)
	*items = &next[0]
	*count = n + 1
}

// removePtr deletes element i from a foreign pointer array, preserving the
// order of the remaining elements. The caller has already bounds-checked i.
func removePtr[R any](count *uint32, items ***R, i int) {
	n := *count
	old := unsafe.Slice(*items, n)
	if n == 1 {
		*items = nil
		*count = 0
		return
	}
	next := make([]*R, 0, n-1)
	next = append(next, old[:i]...)
	next = append(next, old[i+1:]...)
	*items = &next[0]
	*count = n - 1
}
