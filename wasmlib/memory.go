package wasmlib

import (
	"fmt"

	"github.com/tetratelabs/wazero/api"
)

// guestMemory adapts wazero linear memory to the scenebridge.Memory read
// view the decoder consumes.
type guestMemory struct {
	mem api.Memory
}

func (g guestMemory) Read(offset, length uint32) ([]byte, error) {
	b, ok := g.mem.Read(offset, length)
	if !ok {
		return nil, outOfRange(offset, length)
	}
	// wazero returns a view into linear memory; copy so the caller never
	// holds a reference that a later guest call can move under it.
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

func (g guestMemory) ReadU8(offset uint32) (uint8, error) {
	v, ok := g.mem.ReadByte(offset)
	if !ok {
		return 0, outOfRange(offset, 1)
	}
	return v, nil
}

func (g guestMemory) ReadU16(offset uint32) (uint16, error) {
	v, ok := g.mem.ReadUint16Le(offset)
	if !ok {
		return 0, outOfRange(offset, 2)
	}
	return v, nil
}

func (g guestMemory) ReadU32(offset uint32) (uint32, error) {
	v, ok := g.mem.ReadUint32Le(offset)
	if !ok {
		return 0, outOfRange(offset, 4)
	}
	return v, nil
}

func (g guestMemory) ReadU64(offset uint32) (uint64, error) {
	v, ok := g.mem.ReadUint64Le(offset)
	if !ok {
		return 0, outOfRange(offset, 8)
	}
	return v, nil
}

func (g guestMemory) ReadF32(offset uint32) (float32, error) {
	v, ok := g.mem.ReadFloat32Le(offset)
	if !ok {
		return 0, outOfRange(offset, 4)
	}
	return v, nil
}

func (g guestMemory) ReadF64(offset uint32) (float64, error) {
	v, ok := g.mem.ReadFloat64Le(offset)
	if !ok {
		return 0, outOfRange(offset, 8)
	}
	return v, nil
}

func outOfRange(offset, length uint32) error {
	return fmt.Errorf("linear memory read of %d bytes at %#x out of range", length, offset)
}
