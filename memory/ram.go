// Package memory implements bus.Device peripherals for a 6502 family
// address space: plain in-process RAM and file-backed RAM. Both honor
// the same read/write/range contract so either can be connected to a
// bus.Bus interchangeably.
package memory

import "fmt"

// FillValue is the sentinel byte RAM is initialized to. 0xEA is the
// NMOS 6502 NOP opcode, so unprogrammed memory behaves as an infinite
// NOP slide rather than an arbitrary instruction stream.
const FillValue = 0xEA

// RAM is a bus.Device backed by an in-process byte slice covering an
// inclusive address range.
type RAM struct {
	start, end uint16
	data       []uint8
}

// NewRAM allocates a RAM device covering the inclusive [start, end]
// range, pre-filled with FillValue.
func NewRAM(start, end uint16) (*RAM, error) {
	if end < start {
		return nil, fmt.Errorf("memory: invalid range [%#04x, %#04x]: end before start", start, end)
	}
	size := int(end-start) + 1
	data := make([]uint8, size)
	for i := range data {
		data[i] = FillValue
	}
	return &RAM{start: start, end: end, data: data}, nil
}

// Range implements bus.Device.
func (r *RAM) Range() (uint16, uint16) { return r.start, r.end }

// Read implements bus.Device. readOnly has no effect for plain RAM
// since reads never have side effects here.
func (r *RAM) Read(addr uint16, _ bool) uint8 {
	return r.data[addr-r.start]
}

// Write implements bus.Device.
func (r *RAM) Write(addr uint16, val uint8) {
	r.data[addr-r.start] = val
}

// Load bulk-writes data starting at offset (an address within the
// device's range), typically used to install a program image before
// the CPU starts executing. It is a programming error to pass an
// offset/length that runs past the device's range.
func (r *RAM) Load(offset uint16, data []uint8) error {
	start := int(offset) - int(r.start)
	if start < 0 || start+len(data) > len(r.data) {
		return fmt.Errorf("memory: Load at %#04x with %d bytes overruns range [%#04x, %#04x]", offset, len(data), r.start, r.end)
	}
	copy(r.data[start:], data)
	return nil
}
