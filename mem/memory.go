// Package mem provides a production cpu.Memory implementation: a flat,
// unmapped 64 KiB address space with no bank switching or I/O side effects.
package mem

import "fmt"

// Flat is a plain 64 KiB byte array satisfying cpu.Memory. It is the
// default address space for the reference host tools in this repository;
// a real system (NES/C64-style bus mapping, mirroring, memory-mapped I/O)
// would supply its own Memory implementation instead.
type Flat struct {
	data [65536]byte
}

// NewFlat returns a zeroed 64 KiB address space.
func NewFlat() *Flat {
	return &Flat{}
}

func (m *Flat) Read(addr uint16) uint8 {
	return m.data[addr]
}

func (m *Flat) Write(addr uint16, value uint8) {
	m.data[addr] = value
}

// Load copies data into the address space starting at addr, returning an
// error if it would run past the top of memory.
func (m *Flat) Load(addr uint16, data []byte) error {
	if int(addr)+len(data) > len(m.data) {
		return fmt.Errorf("mem: load of %d bytes at $%04X overruns 64 KiB address space", len(data), addr)
	}
	copy(m.data[addr:], data)
	return nil
}
