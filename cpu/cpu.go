// Package cpu implements the MOS 6502 instruction dispatch and execution
// engine: opcode decoding, addressing-mode resolution, per-instruction
// semantics, processor-status flag updates, and cycle accounting.
//
// The package depends on nothing but a Memory implementation; bus mapping,
// mirroring, peripheral I/O, disassembly, and any host front-end are the
// surrounding system's responsibility.
package cpu

import "fmt"

// Memory is the only external contract the core requires: a 64 KiB
// byte-addressable address space. Reads and writes are total — any address
// is valid and neither call can fail.
type Memory interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
}

// DefaultFrequencyHz is the advisory clock rate reported by a freshly
// constructed CPU when no WithFrequency option is supplied. The core never
// uses this value to pace execution; Step always runs to completion
// immediately.
const DefaultFrequencyHz = 1_660_000

// CPU holds the architectural register state of a 6502 and the Memory it is
// bound to. A CPU is single-threaded and synchronous: Step runs one
// instruction to completion with no suspension points.
type CPU struct {
	A  uint8  // Accumulator
	X  uint8  // X index register
	Y  uint8  // Y index register
	SP uint8  // Stack pointer; effective stack address is 0x0100 + SP
	PC uint16 // Program counter
	P  uint8  // Packed processor-status flags, see Flag* constants

	Mem Memory

	// Frequency is an advisory clock-rate hint in Hz. It has no effect on
	// execution speed or cycle accounting.
	Frequency uint64
}

// Option configures a CPU at construction time.
type Option func(*CPU)

// WithFrequency sets the advisory clock-rate hint reported by the CPU.
func WithFrequency(hz uint64) Option {
	return func(c *CPU) { c.Frequency = hz }
}

// NewCPU constructs a CPU bound to mem with registers zeroed, flags cleared
// except I, and SP = 0xFD, matching real 6502 power-on behavior. Memory
// itself is owned and zeroed by the caller's Memory implementation.
func NewCPU(mem Memory, opts ...Option) *CPU {
	c := &CPU{
		Mem:       mem,
		Frequency: DefaultFrequencyHz,
	}
	c.ResetRegisters()
	c.ResetFlags()
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ResetRegisters re-initializes A, X, Y, and SP without touching PC or
// flags.
func (c *CPU) ResetRegisters() {
	c.A = 0
	c.X = 0
	c.Y = 0
	c.SP = 0xFD
}

// ResetFlags clears every flag except I, which is set.
func (c *CPU) ResetFlags() {
	c.P = FlagI
}

// Reset reloads PC from the reset vector at 0xFFFC/0xFFFD. It does not
// clear registers or flags; callers that want power-on semantics should
// call ResetRegisters/ResetFlags first (NewCPU already does).
func (c *CPU) Reset() {
	lo := uint16(c.Mem.Read(0xFFFC))
	hi := uint16(c.Mem.Read(0xFFFD))
	c.PC = hi<<8 | lo
}

// MemGet reads a single byte from the bound Memory.
func (c *CPU) MemGet(addr uint16) uint8 { return c.Mem.Read(addr) }

// MemSet writes a single byte to the bound Memory.
func (c *CPU) MemSet(addr uint16, value uint8) { c.Mem.Write(addr, value) }

// ProgramWrite copies bytes into memory starting at the current PC. It is a
// test and tooling convenience; the core never calls it.
func (c *CPU) ProgramWrite(bytes []byte) {
	for i, b := range bytes {
		c.Mem.Write(c.PC+uint16(i), b)
	}
}

// Push writes value to the stack at 0x0100+SP, then decrements SP with
// 8-bit wrap.
func (c *CPU) Push(value uint8) {
	c.Mem.Write(0x0100|uint16(c.SP), value)
	c.SP--
}

// Pop increments SP with 8-bit wrap, then reads the byte now on top of the
// stack.
func (c *CPU) Pop() uint8 {
	c.SP++
	return c.Mem.Read(0x0100 | uint16(c.SP))
}

// Push16 pushes a 16-bit value high byte first, low byte second, so the
// low byte ends on top of the stack — the order JSR and BRK use.
func (c *CPU) Push16(value uint16) {
	c.Push(uint8(value >> 8))
	c.Push(uint8(value))
}

// Pop16 pops a 16-bit value low byte first, high byte second — the inverse
// of Push16.
func (c *CPU) Pop16() uint16 {
	lo := uint16(c.Pop())
	hi := uint16(c.Pop())
	return hi<<8 | lo
}

// InvalidOpcodeError reports that Step fetched a byte with no decode-table
// entry. The faulting opcode has already been consumed (PC was advanced
// past it) but no further state changes occurred.
type InvalidOpcodeError struct {
	PC     uint16
	Opcode uint8
}

func (e *InvalidOpcodeError) Error() string {
	return fmt.Sprintf("cpu: invalid opcode 0x%02X at PC=0x%04X", e.Opcode, e.PC)
}

// Step fetches the opcode at PC, advances PC past it, decodes and executes
// the instruction, and returns the number of cycles it consumed. If the
// opcode is not a legal 6502 instruction, Step returns zero cycles and a
// non-nil *InvalidOpcodeError; no further state changes occur.
func (c *CPU) Step() (uint8, error) {
	opcode := c.Mem.Read(c.PC)
	faultPC := c.PC
	c.PC++
	return c.execute(opcode, faultPC)
}

// execute decodes and runs opcode. faultPC is the address the opcode byte
// was fetched from, recorded for InvalidOpcodeError.
func (c *CPU) execute(opcode uint8, faultPC uint16) (uint8, error) {
	entry := decodeTable[opcode]
	if entry.exec == nil {
		return 0, &InvalidOpcodeError{PC: faultPC, Opcode: opcode}
	}
	extra := entry.exec(c, entry.mode)
	return entry.cycles + extra, nil
}
