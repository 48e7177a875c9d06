package cpu

// AddressingMode identifies one of the thirteen ways a 6502 instruction can
// specify its operand.
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect // JMP only
	IndirectX
	IndirectY
	Relative // branches only
)

// String names the addressing mode, mainly for disassembly and test
// failure messages.
func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case ZeroPage:
		return "ZeroPage"
	case ZeroPageX:
		return "ZeroPage,X"
	case ZeroPageY:
		return "ZeroPage,Y"
	case Absolute:
		return "Absolute"
	case AbsoluteX:
		return "Absolute,X"
	case AbsoluteY:
		return "Absolute,Y"
	case Indirect:
		return "Indirect"
	case IndirectX:
		return "(Indirect,X)"
	case IndirectY:
		return "(Indirect),Y"
	case Relative:
		return "Relative"
	default:
		return "Unknown"
	}
}

// OperandBytes reports how many bytes of operand the mode consumes
// following the opcode byte.
func (m AddressingMode) OperandBytes() int {
	switch m {
	case Implied, Accumulator:
		return 0
	case Immediate, ZeroPage, ZeroPageX, ZeroPageY, IndirectX, IndirectY, Relative:
		return 1
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 2
	default:
		return 0
	}
}

// fetchByte reads the byte at PC and advances PC by one.
func (c *CPU) fetchByte() uint8 {
	v := c.Mem.Read(c.PC)
	c.PC++
	return v
}

// fetchWord reads a little-endian 16-bit value at PC and advances PC by
// two.
func (c *CPU) fetchWord() uint16 {
	lo := uint16(c.fetchByte())
	hi := uint16(c.fetchByte())
	return hi<<8 | lo
}

// readWordZeroPageWrap reads a little-endian 16-bit pointer stored at zero
// page address zp, wrapping the high-byte fetch within the zero page
// instead of spilling into the stack page.
func (c *CPU) readWordZeroPageWrap(zp uint8) uint16 {
	lo := uint16(c.Mem.Read(uint16(zp)))
	hi := uint16(c.Mem.Read(uint16(zp + 1)))
	return hi<<8 | lo
}

// operandAddress computes the effective address for mode, consuming
// whatever operand bytes that mode requires and advancing PC past them. It
// reports whether the effective address crosses a page boundary from its
// base, for the benefit of indexed read instructions.
//
// For Immediate, the "address" is simply the PC location holding the
// immediate byte (operandValue is the normal way to consume an Immediate
// operand; this form exists only so callers that always go through
// operandAddress, like a future store-to-immediate sanity check, see a
// sensible value).
func (c *CPU) operandAddress(mode AddressingMode) (addr uint16, crossed bool) {
	switch mode {
	case Immediate:
		addr = c.PC
		c.PC++

	case ZeroPage:
		addr = uint16(c.fetchByte())

	case ZeroPageX:
		addr = uint16((c.fetchByte() + c.X) & 0xFF)

	case ZeroPageY:
		addr = uint16((c.fetchByte() + c.Y) & 0xFF)

	case Absolute:
		addr = c.fetchWord()

	case AbsoluteX:
		base := c.fetchWord()
		addr = base + uint16(c.X)
		crossed = (base & 0xFF00) != (addr & 0xFF00)

	case AbsoluteY:
		base := c.fetchWord()
		addr = base + uint16(c.Y)
		crossed = (base & 0xFF00) != (addr & 0xFF00)

	case IndirectX:
		zp := (c.fetchByte() + c.X) & 0xFF
		addr = c.readWordZeroPageWrap(zp)

	case IndirectY:
		zp := c.fetchByte()
		base := c.readWordZeroPageWrap(zp)
		addr = base + uint16(c.Y)
		crossed = (base & 0xFF00) != (addr & 0xFF00)

	case Indirect:
		ptr := c.fetchWord()
		lo := uint16(c.Mem.Read(ptr))
		// The 6502 indirect-JMP page-wrap bug: the high byte is fetched
		// from (ptr & 0xFF00) | ((ptr+1) & 0xFF), never spilling into the
		// next page.
		hiAddr := (ptr & 0xFF00) | ((ptr + 1) & 0xFF)
		hi := uint16(c.Mem.Read(hiAddr))
		addr = hi<<8 | lo

	case Relative:
		offset := int8(c.fetchByte())
		addr = uint16(int32(c.PC) + int32(offset))

	case Implied, Accumulator:
		// No operand to consume.
	}
	return addr, crossed
}

// operandValue reads the operand as a byte for read-only instructions
// (LDA, AND, CMP, ...). Accumulator mode returns A itself and Immediate
// returns the byte at PC; every other mode reads through operandAddress.
func (c *CPU) operandValue(mode AddressingMode) (value uint8, crossed bool) {
	switch mode {
	case Accumulator:
		return c.A, false
	case Immediate:
		return c.fetchByte(), false
	default:
		addr, crossed := c.operandAddress(mode)
		return c.Mem.Read(addr), crossed
	}
}
