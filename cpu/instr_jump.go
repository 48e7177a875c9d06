package cpu

func jmp(c *CPU, mode AddressingMode) uint8 {
	addr, _ := c.operandAddress(mode)
	c.PC = addr
	return 0
}

// jsr pushes the address of the last byte of the JSR instruction (one less
// than the address of the next instruction), high byte then low byte.
func jsr(c *CPU, mode AddressingMode) uint8 {
	addr, _ := c.operandAddress(mode)
	c.Push16(c.PC - 1)
	c.PC = addr
	return 0
}

func rts(c *CPU, mode AddressingMode) uint8 {
	c.PC = c.Pop16() + 1
	return 0
}

// brk skips the padding byte that follows the BRK opcode, pushes PC and
// flags with B forced to 0b11, sets I, and loads PC from the IRQ/BRK
// vector.
func brk(c *CPU, mode AddressingMode) uint8 {
	c.PC++
	c.Push16(c.PC)
	c.Push(c.P | flagBMask)
	c.SetFlag(FlagI, true)
	lo := uint16(c.Mem.Read(0xFFFE))
	hi := uint16(c.Mem.Read(0xFFFF))
	c.PC = hi<<8 | lo
	return 0
}

// rti restores flags exactly as pushed (B bits included) and PC with no
// +1, unlike RTS.
func rti(c *CPU, mode AddressingMode) uint8 {
	c.P = c.Pop()
	c.PC = c.Pop16()
	return 0
}
