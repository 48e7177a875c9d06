package cpu

// incdec implements the RMW memory forms of INC/DEC. No page-cross penalty
// applies to RMW instructions; they always pay their upper-bound cycle
// count, which is baked into the decode table's base cycles.
func incdec(c *CPU, mode AddressingMode, delta uint8) uint8 {
	addr, _ := c.operandAddress(mode)
	result := c.Mem.Read(addr) + delta
	c.Mem.Write(addr, result)
	c.updateZN(result)
	return 0
}

func inc(c *CPU, mode AddressingMode) uint8 { return incdec(c, mode, 1) }
func dec(c *CPU, mode AddressingMode) uint8 { return incdec(c, mode, 0xFF) }

func regIncDec(c *CPU, dst *uint8, delta uint8) uint8 {
	*dst += delta
	c.updateZN(*dst)
	return 0
}

func inx(c *CPU, mode AddressingMode) uint8 { return regIncDec(c, &c.X, 1) }
func iny(c *CPU, mode AddressingMode) uint8 { return regIncDec(c, &c.Y, 1) }
func dex(c *CPU, mode AddressingMode) uint8 { return regIncDec(c, &c.X, 0xFF) }
func dey(c *CPU, mode AddressingMode) uint8 { return regIncDec(c, &c.Y, 0xFF) }
