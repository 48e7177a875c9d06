package cpu

// extraCycle converts a page-cross flag into the 0/1 cycle penalty applied
// to indexed read instructions.
func extraCycle(crossed bool) uint8 {
	if crossed {
		return 1
	}
	return 0
}

func load(c *CPU, mode AddressingMode, dst *uint8) uint8 {
	value, crossed := c.operandValue(mode)
	*dst = value
	c.updateZN(*dst)
	return extraCycle(crossed)
}

func lda(c *CPU, mode AddressingMode) uint8 { return load(c, mode, &c.A) }
func ldx(c *CPU, mode AddressingMode) uint8 { return load(c, mode, &c.X) }
func ldy(c *CPU, mode AddressingMode) uint8 { return load(c, mode, &c.Y) }

// store never takes the page-cross penalty: indexed store addressing modes
// always pay their upper-bound cycle count.
func store(c *CPU, mode AddressingMode, src uint8) uint8 {
	addr, _ := c.operandAddress(mode)
	c.Mem.Write(addr, src)
	return 0
}

func sta(c *CPU, mode AddressingMode) uint8 { return store(c, mode, c.A) }
func stx(c *CPU, mode AddressingMode) uint8 { return store(c, mode, c.X) }
func sty(c *CPU, mode AddressingMode) uint8 { return store(c, mode, c.Y) }
