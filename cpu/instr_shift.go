package cpu

// shift runs f over either the accumulator (Accumulator mode) or a memory
// location (every other mode the shift/rotate opcodes support), writing
// the result back to wherever it came from.
func shift(c *CPU, mode AddressingMode, f func(uint8) uint8) uint8 {
	if mode == Accumulator {
		c.A = f(c.A)
		return 0
	}
	addr, _ := c.operandAddress(mode)
	c.Mem.Write(addr, f(c.Mem.Read(addr)))
	return 0
}

func asl(c *CPU, mode AddressingMode) uint8 {
	return shift(c, mode, func(v uint8) uint8 {
		c.SetFlag(FlagC, v&0x80 != 0)
		result := v << 1
		c.updateZN(result)
		return result
	})
}

func lsr(c *CPU, mode AddressingMode) uint8 {
	return shift(c, mode, func(v uint8) uint8 {
		c.SetFlag(FlagC, v&0x01 != 0)
		result := v >> 1
		c.updateZN(result)
		return result
	})
}

func rol(c *CPU, mode AddressingMode) uint8 {
	return shift(c, mode, func(v uint8) uint8 {
		carryIn := uint8(0)
		if c.GetFlag(FlagC) {
			carryIn = 1
		}
		c.SetFlag(FlagC, v&0x80 != 0)
		result := (v << 1) | carryIn
		c.updateZN(result)
		return result
	})
}

func ror(c *CPU, mode AddressingMode) uint8 {
	return shift(c, mode, func(v uint8) uint8 {
		carryIn := uint8(0)
		if c.GetFlag(FlagC) {
			carryIn = 0x80
		}
		c.SetFlag(FlagC, v&0x01 != 0)
		result := (v >> 1) | carryIn
		c.updateZN(result)
		return result
	})
}
