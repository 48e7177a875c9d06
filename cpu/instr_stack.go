package cpu

func pha(c *CPU, mode AddressingMode) uint8 {
	c.Push(c.A)
	return 0
}

// php always forces the B field to 0b11 in the pushed byte.
func php(c *CPU, mode AddressingMode) uint8 {
	c.Push(c.P | flagBMask)
	return 0
}

func pla(c *CPU, mode AddressingMode) uint8 {
	c.A = c.Pop()
	c.updateZN(c.A)
	return 0
}

// plp restores P exactly as it was pushed, B bits included — see DESIGN.md
// for why this departs from a common (incorrect) implementation that
// preserves the live B bits instead.
func plp(c *CPU, mode AddressingMode) uint8 {
	c.P = c.Pop()
	return 0
}
