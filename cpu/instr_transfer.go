package cpu

func transfer(c *CPU, dst *uint8, src uint8) uint8 {
	*dst = src
	c.updateZN(*dst)
	return 0
}

func tax(c *CPU, mode AddressingMode) uint8 { return transfer(c, &c.X, c.A) }
func tay(c *CPU, mode AddressingMode) uint8 { return transfer(c, &c.Y, c.A) }
func txa(c *CPU, mode AddressingMode) uint8 { return transfer(c, &c.A, c.X) }
func tya(c *CPU, mode AddressingMode) uint8 { return transfer(c, &c.A, c.Y) }
func tsx(c *CPU, mode AddressingMode) uint8 { return transfer(c, &c.X, c.SP) }

// txs does not affect flags, unlike every other transfer.
func txs(c *CPU, mode AddressingMode) uint8 {
	c.SP = c.X
	return 0
}
