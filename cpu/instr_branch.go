package cpu

// branch builds a handler for one of the eight conditional branches. The
// decode table gives every branch opcode a base cycle count of 2; this
// handler returns the additional 0, 1, or 2 cycles: +1 if the branch is
// taken, +1 more if the taken branch crosses a page boundary.
func branch(cond func(*CPU) bool) func(*CPU, AddressingMode) uint8 {
	return func(c *CPU, mode AddressingMode) uint8 {
		target, _ := c.operandAddress(mode)
		if !cond(c) {
			return 0
		}
		oldPC := c.PC
		c.PC = target
		if (oldPC & 0xFF00) != (target & 0xFF00) {
			return 2
		}
		return 1
	}
}

var (
	bcc = branch(func(c *CPU) bool { return !c.GetFlag(FlagC) })
	bcs = branch(func(c *CPU) bool { return c.GetFlag(FlagC) })
	bne = branch(func(c *CPU) bool { return !c.GetFlag(FlagZ) })
	beq = branch(func(c *CPU) bool { return c.GetFlag(FlagZ) })
	bpl = branch(func(c *CPU) bool { return !c.GetFlag(FlagN) })
	bmi = branch(func(c *CPU) bool { return c.GetFlag(FlagN) })
	bvc = branch(func(c *CPU) bool { return !c.GetFlag(FlagV) })
	bvs = branch(func(c *CPU) bool { return c.GetFlag(FlagV) })
)
