package cpu

func setFlagOp(mask uint8, set bool) func(*CPU, AddressingMode) uint8 {
	return func(c *CPU, mode AddressingMode) uint8 {
		c.SetFlag(mask, set)
		return 0
	}
}

var (
	clc = setFlagOp(FlagC, false)
	sec = setFlagOp(FlagC, true)
	cld = setFlagOp(FlagD, false)
	sed = setFlagOp(FlagD, true)
	cli = setFlagOp(FlagI, false)
	sei = setFlagOp(FlagI, true)
	clv = setFlagOp(FlagV, false)
)

func nop(c *CPU, mode AddressingMode) uint8 {
	return 0
}
