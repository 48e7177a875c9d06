package cpu

// Processor-status flag bits, packed into CPU.P in the order the real 6502
// stores and pushes them: N V 1 B D I Z C (bit 7 down to bit 0).
const (
	FlagC       uint8 = 1 << 0 // Carry
	FlagZ       uint8 = 1 << 1 // Zero
	FlagI       uint8 = 1 << 2 // Interrupt disable
	FlagD       uint8 = 1 << 3 // Decimal mode
	FlagB       uint8 = 1 << 4 // Break (only meaningful in the pushed byte)
	FlagUnused  uint8 = 1 << 5 // Always 1 when pushed by PHP/BRK
	FlagV       uint8 = 1 << 6 // Overflow
	FlagN       uint8 = 1 << 7 // Negative
	flagBMask   uint8 = FlagB | FlagUnused
)

// GetFlag reports whether any bit in mask is set in P.
func (c *CPU) GetFlag(mask uint8) bool {
	return c.P&mask != 0
}

// SetFlag sets or clears every bit in mask within P.
func (c *CPU) SetFlag(mask uint8, set bool) {
	if set {
		c.P |= mask
	} else {
		c.P &^= mask
	}
}

// updateZN sets N from bit 7 of value and Z from whether value is zero,
// leaving every other flag untouched. This is the discipline every
// instruction that "sets N, Z" follows.
func (c *CPU) updateZN(value uint8) {
	c.SetFlag(FlagZ, value == 0)
	c.SetFlag(FlagN, value&0x80 != 0)
}

// Flags is the unpacked view of the processor-status byte described in the
// data model: six independent single-bit flags plus the 2-bit B field that
// only has meaning once pushed to the stack. It exists so the pack/unpack
// round trip is a testable, CPU-instance-independent operation; CPU itself
// just keeps the packed form in P, the way the hardware does.
type Flags struct {
	C, Z, I, D, V, N bool
	B                uint8 // 2 bits, 0-3
}

// Pack serializes f into the packed byte layout used on the stack, with
// bits 4-5 carrying the 2-bit B field taken from f.B.
func (f Flags) Pack() uint8 {
	var p uint8
	if f.C {
		p |= FlagC
	}
	if f.Z {
		p |= FlagZ
	}
	if f.I {
		p |= FlagI
	}
	if f.D {
		p |= FlagD
	}
	p |= (f.B & 0x03) << 4
	if f.V {
		p |= FlagV
	}
	if f.N {
		p |= FlagN
	}
	return p
}

// UnpackFlags decodes a packed processor-status byte into its constituent
// flags.
func UnpackFlags(p uint8) Flags {
	return Flags{
		C: p&FlagC != 0,
		Z: p&FlagZ != 0,
		I: p&FlagI != 0,
		D: p&FlagD != 0,
		B: (p >> 4) & 0x03,
		V: p&FlagV != 0,
		N: p&FlagN != 0,
	}
}
