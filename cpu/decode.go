package cpu

import "fmt"

// instrFunc is the shape every instruction handler has: given the
// addressing mode bound to the opcode, it performs the instruction's
// effect and returns the *extra* cycles beyond the decode table's base
// cycle count (0 or 1 for page-cross-sensitive reads, 0-2 for branches,
// always 0 for everything else).
type instrFunc func(c *CPU, mode AddressingMode) uint8

type opcodeEntry struct {
	mnemonic string
	mode     AddressingMode
	cycles   uint8
	exec     instrFunc
}

var decodeTable [256]opcodeEntry

func init() {
	buildDecodeTable()
}

// buildDecodeTable populates the 256-entry opcode table once at package
// init. A duplicate assignment is a construction-time bug in this file,
// not a reachable runtime condition, so it panics immediately rather than
// silently overwriting an entry.
func buildDecodeTable() {
	add := func(opcode uint8, mnemonic string, mode AddressingMode, cycles uint8, exec instrFunc) {
		if decodeTable[opcode].exec != nil {
			panic(fmt.Sprintf("cpu: duplicate decode table entry for opcode 0x%02X (%s)", opcode, mnemonic))
		}
		decodeTable[opcode] = opcodeEntry{mnemonic: mnemonic, mode: mode, cycles: cycles, exec: exec}
	}

	// Load/Store Operations
	add(LDA_IMM, "LDA", Immediate, 2, lda)
	add(LDA_ZP, "LDA", ZeroPage, 3, lda)
	add(LDA_ZPX, "LDA", ZeroPageX, 4, lda)
	add(LDA_ABS, "LDA", Absolute, 4, lda)
	add(LDA_ABX, "LDA", AbsoluteX, 4, lda)
	add(LDA_ABY, "LDA", AbsoluteY, 4, lda)
	add(LDA_INX, "LDA", IndirectX, 6, lda)
	add(LDA_INY, "LDA", IndirectY, 5, lda)

	add(LDX_IMM, "LDX", Immediate, 2, ldx)
	add(LDX_ZP, "LDX", ZeroPage, 3, ldx)
	add(LDX_ZPY, "LDX", ZeroPageY, 4, ldx)
	add(LDX_ABS, "LDX", Absolute, 4, ldx)
	add(LDX_ABY, "LDX", AbsoluteY, 4, ldx)

	add(LDY_IMM, "LDY", Immediate, 2, ldy)
	add(LDY_ZP, "LDY", ZeroPage, 3, ldy)
	add(LDY_ZPX, "LDY", ZeroPageX, 4, ldy)
	add(LDY_ABS, "LDY", Absolute, 4, ldy)
	add(LDY_ABX, "LDY", AbsoluteX, 4, ldy)

	add(STA_ZP, "STA", ZeroPage, 3, sta)
	add(STA_ZPX, "STA", ZeroPageX, 4, sta)
	add(STA_ABS, "STA", Absolute, 4, sta)
	add(STA_ABX, "STA", AbsoluteX, 5, sta)
	add(STA_ABY, "STA", AbsoluteY, 5, sta)
	add(STA_INX, "STA", IndirectX, 6, sta)
	add(STA_INY, "STA", IndirectY, 6, sta)

	add(STX_ZP, "STX", ZeroPage, 3, stx)
	add(STX_ZPY, "STX", ZeroPageY, 4, stx)
	add(STX_ABS, "STX", Absolute, 4, stx)

	add(STY_ZP, "STY", ZeroPage, 3, sty)
	add(STY_ZPX, "STY", ZeroPageX, 4, sty)
	add(STY_ABS, "STY", Absolute, 4, sty)

	// Register Transfers
	add(TAX, "TAX", Implied, 2, tax)
	add(TAY, "TAY", Implied, 2, tay)
	add(TXA, "TXA", Implied, 2, txa)
	add(TYA, "TYA", Implied, 2, tya)
	add(TSX, "TSX", Implied, 2, tsx)
	add(TXS, "TXS", Implied, 2, txs)

	// Stack Operations
	add(PHA, "PHA", Implied, 3, pha)
	add(PHP, "PHP", Implied, 3, php)
	add(PLA, "PLA", Implied, 4, pla)
	add(PLP, "PLP", Implied, 4, plp)

	// Logical Operations
	add(AND_IMM, "AND", Immediate, 2, and)
	add(AND_ZP, "AND", ZeroPage, 3, and)
	add(AND_ZPX, "AND", ZeroPageX, 4, and)
	add(AND_ABS, "AND", Absolute, 4, and)
	add(AND_ABX, "AND", AbsoluteX, 4, and)
	add(AND_ABY, "AND", AbsoluteY, 4, and)
	add(AND_INX, "AND", IndirectX, 6, and)
	add(AND_INY, "AND", IndirectY, 5, and)

	add(EOR_IMM, "EOR", Immediate, 2, eor)
	add(EOR_ZP, "EOR", ZeroPage, 3, eor)
	add(EOR_ZPX, "EOR", ZeroPageX, 4, eor)
	add(EOR_ABS, "EOR", Absolute, 4, eor)
	add(EOR_ABX, "EOR", AbsoluteX, 4, eor)
	add(EOR_ABY, "EOR", AbsoluteY, 4, eor)
	add(EOR_INX, "EOR", IndirectX, 6, eor)
	add(EOR_INY, "EOR", IndirectY, 5, eor)

	add(ORA_IMM, "ORA", Immediate, 2, ora)
	add(ORA_ZP, "ORA", ZeroPage, 3, ora)
	add(ORA_ZPX, "ORA", ZeroPageX, 4, ora)
	add(ORA_ABS, "ORA", Absolute, 4, ora)
	add(ORA_ABX, "ORA", AbsoluteX, 4, ora)
	add(ORA_ABY, "ORA", AbsoluteY, 4, ora)
	add(ORA_INX, "ORA", IndirectX, 6, ora)
	add(ORA_INY, "ORA", IndirectY, 5, ora)

	add(BIT_ZP, "BIT", ZeroPage, 3, bit)
	add(BIT_ABS, "BIT", Absolute, 4, bit)

	// Arithmetic Operations
	add(ADC_IMM, "ADC", Immediate, 2, adc)
	add(ADC_ZP, "ADC", ZeroPage, 3, adc)
	add(ADC_ZPX, "ADC", ZeroPageX, 4, adc)
	add(ADC_ABS, "ADC", Absolute, 4, adc)
	add(ADC_ABX, "ADC", AbsoluteX, 4, adc)
	add(ADC_ABY, "ADC", AbsoluteY, 4, adc)
	add(ADC_INX, "ADC", IndirectX, 6, adc)
	add(ADC_INY, "ADC", IndirectY, 5, adc)

	add(SBC_IMM, "SBC", Immediate, 2, sbc)
	add(SBC_ZP, "SBC", ZeroPage, 3, sbc)
	add(SBC_ZPX, "SBC", ZeroPageX, 4, sbc)
	add(SBC_ABS, "SBC", Absolute, 4, sbc)
	add(SBC_ABX, "SBC", AbsoluteX, 4, sbc)
	add(SBC_ABY, "SBC", AbsoluteY, 4, sbc)
	add(SBC_INX, "SBC", IndirectX, 6, sbc)
	add(SBC_INY, "SBC", IndirectY, 5, sbc)

	add(CMP_IMM, "CMP", Immediate, 2, cmp)
	add(CMP_ZP, "CMP", ZeroPage, 3, cmp)
	add(CMP_ZPX, "CMP", ZeroPageX, 4, cmp)
	add(CMP_ABS, "CMP", Absolute, 4, cmp)
	add(CMP_ABX, "CMP", AbsoluteX, 4, cmp)
	add(CMP_ABY, "CMP", AbsoluteY, 4, cmp)
	add(CMP_INX, "CMP", IndirectX, 6, cmp)
	add(CMP_INY, "CMP", IndirectY, 5, cmp)

	add(CPX_IMM, "CPX", Immediate, 2, cpx)
	add(CPX_ZP, "CPX", ZeroPage, 3, cpx)
	add(CPX_ABS, "CPX", Absolute, 4, cpx)

	add(CPY_IMM, "CPY", Immediate, 2, cpy)
	add(CPY_ZP, "CPY", ZeroPage, 3, cpy)
	add(CPY_ABS, "CPY", Absolute, 4, cpy)

	// Increments & Decrements
	add(INC_ZP, "INC", ZeroPage, 5, inc)
	add(INC_ZPX, "INC", ZeroPageX, 6, inc)
	add(INC_ABS, "INC", Absolute, 6, inc)
	add(INC_ABX, "INC", AbsoluteX, 7, inc)

	add(DEC_ZP, "DEC", ZeroPage, 5, dec)
	add(DEC_ZPX, "DEC", ZeroPageX, 6, dec)
	add(DEC_ABS, "DEC", Absolute, 6, dec)
	add(DEC_ABX, "DEC", AbsoluteX, 7, dec)

	add(INX, "INX", Implied, 2, inx)
	add(INY, "INY", Implied, 2, iny)
	add(DEX, "DEX", Implied, 2, dex)
	add(DEY, "DEY", Implied, 2, dey)

	// Shifts & Rotates
	add(ASL_ACC, "ASL", Accumulator, 2, asl)
	add(ASL_ZP, "ASL", ZeroPage, 5, asl)
	add(ASL_ZPX, "ASL", ZeroPageX, 6, asl)
	add(ASL_ABS, "ASL", Absolute, 6, asl)
	add(ASL_ABX, "ASL", AbsoluteX, 7, asl)

	add(LSR_ACC, "LSR", Accumulator, 2, lsr)
	add(LSR_ZP, "LSR", ZeroPage, 5, lsr)
	add(LSR_ZPX, "LSR", ZeroPageX, 6, lsr)
	add(LSR_ABS, "LSR", Absolute, 6, lsr)
	add(LSR_ABX, "LSR", AbsoluteX, 7, lsr)

	add(ROL_ACC, "ROL", Accumulator, 2, rol)
	add(ROL_ZP, "ROL", ZeroPage, 5, rol)
	add(ROL_ZPX, "ROL", ZeroPageX, 6, rol)
	add(ROL_ABS, "ROL", Absolute, 6, rol)
	add(ROL_ABX, "ROL", AbsoluteX, 7, rol)

	add(ROR_ACC, "ROR", Accumulator, 2, ror)
	add(ROR_ZP, "ROR", ZeroPage, 5, ror)
	add(ROR_ZPX, "ROR", ZeroPageX, 6, ror)
	add(ROR_ABS, "ROR", Absolute, 6, ror)
	add(ROR_ABX, "ROR", AbsoluteX, 7, ror)

	// Jumps & Calls
	add(JMP_ABS, "JMP", Absolute, 3, jmp)
	add(JMP_IND, "JMP", Indirect, 5, jmp)
	add(JSR_ABS, "JSR", Absolute, 6, jsr)
	add(RTS, "RTS", Implied, 6, rts)

	// Branches
	add(BCC, "BCC", Relative, 2, bcc)
	add(BCS, "BCS", Relative, 2, bcs)
	add(BEQ, "BEQ", Relative, 2, beq)
	add(BMI, "BMI", Relative, 2, bmi)
	add(BNE, "BNE", Relative, 2, bne)
	add(BPL, "BPL", Relative, 2, bpl)
	add(BVC, "BVC", Relative, 2, bvc)
	add(BVS, "BVS", Relative, 2, bvs)

	// Status Flag Changes
	add(CLC, "CLC", Implied, 2, clc)
	add(CLD, "CLD", Implied, 2, cld)
	add(CLI, "CLI", Implied, 2, cli)
	add(CLV, "CLV", Implied, 2, clv)
	add(SEC, "SEC", Implied, 2, sec)
	add(SED, "SED", Implied, 2, sed)
	add(SEI, "SEI", Implied, 2, sei)

	// System Functions
	add(BRK, "BRK", Implied, 7, brk)
	add(NOP, "NOP", Implied, 2, nop)
	add(RTI, "RTI", Implied, 6, rti)
}

// InstructionInfo describes the static shape of a decoded opcode: its
// mnemonic, addressing mode, and base cycle count. It is the read-only view
// of decodeTable exposed to tools outside the cpu package, such as a
// disassembler or assembler, so those tools never need their own copy of
// the opcode matrix.
type InstructionInfo struct {
	Opcode   uint8
	Mnemonic string
	Mode     AddressingMode
	Cycles   uint8
}

// Lookup returns the static decode information for opcode, and false if
// the opcode is not a legal 6502 instruction.
func Lookup(opcode uint8) (InstructionInfo, bool) {
	entry := decodeTable[opcode]
	if entry.exec == nil {
		return InstructionInfo{}, false
	}
	return InstructionInfo{Opcode: opcode, Mnemonic: entry.mnemonic, Mode: entry.mode, Cycles: entry.cycles}, true
}
