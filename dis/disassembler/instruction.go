package disassembler

import (
	"fmt"

	"github.com/mov-rax/6502emu/cpu"
)

// formatOperand renders the operand of an instruction in the mode's
// assembler syntax, given the raw operand bytes and the address of the
// opcode itself (needed for relative branch targets).
func formatOperand(mode cpu.AddressingMode, pc uint16, bytes []byte) string {
	switch mode {
	case cpu.Implied:
		return ""
	case cpu.Accumulator:
		return "A"
	case cpu.Immediate:
		return fmt.Sprintf("#$%02X", bytes[0])
	case cpu.ZeroPage:
		return fmt.Sprintf("$%02X", bytes[0])
	case cpu.ZeroPageX:
		return fmt.Sprintf("$%02X,X", bytes[0])
	case cpu.ZeroPageY:
		return fmt.Sprintf("$%02X,Y", bytes[0])
	case cpu.Absolute:
		return fmt.Sprintf("$%02X%02X", bytes[1], bytes[0])
	case cpu.AbsoluteX:
		return fmt.Sprintf("$%02X%02X,X", bytes[1], bytes[0])
	case cpu.AbsoluteY:
		return fmt.Sprintf("$%02X%02X,Y", bytes[1], bytes[0])
	case cpu.Indirect:
		return fmt.Sprintf("($%02X%02X)", bytes[1], bytes[0])
	case cpu.IndirectX:
		return fmt.Sprintf("($%02X,X)", bytes[0])
	case cpu.IndirectY:
		return fmt.Sprintf("($%02X),Y", bytes[0])
	case cpu.Relative:
		offset := int8(bytes[0])
		target := pc + 2 + uint16(offset)
		return fmt.Sprintf("$%04X", target)
	default:
		return "???"
	}
}
