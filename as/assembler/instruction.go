package assembler

import "github.com/mov-rax/6502emu/cpu"

// AddressMode represents different 6502 addressing modes
type AddressMode int

const (
	Implicit AddressMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
	Relative
)

// Instruction represents a 6502 assembly instruction
type Instruction struct {
	Opcode      byte
	Size        int
	Cycles      int
	AddressMode AddressMode
}

// InstructionEntry represents an entry in our instruction lookup table
type InstructionEntry struct {
	BaseOpcode byte
	Modes      map[AddressMode]Instruction
}

// instructionSet is built from cpu.Lookup so the assembler's opcode/mode
// matrix is never out of step with the one the emulator core executes.
var instructionSet = buildInstructionSet()

func buildInstructionSet() map[string]InstructionEntry {
	set := make(map[string]InstructionEntry)

	for opcode := 0; opcode < 256; opcode++ {
		info, ok := cpu.Lookup(uint8(opcode))
		if !ok {
			continue
		}

		mode := addressModeFromCPU(info.Mode)
		inst := Instruction{
			Opcode:      info.Opcode,
			Size:        sizeForMode(mode),
			Cycles:      int(info.Cycles),
			AddressMode: mode,
		}

		entry, exists := set[info.Mnemonic]
		if !exists {
			entry = InstructionEntry{BaseOpcode: info.Opcode, Modes: make(map[AddressMode]Instruction)}
		}
		entry.Modes[mode] = inst
		set[info.Mnemonic] = entry
	}

	return set
}

// addressModeFromCPU translates the emulator core's AddressingMode into the
// assembler's own vocabulary, which the parser uses to classify operand
// syntax before an instruction's mnemonic is even known.
func addressModeFromCPU(mode cpu.AddressingMode) AddressMode {
	switch mode {
	case cpu.Implied:
		return Implicit
	case cpu.Accumulator:
		return Accumulator
	case cpu.Immediate:
		return Immediate
	case cpu.ZeroPage:
		return ZeroPage
	case cpu.ZeroPageX:
		return ZeroPageX
	case cpu.ZeroPageY:
		return ZeroPageY
	case cpu.Absolute:
		return Absolute
	case cpu.AbsoluteX:
		return AbsoluteX
	case cpu.AbsoluteY:
		return AbsoluteY
	case cpu.Indirect:
		return Indirect
	case cpu.IndirectX:
		return IndirectX
	case cpu.IndirectY:
		return IndirectY
	case cpu.Relative:
		return Relative
	default:
		panic("assembler: unhandled addressing mode from cpu.Lookup")
	}
}

// sizeForMode returns the instruction length in bytes (opcode plus operand)
// for a given addressing mode.
func sizeForMode(mode AddressMode) int {
	switch mode {
	case Implicit, Accumulator:
		return 1
	case Immediate, ZeroPage, ZeroPageX, ZeroPageY, IndirectX, IndirectY, Relative:
		return 2
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 3
	default:
		panic("assembler: unhandled addressing mode in sizeForMode")
	}
}
