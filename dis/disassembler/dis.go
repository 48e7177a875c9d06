package disassembler

import (
	"fmt"
	"strings"

	"github.com/mov-rax/6502emu/cpu"
)

const maxMemory = 0x10000

// Location is a single decoded instruction (or raw byte, if undecodable)
// at a fixed memory address.
type Location struct {
	PC           uint16
	Value        uint8
	OperandBytes []byte
	Inst         *cpu.InstructionInfo
}

func (l Location) instruction() string {
	if l.Inst == nil {
		return fmt.Sprintf("db $%02X        ; invalid opcode", l.Value)
	}
	operand := formatOperand(l.Inst.Mode, l.PC, l.OperandBytes)
	if operand == "" {
		return l.Inst.Mnemonic
	}
	return fmt.Sprintf("%s %s", l.Inst.Mnemonic, operand)
}

// Size reports how many bytes this instruction occupies, including its
// opcode byte.
func (l Location) Size() int {
	if l.Inst == nil {
		return 1
	}
	return 1 + l.Inst.Mode.OperandBytes()
}

func (l Location) String() string {
	operandCount := 0
	if l.Inst != nil {
		operandCount = l.Inst.Mode.OperandBytes()
	}

	var hexDump string
	switch operandCount {
	case 0:
		hexDump = fmt.Sprintf("%02X", l.Value)
	case 1:
		hexDump = fmt.Sprintf("%02X %02X", l.Value, l.OperandBytes[0])
	default:
		hexDump = fmt.Sprintf("%02X %02X %02X", l.Value, l.OperandBytes[0], l.OperandBytes[1])
	}

	return fmt.Sprintf("$%04X: %-8s  %s", l.PC, hexDump, l.instruction())
}

// DisassembleInstructions walks the entire 64 KiB address space, decoding
// one instruction per iteration, and returns every Location encountered.
func DisassembleInstructions(memory cpu.Memory) []Location {
	pc := 0

	var rows []Location
	for pc < maxMemory {
		loc := disassembleLocation(memory, pc)
		rows = append(rows, loc)
		pc += loc.Size()
	}

	return rows
}

// DisassembleMemory disassembles a fixed-length window of memory starting
// at startAddr, rendering each instruction on its own line.
func DisassembleMemory(memory cpu.Memory, startAddr int, length int) string {
	var out strings.Builder
	pc := startAddr
	endAddr := startAddr + length

	for pc < endAddr {
		loc := disassembleLocation(memory, pc)
		out.WriteString(loc.String())
		out.WriteString("\n")
		pc += loc.Size()
	}

	return out.String()
}

func disassembleLocation(memory cpu.Memory, pc int) Location {
	opcode := memory.Read(uint16(pc))
	l := Location{PC: uint16(pc), Value: opcode}

	info, exists := cpu.Lookup(opcode)
	if !exists {
		return l
	}

	operandCount := info.Mode.OperandBytes()
	if pc+operandCount >= maxMemory {
		return l
	}
	l.Inst = &info

	if operandCount > 0 {
		l.OperandBytes = make([]byte, operandCount)
		for i := 0; i < operandCount; i++ {
			l.OperandBytes[i] = memory.Read(uint16(pc + 1 + i))
		}
	}

	return l
}

// DisassembleBytes disassembles the full address space backed by memory,
// starting at address 0.
func DisassembleBytes(memory cpu.Memory) string {
	return DisassembleMemory(memory, 0, maxMemory)
}
