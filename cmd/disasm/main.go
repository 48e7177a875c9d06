// Command disasm renders a static disassembly listing of a raw binary
// loaded at a chosen start address.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mov-rax/6502emu/dis/disassembler"
	"github.com/mov-rax/6502emu/mem"
)

func main() {
	inputFile := flag.String("i", "", "input binary file")
	startAddr := flag.String("a", "", "start address (e.g. $F000 or 0xF000)")
	flag.Parse()

	addrStr := *startAddr
	if strings.HasPrefix(addrStr, "$") {
		addrStr = "0x" + addrStr[1:]
	}
	start, err := strconv.ParseUint(addrStr, 0, 16)
	if err != nil {
		fmt.Printf("Error parsing start address: %v\n", err)
		os.Exit(1)
	}

	memory := mem.NewFlat()
	n, err := loadBinary(memory, *inputFile, uint16(start))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(disassembler.DisassembleMemory(memory, int(start), n))
}

func loadBinary(m *mem.Flat, filename string, start uint16) (int, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return 0, fmt.Errorf("failed to read binary file: %w", err)
	}
	if err := m.Load(start, data); err != nil {
		return 0, err
	}
	return len(data), nil
}
