// Command monitor is an interactive bubbletea step-debugger for the cpu
// package: it loads a raw binary at a chosen start address, points the
// reset vector at it, and lets the user single-step or free-run the CPU
// while watching registers, flags, a disassembly window, and a memory hex
// dump.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mov-rax/6502emu/cpu"
	"github.com/mov-rax/6502emu/mem"
)

func main() {
	inputFile := flag.String("i", "", "input binary file")
	startAddr := flag.String("a", "$F000", "start address (e.g. $F000 or 0xF000)")
	flag.Parse()

	if *inputFile == "" {
		fmt.Println("Error: -i input file is required")
		flag.Usage()
		os.Exit(1)
	}

	start, err := parseAddress(*startAddr)
	if err != nil {
		fmt.Printf("Error parsing start address: %v\n", err)
		os.Exit(1)
	}

	memory := mem.NewFlat()
	if err := loadAndSetupBinary(memory, *inputFile, start); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	c := cpu.NewCPU(memory)
	c.Reset()

	p := tea.NewProgram(newMonitor(c, memory))
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

func parseAddress(s string) (uint16, error) {
	if strings.HasPrefix(s, "$") {
		s = "0x" + s[1:]
	}
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}

// loadAndSetupBinary loads a raw binary at start and points the reset
// vector at it, the way a ROM cartridge maps its entry point.
func loadAndSetupBinary(m *mem.Flat, filename string, start uint16) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read binary file: %w", err)
	}
	if err := m.Load(start, data); err != nil {
		return err
	}
	m.Write(0xFFFC, uint8(start))
	m.Write(0xFFFD, uint8(start>>8))
	return nil
}
