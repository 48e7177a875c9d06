// Command as is a small two-pass 6502 assembler: assembly source text in,
// raw binary bytes out.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mov-rax/6502emu/as/assembler"
)

func main() {
	inputFile := flag.String("i", "", "input assembly file")
	outputFile := flag.String("o", "", "output binary file")
	listFile := flag.String("l", "", "generate listing file")
	flag.Parse()

	if *inputFile == "" {
		fmt.Println("Error: -i input file is required")
		flag.Usage()
		os.Exit(1)
	}

	if *outputFile == "" {
		*outputFile = strings.TrimSuffix(*inputFile, filepath.Ext(*inputFile)) + ".bin"
	}

	source, err := os.ReadFile(*inputFile)
	if err != nil {
		fmt.Printf("Error reading input file: %v\n", err)
		os.Exit(1)
	}

	as := assembler.NewAssembler()
	if err := as.Assemble(string(source)); err != nil {
		fmt.Printf("Assembly error: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*outputFile, as.GetOutput(), 0644); err != nil {
		fmt.Printf("Error writing output file: %v\n", err)
		os.Exit(1)
	}

	if *listFile != "" {
		listing := generateListing(string(source))
		if err := os.WriteFile(*listFile, []byte(listing), 0644); err != nil {
			fmt.Printf("Error writing listing file: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Successfully assembled %s to %s\n", *inputFile, *outputFile)
	fmt.Printf("Output size: %d bytes\n", len(as.GetOutput()))
}

func generateListing(source string) string {
	var listing strings.Builder
	addr := uint16(0)
	for _, line := range strings.Split(source, "\n") {
		listing.WriteString(fmt.Sprintf("%04X  %s\n", addr, line))
		addr++
	}
	return listing.String()
}
