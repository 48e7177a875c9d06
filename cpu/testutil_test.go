package cpu

// flatMemory is the simplest possible Memory implementation: a full 64K
// byte array addressed directly by a uint16, used throughout the test
// suite so each test can poke opcode bytes and operands straight into
// place without going through the production mem package.
type flatMemory [65536]uint8

func (m *flatMemory) Read(addr uint16) uint8       { return m[addr] }
func (m *flatMemory) Write(addr uint16, v uint8)   { m[addr] = v }

// CPUAndMemory bundles a CPU with its backing flatMemory so tests can
// reach into memory directly (c.Memory[addr] = ...) while still driving
// the CPU through its normal public API.
type CPUAndMemory struct {
	*CPU
	Memory *flatMemory
}

func NewCPUAndMemory() *CPUAndMemory {
	mem := &flatMemory{}
	return &CPUAndMemory{CPU: NewCPU(mem), Memory: mem}
}

func newTestCPU() *CPUAndMemory {
	c := NewCPUAndMemory()
	c.PC = 0x0200
	c.P = 0
	return c
}
