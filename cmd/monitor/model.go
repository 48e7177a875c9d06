package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mov-rax/6502emu/cpu"
	"github.com/mov-rax/6502emu/dis/disassembler"
)

// cpuSnapshot captures CPU state between steps so the view can highlight
// what changed on the last instruction.
type cpuSnapshot struct {
	A  uint8
	X  uint8
	Y  uint8
	PC uint16
	SP uint8
	P  uint8
}

type stepTick struct{}

func doStep() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(time.Time) tea.Msg {
		return stepTick{}
	})
}

// monitor is the bubbletea model driving the step-debugger.
type monitor struct {
	mem              cpu.Memory
	cpu              *cpu.CPU
	paused           bool
	width            int
	height           int
	locations        []disassembler.Location
	selectedLocation int

	lastState  cpuSnapshot
	lastMemory [64]uint8

	memoryAddress uint16
	activePane    string // "disasm" or "memory"
	gotoInput     textinput.Model
	showingGoto   bool

	breakpoints map[uint16]bool
	lastErr     error
}

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	changed   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}

	titleStyle = lipgloss.NewStyle().Foreground(subtle).Padding(0, 1)

	infoStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(highlight).
			Padding(1).
			Width(30)

	changedStyle = lipgloss.NewStyle().Foreground(changed).Bold(true)

	stackStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(special).
			Padding(1).
			Width(30)

	disasmStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(highlight).
			Padding(1)

	currentLineStyle = lipgloss.NewStyle().
				Background(highlight).
				Foreground(lipgloss.Color("#ffffff"))

	selectedLineStyle = lipgloss.NewStyle().Foreground(highlight)

	memoryStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(special).
			Padding(1).
			Width(50)

	breakpointStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true)

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
)

func newMonitor(c *cpu.CPU, memory cpu.Memory) *monitor {
	ti := textinput.New()
	ti.Placeholder = "hex address (e.g. FF00)"
	ti.CharLimit = 4
	ti.Width = 6

	m := &monitor{
		mem:         memory,
		cpu:         c,
		paused:      true,
		locations:   disassembler.DisassembleInstructions(memory),
		activePane:  "disasm",
		gotoInput:   ti,
		breakpoints: make(map[uint16]bool),
	}
	m.relocate()
	return m
}

func (m *monitor) snapshot() cpuSnapshot {
	return cpuSnapshot{A: m.cpu.A, X: m.cpu.X, Y: m.cpu.Y, PC: m.cpu.PC, SP: m.cpu.SP, P: m.cpu.P}
}

func (m *monitor) captureMemoryState() {
	addr := m.memoryAddress
	for i := 0; i < 64; i++ {
		m.lastMemory[i] = m.mem.Read(addr + uint16(i))
	}
}

func (m *monitor) relocate() {
	index := 0
	for i, l := range m.locations {
		if l.PC == m.cpu.PC {
			index = i
			break
		}
	}
	m.selectedLocation = index
}

func (m *monitor) step() {
	m.lastState = m.snapshot()
	m.captureMemoryState()
	if _, err := m.cpu.Step(); err != nil {
		m.lastErr = err
		m.paused = true
	}
	m.relocate()
}

func (m monitor) Init() tea.Cmd {
	return nil
}

func (m monitor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stepTick:
		if m.paused || m.breakpoints[m.cpu.PC] {
			m.paused = true
			return m, nil
		}
		m.step()
		return m, doStep()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if m.showingGoto {
			switch msg.Type {
			case tea.KeyEnter:
				if addr, err := strconv.ParseUint(m.gotoInput.Value(), 16, 16); err == nil {
					m.memoryAddress = uint16(addr)
					m.captureMemoryState()
				}
				m.showingGoto = false
				return m, nil
			case tea.KeyEsc:
				m.showingGoto = false
				return m, nil
			}
			var cmd tea.Cmd
			m.gotoInput, cmd = m.gotoInput.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "g":
			m.showingGoto = true
			m.gotoInput.Focus()
			return m, textinput.Blink
		case "q", "ctrl+c":
			return m, tea.Quit
		case "s":
			if m.paused {
				m.step()
			}
		case "b":
			addr := m.locations[m.selectedLocation].PC
			if m.breakpoints[addr] {
				delete(m.breakpoints, addr)
			} else {
				m.breakpoints[addr] = true
			}
		case "n":
			if m.paused && len(m.breakpoints) > 0 {
				m.paused = false
				return m, doStep()
			}
		case "p":
			m.paused = !m.paused
			if !m.paused {
				return m, doStep()
			}
		case "tab":
			if m.activePane == "disasm" {
				m.activePane = "memory"
			} else {
				m.activePane = "disasm"
			}
		case "up":
			if m.activePane == "disasm" {
				if m.selectedLocation > 0 {
					m.selectedLocation--
				}
			} else if m.memoryAddress >= 8 {
				m.memoryAddress -= 8
				m.captureMemoryState()
			}
		case "down":
			if m.activePane == "disasm" {
				if m.selectedLocation < len(m.locations)-20 {
					m.selectedLocation++
				}
			} else if m.memoryAddress <= 0xFFF8 {
				m.memoryAddress += 8
				m.captureMemoryState()
			}
		case "pgup":
			if m.activePane == "disasm" {
				m.selectedLocation -= 20
				if m.selectedLocation < 0 {
					m.selectedLocation = 0
				}
			} else {
				if m.memoryAddress >= 64 {
					m.memoryAddress -= 64
				} else {
					m.memoryAddress = 0
				}
				m.captureMemoryState()
			}
		case "pgdown":
			if m.activePane == "disasm" {
				m.selectedLocation += 20
				if max := len(m.locations) - 20; m.selectedLocation > max {
					m.selectedLocation = max
				}
			} else {
				if m.memoryAddress <= 0xFFC0 {
					m.memoryAddress += 64
				} else {
					m.memoryAddress = 0xFFC0
				}
				m.captureMemoryState()
			}
		}
	}
	return m, nil
}

func (m monitor) formatReg8(name string, current, last uint8) string {
	value := fmt.Sprintf("%s: $%02X", name, current)
	if current != last {
		return changedStyle.Render(value)
	}
	return value
}

func (m monitor) formatReg16(name string, current, last uint16) string {
	value := fmt.Sprintf("%s: $%04X", name, current)
	if current != last {
		return changedStyle.Render(value)
	}
	return value
}

func (m monitor) formatFlags() string {
	flags := []struct {
		name string
		flag uint8
	}{
		{"N", cpu.FlagN}, {"V", cpu.FlagV}, {"B", cpu.FlagB}, {"D", cpu.FlagD},
		{"I", cpu.FlagI}, {"Z", cpu.FlagZ}, {"C", cpu.FlagC},
	}

	var result strings.Builder
	for _, f := range flags {
		current := m.cpu.P&f.flag != 0
		last := m.lastState.P&f.flag != 0
		switch {
		case current && current != last:
			result.WriteString(changedStyle.Render(f.name + " "))
		case current:
			result.WriteString(f.name + " ")
		default:
			result.WriteString("- ")
		}
	}
	return result.String()
}

func (m monitor) formatMemory() string {
	var result strings.Builder
	addr := m.memoryAddress

	for row := 0; row < 8; row++ {
		result.WriteString(fmt.Sprintf("$%04X: ", addr+uint16(row*8)))
		for col := 0; col < 8; col++ {
			offset := row*8 + col
			value := m.mem.Read(addr + uint16(offset))
			last := m.lastMemory[offset]
			if value != last {
				result.WriteString(changedStyle.Render(fmt.Sprintf("%02X ", value)))
			} else {
				result.WriteString(fmt.Sprintf("%02X ", value))
			}
		}
		result.WriteString(" | ")
		for col := 0; col < 8; col++ {
			offset := row*8 + col
			value := m.mem.Read(addr + uint16(offset))
			last := m.lastMemory[offset]
			ch := "."
			if value >= 32 && value <= 126 {
				ch = string(value)
			}
			if value != last {
				result.WriteString(changedStyle.Render(ch))
			} else {
				result.WriteString(ch)
			}
		}
		result.WriteString("\n")
	}

	return result.String()
}

func (m monitor) disassemble() string {
	var result strings.Builder
	for i := 0; i < 20 && m.selectedLocation+i < len(m.locations); i++ {
		offset := m.selectedLocation + i
		l := m.locations[offset]
		line := l.String()
		switch {
		case m.breakpoints[l.PC] && l.PC == m.cpu.PC:
			line = currentLineStyle.Render("● " + line)
		case m.breakpoints[l.PC]:
			line = breakpointStyle.Render("● " + line)
		case l.PC == m.cpu.PC:
			line = currentLineStyle.Render(line)
		case offset == m.selectedLocation:
			line = selectedLineStyle.Render(line)
		}
		result.WriteString(line)
		result.WriteString("\n")
	}
	return result.String()
}

func (m monitor) formatStack() string {
	var result strings.Builder
	for i := uint16(0xFF); i >= uint16(m.cpu.SP); i-- {
		result.WriteString(fmt.Sprintf("$%02X: %02X\n", i, m.mem.Read(0x100+i)))
		if i == 0 {
			break
		}
	}
	return result.String()
}

func (m monitor) View() string {
	rightColumnWidth := 32
	leftColumnWidth := 40

	infoStyle = infoStyle.Width(rightColumnWidth)
	stackStyle = stackStyle.Width(rightColumnWidth)
	disasmStyle = disasmStyle.Width(leftColumnWidth)

	disasm := disasmStyle.Render(fmt.Sprintf("Disassembly\n\n%s", m.disassemble()))

	cpuState := infoStyle.Render(fmt.Sprintf(
		"CPU State\n\n%s    %s    %s\n%s  %s\n\nFlags: %s\n",
		m.formatReg8("A", m.cpu.A, m.lastState.A),
		m.formatReg8("X", m.cpu.X, m.lastState.X),
		m.formatReg8("Y", m.cpu.Y, m.lastState.Y),
		m.formatReg16("PC", m.cpu.PC, m.lastState.PC),
		m.formatReg8("SP", m.cpu.SP, m.lastState.SP),
		m.formatFlags(),
	))

	stack := stackStyle.Render(fmt.Sprintf("Stack\n\n%s", m.formatStack()))
	memory := memoryStyle.Render(fmt.Sprintf("Memory (↑↓ to scroll)\n\n%s", m.formatMemory()))

	right := lipgloss.JoinVertical(lipgloss.Left, cpuState, stack, memory)

	var help string
	switch {
	case m.lastErr != nil:
		help = errorStyle.Render(fmt.Sprintf("halted: %v", m.lastErr))
	case !m.paused:
		help = titleStyle.Render("p: pause • q: quit")
	default:
		help = titleStyle.Render(
			"s: step • n: run to break • p: pause/resume • b: toggle break • " +
				"↑↓: scroll • pgup/pgdn: page • tab: switch pane • g: goto • q: quit",
		)
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top, disasm, lipgloss.PlaceHorizontal(3, lipgloss.Left, right))

	if m.showingGoto {
		dialog := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1).
			Width(30).
			Render("Go to address:\n\n" + m.gotoInput.View())
		return lipgloss.JoinVertical(lipgloss.Center, content, help, dialog)
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, help)
}
