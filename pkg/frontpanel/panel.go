// Package frontpanel renders the machine state to the terminal after each
// microcycle and blocks for the operator to advance.
package frontpanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/microprog/mic1/pkg/cpu"
)

// Panel renders the per-cycle dump: the operand stack between LV and SP,
// a window of the program area around PC, and the full register file in
// binary and hex.
type Panel struct {
	title  lipgloss.Style
	box    lipgloss.Style
	marker lipgloss.Style
}

// New creates a panel with the default styles.
func New() *Panel {
	return &Panel{
		title:  lipgloss.NewStyle().Bold(true),
		box:    lipgloss.NewStyle().Border(lipgloss.NormalBorder()).PaddingLeft(1).PaddingRight(1),
		marker: lipgloss.NewStyle().Bold(true),
	}
}

// Render returns the full dump for the current machine state.
func (p *Panel) Render(m *cpu.Machine) string {
	var sb strings.Builder
	r := &m.Reg

	// The operand stack exists only once LV and SP have been set up.
	if r.LV != 0 && r.SP != 0 && r.SP >= r.LV {
		sb.WriteString(p.renderStack(m))
		sb.WriteByte('\n')
	}
	if r.PC >= cpu.ProgramBase {
		sb.WriteString(p.renderProgram(m))
		sb.WriteByte('\n')
	}
	sb.WriteString(p.renderRegisters(r))
	return sb.String()
}

// renderStack dumps the words from SP down to LV, flagging both ends.
func (p *Panel) renderStack(m *cpu.Machine) string {
	r := &m.Reg
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-6s %-10s %-38s %s\n", "", "ADDR", "BINARY VALUE", "VALUE"))
	for i := r.SP; i >= r.LV; i-- {
		v := m.Mem.Word(i)
		mark := "     "
		switch i {
		case r.SP:
			mark = p.marker.Render("SP ->")
		case r.LV:
			mark = p.marker.Render("LV ->")
		}
		sb.WriteString(fmt.Sprintf("%s %-10X %s %d\n", mark, i, BinaryWord(v), v))
	}
	return p.box.Render(p.title.Render("OPERAND STACK") + "\n" + strings.TrimRight(sb.String(), "\n"))
}

// renderProgram dumps the five program bytes around PC.
func (p *Panel) renderProgram(m *cpu.Machine) string {
	r := &m.Reg
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-12s %-10s %-5s %s\n", "", "BINARY", "HEX", "BYTE ADDRESS"))
	for i := r.PC - 2; i <= r.PC+2; i++ {
		b := m.Mem.Byte(i)
		mark := "            "
		if i == r.PC {
			mark = p.marker.Render("Running >>  ")
		}
		sb.WriteString(fmt.Sprintf("%s %s 0x%02X  %X\n", mark, BinaryByte(b), b, i))
	}
	return p.box.Render(p.title.Render("Program Area") + "\n" + strings.TrimRight(sb.String(), "\n"))
}

// renderRegisters dumps the register file in binary and hex.
func (p *Panel) renderRegisters(r *cpu.Registers) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-5s %-38s %s\n", "", "BINARY", "HEX"))
	words := []struct {
		name string
		v    uint32
	}{
		{"MAR", r.MAR}, {"MDR", r.MDR}, {"PC", r.PC},
	}
	for _, w := range words {
		sb.WriteString(fmt.Sprintf("%-5s %s  %x\n", w.name+":", BinaryWord(w.v), w.v))
	}
	sb.WriteString(fmt.Sprintf("%-5s %-38s  %x\n", "MBR:", BinaryByte(r.MBR), r.MBR))
	words = []struct {
		name string
		v    uint32
	}{
		{"SP", r.SP}, {"LV", r.LV}, {"CPP", r.CPP},
		{"TOS", r.TOS}, {"OPC", r.OPC}, {"H", r.H},
	}
	for _, w := range words {
		sb.WriteString(fmt.Sprintf("%-5s %s  %x\n", w.name+":", BinaryWord(w.v), w.v))
	}
	sb.WriteString(fmt.Sprintf("%-5s %-38s  %x\n", "MPC:", BinaryMPC(r.MPC), r.MPC))
	sb.WriteString(fmt.Sprintf("%-5s %s\n", "MIR:", r.MIR.String()))
	flags := "N=0 Z=1"
	if r.N {
		flags = "N=1 Z=0"
	}
	sb.WriteString(flags + "\n")
	return p.box.Render(p.title.Render("REGISTERS") + "\n" + strings.TrimRight(sb.String(), "\n"))
}

// BinaryWord formats a 32-bit value as four 8-bit groups, MSB first.
func BinaryWord(v uint32) string {
	var sb strings.Builder
	for i := 31; i >= 0; i-- {
		sb.WriteByte('0' + byte(v>>uint(i))&1)
		if i%8 == 0 && i != 0 {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// BinaryByte formats an 8-bit value, MSB first.
func BinaryByte(v uint8) string {
	var sb strings.Builder
	for i := 7; i >= 0; i-- {
		sb.WriteByte('0' + (v>>uint(i))&1)
	}
	return sb.String()
}

// BinaryMPC formats the 9 live bits of the microprogram counter.
func BinaryMPC(v uint16) string {
	var sb strings.Builder
	for i := 8; i >= 0; i-- {
		sb.WriteByte('0' + byte(v>>uint(i))&1)
	}
	return sb.String()
}
