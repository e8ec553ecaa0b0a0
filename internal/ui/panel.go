package ui

import (
	"fmt"
	"strings"

	"github.com/rlopez44/cboy-sub000/internal/cpu"
	"github.com/rlopez44/cboy-sub000/internal/disasm"
	"github.com/rlopez44/cboy-sub000/internal/emu"
	"github.com/rlopez44/cboy-sub000/internal/logger"
)

const (
	disasmLines = 17
	memRows     = 8
	logLines    = 6
)

// registerLines renders the register file, flags and processor state.
func registerLines(m *emu.Machine) []string {
	c := m.CPU()
	b := m.Bus()
	flag := func(f byte, name string) string {
		if c.Flag(f) {
			return name
		}
		return "-"
	}
	state := "run"
	switch {
	case c.Fault() != nil:
		state = "FAULT"
	case c.Stopped():
		state = "stop"
	case c.Halted():
		state = "halt"
	}
	return []string{
		fmt.Sprintf("AF %04X   BC %04X", c.AF(), c.BC()),
		fmt.Sprintf("DE %04X   HL %04X", c.DE(), c.HL()),
		fmt.Sprintf("SP %04X   PC %04X", c.SP, c.PC),
		fmt.Sprintf("flags %s%s%s%s  IME %d", flag(cpu.FlagZ, "Z"), flag(cpu.FlagN, "N"), flag(cpu.FlagH, "H"), flag(cpu.FlagC, "C"), btoi(c.IME())),
		fmt.Sprintf("IF %02X IE %02X  %s", b.IF(), b.IE(), state),
		fmt.Sprintf("DIV %02X TIMA %02X TAC %02X", b.Read(0xFF04), b.Read(0xFF05), b.Read(0xFF07)),
		fmt.Sprintf("steps %d", m.Steps()),
		fmt.Sprintf("cycles %d", m.Cycles()),
	}
}

// disasmView lists instructions from PC on, marking the current one.
func disasmView(m *emu.Machine, n int) []string {
	out := make([]string, 0, n)
	pc := m.CPU().PC
	for _, l := range disasm.Disassemble(m.Bus(), pc, n) {
		mark := "  "
		if l.Addr == pc {
			mark = "> "
		}
		out = append(out, mark+l.String())
	}
	return out
}

// memoryView is a hex dump of rows*8 bytes from addr.
func memoryView(m *emu.Machine, addr uint16, rows int) []string {
	b := m.Bus()
	out := make([]string, 0, rows)
	for r := 0; r < rows; r++ {
		var s strings.Builder
		base := addr + uint16(r*8)
		fmt.Fprintf(&s, "%04X ", base)
		for i := uint16(0); i < 8; i++ {
			fmt.Fprintf(&s, " %02X", b.Read(base+i))
		}
		out = append(out, s.String())
	}
	return out
}

// logView returns the last n entries of the central log.
func logView(n int) []string {
	e := logger.Entries()
	if len(e) > n {
		e = e[len(e)-n:]
	}
	out := make([]string, len(e))
	for i, entry := range e {
		out[i] = strings.TrimSuffix(entry.String(), "\n")
	}
	return out
}

// serialTail returns the last line of serial output, up to width runes.
func serialTail(s string, width int) string {
	s = strings.TrimRight(s, "\n")
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	if r := []rune(s); len(r) > width {
		s = string(r[len(r)-width:])
	}
	return s
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}
