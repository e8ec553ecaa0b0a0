// Package disasm renders machine code as SM83 assembly using the CPU's
// instruction table, so the disassembler and the core cannot disagree on
// lengths or operands.
package disasm

import (
	"fmt"
	"strings"

	"github.com/rlopez44/cboy-sub000/internal/cpu"
)

// Reader is the part of the bus the disassembler needs. Reads must not have
// side effects.
type Reader interface {
	Read(addr uint16) byte
}

// Data adapts a byte slice loaded at Origin. Addresses outside the slice
// read as 0xFF.
type Data struct {
	Origin uint16
	Bytes  []byte
}

func (d Data) Read(addr uint16) byte {
	i := int(addr - d.Origin)
	if i < 0 || i >= len(d.Bytes) {
		return 0xFF
	}
	return d.Bytes[i]
}

// Line is one decoded instruction.
type Line struct {
	Addr  uint16
	Bytes []byte
	Instr *cpu.Instruction
	Text  string
}

func (l Line) String() string {
	hex := make([]string, len(l.Bytes))
	for i, b := range l.Bytes {
		hex[i] = fmt.Sprintf("%02X", b)
	}
	return fmt.Sprintf("%04X  %-9s %s", l.Addr, strings.Join(hex, " "), l.Text)
}

// Decode disassembles the instruction at addr.
func Decode(r Reader, addr uint16) Line {
	op := r.Read(addr)
	slot := uint16(op)
	in := cpu.Lookup(slot)
	if in.Op == cpu.OpPrefix {
		slot = cpu.PrefixedBase + uint16(r.Read(addr+1))
		in = cpu.Lookup(slot)
	}
	if in.Op == cpu.OpUnused {
		return Line{Addr: addr, Bytes: []byte{op}, Instr: in, Text: fmt.Sprintf("DB $%02X", op)}
	}

	n := int(in.Length)
	raw := make([]byte, n)
	for i := range raw {
		raw[i] = r.Read(addr + uint16(i))
	}
	l := Line{Addr: addr, Bytes: raw, Instr: in}
	l.Text = render(in, raw, addr+uint16(n))
	return l
}

// Disassemble decodes count instructions starting at addr.
func Disassemble(r Reader, addr uint16, count int) []Line {
	lines := make([]Line, 0, count)
	for i := 0; i < count; i++ {
		l := Decode(r, addr)
		lines = append(lines, l)
		addr += uint16(len(l.Bytes))
	}
	return lines
}

// render fills in operand values. raw holds the whole instruction, next is
// the address of the following one, which JR targets are relative to.
func render(in *cpu.Instruction, raw []byte, next uint16) string {
	var imm8 byte
	var imm16 uint16
	if len(raw) >= 2 {
		imm8 = raw[len(raw)-1]
	}
	if len(raw) == 3 {
		imm16 = uint16(raw[1]) | uint16(raw[2])<<8
	}

	operand := func(o cpu.Operand) string {
		switch o.Kind {
		case cpu.KindImm8:
			return fmt.Sprintf("$%02X", imm8)
		case cpu.KindImm16:
			return fmt.Sprintf("$%04X", imm16)
		case cpu.KindSImm8:
			if in.Op == cpu.OpJR {
				return fmt.Sprintf("$%04X", next+uint16(int8(imm8)))
			}
			return signed(int8(imm8))
		case cpu.KindPtrImm16:
			return fmt.Sprintf("($%04X)", imm16)
		case cpu.KindHighImm8:
			return fmt.Sprintf("($FF%02X)", imm8)
		case cpu.KindHighC:
			return "($FF00+C)"
		case cpu.KindSPOffset:
			return "SP" + signed(int8(imm8))
		}
		return o.String()
	}

	args := make([]string, 0, 2)
	if in.Conditional() {
		args = append(args, in.Op2.String())
		if in.Op1.Kind != cpu.KindNone {
			args = append(args, operand(in.Op1))
		}
	} else {
		for _, o := range [...]cpu.Operand{in.Op1, in.Op2} {
			if o.Kind != cpu.KindNone {
				args = append(args, operand(o))
			}
		}
	}
	if len(args) == 0 {
		return in.Op.String()
	}
	return in.Op.String() + " " + strings.Join(args, ",")
}

func signed(v int8) string {
	if v < 0 {
		return fmt.Sprintf("-$%02X", -int(v))
	}
	return fmt.Sprintf("+$%02X", v)
}
