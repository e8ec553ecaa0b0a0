package cpu

import "fmt"

// Flag bits in F. The low nibble of F is always zero.
const (
	FlagZ byte = 1 << 7
	FlagN byte = 1 << 6
	FlagH byte = 1 << 5
	FlagC byte = 1 << 4

	flagMask = FlagZ | FlagN | FlagH | FlagC
)

// Reg names an 8-bit register or a 16-bit register/pair.
type Reg uint8

const (
	RegNone Reg = iota
	RegA
	RegB
	RegC
	RegD
	RegE
	RegH
	RegL
	RegAF
	RegBC
	RegDE
	RegHL
	RegSP
)

var regNames = [...]string{"", "A", "B", "C", "D", "E", "H", "L", "AF", "BC", "DE", "HL", "SP"}

func (r Reg) String() string {
	if int(r) < len(regNames) {
		return regNames[r]
	}
	return fmt.Sprintf("Reg(%d)", r)
}

// Is16 reports whether r names a 16-bit register or pair.
func (r Reg) Is16() bool { return r >= RegAF && r <= RegSP }

// Registers is the SM83 register file. The pairs BC, DE, HL and AF are views
// over the 8-bit fields, high byte first.
type Registers struct {
	A, F byte
	B, C byte
	D, E byte
	H, L byte

	SP uint16
	PC uint16
}

// PostBoot returns the register values left behind by the DMG boot ROM.
func PostBoot() Registers {
	return Registers{
		A: 0x01, F: 0xB0,
		B: 0x00, C: 0x13,
		D: 0x00, E: 0xD8,
		H: 0x01, L: 0x4D,
		SP: 0xFFFE,
		PC: 0x0100,
	}
}

func (r *Registers) AF() uint16 { return uint16(r.A)<<8 | uint16(r.F&flagMask) }
func (r *Registers) BC() uint16 { return uint16(r.B)<<8 | uint16(r.C) }
func (r *Registers) DE() uint16 { return uint16(r.D)<<8 | uint16(r.E) }
func (r *Registers) HL() uint16 { return uint16(r.H)<<8 | uint16(r.L) }

// SetAF drops the low nibble of the F half.
func (r *Registers) SetAF(v uint16) { r.A = byte(v >> 8); r.F = byte(v) & flagMask }
func (r *Registers) SetBC(v uint16) { r.B = byte(v >> 8); r.C = byte(v) }
func (r *Registers) SetDE(v uint16) { r.D = byte(v >> 8); r.E = byte(v) }
func (r *Registers) SetHL(v uint16) { r.H = byte(v >> 8); r.L = byte(v) }

// Get8 returns the 8-bit register named by reg. The second result is false
// when reg is not an 8-bit register.
func (r *Registers) Get8(reg Reg) (byte, bool) {
	switch reg {
	case RegA:
		return r.A, true
	case RegB:
		return r.B, true
	case RegC:
		return r.C, true
	case RegD:
		return r.D, true
	case RegE:
		return r.E, true
	case RegH:
		return r.H, true
	case RegL:
		return r.L, true
	}
	return 0, false
}

// Set8 stores v into the 8-bit register named by reg.
func (r *Registers) Set8(reg Reg, v byte) bool {
	switch reg {
	case RegA:
		r.A = v
	case RegB:
		r.B = v
	case RegC:
		r.C = v
	case RegD:
		r.D = v
	case RegE:
		r.E = v
	case RegH:
		r.H = v
	case RegL:
		r.L = v
	default:
		return false
	}
	return true
}

// Get16 returns the pair or 16-bit register named by reg.
func (r *Registers) Get16(reg Reg) (uint16, bool) {
	switch reg {
	case RegAF:
		return r.AF(), true
	case RegBC:
		return r.BC(), true
	case RegDE:
		return r.DE(), true
	case RegHL:
		return r.HL(), true
	case RegSP:
		return r.SP, true
	}
	return 0, false
}

// Set16 stores v into the pair or 16-bit register named by reg.
func (r *Registers) Set16(reg Reg, v uint16) bool {
	switch reg {
	case RegAF:
		r.SetAF(v)
	case RegBC:
		r.SetBC(v)
	case RegDE:
		r.SetDE(v)
	case RegHL:
		r.SetHL(v)
	case RegSP:
		r.SP = v
	default:
		return false
	}
	return true
}

// Flag reports whether flag f is set.
func (r *Registers) Flag(f byte) bool { return r.F&f != 0 }

// SetFlag sets or clears flag f.
func (r *Registers) SetFlag(f byte, on bool) {
	if on {
		r.F |= f
	} else {
		r.F &^= f
	}
	r.F &= flagMask
}

// SetFlags replaces all four flags at once.
func (r *Registers) SetFlags(z, n, h, c bool) {
	var f byte
	if z {
		f |= FlagZ
	}
	if n {
		f |= FlagN
	}
	if h {
		f |= FlagH
	}
	if c {
		f |= FlagC
	}
	r.F = f
}

// carry returns the carry flag as 0 or 1.
func (r *Registers) carry() byte {
	if r.F&FlagC != 0 {
		return 1
	}
	return 0
}
