package cpu

import "fmt"

// Op is the operation class of an instruction. Dispatch switches on it.
type Op uint8

const (
	OpUnused Op = iota
	OpNOP
	OpLD
	OpLDH
	OpINC
	OpDEC
	OpADD
	OpADC
	OpSUB
	OpSBC
	OpAND
	OpXOR
	OpOR
	OpCP
	OpRLCA
	OpRRCA
	OpRLA
	OpRRA
	OpDAA
	OpCPL
	OpSCF
	OpCCF
	OpJP
	OpJR
	OpCALL
	OpRET
	OpRETI
	OpRST
	OpPUSH
	OpPOP
	OpSTOP
	OpHALT
	OpDI
	OpEI
	OpPrefix
	OpRLC
	OpRRC
	OpRL
	OpRR
	OpSLA
	OpSRA
	OpSWAP
	OpSRL
	OpBIT
	OpRES
	OpSET
)

var opNames = [...]string{
	"UNUSED", "NOP", "LD", "LDH", "INC", "DEC", "ADD", "ADC", "SUB", "SBC",
	"AND", "XOR", "OR", "CP", "RLCA", "RRCA", "RLA", "RRA", "DAA", "CPL",
	"SCF", "CCF", "JP", "JR", "CALL", "RET", "RETI", "RST", "PUSH", "POP",
	"STOP", "HALT", "DI", "EI", "PREFIX", "RLC", "RRC", "RL", "RR", "SLA",
	"SRA", "SWAP", "SRL", "BIT", "RES", "SET",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", o)
}

// OperandKind tags an Operand.
type OperandKind uint8

const (
	KindNone     OperandKind = iota
	KindReg8                 // A
	KindReg16                // BC
	KindImm8                 // d8
	KindImm16                // d16
	KindSImm8                // e8
	KindPtr                  // (BC), (HL+), (HL-)
	KindPtrImm16             // (a16)
	KindHighImm8             // (FF00+a8)
	KindHighC                // (FF00+C)
	KindSPOffset             // SP+e8
	KindCond                 // NZ, Z, NC, C
	KindBit                  // 0-7
	KindVector               // RST target
)

// Condition is a branch condition evaluated against the flags.
type Condition uint8

const (
	CondNone Condition = iota
	CondNZ
	CondZ
	CondNC
	CondC
)

var condNames = [...]string{"", "NZ", "Z", "NC", "C"}

func (c Condition) String() string {
	if int(c) < len(condNames) {
		return condNames[c]
	}
	return fmt.Sprintf("Cond(%d)", c)
}

// Operand describes one operand of an instruction. Which fields are
// meaningful depends on Kind.
type Operand struct {
	Kind OperandKind
	Reg  Reg
	Step int8 // post-increment/decrement for KindPtr
	Cond Condition
	N    uint16 // bit index or RST vector
}

func (o Operand) String() string {
	switch o.Kind {
	case KindReg8, KindReg16:
		return o.Reg.String()
	case KindImm8:
		return "d8"
	case KindImm16:
		return "d16"
	case KindSImm8:
		return "e8"
	case KindPtr:
		switch {
		case o.Step > 0:
			return "(" + o.Reg.String() + "+)"
		case o.Step < 0:
			return "(" + o.Reg.String() + "-)"
		}
		return "(" + o.Reg.String() + ")"
	case KindPtrImm16:
		return "(a16)"
	case KindHighImm8:
		return "(a8)"
	case KindHighC:
		return "(C)"
	case KindSPOffset:
		return "SP+e8"
	case KindCond:
		return o.Cond.String()
	case KindBit:
		return fmt.Sprintf("%d", o.N)
	case KindVector:
		return fmt.Sprintf("$%02X", o.N)
	}
	return ""
}

// Instruction is the static descriptor of one opcode. Durations are in
// M-cycles. AltDuration is the not-taken duration of conditional JP, JR,
// CALL and RET and is zero everywhere else.
type Instruction struct {
	Op          Op
	Op1, Op2    Operand
	Length      uint8
	Duration    uint8
	AltDuration uint8
}

// Conditional reports whether the instruction is a conditional branch.
func (in *Instruction) Conditional() bool { return in.Op2.Kind == KindCond }

// String renders the mnemonic, e.g. "JR NZ,e8" or "LD A,(HL+)".
func (in *Instruction) String() string {
	s := in.Op.String()
	var args []Operand
	if in.Conditional() {
		// branch conditions are stored second but printed first
		args = append(args, in.Op2)
		if in.Op1.Kind != KindNone {
			args = append(args, in.Op1)
		}
	} else {
		for _, o := range [...]Operand{in.Op1, in.Op2} {
			if o.Kind != KindNone {
				args = append(args, o)
			}
		}
	}
	for i, a := range args {
		if i == 0 {
			s += " "
		} else {
			s += ","
		}
		s += a.String()
	}
	return s
}

// PrefixedBase is the table slot of CB-prefixed opcode 0x00.
const PrefixedBase = 0x100

// Lookup returns the descriptor for a table slot: 0x000-0x0FF are unprefixed
// opcodes, 0x100-0x1FF are CB-prefixed opcodes.
func Lookup(slot uint16) *Instruction {
	return &instructions[slot&0x1FF]
}

var (
	none     = Operand{}
	d8       = Operand{Kind: KindImm8}
	d16      = Operand{Kind: KindImm16}
	e8       = Operand{Kind: KindSImm8}
	a8       = Operand{Kind: KindHighImm8}
	a16      = Operand{Kind: KindPtrImm16}
	ptrC     = Operand{Kind: KindHighC}
	spe8     = Operand{Kind: KindSPOffset}
	cbRegs   = [8]Operand{r8(RegB), r8(RegC), r8(RegD), r8(RegE), r8(RegH), r8(RegL), ptr(RegHL), r8(RegA)}
	cbShifts = [8]Op{OpRLC, OpRRC, OpRL, OpRR, OpSLA, OpSRA, OpSWAP, OpSRL}
)

func r8(r Reg) Operand { return Operand{Kind: KindReg8, Reg: r} }
func r16(r Reg) Operand { return Operand{Kind: KindReg16, Reg: r} }
func ptr(r Reg) Operand { return Operand{Kind: KindPtr, Reg: r} }
func ptrInc(r Reg) Operand { return Operand{Kind: KindPtr, Reg: r, Step: 1} }
func ptrDec(r Reg) Operand { return Operand{Kind: KindPtr, Reg: r, Step: -1} }
func cond(c Condition) Operand { return Operand{Kind: KindCond, Cond: c} }
func bitIndex(n uint16) Operand { return Operand{Kind: KindBit, N: n} }
func vec(addr uint16) Operand { return Operand{Kind: KindVector, N: addr} }

var instructions = buildTable()

func buildTable() (t [512]Instruction) {
	copy(t[:256], unprefixed[:])
	for n := 0; n < 256; n++ {
		target := cbRegs[n&7]
		dur := uint8(2)
		if target.Kind == KindPtr {
			dur = 4
		}
		in := Instruction{Length: 2, Duration: dur}
		switch n >> 6 {
		case 0:
			in.Op, in.Op1 = cbShifts[(n>>3)&7], target
		case 1:
			in.Op, in.Op1, in.Op2 = OpBIT, bitIndex(uint16(n>>3)&7), target
			if target.Kind == KindPtr {
				in.Duration = 3
			}
		case 2:
			in.Op, in.Op1, in.Op2 = OpRES, bitIndex(uint16(n>>3)&7), target
		case 3:
			in.Op, in.Op1, in.Op2 = OpSET, bitIndex(uint16(n>>3)&7), target
		}
		t[PrefixedBase+n] = in
	}
	return t
}

// unprefixed is indexed by opcode; fields are Op, Op1, Op2, Length,
// Duration, AltDuration.
var unprefixed = [256]Instruction{
	0x00: {OpNOP, none, none, 1, 1, 0},
	0x01: {OpLD, r16(RegBC), d16, 3, 3, 0},
	0x02: {OpLD, ptr(RegBC), r8(RegA), 1, 2, 0},
	0x03: {OpINC, r16(RegBC), none, 1, 2, 0},
	0x04: {OpINC, r8(RegB), none, 1, 1, 0},
	0x05: {OpDEC, r8(RegB), none, 1, 1, 0},
	0x06: {OpLD, r8(RegB), d8, 2, 2, 0},
	0x07: {OpRLCA, none, none, 1, 1, 0},
	0x08: {OpLD, a16, r16(RegSP), 3, 5, 0},
	0x09: {OpADD, r16(RegHL), r16(RegBC), 1, 2, 0},
	0x0A: {OpLD, r8(RegA), ptr(RegBC), 1, 2, 0},
	0x0B: {OpDEC, r16(RegBC), none, 1, 2, 0},
	0x0C: {OpINC, r8(RegC), none, 1, 1, 0},
	0x0D: {OpDEC, r8(RegC), none, 1, 1, 0},
	0x0E: {OpLD, r8(RegC), d8, 2, 2, 0},
	0x0F: {OpRRCA, none, none, 1, 1, 0},
	0x10: {OpSTOP, none, none, 2, 1, 0},
	0x11: {OpLD, r16(RegDE), d16, 3, 3, 0},
	0x12: {OpLD, ptr(RegDE), r8(RegA), 1, 2, 0},
	0x13: {OpINC, r16(RegDE), none, 1, 2, 0},
	0x14: {OpINC, r8(RegD), none, 1, 1, 0},
	0x15: {OpDEC, r8(RegD), none, 1, 1, 0},
	0x16: {OpLD, r8(RegD), d8, 2, 2, 0},
	0x17: {OpRLA, none, none, 1, 1, 0},
	0x18: {OpJR, e8, none, 2, 3, 0},
	0x19: {OpADD, r16(RegHL), r16(RegDE), 1, 2, 0},
	0x1A: {OpLD, r8(RegA), ptr(RegDE), 1, 2, 0},
	0x1B: {OpDEC, r16(RegDE), none, 1, 2, 0},
	0x1C: {OpINC, r8(RegE), none, 1, 1, 0},
	0x1D: {OpDEC, r8(RegE), none, 1, 1, 0},
	0x1E: {OpLD, r8(RegE), d8, 2, 2, 0},
	0x1F: {OpRRA, none, none, 1, 1, 0},
	0x20: {OpJR, e8, cond(CondNZ), 2, 3, 2},
	0x21: {OpLD, r16(RegHL), d16, 3, 3, 0},
	0x22: {OpLD, ptrInc(RegHL), r8(RegA), 1, 2, 0},
	0x23: {OpINC, r16(RegHL), none, 1, 2, 0},
	0x24: {OpINC, r8(RegH), none, 1, 1, 0},
	0x25: {OpDEC, r8(RegH), none, 1, 1, 0},
	0x26: {OpLD, r8(RegH), d8, 2, 2, 0},
	0x27: {OpDAA, none, none, 1, 1, 0},
	0x28: {OpJR, e8, cond(CondZ), 2, 3, 2},
	0x29: {OpADD, r16(RegHL), r16(RegHL), 1, 2, 0},
	0x2A: {OpLD, r8(RegA), ptrInc(RegHL), 1, 2, 0},
	0x2B: {OpDEC, r16(RegHL), none, 1, 2, 0},
	0x2C: {OpINC, r8(RegL), none, 1, 1, 0},
	0x2D: {OpDEC, r8(RegL), none, 1, 1, 0},
	0x2E: {OpLD, r8(RegL), d8, 2, 2, 0},
	0x2F: {OpCPL, none, none, 1, 1, 0},
	0x30: {OpJR, e8, cond(CondNC), 2, 3, 2},
	0x31: {OpLD, r16(RegSP), d16, 3, 3, 0},
	0x32: {OpLD, ptrDec(RegHL), r8(RegA), 1, 2, 0},
	0x33: {OpINC, r16(RegSP), none, 1, 2, 0},
	0x34: {OpINC, ptr(RegHL), none, 1, 3, 0},
	0x35: {OpDEC, ptr(RegHL), none, 1, 3, 0},
	0x36: {OpLD, ptr(RegHL), d8, 2, 3, 0},
	0x37: {OpSCF, none, none, 1, 1, 0},
	0x38: {OpJR, e8, cond(CondC), 2, 3, 2},
	0x39: {OpADD, r16(RegHL), r16(RegSP), 1, 2, 0},
	0x3A: {OpLD, r8(RegA), ptrDec(RegHL), 1, 2, 0},
	0x3B: {OpDEC, r16(RegSP), none, 1, 2, 0},
	0x3C: {OpINC, r8(RegA), none, 1, 1, 0},
	0x3D: {OpDEC, r8(RegA), none, 1, 1, 0},
	0x3E: {OpLD, r8(RegA), d8, 2, 2, 0},
	0x3F: {OpCCF, none, none, 1, 1, 0},
	0x40: {OpLD, r8(RegB), r8(RegB), 1, 1, 0},
	0x41: {OpLD, r8(RegB), r8(RegC), 1, 1, 0},
	0x42: {OpLD, r8(RegB), r8(RegD), 1, 1, 0},
	0x43: {OpLD, r8(RegB), r8(RegE), 1, 1, 0},
	0x44: {OpLD, r8(RegB), r8(RegH), 1, 1, 0},
	0x45: {OpLD, r8(RegB), r8(RegL), 1, 1, 0},
	0x46: {OpLD, r8(RegB), ptr(RegHL), 1, 2, 0},
	0x47: {OpLD, r8(RegB), r8(RegA), 1, 1, 0},
	0x48: {OpLD, r8(RegC), r8(RegB), 1, 1, 0},
	0x49: {OpLD, r8(RegC), r8(RegC), 1, 1, 0},
	0x4A: {OpLD, r8(RegC), r8(RegD), 1, 1, 0},
	0x4B: {OpLD, r8(RegC), r8(RegE), 1, 1, 0},
	0x4C: {OpLD, r8(RegC), r8(RegH), 1, 1, 0},
	0x4D: {OpLD, r8(RegC), r8(RegL), 1, 1, 0},
	0x4E: {OpLD, r8(RegC), ptr(RegHL), 1, 2, 0},
	0x4F: {OpLD, r8(RegC), r8(RegA), 1, 1, 0},
	0x50: {OpLD, r8(RegD), r8(RegB), 1, 1, 0},
	0x51: {OpLD, r8(RegD), r8(RegC), 1, 1, 0},
	0x52: {OpLD, r8(RegD), r8(RegD), 1, 1, 0},
	0x53: {OpLD, r8(RegD), r8(RegE), 1, 1, 0},
	0x54: {OpLD, r8(RegD), r8(RegH), 1, 1, 0},
	0x55: {OpLD, r8(RegD), r8(RegL), 1, 1, 0},
	0x56: {OpLD, r8(RegD), ptr(RegHL), 1, 2, 0},
	0x57: {OpLD, r8(RegD), r8(RegA), 1, 1, 0},
	0x58: {OpLD, r8(RegE), r8(RegB), 1, 1, 0},
	0x59: {OpLD, r8(RegE), r8(RegC), 1, 1, 0},
	0x5A: {OpLD, r8(RegE), r8(RegD), 1, 1, 0},
	0x5B: {OpLD, r8(RegE), r8(RegE), 1, 1, 0},
	0x5C: {OpLD, r8(RegE), r8(RegH), 1, 1, 0},
	0x5D: {OpLD, r8(RegE), r8(RegL), 1, 1, 0},
	0x5E: {OpLD, r8(RegE), ptr(RegHL), 1, 2, 0},
	0x5F: {OpLD, r8(RegE), r8(RegA), 1, 1, 0},
	0x60: {OpLD, r8(RegH), r8(RegB), 1, 1, 0},
	0x61: {OpLD, r8(RegH), r8(RegC), 1, 1, 0},
	0x62: {OpLD, r8(RegH), r8(RegD), 1, 1, 0},
	0x63: {OpLD, r8(RegH), r8(RegE), 1, 1, 0},
	0x64: {OpLD, r8(RegH), r8(RegH), 1, 1, 0},
	0x65: {OpLD, r8(RegH), r8(RegL), 1, 1, 0},
	0x66: {OpLD, r8(RegH), ptr(RegHL), 1, 2, 0},
	0x67: {OpLD, r8(RegH), r8(RegA), 1, 1, 0},
	0x68: {OpLD, r8(RegL), r8(RegB), 1, 1, 0},
	0x69: {OpLD, r8(RegL), r8(RegC), 1, 1, 0},
	0x6A: {OpLD, r8(RegL), r8(RegD), 1, 1, 0},
	0x6B: {OpLD, r8(RegL), r8(RegE), 1, 1, 0},
	0x6C: {OpLD, r8(RegL), r8(RegH), 1, 1, 0},
	0x6D: {OpLD, r8(RegL), r8(RegL), 1, 1, 0},
	0x6E: {OpLD, r8(RegL), ptr(RegHL), 1, 2, 0},
	0x6F: {OpLD, r8(RegL), r8(RegA), 1, 1, 0},
	0x70: {OpLD, ptr(RegHL), r8(RegB), 1, 2, 0},
	0x71: {OpLD, ptr(RegHL), r8(RegC), 1, 2, 0},
	0x72: {OpLD, ptr(RegHL), r8(RegD), 1, 2, 0},
	0x73: {OpLD, ptr(RegHL), r8(RegE), 1, 2, 0},
	0x74: {OpLD, ptr(RegHL), r8(RegH), 1, 2, 0},
	0x75: {OpLD, ptr(RegHL), r8(RegL), 1, 2, 0},
	0x76: {OpHALT, none, none, 1, 1, 0},
	0x77: {OpLD, ptr(RegHL), r8(RegA), 1, 2, 0},
	0x78: {OpLD, r8(RegA), r8(RegB), 1, 1, 0},
	0x79: {OpLD, r8(RegA), r8(RegC), 1, 1, 0},
	0x7A: {OpLD, r8(RegA), r8(RegD), 1, 1, 0},
	0x7B: {OpLD, r8(RegA), r8(RegE), 1, 1, 0},
	0x7C: {OpLD, r8(RegA), r8(RegH), 1, 1, 0},
	0x7D: {OpLD, r8(RegA), r8(RegL), 1, 1, 0},
	0x7E: {OpLD, r8(RegA), ptr(RegHL), 1, 2, 0},
	0x7F: {OpLD, r8(RegA), r8(RegA), 1, 1, 0},
	0x80: {OpADD, r8(RegA), r8(RegB), 1, 1, 0},
	0x81: {OpADD, r8(RegA), r8(RegC), 1, 1, 0},
	0x82: {OpADD, r8(RegA), r8(RegD), 1, 1, 0},
	0x83: {OpADD, r8(RegA), r8(RegE), 1, 1, 0},
	0x84: {OpADD, r8(RegA), r8(RegH), 1, 1, 0},
	0x85: {OpADD, r8(RegA), r8(RegL), 1, 1, 0},
	0x86: {OpADD, r8(RegA), ptr(RegHL), 1, 2, 0},
	0x87: {OpADD, r8(RegA), r8(RegA), 1, 1, 0},
	0x88: {OpADC, r8(RegA), r8(RegB), 1, 1, 0},
	0x89: {OpADC, r8(RegA), r8(RegC), 1, 1, 0},
	0x8A: {OpADC, r8(RegA), r8(RegD), 1, 1, 0},
	0x8B: {OpADC, r8(RegA), r8(RegE), 1, 1, 0},
	0x8C: {OpADC, r8(RegA), r8(RegH), 1, 1, 0},
	0x8D: {OpADC, r8(RegA), r8(RegL), 1, 1, 0},
	0x8E: {OpADC, r8(RegA), ptr(RegHL), 1, 2, 0},
	0x8F: {OpADC, r8(RegA), r8(RegA), 1, 1, 0},
	0x90: {OpSUB, r8(RegA), r8(RegB), 1, 1, 0},
	0x91: {OpSUB, r8(RegA), r8(RegC), 1, 1, 0},
	0x92: {OpSUB, r8(RegA), r8(RegD), 1, 1, 0},
	0x93: {OpSUB, r8(RegA), r8(RegE), 1, 1, 0},
	0x94: {OpSUB, r8(RegA), r8(RegH), 1, 1, 0},
	0x95: {OpSUB, r8(RegA), r8(RegL), 1, 1, 0},
	0x96: {OpSUB, r8(RegA), ptr(RegHL), 1, 2, 0},
	0x97: {OpSUB, r8(RegA), r8(RegA), 1, 1, 0},
	0x98: {OpSBC, r8(RegA), r8(RegB), 1, 1, 0},
	0x99: {OpSBC, r8(RegA), r8(RegC), 1, 1, 0},
	0x9A: {OpSBC, r8(RegA), r8(RegD), 1, 1, 0},
	0x9B: {OpSBC, r8(RegA), r8(RegE), 1, 1, 0},
	0x9C: {OpSBC, r8(RegA), r8(RegH), 1, 1, 0},
	0x9D: {OpSBC, r8(RegA), r8(RegL), 1, 1, 0},
	0x9E: {OpSBC, r8(RegA), ptr(RegHL), 1, 2, 0},
	0x9F: {OpSBC, r8(RegA), r8(RegA), 1, 1, 0},
	0xA0: {OpAND, r8(RegA), r8(RegB), 1, 1, 0},
	0xA1: {OpAND, r8(RegA), r8(RegC), 1, 1, 0},
	0xA2: {OpAND, r8(RegA), r8(RegD), 1, 1, 0},
	0xA3: {OpAND, r8(RegA), r8(RegE), 1, 1, 0},
	0xA4: {OpAND, r8(RegA), r8(RegH), 1, 1, 0},
	0xA5: {OpAND, r8(RegA), r8(RegL), 1, 1, 0},
	0xA6: {OpAND, r8(RegA), ptr(RegHL), 1, 2, 0},
	0xA7: {OpAND, r8(RegA), r8(RegA), 1, 1, 0},
	0xA8: {OpXOR, r8(RegA), r8(RegB), 1, 1, 0},
	0xA9: {OpXOR, r8(RegA), r8(RegC), 1, 1, 0},
	0xAA: {OpXOR, r8(RegA), r8(RegD), 1, 1, 0},
	0xAB: {OpXOR, r8(RegA), r8(RegE), 1, 1, 0},
	0xAC: {OpXOR, r8(RegA), r8(RegH), 1, 1, 0},
	0xAD: {OpXOR, r8(RegA), r8(RegL), 1, 1, 0},
	0xAE: {OpXOR, r8(RegA), ptr(RegHL), 1, 2, 0},
	0xAF: {OpXOR, r8(RegA), r8(RegA), 1, 1, 0},
	0xB0: {OpOR, r8(RegA), r8(RegB), 1, 1, 0},
	0xB1: {OpOR, r8(RegA), r8(RegC), 1, 1, 0},
	0xB2: {OpOR, r8(RegA), r8(RegD), 1, 1, 0},
	0xB3: {OpOR, r8(RegA), r8(RegE), 1, 1, 0},
	0xB4: {OpOR, r8(RegA), r8(RegH), 1, 1, 0},
	0xB5: {OpOR, r8(RegA), r8(RegL), 1, 1, 0},
	0xB6: {OpOR, r8(RegA), ptr(RegHL), 1, 2, 0},
	0xB7: {OpOR, r8(RegA), r8(RegA), 1, 1, 0},
	0xB8: {OpCP, r8(RegA), r8(RegB), 1, 1, 0},
	0xB9: {OpCP, r8(RegA), r8(RegC), 1, 1, 0},
	0xBA: {OpCP, r8(RegA), r8(RegD), 1, 1, 0},
	0xBB: {OpCP, r8(RegA), r8(RegE), 1, 1, 0},
	0xBC: {OpCP, r8(RegA), r8(RegH), 1, 1, 0},
	0xBD: {OpCP, r8(RegA), r8(RegL), 1, 1, 0},
	0xBE: {OpCP, r8(RegA), ptr(RegHL), 1, 2, 0},
	0xBF: {OpCP, r8(RegA), r8(RegA), 1, 1, 0},
	0xC0: {OpRET, none, cond(CondNZ), 1, 5, 2},
	0xC1: {OpPOP, r16(RegBC), none, 1, 3, 0},
	0xC2: {OpJP, d16, cond(CondNZ), 3, 4, 3},
	0xC3: {OpJP, d16, none, 3, 4, 0},
	0xC4: {OpCALL, d16, cond(CondNZ), 3, 6, 3},
	0xC5: {OpPUSH, r16(RegBC), none, 1, 4, 0},
	0xC6: {OpADD, r8(RegA), d8, 2, 2, 0},
	0xC7: {OpRST, vec(0x00), none, 1, 4, 0},
	0xC8: {OpRET, none, cond(CondZ), 1, 5, 2},
	0xC9: {OpRET, none, none, 1, 4, 0},
	0xCA: {OpJP, d16, cond(CondZ), 3, 4, 3},
	0xCB: {OpPrefix, none, none, 1, 1, 0},
	0xCC: {OpCALL, d16, cond(CondZ), 3, 6, 3},
	0xCD: {OpCALL, d16, none, 3, 6, 0},
	0xCE: {OpADC, r8(RegA), d8, 2, 2, 0},
	0xCF: {OpRST, vec(0x08), none, 1, 4, 0},
	0xD0: {OpRET, none, cond(CondNC), 1, 5, 2},
	0xD1: {OpPOP, r16(RegDE), none, 1, 3, 0},
	0xD2: {OpJP, d16, cond(CondNC), 3, 4, 3},
	0xD3: {OpUnused, none, none, 0, 0, 0},
	0xD4: {OpCALL, d16, cond(CondNC), 3, 6, 3},
	0xD5: {OpPUSH, r16(RegDE), none, 1, 4, 0},
	0xD6: {OpSUB, r8(RegA), d8, 2, 2, 0},
	0xD7: {OpRST, vec(0x10), none, 1, 4, 0},
	0xD8: {OpRET, none, cond(CondC), 1, 5, 2},
	0xD9: {OpRETI, none, none, 1, 4, 0},
	0xDA: {OpJP, d16, cond(CondC), 3, 4, 3},
	0xDB: {OpUnused, none, none, 0, 0, 0},
	0xDC: {OpCALL, d16, cond(CondC), 3, 6, 3},
	0xDD: {OpUnused, none, none, 0, 0, 0},
	0xDE: {OpSBC, r8(RegA), d8, 2, 2, 0},
	0xDF: {OpRST, vec(0x18), none, 1, 4, 0},
	0xE0: {OpLDH, a8, r8(RegA), 2, 3, 0},
	0xE1: {OpPOP, r16(RegHL), none, 1, 3, 0},
	0xE2: {OpLD, ptrC, r8(RegA), 1, 2, 0},
	0xE3: {OpUnused, none, none, 0, 0, 0},
	0xE4: {OpUnused, none, none, 0, 0, 0},
	0xE5: {OpPUSH, r16(RegHL), none, 1, 4, 0},
	0xE6: {OpAND, r8(RegA), d8, 2, 2, 0},
	0xE7: {OpRST, vec(0x20), none, 1, 4, 0},
	0xE8: {OpADD, r16(RegSP), e8, 2, 4, 0},
	0xE9: {OpJP, r16(RegHL), none, 1, 1, 0},
	0xEA: {OpLD, a16, r8(RegA), 3, 4, 0},
	0xEB: {OpUnused, none, none, 0, 0, 0},
	0xEC: {OpUnused, none, none, 0, 0, 0},
	0xED: {OpUnused, none, none, 0, 0, 0},
	0xEE: {OpXOR, r8(RegA), d8, 2, 2, 0},
	0xEF: {OpRST, vec(0x28), none, 1, 4, 0},
	0xF0: {OpLDH, r8(RegA), a8, 2, 3, 0},
	0xF1: {OpPOP, r16(RegAF), none, 1, 3, 0},
	0xF2: {OpLD, r8(RegA), ptrC, 1, 2, 0},
	0xF3: {OpDI, none, none, 1, 1, 0},
	0xF4: {OpUnused, none, none, 0, 0, 0},
	0xF5: {OpPUSH, r16(RegAF), none, 1, 4, 0},
	0xF6: {OpOR, r8(RegA), d8, 2, 2, 0},
	0xF7: {OpRST, vec(0x30), none, 1, 4, 0},
	0xF8: {OpLD, r16(RegHL), spe8, 2, 3, 0},
	0xF9: {OpLD, r16(RegSP), r16(RegHL), 1, 2, 0},
	0xFA: {OpLD, r8(RegA), a16, 3, 4, 0},
	0xFB: {OpEI, none, none, 1, 1, 0},
	0xFC: {OpUnused, none, none, 0, 0, 0},
	0xFD: {OpUnused, none, none, 0, 0, 0},
	0xFE: {OpCP, r8(RegA), d8, 2, 2, 0},
	0xFF: {OpRST, vec(0x38), none, 1, 4, 0},
}
