// Package cpu emulates the SM83 core of the Game Boy. The CPU reads and
// writes through a Memory and consults an InterruptLines for IF/IE; it owns
// nothing else. Step executes exactly one instruction, or dispatches one
// interrupt, and reports the M-cycles it took. The caller multiplies by four
// to drive the rest of the machine.
package cpu

// Memory is the CPU's view of the 16-bit address space. Reads and writes may
// have side effects on other devices (DMA, timers, serial) and are never
// buffered.
type Memory interface {
	Read(addr uint16) byte
	Write(addr uint16, value byte)
}

// InterruptLines gives access to the IF and IE registers. Only the low five
// bits of each are meaningful.
type InterruptLines interface {
	IF() byte
	SetIF(value byte)
	IE() byte
}

// CPU is an SM83 core. It owns the register file and the processor state;
// memory and interrupt registers belong to the environment.
type CPU struct {
	Registers

	mem Memory
	irq InterruptLines

	ime bool
	// EI arms imePending; IME is set once the instruction after EI completes
	imePending bool
	halted     bool
	stopped    bool
	// next opcode fetch does not advance PC
	haltBug bool

	fault *Fault
}

// New creates a CPU with the post-boot register state (PC=0x0100).
func New(mem Memory, irq InterruptLines) *CPU {
	return &CPU{Registers: PostBoot(), mem: mem, irq: irq}
}

// Reset restores the post-boot register state and clears all processor
// state, including a latched fault.
func (c *CPU) Reset() {
	c.Registers = PostBoot()
	c.ime = false
	c.imePending = false
	c.halted = false
	c.stopped = false
	c.haltBug = false
	c.fault = nil
}

// IME reports the interrupt master enable.
func (c *CPU) IME() bool { return c.ime }

// SetIME sets the interrupt master enable directly and drops a pending EI.
func (c *CPU) SetIME(on bool) { c.ime = on; c.imePending = false }

// Halted reports whether the CPU is waiting in HALT.
func (c *CPU) Halted() bool { return c.halted }

// Stopped reports whether the CPU is in STOP mode.
func (c *CPU) Stopped() bool { return c.stopped }

// Fault returns the fault that stopped the CPU, if any.
func (c *CPU) Fault() *Fault { return c.fault }

// Step executes one instruction, or services one interrupt, and returns the
// number of M-cycles it took. A non-nil error is always a *Fault; the CPU
// stays faulted until Reset.
func (c *CPU) Step() (int, error) {
	if c.fault != nil {
		return 0, c.fault
	}
	// EI executed in the previous step: this step's instruction runs with
	// interrupts still masked, IME flips once it is done.
	enable := c.imePending

	cycles, err := c.step()
	if err != nil {
		return 0, err
	}
	if enable && c.imePending {
		c.ime = true
		c.imePending = false
	}
	return cycles, nil
}

func (c *CPU) step() (int, error) {
	if cycles := c.serviceInterrupt(); cycles != 0 {
		return cycles, nil
	}

	if c.stopped {
		if c.irq.IF()&IntJoypad == 0 {
			return 1, nil
		}
		c.stopped = false
	}
	if c.halted {
		if c.pending() == 0 {
			return 1, nil
		}
		// woken by a masked interrupt: carry on with the next instruction
		c.halted = false
	}

	pc := c.PC
	slot := uint16(c.fetchOpcode())
	in := Lookup(slot)
	if in.Op == OpPrefix {
		slot = PrefixedBase + uint16(c.fetch8())
		in = Lookup(slot)
	}
	if in.Op == OpUnused {
		c.fault = newFault(ErrUnusedOpcode, pc, slot, in)
		return 0, c.fault
	}

	cycles, err := c.execute(in)
	if err != nil {
		c.fault = newFault(err, pc, slot, in)
		return 0, c.fault
	}
	return cycles, nil
}

// execute runs the handler for in. Fixed-length instructions report the
// descriptor's duration; conditional branches report their own.
func (c *CPU) execute(in *Instruction) (int, error) {
	var err error
	switch in.Op {
	case OpNOP:
	case OpLD, OpLDH:
		err = c.ld(in)
	case OpINC:
		err = c.inc(in)
	case OpDEC:
		err = c.dec(in)
	case OpADD:
		err = c.add(in)
	case OpADC, OpSUB, OpSBC, OpAND, OpXOR, OpOR, OpCP:
		err = c.alu8(in)
	case OpRLCA, OpRRCA, OpRLA, OpRRA:
		c.rotateA(in.Op)
	case OpDAA:
		c.daa()
	case OpCPL:
		c.cpl()
	case OpSCF:
		c.scf()
	case OpCCF:
		c.ccf()
	case OpJP:
		return c.jp(in)
	case OpJR:
		return c.jr(in)
	case OpCALL:
		return c.call(in)
	case OpRET:
		return c.ret(in)
	case OpRETI:
		c.reti()
	case OpRST:
		err = c.rst(in)
	case OpPUSH:
		err = c.push(in)
	case OpPOP:
		err = c.pop(in)
	case OpSTOP:
		c.stop()
	case OpHALT:
		c.halt()
	case OpDI:
		c.di()
	case OpEI:
		c.ei()
	case OpRLC, OpRRC, OpRL, OpRR, OpSLA, OpSRA, OpSWAP, OpSRL:
		err = c.shift(in)
	case OpBIT:
		err = c.bit(in)
	case OpRES, OpSET:
		err = c.resSet(in)
	default:
		// a second PREFIX byte cannot reach here: slot 0x1CB is SET 1,E
		err = ErrUnusedOpcode
	}
	return int(in.Duration), err
}

func (c *CPU) read(addr uint16) byte     { return c.mem.Read(addr) }
func (c *CPU) write(addr uint16, v byte) { c.mem.Write(addr, v) }

// fetchOpcode reads the opcode byte at PC, honouring the HALT bug.
func (c *CPU) fetchOpcode() byte {
	b := c.read(c.PC)
	if c.haltBug {
		c.haltBug = false
		return b
	}
	c.PC++
	return b
}

func (c *CPU) fetch8() byte {
	b := c.read(c.PC)
	c.PC++
	return b
}

func (c *CPU) fetch16() uint16 {
	lo := uint16(c.fetch8())
	hi := uint16(c.fetch8())
	return lo | hi<<8
}

func (c *CPU) read16(addr uint16) uint16 {
	return uint16(c.read(addr)) | uint16(c.read(addr+1))<<8
}

func (c *CPU) write16(addr uint16, v uint16) {
	c.write(addr, byte(v))
	c.write(addr+1, byte(v>>8))
}

func (c *CPU) push16(v uint16) {
	c.SP--
	c.write(c.SP, byte(v>>8))
	c.SP--
	c.write(c.SP, byte(v))
}

func (c *CPU) pop16() uint16 {
	lo := uint16(c.read(c.SP))
	c.SP++
	hi := uint16(c.read(c.SP))
	c.SP++
	return lo | hi<<8
}

// location is a resolved 8-bit operand: a register or a bus address.
type location struct {
	reg  Reg
	addr uint16
	mem  bool
}

// locate resolves an 8-bit register or memory operand, consuming any
// address bytes from the instruction stream and applying (HL+)/(HL-).
func (c *CPU) locate(o Operand) (location, error) {
	switch o.Kind {
	case KindReg8:
		return location{reg: o.Reg}, nil
	case KindPtr:
		addr, ok := c.Get16(o.Reg)
		if !ok || o.Reg == RegAF || o.Reg == RegSP {
			return location{}, illegal(o)
		}
		if o.Step != 0 {
			c.Set16(o.Reg, addr+uint16(int16(o.Step)))
		}
		return location{addr: addr, mem: true}, nil
	case KindPtrImm16:
		return location{addr: c.fetch16(), mem: true}, nil
	case KindHighImm8:
		return location{addr: 0xFF00 | uint16(c.fetch8()), mem: true}, nil
	case KindHighC:
		return location{addr: 0xFF00 | uint16(c.Registers.C), mem: true}, nil
	}
	return location{}, illegal(o)
}

func (c *CPU) load(l location) byte {
	if l.mem {
		return c.read(l.addr)
	}
	v, _ := c.Get8(l.reg)
	return v
}

func (c *CPU) store(l location, v byte) {
	if l.mem {
		c.write(l.addr, v)
		return
	}
	c.Set8(l.reg, v)
}

// operand8 evaluates an 8-bit source operand.
func (c *CPU) operand8(o Operand) (byte, error) {
	if o.Kind == KindImm8 {
		return c.fetch8(), nil
	}
	l, err := c.locate(o)
	if err != nil {
		return 0, err
	}
	return c.load(l), nil
}

// operand16 evaluates a 16-bit source operand.
func (c *CPU) operand16(o Operand) (uint16, error) {
	switch o.Kind {
	case KindReg16:
		if v, ok := c.Get16(o.Reg); ok {
			return v, nil
		}
	case KindImm16:
		return c.fetch16(), nil
	}
	return 0, illegal(o)
}

// condition evaluates a branch condition against the flags.
func (c *CPU) condition(o Operand) (bool, error) {
	if o.Kind != KindCond {
		return false, illegal(o)
	}
	switch o.Cond {
	case CondNZ:
		return !c.Flag(FlagZ), nil
	case CondZ:
		return c.Flag(FlagZ), nil
	case CondNC:
		return !c.Flag(FlagC), nil
	case CondC:
		return c.Flag(FlagC), nil
	}
	return false, illegal(o)
}
