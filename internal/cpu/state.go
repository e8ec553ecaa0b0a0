package cpu

import "fmt"

// State is a value copy of everything the CPU owns. It is what save states
// serialize.
type State struct {
	Registers
	IME        bool
	IMEPending bool
	Halted     bool
	Stopped    bool
	HaltBug    bool
}

// State returns a snapshot of the processor.
func (c *CPU) State() State {
	return State{
		Registers:  c.Registers,
		IME:        c.ime,
		IMEPending: c.imePending,
		Halted:     c.halted,
		Stopped:    c.stopped,
		HaltBug:    c.haltBug,
	}
}

// Restore replaces the processor state with s and clears any fault.
func (c *CPU) Restore(s State) {
	c.Registers = s.Registers
	c.F &= flagMask
	c.ime = s.IME
	c.imePending = s.IMEPending
	c.halted = s.Halted
	c.stopped = s.Stopped
	c.haltBug = s.HaltBug
	c.fault = nil
}

// Dump formats the registers and the four bytes at PC in the format used by
// gameboy-doctor style trace comparisons.
func (c *CPU) Dump() string {
	return fmt.Sprintf("A:%02X F:%02X B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X PC:%04X PCMEM:%02X,%02X,%02X,%02X",
		c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L, c.SP, c.PC,
		c.read(c.PC), c.read(c.PC+1), c.read(c.PC+2), c.read(c.PC+3))
}
