// Package emu drives the CPU core against the bus: it loads cartridges,
// steps the CPU, converts M-cycles to T-cycles for the timer, and handles
// tracing and save states.
package emu

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rlopez44/cboy-sub000/internal/bus"
	"github.com/rlopez44/cboy-sub000/internal/cart"
	"github.com/rlopez44/cboy-sub000/internal/cpu"
	"github.com/rlopez44/cboy-sub000/internal/disasm"
	"github.com/rlopez44/cboy-sub000/internal/logger"
)

// FrameCycles is one DMG video frame in M-cycles (70224 T-cycles).
const FrameCycles = 17556

var (
	ErrNoROM     = errors.New("no ROM loaded")
	ErrBadHeader = errors.New("cartridge header checksum mismatch")
)

type Buttons struct {
	A, B, Start, Select   bool
	Up, Down, Left, Right bool
}

// Machine is not safe for concurrent use.
type Machine struct {
	cfg Config

	bus    *bus.Bus
	cpu    *cpu.CPU
	header *cart.Header
	rom    []byte

	romPath string
	serial  io.Writer

	steps  uint64
	cycles uint64 // M-cycles
}

func New(cfg Config) *Machine {
	return &Machine{cfg: cfg}
}

// AllowLogging gates per-instruction trace entries.
func (m *Machine) AllowLogging() bool { return m.cfg.Trace }

// LoadROM validates rom, maps it and resets the machine.
func (m *Machine) LoadROM(rom []byte) error {
	h, err := cart.ParseHeader(rom)
	switch {
	case err != nil && !m.cfg.SkipHeaderCheck:
		return err
	case err == nil && !h.ChecksumOK && !m.cfg.SkipHeaderCheck:
		return fmt.Errorf("%w: %s", ErrBadHeader, h)
	}
	if _, err := cart.New(rom); err != nil {
		return err
	}

	m.rom = append([]byte(nil), rom...)
	m.header = nil
	if err == nil {
		m.header = h
		logger.Logf(logger.Allow, "emu", "cartridge %s", h)
	}
	m.Reset()
	return nil
}

// LoadROMFromFile replaces the current cartridge with a ROM from disk.
func (m *Machine) LoadROMFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := m.LoadROM(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	m.romPath = path
	return nil
}

// Reset rebuilds the bus and puts the CPU in its post-boot state. The
// serial writer survives a reset.
func (m *Machine) Reset() {
	if m.rom == nil {
		return
	}
	c, _ := cart.New(m.rom)
	m.bus = bus.NewWithCartridge(c)
	m.bus.SetSerialWriter(m.serial)
	m.cpu = cpu.New(m.bus, m.bus)
	if m.cfg.BootPC != 0 {
		m.cpu.PC = m.cfg.BootPC
	}
	m.applyPostBootIO()
	m.steps, m.cycles = 0, 0
}

// applyPostBootIO sets the registers the boot ROM leaves behind that the
// bus stores.
func (m *Machine) applyPostBootIO() {
	b := m.bus
	b.Write(0xFF00, 0xCF)
	b.Write(0xFF05, 0x00) // TIMA
	b.Write(0xFF06, 0x00) // TMA
	b.Write(0xFF07, 0x00) // TAC
	b.Write(0xFF40, 0x91) // LCDC
	b.Write(0xFF47, 0xFC) // BGP
	b.Write(0xFF48, 0xFF) // OBP0
	b.Write(0xFF49, 0xFF) // OBP1
	b.Write(0xFF26, 0xF1) // NR52
	b.Write(0xFF50, 0x01) // boot ROM off
	b.Write(0xFFFF, 0x00) // IE
	b.SetIF(0x01)
}

func (m *Machine) CPU() *cpu.CPU        { return m.cpu }
func (m *Machine) Bus() *bus.Bus        { return m.bus }
func (m *Machine) Header() *cart.Header { return m.header }
func (m *Machine) ROMPath() string      { return m.romPath }
func (m *Machine) Loaded() bool         { return m.cpu != nil }

// Steps and Cycles count executed steps and M-cycles since the last reset.
func (m *Machine) Steps() uint64  { return m.steps }
func (m *Machine) Cycles() uint64 { return m.cycles }

// SetSerialWriter connects w to the serial port, now and after resets.
func (m *Machine) SetSerialWriter(w io.Writer) {
	m.serial = w
	if m.bus != nil {
		m.bus.SetSerialWriter(w)
	}
}

// SetButtons forwards pressed buttons to the joypad register.
func (m *Machine) SetButtons(b Buttons) {
	if m.bus == nil {
		return
	}
	var p byte
	for _, k := range []struct {
		on  bool
		bit byte
	}{
		{b.Right, bus.JoypRight}, {b.Left, bus.JoypLeft}, {b.Up, bus.JoypUp}, {b.Down, bus.JoypDown},
		{b.A, bus.JoypA}, {b.B, bus.JoypB}, {b.Select, bus.JoypSelect}, {b.Start, bus.JoypStart},
	} {
		if k.on {
			p |= k.bit
		}
	}
	m.bus.SetJoypadState(p)
}

// Step executes one CPU step and advances the timer by the same amount of
// time. It returns the M-cycles taken. A CPU fault is logged and returned
// wrapped; errors.As recovers the *cpu.Fault.
func (m *Machine) Step() (int, error) {
	if m.cpu == nil {
		return 0, ErrNoROM
	}
	if !m.cpu.Halted() && !m.cpu.Stopped() {
		m.trace()
	}

	n, err := m.cpu.Step()
	if err != nil {
		m.logFault(err)
		return 0, fmt.Errorf("step %d: %w", m.steps, err)
	}
	m.bus.Tick(n * 4)
	m.steps++
	m.cycles += uint64(n)
	return n, nil
}

// RunSteps executes up to n steps and returns how many completed.
func (m *Machine) RunSteps(n int) (int, error) {
	for i := 0; i < n; i++ {
		if _, err := m.Step(); err != nil {
			return i, err
		}
	}
	return n, nil
}

// RunCycles steps until at least n M-cycles have elapsed.
func (m *Machine) RunCycles(n int) error {
	for acc := 0; acc < n; {
		c, err := m.Step()
		if err != nil {
			return err
		}
		acc += c
	}
	return nil
}

// StepFrame runs one frame's worth of cycles.
func (m *Machine) StepFrame() error {
	return m.RunCycles(FrameCycles)
}

func (m *Machine) trace() {
	if !m.cfg.Trace {
		return
	}
	d := m.cpu.Dump()
	logger.Log(m, "cpu", d)
	if m.cfg.TraceWriter != nil {
		fmt.Fprintln(m.cfg.TraceWriter, d)
	}
}

func (m *Machine) logFault(err error) {
	var f *cpu.Fault
	if !errors.As(err, &f) {
		logger.Log(logger.Allow, "emu", err)
		return
	}
	l := disasm.Decode(m.bus, f.PC)
	logger.Logf(logger.Allow, "emu", "fault after %d steps: %v", m.steps, f)
	logger.Logf(logger.Allow, "emu", "at %s", l)
	logger.Log(logger.Allow, "emu", m.cpu.Dump())
}
