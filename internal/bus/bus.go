// Package bus is the 16-bit address space the CPU runs against: cartridge
// ROM, work RAM and its echo, VRAM/OAM as plain storage, high RAM, and the
// handful of I/O registers the core needs (IF/IE, timer, serial, joypad).
package bus

import (
	"io"

	"github.com/rlopez44/cboy-sub000/internal/cart"
	"github.com/rlopez44/cboy-sub000/internal/cpu"
)

const (
	regJOYP = 0xFF00
	regSB   = 0xFF01
	regSC   = 0xFF02
	regDIV  = 0xFF04
	regTIMA = 0xFF05
	regTMA  = 0xFF06
	regTAC  = 0xFF07
	regIF   = 0xFF0F
	regLY   = 0xFF44
	regDMA  = 0xFF46
	regIE   = 0xFFFF
)

// LYStub is what LY reads as. There is no PPU, so it sits at the first
// VBlank line, which keeps "wait for VBlank" loops in test ROMs moving.
const LYStub = 0x90

type Bus struct {
	cart cart.Cartridge

	vram [0x2000]byte
	wram [0x2000]byte
	oam  [0xA0]byte
	io   [0x80]byte // registers without behaviour read back what was written
	hram [0x7F]byte

	ifReg byte
	ie    byte

	// serial
	sb, sc    byte
	serialOut io.Writer

	// timer
	divInternal uint16
	tima        byte
	tma         byte
	tac         byte
	reloadDelay int // T-cycles until TIMA reloads from TMA, 0 when idle

	// joypad
	joypSelect byte // bits 4-5 of JOYP
	joypState  byte // pressed buttons, Joyp* bits
}

var _ cpu.Memory = (*Bus)(nil)
var _ cpu.InterruptLines = (*Bus)(nil)

// New maps rom as an unbanked cartridge.
func New(rom []byte) *Bus {
	return NewWithCartridge(cart.NewROMOnly(rom))
}

func NewWithCartridge(c cart.Cartridge) *Bus {
	return &Bus{cart: c}
}

// Cart returns the cartridge in the slot.
func (b *Bus) Cart() cart.Cartridge { return b.cart }

func (b *Bus) Read(addr uint16) byte {
	switch {
	case addr < 0x8000:
		return b.cart.Read(addr)
	case addr < 0xA000:
		return b.vram[addr-0x8000]
	case addr < 0xC000:
		return b.cart.Read(addr)
	case addr < 0xE000:
		return b.wram[addr-0xC000]
	case addr < 0xFE00:
		// echo of C000-DDFF
		return b.wram[addr-0xE000]
	case addr < 0xFEA0:
		return b.oam[addr-0xFE00]
	case addr < 0xFF00:
		return 0xFF
	case addr < 0xFF80:
		return b.readIO(addr)
	case addr < 0xFFFF:
		return b.hram[addr-0xFF80]
	default:
		return b.ie
	}
}

func (b *Bus) Write(addr uint16, value byte) {
	switch {
	case addr < 0x8000:
		b.cart.Write(addr, value)
	case addr < 0xA000:
		b.vram[addr-0x8000] = value
	case addr < 0xC000:
		b.cart.Write(addr, value)
	case addr < 0xE000:
		b.wram[addr-0xC000] = value
	case addr < 0xFE00:
		b.wram[addr-0xE000] = value
	case addr < 0xFEA0:
		b.oam[addr-0xFE00] = value
	case addr < 0xFF00:
		// unusable
	case addr < 0xFF80:
		b.writeIO(addr, value)
	case addr < 0xFFFF:
		b.hram[addr-0xFF80] = value
	default:
		b.ie = value
	}
}

func (b *Bus) readIO(addr uint16) byte {
	switch addr {
	case regJOYP:
		return b.readJOYP()
	case regSB:
		return b.sb
	case regSC:
		return b.sc | 0x7E
	case regDIV:
		return byte(b.divInternal >> 8)
	case regTIMA:
		return b.tima
	case regTMA:
		return b.tma
	case regTAC:
		return 0xF8 | b.tac
	case regIF:
		return 0xE0 | b.ifReg
	case regLY:
		return LYStub
	}
	return b.io[addr-0xFF00]
}

func (b *Bus) writeIO(addr uint16, value byte) {
	switch addr {
	case regJOYP:
		b.joypSelect = value & 0x30
	case regSB:
		b.sb = value
	case regSC:
		b.writeSC(value)
	case regDIV:
		b.writeDIV()
	case regTIMA:
		b.writeTIMA(value)
	case regTMA:
		b.tma = value
	case regTAC:
		b.writeTAC(value)
	case regIF:
		b.ifReg = value & 0x1F
	case regLY:
		// read-only
	case regDMA:
		b.io[addr-0xFF00] = value
		b.dma(value)
	default:
		b.io[addr-0xFF00] = value
	}
}

// dma copies 160 bytes from value<<8 into OAM in one go.
func (b *Bus) dma(value byte) {
	src := uint16(value) << 8
	for i := range b.oam {
		b.oam[i] = b.Read(src + uint16(i))
	}
}

// IF returns the low five bits of the interrupt request register.
func (b *Bus) IF() byte { return b.ifReg }

func (b *Bus) SetIF(value byte) { b.ifReg = value & 0x1F }

// IE returns the low five bits of the interrupt enable register.
func (b *Bus) IE() byte { return b.ie & 0x1F }

// RequestInterrupt raises one or more IF bits.
func (b *Bus) RequestInterrupt(bits byte) { b.ifReg |= bits & 0x1F }
