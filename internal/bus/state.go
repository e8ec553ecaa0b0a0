package bus

// State is everything on the bus except the cartridge, in a form gob can
// encode.
type State struct {
	VRAM []byte
	WRAM []byte
	OAM  []byte
	IO   []byte
	HRAM []byte

	IF, IE byte
	SB, SC byte

	Div         uint16
	TIMA        byte
	TMA         byte
	TAC         byte
	ReloadDelay int

	JoypSelect byte
	JoypState  byte
}

func (b *Bus) State() State {
	return State{
		VRAM: append([]byte(nil), b.vram[:]...),
		WRAM: append([]byte(nil), b.wram[:]...),
		OAM:  append([]byte(nil), b.oam[:]...),
		IO:   append([]byte(nil), b.io[:]...),
		HRAM: append([]byte(nil), b.hram[:]...),

		IF: b.ifReg, IE: b.ie,
		SB: b.sb, SC: b.sc,

		Div:         b.divInternal,
		TIMA:        b.tima,
		TMA:         b.tma,
		TAC:         b.tac,
		ReloadDelay: b.reloadDelay,

		JoypSelect: b.joypSelect,
		JoypState:  b.joypState,
	}
}

// Restore loads s. Short slices leave the tail of each region untouched.
func (b *Bus) Restore(s State) {
	copy(b.vram[:], s.VRAM)
	copy(b.wram[:], s.WRAM)
	copy(b.oam[:], s.OAM)
	copy(b.io[:], s.IO)
	copy(b.hram[:], s.HRAM)

	b.ifReg, b.ie = s.IF&0x1F, s.IE
	b.sb, b.sc = s.SB, s.SC

	b.divInternal = s.Div
	b.tima, b.tma, b.tac = s.TIMA, s.TMA, s.TAC&0x07
	b.reloadDelay = s.ReloadDelay

	b.joypSelect = s.JoypSelect & 0x30
	b.joypState = s.JoypState
}
