package bus

import "github.com/rlopez44/cboy-sub000/internal/cpu"

// Joypad bits for SetJoypadState. A set bit means pressed.
const (
	JoypRight byte = 1 << iota
	JoypLeft
	JoypUp
	JoypDown
	JoypA
	JoypB
	JoypSelect
	JoypStart
)

// SetJoypadState replaces the pressed buttons. A newly pressed button raises
// the joypad interrupt, which is also what ends STOP.
func (b *Bus) SetJoypadState(pressed byte) {
	if pressed&^b.joypState != 0 {
		b.RequestInterrupt(cpu.IntJoypad)
	}
	b.joypState = pressed
}

// readJOYP returns the selected groups active-low in bits 0-3.
func (b *Bus) readJOYP() byte {
	low := byte(0x0F)
	if b.joypSelect&0x10 == 0 {
		low &^= b.joypState & 0x0F
	}
	if b.joypSelect&0x20 == 0 {
		low &^= b.joypState >> 4
	}
	return 0xC0 | b.joypSelect | low
}
