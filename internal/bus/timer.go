package bus

import "github.com/rlopez44/cboy-sub000/internal/cpu"

// TIMA counts falling edges of one bit of the internal divider. TAC bits 0-1
// pick the bit, bit 2 gates it.
var tacBit = [4]uint16{9, 3, 5, 7}

// reloadCycles is the delay between TIMA overflowing to 00 and the reload
// from TMA that raises the timer interrupt.
const reloadCycles = 4

// Tick advances the divider and timer by n T-cycles.
func (b *Bus) Tick(n int) {
	for ; n > 0; n-- {
		if b.reloadDelay > 0 {
			b.reloadDelay--
			if b.reloadDelay == 0 {
				b.tima = b.tma
				b.RequestInterrupt(cpu.IntTimer)
			}
		}
		old := b.timerInput()
		b.divInternal++
		if old && !b.timerInput() {
			b.incTIMA()
		}
	}
}

func (b *Bus) timerInput() bool {
	if b.tac&0x04 == 0 {
		return false
	}
	return b.divInternal&(1<<tacBit[b.tac&0x03]) != 0
}

func (b *Bus) incTIMA() {
	// edges are swallowed while a reload is pending
	if b.reloadDelay > 0 {
		return
	}
	b.tima++
	if b.tima == 0 {
		b.reloadDelay = reloadCycles
	}
}

// writeDIV resets the divider. If that drops the selected bit, TIMA ticks.
func (b *Bus) writeDIV() {
	old := b.timerInput()
	b.divInternal = 0
	if old {
		b.incTIMA()
	}
}

// writeTIMA during a pending reload cancels it.
func (b *Bus) writeTIMA(value byte) {
	b.tima = value
	b.reloadDelay = 0
}

func (b *Bus) writeTAC(value byte) {
	old := b.timerInput()
	b.tac = value & 0x07
	if old && !b.timerInput() {
		b.incTIMA()
	}
}
