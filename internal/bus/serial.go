package bus

import (
	"io"

	"github.com/rlopez44/cboy-sub000/internal/cpu"
)

// SetSerialWriter connects w to the serial port. Every transfer started
// through SC sends the byte in SB to w. Test ROMs report results this way.
func (b *Bus) SetSerialWriter(w io.Writer) { b.serialOut = w }

// writeSC completes a requested transfer at once: there is no link partner,
// so SB is sent out and the serial interrupt raised immediately.
func (b *Bus) writeSC(value byte) {
	b.sc = value & 0x81
	if value&0x80 == 0 {
		return
	}
	if b.serialOut != nil {
		_, _ = b.serialOut.Write([]byte{b.sb})
	}
	b.sb = 0xFF
	b.sc &^= 0x80
	b.RequestInterrupt(cpu.IntSerial)
}
