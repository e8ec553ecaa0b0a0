package bus

import (
	"bytes"
	"testing"

	"github.com/rlopez44/cboy-sub000/internal/cpu"
)

func TestBus_MemoryMap(t *testing.T) {
	rom := make([]byte, 0x8000)
	rom[0x0100] = 0x42
	b := New(rom)

	if got := b.Read(0x0100); got != 0x42 {
		t.Fatalf("ROM read got %02x want 42", got)
	}
	b.Write(0x0100, 0x00)
	if got := b.Read(0x0100); got != 0x42 {
		t.Fatalf("ROM write was not ignored: got %02x", got)
	}

	b.Write(0xC000, 0x99)
	if got := b.Read(0xC000); got != 0x99 {
		t.Fatalf("WRAM read got %02x want 99", got)
	}
	b.Write(0xE000, 0x55)
	if got := b.Read(0xC000); got != 0x55 {
		t.Fatalf("echo write did not reach WRAM: got %02x", got)
	}
	b.Write(0xDDFF, 0x66)
	if got := b.Read(0xFDFF); got != 0x66 {
		t.Fatalf("echo read got %02x want 66", got)
	}

	b.Write(0xFF80, 0xAB)
	b.Write(0xFFFE, 0xCD)
	if b.Read(0xFF80) != 0xAB || b.Read(0xFFFE) != 0xCD {
		t.Fatalf("HRAM read back failed")
	}

	b.Write(0x8000, 0x11)
	b.Write(0xFE00, 0x22)
	if b.Read(0x8000) != 0x11 || b.Read(0xFE00) != 0x22 {
		t.Fatalf("VRAM/OAM read back failed")
	}

	if got := b.Read(0xA123); got != 0xFF {
		t.Fatalf("external RAM got %02x want FF", got)
	}
	if got := b.Read(0xFEA0); got != 0xFF {
		t.Fatalf("unusable area got %02x want FF", got)
	}
}

func TestBus_InterruptRegisters(t *testing.T) {
	b := New(nil)

	b.Write(0xFF0F, 0x3F)
	if got := b.Read(0xFF0F); got != 0xFF {
		t.Fatalf("IF read got %02x want FF", got)
	}
	if got := b.IF(); got != 0x1F {
		t.Fatalf("IF() got %02x want 1F", got)
	}

	b.Write(0xFFFF, 0xFB)
	if got := b.Read(0xFFFF); got != 0xFB {
		t.Fatalf("IE read got %02x want FB", got)
	}
	if got := b.IE(); got != 0x1B {
		t.Fatalf("IE() got %02x want 1B", got)
	}

	b.SetIF(0xE1)
	if got := b.Read(0xFF0F); got != 0xE1 {
		t.Fatalf("SetIF masked read got %02x want E1", got)
	}
}

func TestBus_CPUServicesBusInterrupt(t *testing.T) {
	rom := make([]byte, 0x8000)
	b := New(rom)
	c := cpu.New(b, b)
	c.SetIME(true)
	b.Write(0xFFFF, cpu.IntTimer)
	b.RequestInterrupt(cpu.IntTimer | cpu.IntSerial)

	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if cycles != cpu.ServiceCycles || c.PC != 0x0050 {
		t.Fatalf("cycles=%d PC=%04x want 5 0050", cycles, c.PC)
	}
	if got := b.IF(); got != cpu.IntSerial {
		t.Fatalf("IF got %02x want %02x", got, cpu.IntSerial)
	}
}

func TestBus_LYStub(t *testing.T) {
	b := New(nil)
	b.Write(0xFF44, 0x00)
	if got := b.Read(0xFF44); got != LYStub {
		t.Fatalf("LY got %02x want %02x", got, LYStub)
	}
}

func TestBus_DMA(t *testing.T) {
	b := New(nil)
	for i := 0; i < 0xA0; i++ {
		b.Write(0xC100+uint16(i), byte(i))
	}
	b.Write(0xFF46, 0xC1)
	for i := 0; i < 0xA0; i++ {
		if got := b.Read(0xFE00 + uint16(i)); got != byte(i) {
			t.Fatalf("OAM[%02x] got %02x want %02x", i, got, i)
		}
	}
}

func TestBus_Joypad(t *testing.T) {
	b := New(nil)

	if got := b.Read(0xFF00); got&0x0F != 0x0F {
		t.Fatalf("JOYP idle low bits got %02x want 0F", got)
	}

	// select d-pad, press Right+Up
	b.Write(0xFF00, 0x20)
	b.SetJoypadState(JoypRight | JoypUp)
	if got := b.Read(0xFF00) & 0x0F; got != 0x0A {
		t.Fatalf("JOYP d-pad got %02x want 0A", got)
	}
	if b.IF()&cpu.IntJoypad == 0 {
		t.Fatalf("press did not request the joypad interrupt")
	}

	// select buttons, press A+Start
	b.SetIF(0)
	b.Write(0xFF00, 0x10)
	b.SetJoypadState(JoypA | JoypStart)
	if got := b.Read(0xFF00) & 0x0F; got != 0x06 {
		t.Fatalf("JOYP buttons got %02x want 06", got)
	}

	// releasing does not interrupt
	b.SetIF(0)
	b.SetJoypadState(JoypA)
	if b.IF() != 0 {
		t.Fatalf("release requested an interrupt")
	}
}

func TestBus_TimerRegisters(t *testing.T) {
	b := New(nil)

	b.divInternal = 0x3400
	if got := b.Read(0xFF04); got != 0x34 {
		t.Fatalf("DIV got %02x want 34", got)
	}
	b.Write(0xFF04, 0x12)
	if got := b.Read(0xFF04); got != 0x00 {
		t.Fatalf("DIV after write got %02x want 00", got)
	}
	b.Write(0xFF05, 0x77)
	b.Write(0xFF06, 0x88)
	if b.Read(0xFF05) != 0x77 || b.Read(0xFF06) != 0x88 {
		t.Fatalf("TIMA/TMA read back failed")
	}
	b.Write(0xFF07, 0xFD)
	if got := b.Read(0xFF07); got != 0xFD {
		t.Fatalf("TAC got %02x want FD", got)
	}
}

func TestBus_TimerRate(t *testing.T) {
	cases := []struct {
		tac    byte
		period int
	}{
		{0x04, 1024}, {0x05, 16}, {0x06, 64}, {0x07, 256},
	}
	for _, tc := range cases {
		b := New(nil)
		b.Write(0xFF07, tc.tac)
		b.Tick(tc.period*3 - 1)
		if got := b.tima; got != 2 {
			t.Fatalf("TAC %02x: TIMA after %d cycles got %d want 2", tc.tac, tc.period*3-1, got)
		}
		b.Tick(1)
		if got := b.tima; got != 3 {
			t.Fatalf("TAC %02x: TIMA got %d want 3", tc.tac, got)
		}
	}
}

func TestBus_TimerDisabled(t *testing.T) {
	b := New(nil)
	b.Write(0xFF07, 0x01)
	b.Tick(4096)
	if b.tima != 0 {
		t.Fatalf("disabled timer counted to %d", b.tima)
	}
	if got := b.Read(0xFF04); got != 0x10 {
		t.Fatalf("DIV got %02x want 10", got)
	}
}

func TestBus_TimerEdgeOnDIVAndTACWrites(t *testing.T) {
	b := New(nil)
	b.tac = 0x05

	b.tima = 0x10
	b.divInternal = 0x0008
	if !b.timerInput() {
		t.Fatalf("expected timer input high")
	}
	b.Write(0xFF04, 0x00)
	if got := b.tima; got != 0x11 {
		t.Fatalf("TIMA after DIV write got %02X want 11", got)
	}

	// switch from bit 3 (high) to bit 5 (low)
	b.tima = 0x20
	b.divInternal = 0x0008
	b.Write(0xFF07, 0x06)
	if got := b.tima; got != 0x21 {
		t.Fatalf("TIMA after TAC write got %02X want 21", got)
	}
}

func TestBus_TimerOverflowReload(t *testing.T) {
	b := New(nil)
	b.tac = 0x05
	b.tma = 0xAB
	b.tima = 0xFF
	b.divInternal = 0x000F

	b.Tick(1)
	if got := b.tima; got != 0x00 {
		t.Fatalf("after overflow TIMA got %02X want 00", got)
	}
	for i := 0; i < reloadCycles-1; i++ {
		b.Tick(1)
		if b.tima != 0x00 || b.IF()&cpu.IntTimer != 0 {
			t.Fatalf("cycle %d of reload delay: TIMA=%02X IF=%02X", i, b.tima, b.IF())
		}
	}
	b.Tick(1)
	if got := b.tima; got != 0xAB {
		t.Fatalf("after reload TIMA got %02X want AB", got)
	}
	if b.IF()&cpu.IntTimer == 0 {
		t.Fatalf("timer interrupt not requested on reload")
	}
}

func TestBus_TimerReloadCancelledByTIMAWrite(t *testing.T) {
	b := New(nil)
	b.tac = 0x05
	b.tma = 0x55
	b.tima = 0xFF
	b.divInternal = 0x000F

	b.Tick(1)
	b.Write(0xFF05, 0x77)
	b.Tick(8)
	if got := b.tima; got != 0x77 {
		t.Fatalf("TIMA got %02X want 77", got)
	}
	if b.IF()&cpu.IntTimer != 0 {
		t.Fatalf("timer interrupt requested despite cancellation")
	}
}

func TestBus_TimerReloadUsesLatestTMA(t *testing.T) {
	b := New(nil)
	b.tac = 0x05
	b.tma = 0x11
	b.tima = 0xFF
	b.divInternal = 0x000F

	b.Tick(1)
	b.Write(0xFF06, 0x22)
	b.Tick(reloadCycles)
	if got := b.tima; got != 0x22 {
		t.Fatalf("TIMA got %02X want 22", got)
	}
}

func TestBus_TimerEdgesIgnoredDuringReload(t *testing.T) {
	b := New(nil)
	b.Write(0xFF07, 0x05)
	b.tma = 0x33
	b.tima = 0xFF
	b.divInternal = 0x000F
	b.Tick(1)

	b.divInternal = 0x0008
	b.Write(0xFF04, 0x00)
	if got := b.tima; got != 0x00 {
		t.Fatalf("TIMA moved during pending reload: got %02X", got)
	}
	b.Tick(reloadCycles)
	if got := b.tima; got != 0x33 {
		t.Fatalf("reload did not happen: got %02X want 33", got)
	}
}

func TestBus_Serial(t *testing.T) {
	b := New(nil)
	var out bytes.Buffer
	b.SetSerialWriter(&out)

	for _, ch := range []byte("ok\n") {
		b.Write(0xFF01, ch)
		b.Write(0xFF02, 0x81)
	}
	if got := out.String(); got != "ok\n" {
		t.Fatalf("serial out got %q want %q", got, "ok\n")
	}
	if got := b.Read(0xFF02); got&0x80 != 0 {
		t.Fatalf("SC transfer bit still set: %02x", got)
	}
	if b.IF()&cpu.IntSerial == 0 {
		t.Fatalf("serial interrupt not requested")
	}

	// no start bit, no transfer
	b.Write(0xFF01, 'x')
	b.Write(0xFF02, 0x01)
	if out.Len() != 3 {
		t.Fatalf("transfer without start bit wrote %q", out.String())
	}
}

func TestBus_StateRoundTrip(t *testing.T) {
	b := New(nil)
	b.Write(0xC123, 0x5A)
	b.Write(0xFF90, 0xA5)
	b.Write(0xFF07, 0x05)
	b.Write(0xFF06, 0x42)
	b.Write(0xFFFF, 0x1F)
	b.RequestInterrupt(cpu.IntVBlank)
	b.Tick(100)

	s := b.State()
	b2 := New(nil)
	b2.Restore(s)

	for _, addr := range []uint16{0xC123, 0xFF90, 0xFF04, 0xFF05, 0xFF06, 0xFF07, 0xFF0F, 0xFFFF} {
		if got, want := b2.Read(addr), b.Read(addr); got != want {
			t.Fatalf("addr %04x got %02x want %02x", addr, got, want)
		}
	}
	b.Tick(1000)
	b2.Tick(1000)
	if b.tima != b2.tima || b.divInternal != b2.divInternal {
		t.Fatalf("restored timer diverged: %02x/%04x vs %02x/%04x", b2.tima, b2.divInternal, b.tima, b.divInternal)
	}
}
