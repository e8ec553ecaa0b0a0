package cpu

import "testing"

func TestALU_8bitFlags(t *testing.T) {
	cases := []struct {
		name  string
		op    byte // register form with B as source
		a, b  byte
		carry bool
		want  byte
		flags string
	}{
		{"ADD half carry", 0x80, 0x0F, 0x01, false, 0x10, "--H-"},
		{"ADD carry zero", 0x80, 0xF0, 0x10, false, 0x00, "Z--C"},
		{"ADD both", 0x80, 0xFF, 0x01, false, 0x00, "Z-HC"},
		{"ADC carry in nibble", 0x88, 0x0E, 0x01, true, 0x10, "--H-"},
		{"ADC carry in byte", 0x88, 0xFE, 0x01, true, 0x00, "Z-HC"},
		{"SUB borrow nibble", 0x90, 0x10, 0x01, false, 0x0F, "-NH-"},
		{"SUB borrow byte", 0x90, 0x00, 0x01, false, 0xFF, "-NHC"},
		{"SUB equal", 0x90, 0x42, 0x42, false, 0x00, "ZN--"},
		{"SBC carry in", 0x98, 0x10, 0x0F, true, 0x00, "ZNH-"},
		{"SBC carry out", 0x98, 0x00, 0xFF, true, 0x00, "ZNHC"},
		{"AND", 0xA0, 0xF0, 0x0F, true, 0x00, "Z-H-"},
		{"XOR", 0xA8, 0xFF, 0x0F, true, 0xF0, "----"},
		{"OR", 0xB0, 0x00, 0x00, true, 0x00, "Z---"},
		{"CP keeps A", 0xB8, 0x3C, 0x40, false, 0x3C, "-N-C"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newCPU(tc.op)
			c.A, c.B = tc.a, tc.b
			c.SetFlags(false, false, false, tc.carry)
			mustStep(t, c)
			if c.A != tc.want || flags(c) != tc.flags {
				t.Fatalf("A=%02x flags=%s want A=%02x flags=%s", c.A, flags(c), tc.want, tc.flags)
			}
			if c.F&0x0F != 0 {
				t.Fatalf("low nibble of F set: %02x", c.F)
			}
		})
	}
}

func TestALU_ImmediateAndHL(t *testing.T) {
	// ADD A,d8 ; SUB (HL) ; CP d8
	c, m := newCPU(0xC6, 0x05, 0x96, 0xFE, 0x02)
	c.A = 0x03
	c.SetHL(0xC000)
	m.mem[0xC000] = 0x06
	if cycles := mustStep(t, c); cycles != 2 || c.A != 0x08 {
		t.Fatalf("ADD A,d8 cycles=%d A=%02x", cycles, c.A)
	}
	if cycles := mustStep(t, c); cycles != 2 || c.A != 0x02 {
		t.Fatalf("SUB (HL) cycles=%d A=%02x", cycles, c.A)
	}
	mustStep(t, c)
	if flags(c) != "ZN--" || c.A != 0x02 {
		t.Fatalf("CP d8 flags=%s A=%02x", flags(c), c.A)
	}
}

func TestALU_IncDec(t *testing.T) {
	// DEC C ; DEC C ; INC (HL) ; DEC (HL) ; INC BC ; DEC SP
	c, m := newCPU(0x0D, 0x0D, 0x34, 0x35, 0x03, 0x3B)
	c.C = 0x01
	c.SetHL(0xC000)
	m.mem[0xC000] = 0xFF
	c.F = FlagC

	mustStep(t, c)
	if c.C != 0x00 || flags(c) != "ZN-C" {
		t.Fatalf("DEC C to zero C=%02x flags=%s", c.C, flags(c))
	}
	mustStep(t, c)
	if c.C != 0xFF || flags(c) != "-NHC" {
		t.Fatalf("DEC C wrap C=%02x flags=%s", c.C, flags(c))
	}
	if cycles := mustStep(t, c); cycles != 3 || m.mem[0xC000] != 0x00 || flags(c) != "Z-HC" {
		t.Fatalf("INC (HL) cycles=%d mem=%02x flags=%s", cycles, m.mem[0xC000], flags(c))
	}
	mustStep(t, c)
	if m.mem[0xC000] != 0xFF || flags(c) != "-NHC" {
		t.Fatalf("DEC (HL) mem=%02x flags=%s", m.mem[0xC000], flags(c))
	}
	before := c.F
	c.SetBC(0xFFFF)
	mustStep(t, c)
	mustStep(t, c)
	if c.BC() != 0x0000 || c.SP != 0xFFFD || c.F != before {
		t.Fatalf("16-bit INC/DEC BC=%04x SP=%04x F=%02x (was %02x)", c.BC(), c.SP, c.F, before)
	}
}

func TestALU_AddHL(t *testing.T) {
	c, _ := newCPU(0x09, 0x29)
	c.SetHL(0x0FFF)
	c.SetBC(0x0001)
	c.F = FlagZ
	mustStep(t, c)
	if c.HL() != 0x1000 || flags(c) != "Z-H-" {
		t.Fatalf("ADD HL,BC HL=%04x flags=%s", c.HL(), flags(c))
	}
	c.SetHL(0x8000)
	c.F = 0
	mustStep(t, c)
	if c.HL() != 0x0000 || flags(c) != "---C" {
		t.Fatalf("ADD HL,HL HL=%04x flags=%s", c.HL(), flags(c))
	}
}

func TestALU_AddSPe8(t *testing.T) {
	cases := []struct {
		sp    uint16
		e     byte
		want  uint16
		flags string
	}{
		{0xFFF8, 0x08, 0x0000, "--HC"},
		{0x000F, 0x01, 0x0010, "--H-"},
		{0x00F0, 0x10, 0x0100, "---C"},
		{0x1000, 0xFF, 0x0FFF, "----"},
		// negative offsets never report a carry
		{0x00FF, 0x80, 0x007F, "----"},
	}
	for _, tc := range cases {
		c, _ := newCPU(0xE8, tc.e)
		c.SP = tc.sp
		c.F = FlagZ | FlagN
		if cycles := mustStep(t, c); cycles != 4 {
			t.Fatalf("ADD SP,e8 cycles got %d want 4", cycles)
		}
		if c.SP != tc.want || flags(c) != tc.flags {
			t.Fatalf("SP=%04x+%02x got SP=%04x flags=%s want %04x %s", tc.sp, tc.e, c.SP, flags(c), tc.want, tc.flags)
		}
	}
}

func toBCD(n int) byte { return byte(n/10<<4 | n%10) }

func TestALU_DAA_AllDigitPairs(t *testing.T) {
	for x := 0; x <= 9; x++ {
		for y := 0; y <= 9; y++ {
			c, _ := newCPU(0x80, 0x27) // ADD A,B ; DAA
			c.A, c.B = byte(x), byte(y)
			mustStep(t, c)
			mustStep(t, c)
			if want := toBCD(x + y); c.A != want {
				t.Fatalf("%d+%d: DAA got %02x want %02x", x, y, c.A, want)
			}
			if c.Flag(FlagC) || c.Flag(FlagH) || c.Flag(FlagN) {
				t.Fatalf("%d+%d: DAA flags %s", x, y, flags(c))
			}
		}
	}
}

func TestALU_DAA_CarryOut(t *testing.T) {
	// 0x09 + 0x01 = 0x0A -> 0x10
	c, _ := newCPU(0x80, 0x27, 0x80, 0x27)
	c.A, c.B = 0x09, 0x01
	mustStep(t, c)
	if c.A != 0x0A {
		t.Fatalf("ADD got %02x want 0A", c.A)
	}
	mustStep(t, c)
	if c.A != 0x10 {
		t.Fatalf("DAA got %02x want 10", c.A)
	}
	// 0x99 + 0x01 -> 0x00 with carry
	c.A, c.B = 0x99, 0x01
	mustStep(t, c)
	mustStep(t, c)
	if c.A != 0x00 || flags(c) != "Z--C" {
		t.Fatalf("99+01 DAA got A=%02x flags=%s", c.A, flags(c))
	}
}

func TestALU_DAA_AfterSubtract(t *testing.T) {
	// 0x45 - 0x06 = 0x3F (H) -> 0x39 ; 0x10 - 0x20 = 0xF0 (C) -> 0x90, C kept
	c, _ := newCPU(0xD6, 0x06, 0x27, 0xD6, 0x20, 0x27)
	c.A = 0x45
	mustStep(t, c)
	mustStep(t, c)
	if c.A != 0x39 || flags(c) != "-N--" {
		t.Fatalf("DAA after SUB got A=%02x flags=%s", c.A, flags(c))
	}
	c.A = 0x10
	mustStep(t, c)
	mustStep(t, c)
	if c.A != 0x90 || flags(c) != "-N-C" {
		t.Fatalf("DAA after borrow got A=%02x flags=%s", c.A, flags(c))
	}
}

func TestALU_CPL_SCF_CCF(t *testing.T) {
	c, _ := newCPU(0x2F, 0x37, 0x3F, 0x3F)
	c.A = 0x35
	c.F = FlagZ
	mustStep(t, c)
	if c.A != 0xCA || flags(c) != "ZNH-" {
		t.Fatalf("CPL A=%02x flags=%s", c.A, flags(c))
	}
	mustStep(t, c)
	if flags(c) != "Z--C" {
		t.Fatalf("SCF flags=%s", flags(c))
	}
	mustStep(t, c)
	if flags(c) != "Z---" {
		t.Fatalf("CCF flags=%s", flags(c))
	}
	mustStep(t, c)
	if flags(c) != "Z--C" {
		t.Fatalf("CCF again flags=%s", flags(c))
	}
}
