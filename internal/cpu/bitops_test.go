package cpu

import "testing"

func TestBitops_RotateA(t *testing.T) {
	cases := []struct {
		op    byte
		a     byte
		carry bool
		want  byte
		flags string
	}{
		{0x07, 0x80, false, 0x01, "---C"}, // RLCA
		{0x0F, 0x01, false, 0x80, "---C"}, // RRCA
		{0x17, 0x80, false, 0x00, "---C"}, // RLA, Z stays clear
		{0x17, 0x00, true, 0x01, "----"},  // RLA
		{0x1F, 0x01, true, 0x80, "---C"},  // RRA
	}
	for _, tc := range cases {
		c, _ := newCPU(tc.op)
		c.A = tc.a
		c.SetFlags(true, true, true, tc.carry)
		mustStep(t, c)
		if c.A != tc.want || flags(c) != tc.flags {
			t.Fatalf("op %02X A=%02x: got %02x %s want %02x %s", tc.op, tc.a, c.A, flags(c), tc.want, tc.flags)
		}
	}
}

func TestBitops_ShiftGroup(t *testing.T) {
	cases := []struct {
		name  string
		cb    byte // operates on B
		v     byte
		carry bool
		want  byte
		flags string
	}{
		{"RLC", 0x00, 0x85, false, 0x0B, "---C"},
		{"RRC", 0x08, 0x01, false, 0x80, "---C"},
		{"RL zero", 0x10, 0x80, false, 0x00, "Z--C"},
		{"RR", 0x18, 0x00, true, 0x80, "----"},
		{"SLA", 0x20, 0xC0, false, 0x80, "---C"},
		{"SRA keeps sign", 0x28, 0x81, false, 0xC0, "---C"},
		{"SWAP", 0x30, 0xF1, true, 0x1F, "----"},
		{"SWAP zero", 0x30, 0x00, true, 0x00, "Z---"},
		{"SRL", 0x38, 0x01, false, 0x00, "Z--C"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newCPU(0xCB, tc.cb)
			c.B = tc.v
			c.SetFlags(false, true, true, tc.carry)
			mustStep(t, c)
			if c.B != tc.want || flags(c) != tc.flags {
				t.Fatalf("got %02x %s want %02x %s", c.B, flags(c), tc.want, tc.flags)
			}
		})
	}
}

func TestBitops_BIT(t *testing.T) {
	// BIT 0,A ; BIT 7,A ; BIT 3,(HL)
	c, m := newCPU(0xCB, 0x47, 0xCB, 0x7F, 0xCB, 0x5E)
	c.A = 0x01
	c.F = FlagC | FlagN
	mustStep(t, c)
	if flags(c) != "--HC" {
		t.Fatalf("BIT 0 of 01 flags=%s want --HC", flags(c))
	}
	mustStep(t, c)
	if flags(c) != "Z-HC" {
		t.Fatalf("BIT 7 of 01 flags=%s want Z-HC", flags(c))
	}
	c.SetHL(0xC000)
	m.mem[0xC000] = 0x08
	c.F = 0
	if cycles := mustStep(t, c); cycles != 3 || flags(c) != "--H-" {
		t.Fatalf("BIT 3,(HL) cycles=%d flags=%s", cycles, flags(c))
	}
	if m.mem[0xC000] != 0x08 {
		t.Fatalf("BIT modified memory")
	}
}

// A bit above bit 0 that is set must clear Z. Evaluating the mask test as
// v & (mask == 0) would get this wrong.
func TestBitops_BIT_HighBitSet(t *testing.T) {
	for b := 0; b < 8; b++ {
		c, _ := newCPU(0xCB, byte(0x40|b<<3))
		c.B = 1 << b
		mustStep(t, c)
		if c.Flag(FlagZ) {
			t.Fatalf("BIT %d of %02x set Z", b, c.B)
		}
	}
}

func TestBitops_RES_SET(t *testing.T) {
	// SET 7,(HL) ; RES 0,(HL) ; SET 2,A ; RES 2,A
	c, m := newCPU(0xCB, 0xFE, 0xCB, 0x86, 0xCB, 0xD7, 0xCB, 0x97)
	c.SetHL(0xC000)
	m.mem[0xC000] = 0x01
	before := c.F
	if cycles := mustStep(t, c); cycles != 4 || m.mem[0xC000] != 0x81 {
		t.Fatalf("SET 7,(HL) cycles=%d mem=%02x", cycles, m.mem[0xC000])
	}
	mustStep(t, c)
	if m.mem[0xC000] != 0x80 {
		t.Fatalf("RES 0,(HL) mem=%02x", m.mem[0xC000])
	}
	c.A = 0
	mustStep(t, c)
	if c.A != 0x04 {
		t.Fatalf("SET 2,A got %02x", c.A)
	}
	mustStep(t, c)
	if c.A != 0x00 || c.F != before {
		t.Fatalf("RES 2,A got %02x F=%02x", c.A, c.F)
	}
}
