package cpu

import "testing"

// testMemory is a flat 64KiB address space that also owns IF and IE.
type testMemory struct {
	mem [0x10000]byte
}

func (m *testMemory) Read(addr uint16) byte     { return m.mem[addr] }
func (m *testMemory) Write(addr uint16, v byte) { m.mem[addr] = v }
func (m *testMemory) IF() byte                  { return m.mem[0xFF0F] & 0x1F }
func (m *testMemory) SetIF(v byte)              { m.mem[0xFF0F] = v & 0x1F }
func (m *testMemory) IE() byte                  { return m.mem[0xFFFF] & 0x1F }

// newCPU places code at 0x0100, the post-boot PC.
func newCPU(code ...byte) (*CPU, *testMemory) {
	m := &testMemory{}
	copy(m.mem[0x0100:], code)
	return New(m, m), m
}

func mustStep(t *testing.T, c *CPU) int {
	t.Helper()
	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("step at %04X: %v", c.PC, err)
	}
	return cycles
}

func flags(c *CPU) string {
	b := []byte("----")
	for i, f := range []byte{FlagZ, FlagN, FlagH, FlagC} {
		if c.Flag(f) {
			b[i] = "ZNHC"[i]
		}
	}
	return string(b)
}
