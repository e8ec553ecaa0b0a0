package cart

// ROMOnly is a cartridge without a bank controller or external RAM.
type ROMOnly struct {
	rom [ROMWindow]byte
	n   int
}

// NewROMOnly copies rom into the fixed window. Bytes past the end of a short
// image read as 0xFF.
func NewROMOnly(rom []byte) *ROMOnly {
	c := &ROMOnly{}
	c.n = copy(c.rom[:], rom)
	for i := c.n; i < ROMWindow; i++ {
		c.rom[i] = 0xFF
	}
	return c
}

func (c *ROMOnly) Read(addr uint16) byte {
	if addr < ROMWindow {
		return c.rom[addr]
	}
	// no external RAM
	return 0xFF
}

// Write is a no-op: there is no controller to receive register writes.
func (c *ROMOnly) Write(addr uint16, value byte) {}

// Size returns the length of the loaded image.
func (c *ROMOnly) Size() int { return c.n }
