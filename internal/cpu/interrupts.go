package cpu

// Interrupt request bits in IF and IE, highest priority first.
const (
	IntVBlank byte = 1 << 0
	IntSTAT   byte = 1 << 1
	IntTimer  byte = 1 << 2
	IntSerial byte = 1 << 3
	IntJoypad byte = 1 << 4

	intMask = 0x1F
)

// ServiceCycles is the cost of dispatching an interrupt.
const ServiceCycles = 5

// Vector returns the handler address for a single interrupt bit.
func Vector(bit byte) uint16 {
	for i := uint16(0); i < 5; i++ {
		if bit&(1<<i) != 0 {
			return 0x40 + i*8
		}
	}
	return 0
}

// pending returns the requested-and-enabled interrupts, regardless of IME.
func (c *CPU) pending() byte {
	return c.irq.IF() & c.irq.IE() & intMask
}

// serviceInterrupt dispatches the highest priority pending interrupt when
// IME is set. It returns the cycles spent, or 0 if nothing was serviced.
func (c *CPU) serviceInterrupt() int {
	if !c.ime {
		return 0
	}
	p := c.pending()
	if p == 0 {
		return 0
	}
	bit := p & -p // lowest set bit wins

	c.irq.SetIF(c.irq.IF() &^ bit & intMask)
	c.ime = false
	c.halted = false
	c.stopped = false
	ret := c.PC
	if c.haltBug {
		// EI;HALT with a request pending: return to the HALT itself
		c.haltBug = false
		ret--
	}
	c.push16(ret)
	c.PC = Vector(bit)
	return ServiceCycles
}

// halt enters HALT. With IME clear and an interrupt already pending the CPU
// does not halt; instead the next opcode fetch fails to advance PC.
func (c *CPU) halt() {
	if !c.ime && c.pending() != 0 {
		c.haltBug = true
		return
	}
	c.halted = true
}

// stop enters STOP mode. The byte after STOP is skipped and DIV is reset.
func (c *CPU) stop() {
	c.fetch8()
	c.write(0xFF04, 0)
	c.stopped = true
}

func (c *CPU) di() {
	c.ime = false
	c.imePending = false
}

func (c *CPU) ei() {
	if !c.ime {
		c.imePending = true
	}
}
