package cpu

func add8(a, b byte) (res byte, z, n, h, cy bool) {
	r := uint16(a) + uint16(b)
	res = byte(r)
	return res, res == 0, false, (a&0x0F)+(b&0x0F) > 0x0F, r > 0xFF
}

func adc8(a, b, carry byte) (res byte, z, n, h, cy bool) {
	r := uint16(a) + uint16(b) + uint16(carry)
	res = byte(r)
	return res, res == 0, false, (a&0x0F)+(b&0x0F)+carry > 0x0F, r > 0xFF
}

func sub8(a, b byte) (res byte, z, n, h, cy bool) {
	res = a - b
	return res, res == 0, true, a&0x0F < b&0x0F, a < b
}

func sbc8(a, b, carry byte) (res byte, z, n, h, cy bool) {
	res = a - b - carry
	return res, res == 0, true, a&0x0F < (b&0x0F)+carry, uint16(a) < uint16(b)+uint16(carry)
}

func and8(a, b byte) (res byte, z, n, h, cy bool) {
	res = a & b
	return res, res == 0, false, true, false
}

func xor8(a, b byte) (res byte, z, n, h, cy bool) {
	res = a ^ b
	return res, res == 0, false, false, false
}

func or8(a, b byte) (res byte, z, n, h, cy bool) {
	res = a | b
	return res, res == 0, false, false, false
}

// alu8 runs the 8-bit accumulator operations: ADD/ADC/SUB/SBC/AND/XOR/OR/CP.
func (c *CPU) alu8(in *Instruction) error {
	if in.Op1.Kind != KindReg8 || in.Op1.Reg != RegA {
		return illegal(in.Op1)
	}
	v, err := c.operand8(in.Op2)
	if err != nil {
		return err
	}

	var (
		res           byte
		z, n, h, cy   bool
		discardResult bool
	)
	switch in.Op {
	case OpADD:
		res, z, n, h, cy = add8(c.A, v)
	case OpADC:
		res, z, n, h, cy = adc8(c.A, v, c.carry())
	case OpSUB:
		res, z, n, h, cy = sub8(c.A, v)
	case OpSBC:
		res, z, n, h, cy = sbc8(c.A, v, c.carry())
	case OpAND:
		res, z, n, h, cy = and8(c.A, v)
	case OpXOR:
		res, z, n, h, cy = xor8(c.A, v)
	case OpOR:
		res, z, n, h, cy = or8(c.A, v)
	case OpCP:
		res, z, n, h, cy = sub8(c.A, v)
		discardResult = true
	default:
		return illegal(in.Op1)
	}
	if !discardResult {
		c.A = res
	}
	c.SetFlags(z, n, h, cy)
	return nil
}

// add covers ADD A,x, ADD HL,rr and ADD SP,e8.
func (c *CPU) add(in *Instruction) error {
	if in.Op1.Kind != KindReg16 {
		return c.alu8(in)
	}
	switch {
	case in.Op1.Reg == RegHL && in.Op2.Kind == KindReg16:
		v, err := c.operand16(in.Op2)
		if err != nil {
			return err
		}
		hl := c.HL()
		r := uint32(hl) + uint32(v)
		c.SetFlag(FlagN, false)
		c.SetFlag(FlagH, (hl&0x0FFF)+(v&0x0FFF) > 0x0FFF)
		c.SetFlag(FlagC, r > 0xFFFF)
		c.SetHL(uint16(r))
	case in.Op1.Reg == RegSP && in.Op2.Kind == KindSImm8:
		c.SP = c.addSPe8(int8(c.fetch8()))
	default:
		return illegal(in.Op2)
	}
	return nil
}

// addSPe8 returns SP+e and sets flags for ADD SP,e8 and LD HL,SP+e8: Z=0,
// N=0, and H/C from the low byte of SP. Subtracting cannot overflow, so H/C
// are only evaluated for a non-negative offset.
func (c *CPU) addSPe8(e int8) uint16 {
	var h, cy bool
	if e >= 0 {
		lo := byte(c.SP)
		h = (lo&0x0F)+(byte(e)&0x0F) > 0x0F
		cy = uint16(lo)+uint16(byte(e)) > 0xFF
	}
	c.SetFlags(false, false, h, cy)
	return uint16(int32(c.SP) + int32(e))
}

func (c *CPU) inc(in *Instruction) error {
	if in.Op1.Kind == KindReg16 {
		v, err := c.operand16(in.Op1)
		if err != nil {
			return err
		}
		c.Set16(in.Op1.Reg, v+1)
		return nil
	}
	l, err := c.locate(in.Op1)
	if err != nil {
		return err
	}
	old := c.load(l)
	v := old + 1
	c.store(l, v)
	c.SetFlags(v == 0, false, old&0x0F == 0x0F, c.Flag(FlagC))
	return nil
}

func (c *CPU) dec(in *Instruction) error {
	if in.Op1.Kind == KindReg16 {
		v, err := c.operand16(in.Op1)
		if err != nil {
			return err
		}
		c.Set16(in.Op1.Reg, v-1)
		return nil
	}
	l, err := c.locate(in.Op1)
	if err != nil {
		return err
	}
	old := c.load(l)
	v := old - 1
	c.store(l, v)
	c.SetFlags(v == 0, true, old&0x0F == 0x00, c.Flag(FlagC))
	return nil
}

// daa adjusts A to packed BCD after an ADD/ADC (N=0) or SUB/SBC (N=1).
func (c *CPU) daa() {
	a := c.A
	cy := c.Flag(FlagC)
	if !c.Flag(FlagN) {
		if cy || a > 0x99 {
			a += 0x60
			cy = true
		}
		if c.Flag(FlagH) || a&0x0F > 0x09 {
			a += 0x06
		}
	} else {
		if cy {
			a -= 0x60
		}
		if c.Flag(FlagH) {
			a -= 0x06
		}
	}
	c.A = a
	c.SetFlags(a == 0, c.Flag(FlagN), false, cy)
}

func (c *CPU) cpl() {
	c.A ^= 0xFF
	c.SetFlag(FlagN, true)
	c.SetFlag(FlagH, true)
}

func (c *CPU) scf() {
	c.SetFlag(FlagN, false)
	c.SetFlag(FlagH, false)
	c.SetFlag(FlagC, true)
}

func (c *CPU) ccf() {
	c.SetFlag(FlagN, false)
	c.SetFlag(FlagH, false)
	c.SetFlag(FlagC, !c.Flag(FlagC))
}
