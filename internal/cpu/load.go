package cpu

// ld covers every LD and LDH form. Only LD HL,SP+e8 touches the flags.
func (c *CPU) ld(in *Instruction) error {
	dst, src := in.Op1, in.Op2

	switch {
	case dst.Kind == KindReg16 && src.Kind == KindSPOffset:
		c.SetHL(c.addSPe8(int8(c.fetch8())))

	case dst.Kind == KindReg16:
		v, err := c.operand16(src)
		if err != nil {
			return err
		}
		if !c.Set16(dst.Reg, v) {
			return illegal(dst)
		}

	case dst.Kind == KindPtrImm16 && src.Kind == KindReg16:
		// LD (a16),SP
		v, ok := c.Get16(src.Reg)
		if !ok {
			return illegal(src)
		}
		c.write16(c.fetch16(), v)

	default:
		v, err := c.operand8(src)
		if err != nil {
			return err
		}
		l, err := c.locate(dst)
		if err != nil {
			return err
		}
		c.store(l, v)
	}
	return nil
}

func (c *CPU) push(in *Instruction) error {
	v, err := c.operand16(in.Op1)
	if err != nil || in.Op1.Reg == RegSP {
		return illegal(in.Op1)
	}
	c.push16(v)
	return nil
}

// pop writes the popped word into a pair. POP AF keeps only the top nibble
// of F.
func (c *CPU) pop(in *Instruction) error {
	if in.Op1.Kind != KindReg16 || in.Op1.Reg == RegSP {
		return illegal(in.Op1)
	}
	c.Set16(in.Op1.Reg, c.pop16())
	return nil
}
