package cpu

// taken evaluates the optional branch condition in Op2. Unconditional forms
// are always taken.
func (c *CPU) taken(in *Instruction) (bool, error) {
	if !in.Conditional() {
		return true, nil
	}
	return c.condition(in.Op2)
}

func (c *CPU) jp(in *Instruction) (int, error) {
	if in.Op1.Kind == KindReg16 {
		// JP HL
		if in.Op1.Reg != RegHL {
			return 0, illegal(in.Op1)
		}
		c.PC = c.HL()
		return int(in.Duration), nil
	}
	addr, err := c.operand16(in.Op1)
	if err != nil {
		return 0, err
	}
	ok, err := c.taken(in)
	if err != nil {
		return 0, err
	}
	if !ok {
		return int(in.AltDuration), nil
	}
	c.PC = addr
	return int(in.Duration), nil
}

func (c *CPU) jr(in *Instruction) (int, error) {
	if in.Op1.Kind != KindSImm8 {
		return 0, illegal(in.Op1)
	}
	off := int8(c.fetch8())
	ok, err := c.taken(in)
	if err != nil {
		return 0, err
	}
	if !ok {
		return int(in.AltDuration), nil
	}
	c.PC = uint16(int32(c.PC) + int32(off))
	return int(in.Duration), nil
}

func (c *CPU) call(in *Instruction) (int, error) {
	addr, err := c.operand16(in.Op1)
	if err != nil {
		return 0, err
	}
	ok, err := c.taken(in)
	if err != nil {
		return 0, err
	}
	if !ok {
		return int(in.AltDuration), nil
	}
	c.push16(c.PC)
	c.PC = addr
	return int(in.Duration), nil
}

func (c *CPU) ret(in *Instruction) (int, error) {
	ok, err := c.taken(in)
	if err != nil {
		return 0, err
	}
	if !ok {
		return int(in.AltDuration), nil
	}
	c.PC = c.pop16()
	return int(in.Duration), nil
}

// reti returns and enables interrupts immediately, without EI's delay.
func (c *CPU) reti() {
	c.PC = c.pop16()
	c.ime = true
}

func (c *CPU) rst(in *Instruction) error {
	if in.Op1.Kind != KindVector {
		return illegal(in.Op1)
	}
	c.push16(c.PC)
	c.PC = in.Op1.N
	return nil
}
