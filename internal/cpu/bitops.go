package cpu

// rotateA runs RLCA/RRCA/RLA/RRA. Unlike the CB forms these always clear Z.
func (c *CPU) rotateA(op Op) {
	var res byte
	var cy bool
	switch op {
	case OpRLCA:
		res, cy = c.A<<1|c.A>>7, c.A&0x80 != 0
	case OpRRCA:
		res, cy = c.A>>1|c.A<<7, c.A&0x01 != 0
	case OpRLA:
		res, cy = c.A<<1|c.carry(), c.A&0x80 != 0
	case OpRRA:
		res, cy = c.A>>1|c.carry()<<7, c.A&0x01 != 0
	}
	c.A = res
	c.SetFlags(false, false, false, cy)
}

// shift runs the CB rotate/shift/swap group on a register or (HL).
func (c *CPU) shift(in *Instruction) error {
	l, err := c.locate(in.Op1)
	if err != nil {
		return err
	}
	v := c.load(l)

	var res byte
	var cy bool
	switch in.Op {
	case OpRLC:
		res, cy = v<<1|v>>7, v&0x80 != 0
	case OpRRC:
		res, cy = v>>1|v<<7, v&0x01 != 0
	case OpRL:
		res, cy = v<<1|c.carry(), v&0x80 != 0
	case OpRR:
		res, cy = v>>1|c.carry()<<7, v&0x01 != 0
	case OpSLA:
		res, cy = v<<1, v&0x80 != 0
	case OpSRA:
		res, cy = v>>1|v&0x80, v&0x01 != 0
	case OpSWAP:
		res = v<<4 | v>>4
	case OpSRL:
		res, cy = v>>1, v&0x01 != 0
	default:
		return illegal(in.Op1)
	}
	c.store(l, res)
	c.SetFlags(res == 0, false, false, cy)
	return nil
}

// bit tests one bit: Z set when the bit is clear, N=0, H=1, C unchanged.
func (c *CPU) bit(in *Instruction) error {
	if in.Op1.Kind != KindBit {
		return illegal(in.Op1)
	}
	v, err := c.operand8(in.Op2)
	if err != nil {
		return err
	}
	c.SetFlags(v&(1<<in.Op1.N) == 0, false, true, c.Flag(FlagC))
	return nil
}

func (c *CPU) resSet(in *Instruction) error {
	if in.Op1.Kind != KindBit {
		return illegal(in.Op1)
	}
	l, err := c.locate(in.Op2)
	if err != nil {
		return err
	}
	mask := byte(1) << in.Op1.N
	v := c.load(l)
	if in.Op == OpSET {
		v |= mask
	} else {
		v &^= mask
	}
	c.store(l, v)
	return nil
}
