package cpu

import (
	"errors"
	"fmt"
)

var (
	// ErrUnusedOpcode is returned when the fetched opcode has no defined
	// instruction (0xD3, 0xDB, ...). It means a corrupt ROM or a runaway PC.
	ErrUnusedOpcode = errors.New("unused opcode")

	// ErrIllegalOperand means a handler was given an operand kind its
	// descriptor should never produce. It indicates a table bug.
	ErrIllegalOperand = errors.New("illegal operand")
)

// Fault is a fatal condition raised by Step. Once a fault has been returned
// the CPU refuses to execute further and keeps returning the same fault.
type Fault struct {
	Err    error
	PC     uint16 // address of the faulting opcode
	Slot   uint16 // table slot (0x1xx for CB-prefixed)
	Instr  string
	Detail string
}

func (f *Fault) Error() string {
	s := fmt.Sprintf("%v at %04X (slot %03X %s)", f.Err, f.PC, f.Slot, f.Instr)
	if f.Detail != "" {
		s += ": " + f.Detail
	}
	return s
}

func (f *Fault) Unwrap() error { return f.Err }

// operandError reports the operand a handler could not use.
type operandError struct {
	op Operand
}

func illegal(o Operand) error { return &operandError{op: o} }

func (e *operandError) detail() string {
	return fmt.Sprintf("operand kind %d %q", e.op.Kind, e.op.String())
}

func (e *operandError) Error() string { return ErrIllegalOperand.Error() + ": " + e.detail() }

func (e *operandError) Unwrap() error { return ErrIllegalOperand }

// newFault builds the fault for err raised while executing in at pc.
func newFault(err error, pc, slot uint16, in *Instruction) *Fault {
	f := &Fault{Err: err, PC: pc, Slot: slot, Instr: in.String()}
	var oe *operandError
	if errors.As(err, &oe) {
		f.Err = ErrIllegalOperand
		f.Detail = oe.detail()
	}
	return f
}
