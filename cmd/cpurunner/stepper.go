package main

import (
	"fmt"
	"io"

	"github.com/pkg/term"

	"github.com/rlopez44/cboy-sub000/internal/disasm"
	"github.com/rlopez44/cboy-sub000/internal/emu"
)

// stepper reads single keys from the controlling terminal in raw mode.
type stepper struct {
	t   *term.Term
	out io.Writer
	// run without prompting once the user asks to continue
	free bool
}

func openStepper(out io.Writer) (*stepper, error) {
	t, err := term.Open("/dev/tty", term.RawMode)
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	s := &stepper{t: t, out: out}
	s.printf("stepper: space/enter=step  c=continue  q=quit\r\n")
	return s, nil
}

func (s *stepper) Close() error {
	if err := s.t.Restore(); err != nil {
		return err
	}
	return s.t.Close()
}

// raw mode turns off output processing, so every line ends in \r\n
func (s *stepper) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// prompt shows the next instruction and waits for a key. It returns false
// when the user quits.
func (s *stepper) prompt(m *emu.Machine) bool {
	if s.free {
		return true
	}
	c := m.CPU()
	s.printf("%s\r\n  %s\r\n", disasm.Decode(m.Bus(), c.PC), c.Dump())

	key := make([]byte, 1)
	for {
		if _, err := s.t.Read(key); err != nil {
			return false
		}
		switch key[0] {
		case ' ', '\r', '\n', 's':
			return true
		case 'c':
			s.free = true
			return true
		case 'q', 3: // ctrl-c is not a signal in raw mode
			return false
		}
	}
}
