package emu

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"

	"github.com/rlopez44/cboy-sub000/internal/bus"
	"github.com/rlopez44/cboy-sub000/internal/cpu"
	"github.com/rlopez44/cboy-sub000/internal/logger"
)

// machineState is the gob payload of a save state. The cartridge is not
// included; a state only loads back onto the same ROM.
type machineState struct {
	Title  string
	CPU    cpu.State
	Bus    bus.State
	Steps  uint64
	Cycles uint64
}

func (m *Machine) title() string {
	if m.header == nil {
		return ""
	}
	return m.header.Title
}

func (m *Machine) SaveState() ([]byte, error) {
	if m.cpu == nil {
		return nil, ErrNoROM
	}
	s := machineState{
		Title:  m.title(),
		CPU:    m.cpu.State(),
		Bus:    m.bus.State(),
		Steps:  m.steps,
		Cycles: m.cycles,
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return buf.Bytes(), nil
}

// LoadState restores a state made by SaveState. It clears a CPU fault.
func (m *Machine) LoadState(data []byte) error {
	if m.cpu == nil {
		return ErrNoROM
	}
	var s machineState
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
		return fmt.Errorf("decode state: %w", err)
	}
	if s.Title != m.title() {
		return fmt.Errorf("state is for %q, loaded ROM is %q", s.Title, m.title())
	}
	m.cpu.Restore(s.CPU)
	m.bus.Restore(s.Bus)
	m.steps, m.cycles = s.Steps, s.Cycles
	logger.Logf(logger.Allow, "emu", "state loaded at step %d", m.steps)
	return nil
}

func (m *Machine) SaveStateToFile(path string) error {
	data, err := m.SaveState()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	logger.Logf(logger.Allow, "emu", "state saved to %s", path)
	return nil
}

func (m *Machine) LoadStateFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return m.LoadState(data)
}
