package ui

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/rlopez44/cboy-sub000/internal/emu"
	"github.com/rlopez44/cboy-sub000/internal/logger"
)

const (
	screenW    = 480
	screenH    = 400
	lineHeight = 14
)

var background = color.RGBA{0x10, 0x18, 0x20, 0xFF}

// App is an ebiten debugger window over a Machine: register and timer
// state, disassembly around PC, a memory view, serial output and the log.
// All Machine calls happen on ebiten's update goroutine.
type App struct {
	cfg     Config
	m       *emu.Machine
	serial  bytes.Buffer
	paused  bool
	memAddr uint16
	status  string
}

func NewApp(cfg Config, m *emu.Machine) *App {
	cfg.Defaults()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(screenW*cfg.Scale, screenH*cfg.Scale)
	a := &App{cfg: cfg, m: m, paused: true, memAddr: cfg.MemAddr}
	m.SetSerialWriter(&a.serial)
	return a
}

func (a *App) Run() error { return ebiten.RunGame(a) }

// Resume starts execution; a new App begins paused.
func (a *App) Resume() { a.paused = false }

func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// Keyboard → Game Boy buttons
	a.m.SetButtons(emu.Buttons{
		Right:  ebiten.IsKeyPressed(ebiten.KeyRight),
		Left:   ebiten.IsKeyPressed(ebiten.KeyLeft),
		Up:     ebiten.IsKeyPressed(ebiten.KeyUp),
		Down:   ebiten.IsKeyPressed(ebiten.KeyDown),
		A:      ebiten.IsKeyPressed(ebiten.KeyZ),
		B:      ebiten.IsKeyPressed(ebiten.KeyX),
		Start:  ebiten.IsKeyPressed(ebiten.KeyEnter),
		Select: ebiten.IsKeyPressed(ebiten.KeyShiftRight),
	})

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		a.paused = !a.paused
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		a.m.Reset()
		a.serial.Reset()
		a.status = "reset"
	case inpututil.IsKeyJustPressed(ebiten.KeyF5):
		a.report("saved "+a.cfg.StateFile, a.m.SaveStateToFile(a.cfg.StateFile))
	case inpututil.IsKeyJustPressed(ebiten.KeyF9):
		a.report("loaded "+a.cfg.StateFile, a.m.LoadStateFromFile(a.cfg.StateFile))
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		a.memAddr -= memRows * 8
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		a.memAddr += memRows * 8
	}

	if a.paused {
		// single instruction (N) or single frame (F)
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyN):
			_, err := a.m.Step()
			a.check(err)
		case inpututil.IsKeyJustPressed(ebiten.KeyF):
			a.check(a.m.StepFrame())
		}
		return nil
	}

	if a.cfg.StepsPerFrame > 0 {
		_, err := a.m.RunSteps(a.cfg.StepsPerFrame)
		a.check(err)
	} else {
		a.check(a.m.StepFrame())
	}
	return nil
}

// check pauses on a fault. The machine has already logged it.
func (a *App) check(err error) {
	if err == nil {
		return
	}
	a.paused = true
	a.status = err.Error()
}

func (a *App) report(ok string, err error) {
	if err != nil {
		a.status = err.Error()
		logger.Log(logger.Allow, "ui", err)
		return
	}
	a.status = ok
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	run := "RUNNING"
	if a.paused {
		run = "PAUSED  N=step F=frame"
	}
	header := fmt.Sprintf("%s  Space=run/pause R=reset F5/F9=state", run)
	ebitenutil.DebugPrintAt(screen, header, 8, 4)

	y := 4 + lineHeight*2
	regs := registerLines(a.m)
	for i, s := range regs {
		ebitenutil.DebugPrintAt(screen, s, 8, y+i*lineHeight)
	}
	for i, s := range disasmView(a.m, disasmLines) {
		ebitenutil.DebugPrintAt(screen, s, 200, y+i*lineHeight)
	}
	for i, s := range memoryView(a.m, a.memAddr, memRows) {
		ebitenutil.DebugPrintAt(screen, s, 8, y+(len(regs)+1+i)*lineHeight)
	}

	y += (disasmLines + 1) * lineHeight
	ebitenutil.DebugPrintAt(screen, "serial: "+serialTail(a.serial.String(), 70), 8, y)
	if a.status != "" {
		ebitenutil.DebugPrintAt(screen, a.status, 8, y+lineHeight)
	}
	for i, s := range logView(logLines) {
		ebitenutil.DebugPrintAt(screen, s, 8, y+(i+2)*lineHeight)
	}
}

func (a *App) Layout(outW, outH int) (int, int) { return screenW, screenH }

// ErrClosed reports whether err is the normal end of an App run.
func ErrClosed(err error) bool { return errors.Is(err, ebiten.Termination) }
