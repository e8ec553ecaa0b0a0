// Command gbdebug opens a ROM in the debugger window.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/rlopez44/cboy-sub000/internal/emu"
	"github.com/rlopez44/cboy-sub000/internal/logger"
	"github.com/rlopez44/cboy-sub000/internal/ui"
)

type CLIFlags struct {
	ROMPath       string
	Scale         int
	Title         string
	Trace         bool
	StepsPerFrame int
	StateFile     string
	MemAddr       uint
	NoCheck       bool
	Run           bool
}

func parseFlags() CLIFlags {
	var f CLIFlags
	flag.StringVar(&f.ROMPath, "rom", "", "path to ROM (.gb)")
	flag.IntVar(&f.Scale, "scale", 2, "window scale")
	flag.StringVar(&f.Title, "title", "gbdebug", "window title")
	flag.BoolVar(&f.Trace, "trace", false, "log a register dump before every instruction")
	flag.IntVar(&f.StepsPerFrame, "spf", 0, "instructions per update while running (0 = one video frame)")
	flag.StringVar(&f.StateFile, "state", "", "save state file for F5/F9 (default slot0.savestate)")
	flag.UintVar(&f.MemAddr, "mem", 0xC000, "first address of the memory view")
	flag.BoolVar(&f.NoCheck, "nocheck", false, "accept ROMs with a bad header checksum")
	flag.BoolVar(&f.Run, "run", false, "start running instead of paused")
	flag.Parse()
	return f
}

func main() {
	f := parseFlags()
	if f.ROMPath == "" {
		log.Fatal("-rom is required")
	}

	cfg := emu.Defaults()
	cfg.Trace = f.Trace
	cfg.SkipHeaderCheck = f.NoCheck
	m := emu.New(cfg)
	if err := m.LoadROMFromFile(f.ROMPath); err != nil {
		log.Fatalf("load rom: %v", err)
	}
	if h := m.Header(); h != nil {
		log.Printf("cartridge %s", h)
	}

	app := ui.NewApp(ui.Config{
		Title:         f.Title,
		Scale:         f.Scale,
		StepsPerFrame: f.StepsPerFrame,
		StateFile:     f.StateFile,
		MemAddr:       uint16(f.MemAddr),
	}, m)
	if f.Run {
		app.Resume()
	}
	if err := app.Run(); err != nil && !ui.ErrClosed(err) {
		log.Fatalf("ebiten: %v", err)
	}
	// leave the log behind for post-mortems of faults
	logger.Tail(os.Stderr, 20)
}
