// Command cpurunner runs a test ROM headless and watches the serial port
// for the result, the way blargg's test ROMs report.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/rlopez44/cboy-sub000/internal/emu"
	"github.com/rlopez44/cboy-sub000/internal/logger"
)

type CLIFlags struct {
	ROMPath   string
	Steps     int
	StartPC   int
	Trace     bool
	TraceFile string
	Until     string
	Auto      bool
	Timeout   time.Duration
	NoCheck   bool

	TraceOnFail  bool
	TraceWindow  int
	SerialWindow int

	LoadState string
	SaveState string
	Log       bool

	Stepper   bool
	Memviz    string
	Statsview string
}

func parseFlags() CLIFlags {
	var f CLIFlags
	flag.StringVar(&f.ROMPath, "rom", "", "path to ROM (.gb)")
	flag.IntVar(&f.Steps, "steps", 5_000_000, "max CPU steps to run")
	flag.IntVar(&f.StartPC, "pc", 0x0100, "initial PC value")
	flag.BoolVar(&f.Trace, "trace", false, "print a register dump before every instruction")
	flag.StringVar(&f.TraceFile, "traceFile", "", "write the trace to this file instead of stdout")
	flag.StringVar(&f.Until, "until", "Passed", "stop when serial output contains this substring (case-insensitive); empty to disable")
	flag.BoolVar(&f.Auto, "auto", false, "auto-detect 'Passed' or 'Failed N tests' in serial output and exit with code 0/1")
	flag.DurationVar(&f.Timeout, "timeout", 0, "optional wall-clock timeout (e.g. 30s, 2m); 0 disables")
	flag.BoolVar(&f.NoCheck, "nocheck", false, "accept ROMs with a bad header checksum")
	flag.BoolVar(&f.TraceOnFail, "traceOnFail", false, "when -auto detects failure or the CPU faults, print the recent trace window")
	flag.IntVar(&f.TraceWindow, "traceWindow", 200, "number of recent instructions kept for -traceOnFail")
	flag.IntVar(&f.SerialWindow, "serialWindow", 8192, "number of recent serial bytes to retain for diagnostics on fail")
	flag.StringVar(&f.LoadState, "loadState", "", "load a save state before running")
	flag.StringVar(&f.SaveState, "saveState", "", "write a save state when the run ends")
	flag.BoolVar(&f.Log, "log", false, "echo the emulator log to stderr")
	flag.BoolVar(&f.Stepper, "stepper", false, "single-step interactively on the terminal")
	flag.StringVar(&f.Memviz, "memviz", "", "write a Graphviz dot graph of the final CPU state to this path")
	flag.StringVar(&f.Statsview, "statsview", "", "serve runtime stats on this address (e.g. localhost:12600)")
	flag.Parse()
	return f
}

// exit codes
const (
	exitPass    = 0
	exitFail    = 1
	exitTimeout = 2
	exitFault   = 3
)

func main() {
	f := parseFlags()
	if f.ROMPath == "" {
		log.Fatal("-rom is required")
	}
	if f.Log {
		logger.SetEcho(os.Stderr)
	}
	if f.Statsview != "" {
		launchStatsview(f.Statsview)
	}

	cfg := emu.Defaults()
	cfg.BootPC = uint16(f.StartPC)
	cfg.SkipHeaderCheck = f.NoCheck

	// the trace ring and the -trace output are both fed from the trace writer
	ring := newTraceRing(f.TraceWindow)
	var traceOut io.Writer
	if f.Trace {
		traceOut = os.Stdout
		if f.TraceFile != "" {
			tf, err := os.Create(f.TraceFile)
			if err != nil {
				log.Fatalf("create trace file: %v", err)
			}
			defer tf.Close()
			traceOut = tf
		}
	}
	switch {
	case traceOut != nil && f.TraceOnFail:
		cfg.Trace, cfg.TraceWriter = true, io.MultiWriter(traceOut, ring)
	case traceOut != nil:
		cfg.Trace, cfg.TraceWriter = true, traceOut
	case f.TraceOnFail:
		cfg.Trace, cfg.TraceWriter = true, ring
	}

	m := emu.New(cfg)
	if err := m.LoadROMFromFile(f.ROMPath); err != nil {
		log.Fatalf("load rom: %v", err)
	}
	if h := m.Header(); h != nil {
		log.Printf("cartridge %s", h)
	}
	if f.LoadState != "" {
		if err := m.LoadStateFromFile(f.LoadState); err != nil {
			log.Fatalf("load state: %v", err)
		}
	}

	// Stream serial to stdout and capture in-memory for pattern detection
	var ser bytes.Buffer
	serRing := newByteRing(max(f.SerialWindow, 256))
	m.SetSerialWriter(io.MultiWriter(os.Stdout, &ser, serRing))

	r := runner{f: f, m: m, ser: &ser, serRing: serRing, traceRing: ring}
	code := r.run()

	if f.SaveState != "" {
		if err := m.SaveStateToFile(f.SaveState); err != nil {
			log.Printf("save state: %v", err)
		}
	}
	if f.Memviz != "" {
		if err := writeMemviz(m, f.Memviz); err != nil {
			log.Printf("memviz: %v", err)
		}
	}
	os.Exit(code)
}

type runner struct {
	f         CLIFlags
	m         *emu.Machine
	ser       *bytes.Buffer
	serRing   *byteRing
	traceRing *traceRing
	start     time.Time
}

func (r *runner) run() int {
	r.start = time.Now()
	var deadline time.Time
	if r.f.Timeout > 0 {
		deadline = r.start.Add(r.f.Timeout)
	}

	var st *stepper
	if r.f.Stepper {
		var err error
		if st, err = openStepper(os.Stdout); err != nil {
			log.Fatalf("stepper: %v", err)
		}
		defer st.Close()
	}

	for i := 0; i < r.f.Steps; i++ {
		if st != nil && !st.prompt(r.m) {
			r.done(i)
			return exitPass
		}
		if _, err := r.m.Step(); err != nil {
			fmt.Printf("\n%v\n", err)
			r.dumpDiagnostics(true)
			r.done(i)
			return exitFault
		}

		if r.f.Auto {
			switch v := verdict(r.ser.String()); v.result {
			case resultPass:
				fmt.Printf("\nDetected PASS in serial output.\n")
				v.printStage()
				r.done(i + 1)
				return exitPass
			case resultFail:
				fmt.Printf("\nDetected %s in serial output.\n", v.summary)
				v.printStage()
				r.dumpDiagnostics(r.f.TraceOnFail)
				r.done(i + 1)
				return exitFail
			}
		} else if r.f.Until != "" && containsFold(r.ser.String(), r.f.Until) {
			fmt.Printf("\nDetected '%s' in serial output.\n", r.f.Until)
			r.done(i + 1)
			return exitPass
		}

		if !deadline.IsZero() && time.Now().After(deadline) {
			fmt.Printf("\nTimeout after %s.\n", time.Since(r.start).Truncate(time.Millisecond))
			r.done(i + 1)
			return exitTimeout
		}
	}
	r.done(r.f.Steps)
	return exitPass
}

func (r *runner) done(steps int) {
	fmt.Printf("\nDone: steps=%d cycles~=%d elapsed=%s\n", steps, r.m.Cycles()*4, time.Since(r.start).Truncate(time.Millisecond))
}

func (r *runner) dumpDiagnostics(trace bool) {
	if trace && r.traceRing.Len() > 0 {
		fmt.Printf("\n--- recent trace (last %d instructions) ---\n", r.traceRing.Len())
		r.traceRing.WriteTo(os.Stdout)
		fmt.Printf("--- end trace ---\n")
	}
	if r.serRing.Len() > 0 {
		fmt.Printf("\n--- recent serial (last %d bytes) ---\n", r.serRing.Len())
		os.Stdout.Write(r.serRing.Bytes())
		fmt.Printf("\n--- end serial ---\n")
	}
	fmt.Printf("\n--- log ---\n")
	logger.Tail(os.Stdout, 20)
}

func launchStatsview(addr string) {
	go func() {
		viewer.SetConfiguration(viewer.WithAddr(addr))
		mgr := statsview.New()
		mgr.Start()
	}()
	log.Printf("stats server available at http://%s/debug/statsview", addr)
}

// writeMemviz dumps the CPU state struct as a dot graph.
func writeMemviz(m *emu.Machine, path string) error {
	if m.CPU() == nil {
		return errors.New("no CPU")
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	s := m.CPU().State()
	memviz.Map(out, &s)
	return nil
}
