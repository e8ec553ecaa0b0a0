package emu

import "io"

// Config contains settings that affect emulation behavior.
type Config struct {
	Trace           bool      // log a register dump before every instruction
	TraceWriter     io.Writer // also write the dumps here, one per line
	BootPC          uint16    // PC after reset; 0 keeps the post-boot 0x0100
	SkipHeaderCheck bool      // accept images with a bad or missing header
}

func Defaults() Config {
	return Config{BootPC: 0x0100}
}
