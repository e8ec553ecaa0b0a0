package ui

// Config contains window and run-loop settings for the debugger.
type Config struct {
	Title         string // window title
	Scale         int    // integer upscaling factor
	StepsPerFrame int    // instructions per update while running; 0 runs a full video frame
	StateFile     string // save state slot used by F5/F9
	MemAddr       uint16 // first address of the memory view
}

// Defaults fills missing fields with reasonable defaults.
func (c *Config) Defaults() {
	if c.Title == "" {
		c.Title = "gbdebug"
	}
	if c.Scale <= 0 {
		c.Scale = 2
	}
	if c.StepsPerFrame < 0 {
		c.StepsPerFrame = 0
	}
	if c.StateFile == "" {
		c.StateFile = "slot0.savestate"
	}
	if c.MemAddr == 0 {
		c.MemAddr = 0xC000
	}
}
