package logger

// Permission decides whether a caller may add entries right now. The
// emulator uses it to switch per-instruction tracing on and off.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool { return true }

// Allow always permits logging.
var Allow Permission = allow{}
