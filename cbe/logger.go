package cbe

// Logger is the optional logging seam accepted by the envelope package
// and cmd/cbedump. It is satisfied trivially by *log.Logger (via a small
// adapter) or by any structured logger that exposes Debugf/Warnf.
//
// The encoder and decoder state machines never take a Logger: they stay
// allocation-free and dependency-free on the hot path. Logging only
// happens around the edges, where a wrap/unwrap or CLI decision is worth
// recording.
type Logger interface {
	Debugf(format string, args ...any)
	Warnf(format string, args ...any)
}

// StdLogger adapts a *log.Logger (or anything with a compatible Printf)
// to the Logger interface.
type StdLogger struct {
	Printf func(format string, args ...any)
}

// Debugf logs a debug-level message via l.Printf.
func (l StdLogger) Debugf(format string, args ...any) {
	if l.Printf != nil {
		l.Printf("DEBUG "+format, args...)
	}
}

// Warnf logs a warning-level message via l.Printf.
func (l StdLogger) Warnf(format string, args ...any) {
	if l.Printf != nil {
		l.Printf("WARN "+format, args...)
	}
}

// NopLogger discards everything. It is the default used when no Logger
// option is given.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Warnf(string, ...any)  {}
