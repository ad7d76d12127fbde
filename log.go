package aes128

import (
	"os"
	"strings"

	"github.com/btcsuite/btclog/v2"
	"github.com/davecgh/go-spew/spew"
)

// Subsystem defines the logging code for this package.
const Subsystem = "AES1"

// debugEnv turns on trace output to stdout when set to "1".
const debugEnv = "AES128_DEBUG"

// log is a logger that is initialized with no output filters. This means the
// package will not perform any logging by default until the caller requests
// it.
var log btclog.Logger

// The default amount of logging is none, unless AES128_DEBUG=1.
func init() {
	if os.Getenv(debugEnv) == "1" {
		logger := btclog.NewSLogger(btclog.NewDefaultHandler(os.Stdout))
		logger.SetLevel(btclog.LevelTrace)
		UseLogger(logger)
		return
	}

	DisableLog()
}

// DisableLog disables all library log output. Logging output is disabled by
// default until UseLogger is called.
func DisableLog() {
	UseLogger(btclog.Disabled)
}

// UseLogger uses a specified Logger to output package logging info.
func UseLogger(logger btclog.Logger) {
	log = logger
}

// logClosure is used to provide a closure over expensive logging operations
// so they don't have to be performed when the logging level doesn't warrant
// it.
type logClosure func() string

// String invokes the underlying function and returns the result.
func (c logClosure) String() string {
	return c()
}

// newLogClosure returns a new closure over a function that returns a string
// which itself provides a Stringer interface so that it can be used with the
// logging system.
func newLogClosure(c func() string) logClosure {
	return logClosure(c)
}

// spewState dumps a state matrix for trace output.
func spewState(s State) logClosure {
	return newLogClosure(func() string {
		return strings.TrimRight(spew.Sdump(s), "\n")
	})
}

// debugEnabled reports whether key-schedule debug output would be written.
func debugEnabled() bool {
	return log.Level() <= btclog.LevelDebug
}

// traceEnabled reports whether round-level tracing would produce output.
func traceEnabled() bool {
	return log.Level() <= btclog.LevelTrace
}
