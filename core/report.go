package core

import (
	"fmt"
	"os"
	"sync/atomic"
)

// Reporter receives warnings and errors raised by the logging
// facility itself, e.g. a message with illegal placeholder arguments
// or a failing sink. It must never feed back into the log pipeline.
type Reporter func(level Level, text string)

var reporter atomic.Value // Reporter

func init() {
	reporter.Store(Reporter(stderrReporter))
}

func stderrReporter(level Level, text string) {
	fmt.Fprintf(os.Stderr, "LOGGER %s: %s%s", level, text, NewLine)
}

// SetReporter replaces the internal reporter. Passing nil restores
// the default reporter writing to stderr. Tests use this to intercept
// internal warnings.
func SetReporter(r Reporter) {
	if r == nil {
		r = stderrReporter
	}
	reporter.Store(r)
}

// ReportWarningf reports an internal warning
func ReportWarningf(format string, args ...interface{}) {
	reporter.Load().(Reporter)(WarningLevel, fmt.Sprintf(format, args...))
}

// ReportErrorf reports an internal error
func ReportErrorf(format string, args ...interface{}) {
	reporter.Load().(Reporter)(ErrorLevel, fmt.Sprintf(format, args...))
}
