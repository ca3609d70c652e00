package logger

import (
	"time"

	"github.com/pkg/errors"

	"github.com/picolog/picolog/core"
	"github.com/picolog/picolog/format"
	"github.com/picolog/picolog/message"
)

// Supplier is a deferred argument for message templates. It is
// evaluated at most once, and never when the call is below the
// severity threshold.
type Supplier = message.Supplier

// callerSkip is the number of frames between core.GetCaller and the
// user call site: GetCaller, dispatch and the public entry function.
const callerSkip = 3

// Trace creates a trace log entry
func Trace(msg string, args ...interface{}) {
	dispatch(core.TraceLevel, nil, msg, args)
}

// TraceErr creates a trace log entry with an error. An empty message
// logs the error chain alone.
func TraceErr(err error, msg string, args ...interface{}) {
	dispatch(core.TraceLevel, err, msg, args)
}

// Debug creates a debug log entry
func Debug(msg string, args ...interface{}) {
	dispatch(core.DebugLevel, nil, msg, args)
}

// DebugErr creates a debug log entry with an error
func DebugErr(err error, msg string, args ...interface{}) {
	dispatch(core.DebugLevel, err, msg, args)
}

// Info creates an info log entry
func Info(msg string, args ...interface{}) {
	dispatch(core.InfoLevel, nil, msg, args)
}

// InfoErr creates an info log entry with an error
func InfoErr(err error, msg string, args ...interface{}) {
	dispatch(core.InfoLevel, err, msg, args)
}

// Warning creates a warning log entry
func Warning(msg string, args ...interface{}) {
	dispatch(core.WarningLevel, nil, msg, args)
}

// WarningErr creates a warning log entry with an error
func WarningErr(err error, msg string, args ...interface{}) {
	dispatch(core.WarningLevel, err, msg, args)
}

// Error creates an error log entry
func Error(msg string, args ...interface{}) {
	dispatch(core.ErrorLevel, nil, msg, args)
}

// ErrorErr creates an error log entry with an error
func ErrorErr(err error, msg string, args ...interface{}) {
	dispatch(core.ErrorLevel, err, msg, args)
}

// dispatch gates a call by severity, captures the call context and
// hands it to emit. Below the threshold, or without a writer, the
// call is a no-op and no argument is ever evaluated.
func dispatch(level core.Level, err error, msg string, args []interface{}) {
	cfg := current.Load()
	if cfg.writer == nil || level < cfg.level {
		return
	}
	method := core.GetCaller(callerSkip).MethodName()
	emit(cfg, level, err, msg, args, false, method, false)
}

// emit renders and writes one entry. The whole enabled path runs
// under a recover so that neither a formatting panic nor a sink
// failure ever reaches the caller; both degrade to a single fallback
// ERROR entry through the same pipeline. The fallback itself never
// recurses: its failures go to the internal reporter and are dropped.
func emit(cfg *config, level core.Level, err error, msg string, args []interface{}, preformatted bool, method string, fallback bool) {
	defer func() {
		if r := recover(); r != nil {
			fail(cfg, fallback, method, errors.Errorf("panic while logging: %v", r))
		}
	}()

	entry := core.GetEntry()
	defer core.PutEntry(entry)
	entry.Time = time.Now()
	entry.Level = level
	entry.Thread = core.GoroutineName()
	entry.Method = method
	entry.Err = err
	if msg != "" {
		entry.HasMessage = true
		if preformatted {
			entry.Message = msg
		} else {
			entry.Message = cfg.formatter.Format(msg, args)
		}
	}

	text := format.Render(cfg.tokens, entry, cfg.maxTraceDepth)
	if writeErr := cfg.writer.Write(level, text); writeErr != nil {
		fail(cfg, fallback, method, writeErr)
	}
}

// fail reports a failure inside the enabled path: once through the
// pipeline as an ERROR entry, and on repeated failure through the
// internal reporter only.
func fail(cfg *config, fallback bool, method string, err error) {
	if fallback {
		core.ReportErrorf("could not create log entry: %v", err)
		return
	}
	emit(cfg, core.ErrorLevel, err, "could not create log entry", nil, true, method, true)
}
