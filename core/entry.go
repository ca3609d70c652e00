package core

import (
	"bytes"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

// NewLine is the platform line terminator appended to every rendered entry.
var NewLine = "\n"

func init() {
	if runtime.GOOS == "windows" {
		NewLine = "\r\n"
	}
}

// Entry holds the context of a single log call while it is being
// rendered. It is created per call and discarded after the sink
// returns; it is never shared between calls.
type Entry struct {
	Time    time.Time
	Level   Level
	Thread  string
	Method  string
	Message string
	// HasMessage distinguishes an empty resolved message from an
	// error-only entry without any message text.
	HasMessage bool
	Err        error
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return new(Entry)
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	*e = Entry{}
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.Err = nil
	e.Message = ""
	entryPool.Put(e)
}

// CallerInfo contains information about the caller
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// GetCaller retrieves caller information
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  funcName,
		Defined:   true,
	}
}

// MethodName returns the caller identifier rendered by the {method}
// placeholder, e.g. "main.main()".
func (c CallerInfo) MethodName() string {
	if !c.Defined || c.Function == "" {
		return "<unknown>()"
	}
	return c.Function + "()"
}

// GoroutineName returns an identifier for the calling goroutine,
// e.g. "goroutine-1". Go does not name goroutines, so the numeric id
// from the runtime stack header is used instead.
func GoroutineName() string {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	// First line reads "goroutine 123 [running]:".
	fields := bytes.Fields(buf[:n])
	if len(fields) >= 2 {
		return "goroutine-" + string(fields[1])
	}
	return "goroutine"
}
