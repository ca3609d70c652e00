package writer

import (
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/picolog/picolog/core"
)

// Writer is a sink for rendered log entries
type Writer interface {
	// Write outputs one rendered entry
	Write(level core.Level, entry string) error

	// Close closes the writer and releases resources
	Close() error
}

// Factory constructs a writer from the argument part of a writer
// specification string.
type Factory func(arg string) (Writer, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// Register makes a writer kind available to New. Host applications
// register their own kinds at startup; "console" and "file" are
// built in.
func Register(kind string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[kind] = factory
}

// New constructs a writer from a specification string of the form
// "kind" or "kind:argument", e.g. "console" or "file:app.log". The
// kind "null" yields a nil writer, which disables all output.
func New(spec string) (Writer, error) {
	kind := spec
	arg := ""
	if i := strings.IndexByte(spec, ':'); i >= 0 {
		kind = spec[:i]
		arg = spec[i+1:]
	}
	if kind == "null" {
		return nil, nil
	}

	registryMu.RLock()
	factory, ok := registry[kind]
	registryMu.RUnlock()
	if !ok {
		return nil, errors.Errorf("unknown writer %q", kind)
	}
	return factory(arg)
}

func init() {
	Register("console", func(string) (Writer, error) {
		return NewConsole(ConsoleConfig{}), nil
	})
	Register("file", func(arg string) (Writer, error) {
		return NewFile(FileConfig{Filename: arg})
	})
}
