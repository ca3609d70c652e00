package logger

import (
	"sync"
	"sync/atomic"

	"golang.org/x/text/language"

	"github.com/picolog/picolog/core"
	"github.com/picolog/picolog/format"
	"github.com/picolog/picolog/message"
	"github.com/picolog/picolog/stacktrace"
	"github.com/picolog/picolog/writer"
)

// config is one immutable snapshot of the process-wide logger
// configuration. Every log call loads exactly one snapshot and uses
// it for the whole call; setters publish a fresh snapshot, so a
// reconfiguration never tears a call in flight.
type config struct {
	level         core.Level
	writer        writer.Writer
	pattern       string
	tokens        []format.Token
	locale        language.Tag
	formatter     *message.Formatter
	maxTraceDepth int
}

var (
	// configMu serializes setters; readers go through current only.
	configMu sync.Mutex
	current  atomic.Pointer[config]
)

func init() {
	current.Store(&config{
		level:         core.InfoLevel,
		writer:        writer.NewConsole(writer.ConsoleConfig{}),
		pattern:       format.DefaultPattern,
		tokens:        format.Parse(format.DefaultPattern),
		locale:        language.English,
		formatter:     message.NewFormatter(language.English),
		maxTraceDepth: stacktrace.DefaultLimit,
	})
}

func update(mutate func(*config)) {
	configMu.Lock()
	defer configMu.Unlock()
	next := *current.Load()
	mutate(&next)
	current.Store(&next)
}

// SetWriter registers the sink receiving rendered entries. A nil
// writer disables all output. Calls already in flight finish with the
// writer they observed at call start.
func SetWriter(w writer.Writer) {
	update(func(c *config) { c.writer = w })
}

// SetLevel changes the severity threshold. Only entries at the
// threshold level or above are output.
func SetLevel(level core.Level) {
	update(func(c *config) { c.level = level })
}

// Level returns the current severity threshold
func Level() core.Level {
	return current.Load().level
}

// SetPattern changes the layout pattern for log entries. The pattern
// is compiled once; an empty string resets to the default
// "{date} [{thread}] {method}\n{level}: {message}".
func SetPattern(pattern string) {
	if pattern == "" {
		pattern = format.DefaultPattern
	}
	tokens := format.Parse(pattern)
	update(func(c *config) {
		c.pattern = pattern
		c.tokens = tokens
	})
}

// Pattern returns the current layout pattern
func Pattern() string {
	return current.Load().pattern
}

// SetLocale changes the locale used for number and choice rendering
// in message templates.
func SetLocale(locale language.Tag) {
	formatter := message.NewFormatter(locale)
	update(func(c *config) {
		c.locale = locale
		c.formatter = formatter
	})
}

// Locale returns the current locale
func Locale() language.Tag {
	return current.Load().locale
}

// SetMaxStackTraceDepth limits the stack frames printed per rendered
// error (default 40). Zero disables frames entirely, a negative value
// removes the limit.
func SetMaxStackTraceDepth(depth int) {
	if depth < 0 {
		depth = stacktrace.Unlimited
	}
	update(func(c *config) { c.maxTraceDepth = depth })
}

// MaxStackTraceDepth returns the current stack frame limit
func MaxStackTraceDepth() int {
	return current.Load().maxTraceDepth
}

// Close closes the configured writer, if any
func Close() error {
	if w := current.Load().writer; w != nil {
		return w.Close()
	}
	return nil
}
