package logger

import (
	"context"
	"log/slog"
	"runtime"
	"strings"

	"github.com/picolog/picolog/core"
)

// SlogHandler is an adapter that implements slog.Handler on top of
// the picolog pipeline, so the facility can back log/slog. Record
// attributes are appended to the message as "key=value" pairs; the
// message itself is passed through without template resolution.
type SlogHandler struct {
	attrs []slog.Attr
	group string
}

// NewSlogHandler creates a new slog.Handler adapter
func NewSlogHandler() *SlogHandler {
	return &SlogHandler{}
}

// Enabled reports whether the handler handles records at the given level
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	cfg := current.Load()
	return cfg.writer != nil && slogLevelToCore(level) >= cfg.level
}

// Handle processes a slog.Record by forwarding it into the pipeline
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	cfg := current.Load()
	level := slogLevelToCore(record.Level)
	if cfg.writer == nil || level < cfg.level {
		return nil
	}

	method := "<unknown>()"
	if record.PC != 0 {
		if fn := runtime.FuncForPC(record.PC); fn != nil {
			method = fn.Name() + "()"
		}
	}

	var b strings.Builder
	b.WriteString(record.Message)
	// Stored attrs are already group-qualified by WithAttrs.
	for _, attr := range s.attrs {
		writeAttr(&b, "", attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		writeAttr(&b, s.group, attr)
		return true
	})

	emit(cfg, level, nil, b.String(), nil, true, method, false)
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	for _, attr := range attrs {
		if s.group != "" {
			attr.Key = s.group + "." + attr.Key
		}
		newAttrs = append(newAttrs, attr)
	}
	return &SlogHandler{
		attrs: newAttrs,
		group: s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	newAttrs := make([]slog.Attr, len(s.attrs))
	copy(newAttrs, s.attrs)
	return &SlogHandler{
		attrs: newAttrs,
		group: newGroup,
	}
}

func writeAttr(b *strings.Builder, group string, attr slog.Attr) {
	b.WriteByte(' ')
	if group != "" {
		b.WriteString(group)
		b.WriteByte('.')
	}
	b.WriteString(attr.Key)
	b.WriteByte('=')
	b.WriteString(attr.Value.Resolve().String())
}

// slogLevelToCore converts a slog.Level to a core.Level
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarningLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}
