package stacktrace

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"

	"github.com/picolog/picolog/core"
)

// Unlimited disables the frame budget: every recorded frame is printed.
const Unlimited = math.MaxInt32

// DefaultLimit is the default frame budget per rendered error.
const DefaultLimit = 40

// stackTracer is the interface pkg/errors attaches to errors created
// with New, Errorf, WithStack and Wrap.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// causer is the pre-Unwrap cause interface of pkg/errors.
type causer interface {
	Cause() error
}

// Render prints an error chain as text. Each link starts with the
// error's type and message; recorded stack frames follow, one per
// line, bounded by the frame budget. When a link is truncated a
// "..." marker ends the output and the remaining causes are dropped.
// Otherwise the next cause is rendered after a "Caused by: " marker
// with a budget of limit plus the frames printed at this link, so the
// budget grows rather than shrinks down the chain.
//
// A limit of 0 prints type and message only. A negative limit means
// Unlimited. Render has no side effects.
func Render(err error, limit int) string {
	if err == nil {
		return ""
	}
	if limit < 0 {
		limit = Unlimited
	}

	var b strings.Builder
	for current := err; current != nil; {
		fmt.Fprintf(&b, "%T", current)
		if msg := ownMessage(current); msg != "" {
			b.WriteString(": ")
			b.WriteString(msg)
		}

		if limit == 0 {
			break
		}

		frames := framesOf(current)
		printed := len(frames)
		if printed > limit {
			printed = limit
		}
		for i := 0; i < printed; i++ {
			b.WriteString(core.NewLine)
			b.WriteString("\tat ")
			writeFrame(&b, frames[i])
		}
		if len(frames) > printed {
			b.WriteString(core.NewLine)
			b.WriteString("\t...")
			break
		}

		cause := causeOf(current)
		if cause == nil {
			break
		}
		b.WriteString(core.NewLine)
		b.WriteString("Caused by: ")
		limit += printed
		current = cause
	}
	return b.String()
}

// writeFrame prints a single frame as "func (file.go:42)".
func writeFrame(b *strings.Builder, f errors.Frame) {
	fmt.Fprintf(b, "%n (%s:%d)", f, f, f)
}

// framesOf returns the recorded frames of err, or nil when err
// carries no stack.
func framesOf(err error) []errors.Frame {
	tracer, ok := err.(stackTracer)
	if !ok {
		return nil
	}
	return tracer.StackTrace()
}

// causeOf returns the next error in the chain, preferring the
// pkg/errors causer interface over the stdlib Unwrap convention.
func causeOf(err error) error {
	if c, ok := err.(causer); ok {
		return c.Cause()
	}
	return errors.Unwrap(err)
}

// ownMessage strips the trailing ": cause" text a wrapper appends so
// each chain link prints only its own message. A pure stack wrapper
// whose message equals its cause's keeps the full text.
func ownMessage(err error) string {
	msg := err.Error()
	if cause := causeOf(err); cause != nil {
		msg = strings.TrimSuffix(msg, ": "+cause.Error())
	}
	return msg
}
