package format

import (
	"bytes"
	"sync"

	"github.com/picolog/picolog/core"
	"github.com/picolog/picolog/stacktrace"
)

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// Render walks a compiled token sequence and produces the final entry
// line, terminated by the platform line separator. The message token
// appends the resolved message text, then the rendered error chain
// under the given frame budget, separated by ": " when both are
// present.
func Render(tokens []Token, entry *core.Entry, traceLimit int) string {
	buf := getBuffer()
	defer putBuffer(buf)

	for _, token := range tokens {
		switch token.Type {
		case Thread:
			buf.WriteString(entry.Thread)
		case Method:
			buf.WriteString(entry.Method)
		case LoggingLevel:
			buf.WriteString(entry.Level.String())
		case Date:
			buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), token.Layout))
		case Message:
			if entry.HasMessage {
				buf.WriteString(entry.Message)
			}
			if entry.Err != nil {
				if entry.HasMessage {
					buf.WriteString(": ")
				}
				buf.WriteString(stacktrace.Render(entry.Err, traceLimit))
			}
		default:
			buf.WriteString(token.Text)
		}
	}
	buf.WriteString(core.NewLine)

	return buf.String()
}
