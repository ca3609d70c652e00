package message

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	xmessage "golang.org/x/text/message"

	"github.com/picolog/picolog/core"
)

// Supplier is a deferred argument. It is invoked at most once, and
// only at the moment its placeholder is actually resolved; a call the
// dispatcher has suppressed never evaluates it.
type Supplier func() interface{}

// Formatter resolves positional placeholders of the form
// {index[,type[,subformat]]} against call arguments. The supported
// types are "number" and "choice". The locale affects only how
// numbers are rendered, never how the message is parsed.
type Formatter struct {
	locale  language.Tag
	printer *xmessage.Printer
}

// NewFormatter creates a formatter for the given locale
func NewFormatter(locale language.Tag) *Formatter {
	return &Formatter{
		locale:  locale,
		printer: xmessage.NewPrinter(locale),
	}
}

// Locale returns the formatter's locale
func (f *Formatter) Locale() language.Tag {
	return f.locale
}

// Format resolves all placeholders in msg. On a malformed sub-pattern
// or an argument type mismatch the original message is returned
// unmodified and exactly one warning naming it is reported.
func (f *Formatter) Format(msg string, args []interface{}) string {
	out, err := f.render(msg, args)
	if err != nil {
		core.ReportWarningf("illegal arguments for message \"%s\": %v", msg, err)
		return msg
	}
	return out
}

// render walks msg once. Text between single-quote pairs is emitted
// literally, a doubled quote emits one quote, and braces open
// placeholders. Errors abort the whole rendering.
func (f *Formatter) render(msg string, args []interface{}) (string, error) {
	var b strings.Builder
	b.Grow(len(msg))
	for i := 0; i < len(msg); {
		switch msg[i] {
		case '\'':
			if i+1 < len(msg) && msg[i+1] == '\'' {
				b.WriteByte('\'')
				i += 2
				continue
			}
			end := strings.IndexByte(msg[i+1:], '\'')
			if end < 0 {
				// Unterminated quote: the rest is literal.
				b.WriteString(msg[i+1:])
				return b.String(), nil
			}
			b.WriteString(msg[i+1 : i+1+end])
			i += end + 2
		case '{':
			end := matchingBrace(msg, i)
			if end < 0 {
				return "", fmt.Errorf("unmatched braces")
			}
			resolved, err := f.placeholder(msg[i+1:end], args)
			if err != nil {
				return "", err
			}
			b.WriteString(resolved)
			i = end + 1
		default:
			b.WriteByte(msg[i])
			i++
		}
	}
	return b.String(), nil
}

// matchingBrace returns the index of the brace closing the one at
// start, honoring nested braces, or -1.
func matchingBrace(s string, start int) int {
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// placeholder resolves the content between one brace pair.
func (f *Formatter) placeholder(content string, args []interface{}) (string, error) {
	indexPart := content
	qualifier := ""
	sub := ""
	hasQualifier := false
	hasSub := false
	if comma := strings.IndexByte(content, ','); comma >= 0 {
		indexPart = content[:comma]
		qualifier = content[comma+1:]
		hasQualifier = true
		if comma2 := strings.IndexByte(qualifier, ','); comma2 >= 0 {
			sub = qualifier[comma2+1:]
			qualifier = qualifier[:comma2]
			hasSub = true
		}
	}

	index, err := strconv.Atoi(strings.TrimSpace(indexPart))
	if err != nil || index < 0 {
		return "", fmt.Errorf("invalid argument index %q", indexPart)
	}
	if index >= len(args) {
		// Missing argument: the placeholder stays unexpanded.
		return "{" + content + "}", nil
	}

	arg := resolve(args, index)
	if !hasQualifier {
		return defaultString(arg), nil
	}
	switch strings.TrimSpace(qualifier) {
	case "number":
		return f.formatNumber(arg, sub, hasSub)
	case "choice":
		return f.formatChoice(arg, sub, args)
	default:
		return "", fmt.Errorf("unknown format type %q", qualifier)
	}
}

// resolve returns the argument at index, evaluating and memoizing a
// Supplier so that repeated placeholders call it only once.
func resolve(args []interface{}, index int) interface{} {
	switch v := args[index].(type) {
	case Supplier:
		value := v()
		args[index] = value
		return value
	case func() interface{}:
		value := v()
		args[index] = value
		return value
	}
	return args[index]
}

// defaultString renders an argument without a type qualifier
func defaultString(arg interface{}) string {
	return fmt.Sprint(arg)
}

// toFloat converts any numeric argument to float64 for choice limits
// and number validity checks.
func toFloat(arg interface{}) (float64, bool) {
	switch n := arg.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
