package format

import "strings"

// TokenType identifies what a compiled token renders.
type TokenType int

const (
	// PlainText emits the token's literal text
	PlainText TokenType = iota
	// Thread emits the calling goroutine's name
	Thread
	// Method emits the caller identifier
	Method
	// LoggingLevel emits the entry's severity level
	LoggingLevel
	// Date emits the timestamp using the token's compiled layout
	Date
	// Message emits the resolved message and the rendered error chain
	Message
)

// Token is one element of a compiled layout pattern. A token sequence
// is built once per pattern and treated as immutable; changing the
// pattern replaces the whole sequence.
type Token struct {
	Type TokenType
	// Text is the literal content of a PlainText token.
	Text string
	// Layout is the compiled Go time layout of a Date token.
	Layout string
}

// DefaultPattern is the layout used when none is configured.
const DefaultPattern = "{date} [{thread}] {method}\n{level}: {message}"

// DefaultDateLayout is the layout of a {date} token without a sub-pattern.
const DefaultDateLayout = "2006-01-02 15:04:05"

// Parse compiles a layout pattern into a token sequence. Five
// keywords are recognized inside braces: thread, method, level,
// message and date, the latter optionally with a date sub-pattern
// after a colon. Anything else, including unmatched braces, becomes
// literal text.
func Parse(pattern string) []Token {
	var tokens []Token
	rest := pattern
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			break
		}
		close := strings.IndexByte(rest[open:], '}')
		if close < 0 {
			break
		}
		close += open

		if token, ok := keywordToken(rest[open+1 : close]); ok {
			if open > 0 {
				tokens = append(tokens, Token{Type: PlainText, Text: rest[:open]})
			}
			tokens = append(tokens, token)
		} else {
			tokens = append(tokens, Token{Type: PlainText, Text: rest[:close+1]})
		}
		rest = rest[close+1:]
	}
	if rest != "" {
		tokens = append(tokens, Token{Type: PlainText, Text: rest})
	}
	return tokens
}

func keywordToken(name string) (Token, bool) {
	switch {
	case name == "thread":
		return Token{Type: Thread}, true
	case name == "method":
		return Token{Type: Method}, true
	case name == "level":
		return Token{Type: LoggingLevel}, true
	case name == "message":
		return Token{Type: Message}, true
	case name == "date":
		return Token{Type: Date, Layout: DefaultDateLayout}, true
	case strings.HasPrefix(name, "date:"):
		return Token{Type: Date, Layout: CompileDateLayout(name[len("date:"):])}, true
	}
	return Token{}, false
}
