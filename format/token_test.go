package format

import (
	"reflect"
	"testing"
)

func TestParse_DefaultPattern(t *testing.T) {
	tokens := Parse(DefaultPattern)

	want := []Token{
		{Type: Date, Layout: DefaultDateLayout},
		{Type: PlainText, Text: " ["},
		{Type: Thread},
		{Type: PlainText, Text: "] "},
		{Type: Method},
		{Type: PlainText, Text: "\n"},
		{Type: LoggingLevel},
		{Type: PlainText, Text: ": "},
		{Type: Message},
	}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("Parse(%q) = %#v, want %#v", DefaultPattern, tokens, want)
	}
}

func TestParse_PureLiteral(t *testing.T) {
	tokens := Parse("plain text without placeholders")

	if len(tokens) != 1 {
		t.Fatalf("Expected 1 token, got %d", len(tokens))
	}
	if tokens[0].Type != PlainText || tokens[0].Text != "plain text without placeholders" {
		t.Errorf("Unexpected token: %#v", tokens[0])
	}
}

func TestParse_SinglePlaceholder(t *testing.T) {
	tokens := Parse("{message}")

	if len(tokens) != 1 {
		t.Fatalf("Expected 1 token, got %d", len(tokens))
	}
	if tokens[0].Type != Message {
		t.Errorf("Expected a message token, got %#v", tokens[0])
	}
}

func TestParse_DateSubPattern(t *testing.T) {
	tokens := Parse("{date:yyyy-MM-dd}")

	if len(tokens) != 1 {
		t.Fatalf("Expected 1 token, got %d", len(tokens))
	}
	if tokens[0].Type != Date {
		t.Fatalf("Expected a date token, got %#v", tokens[0])
	}
	if tokens[0].Layout != "2006-01-02" {
		t.Errorf("Expected layout '2006-01-02', got %q", tokens[0].Layout)
	}
}

func TestParse_UnknownKeywordIsLiteral(t *testing.T) {
	tokens := Parse("a {foo} b")

	want := []Token{
		{Type: PlainText, Text: "a {foo}"},
		{Type: PlainText, Text: " b"},
	}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("Parse() = %#v, want %#v", tokens, want)
	}
}

func TestParse_UnmatchedBracesAreLiteral(t *testing.T) {
	tokens := Parse("a {message")

	want := []Token{
		{Type: PlainText, Text: "a {message"},
	}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("Parse() = %#v, want %#v", tokens, want)
	}
}

func TestParse_EmptyPattern(t *testing.T) {
	if tokens := Parse(""); len(tokens) != 0 {
		t.Errorf("Expected no tokens, got %#v", tokens)
	}
}
