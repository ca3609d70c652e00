package message

import (
	"fmt"
	"strconv"
	"strings"
)

// formatChoice renders a multi-branch sub-pattern of |-delimited
// alternatives, each "limit#text" (inclusive lower bound) or
// "limit<text" (exclusive lower bound) with limits in ascending
// order. The alternative with the greatest satisfied limit wins; a
// value below every limit falls back to the first alternative. The
// selected text is itself formatted recursively against the same
// arguments and locale.
func (f *Formatter) formatChoice(arg interface{}, pattern string, args []interface{}) (string, error) {
	value, ok := toFloat(arg)
	if !ok {
		return "", fmt.Errorf("argument %v is not a number", arg)
	}

	selected := ""
	for i, segment := range splitChoice(pattern) {
		limit, exclusive, text, err := parseChoiceSegment(segment)
		if err != nil {
			return "", err
		}
		if value > limit || (!exclusive && value == limit) {
			selected = text
		} else if i == 0 {
			selected = text
		}
	}
	return f.render(selected, args)
}

// splitChoice splits a choice pattern on top-level pipes, leaving
// pipes inside nested placeholders alone.
func splitChoice(pattern string) []string {
	var segments []string
	depth := 0
	start := 0
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '{':
			depth++
		case '}':
			depth--
		case '|':
			if depth == 0 {
				segments = append(segments, pattern[start:i])
				start = i + 1
			}
		}
	}
	return append(segments, pattern[start:])
}

// parseChoiceSegment splits "limit#text" or "limit<text" into its
// limit, boundary kind and alternative text.
func parseChoiceSegment(segment string) (limit float64, exclusive bool, text string, err error) {
	for i := 0; i < len(segment); i++ {
		c := segment[i]
		if c != '#' && c != '<' {
			continue
		}
		limit, err = strconv.ParseFloat(strings.TrimSpace(segment[:i]), 64)
		if err != nil {
			return 0, false, "", fmt.Errorf("malformed choice limit %q", segment[:i])
		}
		return limit, c == '<', segment[i+1:], nil
	}
	return 0, false, "", fmt.Errorf("malformed choice segment %q", segment)
}
