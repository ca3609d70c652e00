package format

import "strings"

// CompileDateLayout translates a SimpleDateFormat-style date pattern
// such as "yyyy-MM-dd HH:mm:ss" into a Go time layout. The
// translation happens once, when the layout pattern is compiled; the
// resulting layout is reusable and safe for concurrent use, which is
// why date tokens need no locking around formatting.
//
// Unknown pattern letters and all separators pass through literally.
// Single-quote pairs protect literal text; a doubled quote emits one
// quote.
func CompileDateLayout(pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); {
		c := pattern[i]

		if c == '\'' {
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				b.WriteByte('\'')
				i += 2
				continue
			}
			// Quoted span: a doubled quote inside it is one literal
			// quote and the span continues past it.
			i++
			for i < len(pattern) {
				if pattern[i] == '\'' {
					if i+1 < len(pattern) && pattern[i+1] == '\'' {
						b.WriteByte('\'')
						i += 2
						continue
					}
					i++
					break
				}
				b.WriteByte(pattern[i])
				i++
			}
			continue
		}

		if !isPatternLetter(c) {
			b.WriteByte(c)
			i++
			continue
		}

		run := i
		for run < len(pattern) && pattern[run] == c {
			run++
		}
		b.WriteString(layoutFor(c, run-i))
		i = run
	}
	return b.String()
}

func isPatternLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func layoutFor(c byte, count int) string {
	switch c {
	case 'y':
		if count >= 4 {
			return "2006"
		}
		return "06"
	case 'M':
		switch {
		case count >= 4:
			return "January"
		case count == 3:
			return "Jan"
		case count == 2:
			return "01"
		default:
			return "1"
		}
	case 'd':
		if count >= 2 {
			return "02"
		}
		return "2"
	case 'H':
		return "15"
	case 'h':
		if count >= 2 {
			return "03"
		}
		return "3"
	case 'm':
		if count >= 2 {
			return "04"
		}
		return "4"
	case 's':
		if count >= 2 {
			return "05"
		}
		return "5"
	case 'S':
		// Renders as fractional seconds when it follows "ss." in the
		// pattern, literal zeros otherwise.
		return strings.Repeat("0", count)
	case 'a':
		return "PM"
	case 'E':
		if count >= 4 {
			return "Monday"
		}
		return "Mon"
	case 'z':
		return "MST"
	case 'Z':
		return "-0700"
	default:
		return strings.Repeat(string(c), count)
	}
}
