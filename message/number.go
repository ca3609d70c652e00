package message

import (
	"fmt"
	"strings"

	"golang.org/x/text/number"
)

// formatNumber renders a numeric argument, optionally shaped by a
// DecimalFormat-style sub-pattern such as "0.00", "000" or "#,##0.##".
// Grouping and decimal separators follow the formatter's locale.
func (f *Formatter) formatNumber(arg interface{}, pattern string, hasPattern bool) (string, error) {
	if _, ok := toFloat(arg); !ok {
		return "", fmt.Errorf("argument %v is not a number", arg)
	}
	if !hasPattern {
		return f.printer.Sprint(number.Decimal(arg)), nil
	}
	opts, err := parseDecimalPattern(pattern)
	if err != nil {
		return "", err
	}
	return f.printer.Sprint(number.Decimal(arg, opts...)), nil
}

// parseDecimalPattern maps a sub-pattern onto x/text number options.
// Supported symbols: '0' (required digit), '#' (optional digit),
// '.' (decimal separator), ',' (grouping). Anything else is malformed.
func parseDecimalPattern(pattern string) ([]number.Option, error) {
	intPart := pattern
	fracPart := ""
	if dot := strings.IndexByte(pattern, '.'); dot >= 0 {
		intPart = pattern[:dot]
		fracPart = pattern[dot+1:]
		if strings.IndexByte(fracPart, '.') >= 0 {
			return nil, fmt.Errorf("malformed number pattern %q", pattern)
		}
	}

	grouping := strings.IndexByte(intPart, ',') >= 0
	intPart = strings.ReplaceAll(intPart, ",", "")

	minInteger := 0
	for _, r := range intPart {
		switch r {
		case '0':
			minInteger++
		case '#':
			// Optional digits must precede required ones.
			if minInteger > 0 {
				return nil, fmt.Errorf("malformed number pattern %q", pattern)
			}
		default:
			return nil, fmt.Errorf("malformed number pattern %q", pattern)
		}
	}

	minFraction := 0
	maxFraction := 0
	optional := false
	for _, r := range fracPart {
		switch r {
		case '0':
			if optional {
				return nil, fmt.Errorf("malformed number pattern %q", pattern)
			}
			minFraction++
			maxFraction++
		case '#':
			optional = true
			maxFraction++
		default:
			return nil, fmt.Errorf("malformed number pattern %q", pattern)
		}
	}

	opts := []number.Option{
		number.MinIntegerDigits(minInteger),
		number.MinFractionDigits(minFraction),
		number.MaxFractionDigits(maxFraction),
	}
	if !grouping {
		opts = append(opts, number.NoSeparator())
	}
	return opts, nil
}
