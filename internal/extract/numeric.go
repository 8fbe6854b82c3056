// Package extract resolves catalog fields against a parsed filing, in either
// format: schema paths for structured documents, line-scanning heuristics for
// free text. Resolution is best-effort; absence is a result, not an error.
package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	parensAmountRe = regexp.MustCompile(`\(([0-9,]+(?:\.[0-9]+)?)\)`)
	dollarAmountRe = regexp.MustCompile(`\$\s*([0-9,]+(?:\.[0-9]+)?)`)
)

// numericPart strips a token down to digits, dots, and minus signs. Returns
// "" when nothing numeric remains.
func numericPart(word string) string {
	var b strings.Builder
	for _, c := range word {
		if (c >= '0' && c <= '9') || c == '.' || c == '-' {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// ParseAmount pulls a single dollar amount out of a text line. Three patterns
// are tried in priority order: the right-most numeric token (financial forms
// put the value at the end of the line), a parenthesized group read as a
// negative, and a $-prefixed group.
func ParseAmount(line string) (float64, bool) {
	if line == "" {
		return 0, false
	}

	clean := strings.ReplaceAll(line, "$", "")
	clean = strings.ReplaceAll(clean, ",", "")
	words := strings.Fields(clean)
	for i := len(words) - 1; i >= 0; i-- {
		// Parenthesized tokens are accounting negatives; leave them for
		// the dedicated pattern below.
		if strings.ContainsAny(words[i], "()") {
			continue
		}
		part := numericPart(words[i])
		if part == "" {
			continue
		}
		if v, err := strconv.ParseFloat(part, 64); err == nil {
			return v, true
		}
	}

	if m := parensAmountRe.FindStringSubmatch(line); m != nil {
		if v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64); err == nil {
			return -v, true
		}
	}

	if m := dollarAmountRe.FindStringSubmatch(line); m != nil {
		if v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64); err == nil {
			return v, true
		}
	}

	return 0, false
}

// AllAmounts pulls every numeric token from a multi-column line, left to
// right. Zeros are discarded: in columnar form text they are placeholders,
// not values.
func AllAmounts(line string) []float64 {
	if line == "" {
		return nil
	}

	clean := strings.ReplaceAll(line, "$", "")
	clean = strings.ReplaceAll(clean, ",", "")

	var values []float64
	for _, word := range strings.Fields(clean) {
		part := numericPart(word)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil || v == 0 {
			continue
		}
		values = append(values, v)
	}
	return values
}
