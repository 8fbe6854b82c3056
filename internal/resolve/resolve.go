// Package resolve canonicalizes organization names so filings naming the
// same entity inconsistently merge under one key. The canonical key is a
// merge key only; callers keep the first raw name they saw for display.
package resolve

import (
	"strings"
)

// corporateSuffixes are stripped once from the end of a name.
var corporateSuffixes = []string{
	" INC",
	" LLC",
	" FOUNDATION",
	" CORP",
	" CORPORATION",
	" LTD",
	" INCORPORATED",
}

// Canonicalize maps a raw organization name to its merge key: uppercase,
// whitespace runs collapsed, trailing corporate suffixes stripped, and
// names ending in UNIVERSITY reduced to their last two words.
//
// The university rule collapses "SPRINGFIELD STATE UNIVERSITY" and
// "PORTLAND STATE UNIVERSITY" to the same "STATE UNIVERSITY" key. That
// over-merge is long-standing behavior downstream consumers depend on; do
// not widen or narrow it without product sign-off.
func Canonicalize(raw string) string {
	name := strings.ToUpper(strings.TrimSpace(raw))
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return ""
	}

	// One pass over the suffix list, stripping each match in turn:
	// "EXAMPLE FOUNDATION INC" loses " INC" and then " FOUNDATION", so it
	// merges with plain "EXAMPLE".
	for _, suffix := range corporateSuffixes {
		if strings.HasSuffix(name, suffix) {
			name = strings.TrimSpace(strings.TrimSuffix(name, suffix))
		}
	}

	if strings.HasSuffix(name, "UNIVERSITY") {
		words := strings.Fields(name)
		if len(words) > 2 {
			name = strings.Join(words[len(words)-2:], " ")
		}
	}

	return name
}
