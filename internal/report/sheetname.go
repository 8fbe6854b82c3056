package report

import (
	"fmt"
	"strings"
)

// maxSheetNameLen is Excel's hard limit on worksheet names.
const maxSheetNameLen = 31

// sheetNameInvalid are the characters Excel rejects in worksheet names.
const sheetNameInvalid = `\/*?:[]`

// CleanSheetName makes a string safe to use as an Excel worksheet name:
// invalid characters removed, whitespace collapsed, and long names truncated
// at a word boundary with an ellipsis.
func CleanSheetName(name string) string {
	var b strings.Builder
	for _, c := range name {
		if !strings.ContainsRune(sheetNameInvalid, c) {
			b.WriteRune(c)
		}
	}
	name = strings.Join(strings.Fields(b.String()), " ")

	if len(name) > maxSheetNameLen {
		var shortened string
		for _, word := range strings.Fields(name) {
			candidate := word
			if shortened != "" {
				candidate = shortened + " " + word
			}
			if len(candidate) > maxSheetNameLen-3 {
				break
			}
			shortened = candidate
		}
		name = strings.TrimSpace(shortened) + "..."
	}
	if len(name) > maxSheetNameLen {
		name = name[:maxSheetNameLen-3] + "..."
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = "Sheet"
	}
	return name
}

// sheetNamer hands out worksheet names, suffixing duplicates with _1, _2 …
// Excel compares sheet names case-insensitively, so the dedupe does too.
type sheetNamer struct {
	used map[string]bool
}

func newSheetNamer() *sheetNamer {
	return &sheetNamer{used: make(map[string]bool)}
}

func (s *sheetNamer) claim(raw string) string {
	base := CleanSheetName(raw)
	name := base
	for counter := 1; s.used[strings.ToLower(name)]; counter++ {
		trunc := base
		if len(trunc) > maxSheetNameLen-4 {
			trunc = trunc[:maxSheetNameLen-4]
		}
		name = fmt.Sprintf("%s_%d", trunc, counter)
	}
	s.used[strings.ToLower(name)] = true
	return name
}
