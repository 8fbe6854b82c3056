package extract

import (
	"strconv"
	"strings"

	"github.com/sells-group/nonprofit-cli/internal/filing"
	"github.com/sells-group/nonprofit-cli/internal/schema"
)

// EndowmentYear holds one year-offset block of the Schedule D Part V
// endowment schedule, keyed by endowment field key. Missing fields are
// absent, not zero.
type EndowmentYear map[string]float64

// endowmentSectionStart marks the schedule in free text.
var endowmentSectionStart = []string{"ENDOWMENT FUNDS", "SCHEDULE D, PART V"}

// endowmentSectionEnd marks where the schedule gives way to the next part.
var endowmentSectionEnd = []string{"PART VI", "STATEMENT OF REVENUE"}

// Endowment extracts the filing's self-reported endowment history, keyed by
// year offset (0 = the filing's own year, up to 4 years prior). Blocks with
// no populated fields are dropped entirely. Free text carries no usable
// prior-year columns, so only offset 0 is recoverable there.
func Endowment(doc *filing.Document) map[int]EndowmentYear {
	if doc.Format == filing.Structured {
		return endowmentStructured(doc)
	}
	return endowmentFreeText(doc)
}

func endowmentStructured(doc *filing.Document) map[int]EndowmentYear {
	// Prefer the Schedule D subtree when present; group element names are
	// unique enough that falling back to the whole return is safe.
	root := doc.Root.Find("IRS990ScheduleD")
	if root == nil {
		root = doc.Root
	}

	history := make(map[int]EndowmentYear)
	for offset := 0; offset <= schema.MaxEndowmentOffset; offset++ {
		group := root.Find(schema.EndowmentGroupPaths[offset])
		if group == nil {
			continue
		}
		year := make(EndowmentYear)
		for _, f := range schema.EndowmentFields {
			text := strings.TrimSpace(group.FindText(f.Key))
			if text == "" {
				continue
			}
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				continue
			}
			year[f.Key] = v
		}
		if len(year) == 0 {
			continue
		}
		history[offset] = year
	}
	return history
}

func endowmentFreeText(doc *filing.Document) map[int]EndowmentYear {
	upper := doc.UpperLines()
	lines := doc.Lines()

	year := make(EndowmentYear)
	inSection := false
	for i, line := range upper {
		if !inSection {
			if containsAny(line, endowmentSectionStart) {
				inSection = true
			}
			continue
		}
		if containsAny(line, endowmentSectionEnd) {
			inSection = false
			continue
		}
		for _, f := range schema.EndowmentFields {
			if !containsAny(line, f.Triggers) {
				continue
			}
			if v, ok := ParseAmount(lines[i]); ok {
				year[f.Key] = v
			}
		}
	}

	if len(year) == 0 {
		return nil
	}
	return map[int]EndowmentYear{0: year}
}
