package extract

import (
	"strconv"
	"strings"

	"github.com/sells-group/nonprofit-cli/internal/filing"
)

// ExecutiveRecord is one leadership officer with reportable compensation.
type ExecutiveRecord struct {
	Name         string
	Title        string
	Compensation float64
}

// leadershipTitles qualify a Part VII officer row for extraction,
// case-insensitive substring match.
var leadershipTitles = []string{
	"PRESIDENT",
	"CEO",
	"CHIEF EXECUTIVE",
	"CFO",
	"CHIEF FINANCIAL",
	"COO",
	"CHIEF OPERATING",
	"CHANCELLOR",
	"DEAN",
	"TREASURER",
}

// executiveSectionMarkers locate the compensation section in free text.
var executiveSectionMarkers = []string{"FORM 990, PART VII", "COMPENSATION OF OFFICERS"}

// executiveScanWindow bounds the free-text search below the section marker.
const executiveScanWindow = 100

// IsLeadershipTitle reports whether a title matches the leadership allowlist.
func IsLeadershipTitle(title string) bool {
	if title == "" {
		return false
	}
	return containsAny(strings.ToUpper(title), leadershipTitles)
}

// Executives extracts leadership compensation records from a filing.
//
// Free-text extraction is a lenient best-effort pass: the name is taken as
// the first whitespace token on the matched line, so multi-word names come
// out truncated. The upstream text layout is too inconsistent to do better;
// callers must tolerate degenerate records.
func Executives(doc *filing.Document) []ExecutiveRecord {
	if doc.Format == filing.Structured {
		return executivesStructured(doc)
	}
	return executivesFreeText(doc)
}

func executivesStructured(doc *filing.Document) []ExecutiveRecord {
	var records []ExecutiveRecord
	for _, person := range doc.Root.FindAll("Form990PartVIISectionAGrp") {
		name := strings.TrimSpace(person.FindText("PersonNm"))
		title := strings.TrimSpace(person.FindText("TitleTxt"))
		compText := strings.TrimSpace(person.FindText("ReportableCompFromOrgAmt"))
		if name == "" || title == "" || compText == "" {
			continue
		}
		if !IsLeadershipTitle(title) {
			continue
		}
		comp, err := strconv.ParseFloat(compText, 64)
		if err != nil {
			continue
		}
		records = append(records, ExecutiveRecord{Name: name, Title: title, Compensation: comp})
	}
	return records
}

func executivesFreeText(doc *filing.Document) []ExecutiveRecord {
	upper := doc.UpperLines()

	start := -1
	for i, line := range upper {
		if containsAny(line, executiveSectionMarkers) {
			start = i
			break
		}
	}
	if start < 0 {
		return nil
	}

	var records []ExecutiveRecord
	end := min(start+executiveScanWindow, len(upper))
	for j := start; j < end; j++ {
		line := strings.TrimSpace(upper[j])
		if !containsAny(line, leadershipTitles) {
			continue
		}
		parts := strings.Fields(line)
		for k, part := range parts {
			if !looksLikeCompensation(part) {
				continue
			}
			comp, err := strconv.ParseFloat(stripCurrency(part), 64)
			if err != nil {
				continue
			}
			records = append(records, ExecutiveRecord{
				Name:         parts[0],
				Title:        strings.Join(parts[1:k], " "),
				Compensation: comp,
			})
			break
		}
	}
	return records
}

// looksLikeCompensation accepts $-marked tokens and bare integers longer
// than four digits.
func looksLikeCompensation(token string) bool {
	if strings.Contains(token, "$") {
		return true
	}
	bare := strings.ReplaceAll(token, ",", "")
	if len(token) <= 4 || bare == "" {
		return false
	}
	for _, c := range bare {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func stripCurrency(token string) string {
	token = strings.ReplaceAll(token, "$", "")
	return strings.ReplaceAll(token, ",", "")
}
