package filing

import (
	"strconv"
	"strings"
	"time"
)

// UnknownOrganization is the fallback display name when no organization name
// can be located in a filing.
const UnknownOrganization = "Unknown Organization"

// orgNamePaths are tried in order against structured documents.
var orgNamePaths = []string{
	"BusinessName/BusinessNameLine1Txt",
	"ReturnHeader/Filer/BusinessName/BusinessNameLine1Txt",
}

// OrgName extracts the filer's organization name.
func OrgName(doc *Document) string {
	if doc.Format == Structured {
		for _, path := range orgNamePaths {
			if name := doc.Root.FindText(path); name != "" {
				return name
			}
		}
		return UnknownOrganization
	}

	for i, upper := range doc.upper {
		if strings.Contains(upper, "NAME OF ORGANIZATION:") {
			if _, after, ok := strings.Cut(doc.lines[i], ":"); ok {
				if name := strings.TrimSpace(after); name != "" {
					return name
				}
			}
		}
	}
	return UnknownOrganization
}

// TaxYear extracts the filing's reporting year: the tax period's calendar
// year minus one, because filings report the following year as the period
// end. ok is false when no year marker exists; such filings must never be
// assigned a guessed year.
func TaxYear(doc *Document) (int, bool) {
	if doc.Format == Structured {
		if end := doc.Root.FindText("TaxPeriodEndDt"); end != "" {
			if t, err := time.Parse("2006-01-02", end); err == nil {
				return t.Year() - 1, true
			}
		}
		if yr := doc.Root.FindText("TaxYr"); yr != "" {
			if y, err := strconv.Atoi(yr); err == nil {
				return y - 1, true
			}
		}
		return 0, false
	}

	for _, upper := range doc.upper {
		if !strings.Contains(upper, "TAX PERIOD BEGIN") {
			continue
		}
		for _, tok := range strings.Fields(upper) {
			if len(tok) == 4 && isAllDigits(tok) {
				y, _ := strconv.Atoi(tok)
				return y - 1, true
			}
		}
	}
	return 0, false
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
