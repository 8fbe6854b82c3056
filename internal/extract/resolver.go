package extract

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/nonprofit-cli/internal/filing"
	"github.com/sells-group/nonprofit-cli/internal/schema"
)

// Reason explains a Result without a value.
type Reason int

const (
	// Found means the field resolved to a value.
	Found Reason = iota
	// NotFound means no path or trigger produced a value. Filings omit
	// fields routinely; this is the common negative outcome.
	NotFound
	// Malformed means the field was located but its value would not parse.
	Malformed
)

// String returns the reason name.
func (r Reason) String() string {
	switch r {
	case Found:
		return "found"
	case NotFound:
		return "not_found"
	case Malformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Result is the outcome of resolving one field against one filing.
type Result struct {
	Value  *float64
	Reason Reason
}

func found(v float64) Result { return Result{Value: &v, Reason: Found} }
func notFound() Result       { return Result{Reason: NotFound} }
func malformed() Result      { return Result{Reason: Malformed} }

// Resolve locates a single field in a document. Computed fields resolve to
// NotFound here; ResolveAll derives them from their addends.
func Resolve(doc *filing.Document, spec schema.FieldSpec) Result {
	if spec.Computed() {
		return notFound()
	}
	if doc.Format == filing.Structured {
		return resolveStructured(doc, spec)
	}
	return resolveFreeText(doc, spec)
}

// ResolveAll resolves every field in the catalog against the document. A
// failure resolving one field is contained to that field; the rest of the
// filing still extracts.
func ResolveAll(doc *filing.Document, catalog []schema.FieldSpec) map[string]Result {
	results := make(map[string]Result, len(catalog))

	for _, spec := range catalog {
		if spec.Computed() {
			continue
		}
		results[spec.Key] = resolveContained(doc, spec)
	}

	for _, spec := range catalog {
		if !spec.Computed() {
			continue
		}
		sum := 0.0
		hits := 0
		for _, addend := range spec.Addends {
			if r, ok := results[addend]; ok && r.Reason == Found {
				sum += *r.Value
				hits++
			}
		}
		if hits == 0 {
			results[spec.Key] = notFound()
			continue
		}
		results[spec.Key] = found(sum)
	}

	return results
}

func resolveContained(doc *filing.Document, spec schema.FieldSpec) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Warn("field resolution panicked",
				zap.String("field", spec.Key),
				zap.Any("panic", r))
			res = notFound()
		}
	}()
	return Resolve(doc, spec)
}

func resolveStructured(doc *filing.Document, spec schema.FieldSpec) Result {
	for _, path := range spec.Paths {
		text := strings.TrimSpace(doc.Root.FindText(path))
		if text == "" {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return malformed()
		}
		return found(v)
	}
	return notFound()
}

func resolveFreeText(doc *filing.Document, spec schema.FieldSpec) Result {
	s := &lineScanner{lines: doc.Lines(), upper: doc.UpperLines()}
	switch spec.Strategy {
	case schema.EOYColumn:
		return s.scan(spec.Triggers, s.probeEOYColumn)
	case schema.Restriction:
		return s.scan(spec.Triggers, s.probeRestriction)
	case schema.Section:
		return s.scanSection(spec.Section)
	default:
		window := spec.Window
		if window <= 0 {
			window = 5
		}
		return s.scan(spec.Triggers, func(i int) (float64, bool) {
			return s.probeWindow(i, window)
		})
	}
}

// scanState tracks the free-text scanner through its line pass.
type scanState int

const (
	scanSearching scanState = iota
	scanWindowOpen
	scanMatched
	scanExhausted
)

// lineScanner drives trigger matching over a free-text document. Matching is
// document-order first: the earliest line containing any trigger phrase opens
// a probe window, and the first window that yields a value wins.
type lineScanner struct {
	lines []string
	upper []string
}

func (s *lineScanner) scan(triggers []string, probe func(i int) (float64, bool)) Result {
	state := scanSearching
	var value float64

	for i := range s.upper {
		if state == scanMatched {
			break
		}
		if !containsAny(s.upper[i], triggers) {
			continue
		}
		state = scanWindowOpen
		if v, ok := probe(i); ok {
			value = v
			state = scanMatched
		} else {
			state = scanSearching
		}
	}

	if state != scanMatched {
		return notFound()
	}
	return found(value)
}

// probeWindow looks for any amount on the trigger line or the next window-1
// lines.
func (s *lineScanner) probeWindow(i, window int) (float64, bool) {
	end := min(i+window, len(s.lines))
	for j := i; j < end; j++ {
		if v, ok := ParseAmount(s.lines[j]); ok {
			return v, true
		}
	}
	return 0, false
}

// probeEOYColumn resolves a balance-sheet line with beginning/ending columns.
// A value co-located with an end-of-year marker wins outright; otherwise a
// line carrying two or more amounts yields its right-most (left column is
// beginning of year, right is end), first on the trigger line and then on the
// one below it.
func (s *lineScanner) probeEOYColumn(i int) (float64, bool) {
	if hasEOYMarker(s.upper[i]) {
		if v, ok := ParseAmount(s.lines[i]); ok {
			return v, true
		}
		return 0, false
	}

	if values := AllAmounts(s.lines[i]); len(values) > 1 {
		return values[len(values)-1], true
	}
	if i+1 < len(s.lines) {
		if values := AllAmounts(s.lines[i+1]); len(values) > 1 {
			return values[len(values)-1], true
		}
	}
	return 0, false
}

// probeRestriction resolves donor-restriction net-asset lines: an end-of-year
// marker on the trigger line wins, then the nearest EOY-marked line within
// three lines either side, then the first amount in the next three lines.
func (s *lineScanner) probeRestriction(i int) (float64, bool) {
	if hasEOYMarker(s.upper[i]) {
		if v, ok := ParseAmount(s.lines[i]); ok {
			return v, true
		}
		return 0, false
	}

	lo := max(i-3, 0)
	hi := min(i+4, len(s.lines))
	for j := lo; j < hi; j++ {
		if !hasEOYMarker(s.upper[j]) {
			continue
		}
		if v, ok := ParseAmount(s.lines[j]); ok {
			return v, true
		}
	}

	for j := i + 1; j < min(i+4, len(s.lines)); j++ {
		if v, ok := ParseAmount(s.lines[j]); ok {
			return v, true
		}
	}
	return 0, false
}

// scanSection handles fields buried inside a long statement section: find the
// section header, then hunt the sub-trigger within the section window. The
// value sits on the sub-trigger line or the one below it.
func (s *lineScanner) scanSection(sec schema.SectionSpec) Result {
	window := sec.Window
	if window <= 0 {
		window = 30
	}

	state := scanSearching
	var value float64

	for i := range s.upper {
		if state == scanMatched {
			break
		}
		if !containsAny(s.upper[i], sec.Headers) {
			continue
		}
		state = scanWindowOpen
		end := min(i+window, len(s.lines))
		for j := i; j < end; j++ {
			if !containsAny(s.upper[j], sec.SubTriggers) {
				continue
			}
			if sec.Exclude != "" && strings.Contains(s.upper[j], sec.Exclude) {
				continue
			}
			if v, ok := ParseAmount(s.lines[j]); ok {
				value = v
				state = scanMatched
				break
			}
			if j+1 < len(s.lines) {
				if v, ok := ParseAmount(s.lines[j+1]); ok {
					value = v
					state = scanMatched
					break
				}
			}
		}
		if state != scanMatched {
			state = scanSearching
		}
	}

	if state != scanMatched {
		return notFound()
	}
	return found(value)
}

func hasEOYMarker(upperLine string) bool {
	return strings.Contains(upperLine, "END OF YEAR") || strings.Contains(upperLine, "EOY")
}

func containsAny(upperLine string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(upperLine, p) {
			return true
		}
	}
	return false
}
