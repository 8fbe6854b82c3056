// Package schema declares the extraction catalog: the fixed set of financial
// line items pulled from each filing, how to find them in structured
// documents, and how to hunt for them in free text. The catalog is built once
// at startup and never mutated.
package schema

import (
	"github.com/rotisserie/eris"
)

// Variant selects which form family's catalog applies to a filing.
type Variant int

const (
	// Form990 is the standard public-charity return.
	Form990 Variant = iota
	// Form990PF is the private-foundation return.
	Form990PF
	// ScheduleH is the hospital community-benefit schedule.
	ScheduleH
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case Form990:
		return "990"
	case Form990PF:
		return "990pf"
	case ScheduleH:
		return "scheduleh"
	default:
		return "unknown"
	}
}

// ParseVariant converts a CLI flag value into a Variant.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "990":
		return Form990, nil
	case "990pf", "990-pf":
		return Form990PF, nil
	case "scheduleh", "schedule-h", "h":
		return ScheduleH, nil
	default:
		return 0, eris.Errorf("unknown form variant: %q (valid: 990, 990pf, scheduleh)", s)
	}
}

// Kind describes how a field's value is typed and formatted.
type Kind int

const (
	// Currency values render in accounting format, rounded to whole dollars.
	Currency Kind = iota
	// Count values are plain integers (employees, volunteers).
	Count
	// Percent values stay as decimals and render as percentages.
	Percent
)

// Strategy selects the free-text search behavior for a field.
type Strategy int

const (
	// Simple scans a short forward window from the trigger line for the
	// first numeric value.
	Simple Strategy = iota
	// EOYColumn prefers a value on an END OF YEAR-marked line; otherwise it
	// takes the right-most of multiple values on the trigger line (left
	// column is beginning-of-year, right is end-of-year), then retries the
	// same rule on the following line.
	EOYColumn
	// Restriction looks for an EOY marker on or near the trigger line,
	// then falls back to the first value below it.
	Restriction
	// Section locates a statement section header first, then hunts for a
	// sub-trigger inside a long window.
	Section
)

// SectionSpec parameterizes the Section strategy.
type SectionSpec struct {
	// Headers mark the start of the statement section.
	Headers []string
	// SubTriggers locate the field's row inside the section.
	SubTriggers []string
	// Exclude disqualifies sub-trigger lines containing this substring.
	Exclude string
	// Window is the section scan length in lines.
	Window int
}

// FieldSpec describes one financial line item in the extraction catalog.
type FieldSpec struct {
	// Key is the canonical field key, unique within a catalog.
	Key string
	// Label is the display name used for report rows.
	Label string
	// Kind types the value.
	Kind Kind
	// Paths are structured lookup paths, tried in order; first non-empty
	// node wins.
	Paths []string
	// Triggers are uppercase free-text phrases; the first trigger hit in
	// document order opens the search window.
	Triggers []string
	// Strategy selects the free-text search behavior.
	Strategy Strategy
	// Window is the forward search window in lines for Simple fields.
	Window int
	// Section parameterizes Section-strategy fields.
	Section SectionSpec
	// Addends names sibling keys summed to produce this field after
	// extraction; when set, Paths and Triggers are unused.
	Addends []string
	// Hidden fields are extracted (e.g. as addend sources) but excluded
	// from report rows.
	Hidden bool
}

// Computed reports whether the field is derived from sibling fields.
func (f FieldSpec) Computed() bool { return len(f.Addends) > 0 }

// defaultWindow is the Simple-strategy forward window: the trigger line plus
// the next four lines.
const defaultWindow = 5

// Catalog returns the ordered field catalog for a variant. Declared order is
// report row order.
func Catalog(v Variant) []FieldSpec {
	switch v {
	case Form990PF:
		return form990PFCatalog
	case ScheduleH:
		return scheduleHCatalog
	default:
		return form990Catalog
	}
}

// EndowmentField describes one row of the Schedule D Part V endowment
// schedule. The same seven fields repeat for the current year and up to four
// prior-year offset blocks.
type EndowmentField struct {
	Key      string
	Label    string
	Triggers []string
}

// EndowmentFields is the endowment sub-catalog, in report row order.
var EndowmentFields = []EndowmentField{
	{Key: "BeginningYearBalanceAmt", Label: "Endowment Beginning Balance", Triggers: []string{"BEGINNING OF YEAR", "BEGINNING BALANCE"}},
	{Key: "ContributionsAmt", Label: "Endowment Contributions", Triggers: []string{"CONTRIBUTIONS", "ADDITIONS"}},
	{Key: "InvestmentEarningsOrLossesAmt", Label: "Endowment Investment Earnings", Triggers: []string{"INVESTMENT EARNINGS", "NET INVESTMENT EARNINGS", "INVESTMENT GAINS"}},
	{Key: "GrantsOrScholarshipsAmt", Label: "Endowment Grants", Triggers: []string{"GRANTS", "SCHOLARSHIPS", "GRANTS OR SCHOLARSHIPS"}},
	{Key: "OtherExpendituresAmt", Label: "Endowment Other Expenditures", Triggers: []string{"OTHER EXPENDITURES", "OTHER EXPENSES"}},
	{Key: "AdministrativeExpensesAmt", Label: "Endowment Admin Expenses", Triggers: []string{"ADMINISTRATIVE", "ADMIN EXPENSES"}},
	{Key: "EndYearBalanceAmt", Label: "Endowment Ending Balance", Triggers: []string{"END OF YEAR", "ENDING BALANCE"}},
}

// EndowmentGroupPaths maps each year offset (0 = current filing year,
// 4 = four years prior) to its structured group element.
var EndowmentGroupPaths = map[int]string{
	0: "CYEndwmtFundGrp",
	1: "CYMinus1YrEndwmtFundGrp",
	2: "CYMinus2YrEndwmtFundGrp",
	3: "CYMinus3YrEndwmtFundGrp",
	4: "CYMinus4YrEndwmtFundGrp",
}

// MaxEndowmentOffset is the deepest prior-year block a filing can carry.
const MaxEndowmentOffset = 4
