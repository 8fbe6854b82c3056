// Package report renders consolidated metric matrices to XLSX workbooks in
// two layouts: one sheet per organization with years as columns, or one
// sheet per category with one row per organization-year (append mode).
package report

import (
	"github.com/rotisserie/eris"
	"github.com/xuri/excelize/v2"

	"github.com/sells-group/nonprofit-cli/internal/schema"
)

// Worksheet number formats. Currency uses the accounting format so negatives
// render in parentheses and zero as a dash.
const (
	numFmtAccounting = `_($* #,##0_);_($* (#,##0);_($* "-"_);_(@_)`
	numFmtCount      = `#,##0`
	numFmtPercent    = `0.0000%`
)

// Layout selects the workbook shape.
type Layout string

const (
	// LayoutSheets writes one worksheet per organization.
	LayoutSheets Layout = "sheets"
	// LayoutAppend writes one worksheet per category and merges into an
	// existing workbook.
	LayoutAppend Layout = "append"
)

// ParseLayout validates a layout flag value.
func ParseLayout(s string) (Layout, error) {
	switch Layout(s) {
	case LayoutSheets, LayoutAppend:
		return Layout(s), nil
	default:
		return "", eris.Errorf("report: unknown layout %q (valid: sheets, append)", s)
	}
}

// cellStyles holds the style IDs registered on one workbook.
type cellStyles struct {
	header   int
	currency int
	count    int
	percent  int
}

func registerStyles(f *excelize.File) (cellStyles, error) {
	var s cellStyles
	var err error

	if s.header, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err != nil {
		return s, eris.Wrap(err, "report: header style")
	}

	accounting := numFmtAccounting
	if s.currency, err = f.NewStyle(&excelize.Style{CustomNumFmt: &accounting}); err != nil {
		return s, eris.Wrap(err, "report: currency style")
	}

	count := numFmtCount
	if s.count, err = f.NewStyle(&excelize.Style{CustomNumFmt: &count}); err != nil {
		return s, eris.Wrap(err, "report: count style")
	}

	percent := numFmtPercent
	if s.percent, err = f.NewStyle(&excelize.Style{CustomNumFmt: &percent}); err != nil {
		return s, eris.Wrap(err, "report: percent style")
	}

	return s, nil
}

func (s cellStyles) forKind(kind schema.Kind) int {
	switch kind {
	case schema.Count:
		return s.count
	case schema.Percent:
		return s.percent
	default:
		return s.currency
	}
}
