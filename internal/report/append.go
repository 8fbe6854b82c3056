package report

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/sells-group/nonprofit-cli/internal/consolidate"
	"github.com/sells-group/nonprofit-cli/internal/schema"
)

// Fixed leading columns of the append layout.
const (
	colOrganization = "Organization"
	colCategory     = "NTEE Category"
	colYear         = "Year"
)

// AppendWriter renders one worksheet per NTEE category, one row per
// organization-year. When the target workbook already exists its rows are
// kept, except that a row matching a new (organization, year) pair is
// replaced — re-running a batch updates instead of duplicating.
type AppendWriter struct {
	path string
}

// NewAppendWriter creates a writer targeting the given workbook path.
func NewAppendWriter(path string) *AppendWriter {
	return &AppendWriter{path: path}
}

// appendRow is one organization-year line in a category sheet. Values are
// keyed by column label; numeric values stay float64 for cell formatting.
type appendRow struct {
	org    string
	year   int
	values map[string]any
}

func (r appendRow) key() string { return r.org + "_" + strconv.Itoa(r.year) }

// Write merges the matrices into the workbook and saves it.
func (w *AppendWriter) Write(matrices []consolidate.MetricMatrix) error {
	if len(matrices) == 0 {
		return eris.New("report: nothing to write")
	}

	columns, kinds := w.columns(matrices)

	newRows := make(map[string][]appendRow)
	var categoryOrder []string
	for _, m := range matrices {
		category := m.Category
		if category == "" {
			category = "Unknown"
		}
		sheet := CleanSheetName(category)
		if _, ok := newRows[sheet]; !ok {
			categoryOrder = append(categoryOrder, sheet)
		}
		newRows[sheet] = append(newRows[sheet], w.matrixRows(m, category)...)
	}

	existing, err := w.readExisting()
	if err != nil {
		return err
	}
	for sheet := range existing {
		if _, ok := newRows[sheet]; !ok {
			categoryOrder = append(categoryOrder, sheet)
		}
	}

	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck

	styles, err := registerStyles(f)
	if err != nil {
		return err
	}

	for _, sheet := range categoryOrder {
		rows := mergeRows(existing[sheet], newRows[sheet])
		if err := w.writeSheet(f, sheet, columns, kinds, rows, styles); err != nil {
			return err
		}
		zap.L().Debug("report: wrote category sheet",
			zap.String("sheet", sheet),
			zap.Int("rows", len(rows)))
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return eris.Wrap(err, "report: drop default sheet")
	}
	if err := f.SaveAs(w.path); err != nil {
		return eris.Wrapf(err, "report: save %s", w.path)
	}
	return nil
}

// columns derives the sheet layout from the matrices: the fixed leading
// columns, one column per metric row, and joint-venture columns when any
// matrix carries ventures.
func (w *AppendWriter) columns(matrices []consolidate.MetricMatrix) ([]string, map[string]schema.Kind) {
	columns := []string{colOrganization, colCategory, colYear}
	kinds := make(map[string]schema.Kind)

	for _, r := range matrices[0].Rows {
		columns = append(columns, r.Label)
		kinds[r.Label] = r.Kind
	}

	hasVentures := false
	for _, m := range matrices {
		if len(m.Ventures) > 0 {
			hasVentures = true
			break
		}
	}
	if hasVentures {
		for i := 1; i <= schema.MaxJointVentures; i++ {
			columns = append(columns,
				fmt.Sprintf("JV%d Name", i),
				fmt.Sprintf("JV%d Activity", i),
				fmt.Sprintf("JV%d Org Ownership", i),
				fmt.Sprintf("JV%d Physician Ownership", i))
			kinds[fmt.Sprintf("JV%d Org Ownership", i)] = schema.Percent
			kinds[fmt.Sprintf("JV%d Physician Ownership", i)] = schema.Percent
		}
	}

	return columns, kinds
}

// matrixRows flattens one organization's matrix into year rows, skipping
// years with no data at all.
func (w *AppendWriter) matrixRows(m consolidate.MetricMatrix, category string) []appendRow {
	var rows []appendRow
	for _, year := range m.Years {
		if !m.YearHasData(year) && len(m.Ventures[year]) == 0 {
			continue
		}
		values := map[string]any{
			colOrganization: m.Org,
			colCategory:     category,
			colYear:         year,
		}
		for _, r := range m.Rows {
			if v, ok := r.Cells[year]; ok && v != nil {
				values[r.Label] = *v
			}
		}
		for i, v := range m.Ventures[year] {
			if i >= schema.MaxJointVentures {
				break
			}
			n := i + 1
			values[fmt.Sprintf("JV%d Name", n)] = v.Name
			values[fmt.Sprintf("JV%d Activity", n)] = v.Activity
			if v.OrgOwnershipPct != nil {
				values[fmt.Sprintf("JV%d Org Ownership", n)] = *v.OrgOwnershipPct
			}
			if v.PhysicianOwnershipPct != nil {
				values[fmt.Sprintf("JV%d Physician Ownership", n)] = *v.PhysicianOwnershipPct
			}
		}
		rows = append(rows, appendRow{org: m.Org, year: year, values: values})
	}
	return rows
}

// readExisting loads the current workbook's rows keyed by sheet name. A
// missing file is an empty workbook, not an error.
func (w *AppendWriter) readExisting() (map[string][]appendRow, error) {
	if _, err := os.Stat(w.path); os.IsNotExist(err) {
		return nil, nil
	}

	book, err := xlsx.OpenFile(w.path)
	if err != nil {
		return nil, eris.Wrapf(err, "report: read existing workbook %s", w.path)
	}

	existing := make(map[string][]appendRow)
	for _, sheet := range book.Sheets {
		if len(sheet.Rows) < 2 {
			continue
		}
		header := make([]string, len(sheet.Rows[0].Cells))
		for i, cell := range sheet.Rows[0].Cells {
			header[i] = strings.TrimSpace(cell.String())
		}

		for _, srcRow := range sheet.Rows[1:] {
			values := make(map[string]any, len(header))
			for i, cell := range srcRow.Cells {
				if i >= len(header) || header[i] == "" {
					continue
				}
				text := strings.TrimSpace(cell.String())
				if text == "" {
					continue
				}
				if v, ok := parseCellNumber(text); ok {
					values[header[i]] = v
				} else {
					values[header[i]] = text
				}
			}
			org, _ := values[colOrganization].(string)
			if org == "" {
				continue
			}
			year := 0
			if y, ok := values[colYear].(float64); ok {
				year = int(y)
			}
			values[colYear] = year
			existing[sheet.Name] = append(existing[sheet.Name], appendRow{org: org, year: year, values: values})
		}
	}
	return existing, nil
}

// parseCellNumber reads a numeric cell that may come back with its display
// formatting applied: currency symbols, thousands separators, percent signs,
// and accounting-style parenthesized negatives.
func parseCellNumber(text string) (float64, bool) {
	clean := strings.NewReplacer("$", "", ",", "", "%", "", " ", "").Replace(text)
	negative := false
	if strings.HasPrefix(clean, "(") && strings.HasSuffix(clean, ")") {
		negative = true
		clean = strings.TrimSuffix(strings.TrimPrefix(clean, "("), ")")
	}
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, false
	}
	if negative {
		v = -v
	}
	return v, true
}

// mergeRows keeps existing rows except those superseded by a new
// (organization, year) pair, then sorts by organization ascending and year
// descending.
func mergeRows(existing, fresh []appendRow) []appendRow {
	superseded := make(map[string]bool, len(fresh))
	for _, r := range fresh {
		superseded[r.key()] = true
	}

	merged := make([]appendRow, 0, len(existing)+len(fresh))
	for _, r := range existing {
		if !superseded[r.key()] {
			merged = append(merged, r)
		}
	}
	merged = append(merged, fresh...)

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].org != merged[j].org {
			return merged[i].org < merged[j].org
		}
		return merged[i].year > merged[j].year
	})
	return merged
}

func (w *AppendWriter) writeSheet(f *excelize.File, sheet string, columns []string, kinds map[string]schema.Kind, rows []appendRow, styles cellStyles) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return eris.Wrapf(err, "report: create sheet %q", sheet)
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return eris.Wrap(err, "report: cell name")
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return eris.Wrap(err, "report: header cell")
		}
		if err := f.SetCellStyle(sheet, cell, cell, styles.header); err != nil {
			return eris.Wrap(err, "report: header style")
		}
	}

	for rowIdx, row := range rows {
		for colIdx, col := range columns {
			v, ok := row.values[col]
			if !ok {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return eris.Wrap(err, "report: cell name")
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return eris.Wrap(err, "report: data cell")
			}
			if _, isNum := v.(float64); isNum && col != colYear {
				if err := f.SetCellStyle(sheet, cell, cell, styles.forKind(kinds[col])); err != nil {
					return eris.Wrap(err, "report: data style")
				}
			}
		}
	}

	if err := f.SetColWidth(sheet, "A", "B", 32); err != nil {
		return eris.Wrap(err, "report: column width")
	}
	if len(columns) > 3 {
		first, _ := excelize.ColumnNumberToName(4)
		last, _ := excelize.ColumnNumberToName(len(columns))
		if err := f.SetColWidth(sheet, first, last, 16); err != nil {
			return eris.Wrap(err, "report: column width")
		}
	}
	return nil
}
