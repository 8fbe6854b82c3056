package report

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/sells-group/nonprofit-cli/internal/consolidate"
	"github.com/sells-group/nonprofit-cli/internal/schema"
)

// SheetsWriter renders one worksheet per organization: a category banner,
// then metrics as rows and the year window as columns.
type SheetsWriter struct {
	path string
}

// NewSheetsWriter creates a writer targeting the given workbook path.
func NewSheetsWriter(path string) *SheetsWriter {
	return &SheetsWriter{path: path}
}

// Write renders the matrices and saves the workbook. The target file is
// replaced outright; append semantics belong to AppendWriter.
func (w *SheetsWriter) Write(matrices []consolidate.MetricMatrix) error {
	if len(matrices) == 0 {
		return eris.New("report: nothing to write")
	}

	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck

	styles, err := registerStyles(f)
	if err != nil {
		return err
	}

	namer := newSheetNamer()
	for _, m := range matrices {
		sheet := namer.claim(m.Org)
		if _, err := f.NewSheet(sheet); err != nil {
			return eris.Wrapf(err, "report: create sheet %q", sheet)
		}
		if err := w.writeSheet(f, sheet, m, styles); err != nil {
			return err
		}
		zap.L().Debug("report: wrote organization sheet",
			zap.String("sheet", sheet),
			zap.Int("rows", len(m.Rows)))
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return eris.Wrap(err, "report: drop default sheet")
	}
	if err := f.SaveAs(w.path); err != nil {
		return eris.Wrapf(err, "report: save %s", w.path)
	}
	return nil
}

func (w *SheetsWriter) writeSheet(f *excelize.File, sheet string, m consolidate.MetricMatrix, styles cellStyles) error {
	category := m.Category
	if category == "" {
		category = "Unknown"
	}
	if err := f.SetCellValue(sheet, "A1", fmt.Sprintf("NTEE Category: %s", category)); err != nil {
		return eris.Wrap(err, "report: category banner")
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", styles.header); err != nil {
		return eris.Wrap(err, "report: banner style")
	}

	// Header row sits below the banner, matching the original layout.
	const headerRow = 3
	setCell := func(col, row int, v any) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return eris.Wrap(err, "report: cell name")
		}
		return eris.Wrap(f.SetCellValue(sheet, cell, v), "report: set cell")
	}

	if err := setCell(1, headerRow, "Organization"); err != nil {
		return err
	}
	if err := setCell(2, headerRow, "Metric"); err != nil {
		return err
	}
	for i, year := range m.Years {
		if err := setCell(3+i, headerRow, year); err != nil {
			return err
		}
	}
	lastCol, err := excelize.CoordinatesToCellName(2+len(m.Years), headerRow)
	if err != nil {
		return eris.Wrap(err, "report: header range")
	}
	if err := f.SetCellStyle(sheet, "A3", lastCol, styles.header); err != nil {
		return eris.Wrap(err, "report: header style")
	}

	row := headerRow + 1
	for _, r := range m.Rows {
		if err := setCell(1, row, m.Org); err != nil {
			return err
		}
		if err := setCell(2, row, r.Label); err != nil {
			return err
		}
		for i, year := range m.Years {
			v, ok := r.Cells[year]
			if !ok || v == nil {
				continue
			}
			col := 3 + i
			if err := setCell(col, row, *v); err != nil {
				return err
			}
			cell, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return eris.Wrap(err, "report: cell name")
			}
			if err := f.SetCellStyle(sheet, cell, cell, styles.forKind(r.Kind)); err != nil {
				return eris.Wrap(err, "report: cell style")
			}
		}
		row++
	}

	if err := w.writeVentures(f, sheet, m, row+1, setCell, styles); err != nil {
		return err
	}

	if err := f.SetColWidth(sheet, "A", "A", 32); err != nil {
		return eris.Wrap(err, "report: column width")
	}
	if err := f.SetColWidth(sheet, "B", "B", 38); err != nil {
		return eris.Wrap(err, "report: column width")
	}
	if len(m.Years) > 0 {
		first, _ := excelize.ColumnNumberToName(3)
		last, _ := excelize.ColumnNumberToName(2 + len(m.Years))
		if err := f.SetColWidth(sheet, first, last, 16); err != nil {
			return eris.Wrap(err, "report: column width")
		}
	}
	return nil
}

// writeVentures appends the Schedule H joint-venture block below the metric
// rows, newest year first.
func (w *SheetsWriter) writeVentures(f *excelize.File, sheet string, m consolidate.MetricMatrix, startRow int, setCell func(col, row int, v any) error, styles cellStyles) error {
	if len(m.Ventures) == 0 {
		return nil
	}

	row := startRow
	if err := setCell(1, row, "Joint Ventures"); err != nil {
		return err
	}
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return eris.Wrap(err, "report: cell name")
	}
	if err := f.SetCellStyle(sheet, cell, cell, styles.header); err != nil {
		return eris.Wrap(err, "report: ventures header style")
	}
	row++

	headers := []string{"Year", "Name", "Activity", "Org Ownership", "Physician Ownership"}
	for i, h := range headers {
		if err := setCell(1+i, row, h); err != nil {
			return err
		}
	}
	row++

	// Years in column order keeps the block deterministic.
	for _, year := range m.Years {
		for _, v := range m.Ventures[year] {
			if err := setCell(1, row, year); err != nil {
				return err
			}
			if err := setCell(2, row, v.Name); err != nil {
				return err
			}
			if err := setCell(3, row, v.Activity); err != nil {
				return err
			}
			if v.OrgOwnershipPct != nil {
				if err := w.setPct(f, sheet, 4, row, *v.OrgOwnershipPct, setCell, styles); err != nil {
					return err
				}
			}
			if v.PhysicianOwnershipPct != nil {
				if err := w.setPct(f, sheet, 5, row, *v.PhysicianOwnershipPct, setCell, styles); err != nil {
					return err
				}
			}
			row++
		}
	}
	return nil
}

func (w *SheetsWriter) setPct(f *excelize.File, sheet string, col, row int, v float64, setCell func(col, row int, v any) error, styles cellStyles) error {
	if err := setCell(col, row, v); err != nil {
		return err
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return eris.Wrap(err, "report: cell name")
	}
	return eris.Wrap(f.SetCellStyle(sheet, cell, cell, styles.forKind(schema.Percent)), "report: pct style")
}
