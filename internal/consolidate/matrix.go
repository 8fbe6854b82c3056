package consolidate

import (
	"github.com/sells-group/nonprofit-cli/internal/extract"
	"github.com/sells-group/nonprofit-cli/internal/schema"
)

// Direction orders a matrix's year columns.
type Direction int

const (
	// Ascending puts the oldest year first (sheet-per-organization report).
	Ascending Direction = iota
	// Descending puts the newest year first (append-style report).
	Descending
)

// Window is a closed calendar-year range.
type Window struct {
	Start int
	End   int
}

// Contains reports whether year lies inside the window.
func (w Window) Contains(year int) bool {
	return year >= w.Start && year <= w.End
}

// Row is one metric across the matrix's year columns. Cells holds a value
// per year; a nil or absent entry renders blank.
type Row struct {
	Label string
	Kind  schema.Kind
	Cells map[int]*float64
}

// MetricMatrix is one organization's consolidated report block: rows in
// catalog order, columns the year window in the requested direction.
type MetricMatrix struct {
	Org      string
	Category string
	Years    []int
	Rows     []Row

	// Ventures holds Schedule H joint-venture entries per reporting year.
	Ventures map[int][]extract.JointVenture
}

// YearHasData reports whether any row carries a value for the year.
func (m MetricMatrix) YearHasData(year int) bool {
	for _, row := range m.Rows {
		if v, ok := row.Cells[year]; ok && v != nil {
			return true
		}
	}
	return false
}

// Build consolidates a group's filings into a matrix. Duplicate filings for
// the same year overwrite in processing order (last write wins, no
// reconciliation). Endowment history blocks map offset o to absolute year
// taxYear-o and populate only the endowment rows; a derived-only year leaves
// every other row blank for that column.
func Build(group *Group, variant schema.Variant, window Window, direction Direction) MetricMatrix {
	years := window.years(direction)

	matrix := MetricMatrix{
		Org:      group.Name,
		Category: group.Category,
		Years:    years,
		Ventures: make(map[int][]extract.JointVenture),
	}

	catalog := schema.Catalog(variant)
	rowIndex := make(map[string]int)
	for _, spec := range catalog {
		if spec.Hidden {
			continue
		}
		rowIndex[spec.Key] = len(matrix.Rows)
		matrix.Rows = append(matrix.Rows, Row{
			Label: spec.Label,
			Kind:  spec.Kind,
			Cells: make(map[int]*float64),
		})
	}

	endowmentIndex := make(map[string]int)
	if variant == schema.Form990 {
		for _, f := range schema.EndowmentFields {
			endowmentIndex[f.Key] = len(matrix.Rows)
			matrix.Rows = append(matrix.Rows, Row{
				Label: f.Label,
				Kind:  schema.Currency,
				Cells: make(map[int]*float64),
			})
		}
	}

	for _, filing := range group.Filings {
		if !filing.YearKnown || !window.Contains(filing.TaxYear) {
			continue
		}

		// Whole-column overwrite: a re-filing replaces the earlier
		// filing's values for its year, including its blanks.
		for _, spec := range catalog {
			if spec.Hidden {
				continue
			}
			row := &matrix.Rows[rowIndex[spec.Key]]
			res := filing.Fields[spec.Key]
			if res.Reason == extract.Found {
				row.Cells[filing.TaxYear] = res.Value
			} else {
				row.Cells[filing.TaxYear] = nil
			}
		}

		if len(filing.Ventures) > 0 {
			matrix.Ventures[filing.TaxYear] = filing.Ventures
		}

		for offset := 0; offset <= schema.MaxEndowmentOffset; offset++ {
			block, ok := filing.Endowment[offset]
			if !ok {
				continue
			}
			derived := filing.TaxYear - offset
			if !window.Contains(derived) {
				continue
			}
			for key, idx := range endowmentIndex {
				if v, ok := block[key]; ok {
					value := v
					matrix.Rows[idx].Cells[derived] = &value
				}
			}
		}
	}

	return matrix
}

func (w Window) years(direction Direction) []int {
	if w.End < w.Start {
		return nil
	}
	years := make([]int, 0, w.End-w.Start+1)
	if direction == Descending {
		for y := w.End; y >= w.Start; y-- {
			years = append(years, y)
		}
		return years
	}
	for y := w.Start; y <= w.End; y++ {
		years = append(years, y)
	}
	return years
}
