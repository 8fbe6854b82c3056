package report

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sells-group/nonprofit-cli/internal/consolidate"
	"github.com/sells-group/nonprofit-cli/internal/extract"
	"github.com/sells-group/nonprofit-cli/internal/schema"
)

func TestParseLayout(t *testing.T) {
	l, err := ParseLayout("sheets")
	require.NoError(t, err)
	assert.Equal(t, LayoutSheets, l)

	l, err = ParseLayout("append")
	require.NoError(t, err)
	assert.Equal(t, LayoutAppend, l)

	_, err = ParseLayout("pivot")
	assert.Error(t, err)
}

func testMatrix(org, category string, year int, revenue float64) consolidate.MetricMatrix {
	groups := consolidate.NewGroups()
	groups.Add(consolidate.FilingRecord{
		RawName:   org,
		Category:  category,
		TaxYear:   year,
		YearKnown: true,
		Fields: map[string]extract.Result{
			"CYTotalRevenueAmt": extract.Result{Value: &revenue, Reason: extract.Found},
		},
	})
	window := consolidate.Window{Start: 2018, End: 2022}
	return consolidate.Build(groups.All()[0], schema.Form990, window, consolidate.Ascending)
}

func TestSheetsWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	w := NewSheetsWriter(path)

	err := w.Write([]consolidate.MetricMatrix{
		testMatrix("Acme Foundation Inc", "Health", 2021, 100000),
	})
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	sheets := f.GetSheetList()
	require.Equal(t, []string{"Acme Foundation Inc"}, sheets)

	banner, err := f.GetCellValue("Acme Foundation Inc", "A1")
	require.NoError(t, err)
	assert.Equal(t, "NTEE Category: Health", banner)

	metric, err := f.GetCellValue("Acme Foundation Inc", "B4")
	require.NoError(t, err)
	assert.Equal(t, "Total Revenue", metric)

	// 2021 is the fourth year column (2018..2022 ascending from column C).
	value, err := f.GetCellValue("Acme Foundation Inc", "F4", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "100000", value)
}

func TestSheetsWriterRejectsEmpty(t *testing.T) {
	w := NewSheetsWriter(filepath.Join(t.TempDir(), "report.xlsx"))
	assert.Error(t, w.Write(nil))
}

func TestAppendWriterMergesOnRerun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")

	w := NewAppendWriter(path)
	require.NoError(t, w.Write([]consolidate.MetricMatrix{
		testMatrix("Acme Foundation", "Health", 2021, 100000),
	}))

	// Second run: same organization and year with an updated value, plus a
	// new organization in the same category.
	require.NoError(t, w.Write([]consolidate.MetricMatrix{
		testMatrix("Acme Foundation", "Health", 2021, 150000),
		testMatrix("Beacon Clinic", "Health", 2020, 50000),
	}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	require.Equal(t, []string{"Health"}, f.GetSheetList())

	rows, err := f.GetRows("Health", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	// Header plus one row per organization-year; the re-filed 2021 row was
	// replaced, not duplicated.
	require.Len(t, rows, 3)

	assert.Equal(t, "Organization", rows[0][0])
	assert.Equal(t, "Year", rows[0][2])

	assert.Equal(t, "Acme Foundation", rows[1][0])
	assert.Equal(t, "2021", rows[1][2])
	assert.Equal(t, "150000", rows[1][3]) // Total Revenue is the first metric column

	assert.Equal(t, "Beacon Clinic", rows[2][0])
	assert.Equal(t, "2020", rows[2][2])
}

func TestMergeRowsSortsByOrgThenYearDesc(t *testing.T) {
	existing := []appendRow{
		{org: "Beta", year: 2020, values: map[string]any{colOrganization: "Beta", colYear: 2020}},
		{org: "Alpha", year: 2019, values: map[string]any{colOrganization: "Alpha", colYear: 2019}},
	}
	fresh := []appendRow{
		{org: "Alpha", year: 2021, values: map[string]any{colOrganization: "Alpha", colYear: 2021}},
	}

	merged := mergeRows(existing, fresh)
	require.Len(t, merged, 3)
	assert.Equal(t, "Alpha", merged[0].org)
	assert.Equal(t, 2021, merged[0].year)
	assert.Equal(t, "Alpha", merged[1].org)
	assert.Equal(t, 2019, merged[1].year)
	assert.Equal(t, "Beta", merged[2].org)
}

func TestParseCellNumber(t *testing.T) {
	v, ok := parseCellNumber("1,234")
	require.True(t, ok)
	assert.Equal(t, float64(1234), v)

	v, ok = parseCellNumber("$ (2,000)")
	require.True(t, ok)
	assert.Equal(t, float64(-2000), v)

	_, ok = parseCellNumber("Acme Foundation")
	assert.False(t, ok)
}
