package consolidate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/nonprofit-cli/internal/extract"
	"github.com/sells-group/nonprofit-cli/internal/schema"
)

func foundResult(v float64) extract.Result {
	return extract.Result{Value: &v, Reason: extract.Found}
}

func revenueFiling(name string, year int, revenue float64) FilingRecord {
	return FilingRecord{
		RawName:   name,
		TaxYear:   year,
		YearKnown: true,
		Fields: map[string]extract.Result{
			"CYTotalRevenueAmt": foundResult(revenue),
		},
	}
}

func findRow(t *testing.T, m MetricMatrix, label string) Row {
	t.Helper()
	for _, row := range m.Rows {
		if row.Label == label {
			return row
		}
	}
	t.Fatalf("row %q not in matrix", label)
	return Row{}
}

func TestGroupsMergeByCanonicalKey(t *testing.T) {
	groups := NewGroups()
	groups.Add(revenueFiling("Acme Foundation", 2021, 100000))
	groups.Add(revenueFiling("ACME FOUNDATION", 2022, 120000))
	groups.Add(revenueFiling("Other Org", 2022, 5000))

	require.Equal(t, 2, groups.Len())

	all := groups.All()
	assert.Equal(t, "Acme Foundation", all[0].Name) // first raw name wins
	assert.Len(t, all[0].Filings, 2)
	assert.Equal(t, "Other Org", all[1].Name)
}

func TestGroupsKeepFirstCategory(t *testing.T) {
	groups := NewGroups()
	rec := revenueFiling("Acme Foundation", 2021, 1)
	groups.Add(rec)

	rec2 := revenueFiling("ACME FOUNDATION", 2022, 2)
	rec2.Category = "Health"
	group := groups.Add(rec2)

	assert.Equal(t, "Health", group.Category)

	rec3 := revenueFiling("acme foundation", 2020, 3)
	rec3.Category = "Education"
	group = groups.Add(rec3)
	assert.Equal(t, "Health", group.Category)
}

func TestBuildEndToEnd(t *testing.T) {
	groups := NewGroups()
	groups.Add(revenueFiling("ACME FOUNDATION", 2021, 100000))
	groups.Add(revenueFiling("ACME FOUNDATION", 2022, 120000))

	window := Window{Start: 2018, End: 2022}
	matrix := Build(groups.All()[0], schema.Form990, window, Ascending)

	assert.Equal(t, []int{2018, 2019, 2020, 2021, 2022}, matrix.Years)

	row := findRow(t, matrix, "Total Revenue")
	require.NotNil(t, row.Cells[2021])
	assert.Equal(t, float64(100000), *row.Cells[2021])
	require.NotNil(t, row.Cells[2022])
	assert.Equal(t, float64(120000), *row.Cells[2022])
	assert.Nil(t, row.Cells[2018])
	assert.Nil(t, row.Cells[2019])
	assert.Nil(t, row.Cells[2020])
}

func TestBuildIdempotent(t *testing.T) {
	groups := NewGroups()
	groups.Add(revenueFiling("ACME FOUNDATION", 2021, 100000))
	rec := revenueFiling("ACME FOUNDATION", 2022, 120000)
	rec.Endowment = map[int]extract.EndowmentYear{
		0: {"EndYearBalanceAmt": 500000},
		2: {"EndYearBalanceAmt": 400000},
	}
	groups.Add(rec)

	window := Window{Start: 2018, End: 2022}
	first := Build(groups.All()[0], schema.Form990, window, Ascending)
	second := Build(groups.All()[0], schema.Form990, window, Ascending)

	require.Equal(t, len(first.Rows), len(second.Rows))
	for i := range first.Rows {
		assert.Equal(t, first.Rows[i].Label, second.Rows[i].Label)
		for _, year := range first.Years {
			a, b := first.Rows[i].Cells[year], second.Rows[i].Cells[year]
			if a == nil {
				assert.Nil(t, b)
				continue
			}
			require.NotNil(t, b)
			assert.Equal(t, *a, *b)
		}
	}
}

func TestBuildLastWriteWins(t *testing.T) {
	groups := NewGroups()
	groups.Add(revenueFiling("ACME FOUNDATION", 2021, 100000))
	groups.Add(revenueFiling("ACME FOUNDATION", 2021, 999999)) // re-filing

	matrix := Build(groups.All()[0], schema.Form990, Window{Start: 2018, End: 2022}, Ascending)
	row := findRow(t, matrix, "Total Revenue")
	require.NotNil(t, row.Cells[2021])
	assert.Equal(t, float64(999999), *row.Cells[2021])
}

func TestBuildExcludesUnknownYear(t *testing.T) {
	groups := NewGroups()
	rec := revenueFiling("ACME FOUNDATION", 0, 100000)
	rec.YearKnown = false
	groups.Add(rec)

	matrix := Build(groups.All()[0], schema.Form990, Window{Start: 2018, End: 2022}, Ascending)
	row := findRow(t, matrix, "Total Revenue")
	for _, year := range matrix.Years {
		assert.Nil(t, row.Cells[year])
	}
}

func TestBuildWindowFilter(t *testing.T) {
	groups := NewGroups()
	groups.Add(revenueFiling("ACME FOUNDATION", 2015, 100000)) // below window
	groups.Add(revenueFiling("ACME FOUNDATION", 2020, 200000))

	matrix := Build(groups.All()[0], schema.Form990, Window{Start: 2018, End: 2022}, Ascending)
	row := findRow(t, matrix, "Total Revenue")
	assert.Nil(t, row.Cells[2015])
	require.NotNil(t, row.Cells[2020])
	assert.Equal(t, float64(200000), *row.Cells[2020])
}

func TestBuildEndowmentOffsets(t *testing.T) {
	groups := NewGroups()
	rec := revenueFiling("ACME FOUNDATION", 2022, 100000)
	rec.Endowment = map[int]extract.EndowmentYear{
		0: {"EndYearBalanceAmt": 500000},
		2: {"EndYearBalanceAmt": 400000},
		// No offset-3 entry: an all-empty block was dropped upstream and
		// must not surface as year 2019.
	}
	groups.Add(rec)

	matrix := Build(groups.All()[0], schema.Form990, Window{Start: 2018, End: 2022}, Ascending)

	ending := findRow(t, matrix, "Endowment Ending Balance")
	require.NotNil(t, ending.Cells[2022])
	assert.Equal(t, float64(500000), *ending.Cells[2022])
	require.NotNil(t, ending.Cells[2020])
	assert.Equal(t, float64(400000), *ending.Cells[2020])
	assert.Nil(t, ending.Cells[2019])

	// A derived-only year populates endowment rows only.
	revenue := findRow(t, matrix, "Total Revenue")
	assert.Nil(t, revenue.Cells[2020])
}

func TestBuildDescendingYears(t *testing.T) {
	matrix := Build(&Group{Name: "X"}, schema.Form990, Window{Start: 2020, End: 2022}, Descending)
	assert.Equal(t, []int{2022, 2021, 2020}, matrix.Years)
}

func TestBuildRowOrderFollowsCatalog(t *testing.T) {
	matrix := Build(&Group{Name: "X"}, schema.Form990, Window{Start: 2020, End: 2022}, Ascending)

	catalog := schema.Catalog(schema.Form990)
	require.Equal(t, len(catalog)+len(schema.EndowmentFields), len(matrix.Rows))
	assert.Equal(t, catalog[0].Label, matrix.Rows[0].Label)
	assert.Equal(t, "Endowment Ending Balance", matrix.Rows[len(matrix.Rows)-1].Label)
}

func TestBuildHidesAddendSourceRows(t *testing.T) {
	matrix := Build(&Group{Name: "X"}, schema.Form990PF, Window{Start: 2020, End: 2022}, Ascending)
	for _, row := range matrix.Rows {
		assert.NotEqual(t, "Interest Income", row.Label)
		assert.NotEqual(t, "Dividend Income", row.Label)
	}
}
