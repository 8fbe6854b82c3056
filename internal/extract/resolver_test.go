package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/nonprofit-cli/internal/filing"
	"github.com/sells-group/nonprofit-cli/internal/schema"
)

func mustClassify(t *testing.T, data string) *filing.Document {
	t.Helper()
	doc, err := filing.Classify([]byte(data))
	require.NoError(t, err)
	return doc
}

func structuredDoc(t *testing.T, body string) *filing.Document {
	t.Helper()
	return mustClassify(t, `<?xml version="1.0"?>
<Return xmlns="http://www.irs.gov/efile">
  <ReturnData>`+body+`</ReturnData>
</Return>`)
}

func TestResolveStructuredFallbackPaths(t *testing.T) {
	doc := structuredDoc(t, `<IRS990><CYTotalRevenueAmt>250000</CYTotalRevenueAmt></IRS990>`)

	spec := schema.FieldSpec{
		Key:   "CYTotalRevenueAmt",
		Paths: []string{"CYTotalRevenueAmt", "IRS990/CYTotalRevenueAmt"},
	}
	res := Resolve(doc, spec)
	require.Equal(t, Found, res.Reason)
	assert.Equal(t, float64(250000), *res.Value)
}

func TestResolveStructuredMissingField(t *testing.T) {
	doc := structuredDoc(t, `<IRS990></IRS990>`)

	for _, spec := range schema.Catalog(schema.Form990) {
		res := Resolve(doc, spec)
		assert.Nil(t, res.Value, spec.Key)
		assert.Equal(t, NotFound, res.Reason, spec.Key)
	}
}

func TestResolveStructuredMalformed(t *testing.T) {
	doc := structuredDoc(t, `<CYTotalRevenueAmt>not a number</CYTotalRevenueAmt>`)

	res := Resolve(doc, schema.FieldSpec{Key: "x", Paths: []string{"CYTotalRevenueAmt"}})
	assert.Equal(t, Malformed, res.Reason)
	assert.Nil(t, res.Value)
}

func freeTextDoc(t *testing.T, lines ...string) *filing.Document {
	t.Helper()
	body := "Form 990 Return\n"
	for _, l := range lines {
		body += l + "\n"
	}
	return mustClassify(t, body)
}

func TestResolveFreeTextSimpleWindow(t *testing.T) {
	doc := freeTextDoc(t,
		"Part VIII Statement of Revenue",
		"Total Revenue",
		"see schedule",
		"1,500,000")

	spec := schema.FieldSpec{
		Key:      "CYTotalRevenueAmt",
		Triggers: []string{"TOTAL REVENUE"},
		Strategy: schema.Simple,
		Window:   5,
	}
	res := Resolve(doc, spec)
	require.Equal(t, Found, res.Reason)
	assert.Equal(t, float64(1500000), *res.Value)
}

func TestResolveFreeTextWindowOverrun(t *testing.T) {
	doc := freeTextDoc(t,
		"Total Revenue",
		"a", "b", "c", "d",
		"9,999") // one past the five-line window

	spec := schema.FieldSpec{
		Key:      "CYTotalRevenueAmt",
		Triggers: []string{"TOTAL REVENUE"},
		Strategy: schema.Simple,
		Window:   5,
	}
	res := Resolve(doc, spec)
	assert.Equal(t, NotFound, res.Reason)
}

func TestResolveFreeTextDocumentOrderWins(t *testing.T) {
	// The second trigger phrase appears first in the document; it must win
	// even though it is listed second.
	doc := freeTextDoc(t,
		"Revenue Total 111",
		"Total Revenue 222")

	spec := schema.FieldSpec{
		Key:      "CYTotalRevenueAmt",
		Triggers: []string{"TOTAL REVENUE", "REVENUE TOTAL"},
		Strategy: schema.Simple,
		Window:   5,
	}
	res := Resolve(doc, spec)
	require.Equal(t, Found, res.Reason)
	assert.Equal(t, float64(111), *res.Value)
}

func TestResolveEOYColumnRightMost(t *testing.T) {
	doc := freeTextDoc(t, "Accounts receivable 10,000 25,000")

	spec := schema.FieldSpec{
		Key:      "AccountsReceivableEOY",
		Triggers: []string{"ACCOUNTS RECEIVABLE"},
		Strategy: schema.EOYColumn,
	}
	res := Resolve(doc, spec)
	require.Equal(t, Found, res.Reason)
	assert.Equal(t, float64(25000), *res.Value)
}

func TestResolveEOYColumnMarkerLine(t *testing.T) {
	doc := freeTextDoc(t, "Accounts payable end of year 42,000")

	spec := schema.FieldSpec{
		Key:      "AccountsPayableEOY",
		Triggers: []string{"ACCOUNTS PAYABLE"},
		Strategy: schema.EOYColumn,
	}
	res := Resolve(doc, spec)
	require.Equal(t, Found, res.Reason)
	assert.Equal(t, float64(42000), *res.Value)
}

func TestResolveEOYColumnNextLine(t *testing.T) {
	doc := freeTextDoc(t,
		"Accounts receivable",
		"12,000 34,000")

	spec := schema.FieldSpec{
		Key:      "AccountsReceivableEOY",
		Triggers: []string{"ACCOUNTS RECEIVABLE"},
		Strategy: schema.EOYColumn,
	}
	res := Resolve(doc, spec)
	require.Equal(t, Found, res.Reason)
	assert.Equal(t, float64(34000), *res.Value)
}

func TestResolveRestrictionNearbyEOYLine(t *testing.T) {
	doc := freeTextDoc(t,
		"Net assets without donor restrictions",
		"Beginning of year 5,000",
		"End of year 8,000")

	spec := schema.FieldSpec{
		Key:      "WithoutDonorRestrictions",
		Triggers: []string{"WITHOUT DONOR RESTRICTIONS"},
		Strategy: schema.Restriction,
	}
	res := Resolve(doc, spec)
	require.Equal(t, Found, res.Reason)
	assert.Equal(t, float64(8000), *res.Value)
}

func TestResolveSectionExcludesTotalLines(t *testing.T) {
	doc := freeTextDoc(t,
		"Part IX Statement of Functional Expenses",
		"Total fundraising expenses 99,999",
		"Fundraising 7,500")

	spec := schema.FieldSpec{
		Key:      "CYTotalFundraisingExpenseAmt",
		Triggers: []string{"FUNDRAISING EXPENSES"},
		Strategy: schema.Section,
		Section: schema.SectionSpec{
			Headers:     []string{"TOTAL FUNCTIONAL EXPENSES", "STATEMENT OF FUNCTIONAL EXPENSES"},
			SubTriggers: []string{"FUNDRAISING"},
			Exclude:     "TOTAL",
			Window:      30,
		},
	}
	res := Resolve(doc, spec)
	require.Equal(t, Found, res.Reason)
	assert.Equal(t, float64(7500), *res.Value)
}

func TestResolveSectionValueOnNextLine(t *testing.T) {
	doc := freeTextDoc(t,
		"Statement of Functional Expenses",
		"Management and general",
		"310,000")

	spec := schema.FieldSpec{
		Key:      "ManagementAndGeneralAmt",
		Triggers: []string{"MANAGEMENT AND GENERAL"},
		Strategy: schema.Section,
		Section: schema.SectionSpec{
			Headers:     []string{"TOTAL FUNCTIONAL EXPENSES", "STATEMENT OF FUNCTIONAL EXPENSES"},
			SubTriggers: []string{"MANAGEMENT AND GENERAL", "MANAGEMENT & GENERAL"},
			Window:      30,
		},
	}
	res := Resolve(doc, spec)
	require.Equal(t, Found, res.Reason)
	assert.Equal(t, float64(310000), *res.Value)
}

func TestResolveAllComputedFields(t *testing.T) {
	doc := structuredDoc(t, `<AnalysisOfRevenueAndExpenses>
  <InterestOnSavRevAndExpnssAmt>100</InterestOnSavRevAndExpnssAmt>
  <DividendsRevAndExpnssAmt>250</DividendsRevAndExpnssAmt>
</AnalysisOfRevenueAndExpenses>`)

	results := ResolveAll(doc, schema.Catalog(schema.Form990PF))

	inv := results["InvestmentIncome"]
	require.Equal(t, Found, inv.Reason)
	// Missing capital gains addend counts as zero.
	assert.Equal(t, float64(350), *inv.Value)

	// All three addends absent: the computed field is absent too.
	assert.Equal(t, NotFound, results["GrantsAndSalaries"].Reason)
}

func TestResolveAllIsolatesFields(t *testing.T) {
	doc := structuredDoc(t, `<IRS990><CYTotalRevenueAmt>100000</CYTotalRevenueAmt></IRS990>`)

	results := ResolveAll(doc, schema.Catalog(schema.Form990))
	require.Contains(t, results, "CYTotalRevenueAmt")
	assert.Equal(t, Found, results["CYTotalRevenueAmt"].Reason)
	assert.Equal(t, NotFound, results["TravelGrp"].Reason)
}
