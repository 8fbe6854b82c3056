package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndowmentStructuredOffsets(t *testing.T) {
	doc := structuredDoc(t, `<IRS990ScheduleD>
  <CYEndwmtFundGrp>
    <BeginningYearBalanceAmt>1000000</BeginningYearBalanceAmt>
    <EndYearBalanceAmt>1100000</EndYearBalanceAmt>
  </CYEndwmtFundGrp>
  <CYMinus2YrEndwmtFundGrp>
    <EndYearBalanceAmt>900000</EndYearBalanceAmt>
  </CYMinus2YrEndwmtFundGrp>
  <CYMinus3YrEndwmtFundGrp>
  </CYMinus3YrEndwmtFundGrp>
</IRS990ScheduleD>`)

	history := Endowment(doc)
	require.Len(t, history, 2)

	assert.Equal(t, float64(1000000), history[0]["BeginningYearBalanceAmt"])
	assert.Equal(t, float64(1100000), history[0]["EndYearBalanceAmt"])
	assert.Equal(t, float64(900000), history[2]["EndYearBalanceAmt"])

	// Empty blocks are dropped, never recorded as zero-value years.
	assert.NotContains(t, history, 3)
}

func TestEndowmentStructuredWholeDocumentFallback(t *testing.T) {
	// No Schedule D wrapper; the group is found anywhere in the return.
	doc := structuredDoc(t, `<CYEndwmtFundGrp>
  <ContributionsAmt>50000</ContributionsAmt>
</CYEndwmtFundGrp>`)

	history := Endowment(doc)
	require.Len(t, history, 1)
	assert.Equal(t, float64(50000), history[0]["ContributionsAmt"])
}

func TestEndowmentFreeText(t *testing.T) {
	doc := freeTextDoc(t,
		"Schedule D, Part V Endowment Funds",
		"Beginning of year balance 2,000,000",
		"Contributions 100,000",
		"End of year balance 2,150,000",
		"Part VI Land Buildings and Equipment",
		"Beginning of year balance 999")

	history := Endowment(doc)
	require.Len(t, history, 1)

	year := history[0]
	assert.Equal(t, float64(2000000), year["BeginningYearBalanceAmt"])
	assert.Equal(t, float64(100000), year["ContributionsAmt"])
	assert.Equal(t, float64(2150000), year["EndYearBalanceAmt"])
}

func TestEndowmentFreeTextNoSection(t *testing.T) {
	doc := freeTextDoc(t, "Contributions 100,000")
	assert.Empty(t, Endowment(doc))
}
