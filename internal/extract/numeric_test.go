package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		name  string
		line  string
		want  float64
		found bool
	}{
		{"currency with cents", "$1,234.50", 1234.5, true},
		{"parenthesized negative", "(2,000)", -2000, true},
		{"last token wins", "Total Revenue 500000", 500000, true},
		{"label then columns", "Cash 1,000 2,500", 2500, true},
		{"no numbers", "no numbers here", 0, false},
		{"empty", "", 0, false},
		{"zero is found", "Fundraising 0", 0, true},
		{"dotted form line", "Total expenses ......... 1,234,567", 1234567, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, ok := ParseAmount(tc.line)
			require.Equal(t, tc.found, ok)
			if tc.found {
				assert.Equal(t, tc.want, v)
			}
		})
	}
}

func TestParseAmountPrefersTrailingToken(t *testing.T) {
	v, ok := ParseAmount("Line 12 Total revenue 987,654")
	require.True(t, ok)
	assert.Equal(t, float64(987654), v)
}

func TestAllAmounts(t *testing.T) {
	values := AllAmounts("Cash 0 1,000 2,500")
	assert.Equal(t, []float64{1000, 2500}, values)

	assert.Empty(t, AllAmounts("no values"))
	assert.Empty(t, AllAmounts(""))
	// Zeros are placeholders in columnar text, never candidates.
	assert.Empty(t, AllAmounts("0 0 0"))
}
