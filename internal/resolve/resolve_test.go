package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"plain name", "Example Foundation", "EXAMPLE"},
		{"already uppercase", "EXAMPLE FOUNDATION", "EXAMPLE"},
		{"stacked suffixes strip in turn", "Example  Foundation Inc", "EXAMPLE"},
		{"inc suffix", "Acme Charitable Trust Inc", "ACME CHARITABLE TRUST"},
		{"llc suffix", "Community Clinic LLC", "COMMUNITY CLINIC"},
		{"corp suffix", "Acme Corp", "ACME"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Canonicalize(tc.raw))
		})
	}
}

func TestCanonicalizeMergesVariants(t *testing.T) {
	variants := []string{"Example Foundation", "EXAMPLE FOUNDATION", "Example  Foundation Inc"}
	first := Canonicalize(variants[0])
	for _, v := range variants[1:] {
		assert.Equal(t, first, Canonicalize(v))
	}
}

func TestCanonicalizeUniversityCollapse(t *testing.T) {
	// Documented over-merge: distinct institutions sharing a trailing
	// qualifier collapse to the same key.
	assert.Equal(t, "STATE UNIVERSITY", Canonicalize("Springfield State University"))
	assert.Equal(t, "STATE UNIVERSITY", Canonicalize("SPRINGFIELD STATE UNIVERSITY"))
	assert.Equal(t, "STATE UNIVERSITY", Canonicalize("Portland State University"))

	// Two-word names are already minimal.
	assert.Equal(t, "DUKE UNIVERSITY", Canonicalize("Duke University"))
}
