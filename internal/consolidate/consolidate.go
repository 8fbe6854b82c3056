// Package consolidate merges per-filing extraction results into per-
// organization metric matrices keyed by field and calendar year.
package consolidate

import (
	"github.com/sells-group/nonprofit-cli/internal/extract"
	"github.com/sells-group/nonprofit-cli/internal/resolve"
)

// FilingRecord is the extraction output of one filing, ready to merge.
type FilingRecord struct {
	RawName   string
	Category  string
	SourceURL string

	// TaxYear is the reporting year; YearKnown is false when the filing
	// carried no recognizable year marker. Unknown-year filings are never
	// assigned to a matrix column.
	TaxYear   int
	YearKnown bool

	Fields     map[string]extract.Result
	Executives []extract.ExecutiveRecord
	Endowment  map[int]extract.EndowmentYear
	Ventures   []extract.JointVenture
}

// Group is all filings that canonicalized to one organization.
type Group struct {
	// Key is the canonical merge key.
	Key string
	// Name is the first raw name seen, kept for display.
	Name string
	// Category is the NTEE category tag from the listing page.
	Category string

	Filings []FilingRecord
}

// Groups accumulates filings by canonical organization key. Insertion order
// is preserved so downstream output is deterministic.
type Groups struct {
	byKey map[string]*Group
	order []string
}

// NewGroups creates an empty accumulator.
func NewGroups() *Groups {
	return &Groups{byKey: make(map[string]*Group)}
}

// Add merges a filing into its organization's group, creating the group on
// first sight.
func (g *Groups) Add(rec FilingRecord) *Group {
	key := resolve.Canonicalize(rec.RawName)
	group, ok := g.byKey[key]
	if !ok {
		group = &Group{Key: key, Name: rec.RawName, Category: rec.Category}
		g.byKey[key] = group
		g.order = append(g.order, key)
	}
	if group.Category == "" {
		group.Category = rec.Category
	}
	group.Filings = append(group.Filings, rec)
	return group
}

// All returns the groups in first-seen order.
func (g *Groups) All() []*Group {
	groups := make([]*Group, 0, len(g.order))
	for _, key := range g.order {
		groups = append(groups, g.byKey[key])
	}
	return groups
}

// Len reports the number of distinct organizations.
func (g *Groups) Len() int { return len(g.order) }
