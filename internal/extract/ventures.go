package extract

import (
	"strconv"
	"strings"

	"github.com/sells-group/nonprofit-cli/internal/filing"
	"github.com/sells-group/nonprofit-cli/internal/schema"
)

// JointVenture is one Schedule H Part IV management company or joint venture
// entry. Ownership percentages are nil when the filing omits them.
type JointVenture struct {
	Name                  string
	Activity              string
	OrgOwnershipPct       *float64
	PhysicianOwnershipPct *float64
}

// JointVentures extracts Schedule H Part IV entries from a structured
// filing, capped at the first five. Free-text filings carry no venture
// table.
func JointVentures(doc *filing.Document) []JointVenture {
	if doc.Format != filing.Structured {
		return nil
	}

	var ventures []JointVenture
	for _, group := range doc.Root.FindAll(schema.JointVenturesPath) {
		if len(ventures) >= schema.MaxJointVentures {
			break
		}
		v := JointVenture{
			Name:                  strings.TrimSpace(group.FindText("BusinessNameLine1Txt")),
			Activity:              strings.TrimSpace(group.FindText("PrimaryActivitiesTxt")),
			OrgOwnershipPct:       findPct(group, "OrgProfitOrOwnershipPct"),
			PhysicianOwnershipPct: findPct(group, "PhysiciansProfitOrOwnershipPct"),
		}
		ventures = append(ventures, v)
	}
	return ventures
}

func findPct(group *filing.Node, path string) *float64 {
	text := strings.TrimSpace(group.FindText(path))
	if text == "" {
		return nil
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil
	}
	return &v
}
