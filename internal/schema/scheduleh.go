package schema

// scheduleHGroup is one Part I / Part II community-benefit table row group.
type scheduleHGroup struct {
	element string
	label   string
}

// scheduleHGroups lists the community-benefit groups in form order: financial
// assistance and means-tested programs, other benefits, then community
// building activities.
var scheduleHGroups = []scheduleHGroup{
	{"FinancialAssistanceAtCostTyp", "Financial Assistance at Cost"},
	{"UnreimbursedMedicaidGrp", "Unreimbursed Medicaid"},
	{"UnreimbursedCostsGrp", "Unreimbursed Costs"},
	{"TotalFinancialAssistanceTyp", "Total Financial Assistance"},
	{"CommunityHealthServicesGrp", "Community Health Services"},
	{"HealthProfessionsEducationGrp", "Health Professions Education"},
	{"SubsidizedHealthServicesGrp", "Subsidized Health Services"},
	{"ResearchGrp", "Research"},
	{"CashAndInKindContributionsGrp", "Cash and In-Kind Contributions"},
	{"TotalOtherBenefitsGrp", "Total Other Benefits"},
	{"TotalCommunityBenefitsGrp", "Total Community Benefits"},
	{"PhysicalImprvAndHousingGrp", "Physical Improvements and Housing"},
	{"EconomicDevelopmentGrp", "Economic Development"},
	{"CommunitySupportGrp", "Community Support"},
	{"EnvironmentalImprovementsGrp", "Environmental Improvements"},
	{"LeadershipDevelopmentGrp", "Leadership Development"},
	{"CoalitionBuildingGrp", "Coalition Building"},
	{"HealthImprovementAdvocacyGrp", "Health Improvement Advocacy"},
	{"WorkforceDevelopmentGrp", "Workforce Development"},
	// The element name's spelling follows the IRS schema.
	{"OtherCommuntityBuildingActyGrp", "Other Community Building"},
	{"TotalCommuntityBuildingActyGrp", "Total Community Building"},
}

// scheduleHFields are the four measures repeated per group.
var scheduleHFields = []struct {
	element string
	label   string
	kind    Kind
}{
	{"TotalCommunityBenefitExpnsAmt", "Total Expense", Currency},
	{"DirectOffsettingRevenueAmt", "Offsetting Revenue", Currency},
	{"NetCommunityBenefitExpnsAmt", "Net Benefit", Currency},
	{"TotalExpensePct", "Expense Pct", Percent},
}

// scheduleHCatalog is built once from the group and field tables. Schedule H
// filings have no free-text rendition, so the entries carry paths only.
var scheduleHCatalog = buildScheduleHCatalog()

func buildScheduleHCatalog() []FieldSpec {
	specs := make([]FieldSpec, 0, len(scheduleHGroups)*len(scheduleHFields))
	for _, g := range scheduleHGroups {
		for _, f := range scheduleHFields {
			specs = append(specs, FieldSpec{
				Key:      g.element + "_" + f.element,
				Label:    g.label + " " + f.label,
				Kind:     f.kind,
				Paths:    []string{g.element + "/" + f.element},
				Strategy: Simple,
				Window:   defaultWindow,
			})
		}
	}
	return specs
}

// MaxJointVentures caps how many Part IV management company and joint
// venture entries a filing contributes.
const MaxJointVentures = 5

// JointVenturesPath is the Part IV group element holding venture entries.
const JointVenturesPath = "ManagementCoAndJntVenturesGrp"
