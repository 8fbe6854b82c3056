package schema

// irs990Paths builds the standard fallback path list for a top-level Form 990
// element: the bare element, then the IRS990 return body, then Part IX.
func irs990Paths(element string) []string {
	return []string{
		element,
		"IRS990/" + element,
		"Form990PartIX/" + element,
	}
}

// form990Catalog mirrors the Form 990 line items the report carries, in row
// order.
var form990Catalog = []FieldSpec{
	{
		Key: "CYTotalRevenueAmt", Label: "Total Revenue", Kind: Currency,
		Paths:    irs990Paths("CYTotalRevenueAmt"),
		Triggers: []string{"TOTAL REVENUE", "REVENUE TOTAL"},
		Strategy: Simple, Window: defaultWindow,
	},
	{
		Key: "CYContributionsGrantsAmt", Label: "Total Contributions", Kind: Currency,
		Paths:    irs990Paths("CYContributionsGrantsAmt"),
		Triggers: []string{"CONTRIBUTIONS AND GRANTS", "GIFTS GRANTS", "CONTRIBUTIONS GIFTS GRANTS", "TOTAL CONTRIBUTIONS"},
		Strategy: Simple, Window: defaultWindow,
	},
	{
		Key: "CYInvestmentIncomeAmt", Label: "Investment Income", Kind: Currency,
		Paths:    irs990Paths("CYInvestmentIncomeAmt"),
		Triggers: []string{"INVESTMENT INCOME", "INVESTMENT EARNINGS", "DIVIDENDS INTEREST"},
		Strategy: Simple, Window: defaultWindow,
	},
	{
		Key: "CYGrantsAndSimilarPaidAmt", Label: "Grants and Salaries", Kind: Currency,
		Paths:    irs990Paths("CYGrantsAndSimilarPaidAmt"),
		Triggers: []string{"GRANTS PAID", "GRANTS AND SIMILAR AMOUNTS PAID"},
		Strategy: Simple, Window: defaultWindow,
	},
	{
		Key: "CYSalariesCompEmpBnftPaidAmt", Label: "Salaries Other", Kind: Currency,
		Paths:    irs990Paths("CYSalariesCompEmpBnftPaidAmt"),
		Triggers: []string{"SALARIES OTHER COMPENSATION", "SALARIES AND WAGES", "OFFICER COMPENSATION"},
		Strategy: Simple, Window: defaultWindow,
	},
	{
		Key: "CYTotalExpensesAmt", Label: "Total Expenses", Kind: Currency,
		Paths:    irs990Paths("CYTotalExpensesAmt"),
		Triggers: []string{"TOTAL EXPENSES", "EXPENSES TOTAL"},
		Strategy: Simple, Window: defaultWindow,
	},
	{
		Key: "TotalProgramServiceExpensesAmt", Label: "Program Service Expenses", Kind: Currency,
		Paths:    irs990Paths("TotalProgramServiceExpensesAmt"),
		Triggers: []string{"PROGRAM SERVICE EXPENSES", "TOTAL PROGRAM SERVICE"},
		Strategy: Simple, Window: defaultWindow,
	},
	{
		Key: "ManagementAndGeneralAmt", Label: "Management", Kind: Currency,
		Paths:    []string{"TotalFunctionalExpensesGrp/ManagementAndGeneralAmt"},
		Triggers: []string{"MANAGEMENT AND GENERAL", "MANAGEMENT EXPENSES"},
		Strategy: Section,
		Section: SectionSpec{
			Headers:     []string{"TOTAL FUNCTIONAL EXPENSES", "STATEMENT OF FUNCTIONAL EXPENSES"},
			SubTriggers: []string{"MANAGEMENT AND GENERAL", "MANAGEMENT & GENERAL"},
			Window:      30,
		},
	},
	{
		Key: "CYTotalFundraisingExpenseAmt", Label: "Fundraising", Kind: Currency,
		Paths:    []string{"TotalFunctionalExpensesGrp/FundraisingAmt"},
		Triggers: []string{"FUNDRAISING EXPENSES", "FUNDRAISING COSTS", "TOTAL FUNDRAISING"},
		Strategy: Section,
		Section: SectionSpec{
			Headers:     []string{"TOTAL FUNCTIONAL EXPENSES", "STATEMENT OF FUNCTIONAL EXPENSES"},
			SubTriggers: []string{"FUNDRAISING"},
			Exclude:     "TOTAL",
			Window:      30,
		},
	},
	{
		Key: "CYRevenuesLessExpensesAmt", Label: "Revenue Less", Kind: Currency,
		Paths:    irs990Paths("CYRevenuesLessExpensesAmt"),
		Triggers: []string{"REVENUE LESS EXPENSES", "NET INCOME", "EXCESS OR DEFICIT"},
		Strategy: Simple, Window: defaultWindow,
	},
	{
		Key: "InformationTechnologyGrp", Label: "Information Technology", Kind: Currency,
		Paths:    []string{"InformationTechnologyGrp/TotalAmt"},
		Triggers: []string{"INFORMATION TECHNOLOGY", "IT EXPENSES", "TECHNOLOGY EXPENSE"},
		Strategy: Simple, Window: defaultWindow,
	},
	{
		Key: "FeesForServicesAccountingGrp", Label: "Accounting", Kind: Currency,
		Paths:    []string{"FeesForServicesAccountingGrp/TotalAmt"},
		Triggers: []string{"ACCOUNTING FEE", "ACCOUNTING FEES"},
		Strategy: Simple, Window: defaultWindow,
	},
	{
		Key: "OccupancyGrp", Label: "Occupancy", Kind: Currency,
		Paths:    []string{"OccupancyGrp/TotalAmt"},
		Triggers: []string{"OCCUPANCY", "RENT", "OCCUPANCY EXPENSES"},
		Strategy: Simple, Window: defaultWindow,
	},
	{
		Key: "TravelGrp", Label: "Travel", Kind: Currency,
		Paths:    []string{"TravelGrp/TotalAmt"},
		Triggers: []string{"TRAVEL", "TRAVEL EXPENSES", "TRAVEL COSTS"},
		Strategy: Simple, Window: defaultWindow,
	},
	{
		Key: "TotalEmployeeCnt", Label: "Number of Employees", Kind: Count,
		Paths:    irs990Paths("TotalEmployeeCnt"),
		Triggers: []string{"TOTAL NUMBER OF EMPLOYEES", "NUMBER OF EMPLOYEES", "EMPLOYEES"},
		Strategy: Simple, Window: defaultWindow,
	},
	{
		Key: "TotalVolunteersCnt", Label: "Number of Volunteers", Kind: Count,
		Paths:    irs990Paths("TotalVolunteersCnt"),
		Triggers: []string{"TOTAL NUMBER OF VOLUNTEERS", "NUMBER OF VOLUNTEERS", "VOLUNTEERS"},
		Strategy: Simple, Window: defaultWindow,
	},
	{
		Key: "CYOtherRevenueAmt", Label: "Other Revenue", Kind: Currency,
		Paths:    irs990Paths("CYOtherRevenueAmt"),
		Triggers: []string{"OTHER REVENUE"},
		Strategy: Simple, Window: defaultWindow,
	},
	{
		Key: "CYProgramServiceRevenueAmt", Label: "Program Service", Kind: Currency,
		Paths:    irs990Paths("CYProgramServiceRevenueAmt"),
		Triggers: []string{"PROGRAM SERVICE REVENUE", "SERVICE REVENUE", "PROGRAM REVENUE"},
		Strategy: Simple, Window: defaultWindow,
	},
	{
		Key: "CYOtherExpensesAmt", Label: "Other Expenses", Kind: Currency,
		Paths:    irs990Paths("CYOtherExpensesAmt"),
		Triggers: []string{"OTHER EXPENSES"},
		Strategy: Simple, Window: defaultWindow,
	},
	{
		Key: "CashNonInterestBearingEOY", Label: "Cash NonInterest Bearing", Kind: Currency,
		Paths:    []string{"CashNonInterestBearingGrp/EOYAmt"},
		Triggers: []string{"CASH NON-INTEREST BEARING", "CASH - NON-INTEREST BEARING", "CASH END OF YEAR"},
		Strategy: EOYColumn,
	},
	{
		Key: "AccountsReceivableEOY", Label: "Accounts Receivable", Kind: Currency,
		Paths:    []string{"AccountsReceivableGrp/EOYAmt"},
		Triggers: []string{"ACCOUNTS RECEIVABLE", "RECEIVABLES"},
		Strategy: EOYColumn,
	},
	{
		Key: "AccountsPayableEOY", Label: "Accounts Payable", Kind: Currency,
		Paths:    []string{"AccountsPayableAccrExpnssGrp/EOYAmt"},
		Triggers: []string{"ACCOUNTS PAYABLE", "ACCOUNTS PAYABLE AND ACCRUED EXPENSES", "PAYABLES"},
		Strategy: EOYColumn,
	},
	{
		Key: "TotalAssetsEOYAmt", Label: "Total Assets", Kind: Currency,
		Paths:    irs990Paths("TotalAssetsEOYAmt"),
		Triggers: []string{"TOTAL ASSETS", "ASSETS TOTAL"},
		Strategy: Simple, Window: defaultWindow,
	},
	{
		Key: "TotalLiabilitiesEOYAmt", Label: "Total Liabilities", Kind: Currency,
		Paths:    irs990Paths("TotalLiabilitiesEOYAmt"),
		Triggers: []string{"TOTAL LIABILITIES", "LIABILITIES TOTAL"},
		Strategy: Simple, Window: defaultWindow,
	},
	{
		Key: "NetAssetsOrFundBalancesEOYAmt", Label: "Net Assets", Kind: Currency,
		Paths:    irs990Paths("NetAssetsOrFundBalancesEOYAmt"),
		Triggers: []string{"NET ASSETS OR FUND BALANCES", "TOTAL NET ASSETS", "FUND BALANCES"},
		Strategy: Simple, Window: defaultWindow,
	},
	{
		Key: "WithoutDonorRestrictions", Label: "Net Assets Without Donor Restrictions", Kind: Currency,
		Paths: []string{
			"NoDonorRestrictionNetAssetsGrp/EOYAmt",
			"UnrestrictedNetAssetsGrp/EOYAmt",
		},
		Triggers: []string{"NO DONOR RESTRICTION", "UNRESTRICTED NET ASSETS", "WITHOUT DONOR RESTRICTIONS", "NET ASSETS WITHOUT DONOR RESTRICTIONS"},
		Strategy: Restriction,
	},
	{
		Key: "WithDonorRestrictions", Label: "Net Assets With Donor Restrictions", Kind: Currency,
		Paths: []string{
			"DonorRestrictionNetAssetsGrp/EOYAmt",
			"PermanentlyRstrNetAssetsGrp/EOYAmt",
		},
		Triggers: []string{"DONOR RESTRICTION", "PERMANENTLY RESTRICTED", "TEMPORARILY RESTRICTED", "WITH DONOR RESTRICTIONS", "NET ASSETS WITH DONOR RESTRICTIONS"},
		Strategy: Restriction,
	},
}
