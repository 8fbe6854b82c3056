package schema

// pfAnalysisPath nests an element under the Part I revenue and expenses
// analysis, with a bare fallback for returns that flatten the group.
func pfAnalysisPath(element string) []string {
	return []string{
		"AnalysisOfRevenueAndExpenses/" + element,
		element,
	}
}

// pfBalancePath nests an element under the Part II balance sheet group.
func pfBalancePath(element string) []string {
	return []string{
		"Form990PFBalanceSheetsGrp/" + element,
		element,
	}
}

// form990PFCatalog mirrors the private-foundation line items. Hidden entries
// feed the two computed rows and never appear in reports themselves.
var form990PFCatalog = []FieldSpec{
	{
		Key: "TotalRevAndExpnssAmt", Label: "Total Revenue", Kind: Currency,
		Paths:    pfAnalysisPath("TotalRevAndExpnssAmt"),
		Triggers: []string{"TOTAL REVENUE", "REVENUE TOTAL"},
		Strategy: Simple, Window: defaultWindow,
	},
	{
		Key: "ContriRcvdRevAndExpnssAmt", Label: "Total Contributions", Kind: Currency,
		Paths:    pfAnalysisPath("ContriRcvdRevAndExpnssAmt"),
		Triggers: []string{"CONTRIBUTIONS RECEIVED", "GIFTS RECEIVED", "CONTRIBUTIONS AND GIFTS"},
		Strategy: Simple, Window: defaultWindow,
	},
	{
		Key: "InterestOnSavRevAndExpnssAmt", Label: "Interest Income", Kind: Currency,
		Paths:    pfAnalysisPath("InterestOnSavRevAndExpnssAmt"),
		Triggers: []string{"INTEREST ON SAVINGS", "INTEREST INCOME"},
		Strategy: Simple, Window: defaultWindow,
		Hidden:   true,
	},
	{
		Key: "DividendsRevAndExpnssAmt", Label: "Dividend Income", Kind: Currency,
		Paths:    pfAnalysisPath("DividendsRevAndExpnssAmt"),
		Triggers: []string{"DIVIDENDS", "DIVIDEND INCOME"},
		Strategy: Simple, Window: defaultWindow,
		Hidden:   true,
	},
	{
		Key: "NetGainSaleAstRevAndExpnssAmt", Label: "Net Capital Gains", Kind: Currency,
		Paths:    pfAnalysisPath("NetGainSaleAstRevAndExpnssAmt"),
		Triggers: []string{"NET GAIN FROM SALE", "CAPITAL GAINS", "NET GAINS"},
		Strategy: Simple, Window: defaultWindow,
		Hidden:   true,
	},
	{
		Key: "InvestmentIncome", Label: "Investment Income", Kind: Currency,
		Triggers: []string{"INVESTMENT INCOME", "DIVIDENDS AND INTEREST", "NET INVESTMENT INCOME"},
		Strategy: Simple, Window: defaultWindow,
		Addends: []string{
			"InterestOnSavRevAndExpnssAmt",
			"DividendsRevAndExpnssAmt",
			"NetGainSaleAstRevAndExpnssAmt",
		},
	},
	{
		Key: "ContriPaidRevAndExpnssAmt", Label: "Contributions Paid", Kind: Currency,
		Paths:    pfAnalysisPath("ContriPaidRevAndExpnssAmt"),
		Triggers: []string{"CONTRIBUTIONS PAID", "GRANTS PAID"},
		Strategy: Simple, Window: defaultWindow,
		Hidden:   true,
	},
	{
		Key: "CompOfcrDirTrstRevAndExpnssAmt", Label: "Officer Compensation", Kind: Currency,
		Paths:    pfAnalysisPath("CompOfcrDirTrstRevAndExpnssAmt"),
		Triggers: []string{"COMPENSATION OF OFFICERS", "OFFICER COMPENSATION"},
		Strategy: Simple, Window: defaultWindow,
		Hidden:   true,
	},
	{
		Key: "OthEmplSlrsWgsRevAndExpnssAmt", Label: "Other Employee Salaries", Kind: Currency,
		Paths:    pfAnalysisPath("OthEmplSlrsWgsRevAndExpnssAmt"),
		Triggers: []string{"OTHER EMPLOYEE SALARIES", "SALARIES AND WAGES"},
		Strategy: Simple, Window: defaultWindow,
		Hidden:   true,
	},
	{
		Key: "GrantsAndSalaries", Label: "Grants and Salaries", Kind: Currency,
		Triggers: []string{"CONTRIBUTIONS PAID", "GRANTS PAID"},
		Strategy: Simple, Window: defaultWindow,
		Addends: []string{
			"ContriPaidRevAndExpnssAmt",
			"CompOfcrDirTrstRevAndExpnssAmt",
			"OthEmplSlrsWgsRevAndExpnssAmt",
		},
	},
	{
		Key: "TotalExpensesRevAndExpnssAmt", Label: "Total Expenses", Kind: Currency,
		Paths:    pfAnalysisPath("TotalExpensesRevAndExpnssAmt"),
		Triggers: []string{"TOTAL EXPENSES", "TOTAL OPERATING EXPENSES"},
		Strategy: Simple, Window: defaultWindow,
	},
	{
		Key: "ExcessRevenueOverExpensesAmt", Label: "Revenue Less Expenses", Kind: Currency,
		Paths:    pfAnalysisPath("ExcessRevenueOverExpensesAmt"),
		Triggers: []string{"EXCESS OF REVENUE", "NET INCOME"},
		Strategy: Simple, Window: defaultWindow,
	},
	{
		Key: "AccountingFeesRevAndExpnssAmt", Label: "Accounting", Kind: Currency,
		Paths:    pfAnalysisPath("AccountingFeesRevAndExpnssAmt"),
		Triggers: []string{"ACCOUNTING FEES"},
		Strategy: Simple, Window: defaultWindow,
	},
	{
		Key: "OccupancyRevAndExpnssAmt", Label: "Occupancy", Kind: Currency,
		Paths:    pfAnalysisPath("OccupancyRevAndExpnssAmt"),
		Triggers: []string{"OCCUPANCY"},
		Strategy: Simple, Window: defaultWindow,
	},
	{
		Key: "TravConfMeetingRevAndExpnssAmt", Label: "Travel", Kind: Currency,
		Paths:    pfAnalysisPath("TravConfMeetingRevAndExpnssAmt"),
		Triggers: []string{"TRAVEL", "CONFERENCES MEETINGS"},
		Strategy: Simple, Window: defaultWindow,
	},
	{
		Key: "OtherIncomeRevAndExpnssAmt", Label: "Other Revenue", Kind: Currency,
		Paths:    pfAnalysisPath("OtherIncomeRevAndExpnssAmt"),
		Triggers: []string{"OTHER INCOME"},
		Strategy: Simple, Window: defaultWindow,
	},
	{
		Key: "OtherExpensesRevAndExpnssAmt", Label: "Other Expenses", Kind: Currency,
		Paths:    pfAnalysisPath("OtherExpensesRevAndExpnssAmt"),
		Triggers: []string{"OTHER EXPENSES"},
		Strategy: Simple, Window: defaultWindow,
	},
	{
		Key: "CashEOYAmt", Label: "Cash Noninterest Bearing", Kind: Currency,
		Paths:    pfBalancePath("CashEOYAmt"),
		Triggers: []string{"CASH NON-INTEREST", "CASH END OF YEAR"},
		Strategy: EOYColumn,
	},
	{
		Key: "AccountsPayableEOYAmt", Label: "Accounts Payable", Kind: Currency,
		Paths:    pfBalancePath("AccountsPayableEOYAmt"),
		Triggers: []string{"ACCOUNTS PAYABLE"},
		Strategy: EOYColumn,
	},
	{
		Key: "TotalAssetsEOYAmt", Label: "Total Assets", Kind: Currency,
		Paths:    pfBalancePath("TotalAssetsEOYAmt"),
		Triggers: []string{"TOTAL ASSETS"},
		Strategy: EOYColumn,
	},
	{
		Key: "TotalLiabilitiesEOYAmt", Label: "Total Liabilities", Kind: Currency,
		Paths:    pfBalancePath("TotalLiabilitiesEOYAmt"),
		Triggers: []string{"TOTAL LIABILITIES"},
		Strategy: EOYColumn,
	},
	{
		Key: "TotNetAstOrFundBalancesEOYAmt", Label: "Net Assets", Kind: Currency,
		Paths:    pfBalancePath("TotNetAstOrFundBalancesEOYAmt"),
		Triggers: []string{"NET ASSETS", "FUND BALANCES"},
		Strategy: EOYColumn,
	},
	{
		Key: "NoDonorRstrNetAssestsEOYAmt", Label: "Net Assets Without Donor Restrictions", Kind: Currency,
		Paths:    pfBalancePath("NoDonorRstrNetAssestsEOYAmt"),
		Triggers: []string{"NO DONOR RESTRICTION", "UNRESTRICTED"},
		Strategy: Restriction,
	},
	{
		Key: "DonorRstrNetAssetsEOYAmt", Label: "Net Assets With Donor Restrictions", Kind: Currency,
		Paths:    pfBalancePath("DonorRstrNetAssetsEOYAmt"),
		Triggers: []string{"DONOR RESTRICTION", "RESTRICTED"},
		Strategy: Restriction,
		Hidden:   true,
	},
}
