// Package catalog defines the static service offering. Entries are
// part of the deployment, not user data; carts copy what they need at
// selection time.
package catalog

import "bizhub-backend/cart"

func price(v float64) *float64 { return &v }

var kraServices = []cart.CatalogEntry{
	{
		ID:            "kra-pin-registration",
		Label:         "KRA PIN Registration",
		Description:   "New KRA PIN registration for individuals and companies",
		Price:         1500,
		Category:      "kra",
		EstimatedTime: "1-2 business days",
		Includes:      []string{"iTax profile setup", "PIN certificate"},
	},
	{
		ID:            "kra-returns-individual",
		Label:         "Individual Tax Returns Filing",
		Description:   "Annual income tax returns filing for individuals",
		Price:         2000,
		Category:      "kra",
		EstimatedTime: "1 business day",
		Frequency:     []string{"annual"},
	},
	{
		ID:               "kra-returns-company",
		Label:            "Company Tax Returns Filing",
		Description:      "Corporate tax returns including VAT and PAYE schedules",
		Price:            10000,
		HasVariablePrice: true,
		MinPrice:         price(10000),
		Category:         "kra",
		EstimatedTime:    "3-5 business days",
		Frequency:        []string{"annual", "monthly"},
	},
	{
		ID:            "kra-tax-compliance",
		Label:         "Tax Compliance Certificate",
		Description:   "Application and follow-up for a tax compliance certificate",
		Price:         3000,
		Category:      "kra",
		EstimatedTime: "3-7 business days",
	},
	{
		ID:               "kra-objection",
		Label:            "Tax Objection & Dispute Support",
		Description:      "Preparation and lodging of objections to KRA assessments",
		Price:            15000,
		HasVariablePrice: true,
		MinPrice:         price(15000),
		Category:         "kra",
		EstimatedTime:    "Depends on case",
	},
}

var dataServices = []cart.CatalogEntry{
	{
		ID:            "data-cleaning",
		Label:         "Data Cleaning & Preparation",
		Description:   "Deduplication, normalization and validation of raw datasets",
		Price:         8000,
		Category:      "data",
		EstimatedTime: "2-4 business days",
	},
	{
		ID:            "data-dashboard",
		Label:         "Business Dashboard Build",
		Description:   "Interactive KPI dashboard from your existing data sources",
		Price:         25000,
		Category:      "data",
		EstimatedTime: "1-2 weeks",
		Includes:      []string{"Source integration", "3 revision rounds"},
	},
	{
		ID:               "data-custom-analysis",
		Label:            "Custom Data Analysis",
		Description:      "Bespoke statistical analysis scoped to your question",
		Price:            20000,
		HasVariablePrice: true,
		MinPrice:         price(20000),
		Category:         "data",
		EstimatedTime:    "Scoped per engagement",
	},
	{
		ID:            "data-market-report",
		Label:         "Market Research Report",
		Description:   "Sector research report with competitor and pricing analysis",
		Price:         18000,
		Category:      "data",
		EstimatedTime: "1-2 weeks",
	},
}

var businessServices = []cart.CatalogEntry{
	{
		ID:            "biz-name-registration",
		Label:         "Business Name Registration",
		Description:   "Name search and registration with the business registry",
		Price:         3500,
		Category:      "business",
		EstimatedTime: "3-5 business days",
		Includes:      []string{"Name search", "Registration certificate"},
	},
	{
		ID:            "biz-company-incorporation",
		Label:         "Private Limited Company Incorporation",
		Description:   "Full incorporation including CR12 and share structure",
		Price:         15000,
		Category:      "business",
		EstimatedTime: "1-2 weeks",
	},
	{
		ID:               "biz-permits",
		Label:            "Licenses & Permits Support",
		Description:      "County permits and sector licenses, scoped per business",
		Price:            5000,
		HasVariablePrice: true,
		MinPrice:         price(5000),
		Category:         "business",
		EstimatedTime:    "Varies by county",
	},
	{
		ID:            "biz-annual-returns",
		Label:         "Company Annual Returns",
		Description:   "Preparation and filing of registrar annual returns",
		Price:         6000,
		Category:      "business",
		EstimatedTime: "2-3 business days",
		Frequency:     []string{"annual"},
	},
}

var bookkeepingServices = []cart.CatalogEntry{
	{
		ID:            "books-monthly",
		Label:         "Monthly Bookkeeping",
		Description:   "Transaction capture, reconciliations and monthly reports",
		Price:         12000,
		Category:      "bookkeeping",
		EstimatedTime: "Ongoing",
		Frequency:     []string{"monthly"},
		Includes:      []string{"Bank reconciliation", "Monthly P&L"},
	},
	{
		ID:            "books-payroll",
		Label:         "Payroll Processing",
		Description:   "Monthly payroll with statutory deductions and payslips",
		Price:         8000,
		Category:      "bookkeeping",
		EstimatedTime: "Ongoing",
		Frequency:     []string{"monthly"},
	},
	{
		ID:               "books-catchup",
		Label:            "Backlog / Catch-up Bookkeeping",
		Description:      "Reconstruction of books for past periods",
		Price:            10000,
		HasVariablePrice: true,
		MinPrice:         price(10000),
		Category:         "bookkeeping",
		EstimatedTime:    "Depends on backlog size",
	},
	{
		ID:            "books-financial-statements",
		Label:         "Annual Financial Statements",
		Description:   "Year-end financial statements ready for audit or filing",
		Price:         20000,
		Category:      "bookkeeping",
		EstimatedTime: "1-2 weeks",
		Frequency:     []string{"annual"},
	},
}

var byCategory = map[string][]cart.CatalogEntry{
	"kra":         kraServices,
	"data":        dataServices,
	"business":    businessServices,
	"bookkeeping": bookkeepingServices,
}

// Entries returns the catalog for a category, or false for an unknown
// category tag.
func Entries(category string) ([]cart.CatalogEntry, bool) {
	entries, ok := byCategory[category]
	return entries, ok
}

// Find looks up a single entry by category and id.
func Find(category, id string) (cart.CatalogEntry, bool) {
	entries, ok := byCategory[category]
	if !ok {
		return cart.CatalogEntry{}, false
	}
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return cart.CatalogEntry{}, false
}

// Categories lists the known category tags.
func Categories() []string {
	return []string{"kra", "data", "business", "bookkeeping"}
}
