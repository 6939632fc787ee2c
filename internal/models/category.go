package models

// Category is one entry of the fixed transaction type catalog.
type Category struct {
	Name     string `json:"name"`
	Flow     Flow   `json:"flow"`
	Disabled bool   `json:"disabled,omitempty"`
}

// SeparatorLabel is the placeholder entry between income and expense types.
const SeparatorLabel = "--- EXPENSES ---"

// IncomeTypes lists every income category, in display order.
var IncomeTypes = []string{
	"Tithes",
	"Offering",
	"Yearly Levy",
	"Project Contribution",
	"Condolence Contribution",
}

// ExpenseTypes lists every expense category, in display order.
var ExpenseTypes = []string{
	"Main Pastor Upkeep",
	"Assistant Pastor Upkeep",
	"Utility Bill (Electricity/Water/fuel)",
	"Rent/Mortgage",
	"Maintenance/Repairs",
	"Administrative Costs",
	"Missionary Support",
	"Helps/Charity",
	"Transport and Logistics",
	"Area/District contribution",
	"Other Contribution",
	"Church Supplies (e.g., Altar wine, etc.)",
}

// Catalog returns the full category list as shown in the entry form:
// income types, the disabled separator, then expense types.
func Catalog() []Category {
	out := make([]Category, 0, len(IncomeTypes)+len(ExpenseTypes)+1)
	for _, name := range IncomeTypes {
		out = append(out, Category{Name: name, Flow: FlowIncome})
	}
	out = append(out, Category{Name: SeparatorLabel, Flow: FlowSeparator, Disabled: true})
	for _, name := range ExpenseTypes {
		out = append(out, Category{Name: name, Flow: FlowExpense})
	}
	return out
}

// FlowOf resolves the flow of a category name. The separator resolves to
// FlowSeparator; unknown names report false.
func FlowOf(name string) (Flow, bool) {
	if name == SeparatorLabel {
		return FlowSeparator, true
	}
	for _, n := range IncomeTypes {
		if n == name {
			return FlowIncome, true
		}
	}
	for _, n := range ExpenseTypes {
		if n == name {
			return FlowExpense, true
		}
	}
	return "", false
}
