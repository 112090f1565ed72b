package register

import "github.com/shopspring/decimal"

// The category-to-aggregate mapping lives here and nowhere else; every
// expense mutation goes through AddToCategory so the running totals cannot
// drift from the expense rows.

func ValidCategory(category string) bool {
	switch category {
	case CategoryPurchases, CategorySalaries, CategoryOther:
		return true
	}
	return false
}

func ValidSource(source string) bool {
	return source == SourceCash || source == SourceGcash
}

// AddToCategory adds delta (which may be negative) to the aggregate column
// backing the given category. Unknown categories fold into other_expenses,
// matching how uncategorized spend is ledgered.
func AddToCategory(rec *CashRegisterRecord, category string, delta decimal.Decimal) {
	switch category {
	case CategoryPurchases:
		rec.Purchases = rec.Purchases.Add(delta)
	case CategorySalaries:
		rec.Salaries = rec.Salaries.Add(delta)
	default:
		rec.OtherExpenses = rec.OtherExpenses.Add(delta)
	}
}
