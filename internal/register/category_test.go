package register

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestAddToCategory(t *testing.T) {
	rec := &CashRegisterRecord{}

	AddToCategory(rec, CategoryPurchases, dec(100))
	AddToCategory(rec, CategorySalaries, dec(50))
	AddToCategory(rec, CategoryOther, dec(25))
	AddToCategory(rec, "mystery", dec(10))

	assert.True(t, rec.Purchases.Equal(dec(100)))
	assert.True(t, rec.Salaries.Equal(dec(50)))
	// Unknown categories land in other_expenses.
	assert.True(t, rec.OtherExpenses.Equal(dec(35)))

	AddToCategory(rec, CategoryPurchases, dec(-40))
	assert.True(t, rec.Purchases.Equal(dec(60)))
}

func TestTotalExpected(t *testing.T) {
	rec := &CashRegisterRecord{
		OpeningBalance: dec(200),
		CashExpected:   dec(1000),
		GcashExpected:  dec(500),
		Purchases:      dec(100),
		Salaries:       dec(50),
		OtherExpenses:  dec(30),
	}

	assert.True(t, rec.TotalExpenses().Equal(dec(180)))
	// opening + expected - expenses
	assert.True(t, rec.TotalExpected().Equal(dec(1520)), "got %s", rec.TotalExpected())
}

func TestValidCategoryAndSource(t *testing.T) {
	assert.True(t, ValidCategory(CategoryPurchases))
	assert.True(t, ValidCategory(CategorySalaries))
	assert.True(t, ValidCategory(CategoryOther))
	assert.False(t, ValidCategory("rent"))

	assert.True(t, ValidSource(SourceCash))
	assert.True(t, ValidSource(SourceGcash))
	assert.False(t, ValidSource("card"))
}
