package register

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	CategoryPurchases = "purchases"
	CategorySalaries  = "salaries"
	CategoryOther     = "other"

	SourceCash  = "cash"
	SourceGcash = "gcash"
)

// CashRegisterRecord is the per-(date, shift-type) ledger of expected vs
// actual cash. Rows are created lazily on the first write for a period.
type CashRegisterRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RecordDate time.Time `gorm:"column:record_date;type:date;not null;uniqueIndex:uq_register_date_shift"`
	ShiftType  string    `gorm:"column:shift_type;type:varchar(10);not null;uniqueIndex:uq_register_date_shift"`

	OpeningBalance decimal.Decimal `gorm:"column:opening_balance;type:decimal(12,2);not null;default:0"`
	CashExpected   decimal.Decimal `gorm:"column:cash_expected;type:decimal(12,2);not null;default:0"`
	GcashExpected  decimal.Decimal `gorm:"column:gcash_expected;type:decimal(12,2);not null;default:0"`

	// Categorized running totals; must always equal the sum of the live
	// expenses in that category.
	Purchases     decimal.Decimal `gorm:"column:purchases;type:decimal(12,2);not null;default:0"`
	Salaries      decimal.Decimal `gorm:"column:salaries;type:decimal(12,2);not null;default:0"`
	OtherExpenses decimal.Decimal `gorm:"column:other_expenses;type:decimal(12,2);not null;default:0"`

	CashActual  decimal.Decimal `gorm:"column:cash_actual;type:decimal(12,2);not null;default:0"`
	GcashActual decimal.Decimal `gorm:"column:gcash_actual;type:decimal(12,2);not null;default:0"`
	Discrepancy decimal.Decimal `gorm:"column:discrepancy;type:decimal(12,2);not null;default:0"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (CashRegisterRecord) TableName() string {
	return "cash_register"
}

// TotalExpenses is the sum of all categorized expense totals.
func (r CashRegisterRecord) TotalExpenses() decimal.Decimal {
	return r.Purchases.Add(r.Salaries).Add(r.OtherExpenses)
}

// TotalExpected is the submitted-cash baseline used at shift close:
// opening balance plus POS-expected takings minus cash spent from the
// drawer.
func (r CashRegisterRecord) TotalExpected() decimal.Decimal {
	return r.OpeningBalance.Add(r.CashExpected).Add(r.GcashExpected).Sub(r.TotalExpenses())
}

// CashExpense is one drawer expense belonging to a register record. The
// shift reference is optional and cleared (not deleted) on admin reset.
type CashExpense struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RegisterID uuid.UUID  `gorm:"column:register_id;type:uuid;not null;index"`
	ShiftID    *uuid.UUID `gorm:"column:shift_id;type:uuid;index"`

	ExpenseDate time.Time `gorm:"column:expense_date;type:date;not null;index"`
	ShiftType   string    `gorm:"column:shift_type;type:varchar(10);not null"`

	Category    string          `gorm:"column:category;type:varchar(20);not null"`
	Amount      decimal.Decimal `gorm:"column:amount;type:decimal(12,2);not null"`
	Source      string          `gorm:"column:source;type:varchar(10);not null;default:'cash'"`
	Approved    bool            `gorm:"column:approved;not null;default:false"`
	Description *string         `gorm:"column:description;type:text"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (CashExpense) TableName() string {
	return "cash_expenses"
}
