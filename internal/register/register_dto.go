package register

import "github.com/shopspring/decimal"

type AddExpenseRequest struct {
	Date        string          `json:"date" binding:"required"`
	ShiftType   string          `json:"shift_type" binding:"required,oneof=day night"`
	Category    string          `json:"category" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Source      string          `json:"source" binding:"required,oneof=cash gcash"`
	ShiftID     string          `json:"shift_id"`
	Description *string         `json:"description"`
}

type ChangeExpenseCategoryRequest struct {
	Category string `json:"category" binding:"required"`
}

type SetOpeningBalanceRequest struct {
	Date           string          `json:"date" binding:"required"`
	ShiftType      string          `json:"shift_type" binding:"required,oneof=day night"`
	OpeningBalance decimal.Decimal `json:"opening_balance" binding:"required"`
}

type RegisterResponse struct {
	ID             string          `json:"id"`
	Date           string          `json:"date"`
	ShiftType      string          `json:"shift_type"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	CashExpected   decimal.Decimal `json:"cash_expected"`
	GcashExpected  decimal.Decimal `json:"gcash_expected"`
	Purchases      decimal.Decimal `json:"purchases"`
	Salaries       decimal.Decimal `json:"salaries"`
	OtherExpenses  decimal.Decimal `json:"other_expenses"`
	CashActual     decimal.Decimal `json:"cash_actual"`
	GcashActual    decimal.Decimal `json:"gcash_actual"`
	Discrepancy    decimal.Decimal `json:"discrepancy"`
}

type ExpenseResponse struct {
	ID          string          `json:"id"`
	RegisterID  string          `json:"register_id"`
	ShiftID     *string         `json:"shift_id,omitempty"`
	Date        string          `json:"date"`
	ShiftType   string          `json:"shift_type"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Source      string          `json:"source"`
	Approved    bool            `json:"approved"`
	Description *string         `json:"description,omitempty"`
}
