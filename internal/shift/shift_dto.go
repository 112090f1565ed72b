package shift

import "github.com/shopspring/decimal"

type StartShiftRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
}

type EndShiftRequest struct {
	CashAmount  decimal.Decimal `json:"cash_amount"`
	GcashAmount decimal.Decimal `json:"gcash_amount"`
}

type EditShiftRequest struct {
	Date       string           `json:"date"`
	StartedAt  string           `json:"started_at"`
	BaseSalary *decimal.Decimal `json:"base_salary"`
}

type ResetPeriodRequest struct {
	From          string `json:"from" binding:"required"`
	To            string `json:"to" binding:"required"`
	ConfirmDelete bool   `json:"confirm_delete"`
}

type ResetPeriodResponse struct {
	ShiftsAffected   int64  `json:"shifts_affected"`
	BonusesDeleted   int64  `json:"bonuses_deleted"`
	ExpensesDetached int64  `json:"expenses_detached"`
	Mode             string `json:"mode"`
}

type ListShiftsQuery struct {
	From       string `form:"from"`
	To         string `form:"to"`
	Status     string `form:"status"`
	EmployeeID string `form:"employee_id"`
}

type ShiftResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Date         string `json:"date"`
	ShiftType    string `json:"shift_type,omitempty"`
	Status       string `json:"status"`

	StartedAt  string  `json:"started_at"`
	EndedAt    *string `json:"ended_at,omitempty"`
	TotalHours float64 `json:"total_hours"`

	BaseSalary decimal.Decimal `json:"base_salary"`

	CashAmount     *decimal.Decimal `json:"cash_amount,omitempty"`
	GcashAmount    *decimal.Decimal `json:"gcash_amount,omitempty"`
	CashDifference *decimal.Decimal `json:"cash_difference,omitempty"`

	Approved     bool            `json:"approved"`
	CashShortage decimal.Decimal `json:"cash_shortage"`

	SalaryPaid       bool             `json:"salary_paid"`
	SalaryPaidAmount *decimal.Decimal `json:"salary_paid_amount,omitempty"`
	SalaryPaidAt     *string          `json:"salary_paid_at,omitempty"`
}
