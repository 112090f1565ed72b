package payroll

import "github.com/shopspring/decimal"

const (
	SortByName   = "name"
	SortByShifts = "shifts"
)

type SummaryQuery struct {
	From       string `form:"from" binding:"required"`
	To         string `form:"to" binding:"required"`
	EmployeeID string `form:"employee_id"`
	SortBy     string `form:"sort_by"`
}

type MarkPaidRequest struct {
	EmployeeID string          `json:"employee_id" binding:"required"`
	From       string          `json:"from" binding:"required"`
	To         string          `json:"to" binding:"required"`
	Amount     decimal.Decimal `json:"amount"`
}

type MarkPaidResponse struct {
	EmployeeID    string          `json:"employee_id"`
	ShiftsStamped int64           `json:"shifts_stamped"`
	Amount        decimal.Decimal `json:"amount"`
	PaidAt        string          `json:"paid_at"`
}

// EmployeePayroll is one employee's aggregate for the requested period.
type EmployeePayroll struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`

	TotalShifts int     `json:"total_shifts"`
	TotalHours  float64 `json:"total_hours"`

	BaseSalaryTotal   decimal.Decimal `json:"base_salary_total"`
	BonusesTotal      decimal.Decimal `json:"bonuses_total"`
	CashShortageTotal decimal.Decimal `json:"cash_shortage_total"`
	TotalSalary       decimal.Decimal `json:"total_salary"`

	SalaryPaid   bool            `json:"salary_paid"`
	PaidAmount   decimal.Decimal `json:"paid_amount"`
	UnpaidAmount decimal.Decimal `json:"unpaid_amount"`
}
