package reconcile

import "github.com/shopspring/decimal"

type ApproveGroupRequest struct {
	Date      string `json:"date" binding:"required"`
	ShiftType string `json:"shift_type" binding:"required"`

	// Optional per-shift shortage overrides keyed by shift id. When present
	// they must cover the whole group shortage.
	ShortageOverrides map[string]decimal.Decimal `json:"shortage_overrides"`

	AddSurplusToRegister bool `json:"add_surplus_to_register"`
}

type ApproveGroupResponse struct {
	Date            string                     `json:"date"`
	ShiftType       string                     `json:"shift_type"`
	ShiftsApproved  int                        `json:"shifts_approved"`
	ExpensesCleared int64                      `json:"expenses_cleared"`
	Difference      decimal.Decimal            `json:"difference"`
	Classification  string                     `json:"classification"`
	Shortages       map[string]decimal.Decimal `json:"shortages,omitempty"`
}

type RejectShiftResponse struct {
	ShiftID string `json:"shift_id"`
	Status  string `json:"status"`
}
