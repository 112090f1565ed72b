package events

import (
	"time"

	"github.com/shopspring/decimal"
)

type ShiftClosedEvent struct {
	EventType      string          `json:"event_type"`
	ShiftID        string          `json:"shift_id"`
	EmployeeID     string          `json:"employee_id"`
	EmployeeName   string          `json:"employee_name,omitempty"`
	ShiftDate      string          `json:"shift_date"`
	ShiftType      string          `json:"shift_type"`
	TotalHours     float64         `json:"total_hours"`
	CashAmount     decimal.Decimal `json:"cash_amount"`
	GcashAmount    decimal.Decimal `json:"gcash_amount"`
	CashDifference decimal.Decimal `json:"cash_difference"`
	OccurredAt     time.Time       `json:"occurred_at"`
}
