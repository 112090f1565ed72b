package events

import (
	"time"

	"github.com/shopspring/decimal"
)

const BonusTopic = "lounge.bonus.v1"

type BonusAddedEvent struct {
	EventType  string          `json:"event_type"`
	BonusID    string          `json:"bonus_id"`
	ShiftID    string          `json:"shift_id"`
	EmployeeID string          `json:"employee_id"`
	BonusType  string          `json:"bonus_type"`
	Quantity   int             `json:"quantity"`
	Amount     decimal.Decimal `json:"amount"`
	OccurredAt time.Time       `json:"occurred_at"`
}
