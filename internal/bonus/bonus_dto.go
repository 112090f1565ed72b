package bonus

import "github.com/shopspring/decimal"

type CreateBonusRequest struct {
	ShiftID   string          `json:"shift_id" binding:"required"`
	BonusType string          `json:"bonus_type" binding:"required"`
	Quantity  int             `json:"quantity"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Comment   *string         `json:"comment"`
}

type BonusResponse struct {
	ID         string          `json:"id"`
	ShiftID    string          `json:"shift_id"`
	EmployeeID string          `json:"employee_id"`
	BonusType  string          `json:"bonus_type"`
	Quantity   int             `json:"quantity"`
	Amount     decimal.Decimal `json:"amount"`
	Comment    *string         `json:"comment,omitempty"`
	CreatedAt  string          `json:"created_at"`
}
