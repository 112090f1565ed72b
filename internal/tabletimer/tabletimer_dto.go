package tabletimer

import "github.com/shopspring/decimal"

type StartTimerRequest struct {
	TableNumber int             `json:"table_number" binding:"required,min=1"`
	HourlyRate  decimal.Decimal `json:"hourly_rate" binding:"required"`
}

type ListTimersQuery struct {
	Status string `form:"status"`
	From   string `form:"from"`
	To     string `form:"to"`
}

type TimerResponse struct {
	ID          string          `json:"id"`
	TableNumber int             `json:"table_number"`
	Status      string          `json:"status"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	StartedAt   string          `json:"started_at"`
	EndedAt     *string         `json:"ended_at,omitempty"`
	Hours       float64         `json:"hours"`
	Amount      decimal.Decimal `json:"amount"`
}
