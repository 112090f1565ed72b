package investor

import "github.com/shopspring/decimal"

type CreateContributionRequest struct {
	InvestorName string          `json:"investor_name" binding:"required"`
	Kind         string          `json:"kind" binding:"required"`
	Category     string          `json:"category" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Date         string          `json:"date" binding:"required"`
	Description  *string         `json:"description"`
}

type UpdateContributionRequest struct {
	InvestorName string           `json:"investor_name"`
	Kind         string           `json:"kind"`
	Category     string           `json:"category"`
	Amount       *decimal.Decimal `json:"amount"`
	Date         string           `json:"date"`
	Description  *string          `json:"description"`
}

type ListContributionsQuery struct {
	From string `form:"from"`
	To   string `form:"to"`
	Kind string `form:"kind"`
}

type ContributionResponse struct {
	ID           string          `json:"id"`
	InvestorName string          `json:"investor_name"`
	Kind         string          `json:"kind"`
	Category     string          `json:"category"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date"`
	Description  *string         `json:"description,omitempty"`
}
