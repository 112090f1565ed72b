package pos

import "github.com/shopspring/decimal"

type SyncExpectedRequest struct {
	Date      string `json:"date" binding:"required"`
	ShiftType string `json:"shift_type" binding:"required"`
}

type SyncExpectedResponse struct {
	Date          string          `json:"date"`
	ShiftType     string          `json:"shift_type"`
	CashExpected  decimal.Decimal `json:"cash_expected"`
	GcashExpected decimal.Decimal `json:"gcash_expected"`
	Receipts      int             `json:"receipts"`
}
