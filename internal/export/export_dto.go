package export

type PushRequest struct {
	From          string `json:"from" binding:"required"`
	To            string `json:"to" binding:"required"`
	SpreadsheetID string `json:"spreadsheet_id" binding:"required"`
}

type PushResponse struct {
	SpreadsheetID string `json:"spreadsheet_id"`
	LedgerRows    int    `json:"ledger_rows"`
	PayrollRows   int    `json:"payroll_rows"`
}
