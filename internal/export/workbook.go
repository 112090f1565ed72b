package export

import (
	"fmt"

	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/payroll"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/register"

	"github.com/xuri/excelize/v2"
)

const (
	LedgerSheet  = "Cash Ledger"
	PayrollSheet = "Payroll"
)

var ledgerHeaders = []string{
	"Date", "Shift", "Opening", "Cash Expected", "GCash Expected",
	"Purchases", "Salaries", "Other Expenses", "Cash Actual", "GCash Actual", "Discrepancy",
}

var payrollHeaders = []string{
	"Employee", "Shifts", "Hours", "Base Salary", "Bonuses",
	"Shortages", "Total", "Paid", "Unpaid",
}

// BuildWorkbook renders the cash ledger and payroll table into one xlsx
// file with a sheet per report.
func BuildWorkbook(records []register.CashRegisterRecord, rows []payroll.EmployeePayroll) (*excelize.File, error) {
	f := excelize.NewFile()

	f.SetSheetName("Sheet1", LedgerSheet)
	if _, err := f.NewSheet(PayrollSheet); err != nil {
		return nil, err
	}

	for i, h := range ledgerHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(LedgerSheet, cell, h); err != nil {
			return nil, err
		}
	}
	for i, rec := range records {
		values := []any{
			rec.RecordDate.Format("2006-01-02"),
			rec.ShiftType,
			rec.OpeningBalance.InexactFloat64(),
			rec.CashExpected.InexactFloat64(),
			rec.GcashExpected.InexactFloat64(),
			rec.Purchases.InexactFloat64(),
			rec.Salaries.InexactFloat64(),
			rec.OtherExpenses.InexactFloat64(),
			rec.CashActual.InexactFloat64(),
			rec.GcashActual.InexactFloat64(),
			rec.Discrepancy.InexactFloat64(),
		}
		if err := writeRow(f, LedgerSheet, i+2, values); err != nil {
			return nil, err
		}
	}

	for i, h := range payrollHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(PayrollSheet, cell, h); err != nil {
			return nil, err
		}
	}
	for i, row := range rows {
		values := []any{
			row.EmployeeName,
			row.TotalShifts,
			row.TotalHours,
			row.BaseSalaryTotal.InexactFloat64(),
			row.BonusesTotal.InexactFloat64(),
			row.CashShortageTotal.InexactFloat64(),
			row.TotalSalary.InexactFloat64(),
			row.PaidAmount.InexactFloat64(),
			row.UnpaidAmount.InexactFloat64(),
		}
		if err := writeRow(f, PayrollSheet, i+2, values); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func writeRow(f *excelize.File, sheet string, rowNo int, values []any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, rowNo)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("set %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

// LedgerRows flattens register records into the row shape pushed to Google
// Sheets, headers first.
func LedgerRows(records []register.CashRegisterRecord) [][]any {
	out := make([][]any, 0, len(records)+1)
	head := make([]any, len(ledgerHeaders))
	for i, h := range ledgerHeaders {
		head[i] = h
	}
	out = append(out, head)
	for _, rec := range records {
		out = append(out, []any{
			rec.RecordDate.Format("2006-01-02"),
			rec.ShiftType,
			rec.OpeningBalance.InexactFloat64(),
			rec.CashExpected.InexactFloat64(),
			rec.GcashExpected.InexactFloat64(),
			rec.Purchases.InexactFloat64(),
			rec.Salaries.InexactFloat64(),
			rec.OtherExpenses.InexactFloat64(),
			rec.CashActual.InexactFloat64(),
			rec.GcashActual.InexactFloat64(),
			rec.Discrepancy.InexactFloat64(),
		})
	}
	return out
}

// PayrollRows flattens the payroll table the same way.
func PayrollRows(rows []payroll.EmployeePayroll) [][]any {
	out := make([][]any, 0, len(rows)+1)
	head := make([]any, len(payrollHeaders))
	for i, h := range payrollHeaders {
		head[i] = h
	}
	out = append(out, head)
	for _, row := range rows {
		out = append(out, []any{
			row.EmployeeName,
			row.TotalShifts,
			row.TotalHours,
			row.BaseSalaryTotal.InexactFloat64(),
			row.BonusesTotal.InexactFloat64(),
			row.CashShortageTotal.InexactFloat64(),
			row.TotalSalary.InexactFloat64(),
			row.PaidAmount.InexactFloat64(),
			row.UnpaidAmount.InexactFloat64(),
		})
	}
	return out
}
