package export

import (
	"testing"
	"time"

	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/payroll"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/register"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/shift"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func sampleRecord() register.CashRegisterRecord {
	return register.CashRegisterRecord{
		RecordDate:     time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
		ShiftType:      shift.TypeDay,
		OpeningBalance: decimal.NewFromInt(500),
		CashExpected:   decimal.NewFromInt(1200),
		GcashExpected:  decimal.NewFromInt(300),
		Purchases:      decimal.NewFromInt(150),
		CashActual:     decimal.NewFromInt(1180),
		GcashActual:    decimal.NewFromInt(300),
		Discrepancy:    decimal.NewFromInt(-20),
	}
}

func samplePayrollRow() payroll.EmployeePayroll {
	return payroll.EmployeePayroll{
		EmployeeName:      "Carla",
		TotalShifts:       3,
		TotalHours:        24.5,
		BaseSalaryTotal:   decimal.NewFromInt(1500),
		BonusesTotal:      decimal.NewFromInt(200),
		CashShortageTotal: decimal.NewFromInt(20),
		TotalSalary:       decimal.NewFromInt(1680),
		PaidAmount:        decimal.NewFromInt(1000),
		UnpaidAmount:      decimal.NewFromInt(680),
	}
}

func TestBuildWorkbook(t *testing.T) {
	f, err := BuildWorkbook(
		[]register.CashRegisterRecord{sampleRecord()},
		[]payroll.EmployeePayroll{samplePayrollRow()},
	)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{LedgerSheet, PayrollSheet}, f.GetSheetList())

	v, err := f.GetCellValue(LedgerSheet, "A1")
	assert.NoError(t, err)
	assert.Equal(t, "Date", v)
	v, _ = f.GetCellValue(LedgerSheet, "A2")
	assert.Equal(t, "2025-04-02", v)
	v, _ = f.GetCellValue(LedgerSheet, "B2")
	assert.Equal(t, shift.TypeDay, v)
	v, _ = f.GetCellValue(LedgerSheet, "K2")
	assert.Equal(t, "-20", v)

	v, _ = f.GetCellValue(PayrollSheet, "A1")
	assert.Equal(t, "Employee", v)
	v, _ = f.GetCellValue(PayrollSheet, "A2")
	assert.Equal(t, "Carla", v)
	v, _ = f.GetCellValue(PayrollSheet, "G2")
	assert.Equal(t, "1680", v)
}

func TestLedgerRows(t *testing.T) {
	rows := LedgerRows([]register.CashRegisterRecord{sampleRecord()})
	assert.Len(t, rows, 2)
	assert.Equal(t, "Date", rows[0][0])
	assert.Len(t, rows[0], len(rows[1]))
	assert.Equal(t, "2025-04-02", rows[1][0])
	assert.Equal(t, -20.0, rows[1][10])
}

func TestPayrollRows(t *testing.T) {
	rows := PayrollRows([]payroll.EmployeePayroll{samplePayrollRow()})
	assert.Len(t, rows, 2)
	assert.Equal(t, "Employee", rows[0][0])
	assert.Len(t, rows[0], len(rows[1]))
	assert.Equal(t, "Carla", rows[1][0])
	assert.Equal(t, 680.0, rows[1][8])
}
