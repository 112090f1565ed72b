package payroll

import (
	"testing"
	"time"

	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/bonus"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/shift"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestBuildSummary_NetPay(t *testing.T) {
	emp := uuid.New()

	shifts := []shift.Shift{
		{
			ID: uuid.New(), EmployeeID: emp, Status: shift.StatusClosed,
			TotalHours: 8, CashShortage: dec(150),
			Employee: &shift.EmployeeRef{FullName: "Anna"},
		},
		{
			ID: uuid.New(), EmployeeID: emp, Status: shift.StatusClosed,
			TotalHours: 7.5,
		},
	}
	bonuses := []bonus.Bonus{
		{ShiftID: shifts[0].ID, EmployeeID: emp, Amount: dec(200)},
		{ShiftID: shifts[1].ID, EmployeeID: emp, Amount: dec(100)},
	}

	rows := BuildSummary(shifts, bonuses, SortByName)
	assert.Len(t, rows, 1)

	r := rows[0]
	assert.Equal(t, "Anna", r.EmployeeName)
	assert.Equal(t, 2, r.TotalShifts)
	assert.Equal(t, 15.5, r.TotalHours)
	// Base defaults to 500 per shift when unset.
	assert.True(t, r.BaseSalaryTotal.Equal(dec(1000)))
	assert.True(t, r.BonusesTotal.Equal(dec(300)))
	assert.True(t, r.CashShortageTotal.Equal(dec(150)))
	assert.True(t, r.TotalSalary.Equal(dec(1150)), "total got %s", r.TotalSalary)
	assert.False(t, r.SalaryPaid)
	assert.True(t, r.UnpaidAmount.Equal(dec(1150)))
}

func TestBuildSummary_ExplicitBaseAndPaidSplit(t *testing.T) {
	emp := uuid.New()
	paidAt := time.Now()
	paidAmount := dec(600)

	shifts := []shift.Shift{
		{
			ID: uuid.New(), EmployeeID: emp, Status: shift.StatusClosed,
			BaseSalary: dec(600),
			SalaryPaid: true, SalaryPaidAmount: &paidAmount, SalaryPaidAt: &paidAt,
		},
	}

	rows := BuildSummary(shifts, nil, SortByName)
	assert.Len(t, rows, 1)
	assert.True(t, rows[0].BaseSalaryTotal.Equal(dec(600)))
	assert.True(t, rows[0].SalaryPaid)
	assert.True(t, rows[0].PaidAmount.Equal(dec(600)))
	assert.True(t, rows[0].UnpaidAmount.IsZero())
}

func TestBuildSummary_IgnoresOpenShiftsAndForeignBonuses(t *testing.T) {
	emp := uuid.New()

	shifts := []shift.Shift{
		{ID: uuid.New(), EmployeeID: emp, Status: shift.StatusClosed},
		{ID: uuid.New(), EmployeeID: emp, Status: shift.StatusOpen},
	}
	bonuses := []bonus.Bonus{
		{ShiftID: uuid.New(), EmployeeID: uuid.New(), Amount: dec(999)},
	}

	rows := BuildSummary(shifts, bonuses, SortByName)
	assert.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].TotalShifts)
	assert.True(t, rows[0].BonusesTotal.IsZero())
}

func TestBuildSummary_SortOrders(t *testing.T) {
	empA := uuid.New()
	empB := uuid.New()

	shifts := []shift.Shift{
		{ID: uuid.New(), EmployeeID: empB, Status: shift.StatusClosed, Employee: &shift.EmployeeRef{FullName: "Zed"}},
		{ID: uuid.New(), EmployeeID: empB, Status: shift.StatusClosed, Employee: &shift.EmployeeRef{FullName: "Zed"}},
		{ID: uuid.New(), EmployeeID: empA, Status: shift.StatusClosed, Employee: &shift.EmployeeRef{FullName: "Amy"}},
	}

	byName := BuildSummary(shifts, nil, SortByName)
	assert.Equal(t, "Amy", byName[0].EmployeeName)
	assert.Equal(t, "Zed", byName[1].EmployeeName)

	byShifts := BuildSummary(shifts, nil, SortByShifts)
	assert.Equal(t, "Zed", byShifts[0].EmployeeName)
	assert.Equal(t, 2, byShifts[0].TotalShifts)
}
