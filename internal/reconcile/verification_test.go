package reconcile

import (
	"testing"
	"time"

	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/register"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/shift"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func closedShift(date time.Time, shiftType string, cash, gcash int64) shift.Shift {
	c := dec(cash)
	g := dec(gcash)
	return shift.Shift{
		ID:          uuid.New(),
		EmployeeID:  uuid.New(),
		ShiftDate:   date,
		ShiftType:   shiftType,
		Status:      shift.StatusClosed,
		CashAmount:  &c,
		GcashAmount: &g,
	}
}

func TestComputePendingVerifications_ShortageScenario(t *testing.T) {
	date := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	shifts := []shift.Shift{
		closedShift(date, shift.TypeDay, 1000, 350),
	}
	records := []register.CashRegisterRecord{{
		RecordDate:    date,
		ShiftType:     shift.TypeDay,
		CashExpected:  dec(1000),
		GcashExpected: dec(500),
	}}

	groups := ComputePendingVerifications(shifts, nil, records)
	assert.Len(t, groups, 1)

	g := groups[0]
	assert.Equal(t, "2026-08-10", g.Date)
	assert.True(t, g.Submitted.Equal(dec(1350)))
	assert.True(t, g.Expected.Equal(dec(1500)))
	assert.True(t, g.Difference.Equal(dec(-150)), "difference got %s", g.Difference)
	assert.Equal(t, ClassShortage, g.Classification)
	assert.Len(t, g.SuggestedSplit, 1)
	assert.True(t, g.SuggestedSplit[0].Equal(dec(150)))
}

// An evening night shift is dated to the next business day at close, so
// its group must line up with the register row keyed by that same date.
func TestComputePendingVerifications_NightSlotMatchesBusinessDateRegister(t *testing.T) {
	started := time.Date(2026, 8, 10, 19, 0, 0, 0, time.UTC)
	businessDate := shift.BusinessDateForStart(started)

	s := closedShift(businessDate, shift.TypeNight, 1500, 0)
	s.StartedAt = started
	records := []register.CashRegisterRecord{{
		RecordDate:   businessDate,
		ShiftType:    shift.TypeNight,
		CashExpected: dec(1500),
	}}

	groups := ComputePendingVerifications([]shift.Shift{s}, nil, records)
	assert.Len(t, groups, 1)

	g := groups[0]
	assert.Equal(t, "2026-08-11", g.Date)
	assert.True(t, g.Expected.Equal(dec(1500)))
	assert.True(t, g.Difference.IsZero(), "difference got %s", g.Difference)
	assert.Equal(t, ClassMatch, g.Classification)
}

func TestComputePendingVerifications_NoRegisterDefaultsToZero(t *testing.T) {
	date := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	groups := ComputePendingVerifications(
		[]shift.Shift{closedShift(date, shift.TypeNight, 800, 0)},
		nil, nil,
	)
	assert.Len(t, groups, 1)
	assert.True(t, groups[0].Expected.IsZero())
	assert.True(t, groups[0].Difference.Equal(dec(800)))
	assert.Equal(t, ClassSurplus, groups[0].Classification)
}

func TestComputePendingVerifications_SkipsApprovedAndOpen(t *testing.T) {
	date := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	approved := closedShift(date, shift.TypeDay, 100, 0)
	approved.Approved = true
	open := shift.Shift{
		ID: uuid.New(), EmployeeID: uuid.New(),
		ShiftDate: date, ShiftType: shift.TypeDay, Status: shift.StatusOpen,
	}

	groups := ComputePendingVerifications([]shift.Shift{approved, open}, nil, nil)
	assert.Empty(t, groups)
}

func TestComputePendingVerifications_AttachesPendingExpenses(t *testing.T) {
	date := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	shifts := []shift.Shift{closedShift(date, shift.TypeDay, 500, 0)}
	expenses := []register.CashExpense{
		{ID: uuid.New(), ExpenseDate: date, ShiftType: shift.TypeDay, Category: register.CategoryPurchases, Amount: dec(80)},
		{ID: uuid.New(), ExpenseDate: date, ShiftType: shift.TypeDay, Amount: dec(40), Approved: true},
		{ID: uuid.New(), ExpenseDate: date, ShiftType: shift.TypeNight, Amount: dec(25)},
	}

	groups := ComputePendingVerifications(shifts, expenses, nil)
	assert.Len(t, groups, 1)
	assert.Len(t, groups[0].Expenses, 1)
	assert.True(t, groups[0].Expenses[0].Amount.Equal(dec(80)))
}

func TestSplitShortage_RemainderGoesFirst(t *testing.T) {
	shares := SplitShortage(dec(100), 3)
	assert.Len(t, shares, 3)
	assert.True(t, shares[0].Equal(dec(34)), "first share got %s", shares[0])
	assert.True(t, shares[1].Equal(dec(33)))
	assert.True(t, shares[2].Equal(dec(33)))

	sum := decimal.Zero
	for _, s := range shares {
		sum = sum.Add(s)
	}
	assert.True(t, sum.Equal(dec(100)))
}

func TestSplitShortage_EvenAndSingle(t *testing.T) {
	even := SplitShortage(dec(90), 3)
	for _, s := range even {
		assert.True(t, s.Equal(dec(30)))
	}

	single := SplitShortage(dec(77), 1)
	assert.True(t, single[0].Equal(dec(77)))

	assert.Nil(t, SplitShortage(dec(10), 0))
}
