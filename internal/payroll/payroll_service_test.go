package payroll

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/bonus"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/shift"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	withTxFn           func(tx *sql.Tx) Repository
	findClosedShiftsFn func(ctx context.Context, from, to time.Time, employeeID string) ([]shift.Shift, error)
	findBonusesFn      func(ctx context.Context, from, to time.Time, employeeID string) ([]bonus.Bonus, error)
	markPaidFn         func(ctx context.Context, employeeID string, from, to time.Time, amount decimal.Decimal, paidAt time.Time) (int64, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f.withTxFn(tx) }
func (f *fakeRepo) FindClosedShifts(ctx context.Context, from, to time.Time, employeeID string) ([]shift.Shift, error) {
	return f.findClosedShiftsFn(ctx, from, to, employeeID)
}
func (f *fakeRepo) FindBonuses(ctx context.Context, from, to time.Time, employeeID string) ([]bonus.Bonus, error) {
	return f.findBonusesFn(ctx, from, to, employeeID)
}
func (f *fakeRepo) MarkPaid(ctx context.Context, employeeID string, from, to time.Time, amount decimal.Decimal, paidAt time.Time) (int64, error) {
	return f.markPaidFn(ctx, employeeID, from, to, amount, paidAt)
}

func TestService_GetSummary_ScopesToEmployee(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	employeeID := uuid.New()
	var shiftsFilter, bonusesFilter string

	repo := &fakeRepo{}
	repo.findClosedShiftsFn = func(ctx context.Context, from, to time.Time, eid string) ([]shift.Shift, error) {
		shiftsFilter = eid
		return []shift.Shift{{
			ID:         uuid.New(),
			EmployeeID: employeeID,
			Employee:   &shift.EmployeeRef{ID: employeeID, FullName: "Dana"},
			Status:     shift.StatusClosed,
			TotalHours: 8,
		}}, nil
	}
	repo.findBonusesFn = func(ctx context.Context, from, to time.Time, eid string) ([]bonus.Bonus, error) {
		bonusesFilter = eid
		return nil, nil
	}

	svc := NewService(db, repo, nil)

	rows, err := svc.GetSummary(context.Background(), SummaryQuery{
		From:       "2026-08-01",
		To:         "2026-08-31",
		EmployeeID: employeeID.String(),
	})
	assert.NoError(t, err)
	assert.Equal(t, employeeID.String(), shiftsFilter)
	assert.Equal(t, employeeID.String(), bonusesFilter)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Dana", rows[0].EmployeeName)
}

func TestSummaryCacheKey_VariesPerEmployee(t *testing.T) {
	all := summaryCacheKey(SummaryQuery{From: "2026-08-01", To: "2026-08-31"})
	one := summaryCacheKey(SummaryQuery{From: "2026-08-01", To: "2026-08-31", EmployeeID: "e-1"})
	assert.NotEqual(t, all, one)
}
