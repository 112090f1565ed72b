package reconcile

import (
	"context"
	"database/sql"
	"testing"
	"time"

	reconcileerrors "github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/reconcile/errors"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/register"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/shift"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn              func(tx *sql.Tx) Repository
	findClosedUnapproved  func(ctx context.Context, from, to time.Time) ([]shift.Shift, error)
	findGroupShifts       func(ctx context.Context, date time.Time, shiftType string) ([]shift.Shift, error)
	findPendingExpenses   func(ctx context.Context, from, to time.Time) ([]register.CashExpense, error)
	approveSlotExpensesFn func(ctx context.Context, date time.Time, shiftType string) (int64, error)
	saveShiftFn           func(ctx context.Context, s *shift.Shift) error
	findShiftByIDFn       func(ctx context.Context, id string) (*shift.Shift, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f.withTxFn(tx) }
func (f *fakeRepo) FindClosedUnapproved(ctx context.Context, from, to time.Time) ([]shift.Shift, error) {
	return f.findClosedUnapproved(ctx, from, to)
}
func (f *fakeRepo) FindGroupShifts(ctx context.Context, date time.Time, shiftType string) ([]shift.Shift, error) {
	return f.findGroupShifts(ctx, date, shiftType)
}
func (f *fakeRepo) FindPendingExpenses(ctx context.Context, from, to time.Time) ([]register.CashExpense, error) {
	return f.findPendingExpenses(ctx, from, to)
}
func (f *fakeRepo) ApproveSlotExpenses(ctx context.Context, date time.Time, shiftType string) (int64, error) {
	return f.approveSlotExpensesFn(ctx, date, shiftType)
}
func (f *fakeRepo) SaveShift(ctx context.Context, s *shift.Shift) error { return f.saveShiftFn(ctx, s) }
func (f *fakeRepo) FindShiftByID(ctx context.Context, id string) (*shift.Shift, error) {
	return f.findShiftByIDFn(ctx, id)
}

type fakeRegisterRepo struct {
	register.Repository
	record *register.CashRegisterRecord
	saved  *register.CashRegisterRecord
}

func (f *fakeRegisterRepo) WithTx(tx *sql.Tx) register.Repository { return f }
func (f *fakeRegisterRepo) FindByDateAndShift(ctx context.Context, date time.Time, shiftType string) (*register.CashRegisterRecord, error) {
	if f.record == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.record, nil
}
func (f *fakeRegisterRepo) Create(ctx context.Context, rec *register.CashRegisterRecord) error {
	f.record = rec
	return nil
}
func (f *fakeRegisterRepo) Save(ctx context.Context, rec *register.CashRegisterRecord) error {
	f.saved = rec
	return nil
}

func groupMember(cash, gcash int64) shift.Shift {
	c := decimal.NewFromInt(cash)
	g := decimal.NewFromInt(gcash)
	return shift.Shift{
		ID:          uuid.New(),
		EmployeeID:  uuid.New(),
		Status:      shift.StatusClosed,
		CashAmount:  &c,
		GcashAmount: &g,
	}
}

func TestService_ApproveGroup_SplitsShortage(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	members := []shift.Shift{groupMember(400, 0), groupMember(400, 0), groupMember(400, 0)}

	var saved []shift.Shift
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findGroupShifts = func(ctx context.Context, date time.Time, shiftType string) ([]shift.Shift, error) {
		return members, nil
	}
	repo.saveShiftFn = func(ctx context.Context, s *shift.Shift) error {
		saved = append(saved, *s)
		return nil
	}
	repo.approveSlotExpensesFn = func(ctx context.Context, date time.Time, shiftType string) (int64, error) {
		return 2, nil
	}

	registers := &fakeRegisterRepo{record: &register.CashRegisterRecord{
		ID:           uuid.New(),
		CashExpected: decimal.NewFromInt(1300),
	}}

	svc := NewService(db, repo, registers, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.ApproveGroup(context.Background(), ApproveGroupRequest{
		Date:      "2026-08-10",
		ShiftType: shift.TypeDay,
	})
	assert.NoError(t, err)

	// 1200 submitted against 1300 expected: 100 short, 34/33/33.
	assert.Equal(t, ClassShortage, resp.Classification)
	assert.True(t, resp.Difference.Equal(decimal.NewFromInt(-100)))
	assert.Equal(t, 3, resp.ShiftsApproved)
	assert.Equal(t, int64(2), resp.ExpensesCleared)

	assert.Len(t, saved, 3)
	assert.True(t, saved[0].CashShortage.Equal(decimal.NewFromInt(34)))
	assert.True(t, saved[1].CashShortage.Equal(decimal.NewFromInt(33)))
	assert.True(t, saved[2].CashShortage.Equal(decimal.NewFromInt(33)))
	for _, s := range saved {
		assert.True(t, s.Approved)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ApproveGroup_OverrideValidation(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	members := []shift.Shift{groupMember(100, 0)}

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findGroupShifts = func(ctx context.Context, date time.Time, shiftType string) ([]shift.Shift, error) {
		return members, nil
	}

	registers := &fakeRegisterRepo{record: &register.CashRegisterRecord{
		ID:           uuid.New(),
		CashExpected: decimal.NewFromInt(150),
	}}

	svc := NewService(db, repo, registers, nil)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.ApproveGroup(context.Background(), ApproveGroupRequest{
		Date:      "2026-08-10",
		ShiftType: shift.TypeDay,
		ShortageOverrides: map[string]decimal.Decimal{
			uuid.New().String(): decimal.NewFromInt(50),
		},
	})
	assert.ErrorIs(t, err, reconcileerrors.ErrUnknownShiftOverride)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ApproveGroup_NothingPending(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findGroupShifts = func(ctx context.Context, date time.Time, shiftType string) ([]shift.Shift, error) {
		return nil, nil
	}

	svc := NewService(db, repo, &fakeRegisterRepo{}, nil)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.ApproveGroup(context.Background(), ApproveGroupRequest{
		Date:      "2026-08-10",
		ShiftType: shift.TypeNight,
	})
	assert.ErrorIs(t, err, reconcileerrors.ErrNothingPending)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_RejectShift_ClearsSubmission(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	row := groupMember(900, 100)
	diff := decimal.NewFromInt(-50)
	row.CashDifference = &diff

	var saved shift.Shift
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findShiftByIDFn = func(ctx context.Context, id string) (*shift.Shift, error) { return &row, nil }
	repo.saveShiftFn = func(ctx context.Context, s *shift.Shift) error { saved = *s; return nil }

	svc := NewService(db, repo, &fakeRegisterRepo{}, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.RejectShift(context.Background(), row.ID.String())
	assert.NoError(t, err)
	assert.Nil(t, saved.CashAmount)
	assert.Nil(t, saved.GcashAmount)
	assert.Nil(t, saved.CashDifference)
	assert.Equal(t, shift.StatusClosed, resp.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
