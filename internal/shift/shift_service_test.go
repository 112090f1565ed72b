package shift

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/register"
	shifterrors "github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/shift/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn             func(tx *sql.Tx) Repository
	createFn             func(ctx context.Context, s *Shift) error
	saveFn               func(ctx context.Context, s *Shift) error
	findByIDFn           func(ctx context.Context, id string) (*Shift, error)
	findOpenByEmployeeFn func(ctx context.Context, employeeID string) (*Shift, error)
	findAllFn            func(ctx context.Context, q ListShiftsQuery) ([]Shift, error)
	findIDsInRangeFn     func(ctx context.Context, from, to time.Time) ([]string, error)
	detachExpensesFn     func(ctx context.Context, shiftIDs []string) (int64, error)
	deleteBonusesFn      func(ctx context.Context, shiftIDs []string) (int64, error)
	archiveByIDsFn       func(ctx context.Context, shiftIDs []string) (int64, error)
	deleteByIDsFn        func(ctx context.Context, shiftIDs []string) (int64, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository              { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, s *Shift) error { return f.createFn(ctx, s) }
func (f *fakeRepo) Save(ctx context.Context, s *Shift) error   { return f.saveFn(ctx, s) }
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Shift, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) FindOpenByEmployee(ctx context.Context, employeeID string) (*Shift, error) {
	return f.findOpenByEmployeeFn(ctx, employeeID)
}
func (f *fakeRepo) FindAll(ctx context.Context, q ListShiftsQuery) ([]Shift, error) {
	return f.findAllFn(ctx, q)
}
func (f *fakeRepo) FindIDsInRange(ctx context.Context, from, to time.Time) ([]string, error) {
	return f.findIDsInRangeFn(ctx, from, to)
}
func (f *fakeRepo) DetachExpenses(ctx context.Context, shiftIDs []string) (int64, error) {
	return f.detachExpensesFn(ctx, shiftIDs)
}
func (f *fakeRepo) DeleteBonuses(ctx context.Context, shiftIDs []string) (int64, error) {
	return f.deleteBonusesFn(ctx, shiftIDs)
}
func (f *fakeRepo) ArchiveByIDs(ctx context.Context, shiftIDs []string) (int64, error) {
	return f.archiveByIDsFn(ctx, shiftIDs)
}
func (f *fakeRepo) DeleteByIDs(ctx context.Context, shiftIDs []string) (int64, error) {
	return f.deleteByIDsFn(ctx, shiftIDs)
}

// fakeRegisterRepo overrides only what the shift service touches.
type fakeRegisterRepo struct {
	register.Repository
	record     *register.CashRegisterRecord
	saved      *register.CashRegisterRecord
	lookupDate time.Time
}

func (f *fakeRegisterRepo) WithTx(tx *sql.Tx) register.Repository { return f }
func (f *fakeRegisterRepo) FindByDateAndShift(ctx context.Context, date time.Time, shiftType string) (*register.CashRegisterRecord, error) {
	f.lookupDate = date
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

func TestService_Start_BlockedByOpenShift(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findOpenByEmployeeFn = func(ctx context.Context, employeeID string) (*Shift, error) {
		return &Shift{ID: uuid.New(), Status: StatusOpen}, nil
	}

	svc := NewService(db, repo, &fakeRegisterRepo{})

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Start(context.Background(), StartShiftRequest{EmployeeID: uuid.New().String()})
	assert.ErrorIs(t, err, shifterrors.ErrOpenShiftExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Start_CreatesOpenShift(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	var created Shift
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findOpenByEmployeeFn = func(ctx context.Context, employeeID string) (*Shift, error) {
		return nil, gorm.ErrRecordNotFound
	}
	repo.createFn = func(ctx context.Context, s *Shift) error { created = *s; return nil }

	svc := NewService(db, repo, &fakeRegisterRepo{})

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Start(context.Background(), StartShiftRequest{EmployeeID: uuid.New().String()})
	assert.NoError(t, err)
	assert.Equal(t, StatusOpen, created.Status)
	assert.Equal(t, created.ID.String(), resp.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_End_SettlesAgainstRegister(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	started := time.Now().Add(-8 * time.Hour)
	row := &Shift{
		ID:         uuid.New(),
		EmployeeID: uuid.New(),
		Status:     StatusOpen,
		ShiftDate:  time.Now(),
		StartedAt:  started,
	}

	var saved Shift
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findByIDFn = func(ctx context.Context, id string) (*Shift, error) { return row, nil }
	repo.saveFn = func(ctx context.Context, s *Shift) error { saved = *s; return nil }

	registers := &fakeRegisterRepo{record: &register.CashRegisterRecord{
		ID:            uuid.New(),
		CashExpected:  decimal.NewFromInt(1000),
		GcashExpected: decimal.NewFromInt(500),
	}}

	svc := NewService(db, repo, registers)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.End(context.Background(), row.ID.String(), EndShiftRequest{
		CashAmount:  decimal.NewFromInt(1000),
		GcashAmount: decimal.NewFromInt(350),
	})
	assert.NoError(t, err)

	assert.Equal(t, StatusClosed, saved.Status)
	assert.NotNil(t, saved.EndedAt)
	assert.True(t, saved.CashDifference.Equal(decimal.NewFromInt(-150)),
		"difference got %s", saved.CashDifference)
	assert.InDelta(t, 8.0, saved.TotalHours, 0.01)

	assert.NotNil(t, registers.saved)
	assert.True(t, registers.saved.CashActual.Equal(decimal.NewFromInt(1000)))
	assert.True(t, registers.saved.GcashActual.Equal(decimal.NewFromInt(350)))
	assert.True(t, registers.saved.Discrepancy.Equal(decimal.NewFromInt(-150)))

	assert.Equal(t, StatusClosed, resp.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A night shift starting after 17:00 settles against the next day's
// register row, and the closed shift must carry that same date so later
// verification reads the row the close wrote to.
func TestService_End_NightShiftBooksToNextBusinessDate(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	loc := time.Local
	started := time.Date(2026, 8, 10, 19, 0, 0, 0, loc)
	row := &Shift{
		ID:         uuid.New(),
		EmployeeID: uuid.New(),
		Status:     StatusOpen,
		ShiftDate:  time.Date(2026, 8, 10, 0, 0, 0, 0, loc),
		StartedAt:  started,
	}

	var saved Shift
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findByIDFn = func(ctx context.Context, id string) (*Shift, error) { return row, nil }
	repo.saveFn = func(ctx context.Context, s *Shift) error { saved = *s; return nil }

	registers := &fakeRegisterRepo{record: &register.CashRegisterRecord{
		ID:           uuid.New(),
		RecordDate:   time.Date(2026, 8, 11, 0, 0, 0, 0, loc),
		ShiftType:    TypeNight,
		CashExpected: decimal.NewFromInt(1500),
	}}

	svc := NewService(db, repo, registers)

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.End(context.Background(), row.ID.String(), EndShiftRequest{
		CashAmount: decimal.NewFromInt(1500),
	})
	assert.NoError(t, err)

	nextDay := time.Date(2026, 8, 11, 0, 0, 0, 0, loc)
	assert.Equal(t, nextDay, registers.lookupDate, "register lookup should use the business date")
	assert.Equal(t, nextDay, saved.ShiftDate, "closed shift should carry the business date")
	assert.Equal(t, TypeNight, saved.ShiftType)
	assert.True(t, saved.CashDifference.IsZero(), "difference got %s", saved.CashDifference)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_End_RejectsNegativeAmounts(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, &fakeRepo{}, &fakeRegisterRepo{})

	_, err := svc.End(context.Background(), uuid.New().String(), EndShiftRequest{
		CashAmount:  decimal.NewFromInt(-100),
		GcashAmount: decimal.NewFromInt(50),
	})
	assert.ErrorIs(t, err, shifterrors.ErrNegativeAmount)
}

func TestService_End_RequiresOpenShift(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findByIDFn = func(ctx context.Context, id string) (*Shift, error) {
		return &Shift{ID: uuid.New(), Status: StatusClosed}, nil
	}

	svc := NewService(db, repo, &fakeRegisterRepo{})

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.End(context.Background(), uuid.New().String(), EndShiftRequest{})
	assert.ErrorIs(t, err, shifterrors.ErrShiftNotOpen)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ResetPeriod_ArchivesByDefault(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	ids := []string{uuid.New().String(), uuid.New().String()}
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.findIDsInRangeFn = func(ctx context.Context, from, to time.Time) ([]string, error) {
		return ids, nil
	}
	repo.detachExpensesFn = func(ctx context.Context, shiftIDs []string) (int64, error) { return 3, nil }
	repo.deleteBonusesFn = func(ctx context.Context, shiftIDs []string) (int64, error) { return 2, nil }
	archived := false
	repo.archiveByIDsFn = func(ctx context.Context, shiftIDs []string) (int64, error) {
		archived = true
		return int64(len(shiftIDs)), nil
	}
	repo.deleteByIDsFn = func(ctx context.Context, shiftIDs []string) (int64, error) {
		t.Fatal("hard delete must not run without confirm_delete")
		return 0, nil
	}

	svc := NewService(db, repo, &fakeRegisterRepo{})

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.ResetPeriod(context.Background(), ResetPeriodRequest{
		From: "2026-08-01",
		To:   "2026-08-31",
	})
	assert.NoError(t, err)
	assert.True(t, archived)
	assert.Equal(t, "archived", resp.Mode)
	assert.Equal(t, int64(2), resp.ShiftsAffected)
	assert.Equal(t, int64(2), resp.BonusesDeleted)
	assert.Equal(t, int64(3), resp.ExpensesDetached)
	assert.NoError(t, mock.ExpectationsWereMet())
}
