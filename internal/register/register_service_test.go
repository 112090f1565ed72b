package register

import (
	"context"
	"database/sql"
	"testing"
	"time"

	registererrors "github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/register/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// In-memory repo: one register row plus its expenses.
type fakeRepo struct {
	record   *CashRegisterRecord
	expenses map[string]*CashExpense
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{expenses: map[string]*CashExpense{}}
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, rec *CashRegisterRecord) error {
	f.record = rec
	return nil
}
func (f *fakeRepo) Save(ctx context.Context, rec *CashRegisterRecord) error {
	f.record = rec
	return nil
}
func (f *fakeRepo) FindByDateAndShift(ctx context.Context, date time.Time, shiftType string) (*CashRegisterRecord, error) {
	if f.record == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.record, nil
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*CashRegisterRecord, error) {
	if f.record == nil || f.record.ID.String() != id {
		return nil, gorm.ErrRecordNotFound
	}
	return f.record, nil
}
func (f *fakeRepo) FindInRange(ctx context.Context, from, to time.Time) ([]CashRegisterRecord, error) {
	if f.record == nil {
		return nil, nil
	}
	return []CashRegisterRecord{*f.record}, nil
}
func (f *fakeRepo) CreateExpense(ctx context.Context, e *CashExpense) error {
	f.expenses[e.ID.String()] = e
	return nil
}
func (f *fakeRepo) SaveExpense(ctx context.Context, e *CashExpense) error {
	f.expenses[e.ID.String()] = e
	return nil
}
func (f *fakeRepo) DeleteExpense(ctx context.Context, id string) error {
	delete(f.expenses, id)
	return nil
}
func (f *fakeRepo) FindExpenseByID(ctx context.Context, id string) (*CashExpense, error) {
	e, ok := f.expenses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}
func (f *fakeRepo) FindExpensesByRegister(ctx context.Context, registerID string) ([]CashExpense, error) {
	var out []CashExpense
	for _, e := range f.expenses {
		out = append(out, *e)
	}
	return out, nil
}
func (f *fakeRepo) FindExpensesInRange(ctx context.Context, from, to time.Time) ([]CashExpense, error) {
	return f.FindExpensesByRegister(ctx, "")
}

func TestFindOrCreate_LazyCreates(t *testing.T) {
	repo := newFakeRepo()
	date := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	rec, err := FindOrCreate(context.Background(), repo, date, "day")
	assert.NoError(t, err)
	assert.NotNil(t, rec)
	assert.True(t, rec.CashExpected.IsZero())

	again, err := FindOrCreate(context.Background(), repo, date, "day")
	assert.NoError(t, err)
	assert.Equal(t, rec.ID, again.ID)
}

func TestService_AddThenRemoveExpense_RoundTrip(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()
	svc := NewService(db, repo)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectCommit()
	exp, err := svc.AddExpense(ctx, AddExpenseRequest{
		Date:      "2026-08-10",
		ShiftType: "day",
		Category:  CategoryPurchases,
		Amount:    dec(120),
		Source:    SourceCash,
	})
	assert.NoError(t, err)
	assert.True(t, repo.record.Purchases.Equal(dec(120)))

	mock.ExpectBegin()
	mock.ExpectCommit()
	err = svc.RemoveExpense(ctx, exp.ID)
	assert.NoError(t, err)
	assert.True(t, repo.record.Purchases.IsZero(), "purchases got %s", repo.record.Purchases)
	assert.Empty(t, repo.expenses)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_ChangeExpenseCategory_MovesAggregate(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := newFakeRepo()
	svc := NewService(db, repo)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectCommit()
	exp, err := svc.AddExpense(ctx, AddExpenseRequest{
		Date:      "2026-08-10",
		ShiftType: "night",
		Category:  CategoryPurchases,
		Amount:    dec(75),
		Source:    SourceGcash,
	})
	assert.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err = svc.ChangeExpenseCategory(ctx, exp.ID, ChangeExpenseCategoryRequest{Category: CategorySalaries})
	assert.NoError(t, err)
	assert.True(t, repo.record.Purchases.IsZero())
	assert.True(t, repo.record.Salaries.Equal(dec(75)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_AddExpense_Validation(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	svc := NewService(db, newFakeRepo())
	ctx := context.Background()

	_, err := svc.AddExpense(ctx, AddExpenseRequest{
		Date: "2026-08-10", ShiftType: "day", Category: "rent", Amount: dec(10), Source: SourceCash,
	})
	assert.ErrorIs(t, err, registererrors.ErrInvalidCategory)

	_, err = svc.AddExpense(ctx, AddExpenseRequest{
		Date: "2026-08-10", ShiftType: "day", Category: CategoryOther, Amount: dec(-10), Source: SourceCash,
	})
	assert.ErrorIs(t, err, registererrors.ErrInvalidAmount)

	_, err = svc.AddExpense(ctx, AddExpenseRequest{
		Date: "2026-08-10", ShiftType: "day", Category: CategoryOther, Amount: dec(10), Source: "card",
	})
	assert.ErrorIs(t, err, registererrors.ErrInvalidSource)
}
