package register

import (
	"context"
	"database/sql"
	"errors"
	"time"

	registererrors "github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/register/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=register_service.go -destination=mock/register_service_mock.go -package=mock
type Service interface {
	GetByDateAndShift(ctx context.Context, date, shiftType string) (RegisterResponse, []ExpenseResponse, error)
	GetRange(ctx context.Context, from, to string) ([]RegisterResponse, error)
	SetOpeningBalance(ctx context.Context, req SetOpeningBalanceRequest) (RegisterResponse, error)
	AddExpense(ctx context.Context, req AddExpenseRequest) (ExpenseResponse, error)
	RemoveExpense(ctx context.Context, id string) error
	ChangeExpenseCategory(ctx context.Context, id string, req ChangeExpenseCategoryRequest) (ExpenseResponse, error)
	ApproveExpense(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("register.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("register.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// FindOrCreate looks up the register row for (date, shiftType), creating a
// zeroed row when none exists yet. "No data yet" is a valid state, not an
// error: expected then reads as zero.
func FindOrCreate(ctx context.Context, repo Repository, date time.Time, shiftType string) (*CashRegisterRecord, error) {
	rec, err := repo.FindByDateAndShift(ctx, date, shiftType)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	rec = &CashRegisterRecord{
		ID:         uuid.New(),
		RecordDate: date,
		ShiftType:  shiftType,
	}
	if err := repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *service) GetByDateAndShift(ctx context.Context, date, shiftType string) (RegisterResponse, []ExpenseResponse, error) {
	day, err := parseDate(date)
	if err != nil {
		return RegisterResponse{}, nil, err
	}

	rec, err := s.repo.FindByDateAndShift(ctx, day, shiftType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RegisterResponse{}, nil, registererrors.ErrRecordNotFound
		}
		return RegisterResponse{}, nil, err
	}

	expenses, err := s.repo.FindExpensesByRegister(ctx, rec.ID.String())
	if err != nil {
		return RegisterResponse{}, nil, err
	}

	expResp := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		expResp[i] = mapExpenseToResponse(e)
	}
	return mapRecordToResponse(*rec), expResp, nil
}

func (s *service) GetRange(ctx context.Context, from, to string) ([]RegisterResponse, error) {
	fromDay, err := parseDate(from)
	if err != nil {
		return nil, err
	}
	toDay, err := parseDate(to)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindInRange(ctx, fromDay, toDay)
	if err != nil {
		return nil, err
	}
	resp := make([]RegisterResponse, len(rows))
	for i, r := range rows {
		resp[i] = mapRecordToResponse(r)
	}
	return resp, nil
}

func (s *service) SetOpeningBalance(ctx context.Context, req SetOpeningBalanceRequest) (RegisterResponse, error) {
	day, err := parseDate(req.Date)
	if err != nil {
		return RegisterResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RegisterResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rec, err := FindOrCreate(ctx, qtx, day, req.ShiftType)
	if err != nil {
		return RegisterResponse{}, err
	}

	rec.OpeningBalance = req.OpeningBalance
	if err := qtx.Save(ctx, rec); err != nil {
		return RegisterResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return RegisterResponse{}, err
	}
	return mapRecordToResponse(*rec), nil
}

// AddExpense inserts the expense row and bumps the matching aggregate in
// the same transaction, keeping the running total equal to the sum of its
// expense rows.
func (s *service) AddExpense(ctx context.Context, req AddExpenseRequest) (ExpenseResponse, error) {
	if !ValidCategory(req.Category) {
		return ExpenseResponse{}, registererrors.ErrInvalidCategory
	}
	if !ValidSource(req.Source) {
		return ExpenseResponse{}, registererrors.ErrInvalidSource
	}
	if !req.Amount.IsPositive() {
		return ExpenseResponse{}, registererrors.ErrInvalidAmount
	}
	day, err := parseDate(req.Date)
	if err != nil {
		return ExpenseResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ExpenseResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rec, err := FindOrCreate(ctx, qtx, day, req.ShiftType)
	if err != nil {
		return ExpenseResponse{}, err
	}

	expense := &CashExpense{
		ID:          uuid.New(),
		RegisterID:  rec.ID,
		ExpenseDate: day,
		ShiftType:   req.ShiftType,
		Category:    req.Category,
		Amount:      req.Amount,
		Source:      req.Source,
		Description: req.Description,
	}
	if req.ShiftID != "" {
		shiftID, err := uuid.Parse(req.ShiftID)
		if err != nil {
			return ExpenseResponse{}, errors.New("invalid shift id")
		}
		expense.ShiftID = &shiftID
	}

	if err := qtx.CreateExpense(ctx, expense); err != nil {
		return ExpenseResponse{}, err
	}

	AddToCategory(rec, req.Category, req.Amount)
	if err := qtx.Save(ctx, rec); err != nil {
		return ExpenseResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ExpenseResponse{}, err
	}
	return mapExpenseToResponse(*expense), nil
}

// RemoveExpense deletes the row and subtracts its amount from the parent
// aggregate, the exact inverse of AddExpense.
func (s *service) RemoveExpense(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	expense, err := qtx.FindExpenseByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return registererrors.ErrExpenseNotFound
		}
		return err
	}

	rec, err := qtx.FindByID(ctx, expense.RegisterID.String())
	if err != nil {
		return err
	}

	if err := qtx.DeleteExpense(ctx, id); err != nil {
		return err
	}

	AddToCategory(rec, expense.Category, expense.Amount.Neg())
	if err := qtx.Save(ctx, rec); err != nil {
		return err
	}

	return tx.Commit()
}

// ChangeExpenseCategory moves the amount between aggregates and updates
// the row, all in one transaction.
func (s *service) ChangeExpenseCategory(ctx context.Context, id string, req ChangeExpenseCategoryRequest) (ExpenseResponse, error) {
	if !ValidCategory(req.Category) {
		return ExpenseResponse{}, registererrors.ErrInvalidCategory
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ExpenseResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	expense, err := qtx.FindExpenseByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ExpenseResponse{}, registererrors.ErrExpenseNotFound
		}
		return ExpenseResponse{}, err
	}

	if expense.Category == req.Category {
		return mapExpenseToResponse(*expense), nil
	}

	rec, err := qtx.FindByID(ctx, expense.RegisterID.String())
	if err != nil {
		return ExpenseResponse{}, err
	}

	AddToCategory(rec, expense.Category, expense.Amount.Neg())
	AddToCategory(rec, req.Category, expense.Amount)
	expense.Category = req.Category

	if err := qtx.SaveExpense(ctx, expense); err != nil {
		return ExpenseResponse{}, err
	}
	if err := qtx.Save(ctx, rec); err != nil {
		return ExpenseResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ExpenseResponse{}, err
	}
	return mapExpenseToResponse(*expense), nil
}

func (s *service) ApproveExpense(ctx context.Context, id string) error {
	expense, err := s.repo.FindExpenseByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return registererrors.ErrExpenseNotFound
		}
		return err
	}
	expense.Approved = true
	return s.repo.SaveExpense(ctx, expense)
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, errors.New("invalid date format, expected YYYY-MM-DD")
	}
	return t, nil
}

func mapRecordToResponse(r CashRegisterRecord) RegisterResponse {
	return RegisterResponse{
		ID:             r.ID.String(),
		Date:           r.RecordDate.Format("2006-01-02"),
		ShiftType:      r.ShiftType,
		OpeningBalance: r.OpeningBalance,
		CashExpected:   r.CashExpected,
		GcashExpected:  r.GcashExpected,
		Purchases:      r.Purchases,
		Salaries:       r.Salaries,
		OtherExpenses:  r.OtherExpenses,
		CashActual:     r.CashActual,
		GcashActual:    r.GcashActual,
		Discrepancy:    r.Discrepancy,
	}
}

func mapExpenseToResponse(e CashExpense) ExpenseResponse {
	resp := ExpenseResponse{
		ID:          e.ID.String(),
		RegisterID:  e.RegisterID.String(),
		Date:        e.ExpenseDate.Format("2006-01-02"),
		ShiftType:   e.ShiftType,
		Category:    e.Category,
		Amount:      e.Amount,
		Source:      e.Source,
		Approved:    e.Approved,
		Description: e.Description,
	}
	if e.ShiftID != nil {
		v := e.ShiftID.String()
		resp.ShiftID = &v
	}
	return resp
}
