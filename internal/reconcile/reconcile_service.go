package reconcile

import (
	"context"
	"database/sql"
	"errors"
	"time"

	reconcileerrors "github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/reconcile/errors"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/register"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/shared/contextutil"
	shifterrors "github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/shift/errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=reconcile_service.go -destination=mock/reconcile_service_mock.go -package=mock
type Service interface {
	ListPending(ctx context.Context, from, to string) ([]PendingGroup, error)
	ApproveGroup(ctx context.Context, req ApproveGroupRequest) (ApproveGroupResponse, error)
	RejectShift(ctx context.Context, shiftID string) (RejectShiftResponse, error)
	ApproveExpense(ctx context.Context, id string) error
	RejectExpense(ctx context.Context, id string) error
}

type service struct {
	db        *sql.DB
	repo      Repository
	registers register.Repository
	expenses  register.Service
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	registers register.Repository,
	expenses register.Service,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("reconcile.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("reconcile.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		registers: registers,
		expenses:  expenses,
		logger:    l,
	}
}

func (s *service) ListPending(ctx context.Context, from, to string) ([]PendingGroup, error) {
	start, err := time.Parse("2006-01-02", from)
	if err != nil {
		return nil, errors.New("invalid from date, expected YYYY-MM-DD")
	}
	end, err := time.Parse("2006-01-02", to)
	if err != nil {
		return nil, errors.New("invalid to date, expected YYYY-MM-DD")
	}

	shifts, err := s.repo.FindClosedUnapproved(ctx, start, end)
	if err != nil {
		return nil, err
	}
	expenses, err := s.repo.FindPendingExpenses(ctx, start, end)
	if err != nil {
		return nil, err
	}
	records, err := s.registers.FindInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return ComputePendingVerifications(shifts, expenses, records), nil
}

// ApproveGroup settles one (date, shift type) handover in a single
// transaction. Shortages are charged to the member shifts, pending expenses
// for the slot are approved, and a surplus can be folded into the register
// actuals when the caller asks for it.
func (s *service) ApproveGroup(ctx context.Context, req ApproveGroupRequest) (ApproveGroupResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return ApproveGroupResponse{}, errors.New("invalid date, expected YYYY-MM-DD")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ApproveGroupResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	qreg := s.registers.WithTx(tx)

	members, err := qtx.FindGroupShifts(ctx, date, req.ShiftType)
	if err != nil {
		return ApproveGroupResponse{}, err
	}
	if len(members) == 0 {
		return ApproveGroupResponse{}, reconcileerrors.ErrNothingPending
	}

	rec, err := register.FindOrCreate(ctx, qreg, date, req.ShiftType)
	if err != nil {
		return ApproveGroupResponse{}, err
	}

	submitted := decimal.Zero
	for _, m := range members {
		if m.CashAmount != nil {
			submitted = submitted.Add(*m.CashAmount)
		}
		if m.GcashAmount != nil {
			submitted = submitted.Add(*m.GcashAmount)
		}
	}
	expected := rec.CashExpected.Add(rec.GcashExpected)
	difference := submitted.Sub(expected)
	classification := Classify(difference)

	shortages := map[string]decimal.Decimal{}
	if classification == ClassShortage {
		shortage := difference.Neg()
		if len(req.ShortageOverrides) > 0 {
			ids := make(map[string]bool, len(members))
			for _, m := range members {
				ids[m.ID.String()] = true
			}
			sum := decimal.Zero
			for id, amount := range req.ShortageOverrides {
				if !ids[id] {
					return ApproveGroupResponse{}, reconcileerrors.ErrUnknownShiftOverride
				}
				sum = sum.Add(amount)
			}
			if !sum.Equal(shortage) {
				return ApproveGroupResponse{}, reconcileerrors.ErrOverrideMismatch
			}
			shortages = req.ShortageOverrides
		} else {
			shares := SplitShortage(shortage, len(members))
			for i, m := range members {
				shortages[m.ID.String()] = shares[i]
			}
		}
	}

	for i := range members {
		m := &members[i]
		m.Approved = true
		if share, ok := shortages[m.ID.String()]; ok {
			m.CashShortage = share
		} else {
			m.CashShortage = decimal.Zero
		}
		if err := qtx.SaveShift(ctx, m); err != nil {
			return ApproveGroupResponse{}, err
		}
	}

	cleared, err := qtx.ApproveSlotExpenses(ctx, date, req.ShiftType)
	if err != nil {
		return ApproveGroupResponse{}, err
	}

	if classification == ClassSurplus && req.AddSurplusToRegister {
		rec.CashActual = rec.CashActual.Add(difference)
		rec.Discrepancy = rec.CashActual.Add(rec.GcashActual).Sub(rec.TotalExpected())
		if err := qreg.Save(ctx, rec); err != nil {
			return ApproveGroupResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return ApproveGroupResponse{}, err
	}

	s.logger.Info("handover group approved",
		zap.String("request_id", rid),
		zap.String("date", req.Date),
		zap.String("shift_type", req.ShiftType),
		zap.Int("shifts", len(members)),
		zap.String("difference", difference.String()),
		zap.String("classification", classification),
	)
	return ApproveGroupResponse{
		Date:            req.Date,
		ShiftType:       req.ShiftType,
		ShiftsApproved:  len(members),
		ExpensesCleared: cleared,
		Difference:      difference,
		Classification:  classification,
		Shortages:       shortages,
	}, nil
}

// RejectShift clears the submitted amounts so the employee can hand the
// drawer over again. The shift stays closed and unapproved.
func (s *service) RejectShift(ctx context.Context, shiftID string) (RejectShiftResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RejectShiftResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindShiftByID(ctx, shiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RejectShiftResponse{}, shifterrors.ErrShiftNotFound
		}
		return RejectShiftResponse{}, err
	}
	if row.Approved {
		return RejectShiftResponse{}, reconcileerrors.ErrAlreadyApproved
	}

	row.CashAmount = nil
	row.GcashAmount = nil
	row.CashDifference = nil
	if err := qtx.SaveShift(ctx, row); err != nil {
		return RejectShiftResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return RejectShiftResponse{}, err
	}

	s.logger.Info("handover rejected", zap.String("shift_id", shiftID))
	return RejectShiftResponse{ShiftID: shiftID, Status: row.Status}, nil
}

func (s *service) ApproveExpense(ctx context.Context, id string) error {
	return s.expenses.ApproveExpense(ctx, id)
}

// RejectExpense removes the expense entirely; the register aggregates are
// rolled back by the expense service.
func (s *service) RejectExpense(ctx context.Context, id string) error {
	return s.expenses.RemoveExpense(ctx, id)
}
