package shift

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/events"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/messaging/kafka"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/register"
	shifterrors "github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/shift/errors"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=shift_service.go -destination=mock/shift_service_mock.go -package=mock
type Service interface {
	Start(ctx context.Context, req StartShiftRequest) (ShiftResponse, error)
	End(ctx context.Context, id string, req EndShiftRequest) (ShiftResponse, error)
	GetAll(ctx context.Context, q ListShiftsQuery) ([]ShiftResponse, error)
	GetByID(ctx context.Context, id string) (ShiftResponse, error)
	GetOpenByEmployee(ctx context.Context, employeeID string) (ShiftResponse, error)
	Edit(ctx context.Context, id string, req EditShiftRequest) (ShiftResponse, error)
	ResetPeriod(ctx context.Context, req ResetPeriodRequest) (ResetPeriodResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	registers register.Repository
	outbox    kafka.OutboxRepository
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, registers register.Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, registers, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	registers register.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("shift.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("shift.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		registers: registers,
		outbox:    outboxRepo,
		logger:    l,
	}
}

func (s *service) Start(ctx context.Context, req StartShiftRequest) (ShiftResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return ShiftResponse{}, errors.New("invalid employee id")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ShiftResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	existing, err := qtx.FindOpenByEmployee(ctx, req.EmployeeID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return ShiftResponse{}, err
	}
	if err == nil && existing != nil {
		s.logger.Warn("start shift blocked by open shift",
			zap.String("request_id", rid),
			zap.String("employee_id", req.EmployeeID),
			zap.String("open_shift_id", existing.ID.String()),
		)
		return ShiftResponse{}, shifterrors.ErrOpenShiftExists
	}

	now := time.Now()
	row := &Shift{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		ShiftDate:  time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		ShiftType:  TypeForStart(now),
		Status:     StatusOpen,
		StartedAt:  now,
	}

	if err := qtx.Create(ctx, row); err != nil {
		return ShiftResponse{}, err
	}

	if err := s.enqueueEvent(ctx, tx, rid, row.ID.String(), "shift.started", events.ShiftLifecycleTopic,
		events.ShiftStartedEvent{
			EventType:  "shift.started",
			ShiftID:    row.ID.String(),
			EmployeeID: row.EmployeeID.String(),
			ShiftDate:  row.ShiftDate.Format("2006-01-02"),
			OccurredAt: now.UTC(),
		}); err != nil {
		return ShiftResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ShiftResponse{}, err
	}
	return mapToResponse(*row), nil
}

// End closes an open shift: derives hours and shift type from the start
// time, settles the handover against the register row for the shift's
// business date (created lazily when missing, expected reads as zero), and
// records the computed difference. The close itself never waits on the
// notification path; the outbox worker delivers the event afterwards.
func (s *service) End(ctx context.Context, id string, req EndShiftRequest) (ShiftResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if req.CashAmount.IsNegative() || req.GcashAmount.IsNegative() {
		return ShiftResponse{}, shifterrors.ErrNegativeAmount
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ShiftResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	qreg := s.registers.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ShiftResponse{}, shifterrors.ErrShiftNotFound
		}
		return ShiftResponse{}, err
	}
	if row.Status != StatusOpen {
		return ShiftResponse{}, shifterrors.ErrShiftNotOpen
	}

	now := time.Now()
	if !now.After(row.StartedAt) {
		return ShiftResponse{}, shifterrors.ErrEndBeforeStart
	}

	row.TotalHours = RoundHours(now.Sub(row.StartedAt))
	row.ShiftType = TypeForStart(row.StartedAt)
	// The shift row must carry the same date the register row is keyed by,
	// or verification and group approval would look up a different slot.
	row.ShiftDate = BusinessDateForStart(row.StartedAt)

	rec, err := register.FindOrCreate(ctx, qreg, row.ShiftDate, row.ShiftType)
	if err != nil {
		return ShiftResponse{}, err
	}

	submitted := req.CashAmount.Add(req.GcashAmount)
	difference := submitted.Sub(rec.TotalExpected())

	row.Status = StatusClosed
	row.EndedAt = &now
	row.CashAmount = &req.CashAmount
	row.GcashAmount = &req.GcashAmount
	row.CashDifference = &difference

	if err := qtx.Save(ctx, row); err != nil {
		return ShiftResponse{}, err
	}

	rec.CashActual = rec.CashActual.Add(req.CashAmount)
	rec.GcashActual = rec.GcashActual.Add(req.GcashAmount)
	rec.Discrepancy = rec.CashActual.Add(rec.GcashActual).Sub(rec.TotalExpected())
	if err := qreg.Save(ctx, rec); err != nil {
		return ShiftResponse{}, err
	}

	if err := s.enqueueEvent(ctx, tx, rid, row.ID.String(), "shift.closed", events.ShiftLifecycleTopic,
		events.ShiftClosedEvent{
			EventType:      "shift.closed",
			ShiftID:        row.ID.String(),
			EmployeeID:     row.EmployeeID.String(),
			EmployeeName:   employeeName(row),
			ShiftDate:      row.ShiftDate.Format("2006-01-02"),
			ShiftType:      row.ShiftType,
			TotalHours:     row.TotalHours,
			CashAmount:     req.CashAmount,
			GcashAmount:    req.GcashAmount,
			CashDifference: difference,
			OccurredAt:     now.UTC(),
		}); err != nil {
		return ShiftResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ShiftResponse{}, err
	}

	s.logger.Info("shift closed",
		zap.String("request_id", rid),
		zap.String("shift_id", row.ID.String()),
		zap.Float64("total_hours", row.TotalHours),
		zap.String("cash_difference", difference.String()),
	)
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, q ListShiftsQuery) ([]ShiftResponse, error) {
	rows, err := s.repo.FindAll(ctx, q)
	if err != nil {
		return nil, err
	}
	resp := make([]ShiftResponse, len(rows))
	for i, r := range rows {
		resp[i] = mapToResponse(r)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ShiftResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ShiftResponse{}, shifterrors.ErrShiftNotFound
		}
		return ShiftResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) GetOpenByEmployee(ctx context.Context, employeeID string) (ShiftResponse, error) {
	row, err := s.repo.FindOpenByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ShiftResponse{}, shifterrors.ErrShiftNotFound
		}
		return ShiftResponse{}, err
	}
	return mapToResponse(*row), nil
}

// Edit moves the start time or date and adjusts the base salary after the
// fact. Hours and shift type are recomputed when the shift is already
// closed, since both derive from the start time.
func (s *service) Edit(ctx context.Context, id string, req EditShiftRequest) (ShiftResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ShiftResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ShiftResponse{}, shifterrors.ErrShiftNotFound
		}
		return ShiftResponse{}, err
	}

	if req.StartedAt != "" {
		startedAt, err := time.Parse(time.RFC3339, req.StartedAt)
		if err != nil {
			return ShiftResponse{}, errors.New("invalid started_at format, expected RFC3339")
		}
		row.StartedAt = startedAt
		// Follow the cash slot unless the caller pins the date explicitly.
		if req.Date == "" {
			row.ShiftDate = BusinessDateForStart(startedAt)
		}
	}
	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return ShiftResponse{}, errors.New("invalid date format, expected YYYY-MM-DD")
		}
		row.ShiftDate = date
	}
	if req.BaseSalary != nil {
		row.BaseSalary = *req.BaseSalary
	}

	row.ShiftType = TypeForStart(row.StartedAt)
	if row.EndedAt != nil {
		if !row.EndedAt.After(row.StartedAt) {
			return ShiftResponse{}, shifterrors.ErrEndBeforeStart
		}
		row.TotalHours = RoundHours(row.EndedAt.Sub(row.StartedAt))
	}

	if err := qtx.Save(ctx, row); err != nil {
		return ShiftResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return ShiftResponse{}, err
	}
	return mapToResponse(*row), nil
}

// ResetPeriod archives all shifts in range by default; hard delete needs
// the explicit confirmation flag. Bonuses are deleted and expenses are
// detached (shift ref cleared) first so the ledger history survives.
func (s *service) ResetPeriod(ctx context.Context, req ResetPeriodRequest) (ResetPeriodResponse, error) {
	from, err := time.Parse("2006-01-02", req.From)
	if err != nil {
		return ResetPeriodResponse{}, errors.New("invalid from date, expected YYYY-MM-DD")
	}
	to, err := time.Parse("2006-01-02", req.To)
	if err != nil {
		return ResetPeriodResponse{}, errors.New("invalid to date, expected YYYY-MM-DD")
	}
	if from.After(to) {
		return ResetPeriodResponse{}, errors.New("from must be before or equal to")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ResetPeriodResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	ids, err := qtx.FindIDsInRange(ctx, from, to)
	if err != nil {
		return ResetPeriodResponse{}, err
	}

	detached, err := qtx.DetachExpenses(ctx, ids)
	if err != nil {
		return ResetPeriodResponse{}, err
	}
	bonusesDeleted, err := qtx.DeleteBonuses(ctx, ids)
	if err != nil {
		return ResetPeriodResponse{}, err
	}

	var affected int64
	mode := "archived"
	if req.ConfirmDelete {
		mode = "deleted"
		affected, err = qtx.DeleteByIDs(ctx, ids)
	} else {
		affected, err = qtx.ArchiveByIDs(ctx, ids)
	}
	if err != nil {
		return ResetPeriodResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ResetPeriodResponse{}, err
	}

	s.logger.Warn("period reset executed",
		zap.String("from", req.From),
		zap.String("to", req.To),
		zap.String("mode", mode),
		zap.Int64("shifts_affected", affected),
	)
	return ResetPeriodResponse{
		ShiftsAffected:   affected,
		BonusesDeleted:   bonusesDeleted,
		ExpensesDetached: detached,
		Mode:             mode,
	}, nil
}

func (s *service) enqueueEvent(
	ctx context.Context,
	tx *sql.Tx,
	requestID, shiftID, eventType, topic string,
	payload any,
) error {
	if s.outbox == nil {
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     requestID,
		AggregateType: "shift",
		AggregateID:   shiftID,
		EventType:     eventType,
		Topic:         topic,
		Payload:       body,
		Status:        kafka.OutboxStatusPending,
	})
}

func employeeName(s *Shift) string {
	if s.Employee != nil {
		return s.Employee.FullName
	}
	return ""
}

func mapToResponse(s Shift) ShiftResponse {
	resp := ShiftResponse{
		ID:           s.ID.String(),
		EmployeeID:   s.EmployeeID.String(),
		Date:         s.ShiftDate.Format("2006-01-02"),
		ShiftType:    s.ShiftType,
		Status:       s.Status,
		StartedAt:    s.StartedAt.Format(time.RFC3339),
		TotalHours:   s.TotalHours,
		BaseSalary:   s.BaseSalary,
		Approved:     s.Approved,
		CashShortage: s.CashShortage,
		SalaryPaid:   s.SalaryPaid,
	}
	if s.Employee != nil {
		resp.EmployeeName = s.Employee.FullName
	}
	if s.EndedAt != nil {
		v := s.EndedAt.Format(time.RFC3339)
		resp.EndedAt = &v
	}
	resp.CashAmount = s.CashAmount
	resp.GcashAmount = s.GcashAmount
	resp.CashDifference = s.CashDifference
	resp.SalaryPaidAmount = s.SalaryPaidAmount
	if s.SalaryPaidAt != nil {
		v := s.SalaryPaidAt.Format(time.RFC3339)
		resp.SalaryPaidAt = &v
	}
	return resp
}
