package pos

import (
	"context"
	"database/sql"
	"errors"
	"time"

	poserrors "github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/pos/errors"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/register"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/shared/contextutil"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/shift"

	"go.uber.org/zap"
)

//go:generate mockgen -source=pos_service.go -destination=mock/pos_service_mock.go -package=mock
type Service interface {
	GetTotals(ctx context.Context, date, shiftType string) (SalesTotals, error)
	SyncExpected(ctx context.Context, req SyncExpectedRequest) (SyncExpectedResponse, error)
}

type service struct {
	db        *sql.DB
	sales     SalesAPI
	registers register.Repository
	logger    *zap.Logger
}

func NewService(db *sql.DB, sales SalesAPI, registers register.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("pos.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("pos.service")
	}
	return &service{db: db, sales: sales, registers: registers, logger: l}
}

func validShiftType(t string) bool {
	return t == shift.TypeDay || t == shift.TypeNight
}

func (s *service) GetTotals(ctx context.Context, date, shiftType string) (SalesTotals, error) {
	if !validShiftType(shiftType) {
		return SalesTotals{}, poserrors.ErrInvalidShiftType
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return SalesTotals{}, errors.New("invalid date, expected YYYY-MM-DD")
	}

	from, to := SlotWindow(day, shiftType)
	receipts, err := s.sales.FetchReceipts(ctx, from, to)
	if err != nil {
		s.logger.Warn("sales api fetch failed", zap.Error(err))
		return SalesTotals{}, poserrors.ErrSalesAPIUnavailable
	}
	return SumReceipts(receipts), nil
}

// SyncExpected pulls the sales window for a register slot and overwrites
// the slot's expected cash/GCash figures. The register row is created when
// absent. Nothing else depends on this call succeeding; shifts close and
// reconcile fine against stale or zero expected figures.
func (s *service) SyncExpected(ctx context.Context, req SyncExpectedRequest) (SyncExpectedResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if !validShiftType(req.ShiftType) {
		return SyncExpectedResponse{}, poserrors.ErrInvalidShiftType
	}
	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return SyncExpectedResponse{}, errors.New("invalid date, expected YYYY-MM-DD")
	}

	from, to := SlotWindow(day, req.ShiftType)
	receipts, err := s.sales.FetchReceipts(ctx, from, to)
	if err != nil {
		s.logger.Warn("sales api fetch failed",
			zap.String("request_id", rid),
			zap.String("date", req.Date),
			zap.String("shift_type", req.ShiftType),
			zap.Error(err),
		)
		return SyncExpectedResponse{}, poserrors.ErrSalesAPIUnavailable
	}
	totals := SumReceipts(receipts)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SyncExpectedResponse{}, err
	}
	defer tx.Rollback()

	qreg := s.registers.WithTx(tx)
	rec, err := register.FindOrCreate(ctx, qreg, day, req.ShiftType)
	if err != nil {
		return SyncExpectedResponse{}, err
	}

	rec.CashExpected = totals.Cash
	rec.GcashExpected = totals.Gcash
	rec.Discrepancy = rec.CashActual.Add(rec.GcashActual).Sub(rec.TotalExpected())
	if err := qreg.Save(ctx, rec); err != nil {
		return SyncExpectedResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return SyncExpectedResponse{}, err
	}

	s.logger.Info("expected sales synced",
		zap.String("request_id", rid),
		zap.String("date", req.Date),
		zap.String("shift_type", req.ShiftType),
		zap.Int("receipts", totals.Receipts),
		zap.String("cash_expected", totals.Cash.String()),
		zap.String("gcash_expected", totals.Gcash.String()),
	)
	return SyncExpectedResponse{
		Date:          req.Date,
		ShiftType:     req.ShiftType,
		CashExpected:  totals.Cash,
		GcashExpected: totals.Gcash,
		Receipts:      totals.Receipts,
	}, nil
}
