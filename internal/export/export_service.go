package export

import (
	"context"
	"errors"
	"time"

	exporterrors "github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/export/errors"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/payroll"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/register"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/shared/contextutil"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=export_service.go -destination=mock/export_service_mock.go -package=mock
type Service interface {
	BuildWorkbook(ctx context.Context, from, to string) (*excelize.File, error)
	PushToSheet(ctx context.Context, req PushRequest) (PushResponse, error)
}

type service struct {
	registers register.Repository
	payrolls  payroll.Repository
	pusher    SheetsPusher
	logger    *zap.Logger
}

func NewService(
	registers register.Repository,
	payrolls payroll.Repository,
	pusher SheetsPusher,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("export.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("export.service")
	}
	return &service{
		registers: registers,
		payrolls:  payrolls,
		pusher:    pusher,
		logger:    l,
	}
}

func (s *service) gather(ctx context.Context, from, to string) ([]register.CashRegisterRecord, []payroll.EmployeePayroll, error) {
	start, err := time.Parse("2006-01-02", from)
	if err != nil {
		return nil, nil, errors.New("invalid from date, expected YYYY-MM-DD")
	}
	end, err := time.Parse("2006-01-02", to)
	if err != nil {
		return nil, nil, errors.New("invalid to date, expected YYYY-MM-DD")
	}

	records, err := s.registers.FindInRange(ctx, start, end)
	if err != nil {
		return nil, nil, err
	}
	shifts, err := s.payrolls.FindClosedShifts(ctx, start, end, "")
	if err != nil {
		return nil, nil, err
	}
	bonuses, err := s.payrolls.FindBonuses(ctx, start, end, "")
	if err != nil {
		return nil, nil, err
	}

	return records, payroll.BuildSummary(shifts, bonuses, payroll.SortByName), nil
}

func (s *service) BuildWorkbook(ctx context.Context, from, to string) (*excelize.File, error) {
	records, rows, err := s.gather(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return BuildWorkbook(records, rows)
}

// PushToSheet appends the same ledger and payroll rows to a Google Sheet.
// A push failure reaches the caller but has no effect on any ledger state.
func (s *service) PushToSheet(ctx context.Context, req PushRequest) (PushResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if s.pusher == nil {
		return PushResponse{}, exporterrors.ErrSheetsNotConfigured
	}

	records, rows, err := s.gather(ctx, req.From, req.To)
	if err != nil {
		return PushResponse{}, err
	}

	ledger := LedgerRows(records)
	pay := PayrollRows(rows)

	if err := s.pusher.Append(ctx, req.SpreadsheetID, LedgerSheet+"!A1", ledger); err != nil {
		s.logger.Warn("sheet push failed",
			zap.String("request_id", rid),
			zap.String("sheet", LedgerSheet),
			zap.Error(err),
		)
		return PushResponse{}, exporterrors.ErrSheetsPushFailed
	}
	if err := s.pusher.Append(ctx, req.SpreadsheetID, PayrollSheet+"!A1", pay); err != nil {
		s.logger.Warn("sheet push failed",
			zap.String("request_id", rid),
			zap.String("sheet", PayrollSheet),
			zap.Error(err),
		)
		return PushResponse{}, exporterrors.ErrSheetsPushFailed
	}

	s.logger.Info("rows pushed to sheet",
		zap.String("request_id", rid),
		zap.String("spreadsheet_id", req.SpreadsheetID),
		zap.Int("ledger_rows", len(ledger)-1),
		zap.Int("payroll_rows", len(pay)-1),
	)
	return PushResponse{
		SpreadsheetID: req.SpreadsheetID,
		LedgerRows:    len(ledger) - 1,
		PayrollRows:   len(pay) - 1,
	}, nil
}
