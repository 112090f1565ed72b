package tabletimer

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	tabletimererrors "github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/tabletimer/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=tabletimer_service.go -destination=mock/tabletimer_service_mock.go -package=mock
type Service interface {
	Start(ctx context.Context, req StartTimerRequest, startedBy string) (TimerResponse, error)
	Stop(ctx context.Context, id string) (TimerResponse, error)
	GetByID(ctx context.Context, id string) (TimerResponse, error)
	GetAll(ctx context.Context, q ListTimersQuery) ([]TimerResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("tabletimer.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("tabletimer.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// BillableHours converts an elapsed duration to hours rounded to two
// decimals.
func BillableHours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}

// SessionAmount is the hourly rate times the billed hours, rounded to two
// decimals.
func SessionAmount(rate decimal.Decimal, hours float64) decimal.Decimal {
	return rate.Mul(decimal.NewFromFloat(hours)).Round(2)
}

func (s *service) Start(ctx context.Context, req StartTimerRequest, startedBy string) (TimerResponse, error) {
	if !req.HourlyRate.IsPositive() {
		return TimerResponse{}, tabletimererrors.ErrInvalidRate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TimerResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	existing, err := qtx.FindRunningByTable(ctx, req.TableNumber)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return TimerResponse{}, err
	}
	if existing != nil {
		return TimerResponse{}, tabletimererrors.ErrTimerAlreadyRunning
	}

	row := &Timer{
		ID:          uuid.New(),
		TableNumber: req.TableNumber,
		Status:      StatusRunning,
		HourlyRate:  req.HourlyRate,
		StartedAt:   time.Now(),
	}
	if startedBy != "" {
		if id, err := uuid.Parse(startedBy); err == nil {
			row.StartedBy = &id
		}
	}

	if err := qtx.Create(ctx, row); err != nil {
		return TimerResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return TimerResponse{}, err
	}

	s.logger.Info("table timer started",
		zap.Int("table_number", row.TableNumber),
		zap.String("timer_id", row.ID.String()),
	)
	return mapToResponse(*row), nil
}

func (s *service) Stop(ctx context.Context, id string) (TimerResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TimerResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TimerResponse{}, tabletimererrors.ErrTimerNotFound
		}
		return TimerResponse{}, err
	}
	if row.Status != StatusRunning {
		return TimerResponse{}, tabletimererrors.ErrTimerNotRunning
	}

	now := time.Now()
	row.Status = StatusStopped
	row.EndedAt = &now
	row.Hours = BillableHours(now.Sub(row.StartedAt))
	row.Amount = SessionAmount(row.HourlyRate, row.Hours)

	if err := qtx.Save(ctx, row); err != nil {
		return TimerResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return TimerResponse{}, err
	}

	s.logger.Info("table timer stopped",
		zap.Int("table_number", row.TableNumber),
		zap.Float64("hours", row.Hours),
		zap.String("amount", row.Amount.String()),
	)
	return mapToResponse(*row), nil
}

func (s *service) GetByID(ctx context.Context, id string) (TimerResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TimerResponse{}, tabletimererrors.ErrTimerNotFound
		}
		return TimerResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, q ListTimersQuery) ([]TimerResponse, error) {
	rows, err := s.repo.FindAll(ctx, q)
	if err != nil {
		return nil, err
	}
	resp := make([]TimerResponse, len(rows))
	for i, r := range rows {
		resp[i] = mapToResponse(r)
	}
	return resp, nil
}

func mapToResponse(t Timer) TimerResponse {
	resp := TimerResponse{
		ID:          t.ID.String(),
		TableNumber: t.TableNumber,
		Status:      t.Status,
		HourlyRate:  t.HourlyRate,
		StartedAt:   t.StartedAt.Format(time.RFC3339),
		Hours:       t.Hours,
		Amount:      t.Amount,
	}
	if t.EndedAt != nil {
		v := t.EndedAt.Format(time.RFC3339)
		resp.EndedAt = &v
	}
	return resp
}
