package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	payrollerrors "github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/payroll/errors"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const summaryCacheTTL = time.Minute

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	GetSummary(ctx context.Context, q SummaryQuery) ([]EmployeePayroll, error)
	MarkPaid(ctx context.Context, req MarkPaidRequest) (MarkPaidResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func summaryCacheKey(q SummaryQuery) string {
	return fmt.Sprintf("payroll:summary:%s:%s:%s:%s", q.From, q.To, q.EmployeeID, q.SortBy)
}

// GetSummary computes the per-employee payroll table for a period. Results
// are cached briefly in redis; singleflight collapses concurrent fills for
// the same period.
func (s *service) GetSummary(ctx context.Context, q SummaryQuery) ([]EmployeePayroll, error) {
	from, err := time.Parse("2006-01-02", q.From)
	if err != nil {
		return nil, errors.New("invalid from date, expected YYYY-MM-DD")
	}
	to, err := time.Parse("2006-01-02", q.To)
	if err != nil {
		return nil, errors.New("invalid to date, expected YYYY-MM-DD")
	}

	key := summaryCacheKey(q)
	if s.rdb != nil {
		if val, err := s.rdb.Get(ctx, key).Result(); err == nil {
			var cached []EmployeePayroll
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			}
		}
	}

	v, err, _ := s.sf.Do(key, func() (any, error) {
		shifts, err := s.repo.FindClosedShifts(ctx, from, to, q.EmployeeID)
		if err != nil {
			return nil, err
		}
		bonuses, err := s.repo.FindBonuses(ctx, from, to, q.EmployeeID)
		if err != nil {
			return nil, err
		}
		rows := BuildSummary(shifts, bonuses, q.SortBy)

		if s.rdb != nil {
			if payload, err := json.Marshal(rows); err == nil {
				_ = s.rdb.Set(ctx, key, payload, summaryCacheTTL).Err()
			}
		}
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]EmployeePayroll), nil
}

// MarkPaid stamps every closed shift of the employee in the period with the
// payment amount. Restamping the same amount is a no-op from the ledger's
// point of view; a different amount overwrites the previous stamp, and the
// overwrite is logged since no payment history is kept.
func (s *service) MarkPaid(ctx context.Context, req MarkPaidRequest) (MarkPaidResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if req.Amount.IsNegative() {
		return MarkPaidResponse{}, payrollerrors.ErrInvalidAmount
	}
	from, err := time.Parse("2006-01-02", req.From)
	if err != nil {
		return MarkPaidResponse{}, errors.New("invalid from date, expected YYYY-MM-DD")
	}
	to, err := time.Parse("2006-01-02", req.To)
	if err != nil {
		return MarkPaidResponse{}, errors.New("invalid to date, expected YYYY-MM-DD")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return MarkPaidResponse{}, err
	}
	defer tx.Rollback()

	now := time.Now()
	stamped, err := s.repo.WithTx(tx).MarkPaid(ctx, req.EmployeeID, from, to, req.Amount, now)
	if err != nil {
		return MarkPaidResponse{}, err
	}
	if stamped == 0 {
		return MarkPaidResponse{}, payrollerrors.ErrNoPayableShifts
	}
	if err := tx.Commit(); err != nil {
		return MarkPaidResponse{}, err
	}

	s.invalidateSummaries(ctx)

	s.logger.Info("salary payment stamped",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("amount", req.Amount.String()),
		zap.Int64("shifts_stamped", stamped),
	)
	return MarkPaidResponse{
		EmployeeID:    req.EmployeeID,
		ShiftsStamped: stamped,
		Amount:        req.Amount,
		PaidAt:        now.Format(time.RFC3339),
	}, nil
}

func (s *service) invalidateSummaries(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	iter := s.rdb.Scan(ctx, 0, "payroll:summary:*", 100).Iterator()
	for iter.Next(ctx) {
		_ = s.rdb.Del(ctx, iter.Val()).Err()
	}
}
