package employee

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	employeeerrors "github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/employee/errors"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const OptionsCacheKey = "employees:options"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, activeOnly bool) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Deactivate(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("full_name", req.FullName),
	)

	row := &Employee{
		ID:       uuid.New(),
		FullName: req.FullName,
		Position: req.Position,
		Active:   true,
	}

	if err := s.repo.Create(ctx, row); err != nil {
		s.logger.Error("create employee failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptions(ctx)
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, activeOnly bool) ([]EmployeeResponse, error) {
	rows, err := s.repo.FindAll(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	resp := make([]EmployeeResponse, len(rows))
	for i, r := range rows {
		resp[i] = mapToResponse(r)
	}
	return resp, nil
}

// GetOptions returns the active staff list for dropdowns. The list is
// cached in redis; singleflight collapses concurrent cache fills.
func (s *service) GetOptions(ctx context.Context) ([]EmployeeResponse, error) {
	if s.rdb != nil {
		if val, err := s.rdb.Get(ctx, OptionsCacheKey).Result(); err == nil {
			var cached []EmployeeResponse
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			}
		}
	}

	v, err, _ := s.sf.Do(OptionsCacheKey, func() (any, error) {
		rows, err := s.repo.FindAll(ctx, true)
		if err != nil {
			return nil, err
		}
		resp := make([]EmployeeResponse, len(rows))
		for i, r := range rows {
			resp[i] = mapToResponse(r)
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(resp); err == nil {
				_ = s.rdb.Set(ctx, OptionsCacheKey, payload, 5*time.Minute).Err()
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]EmployeeResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	row.FullName = req.FullName
	row.Position = req.Position
	if req.Active != nil {
		row.Active = *req.Active
	}

	if err := s.repo.Update(ctx, row); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptions(ctx)
	return mapToResponse(*row), nil
}

// Deactivate soft-disables the employee. A staff member with an open shift
// must close it first so the cash handover is not orphaned.
func (s *service) Deactivate(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	open, err := s.repo.CountOpenShifts(ctx, id)
	if err != nil {
		return err
	}
	if open > 0 {
		return errors.New("employee has an open shift, close it before deactivating")
	}

	row.Active = false
	if err := s.repo.Update(ctx, row); err != nil {
		return mapRepositoryError(err)
	}

	s.invalidateOptions(ctx)
	return nil
}

func (s *service) invalidateOptions(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, OptionsCacheKey).Err(); err != nil {
		s.logger.Warn("invalidate employee options cache failed", zap.Error(err))
	}
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:       e.ID.String(),
		FullName: e.FullName,
		Position: e.Position,
		Active:   e.Active,
	}
}
