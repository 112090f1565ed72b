package investor

import (
	"context"
	"errors"
	"time"

	investorerrors "github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/investor/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=investor_service.go -destination=mock/investor_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateContributionRequest) (ContributionResponse, error)
	Update(ctx context.Context, id string, req UpdateContributionRequest) (ContributionResponse, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (ContributionResponse, error)
	GetAll(ctx context.Context, q ListContributionsQuery) ([]ContributionResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("investor.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("investor.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateContributionRequest) (ContributionResponse, error) {
	if !ValidKind(req.Kind) {
		return ContributionResponse{}, investorerrors.ErrInvalidKind
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return ContributionResponse{}, errors.New("invalid date, expected YYYY-MM-DD")
	}

	row := &Contribution{
		ID:               uuid.New(),
		InvestorName:     req.InvestorName,
		Kind:             req.Kind,
		Category:         req.Category,
		Amount:           req.Amount,
		ContributionDate: date,
		Description:      req.Description,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		return ContributionResponse{}, err
	}

	s.logger.Info("contribution recorded",
		zap.String("investor", row.InvestorName),
		zap.String("kind", row.Kind),
		zap.String("amount", row.Amount.String()),
	)
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateContributionRequest) (ContributionResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ContributionResponse{}, investorerrors.ErrContributionNotFound
		}
		return ContributionResponse{}, err
	}

	if req.InvestorName != "" {
		row.InvestorName = req.InvestorName
	}
	if req.Kind != "" {
		if !ValidKind(req.Kind) {
			return ContributionResponse{}, investorerrors.ErrInvalidKind
		}
		row.Kind = req.Kind
	}
	if req.Category != "" {
		row.Category = req.Category
	}
	if req.Amount != nil {
		row.Amount = *req.Amount
	}
	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return ContributionResponse{}, errors.New("invalid date, expected YYYY-MM-DD")
		}
		row.ContributionDate = date
	}
	if req.Description != nil {
		row.Description = req.Description
	}

	if err := s.repo.Save(ctx, row); err != nil {
		return ContributionResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return investorerrors.ErrContributionNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) GetByID(ctx context.Context, id string) (ContributionResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ContributionResponse{}, investorerrors.ErrContributionNotFound
		}
		return ContributionResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, q ListContributionsQuery) ([]ContributionResponse, error) {
	rows, err := s.repo.FindAll(ctx, q)
	if err != nil {
		return nil, err
	}
	resp := make([]ContributionResponse, len(rows))
	for i, r := range rows {
		resp[i] = mapToResponse(r)
	}
	return resp, nil
}

func mapToResponse(c Contribution) ContributionResponse {
	return ContributionResponse{
		ID:           c.ID.String(),
		InvestorName: c.InvestorName,
		Kind:         c.Kind,
		Category:     c.Category,
		Amount:       c.Amount,
		Date:         c.ContributionDate.Format("2006-01-02"),
		Description:  c.Description,
	}
}
