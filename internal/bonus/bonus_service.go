package bonus

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	bonuserrors "github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/bonus/errors"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/events"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/messaging/kafka"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=bonus_service.go -destination=mock/bonus_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateBonusRequest) (BonusResponse, error)
	ListByShift(ctx context.Context, shiftID string) ([]BonusResponse, error)
	ListInRange(ctx context.Context, from, to string) ([]BonusResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("bonus.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("bonus.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateBonusRequest) (BonusResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if !ValidType(req.BonusType) {
		return BonusResponse{}, bonuserrors.ErrInvalidBonusType
	}
	shiftID, err := uuid.Parse(req.ShiftID)
	if err != nil {
		return BonusResponse{}, bonuserrors.ErrShiftNotFound
	}
	qty := req.Quantity
	if qty <= 0 {
		qty = 1
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return BonusResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	ref, err := qtx.FindShiftRef(ctx, shiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BonusResponse{}, bonuserrors.ErrShiftNotFound
		}
		return BonusResponse{}, err
	}
	if ref.Status == "archived" {
		return BonusResponse{}, bonuserrors.ErrShiftArchived
	}
	if ref.SalaryPaid {
		return BonusResponse{}, bonuserrors.ErrShiftSettled
	}

	now := time.Now()
	row := &Bonus{
		ID:         uuid.New(),
		ShiftID:    shiftID,
		EmployeeID: ref.EmployeeID,
		BonusType:  req.BonusType,
		Quantity:   qty,
		Amount:     req.Amount,
		Comment:    req.Comment,
	}
	if err := qtx.Create(ctx, row); err != nil {
		return BonusResponse{}, err
	}

	if s.outbox != nil {
		body, err := json.Marshal(events.BonusAddedEvent{
			EventType:  "bonus.added",
			BonusID:    row.ID.String(),
			ShiftID:    row.ShiftID.String(),
			EmployeeID: row.EmployeeID.String(),
			BonusType:  row.BonusType,
			Quantity:   row.Quantity,
			Amount:     row.Amount,
			OccurredAt: now.UTC(),
		})
		if err != nil {
			return BonusResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.New().String(),
			RequestID:     rid,
			AggregateType: "bonus",
			AggregateID:   row.ID.String(),
			EventType:     "bonus.added",
			Topic:         events.BonusTopic,
			Payload:       body,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			return BonusResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return BonusResponse{}, err
	}

	s.logger.Info("bonus added",
		zap.String("request_id", rid),
		zap.String("shift_id", row.ShiftID.String()),
		zap.String("bonus_type", row.BonusType),
		zap.String("amount", row.Amount.String()),
	)
	return mapToResponse(*row), nil
}

func (s *service) ListByShift(ctx context.Context, shiftID string) ([]BonusResponse, error) {
	id, err := uuid.Parse(shiftID)
	if err != nil {
		return nil, bonuserrors.ErrShiftNotFound
	}
	rows, err := s.repo.FindByShift(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapAll(rows), nil
}

func (s *service) ListInRange(ctx context.Context, from, to string) ([]BonusResponse, error) {
	start, err := time.Parse("2006-01-02", from)
	if err != nil {
		return nil, errors.New("invalid from date, expected YYYY-MM-DD")
	}
	end, err := time.Parse("2006-01-02", to)
	if err != nil {
		return nil, errors.New("invalid to date, expected YYYY-MM-DD")
	}
	rows, err := s.repo.FindInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return mapAll(rows), nil
}

// Delete removes a bonus unless the parent shift has already been settled.
func (s *service) Delete(ctx context.Context, id string) error {
	bonusID, err := uuid.Parse(id)
	if err != nil {
		return bonuserrors.ErrBonusNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, bonusID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return bonuserrors.ErrBonusNotFound
		}
		return err
	}

	ref, err := qtx.FindShiftRef(ctx, row.ShiftID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if ref != nil && ref.SalaryPaid {
		return bonuserrors.ErrShiftSettled
	}

	if err := qtx.Delete(ctx, bonusID); err != nil {
		return err
	}
	return tx.Commit()
}

func mapAll(rows []Bonus) []BonusResponse {
	resp := make([]BonusResponse, len(rows))
	for i, r := range rows {
		resp[i] = mapToResponse(r)
	}
	return resp
}

func mapToResponse(b Bonus) BonusResponse {
	return BonusResponse{
		ID:         b.ID.String(),
		ShiftID:    b.ShiftID.String(),
		EmployeeID: b.EmployeeID.String(),
		BonusType:  b.BonusType,
		Quantity:   b.Quantity,
		Amount:     b.Amount,
		Comment:    b.Comment,
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
	}
}
