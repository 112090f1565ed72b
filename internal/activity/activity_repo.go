package activity

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=activity_repo.go -destination=mock/activity_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, e *Entry) error
	ListRecent(ctx context.Context, limit int) ([]Entry, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e *Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) ListRecent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []Entry
	err := r.db.WithContext(ctx).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
