package auth

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, a *Account) error
	FindByUsername(ctx context.Context, username string) (*Account, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Account) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindByUsername(ctx context.Context, username string) (*Account, error) {
	var a Account
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Where("active = ?", true).
		First(&a).Error
	return &a, err
}
