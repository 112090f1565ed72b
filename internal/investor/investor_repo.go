package investor

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, c *Contribution) error
	Save(ctx context.Context, c *Contribution) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Contribution, error)
	FindAll(ctx context.Context, q ListContributionsQuery) ([]Contribution, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, c *Contribution) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *gormRepository) Save(ctx context.Context, c *Contribution) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *gormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Contribution{}, "id = ?", id).Error
}

func (r *gormRepository) FindByID(ctx context.Context, id string) (*Contribution, error) {
	var c Contribution
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *gormRepository) FindAll(ctx context.Context, q ListContributionsQuery) ([]Contribution, error) {
	tx := r.db.WithContext(ctx).Model(&Contribution{})
	if q.Kind != "" {
		tx = tx.Where("kind = ?", q.Kind)
	}
	if q.From != "" {
		if from, err := time.Parse("2006-01-02", q.From); err == nil {
			tx = tx.Where("contribution_date >= ?", from)
		}
	}
	if q.To != "" {
		if to, err := time.Parse("2006-01-02", q.To); err == nil {
			tx = tx.Where("contribution_date <= ?", to)
		}
	}

	var out []Contribution
	err := tx.Order("contribution_date DESC, created_at DESC").Find(&out).Error
	return out, err
}
