package tabletimer

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, t *Timer) error
	Save(ctx context.Context, t *Timer) error
	FindByID(ctx context.Context, id string) (*Timer, error)
	FindRunningByTable(ctx context.Context, tableNumber int) (*Timer, error)
	FindAll(ctx context.Context, q ListTimersQuery) ([]Timer, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{NewDB: true, Context: r.db.Statement.Context})
	session.Statement.ConnPool = tx
	return &gormRepository{db: session}
}

func (r *gormRepository) Create(ctx context.Context, t *Timer) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *gormRepository) Save(ctx context.Context, t *Timer) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *gormRepository) FindByID(ctx context.Context, id string) (*Timer, error) {
	var t Timer
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *gormRepository) FindRunningByTable(ctx context.Context, tableNumber int) (*Timer, error) {
	var t Timer
	err := r.db.WithContext(ctx).
		Where("table_number = ? AND status = ?", tableNumber, StatusRunning).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *gormRepository) FindAll(ctx context.Context, q ListTimersQuery) ([]Timer, error) {
	tx := r.db.WithContext(ctx).Model(&Timer{})
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.From != "" {
		if from, err := time.Parse("2006-01-02", q.From); err == nil {
			tx = tx.Where("started_at >= ?", from)
		}
	}
	if q.To != "" {
		if to, err := time.Parse("2006-01-02", q.To); err == nil {
			tx = tx.Where("started_at < ?", to.AddDate(0, 0, 1))
		}
	}

	var out []Timer
	err := tx.Order("started_at DESC").Find(&out).Error
	return out, err
}
