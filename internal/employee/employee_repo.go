package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindAll(ctx context.Context, activeOnly bool) ([]Employee, error)
	Update(ctx context.Context, e *Employee) error
	CountOpenShifts(ctx context.Context, employeeID string) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&e).Error
	return &e, err
}

func (r *repository) FindAll(ctx context.Context, activeOnly bool) ([]Employee, error) {
	var rows []Employee
	q := r.db.WithContext(ctx).Order("full_name ASC")
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	err := q.Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) CountOpenShifts(ctx context.Context, employeeID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("shifts").
		Where("employee_id = ?", employeeID).
		Where("status = ?", "open").
		Count(&count).Error
	return count, err
}
