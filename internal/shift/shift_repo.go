package shift

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=shift_repo.go -destination=mock/shift_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	Create(ctx context.Context, s *Shift) error
	Save(ctx context.Context, s *Shift) error
	FindByID(ctx context.Context, id string) (*Shift, error)
	FindOpenByEmployee(ctx context.Context, employeeID string) (*Shift, error)
	FindAll(ctx context.Context, q ListShiftsQuery) ([]Shift, error)
	FindIDsInRange(ctx context.Context, from, to time.Time) ([]string, error)

	DetachExpenses(ctx context.Context, shiftIDs []string) (int64, error)
	DeleteBonuses(ctx context.Context, shiftIDs []string) (int64, error)
	ArchiveByIDs(ctx context.Context, shiftIDs []string) (int64, error)
	DeleteByIDs(ctx context.Context, shiftIDs []string) (int64, error)
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

func (r *repository) Create(ctx context.Context, s *Shift) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) Save(ctx context.Context, s *Shift) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Shift, error) {
	var s Shift
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("id = ?", id).
		First(&s).Error
	return &s, err
}

func (r *repository) FindOpenByEmployee(ctx context.Context, employeeID string) (*Shift, error) {
	var s Shift
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("status = ?", StatusOpen).
		First(&s).Error
	return &s, err
}

func (r *repository) FindAll(ctx context.Context, q ListShiftsQuery) ([]Shift, error) {
	db := r.db.WithContext(ctx).Preload("Employee")
	if q.From != "" {
		db = db.Where("shift_date >= ?", q.From)
	}
	if q.To != "" {
		db = db.Where("shift_date <= ?", q.To)
	}
	if q.Status != "" {
		db = db.Where("status = ?", q.Status)
	}
	if q.EmployeeID != "" {
		db = db.Where("employee_id = ?", q.EmployeeID)
	}

	var rows []Shift
	err := db.Order("shift_date DESC, started_at DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindIDsInRange(ctx context.Context, from, to time.Time) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&Shift{}).
		Where("shift_date BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Pluck("id::text", &ids).Error
	return ids, err
}

func (r *repository) DetachExpenses(ctx context.Context, shiftIDs []string) (int64, error) {
	if len(shiftIDs) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Table("cash_expenses").
		Where("shift_id IN ?", shiftIDs).
		Update("shift_id", nil)
	return res.RowsAffected, res.Error
}

func (r *repository) DeleteBonuses(ctx context.Context, shiftIDs []string) (int64, error) {
	if len(shiftIDs) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Exec("DELETE FROM bonuses WHERE shift_id IN ?", shiftIDs)
	return res.RowsAffected, res.Error
}

func (r *repository) ArchiveByIDs(ctx context.Context, shiftIDs []string) (int64, error) {
	if len(shiftIDs) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Model(&Shift{}).
		Where("id IN ?", shiftIDs).
		Update("status", StatusArchived)
	return res.RowsAffected, res.Error
}

func (r *repository) DeleteByIDs(ctx context.Context, shiftIDs []string) (int64, error) {
	if len(shiftIDs) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Where("id IN ?", shiftIDs).
		Delete(&Shift{})
	return res.RowsAffected, res.Error
}
