package reconcile

import (
	"context"
	"database/sql"
	"time"

	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/register"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/shift"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindClosedUnapproved(ctx context.Context, from, to time.Time) ([]shift.Shift, error)
	FindGroupShifts(ctx context.Context, date time.Time, shiftType string) ([]shift.Shift, error)
	FindPendingExpenses(ctx context.Context, from, to time.Time) ([]register.CashExpense, error)
	ApproveSlotExpenses(ctx context.Context, date time.Time, shiftType string) (int64, error)
	SaveShift(ctx context.Context, s *shift.Shift) error
	FindShiftByID(ctx context.Context, id string) (*shift.Shift, error)
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

func (r *gormRepository) FindClosedUnapproved(ctx context.Context, from, to time.Time) ([]shift.Shift, error) {
	var out []shift.Shift
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("status = ? AND approved = false", shift.StatusClosed).
		Where("shift_date BETWEEN ? AND ?", from, to).
		Order("shift_date ASC, id ASC").
		Find(&out).Error
	return out, err
}

// Group members are ordered by id so the shortage remainder always lands on
// the same shift no matter who asks.
func (r *gormRepository) FindGroupShifts(ctx context.Context, date time.Time, shiftType string) ([]shift.Shift, error) {
	var out []shift.Shift
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("status = ? AND approved = false", shift.StatusClosed).
		Where("shift_date = ? AND shift_type = ?", date, shiftType).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *gormRepository) FindPendingExpenses(ctx context.Context, from, to time.Time) ([]register.CashExpense, error) {
	var out []register.CashExpense
	err := r.db.WithContext(ctx).
		Where("approved = false").
		Where("expense_date BETWEEN ? AND ?", from, to).
		Order("expense_date ASC, created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *gormRepository) ApproveSlotExpenses(ctx context.Context, date time.Time, shiftType string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&register.CashExpense{}).
		Where("approved = false AND expense_date = ? AND shift_type = ?", date, shiftType).
		Update("approved", true)
	return res.RowsAffected, res.Error
}

func (r *gormRepository) SaveShift(ctx context.Context, s *shift.Shift) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *gormRepository) FindShiftByID(ctx context.Context, id string) (*shift.Shift, error) {
	var s shift.Shift
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
