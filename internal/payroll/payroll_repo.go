package payroll

import (
	"context"
	"database/sql"
	"time"

	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/bonus"
	"github.com/gamerspanglao-sys/game-time-keeper-sub002/internal/shift"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindClosedShifts(ctx context.Context, from, to time.Time, employeeID string) ([]shift.Shift, error)
	FindBonuses(ctx context.Context, from, to time.Time, employeeID string) ([]bonus.Bonus, error)
	MarkPaid(ctx context.Context, employeeID string, from, to time.Time, amount decimal.Decimal, paidAt time.Time) (int64, error)
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

func (r *gormRepository) FindClosedShifts(ctx context.Context, from, to time.Time, employeeID string) ([]shift.Shift, error) {
	q := r.db.WithContext(ctx).
		Preload("Employee").
		Where("status = ?", shift.StatusClosed).
		Where("shift_date BETWEEN ? AND ?", from, to)
	if employeeID != "" {
		q = q.Where("employee_id = ?", employeeID)
	}

	var out []shift.Shift
	err := q.Order("shift_date ASC, started_at ASC").Find(&out).Error
	return out, err
}

func (r *gormRepository) FindBonuses(ctx context.Context, from, to time.Time, employeeID string) ([]bonus.Bonus, error) {
	q := r.db.WithContext(ctx).
		Joins("JOIN shifts ON shifts.id = bonuses.shift_id").
		Where("shifts.status = ?", shift.StatusClosed).
		Where("shifts.shift_date BETWEEN ? AND ?", from, to)
	if employeeID != "" {
		q = q.Where("shifts.employee_id = ?", employeeID)
	}

	var out []bonus.Bonus
	err := q.Find(&out).Error
	return out, err
}

func (r *gormRepository) MarkPaid(ctx context.Context, employeeID string, from, to time.Time, amount decimal.Decimal, paidAt time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&shift.Shift{}).
		Where("employee_id = ? AND status = ?", employeeID, shift.StatusClosed).
		Where("shift_date BETWEEN ? AND ?", from, to).
		Updates(map[string]any{
			"salary_paid":        true,
			"salary_paid_amount": amount,
			"salary_paid_at":     paidAt,
		})
	return res.RowsAffected, res.Error
}
