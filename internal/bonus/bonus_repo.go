package bonus

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, b *Bonus) error
	FindByID(ctx context.Context, id uuid.UUID) (*Bonus, error)
	FindByShift(ctx context.Context, shiftID uuid.UUID) ([]Bonus, error)
	FindInRange(ctx context.Context, from, to time.Time) ([]Bonus, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindShiftRef(ctx context.Context, shiftID uuid.UUID) (*ShiftRef, error)
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

func (r *gormRepository) Create(ctx context.Context, b *Bonus) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *gormRepository) FindByID(ctx context.Context, id uuid.UUID) (*Bonus, error) {
	var b Bonus
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *gormRepository) FindByShift(ctx context.Context, shiftID uuid.UUID) ([]Bonus, error) {
	var out []Bonus
	err := r.db.WithContext(ctx).
		Where("shift_id = ?", shiftID).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *gormRepository) FindInRange(ctx context.Context, from, to time.Time) ([]Bonus, error) {
	var out []Bonus
	err := r.db.WithContext(ctx).
		Joins("JOIN shifts ON shifts.id = bonuses.shift_id").
		Where("shifts.shift_date BETWEEN ? AND ?", from, to).
		Order("bonuses.created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *gormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Bonus{}, "id = ?", id).Error
}

func (r *gormRepository) FindShiftRef(ctx context.Context, shiftID uuid.UUID) (*ShiftRef, error) {
	var ref ShiftRef
	if err := r.db.WithContext(ctx).First(&ref, "id = ?", shiftID).Error; err != nil {
		return nil, err
	}
	return &ref, nil
}
