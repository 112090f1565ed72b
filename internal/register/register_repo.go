package register

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=register_repo.go -destination=mock/register_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	Create(ctx context.Context, rec *CashRegisterRecord) error
	Save(ctx context.Context, rec *CashRegisterRecord) error
	FindByDateAndShift(ctx context.Context, date time.Time, shiftType string) (*CashRegisterRecord, error)
	FindByID(ctx context.Context, id string) (*CashRegisterRecord, error)
	FindInRange(ctx context.Context, from, to time.Time) ([]CashRegisterRecord, error)

	CreateExpense(ctx context.Context, e *CashExpense) error
	SaveExpense(ctx context.Context, e *CashExpense) error
	DeleteExpense(ctx context.Context, id string) error
	FindExpenseByID(ctx context.Context, id string) (*CashExpense, error)
	FindExpensesByRegister(ctx context.Context, registerID string) ([]CashExpense, error)
	FindExpensesInRange(ctx context.Context, from, to time.Time) ([]CashExpense, error)
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

func (r *repository) Create(ctx context.Context, rec *CashRegisterRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) Save(ctx context.Context, rec *CashRegisterRecord) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *repository) FindByDateAndShift(ctx context.Context, date time.Time, shiftType string) (*CashRegisterRecord, error) {
	var rec CashRegisterRecord
	err := r.db.WithContext(ctx).
		Where("record_date = ?", date.Format("2006-01-02")).
		Where("shift_type = ?", shiftType).
		First(&rec).Error
	return &rec, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*CashRegisterRecord, error) {
	var rec CashRegisterRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	return &rec, err
}

func (r *repository) FindInRange(ctx context.Context, from, to time.Time) ([]CashRegisterRecord, error) {
	var rows []CashRegisterRecord
	err := r.db.WithContext(ctx).
		Where("record_date BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("record_date ASC, shift_type ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) CreateExpense(ctx context.Context, e *CashExpense) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) SaveExpense(ctx context.Context, e *CashExpense) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) DeleteExpense(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&CashExpense{}).Error
}

func (r *repository) FindExpenseByID(ctx context.Context, id string) (*CashExpense, error) {
	var e CashExpense
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&e).Error
	return &e, err
}

func (r *repository) FindExpensesByRegister(ctx context.Context, registerID string) ([]CashExpense, error) {
	var rows []CashExpense
	err := r.db.WithContext(ctx).
		Where("register_id = ?", registerID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindExpensesInRange(ctx context.Context, from, to time.Time) ([]CashExpense, error) {
	var rows []CashExpense
	err := r.db.WithContext(ctx).
		Where("expense_date BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("expense_date ASC").
		Find(&rows).Error
	return rows, err
}
