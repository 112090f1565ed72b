package shift

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusOpen     = "open"
	StatusClosed   = "closed"
	StatusArchived = "archived"

	TypeDay   = "day"
	TypeNight = "night"
)

// Shift is one continuous work period for one employee, closed with a cash
// handover. At most one open shift may exist per employee.
type Shift struct {
	ID         uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID    `gorm:"column:employee_id;type:uuid;not null;index"`
	Employee   *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`

	ShiftDate time.Time `gorm:"column:shift_date;type:date;not null;index"`
	ShiftType string    `gorm:"column:shift_type;type:varchar(10);index"`
	Status    string    `gorm:"column:status;type:varchar(20);not null;default:'open';index"`

	StartedAt  time.Time  `gorm:"column:started_at;type:timestamptz;not null"`
	EndedAt    *time.Time `gorm:"column:ended_at;type:timestamptz"`
	TotalHours float64    `gorm:"column:total_hours;not null;default:0"`

	BaseSalary decimal.Decimal `gorm:"column:base_salary;type:decimal(12,2);not null;default:0"`

	// Cash handover, null until close and nulled again on reject.
	CashAmount     *decimal.Decimal `gorm:"column:cash_amount;type:decimal(12,2)"`
	GcashAmount    *decimal.Decimal `gorm:"column:gcash_amount;type:decimal(12,2)"`
	CashDifference *decimal.Decimal `gorm:"column:cash_difference;type:decimal(12,2)"`

	Approved     bool            `gorm:"column:approved;not null;default:false;index"`
	CashShortage decimal.Decimal `gorm:"column:cash_shortage;type:decimal(12,2);not null;default:0"`

	SalaryPaid       bool             `gorm:"column:salary_paid;not null;default:false"`
	SalaryPaidAmount *decimal.Decimal `gorm:"column:salary_paid_amount;type:decimal(12,2)"`
	SalaryPaidAt     *time.Time       `gorm:"column:salary_paid_at;type:timestamptz"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Shift) TableName() string {
	return "shifts"
}

type EmployeeRef struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
