package tabletimer

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusRunning = "running"
	StatusStopped = "stopped"
)

// Timer bills one table session: amount is the hourly rate times the
// elapsed hours, both rounded to two decimals when the timer stops.
type Timer struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TableNumber int       `gorm:"column:table_number;not null;index"`
	Status      string    `gorm:"column:status;type:varchar(10);not null;default:'running';index"`

	HourlyRate decimal.Decimal `gorm:"column:hourly_rate;type:decimal(12,2);not null"`

	StartedAt time.Time  `gorm:"column:started_at;not null"`
	EndedAt   *time.Time `gorm:"column:ended_at"`

	Hours  float64         `gorm:"column:hours;not null;default:0"`
	Amount decimal.Decimal `gorm:"column:amount;type:decimal(12,2);not null;default:0"`

	StartedBy *uuid.UUID `gorm:"column:started_by;type:uuid"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Timer) TableName() string {
	return "timers"
}
