package bonus

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TypeSoldGoods = "sold_goods"
	TypeVIPRoom   = "vip_room"
	TypeHookah    = "hookah"
	TypeOther     = "other"
)

// Bonus is a discretionary per-shift earnings addition tied to a sales or
// service event. Rows are locked once the parent shift's salary is paid.
type Bonus struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ShiftID    uuid.UUID `gorm:"column:shift_id;type:uuid;not null;index"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;not null;index"`

	BonusType string          `gorm:"column:bonus_type;type:varchar(20);not null"`
	Quantity  int             `gorm:"column:quantity;not null;default:1"`
	Amount    decimal.Decimal `gorm:"column:amount;type:decimal(12,2);not null"`
	Comment   *string         `gorm:"column:comment;type:text"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Bonus) TableName() string {
	return "bonuses"
}

func ValidType(t string) bool {
	switch t {
	case TypeSoldGoods, TypeVIPRoom, TypeHookah, TypeOther:
		return true
	}
	return false
}

// ShiftRef is the slice of the parent shift the bonus rules need.
type ShiftRef struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"column:employee_id"`
	Status     string    `gorm:"column:status"`
	SalaryPaid bool      `gorm:"column:salary_paid"`
}

func (ShiftRef) TableName() string {
	return "shifts"
}
