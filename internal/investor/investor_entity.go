package investor

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	KindReturnable    = "returnable"
	KindNonReturnable = "non_returnable"
)

// Contribution is one investor money-in entry. Returnable entries are owed
// back; non-returnable ones are sunk into the business.
type Contribution struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	InvestorName string    `gorm:"column:investor_name;type:varchar(255);not null;index"`

	Kind     string `gorm:"column:kind;type:varchar(20);not null"`
	Category string `gorm:"column:category;type:varchar(100);not null"`

	Amount           decimal.Decimal `gorm:"column:amount;type:decimal(12,2);not null"`
	ContributionDate time.Time       `gorm:"column:contribution_date;type:date;not null;index"`
	Description      *string         `gorm:"column:description;type:text"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Contribution) TableName() string {
	return "investor_contributions"
}

func ValidKind(k string) bool {
	return k == KindReturnable || k == KindNonReturnable
}
