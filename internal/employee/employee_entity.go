package employee

import (
	"time"

	"github.com/google/uuid"
)

// Employee is lounge staff. Rows are never hard-deleted while shifts
// reference them; deactivation flips Active instead.
type Employee struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName  string    `gorm:"column:full_name;type:varchar(120);not null;uniqueIndex"`
	Position  string    `gorm:"column:position;type:varchar(60)"`
	Active    bool      `gorm:"column:active;not null;default:true;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}
