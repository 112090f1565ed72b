package activity

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one row of the activity log, projected from domain events by the
// consumer binary. The payload keeps the original flat event object.
type Entry struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Action     string     `gorm:"column:action;type:varchar(60);not null;index"`
	EmployeeID *uuid.UUID `gorm:"column:employee_id;type:uuid;index"`
	ShiftID    *uuid.UUID `gorm:"column:shift_id;type:uuid"`
	Payload    []byte     `gorm:"column:payload;type:jsonb"`
	OccurredAt time.Time  `gorm:"column:occurred_at;not null;index"`
	CreatedAt  time.Time  `gorm:"column:created_at"`
}

func (Entry) TableName() string {
	return "activity_log"
}
