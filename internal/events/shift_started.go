package events

import "time"

const ShiftLifecycleTopic = "lounge.shift.lifecycle.v1"

type ShiftStartedEvent struct {
	EventType    string    `json:"event_type"`
	ShiftID      string    `json:"shift_id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name,omitempty"`
	ShiftDate    string    `json:"shift_date"`
	OccurredAt   time.Time `json:"occurred_at"`
}
