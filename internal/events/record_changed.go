package events

import "time"

const RecordsChangedTopic = "hr.records.changed.v1"

const (
	EmployeeCreated     = "employee_created"
	EmployeeUpdated     = "employee_updated"
	VacationCreated     = "vacation_created"
	BusinessTripCreated = "business_trip_created"
	SickLeaveCreated    = "sick_leave_created"
)

// RecordChangedEvent is published whenever an employee or one of their event
// records is written. RecordID is empty for employee events.
type RecordChangedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	RecordID   string    `json:"record_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
