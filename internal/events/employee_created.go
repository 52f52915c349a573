package events

import "time"

// EmployeeLifecycleTopic carries employee directory changes keyed by
// employee id.
const EmployeeLifecycleTopic = "leave.employee.lifecycle.v1"

const EmployeeCreated = "employee_created"

// EmployeeCreatedEvent is published once per hire. Consumers provision the
// employee's leave balances for the year of OccurredAt.
type EmployeeCreatedEvent struct {
	EventType       string    `json:"event_type"`
	RequestID       string    `json:"request_id,omitempty"`
	EmployeeID      string    `json:"employee_id"`
	DepartmentID    string    `json:"department_id,omitempty"`
	WorksOnSaturday bool      `json:"works_on_saturday"`
	OccurredAt      time.Time `json:"occurred_at"`
}
